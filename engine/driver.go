package engine

// CallbackFunc is invoked at the start of every call of the recursive
// search routine so a host can pump a UI, check a clock, or otherwise
// remain responsive during a long search. Apart from StopSearch, it
// must not call back into the Engine it was handed.
type CallbackFunc func(e *Engine, userData any)

// Engine holds everything a single game needs: the board, whose turn
// it is, the running evaluation, and search bookkeeping. It carries
// no package-level state, so a caller is free to run several in
// parallel as long as each one is only touched by a single goroutine
// at a time.
type Engine struct {
	board Board

	currentSide     Piece
	score           int32
	enPassant       Square
	nonPawnMaterial int32

	squareFrom Square
	squareTo   Square

	nodeCount uint32
	nodeMax   uint32
	depthMax  uint32

	stopSearch bool

	callback CallbackFunc
	userData any

	validMovesBuffer []Move
	validMovesNum    int
}

// NewEngine returns an Engine set to the standard starting position
// with default search limits.
func NewEngine() *Engine {
	e := &Engine{}
	e.Init()
	return e
}

// Init resets the Engine to the standard starting position, clears
// search limits back to their defaults, and drops any callback.
func (e *Engine) Init() {
	e.board.reset()
	e.currentSide = White
	e.score = 0
	e.enPassant = SquareInvalid
	e.nonPawnMaterial = 0
	e.squareFrom = SquareInvalid
	e.squareTo = SquareInvalid
	e.nodeCount = 0
	e.nodeMax = 1 << 30
	e.depthMax = uint32(DepthMax) - 1
	e.stopSearch = false
	e.callback = nil
	e.userData = nil
	e.validMovesBuffer = nil
	e.validMovesNum = 0
}

// SetCallback installs a function called periodically during search.
// userData is passed back to it unmodified; pass a nil fn to clear it.
func (e *Engine) SetCallback(fn CallbackFunc, userData any) {
	e.callback = fn
	e.userData = userData
}

// StopSearch asks any in-progress search to return as soon as it next
// checks; it has no effect once the call that started the search has
// returned. Safe to call from the callback installed via SetCallback.
func (e *Engine) StopSearch() {
	e.stopSearch = true
}

// CurrentSide reports whose turn it is, White or Black.
func (e *Engine) CurrentSide() Piece { return e.currentSide }

// Score reports the running evaluation from the side-to-move's
// perspective, as left behind by the most recent PlayMove.
func (e *Engine) Score() int32 { return e.score }

// Piece reports the piece occupying sq, or Empty.
func (e *Engine) Piece(sq Square) Piece { return e.board.at(sq) }

// Clone returns an independent copy of e. Engine holds no pointers
// into itself, so a plain struct copy is already a deep copy; this
// exists so callers that need to try a move and keep going down two
// branches (perft, move-ordering experiments) don't have to snapshot
// and restore a single shared Engine by hand.
func (e *Engine) Clone() *Engine {
	c := *e
	c.callback = nil
	c.userData = nil
	c.validMovesBuffer = nil
	return &c
}

// resetSearchState clears the node counter and any pending stop
// request before a new search.
func (e *Engine) resetSearchState() {
	e.nodeCount = 0
	e.stopSearch = false
}

// SearchValidMoves enumerates pseudo-legal moves from the current
// position into buf, returning the number of moves found. If more
// moves exist than len(buf), the count still reflects the true total
// but only the first len(buf) are written.
func (e *Engine) SearchValidMoves(buf []Move) int {
	e.resetSearchState()
	e.validMovesBuffer = buf
	e.validMovesNum = 0
	e.squareFrom = SquareInvalid
	e.squareTo = SquareInvalid
	nodeMax, depthMax := e.nodeMax, e.depthMax
	e.nodeMax, e.depthMax = 0, 0

	e.search(-ScoreMax, ScoreMax, e.score, e.enPassant, 3, modeEnumerate)

	e.nodeMax, e.depthMax = nodeMax, depthMax
	n := e.validMovesNum
	e.validMovesBuffer = nil
	return n
}

// SearchBestMove runs iterative deepening up to nodeMax/depthMax --
// these are the literal budgets for this call, not merged with any
// previous call's -- and returns the move it settled on, without
// playing it. It returns MoveInvalid if the side to move has no legal
// moves.
func (e *Engine) SearchBestMove(nodeMax, depthMax uint32) Move {
	e.squareFrom = SquareInvalid
	e.squareTo = SquareInvalid
	e.nodeMax = nodeMax
	e.depthMax = depthMax + 3
	e.resetSearchState()

	result := e.search(-ScoreMax, ScoreMax, e.score, e.enPassant, 3, modeFindBest)

	if result != ScoreMax || e.squareFrom == SquareInvalid {
		return MoveInvalid
	}
	return Move{From: e.squareFrom, To: e.squareTo &^ boardMask}
}

// PlayMove plays move if it is pseudo-legal from the current position
// and the opponent cannot capture the mover's king in reply, updating
// the board, side to move, score, en-passant state and material
// count, and reports whether it did. A move with an off-board square
// is rejected. A rejected move leaves the position unchanged. Unlike
// SearchBestMove this does no deepening of its own: move must already
// be the one the caller wants played (typically the result of
// SearchBestMove or a move pulled from SearchValidMoves).
func (e *Engine) PlayMove(move Move) bool {
	if offBoard(move.From) || offBoard(move.To) {
		return false
	}
	e.squareFrom = move.From
	e.squareTo = move.To
	e.nodeCount = 0
	e.nodeMax = 0
	e.stopSearch = false
	depthMax := e.depthMax
	e.depthMax = 0

	result := e.search(-ScoreMax, ScoreMax, e.score, e.enPassant, 3, modePlay)

	e.depthMax = depthMax
	return result == ScoreMax
}
