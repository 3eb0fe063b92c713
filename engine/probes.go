package engine

// snapshot is everything a probe needs to undo a trial move: the
// full board plus the running aggregates search mutates as a side
// effect of playing it.
type snapshot struct {
	board           Board
	currentSide     Piece
	enPassant       Square
	score           int32
	nonPawnMaterial int32
}

func (e *Engine) snapshot() snapshot {
	return snapshot{
		board:           e.board,
		currentSide:     e.currentSide,
		enPassant:       e.enPassant,
		score:           e.score,
		nonPawnMaterial: e.nonPawnMaterial,
	}
}

func (e *Engine) restore(s snapshot) {
	e.board = s.board
	e.currentSide = s.currentSide
	e.enPassant = s.enPassant
	e.score = s.score
	e.nonPawnMaterial = s.nonPawnMaterial
}

var rayDirections = [8]int8{1, -1, 16, -16, 15, -15, 17, -17}
var knightOffsets = [8]int8{14, 18, 31, 33, -14, -18, -31, -33}
var kingOffsets = [8]int8{1, -1, 16, -16, 15, -15, 17, -17}

// InCheck reports whether side's king is attacked in the current
// position. Unlike the search routine (which detects check only
// incidentally, by noticing a king capture), this walks outward from
// the king square along rook/bishop rays, knight jumps, pawn capture
// squares and adjacent king squares -- the same four attacker classes
// is_in_check enumerates explicitly.
func (e *Engine) InCheck(side Piece) bool {
	enemy := Black
	if side == Black {
		enemy = White
	}

	kingSquare := SquareInvalid
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			sq := Square(rank*16 + file)
			raw := e.board.at(sq)
			if raw&side != 0 && raw.Type() == King {
				kingSquare = sq
			}
		}
	}
	if kingSquare == SquareInvalid {
		return false
	}

	for d, dir := range rayDirections {
		sq := kingSquare
		for {
			sq = sq + Square(dir)
			if offBoard(sq) {
				break
			}
			raw := e.board.at(sq)
			if raw == Empty {
				continue
			}
			if raw&enemy != 0 {
				t := raw.Type()
				if d < 4 && (t == Rook || t == Queen) {
					return true
				}
				if d >= 4 && (t == Bishop || t == Queen) {
					return true
				}
			}
			break
		}
	}

	for _, off := range knightOffsets {
		sq := kingSquare + Square(off)
		if offBoard(sq) {
			continue
		}
		raw := e.board.at(sq)
		if raw&enemy != 0 && raw.Type() == Knight {
			return true
		}
	}

	pawnDir := Square(0xf0) // -16 mod 256
	if side == Black {
		pawnDir = 16
	}
	for _, off := range [2]Square{pawnDir - 1, pawnDir + 1} {
		sq := kingSquare + off
		if offBoard(sq) {
			continue
		}
		raw := e.board.at(sq)
		if raw&enemy == 0 {
			continue
		}
		t := raw.Type()
		if (side == White && t == PawnDownstream) || (side == Black && t == PawnUpstream) {
			return true
		}
	}

	for _, off := range kingOffsets {
		sq := kingSquare + Square(off)
		if offBoard(sq) {
			continue
		}
		raw := e.board.at(sq)
		if raw&enemy != 0 && raw.Type() == King {
			return true
		}
	}

	return false
}

// legalMovesFrom lists every pseudo-legal move for the side to move
// that does not leave side's own king in check -- used by IsCheckmate
// and IsStalemate, which both need "does any real escape exist".
func (e *Engine) legalMovesFrom(side Piece) []Move {
	s := e.snapshot()
	e.currentSide = side

	var candidates [256]Move
	n := e.SearchValidMoves(candidates[:])
	if n > len(candidates) {
		n = len(candidates)
	}

	legal := make([]Move, 0, n)
	for _, m := range candidates[:n] {
		trial := e.snapshot()
		e.currentSide = side
		if e.PlayMove(m) {
			stillInCheck := e.InCheck(side)
			e.restore(trial)
			if !stillInCheck {
				legal = append(legal, m)
			}
		} else {
			e.restore(trial)
		}
	}

	e.restore(s)
	return legal
}

// IsCheckmate reports whether side is in check with no move escaping
// it.
func (e *Engine) IsCheckmate(side Piece) bool {
	if !e.InCheck(side) {
		return false
	}
	return len(e.legalMovesFrom(side)) == 0
}

// IsStalemate reports whether side is not in check but has no legal
// move.
func (e *Engine) IsStalemate(side Piece) bool {
	if e.InCheck(side) {
		return false
	}
	return len(e.legalMovesFrom(side)) == 0
}
