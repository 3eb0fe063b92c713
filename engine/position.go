package engine

import "strings"

// setPiece drops p onto sq and returns the next board index to write
// to. Every piece is marked as having moved (unlike the opening setup
// in reset), except a pawn on its own starting rank, which keeps its
// double step. Off-board squares are left untouched and returned
// unchanged, so a caller that overruns a rank simply stalls instead of
// corrupting neighbouring memory.
func (b *Board) setPiece(sq Square, p Piece) Square {
	if offBoard(sq) {
		return sq
	}
	homePawn := (p == PawnUpstream|White && sq>>4 == 6) || (p == PawnDownstream|Black && sq>>4 == 1)
	if p != Empty && !homePawn {
		p |= Moved
	}
	b.set(sq, p)
	return sq + 1
}

// SetPosition resets the Engine and loads a position string: up to
// four space-separated fields -- piece placement, side to move,
// castling rights, en-passant square -- in FEN order. Halfmove clock
// and fullmove number, if present, are ignored; the engine tracks
// neither. Unrecognized characters are skipped rather than rejected:
// the loader is deliberately permissive and never reports an error.
func (e *Engine) SetPosition(position string) {
	e.Init()

	field := 0
	var boardIndex Square

	for _, c := range position {
		if c == ' ' {
			if field < 4 {
				field++
			}
			continue
		}

		switch field {
		case 0:
			if boardIndex >= 0x80 {
				continue
			}
			switch c {
			case '1', '2', '3', '4', '5', '6', '7', '8':
				for i := 0; i < int(c-'0'); i++ {
					boardIndex = e.board.setPiece(boardIndex, Empty)
				}
			case 'P':
				boardIndex = e.board.setPiece(boardIndex, PawnUpstream|White)
			case 'N':
				boardIndex = e.board.setPiece(boardIndex, Knight|White)
			case 'B':
				boardIndex = e.board.setPiece(boardIndex, Bishop|White)
			case 'R':
				boardIndex = e.board.setPiece(boardIndex, Rook|White)
			case 'Q':
				boardIndex = e.board.setPiece(boardIndex, Queen|White)
			case 'K':
				boardIndex = e.board.setPiece(boardIndex, King|White)
			case 'p':
				boardIndex = e.board.setPiece(boardIndex, PawnDownstream|Black)
			case 'n':
				boardIndex = e.board.setPiece(boardIndex, Knight|Black)
			case 'b':
				boardIndex = e.board.setPiece(boardIndex, Bishop|Black)
			case 'r':
				boardIndex = e.board.setPiece(boardIndex, Rook|Black)
			case 'q':
				boardIndex = e.board.setPiece(boardIndex, Queen|Black)
			case 'k':
				boardIndex = e.board.setPiece(boardIndex, King|Black)
			case '/':
				boardIndex = (boardIndex & 0xf0) + 0x10
			}

		case 1:
			switch c {
			case 'w':
				e.currentSide = White
			case 'b':
				e.currentSide = Black
			}

		case 2:
			switch c {
			case 'K':
				e.board.set(0x74, e.board.at(0x74)&^Moved)
				e.board.set(0x77, e.board.at(0x77)&^Moved)
			case 'Q':
				e.board.set(0x74, e.board.at(0x74)&^Moved)
				e.board.set(0x70, e.board.at(0x70)&^Moved)
			case 'k':
				e.board.set(0x04, e.board.at(0x04)&^Moved)
				e.board.set(0x07, e.board.at(0x07)&^Moved)
			case 'q':
				e.board.set(0x04, e.board.at(0x04)&^Moved)
				e.board.set(0x00, e.board.at(0x00)&^Moved)
			}

		case 3:
			switch {
			case c >= 'a' && c <= 'h':
				e.enPassant &= 0x7f
				e.enPassant |= Square(c - 'a')
			case c >= '1' && c <= '8':
				e.enPassant &= 0x7f
				e.enPassant |= Square(16 * int('8'-c))
			}
		}
	}
}

// pieceSymbol maps a piece to its FEN letter, uppercase for White.
var pieceSymbol = [8]byte{
	Empty:          '?',
	PawnUpstream:   'P',
	PawnDownstream: 'P',
	Knight:         'N',
	King:           'K',
	Bishop:         'B',
	Rook:           'R',
	Queen:          'Q',
}

// FEN renders the current position as a FEN-style string. Halfmove
// clock and fullmove number are always written as "0 1": the engine
// tracks neither, matching the loader's field grammar exactly.
func (e *Engine) FEN() string {
	var b strings.Builder

	for rank := 0; rank < 8; rank++ {
		emptyRun := 0
		for file := 0; file < 8; file++ {
			sq := Square(rank*16 + file)
			p := e.board.at(sq)
			if p == Empty {
				emptyRun++
				continue
			}
			if emptyRun > 0 {
				b.WriteByte('0' + byte(emptyRun))
				emptyRun = 0
			}
			sym := pieceSymbol[p.Type()]
			if p.Color() != White {
				sym += 'a' - 'A'
			}
			b.WriteByte(sym)
		}
		if emptyRun > 0 {
			b.WriteByte('0' + byte(emptyRun))
		}
		if rank < 7 {
			b.WriteByte('/')
		}
	}

	b.WriteByte(' ')
	if e.currentSide == White {
		b.WriteByte('w')
	} else {
		b.WriteByte('b')
	}

	b.WriteByte(' ')
	castling := ""
	if e.board.at(0x74)&Moved == 0 && e.board.at(0x77)&Moved == 0 {
		castling += "K"
	}
	if e.board.at(0x74)&Moved == 0 && e.board.at(0x70)&Moved == 0 {
		castling += "Q"
	}
	if e.board.at(0x04)&Moved == 0 && e.board.at(0x07)&Moved == 0 {
		castling += "k"
	}
	if e.board.at(0x04)&Moved == 0 && e.board.at(0x00)&Moved == 0 {
		castling += "q"
	}
	if castling == "" {
		castling = "-"
	}
	b.WriteString(castling)

	b.WriteByte(' ')
	if e.enPassant == SquareInvalid {
		b.WriteByte('-')
	} else {
		file := e.enPassant & 0x0f
		rank := (e.enPassant & 0xf0) >> 4
		b.WriteByte('a' + byte(file))
		b.WriteByte('8' - byte(rank))
	}

	b.WriteString(" 0 1")

	return b.String()
}
