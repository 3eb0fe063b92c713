package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func TestSetPositionStartingSetup(t *testing.T) {
	e := NewEngine()
	e.SetPosition(startFEN)

	if e.CurrentSide() != White {
		t.Fatalf("CurrentSide() = %v, want White", e.CurrentSide())
	}

	tests := []struct {
		sq   Square
		want Piece
	}{
		{0x00, Black | Rook},
		{0x04, Black | King},
		{0x10, Black | PawnDownstream},
		{0x74, White | King},
		{0x70, White | Rook},
		{0x77, White | Rook},
		{0x34, Empty},
	}
	for _, tt := range tests {
		got := e.Piece(tt.sq)
		if got.Type() != tt.want.Type() || got.Color() != tt.want.Color() {
			t.Errorf("Piece(0x%02x) = %v, want type=%v color=%v", tt.sq, got, tt.want.Type(), tt.want.Color())
		}
	}
}

func TestFENRoundTrip(t *testing.T) {
	e := NewEngine()
	e.SetPosition(startFEN)

	got := e.FEN()
	want := startFEN

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FEN() round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestFENRoundTripAfterCustomPosition(t *testing.T) {
	fen := "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"
	e := NewEngine()
	e.SetPosition(fen)

	if got := e.FEN(); got != fen {
		t.Errorf("FEN() = %q, want %q", got, fen)
	}
}

func TestSetPositionPermissiveWithJunk(t *testing.T) {
	e := NewEngine()
	// Garbage characters in the fields after the en-passant field are
	// simply ignored, never rejected -- the loader has no error return.
	e.SetPosition("8/8/8/8/8/8/8/8 w - - !! junk extra fields")

	for sq := Square(0); sq < 0x78; sq++ {
		if offBoard(sq) {
			continue
		}
		if p := e.Piece(sq); p != Empty {
			t.Errorf("Piece(0x%02x) = %v, want Empty on an all-empty board", sq, p)
		}
	}
}

func TestInitResetsToStartingPosition(t *testing.T) {
	e := NewEngine()
	e.SetPosition("8/8/8/8/8/8/8/8 w - - 0 1")
	e.Init()

	if got := e.FEN(); got != startFEN {
		t.Errorf("FEN() after Init() = %q, want %q", got, startFEN)
	}
}
