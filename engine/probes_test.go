package engine

import "testing"

func TestInCheckOracles(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool
	}{
		{"rook on e7 checks king on e8", "4k3/4R3/8/8/8/8/8/4K3 b - - 0 1", true},
		{"queen on e7 checks king on e8", "4k3/4Q3/8/8/8/8/8/4K3 b - - 0 1", true},
		{"bishop on d5 checks king on g8", "6k1/8/8/3B4/8/8/8/4K3 b - - 0 1", true},
		{"knight on f6 checks king on e8", "4k3/8/5N2/8/8/8/8/4K3 b - - 0 1", true},
		{"pawn on d7 checks king on c8", "2k5/3P4/8/8/8/8/8/4K3 b - - 0 1", true},
		{"king on d7 checks king on e8", "4k3/3K4/8/8/8/8/8/8 b - - 0 1", true},
		{"starting position has no check", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine()
			e.SetPosition(tt.fen)
			if got := e.InCheck(Black); got != tt.want {
				t.Errorf("InCheck(Black) for %q = %v, want %v", tt.fen, got, tt.want)
			}
		})
	}
}

func TestIsCheckmateBackRankMate(t *testing.T) {
	// Black king cornered on a8, white queen on b7 (defended by the
	// white king on b6) covers every flight square and can't be
	// captured: the standard minimal queen-and-king mate.
	e := NewEngine()
	e.SetPosition("k7/1Q6/1K6/8/8/8/8/8 b - - 0 1")

	if !e.InCheck(Black) {
		t.Fatalf("expected black to be in check")
	}
	if !e.IsCheckmate(Black) {
		t.Errorf("IsCheckmate(Black) = false, want true")
	}
}

func TestIsCheckmateFalseWhenEscapeExists(t *testing.T) {
	e := NewEngine()
	e.SetPosition("4k3/4R3/8/8/8/8/8/4K3 b - - 0 1")

	if !e.InCheck(Black) {
		t.Fatalf("expected black to be in check")
	}
	if e.IsCheckmate(Black) {
		t.Errorf("IsCheckmate(Black) = true, want false (king can step off the e-file)")
	}
}

func TestIsStalemateClassicCorner(t *testing.T) {
	// Black king on a8, white king on c7 and queen on b6 control every
	// escape square without checking the king: the standard minimal
	// queen-and-king stalemate.
	e := NewEngine()
	e.SetPosition("k7/2K5/1Q6/8/8/8/8/8 b - - 0 1")

	if e.InCheck(Black) {
		t.Fatalf("expected black not to be in check")
	}
	if !e.IsStalemate(Black) {
		t.Errorf("IsStalemate(Black) = false, want true")
	}
}

func TestIsStalemateFalseInStartingPosition(t *testing.T) {
	e := NewEngine()
	e.SetPosition("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")

	if e.IsStalemate(White) {
		t.Errorf("IsStalemate(White) = true, want false in the starting position")
	}
}
