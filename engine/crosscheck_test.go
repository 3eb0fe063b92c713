package engine

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"
)

// crosscheckPositions are quiet FENs with no checks and no pins, the
// regime where mcu-max's pseudo-legal generator (which ignores pins
// and doesn't special-case discovered check) agrees with a true legal
// move generator on the root move count. Positions with checks or
// pins are expected to diverge and are intentionally not listed here.
var crosscheckPositions = []string{
	"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
	"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
	"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
	"8/8/8/4k3/8/8/4K3/8 w - - 0 1",
}

func TestSearchValidMovesAgreesWithDragontoothmgOnQuietPositions(t *testing.T) {
	for _, fen := range crosscheckPositions {
		t.Run(fen, func(t *testing.T) {
			e := NewEngine()
			e.SetPosition(fen)

			var buf [256]Move
			gotCount := e.SearchValidMoves(buf[:])

			board := dragontoothmg.ParseFen(fen)
			want := board.GenerateLegalMoves()

			if gotCount != len(want) {
				t.Errorf("SearchValidMoves count = %d, dragontoothmg.GenerateLegalMoves count = %d", gotCount, len(want))
			}
		})
	}
}
