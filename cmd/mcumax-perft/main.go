// Command mcumax-perft counts move-tree nodes to a fixed depth from a
// FEN position, in the teacher's perft-tool idiom. Moves that
// PlayMove rejects (those that leave the mover's king capturable) are
// not counted.
package main

import (
	"flag"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/dylhunn/dragontoothmg"

	"github.com/mcumaxgo/chess/engine"
)

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func perft(e *engine.Engine, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var buf [256]engine.Move
	n := e.SearchValidMoves(buf[:])
	if n > len(buf) {
		n = len(buf)
	}
	var nodes uint64
	for _, m := range buf[:n] {
		child := e.Clone()
		if !child.PlayMove(m) {
			continue
		}
		nodes += perft(child, depth-1)
	}
	return nodes
}

func algebraic(sq engine.Square) string {
	file := byte(sq & 0x0f)
	rank := byte(sq >> 4)
	return string([]byte{'a' + file, '8' - rank})
}

func main() {
	fen := flag.String("fen", startFEN, "FEN string")
	depth := flag.Int("depth", 0, "perft depth (required)")
	divide := flag.Bool("divide", false, "print per-root-move node counts")
	repeat := flag.Int("repeat", 1, "repeat perft N times and report aggregate timing")
	crosscheck := flag.Bool("crosscheck", false, "cross-check root move count against dragontoothmg's legal generator")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	e := engine.NewEngine()
	e.SetPosition(*fen)

	if *crosscheck {
		var buf [256]engine.Move
		gotCount := e.SearchValidMoves(buf[:])
		board := dragontoothmg.ParseFen(*fen)
		want := board.GenerateLegalMoves()
		fmt.Printf("root moves: mcumax=%d dragontoothmg=%d\n", gotCount, len(want))
		if gotCount != len(want) {
			fmt.Println("mismatch is expected whenever the position has a check or a pin: mcumax's generator is pseudo-legal only")
		}
		return
	}

	if *divide {
		var buf [256]engine.Move
		n := e.SearchValidMoves(buf[:])
		if n > len(buf) {
			n = len(buf)
		}
		type kv struct {
			move  string
			nodes uint64
		}
		arr := make([]kv, 0, n)
		var sum uint64
		for _, m := range buf[:n] {
			child := e.Clone()
			if !child.PlayMove(m) {
				continue
			}
			nodes := perft(child, *depth-1)
			arr = append(arr, kv{algebraic(m.From) + algebraic(m.To), nodes})
			sum += nodes
		}
		slices.SortFunc(arr, func(a, b kv) int {
			if a.move < b.move {
				return -1
			}
			if a.move > b.move {
				return 1
			}
			return 0
		})
		for _, x := range arr {
			fmt.Printf("%s: %d\n", x.move, x.nodes)
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += perft(e, *depth)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	fmt.Printf("depth=%d nodes=%d time=%s nps=%.0f\n", *depth, totalNodes, elapsed, nps)
}
