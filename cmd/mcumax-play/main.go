// Command mcumax-play is a terminal REPL around the engine package,
// in the spirit of the mcu-max C test harness: type moves, watch the
// board, ask the engine to think.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mcumaxgo/chess/engine"
)

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var pieceGlyphs = ".PPNKBRQ.ppnkbrq"

func glyph(p engine.Piece) byte {
	idx := int(p.Type())
	if p.Color() == engine.Black {
		idx += 8
	}
	return pieceGlyphs[idx]
}

func squareFromAlgebraic(s string) (engine.Square, bool) {
	if len(s) != 2 {
		return engine.SquareInvalid, false
	}
	file := s[0]
	rank := s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return engine.SquareInvalid, false
	}
	return engine.Square(16*('8'-rank) + (file - 'a')), true
}

func algebraic(sq engine.Square) string {
	file := byte(sq & 0x0f)
	rank := byte(sq >> 4)
	return string([]byte{'a' + file, '8' - rank})
}

func printBoard(e *engine.Engine) {
	fmt.Println()
	fmt.Println("  +-----------------+")
	for rank := 0; rank < 8; rank++ {
		fmt.Printf("%d | ", 8-rank)
		for file := 0; file < 8; file++ {
			sq := engine.Square(16*rank + file)
			fmt.Printf("%c ", glyph(e.Piece(sq)))
		}
		fmt.Println("|")
	}
	fmt.Println("  +-----------------+")
	fmt.Println("    a b c d e f g h")
	fmt.Println()
}

func main() {
	startFlag := flag.String("fen", startFEN, "starting position")
	flag.Parse()

	e := engine.NewEngine()
	e.SetPosition(*startFlag)

	fmt.Println("mcumax-play -- type 'help' for commands")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "help":
			fmt.Println("commands: fen <string...> | moves | play <from> <to> | best <nodes> <depth> | board | quit")

		case "quit", "exit":
			return

		case "board":
			printBoard(e)

		case "fen":
			if len(fields) < 2 {
				fmt.Println(e.FEN())
				continue
			}
			e.SetPosition(strings.Join(fields[1:], " "))
			printBoard(e)

		case "moves":
			var buf [256]engine.Move
			n := e.SearchValidMoves(buf[:])
			if n > len(buf) {
				n = len(buf)
			}
			for _, m := range buf[:n] {
				fmt.Printf("%s%s ", algebraic(m.From), algebraic(m.To))
			}
			fmt.Printf("\n%d move(s)\n", n)

		case "play":
			if len(fields) != 3 {
				fmt.Println("usage: play <from> <to>")
				continue
			}
			from, ok1 := squareFromAlgebraic(fields[1])
			to, ok2 := squareFromAlgebraic(fields[2])
			if !ok1 || !ok2 {
				fmt.Println("bad square")
				continue
			}
			if !e.PlayMove(engine.Move{From: from, To: to}) {
				fmt.Println("illegal move")
				continue
			}
			printBoard(e)
			if e.IsCheckmate(e.CurrentSide()) {
				fmt.Println("checkmate")
			} else if e.IsStalemate(e.CurrentSide()) {
				fmt.Println("stalemate")
			} else if e.InCheck(e.CurrentSide()) {
				fmt.Println("check")
			}

		case "best":
			if len(fields) != 3 {
				fmt.Println("usage: best <nodes> <depth>")
				continue
			}
			nodes, err1 := strconv.ParseUint(fields[1], 10, 32)
			depth, err2 := strconv.ParseUint(fields[2], 10, 32)
			if err1 != nil || err2 != nil {
				fmt.Println("bad number")
				continue
			}
			best := e.SearchBestMove(uint32(nodes), uint32(depth))
			if !best.IsValid() {
				fmt.Println("no move found")
				continue
			}
			fmt.Printf("%s%s\n", algebraic(best.From), algebraic(best.To))

		default:
			fmt.Println("unknown command, type 'help'")
		}
	}
}
