// Package engine implements a small 0x88 chess engine intended for
// resource-constrained hosts. It plays FIDE-legal chess except that
// pawns always promote to a queen.
//
// The engine has no package-level mutable state: every operation is a
// method on *Engine, so a caller may hold as many independent engines
// as it likes (though a single Engine is not safe for concurrent use).
package engine
