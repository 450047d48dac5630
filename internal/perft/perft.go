// Package perft is a move-generator correctness oracle, used only from
// tests. It counts leaf nodes reachable from a position at a fixed depth,
// the same technique chess engines use to validate move generation
// against known node counts (see the spec's §8 boundary/end-to-end
// properties).
//
// Grounded on zurichess' perft/perft.go counting loop (DoMove/UndoMove
// over GenerateMoves, backtracking on check), adapted from a flag-driven
// package main into a plain library function over this module's
// engine.Board, and from the teacher's "is the mover now in check"
// post-move filter to engine.Board.MakeMove's own self-rolling-back
// legality check.
package perft

import "github.com/benstockil/chesscore/engine"

// Count returns the number of leaf positions reachable from b after
// exactly depth half-moves, leaving b unchanged on return.
func Count(b *engine.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	var list engine.MoveList
	b.CalculatePseudoMoves(&list)

	var nodes uint64
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		if err := b.MakeMove(m); err != nil {
			continue
		}
		nodes += Count(b, depth-1)
		b.UnmakeLastMove()
	}
	return nodes
}
