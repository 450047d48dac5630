// search.go implements the search surface of spec §4.8 and §6: iterative
// deepening over fixed-depth alpha-beta negamax with a bound-aware TT
// probe, plus the end-state oracle. Grounded on zurichess' engine.go
// searchTree/Engine driver and its use of HashTable, simplified to the
// synchronous single-threaded, no-quiescence procedure the spec calls
// for; the end-state oracle is grounded on treepeck-chego's
// game.IsCheckmate/IsThreefoldRepetition, adapted to this module's
// Zobrist-keyed repetition map (see DESIGN.md).

package engine

import "time"

// EndState classifies why a position has no ongoing play left.
type EndState int

const (
	Checkmate EndState = iota
	Stalemate
	ThreeFoldRepetition
)

// GetEndState implements spec §4.8's end-state oracle.
func (b *Board) GetEndState() (EndState, bool) {
	if b.Repetition[b.Zobrist] >= 3 {
		return ThreeFoldRepetition, true
	}
	if !b.hasLegalMove() {
		if b.IsInCheck(b.ActiveColor) {
			return Checkmate, true
		}
		return Stalemate, true
	}
	return 0, false
}

// hasLegalMove reports whether any pseudo-legal move for the side to move
// survives the make-time legality filter.
func (b *Board) hasLegalMove() bool {
	var list MoveList
	b.CalculatePseudoMoves(&list)
	for i := 0; i < list.Len(); i++ {
		if err := b.MakeMove(list.At(i)); err == nil {
			b.UnmakeLastMove()
			return true
		}
	}
	return false
}

// MoveEngine wraps a transposition table across a search (spec §6:
// "MoveEngine::new() — constructs an empty TT").
type MoveEngine struct {
	tt    *TranspositionTable
	Log   Logger
	Stats Stats
}

// NewMoveEngine returns a MoveEngine with an empty transposition table and
// a NulLogger. Set the Log field directly to observe search progress.
func NewMoveEngine() *MoveEngine {
	return &MoveEngine{tt: NewTranspositionTable(), Log: NulLogger{}}
}

// IterativeDeepening searches depth 0, 1, 2, ... until maxDuration
// elapses, returning the best move from the last fully completed depth.
// The depth-0 pass is always allowed to complete, per spec §4.8.
func (e *MoveEngine) IterativeDeepening(position *Board, maxDuration time.Duration) Move {
	if e.Log == nil {
		e.Log = NulLogger{}
	}
	e.Stats = Stats{}
	e.Log.BeginSearch()
	defer e.Log.EndSearch()

	deadline := time.Now().Add(maxDuration)

	// The depth-0 pass gets its own far-off deadline, so maxDuration
	// cannot cut it short.
	firstPassDeadline := time.Now().Add(time.Hour)
	best, bestScore, _ := e.findBestMoveScoredOK(position, 0, firstPassDeadline)
	e.Stats.Depth = 0
	e.Log.PrintPV(e.Stats, bestScore, best)

	for depth := 1; ; depth++ {
		move, score, ok := e.findBestMoveScoredOK(position, depth, deadline)
		if !ok {
			break
		}
		best, bestScore = move, score
		e.Stats.Depth = depth
		e.Log.PrintPV(e.Stats, bestScore, best)
	}
	return best
}

// FindBestMove enumerates pseudo-legal moves, skips IllegalMove
// rejections, and returns the move with the greatest negated child score,
// or false if the deadline was exceeded before a full pass completed.
func (e *MoveEngine) FindBestMove(position *Board, depth int, deadline time.Time) (Move, bool) {
	move, _, ok := e.findBestMoveScoredOK(position, depth, deadline)
	return move, ok
}

// findBestMoveScoredOK is FindBestMove's implementation, additionally
// returning the winning score so IterativeDeepening can hand it to the
// Logger without a second search pass.
func (e *MoveEngine) findBestMoveScoredOK(position *Board, depth int, deadline time.Time) (Move, Score, bool) {
	var list MoveList
	position.CalculatePseudoMoves(&list)

	var best Move
	bestScore := Lowest()
	found := false

	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		if err := position.MakeMove(m); err != nil {
			continue
		}
		childScore, ok := e.AlphaBeta(position, depth, Lowest(), Highest(), deadline)
		position.UnmakeLastMove()
		if !ok {
			return Move{}, 0, false
		}
		score := childScore.Negate()
		if !found || bestScore.Less(score) {
			bestScore = score
			best = m
			found = true
		}
	}
	if !found {
		return Move{}, 0, false
	}
	return best, bestScore, true
}

// AlphaBeta is negamax with a bound-aware TT probe (spec §4.8).
func (e *MoveEngine) AlphaBeta(b *Board, depth int, alpha, beta Score, deadline time.Time) (Score, bool) {
	e.Stats.Nodes++
	if time.Now().After(deadline) {
		return 0, false
	}
	if b.Repetition[b.Zobrist] >= 3 {
		return MakeExact(0), true
	}

	key := b.Zobrist
	if cached, ok := e.tt.Probe(key, depth, alpha, beta); ok {
		e.Stats.CacheHit++
		return cached, true
	}
	e.Stats.CacheMiss++
	if depth == 0 {
		return MakeExact(b.Evaluate()), true
	}

	var list MoveList
	b.CalculatePseudoMoves(&list)

	originalAlpha := alpha
	bestScore := Lowest()
	anyLegal := false

	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		if err := b.MakeMove(m); err != nil {
			continue
		}
		anyLegal = true

		childScore, ok := e.AlphaBeta(b, depth-1, beta.Negate(), alpha.Negate(), deadline)
		b.UnmakeLastMove()
		if !ok {
			return 0, false
		}
		score := childScore.Negate()

		if bestScore.Less(score) {
			bestScore = score
		}
		if alpha.Less(score) {
			alpha = score.WithBound(UpperBound)
		}
		if !score.Less(beta) {
			cut := bestScore.WithBound(LowerBound)
			e.tt.Set(key, TTEntry{Score: cut, Depth: depth})
			return cut, true
		}
	}

	if !anyLegal {
		var result Score
		if b.IsInCheck(b.ActiveColor) {
			result = Lowest()
		} else {
			result = MakeExact(0)
		}
		e.tt.Set(key, TTEntry{Score: result, Depth: depth})
		return result, true
	}

	final := bestScore.WithBound(UpperBound)
	if originalAlpha.Less(bestScore) {
		final = bestScore.WithBound(Exact)
	}
	e.tt.Set(key, TTEntry{Score: final, Depth: depth})
	return final, true
}
