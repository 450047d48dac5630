package engine

import (
	"testing"
	"time"
)

func farDeadline() time.Time { return time.Now().Add(time.Hour) }

// TestFindBestMoveDepth2DoesNotCrash is scenario 6 of spec §8.
func TestFindBestMoveDepth2DoesNotCrash(t *testing.T) {
	e := NewMoveEngine()
	b := Initial()
	move, ok := e.FindBestMove(b, 2, farDeadline())
	if !ok {
		t.Fatal("FindBestMove returned no move with a far-future deadline")
	}
	if move == (Move{}) {
		t.Fatal("FindBestMove returned the zero move")
	}
	if b.ToFEN() != InitialFEN {
		t.Fatalf("board mutated by search: got %q", b.ToFEN())
	}
}

// TestFindBestMoveReturnsFalseOnExpiredDeadline is spec §4.8: a deadline
// exceeded before the pass completes aborts and leaves the position
// unchanged.
func TestFindBestMoveReturnsFalseOnExpiredDeadline(t *testing.T) {
	e := NewMoveEngine()
	b := Initial()
	before := b.ToFEN()

	_, ok := e.FindBestMove(b, 6, time.Now().Add(-time.Second))
	if ok {
		t.Fatal("FindBestMove succeeded with an already-expired deadline")
	}
	if got := b.ToFEN(); got != before {
		t.Fatalf("position changed after an aborted search: got %q, want %q", got, before)
	}
}

// TestIterativeDeepeningFirstPassAlwaysCompletes is spec §4.8: "The first
// iteration (depth 0) is always allowed to complete", even with an
// already-expired deadline.
func TestIterativeDeepeningFirstPassAlwaysCompletes(t *testing.T) {
	e := NewMoveEngine()
	b := Initial()
	move := e.IterativeDeepening(b, -time.Second)
	if move == (Move{}) {
		t.Fatal("IterativeDeepening with an expired deadline returned the zero move")
	}
	if b.ToFEN() != InitialFEN {
		t.Fatalf("board mutated by search: got %q", b.ToFEN())
	}
}

// TestIterativeDeepeningDrivesLoggerAndStats exercises the ambient Logger
// (SPEC_FULL.md §A) wired through MoveEngine.
type recordingLogger struct {
	begins, ends, prints int
	lastDepth            int
}

func (r *recordingLogger) BeginSearch() { r.begins++ }
func (r *recordingLogger) EndSearch()   { r.ends++ }
func (r *recordingLogger) PrintPV(stats Stats, score Score, best Move) {
	r.prints++
	r.lastDepth = stats.Depth
}

func TestIterativeDeepeningDrivesLoggerAndStats(t *testing.T) {
	e := NewMoveEngine()
	log := &recordingLogger{}
	e.Log = log

	b := Initial()
	e.IterativeDeepening(b, 20*time.Millisecond)

	if log.begins != 1 || log.ends != 1 {
		t.Fatalf("BeginSearch/EndSearch calls = %d/%d, want 1/1", log.begins, log.ends)
	}
	if log.prints < 1 {
		t.Fatalf("PrintPV was never called")
	}
	if e.Stats.Nodes == 0 {
		t.Fatalf("Stats.Nodes was never incremented")
	}
}

// TestAlphaBetaRestoresPositionOnAbort is spec §5: "The position must be
// in the same state after an aborted search as before it."
func TestAlphaBetaRestoresPositionOnAbort(t *testing.T) {
	e := NewMoveEngine()
	b := Initial()
	before := b.ToFEN()

	_, ok := e.AlphaBeta(b, 4, Lowest(), Highest(), time.Now().Add(-time.Second))
	if ok {
		t.Fatal("AlphaBeta succeeded with an already-expired deadline")
	}
	if got := b.ToFEN(); got != before {
		t.Fatalf("position changed after an aborted AlphaBeta: got %q, want %q", got, before)
	}
}

// TestAlphaBetaCheckmateScoresLowest exercises the "no legal move and in
// check" branch of AlphaBeta directly at depth 0's parent, matching spec
// §4.8 point 9.
func TestAlphaBetaCheckmateScoresLowest(t *testing.T) {
	// Fool's mate position: White has just been mated by Qh4#.
	b := Initial()
	for _, uci := range []string{"f2f3", "e7e5", "g2g4", "d8h4"} {
		m := parseUCI(t, uci)
		if err := b.MakeMove(m); err != nil {
			t.Fatalf("MakeMove(%s): %v", uci, err)
		}
	}
	e := NewMoveEngine()
	score, ok := e.AlphaBeta(b, 1, Lowest(), Highest(), farDeadline())
	if !ok {
		t.Fatal("AlphaBeta aborted unexpectedly")
	}
	if score.Value() != Lowest().Value() {
		t.Fatalf("checkmate score = %d, want %d", score.Value(), Lowest().Value())
	}
}
