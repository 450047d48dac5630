// log.go carries the ambient logging concern named in SPEC_FULL.md §A: a
// minimal Logger interface so host code can observe search progress
// without the core depending on any particular logging backend. Grounded
// on zurichess' engine.go Logger/NulLogger/Stats trio, narrowed to what a
// fixed-depth no-PV search can actually report (this engine does not
// track a principal-variation line beyond the single best move, so
// PrintPV takes the best move found at that depth rather than a PV
// slice).

package engine

// Stats stores statistics about one iterative-deepening search.
type Stats struct {
	CacheHit  uint64 // transposition-table probes that returned a usable entry
	CacheMiss uint64 // transposition-table probes that found nothing usable
	Nodes     uint64 // AlphaBeta calls made (including the ones aborted by the deadline)
	Depth     int    // deepest depth fully completed so far
}

// CacheHitRatio returns the ratio of transposition-table hits over total
// lookups, 0 if there have been no lookups yet.
func (s *Stats) CacheHitRatio() float64 {
	total := s.CacheHit + s.CacheMiss
	if total == 0 {
		return 0
	}
	return float64(s.CacheHit) / float64(total)
}

// Logger logs search progress. Hosts supply one to observe iterative
// deepening; the core never formats or writes anything itself.
type Logger interface {
	// BeginSearch signals a new search has started.
	BeginSearch()
	// EndSearch signals the search has finished (deadline reached or no
	// further depth could be explored).
	EndSearch()
	// PrintPV is called after iterative deepening completes one depth,
	// reporting the best move found at that depth and the stats
	// accumulated so far.
	PrintPV(stats Stats, score Score, best Move)
}

// NulLogger is a Logger that does nothing, the default for MoveEngine.
type NulLogger struct{}

func (NulLogger) BeginSearch()                                {}
func (NulLogger) EndSearch()                                  {}
func (NulLogger) PrintPV(stats Stats, score Score, best Move) {}
