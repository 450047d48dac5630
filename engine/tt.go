// tt.go implements the transposition table of spec §4.7: a Zobrist-keyed
// cache of {score, depth}, replace-always, no aging or bucketing.
// Grounded on zurichess' engine/hash_table.go (HashTable/hashEntry,
// split/put/get), simplified from its lock-word/move-ordering payload to
// the plain score+depth entry the spec calls for.

package engine

// TTEntry is the cached result for one Zobrist key.
type TTEntry struct {
	Score Score
	Depth int
}

// TranspositionTable is a replace-always cache keyed by Zobrist hash.
type TranspositionTable struct {
	table map[uint64]TTEntry
}

// NewTranspositionTable returns an empty table.
func NewTranspositionTable() *TranspositionTable {
	return &TranspositionTable{table: make(map[uint64]TTEntry)}
}

// Get looks up key, reporting whether an entry exists.
func (tt *TranspositionTable) Get(key uint64) (TTEntry, bool) {
	e, ok := tt.table[key]
	return e, ok
}

// Set stores entry for key, always overwriting any prior entry.
func (tt *TranspositionTable) Set(key uint64, entry TTEntry) {
	tt.table[key] = entry
}

// Clear empties the table.
func (tt *TranspositionTable) Clear() {
	tt.table = make(map[uint64]TTEntry)
}

// Probe applies the usability rule of spec §4.7: an entry at depth >=
// requested may be returned immediately if its bound is Exact, or
// UpperBound with score < alpha, or LowerBound with score >= beta.
func (tt *TranspositionTable) Probe(key uint64, depth int, alpha, beta Score) (Score, bool) {
	e, ok := tt.table[key]
	if !ok || e.Depth < depth {
		return 0, false
	}
	switch e.Score.Bound() {
	case Exact:
		return e.Score, true
	case UpperBound:
		if e.Score.Less(alpha) {
			return e.Score, true
		}
	case LowerBound:
		if beta.Less(e.Score) || beta == e.Score {
			return e.Score, true
		}
	}
	return 0, false
}
