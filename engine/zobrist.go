// zobrist.go contains the random bitstrings used for incremental Zobrist
// hashing (spec §3 "Zobrist key"). Grounded on zurichess' engine/zobrist.go
// and treepeck-chego's zobrist.go; the random stream is seeded
// deterministically (same as both) so test runs are reproducible.
//
// Per spec §9's directed fix, zobristCastle is indexed by the full 4-bit
// castling-rights value (0..15), not by a white-only 2-bit index as in the
// unfaithful source behavior being corrected here.

package engine

import "math/rand"

var (
	// zobristPiece[pieceIndex(color,kind)][square] is XORed in whenever
	// that piece occupies that square.
	zobristPiece [12][64]uint64
	// zobristEnPassant[file] is XORed in when an en-passant file is set.
	zobristEnPassant [8]uint64
	// zobristCastle[rights] is XORed in for the current 4-bit castling
	// rights value.
	zobristCastle [16]uint64
	// zobristSideToMove is XORed in when it is Black's move.
	zobristSideToMove uint64
)

func rand64(r *rand.Rand) uint64 {
	return uint64(r.Int63())<<32 ^ uint64(r.Int63())
}

func init() {
	r := rand.New(rand.NewSource(1))

	for k := King; k <= Pawn; k++ {
		for c := White; c <= Black; c++ {
			for sq := 0; sq < 64; sq++ {
				zobristPiece[pieceIndex(c, k)][sq] = rand64(r)
			}
		}
	}
	for f := 0; f < 8; f++ {
		zobristEnPassant[f] = rand64(r)
	}
	for i := range zobristCastle {
		zobristCastle[i] = rand64(r)
	}
	zobristSideToMove = rand64(r)
}
