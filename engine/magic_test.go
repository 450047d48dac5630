package engine

import "testing"

// TestMagicIndexInRangeForEveryBlockersSubset is spec §8's boundary
// property: "Magic lookup index is in-range for every blockers subset of
// every square's occupancy mask (enumerate all and assert)". We assert
// this indirectly by checking RookAttacks/BishopAttacks never panics (an
// out-of-range index would) across every subset of every square's
// occupancy mask, and that the returned attack set matches a from-scratch
// ray walk over exactly that subset of blockers.
func TestMagicIndexInRangeForEveryBlockersSubset(t *testing.T) {
	for sq := Square(0); sq < 64; sq++ {
		enumerateSubsets(rookOccMask[sq], func(blockers Bitboard) {
			got := RookAttacks(sq, blockers)
			want := rookMoveMask(sq, blockers)
			if got != want {
				t.Fatalf("RookAttacks(%v, %#x) = %#x, want %#x", sq, uint64(blockers), uint64(got), uint64(want))
			}
		})
		enumerateSubsets(bishopOccMask[sq], func(blockers Bitboard) {
			got := BishopAttacks(sq, blockers)
			want := bishopMoveMask(sq, blockers)
			if got != want {
				t.Fatalf("BishopAttacks(%v, %#x) = %#x, want %#x", sq, uint64(blockers), uint64(got), uint64(want))
			}
		})
	}
}

// TestQueenAttacksIsUnionOfRookAndBishop checks spec §4.3: "Queen attacks =
// rook U bishop at the same blockers".
func TestQueenAttacksIsUnionOfRookAndBishop(t *testing.T) {
	occ := RankFile(3, 3).Bitboard() | RankFile(3, 6).Bitboard() | RankFile(6, 3).Bitboard()
	sq := RankFile(3, 3)
	want := RookAttacks(sq, occ) | BishopAttacks(sq, occ)
	if got := QueenAttacks(sq, occ); got != want {
		t.Fatalf("QueenAttacks = %#x, want rook|bishop = %#x", uint64(got), uint64(want))
	}
}

// TestBishopInEmptyCornerHasSevenMoves is spec §8's boundary scenario: a
// bishop alone in a corner emits exactly 7 moves along its one diagonal.
func TestBishopInEmptyCornerHasSevenMoves(t *testing.T) {
	a1 := RankFile(0, 0)
	attacks := BishopAttacks(a1, 0)
	if got := attacks.Count(); got != 7 {
		t.Fatalf("bishop attacks from a1 on an empty board = %d squares, want 7", got)
	}
}

// TestRookOccupancyMaskExcludesOuterRim is spec §4.2: from a corner, the
// rook occupancy mask is the 12 inner squares of its rank+file, excluding
// the board edge.
func TestRookOccupancyMaskExcludesOuterRim(t *testing.T) {
	sq := RankFile(0, 0) // a1
	mask := rookOccMask[sq]
	if mask.Count() != 12 {
		t.Fatalf("rook occupancy mask from a1 has %d squares, want 12", mask.Count())
	}
	if mask.Has(RankFile(0, 7)) || mask.Has(RankFile(7, 0)) {
		t.Fatalf("rook occupancy mask from a1 includes a rim square: %#x", uint64(mask))
	}
}
