package engine

import "testing"

func TestBitboardSetClearHas(t *testing.T) {
	var bb Bitboard
	sq := RankFile(3, 4)
	if bb.Has(sq) {
		t.Fatalf("zero-value bitboard has %v", sq)
	}
	bb = bb.Set(sq)
	if !bb.Has(sq) {
		t.Fatalf("Set(%v) did not take effect", sq)
	}
	bb = bb.Clear(sq)
	if bb.Has(sq) {
		t.Fatalf("Clear(%v) did not take effect", sq)
	}
}

func TestBitboardEmptyAny(t *testing.T) {
	var bb Bitboard
	if !bb.Empty() || bb.Any() {
		t.Fatalf("zero-value bitboard must be Empty and not Any")
	}
	bb = bb.Set(RankFile(0, 0))
	if bb.Empty() || !bb.Any() {
		t.Fatalf("non-zero bitboard must be Any and not Empty")
	}
}

func TestBitboardPopIteratesEverySetBit(t *testing.T) {
	want := []Square{RankFile(0, 0), RankFile(3, 5), RankFile(7, 7)}
	var bb Bitboard
	for _, sq := range want {
		bb = bb.Set(sq)
	}

	var got []Square
	for bb != 0 {
		got = append(got, bb.Pop())
	}
	if len(got) != len(want) {
		t.Fatalf("got %d squares, want %d", len(got), len(want))
	}
	seen := make(map[Square]bool)
	for _, sq := range got {
		seen[sq] = true
	}
	for _, sq := range want {
		if !seen[sq] {
			t.Errorf("Pop() never yielded %v", sq)
		}
	}
}

func TestBitboardCount(t *testing.T) {
	bb := RankFile(0, 0).Bitboard() | RankFile(1, 1).Bitboard() | RankFile(2, 2).Bitboard()
	if got := bb.Count(); got != 3 {
		t.Errorf("Count() = %d, want 3", got)
	}
}

func TestBitboardShiftStaysOnBoardForInBoundsDelta(t *testing.T) {
	sq := RankFile(3, 3)
	bb := sq.Bitboard()
	shifted := bb.Shift(1, 1)
	want := RankFile(4, 4).Bitboard()
	if shifted != want {
		t.Fatalf("Shift(1,1) from %v = %#x, want %#x", sq, uint64(shifted), uint64(want))
	}
}

// TestBitboardShiftWrapsFileUnmasked is spec §4.1: Shift itself does not
// mask file wraparound, so a member on the h-file shifted by one file
// reappears on the a-file of the next rank instead of vanishing. Callers
// that need clamping combine Shift with notFileA/notFileH.
func TestBitboardShiftWrapsFileUnmasked(t *testing.T) {
	bb := RankFile(0, 7).Bitboard() // h1
	shifted := bb.Shift(0, 1)
	want := RankFile(1, 0).Bitboard() // a2, not off the board
	if shifted != want {
		t.Fatalf("Shift(0,1) from h1 = %#x, want %#x (wrapped onto a2)", uint64(shifted), uint64(want))
	}
}

// TestBitboardShiftMaskedAvoidsWraparound shows the caller-side idiom spec
// §4.1 expects: masking the source against notFileH before a rightward
// file shift drops the would-be h1 member instead of letting it wrap.
func TestBitboardShiftMaskedAvoidsWraparound(t *testing.T) {
	bb := RankFile(0, 7).Bitboard() // h1
	shifted := (bb & notFileH).Shift(0, 1)
	if shifted != 0 {
		t.Fatalf("masked Shift(0,1) from h1 = %#x, want 0", uint64(shifted))
	}
}
