// magic.go implements the magic-bitboard sliding-piece lookup of spec §4.3:
// for each square a magic multiplier and shift map a blockers subset to a
// unique slot in one global per-piece table, index =
// ((blockers·magic) >> (64-L)) + offset.
//
// The search for magic numbers is grounded on zurichess' engine/attack.go
// wizard type (tryMagicNumber/randMagic/prepare), adapted from per-square
// slice storage to one flat global table with an explicit offset per
// square, and from teacher's ray-minus-border occupancy masks to the
// occupancy masks built in masks.go. The magic numbers themselves are
// search results, not copied constants — teacher's hardcoded magic list in
// initRookMagic doesn't correspond to this module's mask convention.

package engine

import "math/rand"

type magicEntry struct {
	magic  uint64
	shift  uint
	mask   Bitboard
	offset int
}

var (
	rookMagics   [64]magicEntry
	bishopMagics [64]magicEntry
	rookTable    []Bitboard
	bishopTable  []Bitboard
)

func init() {
	initMasks()
	rookTable = buildMagicTable(rookOccMask, rookMoveMask, rookMagics[:])
	bishopTable = buildMagicTable(bishopOccMask, bishopMoveMask, bishopMagics[:])
}

// buildMagicTable finds a perfect-hash magic number for every square of
// the given occupancy masks and packs the resulting per-square attack
// tables into one contiguous slice, recording offsets in entries.
func buildMagicTable(occMask [64]Bitboard, moveMask func(Square, Bitboard) Bitboard, entries []magicEntry) []Bitboard {
	r := rand.New(rand.NewSource(1))
	var global []Bitboard

	for sq := Square(0); sq < 64; sq++ {
		mask := occMask[sq]
		bits := mask.Count()
		size := 1 << uint(bits)
		shift := uint(64 - bits)

		subsets := make([]Bitboard, 0, size)
		attacks := make([]Bitboard, 0, size)
		enumerateSubsets(mask, func(subset Bitboard) {
			subsets = append(subsets, subset)
			attacks = append(attacks, moveMask(sq, subset))
		})

		table := make([]Bitboard, size)
		for {
			magic := sparseRandom(r)
			if Bitboard(uint64(mask)*magic).Count() < 6 {
				continue
			}
			for i := range table {
				table[i] = 0
			}
			ok := true
			for i, subset := range subsets {
				idx := (uint64(subset) * magic) >> shift
				if table[idx] != 0 && table[idx] != attacks[i] {
					ok = false
					break
				}
				table[idx] = attacks[i]
			}
			if !ok {
				continue
			}

			entries[sq] = magicEntry{
				magic:  magic,
				shift:  shift,
				mask:   mask,
				offset: len(global),
			}
			global = append(global, table...)
			break
		}
	}
	return global
}

// sparseRandom returns a 64-bit value with relatively few set bits, which
// tends to produce good magic candidates (same heuristic as zurichess'
// wizard.randMagic).
func sparseRandom(r *rand.Rand) uint64 {
	a := uint64(r.Int63())
	b := uint64(r.Int63())
	c := uint64(r.Int63())
	return a & b & c
}

func (e *magicEntry) attack(occ Bitboard, table []Bitboard) Bitboard {
	blockers := occ & e.mask
	idx := (uint64(blockers) * e.magic) >> e.shift
	return table[e.offset+int(idx)]
}

// RookAttacks returns the rook's attack set from sq given the full board
// occupancy occ.
func RookAttacks(sq Square, occ Bitboard) Bitboard {
	return rookMagics[sq].attack(occ, rookTable)
}

// BishopAttacks is the bishop analogue of RookAttacks.
func BishopAttacks(sq Square, occ Bitboard) Bitboard {
	return bishopMagics[sq].attack(occ, bishopTable)
}

// QueenAttacks is the union of rook and bishop attacks from sq.
func QueenAttacks(sq Square, occ Bitboard) Bitboard {
	return RookAttacks(sq, occ) | BishopAttacks(sq, occ)
}
