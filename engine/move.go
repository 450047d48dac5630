// move.go implements the Move sum type of spec §3: a Direct move
// (from/to/optional promotion) or a Castle move (side). Grounded on the
// 16-bit packed Move encodings of treepeck-chego/types.go and
// Bubblyworld-dragontoothmg/types.go, generalized to a small struct per
// spec's "no explicit en-passant or capture variant" rule — captured
// identity and en-passant are deduced from the mailbox at make time, not
// encoded in the move.

package engine

// MoveKind distinguishes the two shapes of Move.
type MoveKind uint8

const (
	// MoveDirect is a from/to move, with an optional promotion piece.
	MoveDirect MoveKind = iota
	// MoveCastle is a castling move, identified by CastleSide.
	MoveCastle
)

// CastleSide is which side a castling move castles toward.
type CastleSide uint8

const (
	KingSide CastleSide = iota
	QueenSide
)

// Move is either Direct{From,To,Promotion} or Castle{Side}.
type Move struct {
	Kind       MoveKind
	From, To   Square
	Promotion  Kind // NoKind unless this is a promoting Direct move
	CastleSide CastleSide
}

// NewDirectMove builds a non-promoting Direct move.
func NewDirectMove(from, to Square) Move {
	return Move{Kind: MoveDirect, From: from, To: to}
}

// NewPromotionMove builds a Direct move that promotes to promo.
func NewPromotionMove(from, to Square, promo Kind) Move {
	return Move{Kind: MoveDirect, From: from, To: to, Promotion: promo}
}

// NewCastleMove builds a Castle move toward side.
func NewCastleMove(side CastleSide) Move {
	return Move{Kind: MoveCastle, CastleSide: side}
}

// IsPromotion reports whether this is a Direct move with a promotion.
func (m Move) IsPromotion() bool {
	return m.Kind == MoveDirect && m.Promotion != NoKind
}

func (m Move) String() string {
	if m.Kind == MoveCastle {
		if m.CastleSide == KingSide {
			return "O-O"
		}
		return "O-O-O"
	}
	s := m.From.String() + m.To.String()
	if m.Promotion != NoKind {
		s += string(kindSymbol[m.Promotion])
	}
	return s
}

// MoveList is a preallocated move buffer, avoiding per-call allocation in
// the hot move-generation path (same rationale as treepeck-chego's
// MoveList, sized for the documented maximum of 218 legal moves in any
// position).
type MoveList struct {
	moves [218]Move
	n     int
}

// Push appends m to the list.
func (l *MoveList) Push(m Move) {
	l.moves[l.n] = m
	l.n++
}

// Len returns the number of moves currently in the list.
func (l *MoveList) Len() int { return l.n }

// At returns the i-th move.
func (l *MoveList) At(i int) Move { return l.moves[i] }

// Reset empties the list for reuse.
func (l *MoveList) Reset() { l.n = 0 }

// Slice returns the moves as a plain slice (for callers that don't care
// about avoiding the allocation).
func (l *MoveList) Slice() []Move {
	return append([]Move(nil), l.moves[:l.n]...)
}
