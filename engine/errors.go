// errors.go implements the make_move error taxonomy of spec §7, grounded
// on the sentinel-error idiom in zurichess' engine/moves.go (errorWrongLength
// et al.), generalized from unstructured fmt.Errorf sentinels to a typed
// error so hosts can switch on Kind.

package engine

// MoveErrorKind identifies why MakeMove rejected a move.
type MoveErrorKind uint8

const (
	// PieceNotFound: the origin square is empty on a Direct move.
	PieceNotFound MoveErrorKind = iota
	// MovesOpponentsPiece: the piece at the origin belongs to the side
	// not to move.
	MovesOpponentsPiece
	// CapturesOwnPiece: the destination square holds a same-color piece.
	CapturesOwnPiece
	// IllegalMove: the move leaves or starts the mover's king in check,
	// or a castle is attempted while in check or through an attacked
	// square.
	IllegalMove
)

func (k MoveErrorKind) String() string {
	switch k {
	case PieceNotFound:
		return "piece not found"
	case MovesOpponentsPiece:
		return "moves opponent's piece"
	case CapturesOwnPiece:
		return "captures own piece"
	case IllegalMove:
		return "illegal move"
	default:
		return "unknown move error"
	}
}

// MoveError is returned by Board.MakeMove. The position is left unchanged
// whenever a MoveError is returned (spec §7: "all errors leave the
// position unchanged").
type MoveError struct {
	Kind MoveErrorKind
	Move Move
}

func (e *MoveError) Error() string {
	return "engine: " + e.Kind.String() + ": " + e.Move.String()
}

// IsMoveError reports whether err is a *MoveError of the given kind.
func IsMoveError(err error, kind MoveErrorKind) bool {
	me, ok := err.(*MoveError)
	return ok && me.Kind == kind
}
