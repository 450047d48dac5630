// board.go implements the central Board type of spec §3: mailbox plus
// twelve per-kind/per-color bitboards, castling rights, en-passant file,
// halfmove counter, move history, incremental Zobrist key, and repetition
// map, together with the make/unmake protocol of spec §4.4.
//
// Grounded on zurichess' engine/position.go (Position, DoMove/UndoMove,
// IsChecked, the state-stack idea generalized to spec's explicit per-field
// undo record) and on its GetAttacker-style square-attacked test.

package engine

import "log"

// CastlingRights is a 4-bit set of which castles are still available.
type CastlingRights uint8

const (
	WhiteKingSide CastlingRights = 1 << iota
	WhiteQueenSide
	BlackKingSide
	BlackQueenSide

	AllCastlingRights = WhiteKingSide | WhiteQueenSide | BlackKingSide | BlackQueenSide
)

// UndoRecord is one half-move's worth of state needed to reverse MakeMove
// exactly (spec §3 "Undo record").
type UndoRecord struct {
	Move Move

	Captured       Piece
	CapturedSquare Square

	PrevCastling      CastlingRights
	PrevEnPassantFile int
	PrevHalfmove      int

	// Populated only when Move.Kind == MoveCastle.
	CastleKingFrom, CastleKingTo Square
	CastleRookFrom, CastleRookTo Square
}

// Board is the central position-state entity of spec §3.
type Board struct {
	Mailbox   [64]Piece
	Bitboards [12]Bitboard // indexed by pieceIndex(color, kind)
	occupancy [2]Bitboard  // per-color occupancy, derived

	ActiveColor   Color
	Castling      CastlingRights
	EnPassantFile int // -1 when unset

	Halfmove int

	History []UndoRecord

	Zobrist    uint64
	Repetition map[uint64]int
}

// NewBoard returns an empty board: no pieces, White to move, no castling
// rights, no en-passant file. Callers populate it (FEN parsing, Initial)
// and must call seed once setup is complete.
func NewBoard() *Board {
	return &Board{
		EnPassantFile: -1,
		Repetition:    make(map[uint64]int, 64),
	}
}

// Initial returns the standard starting position.
func Initial() *Board {
	b := NewBoard()
	b.Castling = AllCastlingRights

	backRank := [8]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for f := 0; f < 8; f++ {
		b.put(RankFile(0, f), ColorKind(White, backRank[f]))
		b.put(RankFile(1, f), ColorKind(White, Pawn))
		b.put(RankFile(6, f), ColorKind(Black, Pawn))
		b.put(RankFile(7, f), ColorKind(Black, backRank[f]))
	}

	b.seed()
	return b
}

// seed recomputes the Zobrist key from scratch and primes the repetition
// map, for use once a board's squares/state have been populated directly
// (bypassing the incremental put/remove/setCastling/setEnPassant path).
func (b *Board) seed() {
	b.Zobrist = b.RecomputeZobrist()
	b.Repetition[b.Zobrist]++
}

// RecomputeZobrist builds the Zobrist key from the current mailbox and
// state, independent of the incrementally maintained b.Zobrist. Used by
// FEN parsing and by the Zobrist-integrity property of spec §8.
func (b *Board) RecomputeZobrist() uint64 {
	var key uint64
	for sq := Square(0); sq < 64; sq++ {
		p := b.Mailbox[sq]
		if !p.IsEmpty() {
			key ^= zobristPiece[pieceIndex(p.Color, p.Kind)][sq]
		}
	}
	key ^= zobristCastle[b.Castling]
	if b.EnPassantFile >= 0 {
		key ^= zobristEnPassant[b.EnPassantFile]
	}
	if b.ActiveColor == Black {
		key ^= zobristSideToMove
	}
	return key
}

// Occupancy returns the union of both colors' occupied squares.
func (b *Board) Occupancy() Bitboard { return b.occupancy[White] | b.occupancy[Black] }

// ColorOccupancy returns the squares occupied by c's pieces.
func (b *Board) ColorOccupancy(c Color) Bitboard { return b.occupancy[c] }

// KingSquare returns the square of c's king.
func (b *Board) KingSquare(c Color) Square {
	return b.Bitboards[pieceIndex(c, King)].LSB()
}

// put places p on sq, updating the mailbox, bitboards and Zobrist key.
// Precondition: sq is currently empty.
func (b *Board) put(sq Square, p Piece) {
	b.Mailbox[sq] = p
	idx := pieceIndex(p.Color, p.Kind)
	b.Bitboards[idx] = b.Bitboards[idx].Set(sq)
	b.occupancy[p.Color] = b.occupancy[p.Color].Set(sq)
	b.Zobrist ^= zobristPiece[idx][sq]
}

// remove clears sq and returns what was there (NoPiece if already empty).
func (b *Board) remove(sq Square) Piece {
	p := b.Mailbox[sq]
	if p.IsEmpty() {
		return p
	}
	b.Mailbox[sq] = NoPiece
	idx := pieceIndex(p.Color, p.Kind)
	b.Bitboards[idx] = b.Bitboards[idx].Clear(sq)
	b.occupancy[p.Color] = b.occupancy[p.Color].Clear(sq)
	b.Zobrist ^= zobristPiece[idx][sq]
	return p
}

func (b *Board) setCastling(rights CastlingRights) {
	if rights == b.Castling {
		return
	}
	b.Zobrist ^= zobristCastle[b.Castling]
	b.Zobrist ^= zobristCastle[rights]
	b.Castling = rights
}

func (b *Board) setEnPassant(file int) {
	if file == b.EnPassantFile {
		return
	}
	if b.EnPassantFile >= 0 {
		b.Zobrist ^= zobristEnPassant[b.EnPassantFile]
	}
	if file >= 0 {
		b.Zobrist ^= zobristEnPassant[file]
	}
	b.EnPassantFile = file
}

func (b *Board) flipSideToMove() {
	b.ActiveColor = b.ActiveColor.Opposite()
	b.Zobrist ^= zobristSideToMove
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func homeRank(c Color) int {
	if c == White {
		return 0
	}
	return 7
}

// revokeRookCastle clears the castling right a rook of color c guards,
// if sq is that rook's original corner.
func revokeRookCastle(rights CastlingRights, c Color, sq Square) CastlingRights {
	if sq.Rank() != homeRank(c) {
		return rights
	}
	switch sq.File() {
	case 0:
		if c == White {
			return rights &^ WhiteQueenSide
		}
		return rights &^ BlackQueenSide
	case 7:
		if c == White {
			return rights &^ WhiteKingSide
		}
		return rights &^ BlackKingSide
	}
	return rights
}

// MakeMove is the engine's only mutator (spec §4.4). On any MoveError the
// position is left exactly as it was.
func (b *Board) MakeMove(m Move) error {
	if m.Kind == MoveCastle {
		return b.makeCastle(m)
	}
	return b.makeDirect(m)
}

func (b *Board) makeDirect(m Move) error {
	moving := b.Mailbox[m.From]
	if moving.IsEmpty() {
		return &MoveError{PieceNotFound, m}
	}
	if moving.Color != b.ActiveColor {
		return &MoveError{MovesOpponentsPiece, m}
	}
	target := b.Mailbox[m.To]
	if !target.IsEmpty() && target.Color == moving.Color {
		return &MoveError{CapturesOwnPiece, m}
	}

	prevCastling := b.Castling
	prevEP := b.EnPassantFile
	prevHalfmove := b.Halfmove

	captured := target
	capturedSquare := m.To
	enPassantCapture := moving.Kind == Pawn && m.From.File() != m.To.File() && target.IsEmpty()
	if enPassantCapture {
		capturedSquare = RankFile(m.From.Rank(), m.To.File())
		captured = b.Mailbox[capturedSquare]
	}

	newEP := -1
	if moving.Kind == Pawn && absInt(m.To.Rank()-m.From.Rank()) == 2 {
		newEP = m.From.File()
	}
	b.setEnPassant(newEP)

	newCastling := prevCastling
	if moving.Kind == King {
		if moving.Color == White {
			newCastling &^= WhiteKingSide | WhiteQueenSide
		} else {
			newCastling &^= BlackKingSide | BlackQueenSide
		}
	}
	if moving.Kind == Rook {
		newCastling = revokeRookCastle(newCastling, moving.Color, m.From)
	}
	if !captured.IsEmpty() && captured.Kind == Rook {
		newCastling = revokeRookCastle(newCastling, captured.Color, capturedSquare)
	}
	b.setCastling(newCastling)

	b.History = append(b.History, UndoRecord{
		Move:              m,
		Captured:          captured,
		CapturedSquare:    capturedSquare,
		PrevCastling:      prevCastling,
		PrevEnPassantFile: prevEP,
		PrevHalfmove:      prevHalfmove,
	})

	if !captured.IsEmpty() {
		b.remove(capturedSquare)
	}
	b.remove(m.From)
	placed := moving
	if m.IsPromotion() {
		placed = ColorKind(moving.Color, m.Promotion)
	}
	b.put(m.To, placed)

	b.Halfmove++
	b.flipSideToMove()
	b.Repetition[b.Zobrist]++

	if b.IsInCheck(moving.Color) {
		b.UnmakeLastMove()
		return &MoveError{IllegalMove, m}
	}
	return nil
}

func (b *Board) makeCastle(m Move) error {
	color := b.ActiveColor
	if b.IsInCheck(color) {
		return &MoveError{IllegalMove, m}
	}

	rank := homeRank(color)
	kingFrom := RankFile(rank, 4)

	var kingTo, rookFrom, rookTo Square
	var transitFiles [2]int
	if m.CastleSide == KingSide {
		kingTo = RankFile(rank, 6)
		rookFrom = RankFile(rank, 7)
		rookTo = RankFile(rank, 5)
		transitFiles = [2]int{5, 6}
	} else {
		kingTo = RankFile(rank, 2)
		rookFrom = RankFile(rank, 0)
		rookTo = RankFile(rank, 3)
		transitFiles = [2]int{3, 2}
	}

	for _, f := range transitFiles {
		if err := b.makeDirect(NewDirectMove(kingFrom, RankFile(rank, f))); err != nil {
			return &MoveError{IllegalMove, m}
		}
		b.UnmakeLastMove()
	}

	prevCastling := b.Castling
	prevEP := b.EnPassantFile
	prevHalfmove := b.Halfmove

	b.setEnPassant(-1)
	var newCastling CastlingRights
	if color == White {
		newCastling = prevCastling &^ (WhiteKingSide | WhiteQueenSide)
	} else {
		newCastling = prevCastling &^ (BlackKingSide | BlackQueenSide)
	}
	b.setCastling(newCastling)

	b.History = append(b.History, UndoRecord{
		Move:              m,
		PrevCastling:      prevCastling,
		PrevEnPassantFile: prevEP,
		PrevHalfmove:      prevHalfmove,
		CastleKingFrom:    kingFrom,
		CastleKingTo:      kingTo,
		CastleRookFrom:    rookFrom,
		CastleRookTo:      rookTo,
	})

	king := b.remove(kingFrom)
	rook := b.remove(rookFrom)
	b.put(kingTo, king)
	b.put(rookTo, rook)

	b.Halfmove++
	b.flipSideToMove()
	b.Repetition[b.Zobrist]++

	if b.IsInCheck(color) {
		b.UnmakeLastMove()
		return &MoveError{IllegalMove, m}
	}
	return nil
}

// UnmakeLastMove reverses the most recent MakeMove exactly. Precondition:
// history non-empty; an empty-history call is an internal invariant
// violation and is fatal (spec §7).
func (b *Board) UnmakeLastMove() {
	n := len(b.History)
	if n == 0 {
		log.Panicf("engine: unmake with empty history")
	}
	rec := b.History[n-1]
	b.History = b.History[:n-1]

	b.Repetition[b.Zobrist]--

	b.flipSideToMove()
	b.Halfmove = rec.PrevHalfmove

	if rec.Move.Kind == MoveCastle {
		king := b.remove(rec.CastleKingTo)
		rook := b.remove(rec.CastleRookTo)
		b.put(rec.CastleKingFrom, king)
		b.put(rec.CastleRookFrom, rook)
	} else {
		m := rec.Move
		moved := b.remove(m.To)
		original := moved
		if m.IsPromotion() {
			original = ColorKind(moved.Color, Pawn)
		}
		b.put(m.From, original)
		if !rec.Captured.IsEmpty() {
			b.put(rec.CapturedSquare, rec.Captured)
		}
	}

	b.setCastling(rec.PrevCastling)
	b.setEnPassant(rec.PrevEnPassantFile)
}

// IsSquareAttacked reports whether any of by's pieces attack sq under the
// current occupancy.
func (b *Board) IsSquareAttacked(sq Square, by Color) bool {
	occ := b.Occupancy()

	if pawnAttackMask[by.Opposite()][sq]&b.Bitboards[pieceIndex(by, Pawn)] != 0 {
		return true
	}
	if knightMask[sq]&b.Bitboards[pieceIndex(by, Knight)] != 0 {
		return true
	}
	if kingMask[sq]&b.Bitboards[pieceIndex(by, King)] != 0 {
		return true
	}
	rookLike := b.Bitboards[pieceIndex(by, Rook)] | b.Bitboards[pieceIndex(by, Queen)]
	if RookAttacks(sq, occ)&rookLike != 0 {
		return true
	}
	bishopLike := b.Bitboards[pieceIndex(by, Bishop)] | b.Bitboards[pieceIndex(by, Queen)]
	if BishopAttacks(sq, occ)&bishopLike != 0 {
		return true
	}
	return false
}

// IsInCheck reports whether c's king is currently attacked.
func (b *Board) IsInCheck(c Color) bool {
	return b.IsSquareAttacked(b.KingSquare(c), c.Opposite())
}
