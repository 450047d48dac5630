// movegen.go implements pseudo-legal move generation (spec §4.5):
// king/knight via precomputed masks, sliding pieces via magic lookup,
// pawns via push/double-push/capture masks with promotion fan-out.
// Legality (in-check) filtering happens at make-time (§4.4), not here.
//
// Grounded on zurichess' engine/position.go genKnightMoves/genBishopMoves/
// genRookMoves/genKingMovesNear/genKingCastles/genPawn* family, adapted to
// this module's magic lookup and mask tables.
//
// Per SPEC_FULL.md §E (resolving spec §9's open question), pawn capture
// generation ORs the en-passant target square into the enemy-occupancy
// mask when one is set, so a capturing pawn on the correct rank generates
// the en-passant Direct move like any other diagonal capture.
package engine

// CalculatePseudoMoves appends every pseudo-legal move for the side to
// move into list (which the caller should Reset first).
func (b *Board) CalculatePseudoMoves(list *MoveList) {
	b.genPawnMoves(list)
	b.genKnightMoves(list)
	b.genSlidingMoves(list, Bishop)
	b.genSlidingMoves(list, Rook)
	b.genSlidingMoves(list, Queen)
	b.genKingMoves(list)
	b.genCastles(list)
}

func (b *Board) genKnightMoves(list *MoveList) {
	color := b.ActiveColor
	own := b.ColorOccupancy(color)
	pieces := b.Bitboards[pieceIndex(color, Knight)]
	for pieces != 0 {
		from := pieces.Pop()
		targets := knightMask[from] &^ own
		for targets != 0 {
			to := targets.Pop()
			list.Push(NewDirectMove(from, to))
		}
	}
}

func (b *Board) genKingMoves(list *MoveList) {
	color := b.ActiveColor
	own := b.ColorOccupancy(color)
	from := b.KingSquare(color)
	targets := kingMask[from] &^ own
	for targets != 0 {
		to := targets.Pop()
		list.Push(NewDirectMove(from, to))
	}
}

func (b *Board) genSlidingMoves(list *MoveList, kind Kind) {
	color := b.ActiveColor
	own := b.ColorOccupancy(color)
	occ := b.Occupancy()
	pieces := b.Bitboards[pieceIndex(color, kind)]
	for pieces != 0 {
		from := pieces.Pop()
		var targets Bitboard
		switch kind {
		case Rook:
			targets = RookAttacks(from, occ)
		case Bishop:
			targets = BishopAttacks(from, occ)
		case Queen:
			targets = QueenAttacks(from, occ)
		}
		targets &^= own
		for targets != 0 {
			to := targets.Pop()
			list.Push(NewDirectMove(from, to))
		}
	}
}

var promotionKinds = [4]Kind{Queen, Rook, Bishop, Knight}

func (b *Board) genPawnMoves(list *MoveList) {
	color := b.ActiveColor
	occ := b.Occupancy()
	enemy := b.ColorOccupancy(color.Opposite())
	if b.EnPassantFile >= 0 {
		epRank := 5
		if color == Black {
			epRank = 2
		}
		enemy |= RankFile(epRank, b.EnPassantFile).Bitboard()
	}

	promotionRank := 7
	if color == Black {
		promotionRank = 0
	}

	pawns := b.Bitboards[pieceIndex(color, Pawn)]
	for pawns != 0 {
		from := pawns.Pop()

		if push := pawnPushMask[color][from]; push&occ == 0 && push != 0 {
			b.pushPawnMove(list, from, push.LSB(), promotionRank)
			if double := pawnDoubleMask[color][from]; double != 0 && double&occ == 0 {
				list.Push(NewDirectMove(from, double.LSB()))
			}
		}

		captures := pawnAttackMask[color][from] & enemy
		for captures != 0 {
			to := captures.Pop()
			b.pushPawnMove(list, from, to, promotionRank)
		}
	}
}

func (b *Board) pushPawnMove(list *MoveList, from, to Square, promotionRank int) {
	if to.Rank() == promotionRank {
		for _, k := range promotionKinds {
			list.Push(NewPromotionMove(from, to, k))
		}
		return
	}
	list.Push(NewDirectMove(from, to))
}

func (b *Board) genCastles(list *MoveList) {
	color := b.ActiveColor
	rank := homeRank(color)
	occ := b.Occupancy()

	kingSide, queenSide := WhiteKingSide, WhiteQueenSide
	if color == Black {
		kingSide, queenSide = BlackKingSide, BlackQueenSide
	}

	if b.Castling&kingSide != 0 {
		f := RankFile(rank, 5).Bitboard()
		g := RankFile(rank, 6).Bitboard()
		if occ&(f|g) == 0 {
			list.Push(NewCastleMove(KingSide))
		}
	}
	if b.Castling&queenSide != 0 {
		bFile := RankFile(rank, 1).Bitboard()
		c := RankFile(rank, 2).Bitboard()
		d := RankFile(rank, 3).Bitboard()
		if occ&(bFile|c|d) == 0 {
			list.Push(NewCastleMove(QueenSide))
		}
	}
}
