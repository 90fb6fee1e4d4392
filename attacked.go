// attacked.go implements the attack checker: tests whether a given square
// is attacked by a given side, short-circuiting pawns, then knights, then
// the king, then sliders, cheapest test first.

package chesscore

// IsAttacked reports whether sq is attacked by any piece of colour by,
// given the current occupancy of board.
func IsAttacked(board *Board, sq Square, by Colour) bool {
	// 1. Pawns: a pawn of `by` that could capture onto sq is one standing on
	// a square that sq's opposite-coloured pawn-attack mask reaches.
	var enemyPawnAttackMask Bitboard
	if by == White {
		enemyPawnAttackMask = blackPawnMask[sq]
	} else {
		enemyPawnAttackMask = whitePawnMask[sq]
	}
	if enemyPawnAttackMask&board.PieceBB(PieceOf(Pawn, by)) != 0 {
		return true
	}

	// 2. Knights.
	if knightMask[sq]&board.PieceBB(PieceOf(Knight, by)) != 0 {
		return true
	}

	// 3. King.
	if kingMask[sq]&board.PieceBB(PieceOf(King, by)) != 0 {
		return true
	}

	// 4. Sliders: rook/queen along a shared rank or file, bishop/queen along
	// a shared diagonal, with nothing occupying the squares strictly
	// between the slider and sq.
	occ := board.AllBB()

	rooksQueens := board.PieceBB(PieceOf(Rook, by)) | board.PieceBB(PieceOf(Queen, by))
	for bb := rooksQueens; bb != 0; {
		var from Square
		from, bb = PopLSB(bb)
		onLine := rankMaskTbl[from]&Singleton(sq) != 0 || fileMaskTbl[from]&Singleton(sq) != 0
		if onLine && Between(from, sq)&occ == 0 {
			return true
		}
	}

	bishopsQueens := board.PieceBB(PieceOf(Bishop, by)) | board.PieceBB(PieceOf(Queen, by))
	for bb := bishopsQueens; bb != 0; {
		var from Square
		from, bb = PopLSB(bb)
		onDiag := diagPosMask[from]&Singleton(sq) != 0 || diagNegMask[from]&Singleton(sq) != 0
		if onDiag && Between(from, sq)&occ == 0 {
			return true
		}
	}

	return false
}
