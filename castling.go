// castling.go defines the four independent castling-right bits Position
// tracks, and the fixed rook/king squares each castle type touches.

package chesscore

// CastlingRights is a 4-bit set of {WK, WQ, BK, BQ}, also used directly as
// the index into zkeyCastle.
type CastlingRights int

const (
	CastleWK CastlingRights = 1 << iota
	CastleWQ
	CastleBK
	CastleBQ
)

// kingSideRight and queenSideRight return colour c's king-side and
// queen-side castling right bits.
func kingSideRight(c Colour) CastlingRights {
	if c == White {
		return CastleWK
	}
	return CastleBK
}

func queenSideRight(c Colour) CastlingRights {
	if c == White {
		return CastleWQ
	}
	return CastleBQ
}

// castleSquares names the fixed endpoints and transit squares for one
// castle type.
type castleSquares struct {
	kingFrom, kingTo   Square
	rookFrom, rookTo   Square
	kingTransit        Square // square the king crosses (must not be attacked)
	emptyMask          Bitboard
}

var (
	castleWKSquares = castleSquares{E1, G1, H1, F1, F1, Singleton(F1) | Singleton(G1)}
	castleWQSquares = castleSquares{E1, C1, A1, D1, D1, Singleton(B1) | Singleton(C1) | Singleton(D1)}
	castleBKSquares = castleSquares{E8, G8, H8, F8, F8, Singleton(F8) | Singleton(G8)}
	castleBQSquares = castleSquares{E8, C8, A8, D8, D8, Singleton(B8) | Singleton(C8) | Singleton(D8)}
)

// castleSquaresFor returns the fixed squares for colour c's castle of the
// kind named by flag, which must be FlagCastleKing or FlagCastleQueen.
func castleSquaresFor(c Colour, flag MoveFlag) castleSquares {
	switch {
	case flag == FlagCastleKing && c == White:
		return castleWKSquares
	case flag == FlagCastleKing && c == Black:
		return castleBKSquares
	case flag == FlagCastleQueen && c == White:
		return castleWQSquares
	default:
		return castleBQSquares
	}
}
