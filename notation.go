// notation.go implements a human-readable move string: "e2-e4", "e7-e8=Q"
// for promotions, "e1-g1" for castling (the rook's own movement is
// implicit). This is distinct from bare UCI notation, which omits the dash.

package chesscore

var promoSymbol = [4]byte{'N', 'B', 'R', 'Q'}

// MoveString renders m as "e2-e4", or "e7-e8=Q" if m is a promotion.
func MoveString(m Move) string {
	s := SquareString[m.From()] + "-" + SquareString[m.To()]
	if m.IsPromotion() {
		s += "=" + string(promoSymbol[m.Flag()&0x3])
	}
	return s
}
