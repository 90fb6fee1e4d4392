// move.go implements the packed 16-bit Move encoding: bits 0-5 destination,
// bits 6-11 origin, bits 12-15 a 4-bit flag identifying the
// quiet/capture/castle/en-passant/promotion kind, with the promoted role
// folded directly into the flag nibble rather than kept as a separate field.

package chesscore

// Move is a packed 16-bit chess move.
type Move uint16

// MoveFlag occupies bits 12-15 of a Move.
type MoveFlag uint16

const (
	FlagQuiet       MoveFlag = 0x0
	FlagDoublePawn  MoveFlag = 0x1
	FlagCastleKing  MoveFlag = 0x2
	FlagCastleQueen MoveFlag = 0x3
	FlagCapture     MoveFlag = 0x4
	FlagEnPassant   MoveFlag = 0x5
	// 0x6, 0x7 are unused.
	FlagPromoKnight        MoveFlag = 0x8
	FlagPromoBishop        MoveFlag = 0x9
	FlagPromoRook          MoveFlag = 0xA
	FlagPromoQueen         MoveFlag = 0xB
	FlagPromoCaptureKnight MoveFlag = 0xC
	FlagPromoCaptureBishop MoveFlag = 0xD
	FlagPromoCaptureRook   MoveFlag = 0xE
	FlagPromoCaptureQueen  MoveFlag = 0xF
)

// NewMove packs a from/to/flag triple into a Move.
func NewMove(from, to Square, flag MoveFlag) Move {
	return Move(uint16(to)&0x3F | (uint16(from)&0x3F)<<6 | uint16(flag)<<12)
}

// NewCastleKingMove builds a king-side castle move for colour c.
func NewCastleKingMove(c Colour) Move {
	if c == White {
		return NewMove(E1, G1, FlagCastleKing)
	}
	return NewMove(E8, G8, FlagCastleKing)
}

// NewCastleQueenMove builds a queen-side castle move for colour c.
func NewCastleQueenMove(c Colour) Move {
	if c == White {
		return NewMove(E1, C1, FlagCastleQueen)
	}
	return NewMove(E8, C8, FlagCastleQueen)
}

// From returns the move's origin square.
func (m Move) From() Square { return Square(m>>6) & 0x3F }

// To returns the move's destination square.
func (m Move) To() Square { return Square(m) & 0x3F }

// Flag returns the move's 4-bit flag.
func (m Move) Flag() MoveFlag { return MoveFlag(m>>12) & 0xF }

// IsCapture reports whether the move removes an enemy piece: a plain
// capture, a promotion-capture, or en passant (whose captured pawn does not
// stand on the destination square).
func (m Move) IsCapture() bool {
	f := m.Flag()
	return f == FlagCapture || f == FlagEnPassant || f >= FlagPromoCaptureKnight
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool { return m.Flag()&0x8 != 0 }

// IsEnPassant reports whether the move is an en passant capture.
func (m Move) IsEnPassant() bool { return m.Flag() == FlagEnPassant }

// IsCastleKing reports whether the move is a king-side castle.
func (m Move) IsCastleKing() bool { return m.Flag() == FlagCastleKing }

// IsCastleQueen reports whether the move is a queen-side castle.
func (m Move) IsCastleQueen() bool { return m.Flag() == FlagCastleQueen }

// IsCastle reports whether the move is a castle of either side.
func (m Move) IsCastle() bool { return m.IsCastleKing() || m.IsCastleQueen() }

// IsDoublePawn reports whether the move is a double pawn push.
func (m Move) IsDoublePawn() bool { return m.Flag() == FlagDoublePawn }

// PromotedRole returns the role a promotion move promotes to. Undefined if
// the move is not a promotion.
func (m Move) PromotedRole() Role {
	switch m.Flag() & 0x3 {
	case 0x0:
		return Knight
	case 0x1:
		return Bishop
	case 0x2:
		return Rook
	default:
		return Queen
	}
}

func promoFlag(r Role, isCapture bool) MoveFlag {
	var base MoveFlag
	switch r {
	case Knight:
		base = FlagPromoKnight
	case Bishop:
		base = FlagPromoBishop
	case Rook:
		base = FlagPromoRook
	default:
		base = FlagPromoQueen
	}
	if isCapture {
		base += FlagPromoCaptureKnight - FlagPromoKnight
	}
	return base
}
