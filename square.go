// square.go implements the square/piece/colour model: enumerated squares,
// ranks, files, pieces, and the cheap conversions between them.

package chesscore

// Square is an integer in [0,63]. Bit i of a bitboard corresponds to square i.
// a1..h1 are 0..7, a8..h8 are 56..63.
type Square int

// Indices of each square.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	// NoSquare marks the absence of a square, e.g. an inactive en passant target.
	NoSquare Square = -1
)

// SquareString maps each board square to its algebraic string representation.
var SquareString = [64]string{
	"a1", "b1", "c1", "d1", "e1", "f1", "g1", "h1",
	"a2", "b2", "c2", "d2", "e2", "f2", "g2", "h2",
	"a3", "b3", "c3", "d3", "e3", "f3", "g3", "h3",
	"a4", "b4", "c4", "d4", "e4", "f4", "g4", "h4",
	"a5", "b5", "c5", "d5", "e5", "f5", "g5", "h5",
	"a6", "b6", "c6", "d6", "e6", "f6", "g6", "h6",
	"a7", "b7", "c7", "d7", "e7", "f7", "g7", "h7",
	"a8", "b8", "c8", "d8", "e8", "f8", "g8", "h8",
}

// IsValidSquare reports whether sq is a real board square.
func IsValidSquare(sq Square) bool { return sq >= A1 && sq <= H8 }

// Rank returns the 0-based rank (0 = rank 1) of sq.
func Rank(sq Square) int { return int(sq) >> 3 }

// File returns the 0-based file (0 = file a) of sq.
func File(sq Square) int { return int(sq) & 7 }

// NewSquare builds a square from a 0-based rank and file.
// Returns NoSquare if rank or file is out of range.
func NewSquare(rank, file int) Square {
	if rank < 0 || rank > 7 || file < 0 || file > 7 {
		return NoSquare
	}
	return Square(rank*8 + file)
}

// Colour is one of the two sides of a chess game.
type Colour int

const (
	White Colour = iota
	Black
)

// IsValidColour reports whether c is White or Black.
func IsValidColour(c Colour) bool { return c == White || c == Black }

// Opposite returns the colour of the other side.
func Opposite(c Colour) Colour { return c ^ 1 }

// Role is a piece kind, independent of colour.
type Role int

const (
	Pawn Role = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoRole Role = -1
)

// Piece is one of the twelve (role, colour) combinations that can sit on a
// square, indexed to double as a bitboard-array index (see board.go).
type Piece int

const (
	WhitePawn Piece = iota
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
	// NoPiece marks an empty mailbox slot.
	NoPiece Piece = -1
)

// PieceSymbols maps each piece to its FEN/ASCII symbol.
var PieceSymbols = [12]byte{
	'P', 'N', 'B', 'R', 'Q', 'K',
	'p', 'n', 'b', 'r', 'q', 'k',
}

// RoleOf returns the role of a piece. Undefined for NoPiece.
func RoleOf(p Piece) Role { return Role(int(p) % 6) }

// ColourOf returns the colour of a piece. Undefined for NoPiece.
func ColourOf(p Piece) Colour { return Colour(int(p) / 6) }

// PieceOf composes a role and a colour into a piece.
func PieceOf(r Role, c Colour) Piece { return Piece(int(c)*6 + int(r)) }

// IsValidPiece reports whether p is one of the twelve real pieces.
func IsValidPiece(p Piece) bool { return p >= WhitePawn && p <= BlackKing }

// ValueOf returns the material value of a role, in centipawns.
func ValueOf(r Role) int {
	switch r {
	case Pawn:
		return 100
	case Knight:
		return 325
	case Bishop:
		return 325
	case Rook:
		return 500
	case Queen:
		return 1000
	case King:
		return 50000
	default:
		return 0
	}
}
