// bitboard.go implements the 64-bit set operations move generation and board
// bookkeeping are built on: set/clear/test, population count, bitscan+pop,
// bit-reverse, and the square-to-singleton-mask conversion.

package chesscore

import "math/bits"

// Bitboard is a set of squares, one bit per square.
type Bitboard = uint64

// Singleton returns the one-bit bitboard for sq.
func Singleton(sq Square) Bitboard { return Bitboard(1) << uint(sq) }

// Set returns bb with sq's bit set.
func Set(bb Bitboard, sq Square) Bitboard { return bb | Singleton(sq) }

// Clear returns bb with sq's bit cleared.
func Clear(bb Bitboard, sq Square) Bitboard { return bb &^ Singleton(sq) }

// Test reports whether sq's bit is set in bb.
func Test(bb Bitboard, sq Square) bool { return bb&Singleton(sq) != 0 }

// PopCount returns the number of set bits in bb.
func PopCount(bb Bitboard) int { return bits.OnesCount64(bb) }

// PopLSB returns the square of bb's least significant set bit and bb with
// that bit cleared. Undefined for bb == 0.
func PopLSB(bb Bitboard) (Square, Bitboard) {
	sq := Square(bits.TrailingZeros64(bb))
	return sq, bb & (bb - 1)
}

// BitScan returns the square of bb's least significant set bit without
// clearing it. Undefined for bb == 0.
func BitScan(bb Bitboard) Square { return Square(bits.TrailingZeros64(bb)) }

// Reverse reverses the bit order of bb (equivalently, rotates the board by
// 180 degrees, so a1 maps to h8). Required by the Hyperbola Quintessence
// slider formula.
func Reverse(bb Bitboard) Bitboard { return bits.Reverse64(bb) }
