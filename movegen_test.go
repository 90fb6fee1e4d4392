package chesscore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAllStartingPositionMoveCount(t *testing.T) {
	p := startPosition()
	var mvl MoveList
	GenerateAll(p, &mvl)
	// The standard opening position has exactly 20 pseudo-legal (= legal,
	// here, since nothing is pinned or checking) moves: 16 pawn moves
	// (8 single + 8 double) and 4 knight moves.
	assert.Equal(t, 20, mvl.Len)
}

func TestGenerateCapturesOmitsQuietMoves(t *testing.T) {
	s := newTestSource()
	s.mailbox[E1] = WhiteKing
	s.mailbox[E8] = BlackKing
	s.mailbox[D4] = WhiteQueen
	s.mailbox[D5] = BlackPawn
	s.side = White
	p := NewPosition(s)

	var mvl MoveList
	GenerateCaptures(p, &mvl)
	for i := 0; i < mvl.Len; i++ {
		assert.True(t, mvl.Moves[i].IsCapture() || mvl.Moves[i].IsPromotion())
	}

	found := false
	for i := 0; i < mvl.Len; i++ {
		if mvl.Moves[i].From() == D4 && mvl.Moves[i].To() == D5 {
			found = true
		}
	}
	assert.True(t, found, "queen takes pawn on d5 must appear in the captures-only list")
}

func TestGeneratePawnDoublePushOnlyFromStartRank(t *testing.T) {
	s := newTestSource()
	s.mailbox[E1] = WhiteKing
	s.mailbox[E8] = BlackKing
	s.mailbox[E3] = WhitePawn
	s.side = White
	p := NewPosition(s)

	var mvl MoveList
	GenerateAll(p, &mvl)
	for i := 0; i < mvl.Len; i++ {
		assert.False(t, mvl.Moves[i].IsDoublePawn(), "a pawn not on its start rank must never get a double push")
	}
}

func TestGenerateEnPassantMove(t *testing.T) {
	s := newTestSource()
	s.mailbox[E1] = WhiteKing
	s.mailbox[E8] = BlackKing
	s.mailbox[D5] = WhitePawn
	s.mailbox[E5] = BlackPawn
	s.side = White
	s.epTarget = E6
	p := NewPosition(s)

	var mvl MoveList
	GenerateAll(p, &mvl)

	found := false
	for i := 0; i < mvl.Len; i++ {
		if mvl.Moves[i].IsEnPassant() && mvl.Moves[i].From() == D5 && mvl.Moves[i].To() == E6 {
			found = true
		}
	}
	assert.True(t, found, "en passant capture must be generated when an ep target is set")
}

func TestGenerateCastleMovesRequireEmptySquares(t *testing.T) {
	s := newTestSource()
	s.mailbox[E1] = WhiteKing
	s.mailbox[H1] = WhiteRook
	s.mailbox[E8] = BlackKing
	s.side = White
	s.wk = true
	p := NewPosition(s)

	var mvl MoveList
	GenerateAll(p, &mvl)
	found := false
	for i := 0; i < mvl.Len; i++ {
		if mvl.Moves[i].IsCastleKing() {
			found = true
		}
	}
	assert.True(t, found)

	s.mailbox[F1] = WhiteBishop
	p2 := NewPosition(s)
	mvl.Reset()
	GenerateAll(p2, &mvl)
	for i := 0; i < mvl.Len; i++ {
		assert.False(t, mvl.Moves[i].IsCastleKing(), "castling must not be offered through an occupied square")
	}
}

func TestHQAttackMatchesBetweenForOpenRook(t *testing.T) {
	occ := Singleton(A1) | Singleton(A8)
	attacks := hqAttack(occ, A1, fileMaskTbl[A1])
	assert.Equal(t, Between(A1, A8)|Singleton(A8), attacks)
}
