package chesscore

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cmpPosition diffs the observable fields of two positions, including Hash,
// so a make-then-unmake round trip can be checked field-by-field.
func cmpPosition(t *testing.T, want, got *Position) {
	t.Helper()
	opts := cmp.AllowUnexported(Position{}, Board{})
	if diff := cmp.Diff(want, got, opts, cmp.Comparer(func(a, b []undoRecord) bool {
		return len(a) == len(b)
	})); diff != "" {
		t.Errorf("position mismatch (-want +got):\n%s", diff)
	}
}

func TestMakeUnmakeRoundTripQuiet(t *testing.T) {
	p := startPosition()
	before := p.Clone()

	require.Equal(t, Legal, p.MakeMove(NewMove(G1, F3, FlagQuiet)))
	p.UnmakeMove()

	cmpPosition(t, before, p)
}

func TestMakeUnmakeRoundTripDoublePawnPush(t *testing.T) {
	p := startPosition()
	before := p.Clone()

	require.Equal(t, Legal, p.MakeMove(NewMove(E2, E4, FlagDoublePawn)))
	assert.Equal(t, E3, p.EPTarget)
	p.UnmakeMove()

	cmpPosition(t, before, p)
}

func TestMakeUnmakeRoundTripCapture(t *testing.T) {
	s := newTestSource()
	s.mailbox[E1] = WhiteKing
	s.mailbox[E8] = BlackKing
	s.mailbox[D4] = WhiteQueen
	s.mailbox[D5] = BlackPawn
	s.side = White
	p := NewPosition(s)
	before := p.Clone()

	require.Equal(t, Legal, p.MakeMove(NewMove(D4, D5, FlagCapture)))
	assert.Equal(t, WhiteQueen, p.Board.PieceAt(D5))
	p.UnmakeMove()

	cmpPosition(t, before, p)
}

func TestMakeUnmakeRoundTripEnPassant(t *testing.T) {
	s := newTestSource()
	s.mailbox[E1] = WhiteKing
	s.mailbox[E8] = BlackKing
	s.mailbox[D5] = WhitePawn
	s.mailbox[E5] = BlackPawn
	s.side = White
	s.epTarget = E6
	p := NewPosition(s)
	before := p.Clone()

	require.Equal(t, Legal, p.MakeMove(NewMove(D5, E6, FlagEnPassant)))
	assert.Equal(t, NoPiece, p.Board.PieceAt(E5), "captured pawn must be removed from e5, not e6")
	assert.Equal(t, WhitePawn, p.Board.PieceAt(E6))
	p.UnmakeMove()

	cmpPosition(t, before, p)
	assert.Equal(t, BlackPawn, p.Board.PieceAt(E5))
}

func TestMakeUnmakeRoundTripCastling(t *testing.T) {
	s := newTestSource()
	s.mailbox[E1] = WhiteKing
	s.mailbox[H1] = WhiteRook
	s.mailbox[E8] = BlackKing
	s.side = White
	s.wk = true
	p := NewPosition(s)
	before := p.Clone()

	require.Equal(t, Legal, p.MakeMove(NewCastleKingMove(White)))
	assert.Equal(t, WhiteKing, p.Board.PieceAt(G1))
	assert.Equal(t, WhiteRook, p.Board.PieceAt(F1))
	p.UnmakeMove()

	cmpPosition(t, before, p)
}

func TestMakeUnmakeRoundTripPromotion(t *testing.T) {
	s := newTestSource()
	s.mailbox[E1] = WhiteKing
	s.mailbox[E8] = BlackKing
	s.mailbox[B7] = WhitePawn
	s.side = White
	p := NewPosition(s)
	before := p.Clone()

	require.Equal(t, Legal, p.MakeMove(NewMove(B7, B8, FlagPromoQueen)))
	assert.Equal(t, WhiteQueen, p.Board.PieceAt(B8))
	p.UnmakeMove()

	cmpPosition(t, before, p)
	assert.Equal(t, WhitePawn, p.Board.PieceAt(B7))
}

func TestMakeMoveRejectsMoveThatLeavesOwnKingInCheck(t *testing.T) {
	s := newTestSource()
	s.mailbox[E1] = WhiteKing
	s.mailbox[E2] = WhiteBishop // pinned: moving it exposes the king to the rook
	s.mailbox[E8] = BlackRook
	s.side = White
	p := NewPosition(s)
	before := p.Clone()

	require.Equal(t, Illegal, p.MakeMove(NewMove(E2, D3, FlagQuiet)))
	cmpPosition(t, before, p)
}

func TestMakeMoveRejectsCastleThroughCheck(t *testing.T) {
	s := newTestSource()
	s.mailbox[E1] = WhiteKing
	s.mailbox[H1] = WhiteRook
	s.mailbox[F8] = BlackRook // attacks f1, the king's transit square
	s.mailbox[E8] = BlackKing
	s.side = White
	s.wk = true
	p := NewPosition(s)
	before := p.Clone()

	require.Equal(t, Illegal, p.MakeMove(NewCastleKingMove(White)))
	cmpPosition(t, before, p)
}

func TestCastlingRightsClearedByKingMove(t *testing.T) {
	s := newTestSource()
	s.mailbox[E1] = WhiteKing
	s.mailbox[E8] = BlackKing
	s.side = White
	s.wk, s.wq = true, true
	p := NewPosition(s)

	require.Equal(t, Legal, p.MakeMove(NewMove(E1, F1, FlagQuiet)))
	assert.Equal(t, CastlingRights(0), p.CastlingRights&(CastleWK|CastleWQ))
}

func TestCastlingRightsClearedByRookCapture(t *testing.T) {
	s := newTestSource()
	s.mailbox[E1] = WhiteKing
	s.mailbox[E8] = BlackKing
	s.mailbox[H8] = BlackRook
	s.mailbox[H1] = WhiteRook
	s.mailbox[H7] = WhiteQueen
	s.side = White
	s.wk, s.bk = true, true
	p := NewPosition(s)

	require.Equal(t, Legal, p.MakeMove(NewMove(H7, H8, FlagCapture)))
	assert.Equal(t, CastlingRights(0), p.CastlingRights&CastleBK, "capturing the black rook on h8 must clear black's king-side right")
}

func TestHalfmoveClockResetsOnPawnMoveAndCapture(t *testing.T) {
	s := newTestSource()
	s.mailbox[E1] = WhiteKing
	s.mailbox[E8] = BlackKing
	s.mailbox[B1] = WhiteKnight
	s.mailbox[A2] = WhitePawn
	s.mailbox[D5] = BlackPawn
	s.side = White
	s.halfmoveClock = 10
	p := NewPosition(s)

	require.Equal(t, Legal, p.MakeMove(NewMove(B1, C3, FlagQuiet)))
	assert.Equal(t, 11, p.HalfmoveClock, "a non-pawn, non-capture move increments the clock")

	require.Equal(t, Legal, p.MakeMove(NewMove(E8, D8, FlagQuiet)))
	assert.Equal(t, 12, p.HalfmoveClock)

	require.Equal(t, Legal, p.MakeMove(NewMove(A2, A3, FlagQuiet)))
	assert.Equal(t, 0, p.HalfmoveClock, "a pawn move resets the clock")

	require.Equal(t, Legal, p.MakeMove(NewMove(D8, E8, FlagQuiet)))
	assert.Equal(t, 1, p.HalfmoveClock)

	require.Equal(t, Legal, p.MakeMove(NewMove(C3, D5, FlagCapture)))
	assert.Equal(t, 0, p.HalfmoveClock, "a capture resets the clock")
}

func TestHashMatchesFromScratchAfterMoves(t *testing.T) {
	p := startPosition()
	moves := []Move{
		NewMove(E2, E4, FlagDoublePawn),
		NewMove(E7, E5, FlagDoublePawn),
		NewMove(G1, F3, FlagQuiet),
	}
	for _, m := range moves {
		require.Equal(t, Legal, p.MakeMove(m))
	}
	assert.Equal(t, hashFromScratch(p), p.Hash)
}
