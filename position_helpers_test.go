package chesscore

// testSource is a minimal in-package PositionSource for tests that need to
// build a Position without depending on the fen package (which imports this
// one, and so cannot be imported back from here).
type testSource struct {
	mailbox        [64]Piece
	side           Colour
	wk, wq, bk, bq bool
	epTarget       Square
	halfmoveClock  int
	fullmoveNumber int
}

func newTestSource() *testSource {
	s := &testSource{fullmoveNumber: 1, epTarget: NoSquare}
	for sq := range s.mailbox {
		s.mailbox[sq] = NoPiece
	}
	return s
}

func (s *testSource) PieceAt(sq Square) Piece              { return s.mailbox[sq] }
func (s *testSource) SideToMove() Colour                   { return s.side }
func (s *testSource) CastlingRights() (wk, wq, bk, bq bool) { return s.wk, s.wq, s.bk, s.bq }
func (s *testSource) EPTarget() Square                     { return s.epTarget }
func (s *testSource) HalfmoveClock() int                   { return s.halfmoveClock }
func (s *testSource) FullmoveNumber() int                  { return s.fullmoveNumber }

// startPosition returns a Position set up as the standard chess starting
// array, White to move, full castling rights, no en passant target.
func startPosition() *Position {
	s := newTestSource()
	back := [8]Role{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < 8; file++ {
		s.mailbox[NewSquare(0, file)] = PieceOf(back[file], White)
		s.mailbox[NewSquare(1, file)] = PieceOf(Pawn, White)
		s.mailbox[NewSquare(6, file)] = PieceOf(Pawn, Black)
		s.mailbox[NewSquare(7, file)] = PieceOf(back[file], Black)
	}
	s.side = White
	s.wk, s.wq, s.bk, s.bq = true, true, true, true
	return NewPosition(s)
}
