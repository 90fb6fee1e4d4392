// position.go implements Position: a Board plus side-to-move, castling
// rights, en passant target, halfmove clock, ply, and a live, incrementally
// maintained Zobrist hash.

package chesscore

// Position is the mutable game state the rest of this package operates on.
// All mutation after construction goes through MakeMove/UnmakeMove; direct
// field writes would desynchronize Hash from the rest of the state.
type Position struct {
	Board          Board
	SideToMove     Colour
	CastlingRights CastlingRights
	EPTarget       Square
	HalfmoveClock  int
	Ply            int
	Hash           uint64

	undo []undoRecord
}

// PositionSource is a parsed-FEN structure (or any other position builder)
// that NewPosition consumes to construct a Position. This package never
// parses FEN text itself; see the fen package for the concrete
// implementation.
type PositionSource interface {
	PieceAt(sq Square) Piece
	SideToMove() Colour
	CastlingRights() (wk, wq, bk, bq bool)
	EPTarget() Square
	HalfmoveClock() int
	FullmoveNumber() int
}

// NewPosition builds a Position from a PositionSource, setting every field
// and computing Hash from scratch.
func NewPosition(src PositionSource) *Position {
	p := &Position{
		Board:         *NewBoard(),
		SideToMove:    src.SideToMove(),
		EPTarget:      src.EPTarget(),
		HalfmoveClock: src.HalfmoveClock(),
	}

	for sq := A1; sq <= H8; sq++ {
		if piece := src.PieceAt(sq); piece != NoPiece {
			p.Board.Add(piece, sq)
		}
	}

	wk, wq, bk, bq := src.CastlingRights()
	if wk {
		p.CastlingRights |= CastleWK
	}
	if wq {
		p.CastlingRights |= CastleWQ
	}
	if bk {
		p.CastlingRights |= CastleBK
	}
	if bq {
		p.CastlingRights |= CastleBQ
	}

	// Ply counts half-moves from the start of this game; a FEN's fullmove
	// number is 1-based and only increments after Black moves.
	p.Ply = (src.FullmoveNumber()-1)*2 + int(p.SideToMove)

	p.Hash = hashFromScratch(p)

	return p
}

// Clone returns a deep copy of p, including a fresh (empty) undo stack. Used
// where a caller needs an independent Position to mutate in another
// goroutine; a single Position is not safe to share across threads even for
// make/unmake.
func (p *Position) Clone() *Position {
	c := &Position{
		Board:          p.Board.clone(),
		SideToMove:     p.SideToMove,
		CastlingRights: p.CastlingRights,
		EPTarget:       p.EPTarget,
		HalfmoveClock:  p.HalfmoveClock,
		Ply:            p.Ply,
		Hash:           p.Hash,
	}
	return c
}
