// makemove.go implements MakeMove/UnmakeMove: the only way a Position's
// state may change after construction. Every attempted move is fully
// applied — board, hash, rights, clocks, side to move — and then, if it
// leaves the mover's own king in check, immediately unapplied via
// UnmakeMove before Illegal is reported: always push an undo record and
// unwind through it on an illegal attempt, rather than trying to predict
// legality before mutating anything.

package chesscore

// Legality is the outcome of an attempted MakeMove.
type Legality bool

const (
	Illegal Legality = false
	Legal   Legality = true
)

// undoRecord captures everything UnmakeMove needs to restore Position to
// its state immediately before the corresponding MakeMove call. capturedSq
// is recorded separately from the move's destination because an en passant
// capture removes a pawn that is not standing on the destination square.
type undoRecord struct {
	hash           uint64
	castlingRights CastlingRights
	epTarget       Square
	halfmoveClock  int
	move           Move
	captured       Piece
	capturedSq     Square
}

// MakeMove applies m to p. It always pushes an undo record and fully
// applies the move to the board, hash, rights, clocks and side to move;
// only afterward does it test whether the mover's own king is left in
// check (including, for castling, the origin and transit squares). If so
// it unwinds via UnmakeMove and reports Illegal — the caller must not
// assume the position was left mutated when Illegal comes back.
//
// Panics if the origin square is empty, which indicates the move did not
// come from this position's own pseudo-legal generator.
func (p *Position) MakeMove(m Move) Legality {
	from, to := m.From(), m.To()
	mover := p.SideToMove
	moved := p.Board.PieceAt(from)
	if moved == NoPiece {
		panic("chesscore: MakeMove: origin square is empty")
	}

	captured := NoPiece
	capturedSq := NoSquare
	switch {
	case m.IsEnPassant():
		captured = PieceOf(Pawn, Opposite(mover))
		if mover == White {
			capturedSq = to - 8
		} else {
			capturedSq = to + 8
		}
	case m.IsCapture():
		captured = p.Board.PieceAt(to)
		capturedSq = to
	}

	p.undo = append(p.undo, undoRecord{
		hash:           p.Hash,
		castlingRights: p.CastlingRights,
		epTarget:       p.EPTarget,
		halfmoveClock:  p.HalfmoveClock,
		move:           m,
		captured:       captured,
		capturedSq:     capturedSq,
	})

	if p.EPTarget != NoSquare {
		p.Hash ^= zkeyEP[p.EPTarget]
	}
	p.EPTarget = NoSquare

	switch m.Flag() {
	case FlagQuiet, FlagDoublePawn:
		p.Board.Move(moved, from, to)
		p.Hash ^= zkeyPiece[moved][from] ^ zkeyPiece[moved][to]
		if m.Flag() == FlagDoublePawn {
			if mover == White {
				p.EPTarget = from + 8
			} else {
				p.EPTarget = from - 8
			}
			p.Hash ^= zkeyEP[p.EPTarget]
		}

	case FlagCapture:
		p.Board.Remove(captured, to)
		p.Hash ^= zkeyPiece[captured][to]
		p.Board.Move(moved, from, to)
		p.Hash ^= zkeyPiece[moved][from] ^ zkeyPiece[moved][to]

	case FlagEnPassant:
		p.Board.Remove(captured, capturedSq)
		p.Hash ^= zkeyPiece[captured][capturedSq]
		p.Board.Move(moved, from, to)
		p.Hash ^= zkeyPiece[moved][from] ^ zkeyPiece[moved][to]

	case FlagCastleKing, FlagCastleQueen:
		cs := castleSquaresFor(mover, m.Flag())
		p.Board.Move(moved, from, to)
		p.Hash ^= zkeyPiece[moved][from] ^ zkeyPiece[moved][to]
		rook := PieceOf(Rook, mover)
		p.Board.Move(rook, cs.rookFrom, cs.rookTo)
		p.Hash ^= zkeyPiece[rook][cs.rookFrom] ^ zkeyPiece[rook][cs.rookTo]

	default: // promotion, quiet or capture
		if m.IsCapture() {
			p.Board.Remove(captured, to)
			p.Hash ^= zkeyPiece[captured][to]
		}
		p.Board.Remove(moved, from)
		p.Hash ^= zkeyPiece[moved][from]
		promoted := PieceOf(m.PromotedRole(), mover)
		p.Board.Add(promoted, to)
		p.Hash ^= zkeyPiece[promoted][to]
	}

	newRights := p.CastlingRights
	switch RoleOf(moved) {
	case King:
		newRights &^= kingSideRight(mover) | queenSideRight(mover)
	case Rook:
		switch from {
		case A1:
			newRights &^= CastleWQ
		case H1:
			newRights &^= CastleWK
		case A8:
			newRights &^= CastleBQ
		case H8:
			newRights &^= CastleBK
		}
	}
	if captured == PieceOf(Rook, Opposite(mover)) {
		switch capturedSq {
		case A1:
			newRights &^= CastleWQ
		case H1:
			newRights &^= CastleWK
		case A8:
			newRights &^= CastleBQ
		case H8:
			newRights &^= CastleBK
		}
	}
	if newRights != p.CastlingRights {
		p.Hash ^= zkeyCastle[p.CastlingRights] ^ zkeyCastle[newRights]
		p.CastlingRights = newRights
	}

	if RoleOf(moved) == Pawn || captured != NoPiece {
		p.HalfmoveClock = 0
	} else {
		p.HalfmoveClock++
	}

	p.SideToMove = Opposite(p.SideToMove)
	p.Hash ^= zkeySide
	p.Ply++

	attacker := p.SideToMove
	ownKingSq := p.Board.KingSquare(mover)
	illegal := IsAttacked(&p.Board, ownKingSq, attacker)
	if !illegal && m.IsCastle() {
		cs := castleSquaresFor(mover, m.Flag())
		if IsAttacked(&p.Board, cs.kingFrom, attacker) || IsAttacked(&p.Board, cs.kingTransit, attacker) {
			illegal = true
		}
	}

	if illegal {
		p.UnmakeMove()
		return Illegal
	}
	return Legal
}

// UnmakeMove reverses the most recent MakeMove call, restoring Position to
// the exact state (including Hash, taken verbatim from the undo record
// rather than re-derived by XOR) it had beforehand. Panics if called with
// an empty undo stack.
func (p *Position) UnmakeMove() {
	if len(p.undo) == 0 {
		panic("chesscore: UnmakeMove: undo stack is empty")
	}
	rec := p.undo[len(p.undo)-1]
	p.undo = p.undo[:len(p.undo)-1]

	m := rec.move
	from, to := m.From(), m.To()

	p.SideToMove = Opposite(p.SideToMove)
	mover := p.SideToMove
	p.Ply--

	switch m.Flag() {
	case FlagQuiet, FlagDoublePawn:
		moved := p.Board.PieceAt(to)
		p.Board.Move(moved, to, from)

	case FlagCapture:
		moved := p.Board.PieceAt(to)
		p.Board.Move(moved, to, from)
		p.Board.Add(rec.captured, to)

	case FlagEnPassant:
		moved := p.Board.PieceAt(to)
		p.Board.Move(moved, to, from)
		p.Board.Add(rec.captured, rec.capturedSq)

	case FlagCastleKing, FlagCastleQueen:
		cs := castleSquaresFor(mover, m.Flag())
		king := p.Board.PieceAt(cs.kingTo)
		p.Board.Move(king, cs.kingTo, cs.kingFrom)
		rook := p.Board.PieceAt(cs.rookTo)
		p.Board.Move(rook, cs.rookTo, cs.rookFrom)

	default: // promotion
		promoted := p.Board.PieceAt(to)
		p.Board.Remove(promoted, to)
		if m.IsCapture() {
			p.Board.Add(rec.captured, to)
		}
		p.Board.Add(PieceOf(Pawn, mover), from)
	}

	p.CastlingRights = rec.castlingRights
	p.EPTarget = rec.epTarget
	p.HalfmoveClock = rec.halfmoveClock
	p.Hash = rec.hash
}
