// movegen.go implements pseudo-legal move generation for every piece kind.
// Legality (own king left in check) is not checked here — that is
// MakeMove's job; this package only guarantees a generated move's origin
// holds the moving piece and its destination is not occupied by a friendly
// piece.
//
// Sliders use Hyperbola Quintessence: for a slider on sq with ray mask L,
// forward = (occ & L) - 2*slider; backward = reverse(reverse(occ & L) -
// 2*reverse(slider)); attacks = (forward XOR backward) & L.

package chesscore

// GenerateAll appends every pseudo-legal move in pos to mvl. The caller is
// responsible for calling mvl.Reset() beforehand if reusing a list.
func GenerateAll(pos *Position, mvl *MoveList) {
	generatePawnMoves(pos, mvl, false)
	generateKnightMoves(pos, mvl, false)
	generateSliderMoves(pos, mvl, Bishop, false)
	generateSliderMoves(pos, mvl, Rook, false)
	generateSliderMoves(pos, mvl, Queen, false)
	generateKingMoves(pos, mvl, false)
}

// GenerateCaptures appends every pseudo-legal capture and promotion in pos
// to mvl (the subset a quiescence search needs). Quiet non-promoting moves
// are omitted.
func GenerateCaptures(pos *Position, mvl *MoveList) {
	generatePawnMoves(pos, mvl, true)
	generateKnightMoves(pos, mvl, true)
	generateSliderMoves(pos, mvl, Bishop, true)
	generateSliderMoves(pos, mvl, Rook, true)
	generateSliderMoves(pos, mvl, Queen, true)
	generateKingMoves(pos, mvl, true)
}

// hqAttack computes the Hyperbola Quintessence attack set for a slider on sq
// along the single ray named by mask, given the full board occupancy occ.
func hqAttack(occ Bitboard, sq Square, mask Bitboard) Bitboard {
	slider := Singleton(sq)
	o := occ & mask
	forward := o - 2*slider
	backward := Reverse(Reverse(o) - 2*Reverse(slider))
	return (forward ^ backward) & mask
}

func addPromotions(mvl *MoveList, from, to Square, isCapture bool) {
	mvl.Add(NewMove(from, to, promoFlag(Queen, isCapture)))
	mvl.Add(NewMove(from, to, promoFlag(Rook, isCapture)))
	mvl.Add(NewMove(from, to, promoFlag(Bishop, isCapture)))
	mvl.Add(NewMove(from, to, promoFlag(Knight, isCapture)))
}

func generatePawnMoves(pos *Position, mvl *MoveList, capturesOnly bool) {
	us := pos.SideToMove
	occ := pos.Board.AllBB()
	enemyOcc := pos.Board.ColourBB(Opposite(us))
	pawns := pos.Board.PieceBB(PieceOf(Pawn, us))

	var forward Square
	var startRank, promoRank int
	var attackMask *[64]Bitboard
	if us == White {
		forward, startRank, promoRank = 8, 1, 7
		attackMask = &whitePawnMask
	} else {
		forward, startRank, promoRank = -8, 6, 0
		attackMask = &blackPawnMask
	}

	for bb := pawns; bb != 0; {
		var from Square
		from, bb = PopLSB(bb)

		to := from + forward
		if IsValidSquare(to) && !Test(occ, to) {
			if Rank(to) == promoRank {
				addPromotions(mvl, from, to, false)
			} else if !capturesOnly {
				mvl.Add(NewMove(from, to, FlagQuiet))
				if Rank(from) == startRank {
					to2 := to + forward
					if !Test(occ, to2) {
						mvl.Add(NewMove(from, to2, FlagDoublePawn))
					}
				}
			}
		}

		for targets := attackMask[from] & enemyOcc; targets != 0; {
			var cto Square
			cto, targets = PopLSB(targets)
			if Rank(cto) == promoRank {
				addPromotions(mvl, from, cto, true)
			} else {
				mvl.Add(NewMove(from, cto, FlagCapture))
			}
		}

		if pos.EPTarget != NoSquare && Test(attackMask[from], pos.EPTarget) {
			mvl.Add(NewMove(from, pos.EPTarget, FlagEnPassant))
		}
	}
}

func generateKnightMoves(pos *Position, mvl *MoveList, capturesOnly bool) {
	us := pos.SideToMove
	ownOcc := pos.Board.ColourBB(us)
	enemyOcc := pos.Board.ColourBB(Opposite(us))
	knights := pos.Board.PieceBB(PieceOf(Knight, us))

	for bb := knights; bb != 0; {
		var from Square
		from, bb = PopLSB(bb)
		targets := knightMask[from] &^ ownOcc
		if capturesOnly {
			targets &= enemyOcc
		}
		addStepTargets(mvl, from, targets, enemyOcc)
	}
}

func generateKingMoves(pos *Position, mvl *MoveList, capturesOnly bool) {
	us := pos.SideToMove
	ownOcc := pos.Board.ColourBB(us)
	enemyOcc := pos.Board.ColourBB(Opposite(us))
	from := pos.Board.KingSquare(us)

	targets := kingMask[from] &^ ownOcc
	if capturesOnly {
		targets &= enemyOcc
	}
	addStepTargets(mvl, from, targets, enemyOcc)

	if capturesOnly {
		return
	}

	occ := pos.Board.AllBB()
	them := Opposite(us)
	if pos.CastlingRights&kingSideRight(us) != 0 {
		cs := castleSquaresFor(us, FlagCastleKing)
		if occ&cs.emptyMask == 0 && !IsAttacked(&pos.Board, cs.kingFrom, them) {
			mvl.Add(NewCastleKingMove(us))
		}
	}
	if pos.CastlingRights&queenSideRight(us) != 0 {
		cs := castleSquaresFor(us, FlagCastleQueen)
		if occ&cs.emptyMask == 0 && !IsAttacked(&pos.Board, cs.kingFrom, them) {
			mvl.Add(NewCastleQueenMove(us))
		}
	}
}

func generateSliderMoves(pos *Position, mvl *MoveList, role Role, capturesOnly bool) {
	us := pos.SideToMove
	ownOcc := pos.Board.ColourBB(us)
	enemyOcc := pos.Board.ColourBB(Opposite(us))
	occ := pos.Board.AllBB()
	pieces := pos.Board.PieceBB(PieceOf(role, us))

	for bb := pieces; bb != 0; {
		var from Square
		from, bb = PopLSB(bb)

		var attacks Bitboard
		switch role {
		case Bishop:
			attacks = hqAttack(occ, from, diagPosMask[from]) | hqAttack(occ, from, diagNegMask[from])
		case Rook:
			attacks = hqAttack(occ, from, fileMaskTbl[from]) | hqAttack(occ, from, rankMaskTbl[from])
		case Queen:
			attacks = hqAttack(occ, from, diagPosMask[from]) | hqAttack(occ, from, diagNegMask[from]) |
				hqAttack(occ, from, fileMaskTbl[from]) | hqAttack(occ, from, rankMaskTbl[from])
		}

		attacks &^= ownOcc
		if capturesOnly {
			attacks &= enemyOcc
		}
		addStepTargets(mvl, from, attacks, enemyOcc)
	}
}

// addStepTargets adds a quiet or capturing move for every bit of targets,
// distinguishing the two by membership in enemyOcc.
func addStepTargets(mvl *MoveList, from Square, targets, enemyOcc Bitboard) {
	for t := targets; t != 0; {
		var to Square
		to, t = PopLSB(t)
		if Test(enemyOcc, to) {
			mvl.Add(NewMove(from, to, FlagCapture))
		} else {
			mvl.Add(NewMove(from, to, FlagQuiet))
		}
	}
}
