// zobrist.go implements the Zobrist hashing scheme: a 64-bit fingerprint of
// a Position, maintained incrementally across MakeMove/UnmakeMove so it
// never needs to be recomputed from scratch during search.

package chesscore

import "math/rand/v2"

var (
	zkeyPiece   [12][64]uint64
	zkeySide    uint64
	zkeyCastle  [16]uint64
	zkeyEP      [64]uint64
)

// zobristSeed1/2 seed the key generator with a fixed constant so keys are
// deterministic across runs.
const zobristSeed1, zobristSeed2 = 0x9E3779B97F4A7C15, 0xBF58476D1CE4E5B9

// initZobristKeys fills the Zobrist key tables. Called once from InitCore.
func initZobristKeys() {
	rng := rand.New(rand.NewPCG(zobristSeed1, zobristSeed2))

	for p := WhitePawn; p <= BlackKing; p++ {
		for sq := A1; sq <= H8; sq++ {
			zkeyPiece[p][sq] = rng.Uint64()
		}
	}

	for sq := A1; sq <= H8; sq++ {
		zkeyEP[sq] = rng.Uint64()
	}

	for i := range zkeyCastle {
		zkeyCastle[i] = rng.Uint64()
	}

	zkeySide = rng.Uint64()
}

// hashFromScratch recomputes a Position's Zobrist key from its current
// field values, independent of any incrementally-maintained Hash. Used by
// the constructor and by tests that check the incremental hash never
// drifts from a from-scratch recomputation.
func hashFromScratch(p *Position) uint64 {
	var h uint64

	for sq := A1; sq <= H8; sq++ {
		if piece := p.Board.PieceAt(sq); piece != NoPiece {
			h ^= zkeyPiece[piece][sq]
		}
	}

	if p.SideToMove == Black {
		h ^= zkeySide
	}

	h ^= zkeyCastle[p.CastlingRights]

	if p.EPTarget != NoSquare {
		h ^= zkeyEP[p.EPTarget]
	}

	return h
}
