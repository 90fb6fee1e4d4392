// perft.go implements Perft: the node-count search driver used both as a
// correctness harness (against known node counts for standard test
// positions) and as a raw move-generation throughput benchmark.

package chesscore

// Perft counts the leaf nodes of the pseudo-legal game tree rooted at pos,
// searched to the given depth, after discarding branches MakeMove reports
// as Illegal. depth 0 always returns 1 (the position itself is the single
// leaf). Every move MakeMove applies is unmade before Perft returns,
// regardless of whether it was legal, so pos is left unmodified.
func Perft(depth int, pos *Position) uint64 {
	if depth == 0 {
		return 1
	}

	var mvl MoveList
	GenerateAll(pos, &mvl)

	var nodes uint64
	for i := 0; i < mvl.Len; i++ {
		m := mvl.Moves[i]
		if pos.MakeMove(m) == Legal {
			nodes += Perft(depth-1, pos)
			pos.UnmakeMove()
		}
	}

	return nodes
}

// Divide runs Perft one ply at a time from pos, returning the node count
// contributed by each legal root move. Used to localize a perft mismatch
// against a known-good engine's per-move breakdown.
func Divide(depth int, pos *Position) map[string]uint64 {
	result := make(map[string]uint64)
	if depth == 0 {
		return result
	}

	var mvl MoveList
	GenerateAll(pos, &mvl)

	for i := 0; i < mvl.Len; i++ {
		m := mvl.Moves[i]
		if pos.MakeMove(m) == Legal {
			result[MoveString(m)] = Perft(depth-1, pos)
			pos.UnmakeMove()
		}
	}

	return result
}
