package board

import "chessgo/move"

// Perft counts the leaf nodes of the legal move tree rooted at b's
// current position, to the given depth. Perft(0) is 1 by convention.
// It is a pure move-counter: it does not consult or update the status
// flags, only GenerateAllLegalMoves and applyMove/reverseTop.
func (b *Board) Perft(depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var moves move.Moves
	b.GenerateAllLegalMoves(&moves, false)
	if depth == 1 {
		return uint64(moves.Len())
	}
	var nodes uint64
	for i := 0; i < moves.Len(); i++ {
		b.applyMove(moves.Get(i))
		nodes += b.Perft(depth - 1)
		b.reverseTop()
	}
	return nodes
}

// PerftDivide returns, for each legal move at the root, the perft count
// of the subtree rooted after playing it — useful for isolating a
// divergence against a reference perft value.
func (b *Board) PerftDivide(depth int) map[string]uint64 {
	result := make(map[string]uint64)
	var moves move.Moves
	b.GenerateAllLegalMoves(&moves, false)
	for i := 0; i < moves.Len(); i++ {
		mv := moves.Get(i)
		b.applyMove(mv)
		result[mv.String()] = b.Perft(depth - 1)
		b.reverseTop()
	}
	return result
}
