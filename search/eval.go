package search

import (
	"chessgo/board"
	"chessgo/piece"
)

// Mate and draw scores, per spec.md §4.5. earlyStop is the "search
// found a forced mate" threshold at which the iterative deepening loop
// stops (§4.5: "best score reaches >= 100000").
const (
	mateScore  = 500000
	earlyStop  = 100000
	drawScore  = 0
)

// evaluate scores b from the perspective of the side to move: positive
// is good for b.Turn(). If the side to move is checkmated it returns
// -mateScore, and if it is stalemated it returns drawScore; negamax
// relies on this when it drops into quiesce at a terminal node.
func evaluate(b *board.Board) int {
	if b.IsInCheckmate() {
		return -mateScore
	}
	if b.IsInDraw() {
		return drawScore
	}

	turn := b.Turn()
	total := 0
	for tile := 0; tile < 64; tile++ {
		p := b.GetTile(tile)
		if p.IsEmpty() {
			continue
		}
		sign := 1
		if p.Color() != turn {
			sign = -1
		}
		total += sign * (materialValue(p.Type()) + pstValue(p.Color(), p.Type(), tile))
	}
	return total
}

// victimValue reports the material value of a captured piece, or 0 for
// an empty target (a non-capture). moveOrderKey does not call it; it
// reads materialValue directly.
func victimValue(p piece.Piece) int {
	if p.IsEmpty() {
		return 0
	}
	return materialValue(p.Type())
}
