package search

import (
	"sort"

	"chessgo/board"
	"chessgo/move"
	"chessgo/piece"
)

// infinity bounds the alpha-beta window; it must exceed mateScore so a
// forced mate is never clipped by the window itself.
const infinity = 1 << 30

// negamax is spec.md §4.5's search(): fail-soft alpha-beta over the
// legal move tree, falling into quiesce at the horizon or at a
// terminal node. best_move is only meaningful (and only written,
// via rootBest) when isRoot is true — see SPEC_FULL.md's resolution of
// the root-vs-recursive best_move_ question.
func negamax(b *board.Board, depth int, alpha, beta int, isRoot bool, rootBest *move.Move) int {
	if depth == 0 || b.IsInCheckmate() || b.IsInDraw() {
		return quiesce(b, alpha, beta)
	}

	var moves move.Moves
	b.GenerateAllLegalMoves(&moves, false)
	orderMoves(b, &moves)

	max := -infinity
	var best move.Move
	for i := 0; i < moves.Len(); i++ {
		mv := moves.Get(i)
		b.MakeMove(mv)
		score := -negamax(b, depth-1, -beta, -alpha, false, nil)
		b.Undo()

		if score > max {
			max = score
			best = mv
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break
		}
	}

	if isRoot {
		*rootBest = best
	}
	return max
}

// quiesce is spec.md §4.5's quiesce(): alpha-beta restricted to captures,
// started from a stand-pat evaluation.
func quiesce(b *board.Board, alpha, beta int) int {
	standPat := evaluate(b)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	var captures move.Moves
	b.GenerateAllLegalMoves(&captures, true)
	orderMoves(b, &captures)

	for i := 0; i < captures.Len(); i++ {
		mv := captures.Get(i)
		b.MakeMove(mv)
		score := -quiesce(b, -beta, -alpha)
		b.Undo()

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}

// orderMoves sorts moves in place per spec.md §4.5's move-ordering
// rules: captures before quiets, higher-value victim first among
// captures with lower-value attacker breaking ties, lower-value mover
// first among quiets. Stable so equal-keyed moves keep generation order.
func orderMoves(b *board.Board, moves *move.Moves) {
	sl := moves.Slice()
	sort.SliceStable(sl, func(i, j int) bool {
		return moveOrderKey(b, sl[i]) > moveOrderKey(b, sl[j])
	})
}

const captureBias = 1_000_000

func moveOrderKey(b *board.Board, mv move.Move) int {
	attacker := materialValue(b.Type(mv.Tile))
	target := b.GetTile(mv.Target)
	if target.IsEmpty() {
		if mv.Target == b.EnpassantTile() && b.Type(mv.Tile) == piece.Pawn {
			return captureBias + materialValue(piece.Pawn)*100 - attacker
		}
		return -attacker
	}
	return captureBias + materialValue(target.Type())*100 - attacker
}
