package search

import (
	"testing"

	"chessgo/board"
	"chessgo/move"
	"chessgo/piece"
)

func newBoard(t *testing.T, fen string) *board.Board {
	t.Helper()
	b := &board.Board{}
	if err := b.LoadFEN(fen); err != nil {
		t.Fatalf("LoadFEN(%q): %v", fen, err)
	}
	return b
}

func TestEvaluateStartPositionIsSymmetric(t *testing.T) {
	b := newBoard(t, board.StartFEN)
	if got := evaluate(b); got != 0 {
		t.Fatalf("start position material should be balanced, got %d", got)
	}
}

func TestEvaluateStalemateIsDrawScore(t *testing.T) {
	b := newBoard(t, "7k/5K2/6P1/8/8/8/8/8 b - - 0 1")
	if got := evaluate(b); got != drawScore {
		t.Fatalf("stalemate should evaluate to the draw score, got %d", got)
	}
}

func TestEvaluateCheckmateIsMinusMateScore(t *testing.T) {
	b := newBoard(t, board.StartFEN)
	if !b.MakeMove(move.Move{Tile: 13, Target: 29, Promotion: piece.None}) { // f2f4
		t.Fatal("f2f4 rejected")
	}
	if !b.MakeMove(move.Move{Tile: 52, Target: 36, Promotion: piece.None}) { // e7e5
		t.Fatal("e7e5 rejected")
	}
	if !b.MakeMove(move.Move{Tile: 14, Target: 30, Promotion: piece.None}) { // g2g4
		t.Fatal("g2g4 rejected")
	}
	if !b.MakeMove(move.Move{Tile: 59, Target: 31, Promotion: piece.None}) { // d8h4#
		t.Fatal("d8h4 rejected")
	}
	if !b.IsInCheckmate() {
		t.Fatal("expected checkmate after fool's mate")
	}
	if got := evaluate(b); got != -mateScore {
		t.Fatalf("checkmate should evaluate to -mateScore from the mated side's view, got %d", got)
	}
}

func TestNegamaxFindsMateInOne(t *testing.T) {
	b := newBoard(t, "8/8/8/8/8/5K1k/8/5Q2 w - - 0 1")
	best := move.Empty
	negamax(b, 2, -infinity, infinity, true, &best)
	if best.IsEmpty() {
		t.Fatalf("negamax found no move")
	}
	if !b.MakeMove(best) {
		t.Fatalf("root move %s rejected as illegal", best)
	}
	if !b.IsInCheckmate() {
		t.Fatalf("move %s did not deliver checkmate", best)
	}
}

func TestOrderMovesPutsCapturesFirst(t *testing.T) {
	b := newBoard(t, "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	var all move.Moves
	b.GenerateAllLegalMoves(&all, false)
	orderMoves(b, &all)
	if all.Len() == 0 {
		t.Fatal("no legal moves generated")
	}
	first := all.Get(0)
	if b.IsEmpty(first.Target) {
		t.Fatalf("first ordered move %s is not a capture", first)
	}
}
