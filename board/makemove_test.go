package board_test

import (
	"testing"

	"chessgo/board"
	"chessgo/move"
	"chessgo/piece"
)

func TestFoolsMate(t *testing.T) {
	b := newBoard(t, board.StartFEN)
	moves := []move.Move{
		{Tile: 13, Target: 29, Promotion: piece.None}, // f2f4
		{Tile: 52, Target: 36, Promotion: piece.None}, // e7e5
		{Tile: 14, Target: 30, Promotion: piece.None}, // g2g4
		{Tile: 59, Target: 31, Promotion: piece.None}, // d8h4
	}
	for _, mv := range moves {
		if !b.MakeMove(mv) {
			t.Fatalf("move %s rejected as illegal", mv)
		}
	}
	if !b.IsInCheckmate() {
		t.Fatalf("expected checkmate after fool's mate sequence")
	}
	if b.Turn() != piece.White {
		t.Fatalf("expected the mated side, White, to move, got %v", b.Turn())
	}
}

func TestCastleShort(t *testing.T) {
	b := newBoard(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	var legal move.Moves
	b.GenerateLegalMoves(&legal, 4, false)
	found := false
	for i := 0; i < legal.Len(); i++ {
		if legal.Get(i) == (move.Move{Tile: 4, Target: 6, Promotion: piece.None}) {
			found = true
		}
	}
	if !found {
		t.Fatalf("castle short not in legal moves: %v", legal.Slice())
	}

	if !b.MakeMove(move.Move{Tile: 4, Target: 6, Promotion: piece.None}) {
		t.Fatalf("castle short rejected")
	}
	if !b.IsPiece(5, piece.White, piece.Rook) {
		t.Fatalf("rook not relocated to 5")
	}
	if !b.IsPiece(6, piece.White, piece.King) {
		t.Fatalf("king not relocated to 6")
	}
	if !b.Undo() {
		t.Fatalf("undo failed")
	}
	if !b.IsPiece(7, piece.White, piece.Rook) {
		t.Fatalf("rook not restored to 7")
	}
	if !b.IsPiece(4, piece.White, piece.King) {
		t.Fatalf("king not restored to 4")
	}
}

func TestEnPassantCapture(t *testing.T) {
	// White pawn c5 (34), Black pawn d7 (51) double-pushing to d5 (35);
	// the only diagonal White can exploit the resulting en-passant
	// square (43, d6) from is c5xd6 (34->43).
	b := newBoard(t, "4k3/3p4/8/2P5/8/8/8/4K3 b - - 0 1")
	if !b.MakeMove(move.Move{Tile: 51, Target: 35, Promotion: piece.None}) {
		t.Fatalf("black double push rejected")
	}
	if b.EnpassantTile() != 43 {
		t.Fatalf("enpassant tile: got %d want 43", b.EnpassantTile())
	}
	var legal move.Moves
	b.GenerateLegalMoves(&legal, 34, false)
	found := false
	for i := 0; i < legal.Len(); i++ {
		if legal.Get(i) == (move.Move{Tile: 34, Target: 43, Promotion: piece.None}) {
			found = true
		}
	}
	if !found {
		t.Fatalf("en passant capture not in legal moves: %v", legal.Slice())
	}
	if !b.MakeMove(move.Move{Tile: 34, Target: 43, Promotion: piece.None}) {
		t.Fatalf("en passant capture rejected")
	}
	if !b.IsEmpty(35) {
		t.Fatalf("captured pawn square 35 not empty")
	}
	if !b.IsPiece(43, piece.White, piece.Pawn) {
		t.Fatalf("capturing pawn not at 43")
	}
	if !b.Undo() {
		t.Fatalf("undo failed")
	}
	if !b.IsPiece(35, piece.Black, piece.Pawn) {
		t.Fatalf("captured black pawn not restored at 35")
	}
	if !b.IsPiece(34, piece.White, piece.Pawn) {
		t.Fatalf("white pawn not restored at 34")
	}
	if !b.IsEmpty(43) {
		t.Fatalf("target 43 should be empty after undo")
	}
}

func TestPromotion(t *testing.T) {
	b := newBoard(t, "4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	var legal move.Moves
	b.GenerateLegalMoves(&legal, 48, false)
	promos := map[piece.Type]bool{}
	for i := 0; i < legal.Len(); i++ {
		mv := legal.Get(i)
		if mv.Target == 56 {
			promos[mv.Promotion] = true
		}
	}
	for _, want := range []piece.Type{piece.Queen, piece.Rook, piece.Bishop, piece.Knight} {
		if !promos[want] {
			t.Fatalf("missing promotion to %v", want)
		}
	}
	if !b.MakeMove(move.Move{Tile: 48, Target: 56, Promotion: piece.Queen}) {
		t.Fatalf("promotion move rejected")
	}
	if !b.IsPiece(56, piece.White, piece.Queen) {
		t.Fatalf("tile 56 should hold a White queen")
	}
	if !b.Undo() {
		t.Fatalf("undo failed")
	}
	if !b.IsPiece(48, piece.White, piece.Pawn) {
		t.Fatalf("tile 48 should hold the White pawn again")
	}
	if !b.IsEmpty(56) {
		t.Fatalf("tile 56 should be empty after undo")
	}
}

func TestStalemate(t *testing.T) {
	b := newBoard(t, "7k/5K2/6P1/8/8/8/8/8 b - - 0 1")
	if !b.IsInDraw() {
		t.Fatalf("expected stalemate, inCheck=%v inCheckmate=%v", b.IsInCheck(), b.IsInCheckmate())
	}
	if b.IsInCheckmate() {
		t.Fatalf("stalemate must not also report checkmate")
	}
}

func TestUndoEmptyHistoryIsNoop(t *testing.T) {
	b := newBoard(t, board.StartFEN)
	if b.Undo() {
		t.Fatalf("undo on empty history should return false")
	}
}

func TestMakeMoveRejectsIllegalMove(t *testing.T) {
	b := newBoard(t, board.StartFEN)
	if b.MakeMove(move.Move{Tile: 1, Target: 2, Promotion: piece.None}) {
		t.Fatalf("knight b1-c1 is not a knight move and c1 is occupied by White's own bishop")
	}
}
