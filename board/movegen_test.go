package board_test

import (
	"testing"

	"chessgo/move"
	"chessgo/piece"
)

func TestGenerateAllLegalMovesStartPositionCount(t *testing.T) {
	b := newBoard(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	var all move.Moves
	b.GenerateAllLegalMoves(&all, false)
	if all.Len() != 20 {
		t.Fatalf("start position legal move count: got %d want 20", all.Len())
	}
}

func TestGenerateAllLegalMovesOnlyCaptures(t *testing.T) {
	b := newBoard(t, "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	var caps move.Moves
	b.GenerateAllLegalMoves(&caps, true)
	for i := 0; i < caps.Len(); i++ {
		mv := caps.Get(i)
		if b.IsEmpty(mv.Target) && mv.Target != b.EnpassantTile() {
			t.Fatalf("onlyCaptures move %s targets an empty, non-enpassant tile", mv)
		}
	}
	found := false
	for i := 0; i < caps.Len(); i++ {
		if caps.Get(i) == (move.Move{Tile: 28, Target: 35, Promotion: piece.None}) {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected e4xd5 capture among only-captures moves: %v", caps.Slice())
	}
}

func TestGenerateLegalMovesPinnedPieceCannotMove(t *testing.T) {
	// White king e1, White rook e2 pinned by Black rook e8 along the e-file
	// (Black king parked on a8).
	b := newBoard(t, "k3r3/8/8/8/8/8/4R3/4K3 w - - 0 1")
	var legal move.Moves
	b.GenerateLegalMoves(&legal, 12, false) // rook on e2
	for i := 0; i < legal.Len(); i++ {
		if legal.Get(i).Target&7 != 4 {
			t.Fatalf("pinned rook escaped the e-file: %s", legal.Get(i))
		}
	}
}

func TestGenerateLegalMovesKingCannotMoveIntoCheck(t *testing.T) {
	// Black queen on e8 rakes the whole e-file; White king on e1 cannot
	// step to e2 (still on the file) but can step off it. Black king on a8.
	b := newBoard(t, "k3q3/8/8/8/8/8/8/4K3 w - - 0 1")
	var legal move.Moves
	b.GenerateLegalMoves(&legal, 4, false) // king on e1
	for i := 0; i < legal.Len(); i++ {
		if legal.Get(i).Target&7 == 4 {
			t.Fatalf("king moved onto an e-file square still covered by the queen: %s", legal.Get(i))
		}
	}
	if legal.Len() == 0 {
		t.Fatalf("king should have legal escape squares off the e-file")
	}
}

func TestIsInCheckDetected(t *testing.T) {
	b := newBoard(t, "4k3/8/8/8/8/8/4r3/4K3 w - - 0 1")
	if !b.IsInCheck() {
		t.Fatalf("expected White king in check from rook on e-file")
	}
}
