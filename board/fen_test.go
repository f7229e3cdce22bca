package board_test

import (
	"testing"

	"chessgo/board"
)

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		board.StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"4k3/8/8/P7/8/8/8/4K3 b - - 0 1",
		"1n5k/P7/8/8/8/8/8/7K w - - 0 1",
	}
	for _, fen := range fens {
		b := newBoard(t, fen)
		got := b.FEN()
		b2 := newBoard(t, got)
		if b2.FEN() != got {
			t.Errorf("FEN %q did not round-trip stably: got %q then %q", fen, got, b2.FEN())
		}
	}
}

func TestLoadFENRejectsMalformedInput(t *testing.T) {
	bad := []string{
		"",
		"not a fen at all",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0", // missing field
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1", // bad active color
		"8/8/8/8/8/8/8/8 w - - 0 1",                                // no kings
	}
	for _, fen := range bad {
		b := &board.Board{}
		if err := b.LoadFEN(fen); err == nil {
			t.Errorf("LoadFEN(%q): expected error, got nil", fen)
		}
	}
}

func TestLoadFENLeavesBoardUntouchedOnError(t *testing.T) {
	b := newBoard(t, board.StartFEN)
	before := b.FEN()
	if err := b.LoadFEN("garbage"); err == nil {
		t.Fatalf("expected error loading malformed FEN")
	}
	if after := b.FEN(); after != before {
		t.Fatalf("board mutated by failed LoadFEN: before %q after %q", before, after)
	}
}
