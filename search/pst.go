// Package search implements the iterative-deepening alpha-beta engine
// and its background worker.
package search

import "chessgo/piece"

// Material values per spec.md §4.5.
const (
	valueKing   = 10000
	valueQueen  = 1000
	valueBishop = 350
	valueKnight = 350
	valueRook   = 525
	valuePawn   = 100
)

func materialValue(t piece.Type) int {
	switch t {
	case piece.King:
		return valueKing
	case piece.Queen:
		return valueQueen
	case piece.Bishop:
		return valueBishop
	case piece.Knight:
		return valueKnight
	case piece.Rook:
		return valueRook
	case piece.Pawn:
		return valuePawn
	default:
		return 0
	}
}

// Piece-square tables, one [64]int per piece type, written from Black's
// perspective (tile 0 is rank 1 / White's back rank, tile 56 is rank 8).
// White pieces mirror the row (row -> 7-row) when indexed.

var pstPawn = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	50, 50, 50, 50, 50, 50, 50, 50,
	10, 10, 20, 30, 30, 20, 10, 10,
	5, 5, 10, 25, 25, 10, 5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, -5, -10, 0, 0, -10, -5, 5,
	5, 10, 10, -20, -20, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var pstKnight = [64]int{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var pstBishop = [64]int{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var pstRook = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, 10, 10, 10, 10, 5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	0, 0, 0, 5, 5, 0, 0, 0,
}

var pstQueen = [64]int{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-5, 0, 5, 5, 5, 5, 0, -5,
	0, 0, 5, 5, 5, 5, 0, -5,
	-10, 5, 5, 5, 5, 5, 0, -10,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

var pstKing = [64]int{
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	20, 20, 0, 0, 0, 0, 20, 20,
	20, 30, 10, 0, 0, 10, 30, 20,
}

func pstValue(color piece.Color, typ piece.Type, tile int) int {
	var table *[64]int
	switch typ {
	case piece.Pawn:
		table = &pstPawn
	case piece.Knight:
		table = &pstKnight
	case piece.Bishop:
		table = &pstBishop
	case piece.Rook:
		table = &pstRook
	case piece.Queen:
		table = &pstQueen
	case piece.King:
		table = &pstKing
	default:
		return 0
	}
	idx := tile
	if color == piece.White {
		row, col := tile>>3, tile&7
		idx = (7-row)*8 + col
	}
	return table[idx]
}
