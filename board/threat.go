package board

import "chessgo/piece"

var orthogonalDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
var diagonalDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

// isThreatened reports whether tile is attacked by a piece of the given
// attacker color, per spec.md §4.4. It never inspects whose turn it is —
// only piece placement — so it's safe to call against either side's king
// from anywhere in the make/undo cycle.
func (b *Board) isThreatened(tile int, attacker piece.Color) bool {
	if tile < 0 || tile > 63 {
		return false
	}
	row, col := tile>>3, tile&7

	for _, off := range knightOffsets {
		r, c := row+off[0], col+off[1]
		if onBoard(r, c) && b.tiles[r*8+c].Is(attacker, piece.Knight) {
			return true
		}
	}

	for _, off := range kingOffsets {
		r, c := row+off[0], col+off[1]
		if onBoard(r, c) && b.tiles[r*8+c].Is(attacker, piece.King) {
			return true
		}
	}

	for _, d := range orthogonalDirs {
		r, c := row+d[0], col+d[1]
		for step := 1; onBoard(r, c); step++ {
			occ := b.tiles[r*8+c]
			if !occ.IsEmpty() {
				if occ.Color() == attacker && (occ.Type() == piece.Queen || occ.Type() == piece.Rook) {
					return true
				}
				break
			}
			r += d[0]
			c += d[1]
		}
	}

	for _, d := range diagonalDirs {
		r, c := row+d[0], col+d[1]
		for onBoard(r, c) {
			occ := b.tiles[r*8+c]
			if !occ.IsEmpty() {
				if occ.Color() == attacker && (occ.Type() == piece.Queen || occ.Type() == piece.Bishop) {
					return true
				}
				break
			}
			r += d[0]
			c += d[1]
		}
	}

	// Pawns attack diagonally forward, so an attacking pawn sits one row
	// behind tile from its own side's view: a White pawn on (row-1,col±1)
	// attacks tile, a Black pawn on (row+1,col±1) does.
	pawnRowOffset := -1
	if attacker == piece.Black {
		pawnRowOffset = 1
	}
	pr := row + pawnRowOffset
	for _, dc := range [2]int{-1, 1} {
		pc := col + dc
		if onBoard(pr, pc) && b.tiles[pr*8+pc].Is(attacker, piece.Pawn) {
			return true
		}
	}

	return false
}
