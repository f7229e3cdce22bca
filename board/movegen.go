package board

import (
	"chessgo/move"
	"chessgo/piece"
)

var knightOffsets = [8][2]int{
	{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
	{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
}

var kingOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

var rookDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
var bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var queenDirs = [8][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

var promotionTypes = [4]piece.Type{piece.Queen, piece.Rook, piece.Bishop, piece.Knight}

// GenerateAllLegalMoves appends every legal move for Turn() into out. If
// onlyCaptures is true, only captures (including en passant) are kept.
func (b *Board) GenerateAllLegalMoves(out *move.Moves, onlyCaptures bool) {
	var pseudo move.Moves
	b.generateSideMovesInto(&pseudo, onlyCaptures)
	b.filterLegalInto(out, &pseudo)
}

// GenerateLegalMoves appends legal moves originating at tile into out.
// tile must belong to the side to move; if it doesn't (or holds no
// piece) nothing is appended.
func (b *Board) GenerateLegalMoves(out *move.Moves, tile int, onlyCaptures bool) {
	if tile < 0 || tile > 63 || b.tiles[tile].Color() != b.turn {
		return
	}
	var pseudo move.Moves
	b.generateTileMovesInto(&pseudo, tile, onlyCaptures)
	b.filterLegalInto(out, &pseudo)
}

// HasLegalMoves reports whether the side to move has at least one legal
// move, short-circuiting as soon as one is found.
func (b *Board) HasLegalMoves() bool {
	var pseudo move.Moves
	b.generateSideMovesInto(&pseudo, false)
	mover := b.turn
	for i := 0; i < pseudo.Len(); i++ {
		mv := pseudo.Get(i)
		b.applyMove(mv)
		attacked := b.isThreatened(b.kingTiles[piece.ColorIndex(mover)], b.turn)
		b.reverseTop()
		if !attacked {
			return true
		}
	}
	return false
}

// filterLegalInto applies each pseudo-legal move, discards it if it
// leaves the mover's own king attacked, and otherwise appends it to out.
// This is spec.md §4.2's "Legality filter".
func (b *Board) filterLegalInto(out *move.Moves, pseudo *move.Moves) {
	mover := b.turn
	for i := 0; i < pseudo.Len(); i++ {
		mv := pseudo.Get(i)
		b.applyMove(mv)
		attacked := b.isThreatened(b.kingTiles[piece.ColorIndex(mover)], b.turn)
		b.reverseTop()
		if !attacked {
			out.Add(mv)
		}
	}
}

func (b *Board) generateSideMovesInto(out *move.Moves, onlyCaptures bool) {
	for tile := 0; tile < 64; tile++ {
		if b.tiles[tile].Color() != b.turn {
			continue
		}
		b.generateTileMovesInto(out, tile, onlyCaptures)
	}
}

// generateTileMovesInto appends pseudo-legal moves for the piece at tile
// (spec.md §4.3). It does not check whether the move leaves the mover's
// king in check — that's the legality filter's job.
func (b *Board) generateTileMovesInto(out *move.Moves, tile int, onlyCaptures bool) {
	p := b.tiles[tile]
	if p.IsEmpty() {
		return
	}
	color := p.Color()
	row, col := tile>>3, tile&7

	switch p.Type() {
	case piece.King:
		b.genKingMoves(out, tile, row, col, color, onlyCaptures)
	case piece.Queen:
		b.genSliding(out, tile, row, col, color, queenDirs[:], onlyCaptures)
	case piece.Rook:
		b.genSliding(out, tile, row, col, color, rookDirs[:], onlyCaptures)
	case piece.Bishop:
		b.genSliding(out, tile, row, col, color, bishopDirs[:], onlyCaptures)
	case piece.Knight:
		b.genKnightMoves(out, tile, row, col, color, onlyCaptures)
	case piece.Pawn:
		b.genPawnMoves(out, tile, row, col, color, onlyCaptures)
	}
}

func onBoard(row, col int) bool {
	return row >= 0 && row < 8 && col >= 0 && col < 8
}

func (b *Board) genKingMoves(out *move.Moves, tile, row, col int, color piece.Color, onlyCaptures bool) {
	for _, off := range kingOffsets {
		r, c := row+off[0], col+off[1]
		if !onBoard(r, c) {
			continue
		}
		target := r*8 + c
		occ := b.tiles[target]
		if occ.IsEmpty() {
			if !onlyCaptures {
				out.Add(move.Move{Tile: tile, Target: target, Promotion: piece.None})
			}
		} else if occ.Color() != color {
			out.Add(move.Move{Tile: tile, Target: target, Promotion: piece.None})
		}
	}

	if onlyCaptures || tile != kingOriginSquare(color) {
		return
	}
	opponent := piece.Opposite(color)
	rights := b.castlingRights[piece.ColorIndex(color)]
	if rights&Short != 0 &&
		b.tiles[tile+1].IsEmpty() && b.tiles[tile+2].IsEmpty() &&
		!b.isThreatened(tile, opponent) && !b.isThreatened(tile+1, opponent) {
		out.Add(move.Move{Tile: tile, Target: tile + 2, Promotion: piece.None})
	}
	if rights&Long != 0 &&
		b.tiles[tile-1].IsEmpty() && b.tiles[tile-2].IsEmpty() && b.tiles[tile-3].IsEmpty() &&
		!b.isThreatened(tile, opponent) && !b.isThreatened(tile-1, opponent) {
		out.Add(move.Move{Tile: tile, Target: tile - 2, Promotion: piece.None})
	}
}

func (b *Board) genKnightMoves(out *move.Moves, tile, row, col int, color piece.Color, onlyCaptures bool) {
	for _, off := range knightOffsets {
		r, c := row+off[0], col+off[1]
		if !onBoard(r, c) {
			continue
		}
		target := r*8 + c
		occ := b.tiles[target]
		if occ.IsEmpty() {
			if !onlyCaptures {
				out.Add(move.Move{Tile: tile, Target: target, Promotion: piece.None})
			}
		} else if occ.Color() != color {
			out.Add(move.Move{Tile: tile, Target: target, Promotion: piece.None})
		}
	}
}

func (b *Board) genSliding(out *move.Moves, tile, row, col int, color piece.Color, dirs [][2]int, onlyCaptures bool) {
	for _, d := range dirs {
		r, c := row+d[0], col+d[1]
		for onBoard(r, c) {
			target := r*8 + c
			occ := b.tiles[target]
			if occ.IsEmpty() {
				if !onlyCaptures {
					out.Add(move.Move{Tile: tile, Target: target, Promotion: piece.None})
				}
			} else {
				if occ.Color() != color {
					out.Add(move.Move{Tile: tile, Target: target, Promotion: piece.None})
				}
				break
			}
			r += d[0]
			c += d[1]
		}
	}
}

func (b *Board) genPawnMoves(out *move.Moves, tile, row, col int, color piece.Color, onlyCaptures bool) {
	var dr, startRow int
	if color == piece.White {
		dr, startRow = 1, 1
	} else {
		dr, startRow = -1, 6
	}

	addPawnMove := func(target int) {
		lastRank := target/8 == 0 || target/8 == 7
		if lastRank {
			for _, promo := range promotionTypes {
				out.Add(move.Move{Tile: tile, Target: target, Promotion: promo})
			}
			return
		}
		out.Add(move.Move{Tile: tile, Target: target, Promotion: piece.None})
	}

	if !onlyCaptures {
		r1 := row + dr
		if onBoard(r1, col) {
			target1 := r1*8 + col
			if b.tiles[target1].IsEmpty() {
				addPawnMove(target1)
				if row == startRow {
					r2 := row + 2*dr
					target2 := r2*8 + col
					if b.tiles[target2].IsEmpty() {
						out.Add(move.Move{Tile: tile, Target: target2, Promotion: piece.None})
					}
				}
			}
		}
	}

	for _, dc := range [2]int{-1, 1} {
		r, c := row+dr, col+dc
		if !onBoard(r, c) {
			continue
		}
		target := r*8 + c
		occ := b.tiles[target]
		if !occ.IsEmpty() && occ.Color() != color {
			addPawnMove(target)
		} else if occ.IsEmpty() && target == b.enpassant {
			out.Add(move.Move{Tile: tile, Target: target, Promotion: piece.None})
		}
	}
}
