package board

import (
	"chessgo/move"
	"chessgo/piece"
)

// MakeMove validates mv against the side to move's legal moves, applies
// it, and recomputes the status flags (IsInCheck/IsInCheckmate/IsInDraw)
// for the new side to move. It reports whether mv was legal; an illegal
// mv leaves b untouched.
func (b *Board) MakeMove(mv move.Move) bool {
	var legal move.Moves
	b.GenerateLegalMoves(&legal, mv.Tile, false)
	ok := false
	for i := 0; i < legal.Len(); i++ {
		if c := legal.Get(i); c.Target == mv.Target && c.Promotion == mv.Promotion {
			ok = true
			break
		}
	}
	if !ok {
		return false
	}
	b.applyMove(mv)
	b.refreshStatus()
	return true
}

// Undo reverts the most recent MakeMove. It is a no-op returning false
// when the history is empty.
func (b *Board) Undo() bool {
	if len(b.records) == 0 {
		return false
	}
	b.reverseTop()
	return true
}

// refreshStatus recomputes the check/checkmate/draw flags for the
// current side to move. It must only be called right after applyMove,
// with b.turn already pointing at the side about to move next.
func (b *Board) refreshStatus() {
	b.inCheck = b.isThreatened(b.kingTiles[piece.ColorIndex(b.turn)], piece.Opposite(b.turn))
	hasMoves := b.HasLegalMoves()
	b.inCheckmate = b.inCheck && !hasMoves
	b.inDraw = !b.inCheck && !hasMoves
}

// applyMove is the pure mutation half of spec.md §4.2's make-move
// protocol: move the piece (handling capture, en passant, promotion and
// castling), update castling rights, the en-passant target and king
// tiles, push a MoveRecord capturing everything reverseTop needs to undo
// it, and flip the side to move. It never recomputes status flags and
// never validates legality — callers (MakeMove, the legality filter,
// HasLegalMoves) are responsible for both.
func (b *Board) applyMove(mv move.Move) {
	mover := b.tiles[mv.Tile]
	color := mover.Color()

	rec := MoveRecord{
		Move:           mv,
		CastlingRights: b.castlingRights,
		Enpassant:      b.enpassant,
		Check:          b.inCheck,
		Checkmate:      b.inCheckmate,
		Draw:           b.inDraw,
	}

	enpassantCapture := mover.Type() == piece.Pawn && mv.Target == b.enpassant && b.tiles[mv.Target].IsEmpty()
	if enpassantCapture {
		capturedTile := (mv.Tile/8)*8 + (mv.Target % 8)
		rec.Captured = b.tiles[capturedTile]
		b.tiles[capturedTile] = piece.Empty
	} else {
		rec.Captured = b.tiles[mv.Target]
	}

	b.tiles[mv.Tile] = piece.Empty
	if mv.Promotion != piece.None {
		b.tiles[mv.Target] = piece.Make(color, mv.Promotion)
	} else {
		b.tiles[mv.Target] = mover
	}

	if mover.Type() == piece.King {
		b.kingTiles[piece.ColorIndex(color)] = mv.Target
		if abs(mv.Target-mv.Tile) == 2 {
			rookFrom, rookTo := castleRookSquares(mv.Tile, mv.Target)
			b.tiles[rookTo] = b.tiles[rookFrom]
			b.tiles[rookFrom] = piece.Empty
		}
		b.castlingRights[piece.ColorIndex(color)] = 0
	}

	if mv.Tile == rookOriginSquare(color, Short) {
		b.castlingRights[piece.ColorIndex(color)] &^= Short
	} else if mv.Tile == rookOriginSquare(color, Long) {
		b.castlingRights[piece.ColorIndex(color)] &^= Long
	}
	opponent := piece.Opposite(color)
	if mv.Target == rookOriginSquare(opponent, Short) {
		b.castlingRights[piece.ColorIndex(opponent)] &^= Short
	} else if mv.Target == rookOriginSquare(opponent, Long) {
		b.castlingRights[piece.ColorIndex(opponent)] &^= Long
	}

	if mover.Type() == piece.Pawn && abs(mv.Target-mv.Tile) == 16 {
		b.enpassant = (mv.Tile + mv.Target) / 2
	} else {
		b.enpassant = NoTile
	}

	b.turn = opponent
	b.records = append(b.records, rec)
}

// reverseTop pops and inverts the most recent MoveRecord. The caller
// must ensure the history is non-empty.
func (b *Board) reverseTop() {
	last := len(b.records) - 1
	rec := b.records[last]
	b.records = b.records[:last]
	mv := rec.Move

	color := piece.Opposite(b.turn)
	moved := b.tiles[mv.Target]
	var original piece.Piece
	if mv.Promotion != piece.None {
		original = piece.Make(color, piece.Pawn)
	} else {
		original = moved
	}
	b.tiles[mv.Tile] = original
	b.tiles[mv.Target] = piece.Empty

	enpassantCapture := original.Type() == piece.Pawn && mv.Target == rec.Enpassant
	if enpassantCapture {
		capturedTile := (mv.Tile/8)*8 + (mv.Target % 8)
		b.tiles[capturedTile] = rec.Captured
	} else {
		b.tiles[mv.Target] = rec.Captured
	}

	if original.Type() == piece.King {
		b.kingTiles[piece.ColorIndex(color)] = mv.Tile
		if abs(mv.Target-mv.Tile) == 2 {
			rookFrom, rookTo := castleRookSquares(mv.Tile, mv.Target)
			b.tiles[rookFrom] = b.tiles[rookTo]
			b.tiles[rookTo] = piece.Empty
		}
	}

	b.castlingRights = rec.CastlingRights
	b.enpassant = rec.Enpassant
	b.turn = color
	b.inCheck = rec.Check
	b.inCheckmate = rec.Checkmate
	b.inDraw = rec.Draw
}
