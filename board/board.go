// Package board implements the mailbox chess board: tiles, castling and
// en-passant state, status flags, legal move generation, make/undo, and
// perft. It has no dependency on logging, file I/O, rendering or input —
// those remain external collaborators (see SPEC_FULL.md §1/§8).
package board

import (
	"chessgo/move"
	"chessgo/piece"
)

// NoTile is the sentinel "no tile" value used for the en-passant target
// and for tiles outside 0..63.
const NoTile = -1

// CastlingRight is a 2-bit set of per-side castling rights.
type CastlingRight uint8

const (
	Short CastlingRight = 1 << iota
	Long
)

// MoveRecord is the snapshot Undo needs to invert a single MakeMove
// exactly. It owns every byte it needs — no pointers back into the
// board — so the records stack can be popped in any order relative to
// concurrent board mutation (it never is, but the type doesn't rely on
// it not being).
type MoveRecord struct {
	Move           move.Move
	Captured       piece.Piece
	CastlingRights [2]CastlingRight
	Enpassant      int
	Check          bool
	Checkmate      bool
	Draw           bool
}

// Board owns all chess position state. The zero value is an empty board
// with no kings and no side to move (Turn returns piece.NoColor); use
// LoadFEN to set up a real position.
type Board struct {
	tiles          [64]piece.Piece
	turn           piece.Color
	castlingRights [2]CastlingRight
	enpassant      int
	kingTiles      [2]int
	inCheck        bool
	inCheckmate    bool
	inDraw         bool
	records        []MoveRecord
}

// New returns a Board loaded with the standard starting position.
func New() *Board {
	b := &Board{}
	_ = b.LoadFEN(StartFEN)
	return b
}

// GetTile returns the piece occupying tile (Empty if unoccupied or out
// of range).
func (b *Board) GetTile(tile int) piece.Piece {
	if tile < 0 || tile > 63 {
		return piece.Empty
	}
	return b.tiles[tile]
}

// Color returns the color of the piece at tile.
func (b *Board) Color(tile int) piece.Color {
	return b.GetTile(tile).Color()
}

// Type returns the type of the piece at tile.
func (b *Board) Type(tile int) piece.Type {
	return b.GetTile(tile).Type()
}

// IsEmpty reports whether tile holds no piece.
func (b *Board) IsEmpty(tile int) bool {
	return b.GetTile(tile).IsEmpty()
}

// IsPiece reports whether tile holds a piece of exactly this color and
// type.
func (b *Board) IsPiece(tile int, color piece.Color, typ piece.Type) bool {
	return b.GetTile(tile).Is(color, typ)
}

// Turn returns the side to move.
func (b *Board) Turn() piece.Color {
	return b.turn
}

// KingTile returns the tile of the king of the given color.
func (b *Board) KingTile(color piece.Color) int {
	return b.kingTiles[piece.ColorIndex(color)]
}

// EnpassantTile returns the current en-passant target tile, or NoTile.
func (b *Board) EnpassantTile() int {
	return b.enpassant
}

// CastlingRights returns the castling rights still held by color.
func (b *Board) CastlingRights(color piece.Color) CastlingRight {
	return b.castlingRights[piece.ColorIndex(color)]
}

// Records returns the LIFO history stack. The returned slice aliases the
// board's internal storage and must not be mutated by the caller.
func (b *Board) Records() []MoveRecord {
	return b.records
}

// IsInCheck reports whether the side to move is in check.
func (b *Board) IsInCheck() bool {
	return b.inCheck
}

// IsInCheckmate reports whether the side to move is checkmated.
func (b *Board) IsInCheckmate() bool {
	return b.inCheckmate
}

// IsInDraw reports whether the side to move is stalemated.
func (b *Board) IsInDraw() bool {
	return b.inDraw
}

// Clone returns a deep copy of b, suitable for handing to a search
// worker that must not contend with the UI's board (see SPEC_FULL.md
// §5).
func (b *Board) Clone() *Board {
	c := *b
	c.records = append([]MoveRecord(nil), b.records...)
	return &c
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// rookOriginSquare returns the tile the color's rook starts on for the
// given castling side.
func rookOriginSquare(color piece.Color, side CastlingRight) int {
	rank0 := 0
	if color == piece.Black {
		rank0 = 56
	}
	if side == Short {
		return rank0 + 7
	}
	return rank0
}

// kingOriginSquare returns the tile the color's king starts on.
func kingOriginSquare(color piece.Color) int {
	if color == piece.Black {
		return 60
	}
	return 4
}

// castleRookSquares returns the rook's from/to tiles for a king move
// from tile to target that is a castle (|target-tile| == 2).
func castleRookSquares(tile, target int) (from, to int) {
	if target-tile == 2 {
		return tile + 3, tile + 1
	}
	return tile - 4, tile - 1
}
