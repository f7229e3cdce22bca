package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"chessgo/piece"
)

// StartFEN is the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// LoadFEN resets b from a FEN string: piece placement, active color,
// castling availability, en-passant target, halfmove clock and fullmove
// number. The halfmove clock and fullmove number are parsed (to reject
// malformed input) but not retained, matching spec.md §4.2.
//
// On error b is left untouched: parsing happens into a scratch value
// that is only swapped in once every field has been validated.
func (b *Board) LoadFEN(fen string) error {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return fmt.Errorf("board: FEN %q: want 6 fields, got %d", fen, len(fields))
	}

	var scratch Board
	scratch.enpassant = NoTile
	scratch.kingTiles = [2]int{NoTile, NoTile}

	if err := parsePlacement(&scratch, fields[0]); err != nil {
		return err
	}
	if err := parseActiveColor(&scratch, fields[1]); err != nil {
		return err
	}
	if err := parseCastling(&scratch, fields[2]); err != nil {
		return err
	}
	if err := parseEnpassant(&scratch, fields[3]); err != nil {
		return err
	}
	if _, err := strconv.Atoi(fields[4]); err != nil {
		return fmt.Errorf("board: FEN %q: bad halfmove clock: %w", fen, err)
	}
	if _, err := strconv.Atoi(fields[5]); err != nil {
		return fmt.Errorf("board: FEN %q: bad fullmove number: %w", fen, err)
	}
	if scratch.kingTiles[0] == NoTile || scratch.kingTiles[1] == NoTile {
		return fmt.Errorf("board: FEN %q: missing a king", fen)
	}

	scratch.inCheck = scratch.isThreatened(scratch.kingTiles[piece.ColorIndex(scratch.turn)], piece.Opposite(scratch.turn))
	hasMoves := scratch.HasLegalMoves()
	scratch.inCheckmate = scratch.inCheck && !hasMoves
	scratch.inDraw = !scratch.inCheck && !hasMoves
	scratch.records = nil
	*b = scratch
	return nil
}

func parsePlacement(b *Board, field string) error {
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("board: FEN placement %q: want 8 ranks, got %d", field, len(ranks))
	}
	for i, rankStr := range ranks {
		row := 7 - i // first FEN rank is rank 8 -> row 7; row 0 is White's back rank.
		col := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				col += int(ch - '0')
				continue
			}
			p, ok := piece.FromFENByte(byte(ch))
			if !ok {
				return fmt.Errorf("board: FEN placement %q: bad character %q", field, ch)
			}
			if col > 7 {
				return fmt.Errorf("board: FEN placement %q: rank %d overflows", field, i)
			}
			tile := row*8 + col
			b.tiles[tile] = p
			if p.Type() == piece.King {
				b.kingTiles[piece.ColorIndex(p.Color())] = tile
			}
			col++
		}
		if col != 8 {
			return fmt.Errorf("board: FEN placement %q: rank %d has %d files, want 8", field, i, col)
		}
	}
	return nil
}

func parseActiveColor(b *Board, field string) error {
	switch field {
	case "w":
		b.turn = piece.White
	case "b":
		b.turn = piece.Black
	default:
		return fmt.Errorf("board: FEN active color %q: want w or b", field)
	}
	return nil
}

func parseCastling(b *Board, field string) error {
	if field == "-" {
		return nil
	}
	for _, ch := range field {
		switch ch {
		case 'K':
			b.castlingRights[piece.ColorIndex(piece.White)] |= Short
		case 'Q':
			b.castlingRights[piece.ColorIndex(piece.White)] |= Long
		case 'k':
			b.castlingRights[piece.ColorIndex(piece.Black)] |= Short
		case 'q':
			b.castlingRights[piece.ColorIndex(piece.Black)] |= Long
		default:
			return fmt.Errorf("board: FEN castling %q: bad character %q", field, ch)
		}
	}
	return nil
}

func parseEnpassant(b *Board, field string) error {
	if field == "-" {
		b.enpassant = NoTile
		return nil
	}
	if len(field) != 2 {
		return fmt.Errorf("board: FEN en-passant %q: want algebraic square or -", field)
	}
	file := field[0]
	rank := field[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return fmt.Errorf("board: FEN en-passant %q: not a valid square", field)
	}
	col := int(file - 'a')
	row := int(rank - '1')
	b.enpassant = row*8 + col
	return nil
}

// FEN renders b's current position as a FEN string. Halfmove clock and
// fullmove number are not tracked, so 0 and 1 are always emitted.
func (b *Board) FEN() string {
	var sb strings.Builder
	for i := 7; i >= 0; i-- {
		run := 0
		for col := 0; col < 8; col++ {
			tile := i*8 + col
			p := b.tiles[tile]
			if p.IsEmpty() {
				run++
				continue
			}
			if run > 0 {
				sb.WriteString(strconv.Itoa(run))
				run = 0
			}
			sb.WriteByte(p.FENByte())
		}
		if run > 0 {
			sb.WriteString(strconv.Itoa(run))
		}
		if i > 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')
	if b.turn == piece.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	rights := ""
	if b.castlingRights[piece.ColorIndex(piece.White)]&Short != 0 {
		rights += "K"
	}
	if b.castlingRights[piece.ColorIndex(piece.White)]&Long != 0 {
		rights += "Q"
	}
	if b.castlingRights[piece.ColorIndex(piece.Black)]&Short != 0 {
		rights += "k"
	}
	if b.castlingRights[piece.ColorIndex(piece.Black)]&Long != 0 {
		rights += "q"
	}
	if rights == "" {
		rights = "-"
	}
	sb.WriteString(rights)
	sb.WriteByte(' ')
	if b.enpassant == NoTile {
		sb.WriteByte('-')
	} else {
		sb.WriteByte(byte('a' + b.enpassant&7))
		sb.WriteByte(byte('1' + b.enpassant>>3))
	}
	sb.WriteString(" 0 1")
	return sb.String()
}

var errEmptyHistory = errors.New("board: undo: no move to undo")
