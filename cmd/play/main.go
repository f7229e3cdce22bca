// Command play is a plain line-oriented console for the engine: no UCI,
// just a board printout and a handful of direct commands.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"chessgo/board"
	"chessgo/move"
	"chessgo/piece"
	"chessgo/search"
)

const (
	whiteKing   = "♔"
	whiteQueen  = "♕"
	whiteRook   = "♖"
	whiteBishop = "♗"
	whiteKnight = "♘"
	whitePawn   = "♙"
	blackKing   = "♚"
	blackQueen  = "♛"
	blackRook   = "♜"
	blackBishop = "♝"
	blackKnight = "♞"
	blackPawn   = "♟"
)

var symbols = map[piece.Type][2]string{
	piece.Pawn:   {whitePawn, blackPawn},
	piece.Knight: {whiteKnight, blackKnight},
	piece.Bishop: {whiteBishop, blackBishop},
	piece.Rook:   {whiteRook, blackRook},
	piece.Queen:  {whiteQueen, blackQueen},
	piece.King:   {whiteKing, blackKing},
}

func printBoard(b *board.Board) {
	for row := 7; row >= 0; row-- {
		fmt.Printf("%d ", row+1)
		for col := 0; col < 8; col++ {
			p := b.GetTile(row*8 + col)
			if p.IsEmpty() {
				fmt.Print(". ")
				continue
			}
			pair := symbols[p.Type()]
			if p.Color() == piece.White {
				fmt.Print(pair[0] + " ")
			} else {
				fmt.Print(pair[1] + " ")
			}
		}
		fmt.Println()
	}
	fmt.Println("  a b c d e f g h")
}

func parseSquare(s string) (int, bool) {
	if len(s) != 2 {
		return 0, false
	}
	file, rank := s[0], s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return 0, false
	}
	return int(rank-'1')*8 + int(file-'a'), true
}

func parseMove(s string) (move.Move, bool) {
	if len(s) != 4 && len(s) != 5 {
		return move.Empty, false
	}
	tile, ok1 := parseSquare(s[0:2])
	target, ok2 := parseSquare(s[2:4])
	if !ok1 || !ok2 {
		return move.Empty, false
	}
	promotion := piece.None
	if len(s) == 5 {
		switch s[4] {
		case 'q':
			promotion = piece.Queen
		case 'r':
			promotion = piece.Rook
		case 'b':
			promotion = piece.Bishop
		case 'n':
			promotion = piece.Knight
		default:
			return move.Empty, false
		}
	}
	return move.Move{Tile: tile, Target: target, Promotion: promotion}, true
}

func main() {
	b := board.New()
	ai := search.New()
	defer ai.Close()

	fmt.Println("commands: move <e2e4>, fen <FEN>, think, undo, board, quit")
	printBoard(b)

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "quit", "exit":
			return

		case "board":
			printBoard(b)

		case "fen":
			fen := strings.Join(fields[1:], " ")
			if fen == "" {
				fmt.Println(b.FEN())
				continue
			}
			if err := b.LoadFEN(fen); err != nil {
				fmt.Println("error:", err)
				continue
			}
			printBoard(b)

		case "move":
			if len(fields) != 2 {
				fmt.Println("usage: move e2e4")
				continue
			}
			mv, ok := parseMove(fields[1])
			if !ok {
				fmt.Println("unparseable move:", fields[1])
				continue
			}
			if !b.MakeMove(mv) {
				fmt.Println("illegal move:", fields[1])
				continue
			}
			printBoard(b)
			reportStatus(b)

		case "undo":
			if !b.Undo() {
				fmt.Println("nothing to undo")
				continue
			}
			printBoard(b)

		case "think":
			ai.Think(b)
			deadline := time.Now().Add(2 * time.Second)
			for !ai.HasFoundMove() && time.Now().Before(deadline) {
				time.Sleep(10 * time.Millisecond)
			}
			if !ai.HasFoundMove() {
				fmt.Println("engine did not respond in time")
				continue
			}
			best := ai.GetBestMove()
			fmt.Println("bestmove", best)
			if !b.MakeMove(best) {
				fmt.Println("engine suggested an illegal move (bug):", best)
				continue
			}
			printBoard(b)
			reportStatus(b)

		default:
			fmt.Println("unknown command:", fields[0])
		}
	}
}

func reportStatus(b *board.Board) {
	switch {
	case b.IsInCheckmate():
		fmt.Println("checkmate")
	case b.IsInDraw():
		fmt.Println("stalemate")
	case b.IsInCheck():
		fmt.Println("check")
	}
}

