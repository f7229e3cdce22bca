// Package move defines the external move encoding and the fixed-size
// container move generation appends into.
package move

import (
	"fmt"

	"chessgo/piece"
)

// None is the sentinel tile value for "no tile" (outside 0..63).
const None = -1

// Move is a single chess move: a source tile, a destination tile, and an
// optional promotion type (piece.None unless a pawn reaches its last
// rank).
type Move struct {
	Tile      int
	Target    int
	Promotion piece.Type
}

// Empty is the "no move" sentinel, never a legal move. It is not the Go
// zero value of Move (that is a1a1, for which IsEmpty reports false).
var Empty = Move{Tile: None, Target: None}

// IsEmpty reports whether m is the Empty sentinel.
func (m Move) IsEmpty() bool {
	return m.Tile == None && m.Target == None
}

// String renders m in coordinate notation, e.g. "e2e4" or "a7a8q".
func (m Move) String() string {
	if m.IsEmpty() {
		return "0000"
	}
	s := fmt.Sprintf("%s%s", squareName(m.Tile), squareName(m.Target))
	if m.Promotion != piece.None {
		s += string(promotionLetter(m.Promotion))
	}
	return s
}

func squareName(tile int) string {
	file := tile & 7
	rank := tile >> 3
	return string([]byte{'a' + byte(file), '1' + byte(rank)})
}

func promotionLetter(t piece.Type) byte {
	switch t {
	case piece.Queen:
		return 'q'
	case piece.Rook:
		return 'r'
	case piece.Bishop:
		return 'b'
	case piece.Knight:
		return 'n'
	default:
		return '?'
	}
}

// MaxMoves bounds the Moves container: any legal position yields well
// under this many moves, so the container never grows.
const MaxMoves = 256

// Moves is a bounded sequence of moves backed by a fixed array, avoiding
// heap traffic on the move-generation hot path. It must never switch to
// a growable container (see SPEC_FULL.md §3).
type Moves struct {
	items [MaxMoves]Move
	size  int
}

// Len returns the number of moves currently held.
func (m *Moves) Len() int {
	return m.size
}

// Get returns the move at index i.
func (m *Moves) Get(i int) Move {
	return m.items[i]
}

// Set overwrites the move at index i.
func (m *Moves) Set(i int, mv Move) {
	m.items[i] = mv
}

// Add appends mv. It panics if the container is full, which should never
// happen in a reachable chess position.
func (m *Moves) Add(mv Move) {
	m.items[m.size] = mv
	m.size++
}

// Truncate sets the live length to n, discarding anything beyond it.
func (m *Moves) Truncate(n int) {
	m.size = n
}

// Reset empties the container without reallocating it.
func (m *Moves) Reset() {
	m.size = 0
}

// Slice returns the live portion of the container as a slice. The slice
// aliases the container's backing array and is only valid until the next
// mutating call.
func (m *Moves) Slice() []Move {
	return m.items[:m.size]
}
