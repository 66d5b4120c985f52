// File internal/board/board.go
package board

import (
	"fmt"
	"math/bits"

	"othello_go/internal/zobrist"
)

const (
	Size  = 8
	Cells = Size * Size
)

// Cell is the content of one square. The values are the ones used by the state file.
type Cell int8

const (
	Undetermined Cell = -1 // winner before the game is over
	Empty        Cell = 0
	Black        Cell = 1
	White        Cell = 2

	Draw = Empty // winner value of a drawn game
)

func (c Cell) String() string {
	switch c {
	case Black:
		return "O"
	case White:
		return "X"
	case Empty:
		return "Draw"
	default:
		return "?"
	}
}

// Opponent only makes sense for Black and White.
func Opponent(c Cell) Cell { return 3 - c }

type Grid [Size][Size]Cell

// Move is a (row, col) coordinate, 0-indexed.
type Move struct {
	R int8 `json:"row"`
	C int8 `json:"col"`
}

var NoMove = Move{-1, -1}

func (m Move) Valid() bool { return onBoard(m.R, m.C) }
func (m Move) String() string { return fmt.Sprintf("(%d,%d)", m.R, m.C) }
func (m Move) index() uint { return uint(m.R)*Size + uint(m.C) }

// Directions holds the 8 compass offsets (dr, dc).
var Directions = [8][2]int8{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Board is one Othello position. It is a plain value: assigning it copies it,
// so branches of the search never share state.
type Board struct {
	cells  Grid
	discs  [3]int // indexed by Empty/Black/White
	turn   Cell
	legal  uint64 // bit r*8+c set for each legal destination of turn
	done   bool
	winner Cell
}

// --------------------- construction ------------------------

// New builds a board from a trusted grid snapshot. The grid is not validated.
func New(grid Grid, toMove Cell) Board {
	b := Board{cells: grid, turn: toMove, winner: Undetermined}
	for r := range grid {
		for c := range grid[r] {
			if v := grid[r][c]; v == Black || v == White {
				b.discs[v]++
			}
		}
	}
	b.discs[Empty] = Cells - b.discs[Black] - b.discs[White]
	b.legal = b.legalMask()
	return b
}

// Start returns the standard opening with Black to move.
func Start() Board {
	var g Grid
	g[3][4], g[4][3] = Black, Black
	g[3][3], g[4][4] = White, White
	return New(g, Black)
}

// -------------------- accessors -----------------------------

func (b *Board) At(r, c int8) Cell { return b.cells[r][c] }
func (b *Board) Grid() Grid { return b.cells }
func (b *Board) Count(c Cell) int { return b.discs[c] }
func (b *Board) Empty() int { return b.discs[Empty] }
func (b *Board) Placed() int { return Cells - b.discs[Empty] }
func (b *Board) Turn() Cell { return b.turn }
func (b *Board) Done() bool { return b.done }
func (b *Board) Winner() Cell { return b.winner }
func (b *Board) NumLegal() int { return bits.OnesCount64(b.legal) }
func (b *Board) IsLegalMove(m Move) bool {
	return m.Valid() && b.legal&(1<<m.index()) != 0
}

// LegalMoves lists the legal moves of the side to move in row-major order.
func (b *Board) LegalMoves() []Move {
	out := make([]Move, 0, b.NumLegal())
	for mask := b.legal; mask != 0; mask &= mask - 1 {
		i := bits.TrailingZeros64(mask)
		out = append(out, Move{int8(i / Size), int8(i % Size)})
	}
	return out
}

// Hash is the Zobrist hash of the grid (side to move is not included).
func (b *Board) Hash() uint64 {
	var flat [Cells]int8
	for r := range b.cells {
		for c := range b.cells[r] {
			flat[r*Size+c] = int8(b.cells[r][c])
		}
	}
	return zobrist.Hash(&flat)
}

// Play applies m to a copy of b and returns the copy.
func (b Board) Play(m Move) (Board, bool) {
	ok := b.Apply(m)
	return b, ok
}
