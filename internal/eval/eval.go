// internal/eval/eval.go
package eval

import "othello_go/internal/board"

/*
   Score = positional weights + corner overrides + density bonus
   late game (more than LateGameDiscs discs placed) adds the disc difference.
*/

const (
	LateGameDiscs  = 50
	MaterialWeight = 5
	DensityBonus   = 10

	cornerOwned = 50
)

// base weights; copied before the corner overrides are applied
var weights = [board.Size][board.Size]int32{
	{100, -30, 6, 2, 2, 6, -30, 100},
	{-30, -50, 0, 0, 0, 0, -50, -30},
	{6, 0, 10, 0, 0, 10, 0, 6},
	{2, 0, 0, 3, 3, 0, 0, 2},
	{2, 0, 0, 3, 3, 0, 0, 2},
	{6, 0, 10, 0, 0, 10, 0, 6},
	{-30, -50, 0, 0, 0, 0, -50, -30},
	{100, -30, 6, 2, 2, 6, -30, 100},
}

// each corner and the three squares that touch it
var corners = [4]struct {
	r, c int8
	near [3][2]int8
}{
	{0, 0, [3][2]int8{{0, 1}, {1, 0}, {1, 1}}},
	{7, 0, [3][2]int8{{7, 1}, {6, 0}, {6, 1}}},
	{0, 7, [3][2]int8{{0, 6}, {1, 6}, {1, 7}}},
	{7, 7, [3][2]int8{{6, 6}, {6, 7}, {7, 6}}},
}

// opposite neighbour pairs: N-S, NW-SE, W-E, NE-SW
var pairs = [4][2][2]int8{
	{{-1, 0}, {1, 0}},
	{{-1, -1}, {1, 1}},
	{{0, -1}, {0, 1}},
	{{-1, 1}, {1, -1}},
}

// Score rates b from self's point of view; higher is better for self.
func Score(b *board.Board, self board.Cell) int32 {
	h := Positional(b, self)
	if b.Placed() <= LateGameDiscs {
		return h
	}
	diff := b.Count(self) - b.Count(board.Opponent(self))
	return MaterialWeight*int32(diff) + h
}

// Positional is the weight-table and density part of Score.
func Positional(b *board.Board, self board.Cell) int32 {
	opp := board.Opponent(self)
	w := weights
	for _, k := range corners {
		var v int32
		switch b.At(k.r, k.c) {
		case self:
			v = cornerOwned
		case opp:
			v = -cornerOwned
		default:
			continue
		}
		for _, n := range k.near {
			w[n[0]][n[1]] = v
		}
	}

	var h int32
	for r := int8(0); r < board.Size; r++ {
		for c := int8(0); c < board.Size; c++ {
			switch b.At(r, c) {
			case self:
				h += w[r][c]
			case opp:
				h -= w[r][c]
			}
			if dense(b, r, c) {
				h += DensityBonus
			}
		}
	}
	return h
}

// dense reports whether some opposite neighbour pair of (r,c) is fully occupied.
// Squares off the board count as empty.
func dense(b *board.Board, r, c int8) bool {
	for _, p := range pairs {
		if occupied(b, r+p[0][0], c+p[0][1]) && occupied(b, r+p[1][0], c+p[1][1]) {
			return true
		}
	}
	return false
}

func occupied(b *board.Board, r, c int8) bool {
	if r < 0 || r >= board.Size || c < 0 || c >= board.Size {
		return false
	}
	return b.At(r, c) != board.Empty
}
