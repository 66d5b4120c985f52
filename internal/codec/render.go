package codec

import (
	"fmt"
	"strings"

	"othello_go/internal/board"
)

// Render draws b the way the judge prints each turn. forfeit marks a game
// that ended on an illegal move.
func Render(b *board.Board, forfeit bool) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Timestep #%d\n", b.Placed()-4+1)
	fmt.Fprintf(&sb, "O: %d; X: %d\n", b.Count(board.Black), b.Count(board.White))
	switch {
	case forfeit:
		fmt.Fprintf(&sb, "Winner is %s (Opponent performed invalid move)\n", b.Winner())
	case b.NumLegal() > 0 && !b.Done():
		fmt.Fprintf(&sb, "%s's turn\n", b.Turn())
	default:
		fmt.Fprintf(&sb, "Winner is %s\n", b.Winner())
	}

	sb.WriteString("+---------------+\n")
	for i := int8(0); i < board.Size; i++ {
		sb.WriteByte('|')
		for j := int8(0); j < board.Size; j++ {
			sb.WriteString(spot(b, i, j))
			if j < board.Size-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString("|\n")
	}
	sb.WriteString("+---------------+\n")

	moves := b.LegalMoves()
	fmt.Fprintf(&sb, "%d valid moves: {", len(moves))
	for i, m := range moves {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(m.String())
	}
	sb.WriteString("}\n=================\n")
	return sb.String()
}

func spot(b *board.Board, r, c int8) string {
	if b.IsLegalMove(board.Move{R: r, C: c}) {
		return "."
	}
	switch b.At(r, c) {
	case board.Black:
		return "O"
	case board.White:
		return "X"
	}
	return " "
}
