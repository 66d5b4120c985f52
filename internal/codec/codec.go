// Package codec reads and writes the plain-text state and action files used
// by the game harness.
//
// State file: side to move, the 8x8 grid row-major (0 empty, 1 black,
// 2 white), the number of legal moves, then one "row col" pair per move.
// Action file: a single "row col" line.
package codec

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"othello_go/internal/board"
)

var ErrMalformed = errors.New("codec: malformed input")

// State is a parsed state file. Moves is the list the harness sent; the
// board recomputes its own.
type State struct {
	Turn  board.Cell
	Grid  board.Grid
	Moves []board.Move
}

func (s State) Board() board.Board { return board.New(s.Grid, s.Turn) }

type scanner struct {
	sc  *bufio.Scanner
	pos int
}

func newScanner(r io.Reader) *scanner {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &scanner{sc: sc}
}

func (s *scanner) int(what string, lo, hi int) (int, error) {
	s.pos++
	if !s.sc.Scan() {
		if err := s.sc.Err(); err != nil {
			return 0, err
		}
		return 0, fmt.Errorf("%w: token %d (%s): unexpected end of input", ErrMalformed, s.pos, what)
	}
	v, err := strconv.Atoi(s.sc.Text())
	if err != nil {
		return 0, fmt.Errorf("%w: token %d (%s): %q is not an integer", ErrMalformed, s.pos, what, s.sc.Text())
	}
	if v < lo || v > hi {
		return 0, fmt.Errorf("%w: token %d (%s): %d not in [%d,%d]", ErrMalformed, s.pos, what, v, lo, hi)
	}
	return v, nil
}

func (s *scanner) move() (board.Move, error) {
	r, err := s.int("row", 0, board.Size-1)
	if err != nil {
		return board.NoMove, err
	}
	c, err := s.int("col", 0, board.Size-1)
	if err != nil {
		return board.NoMove, err
	}
	return board.Move{R: int8(r), C: int8(c)}, nil
}

func ReadState(r io.Reader) (State, error) {
	var st State
	sc := newScanner(r)

	side, err := sc.int("side", int(board.Black), int(board.White))
	if err != nil {
		return st, err
	}
	st.Turn = board.Cell(side)

	for i := 0; i < board.Size; i++ {
		for j := 0; j < board.Size; j++ {
			v, err := sc.int("cell", int(board.Empty), int(board.White))
			if err != nil {
				return st, err
			}
			st.Grid[i][j] = board.Cell(v)
		}
	}

	n, err := sc.int("move count", 0, board.Cells)
	if err != nil {
		return st, err
	}
	st.Moves = make([]board.Move, 0, n)
	for i := 0; i < n; i++ {
		m, err := sc.move()
		if err != nil {
			return st, err
		}
		st.Moves = append(st.Moves, m)
	}
	return st, nil
}

func WriteState(w io.Writer, b *board.Board) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", b.Turn())
	for i := int8(0); i < board.Size; i++ {
		for j := int8(0); j < board.Size; j++ {
			sep := " "
			if j == board.Size-1 {
				sep = "\n"
			}
			fmt.Fprintf(bw, "%d%s", b.At(i, j), sep)
		}
	}
	moves := b.LegalMoves()
	fmt.Fprintf(bw, "%d\n", len(moves))
	for _, m := range moves {
		fmt.Fprintf(bw, "%d %d\n", m.R, m.C)
	}
	return bw.Flush()
}

func ReadAction(r io.Reader) (board.Move, error) {
	return newScanner(r).move()
}

func WriteAction(w io.Writer, m board.Move) error {
	_, err := fmt.Fprintf(w, "%d %d\n", m.R, m.C)
	return err
}
