package codec

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"othello_go/internal/board"
)

const opening = `1
0 0 0 0 0 0 0 0
0 0 0 0 0 0 0 0
0 0 0 0 0 0 0 0
0 0 0 2 1 0 0 0
0 0 0 1 2 0 0 0
0 0 0 0 0 0 0 0
0 0 0 0 0 0 0 0
0 0 0 0 0 0 0 0
4
2 3
3 2
4 5
5 4
`

func TestReadState(t *testing.T) {
	st, err := ReadState(strings.NewReader(opening))
	if err != nil {
		t.Fatalf("ReadState: %v", err)
	}
	b := st.Board()
	want := board.Start()
	if b.Grid() != want.Grid() || b.Turn() != board.Black {
		t.Fatalf("parsed board differs from the opening")
	}
	if len(st.Moves) != 4 || st.Moves[0] != (board.Move{R: 2, C: 3}) || st.Moves[3] != (board.Move{R: 5, C: 4}) {
		t.Fatalf("moves %v", st.Moves)
	}
}

func TestWriteStateRoundTrip(t *testing.T) {
	b := board.Start()
	var buf bytes.Buffer
	if err := WriteState(&buf, &b); err != nil {
		t.Fatalf("WriteState: %v", err)
	}
	if buf.String() != opening {
		t.Fatalf("WriteState wrote\n%s", buf.String())
	}
}

func TestReadStateMalformed(t *testing.T) {
	cases := map[string]string{
		"empty":      "",
		"bad side":   "3",
		"short grid": "1 0 0 0",
		"bad cell":   "1 " + strings.Repeat("0 ", 10) + "7",
		"not a num":  "1 x",
		"bad move":   strings.Replace(opening, "5 4\n", "5 9\n", 1),
		"few moves":  strings.TrimSuffix(opening, "5 4\n"),
	}
	for name, in := range cases {
		if _, err := ReadState(strings.NewReader(in)); !errors.Is(err, ErrMalformed) {
			t.Fatalf("%s: err = %v, want ErrMalformed", name, err)
		}
	}
}

func TestAction(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteAction(&buf, board.Move{R: 4, C: 5}); err != nil {
		t.Fatalf("WriteAction: %v", err)
	}
	if buf.String() != "4 5\n" {
		t.Fatalf("wrote %q", buf.String())
	}
	m, err := ReadAction(&buf)
	if err != nil || m != (board.Move{R: 4, C: 5}) {
		t.Fatalf("ReadAction = %v, %v", m, err)
	}
	if _, err := ReadAction(strings.NewReader("4")); !errors.Is(err, ErrMalformed) {
		t.Fatalf("err = %v, want ErrMalformed", err)
	}
}

func TestRender(t *testing.T) {
	b := board.Start()
	out := Render(&b, false)
	for _, want := range []string{
		"Timestep #1\n",
		"O: 2; X: 2\n",
		"O's turn\n",
		"|    . X O      |\n",
		"4 valid moves: {(2,3), (3,2), (4,5), (5,4)}\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("render lacks %q:\n%s", want, out)
		}
	}

	b.Apply(board.Move{})
	if out := Render(&b, true); !strings.Contains(out, "Winner is X (Opponent performed invalid move)") {
		t.Fatalf("forfeit render:\n%s", out)
	}
}
