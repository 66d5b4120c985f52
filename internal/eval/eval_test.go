package eval

import (
	"testing"

	"othello_go/internal/board"
)

func TestOpeningIsBalanced(t *testing.T) {
	b := board.Start()
	for _, self := range []board.Cell{board.Black, board.White} {
		if got := Score(&b, self); got != 0 {
			t.Fatalf("opening score for %v = %d, want 0", self, got)
		}
	}
}

func TestCornerOverride(t *testing.T) {
	var g board.Grid
	g[0][1] = board.Black
	b := board.New(g, board.White)
	if got := Score(&b, board.Black); got != -30 {
		t.Fatalf("edge square next to an empty corner = %d, want -30", got)
	}

	g[0][0] = board.Black
	b = board.New(g, board.White)
	if got := Score(&b, board.Black); got != 150 {
		t.Fatalf("own corner: got %d, want 150", got)
	}
	if got := Score(&b, board.White); got != -50 {
		t.Fatalf("opponent corner: got %d, want -50", got)
	}

	// the base table is not touched by the override
	g[0][0] = board.Empty
	b = board.New(g, board.White)
	if got := Score(&b, board.Black); got != -30 {
		t.Fatalf("after override: got %d, want -30", got)
	}
}

func TestDensityBonus(t *testing.T) {
	var g board.Grid
	g[3][2], g[3][4] = board.Black, board.Black
	b := board.New(g, board.White)
	// (3,4) weighs 3; the empty (3,3) has both W and E neighbours
	if got := Score(&b, board.Black); got != 3+DensityBonus {
		t.Fatalf("black: got %d, want %d", got, 3+DensityBonus)
	}
	if got := Score(&b, board.White); got != -3+DensityBonus {
		t.Fatalf("white: got %d, want %d", got, -3+DensityBonus)
	}
}

func TestDensityAtEdges(t *testing.T) {
	var g board.Grid
	for c := 0; c < board.Size; c++ {
		g[0][c] = board.Black
	}
	b := board.New(g, board.White)
	// corners 100+100, overrides 50+50, 6+2+2+6; bonus on (0,1)..(0,6) only
	if got, want := Score(&b, board.Black), int32(316+6*DensityBonus); got != want {
		t.Fatalf("black: got %d, want %d", got, want)
	}
	if got, want := Score(&b, board.White), int32(-116+6*DensityBonus); got != want {
		t.Fatalf("white: got %d, want %d", got, want)
	}
}

func TestMaterialInLateGame(t *testing.T) {
	var g board.Grid
	for r := 0; r < 6; r++ {
		for c := 0; c < board.Size; c++ {
			g[r][c] = board.Black
		}
	}
	g[6][0], g[6][1] = board.White, board.White // 50 discs
	b := board.New(g, board.White)
	if d := Score(&b, board.Black) - Positional(&b, board.Black); d != 0 {
		t.Fatalf("material counted at %d discs: %d", b.Placed(), d)
	}

	for c := 2; c < board.Size; c++ {
		g[6][c] = board.White // 56 discs, 48 vs 8
	}
	b = board.New(g, board.White)
	if d := Score(&b, board.Black) - Positional(&b, board.Black); d != MaterialWeight*40 {
		t.Fatalf("black material term %d, want %d", d, MaterialWeight*40)
	}
	if d := Score(&b, board.White) - Positional(&b, board.White); d != -MaterialWeight*40 {
		t.Fatalf("white material term %d, want %d", d, -MaterialWeight*40)
	}
}
