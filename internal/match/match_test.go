package match

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"othello_go/internal/board"
	"othello_go/internal/search"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.ErrorLevel)
}

func seed(b byte) []byte {
	s := make([]byte, 32)
	s[0] = b
	return s
}

func checkResult(t *testing.T, r Result) {
	t.Helper()
	if r.Black+r.White > board.Cells {
		t.Fatalf("%d+%d discs", r.Black, r.White)
	}
	if r.Forfeit {
		return
	}
	want := board.Draw
	switch {
	case r.Black > r.White:
		want = board.Black
	case r.White > r.Black:
		want = board.White
	}
	if r.Winner != want {
		t.Fatalf("winner %v with %d-%d", r.Winner, r.Black, r.White)
	}
	for i, p := range r.Moves {
		if !p.OK {
			t.Fatalf("ply %d rejected without a forfeit", i)
		}
	}
}

func TestRandomGameIsReproducible(t *testing.T) {
	play := func() Result {
		p := NewRandom(seed(7))
		r, err := Play(context.Background(), p, p, Options{})
		if err != nil {
			t.Fatalf("Play: %v", err)
		}
		return r
	}
	a, b := play(), play()
	checkResult(t, a)
	if len(a.Moves) != len(b.Moves) || a.Black != b.Black || a.White != b.White {
		t.Fatalf("same seed, different games")
	}
	for i := range a.Moves {
		if a.Moves[i] != b.Moves[i] {
			t.Fatalf("games diverge at ply %d", i)
		}
	}
}

func TestIllegalMoveForfeits(t *testing.T) {
	black := &Scripted{Moves: []board.Move{{R: 0, C: 0}}}
	white := NewRandom(seed(1))
	r, err := Play(context.Background(), black, white, Options{})
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if !r.Forfeit || r.Winner != board.White || len(r.Moves) != 1 || r.Moves[0].OK {
		t.Fatalf("result %+v, want white win by forfeit", r)
	}
}

func TestEngineAgainstRandom(t *testing.T) {
	eng := &Engine{Searcher: search.New(search.Config{Depth: 2, EndgameDepth: 3, EndgameDiscs: 53, CacheBits: 10})}
	var seen int
	opts := Options{
		RandomPlies: 4,
		Random:      NewRandom(seed(3)),
		OnMove:      func(Ply, board.Board) { seen++ },
	}
	r, err := Play(context.Background(), eng, NewRandom(seed(4)), opts)
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	checkResult(t, r)
	if seen != len(r.Moves) {
		t.Fatalf("OnMove called %d times for %d plies", seen, len(r.Moves))
	}
}

func TestEngineModesAgree(t *testing.T) {
	s := search.New(search.Config{Depth: 3, EndgameDepth: 3, EndgameDiscs: 53, Workers: 2})
	b := board.Start()
	b.Apply(board.Move{R: 2, C: 3})
	var moves []board.Move
	for _, e := range []*Engine{{Searcher: s}, {Searcher: s, Parallel: true}} {
		m, err := e.Move(context.Background(), b)
		if err != nil {
			t.Fatalf("Move: %v", err)
		}
		moves = append(moves, m)
	}
	if moves[0] != moves[1] {
		t.Fatalf("sequential %v, parallel %v", moves[0], moves[1])
	}
}

func TestPlayCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := NewRandom(seed(2))
	if _, err := Play(ctx, p, p, Options{}); err == nil {
		t.Fatalf("cancelled game returned no error")
	}
}

func TestArena(t *testing.T) {
	var tally Tally
	results, err := Arena(context.Background(), 6, 2, func(i int) (Player, Player, Options) {
		return NewRandom(seed(byte(2 * i))), NewRandom(seed(byte(2*i + 1))), Options{}
	})
	if err != nil {
		t.Fatalf("Arena: %v", err)
	}
	if len(results) != 6 {
		t.Fatalf("%d results", len(results))
	}
	for _, r := range results {
		checkResult(t, r)
		tally.Add(r)
	}
	if tally.Black+tally.White+tally.Draw != 6 || tally.Forfeits != 0 {
		t.Fatalf("tally %+v", tally)
	}
}
