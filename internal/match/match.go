package match

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"othello_go/internal/board"
)

// Ply is one move of a finished or running game.
type Ply struct {
	Side board.Cell `json:"side"`
	Move board.Move `json:"move"`
	OK   bool       `json:"ok"`
}

type Result struct {
	Moves   []Ply      `json:"moves"`
	Black   int        `json:"black"`
	White   int        `json:"white"`
	Winner  board.Cell `json:"winner"`
	Forfeit bool       `json:"forfeit"` // ended on an illegal move
}

type Options struct {
	Start       *board.Board           // nil means the standard opening
	RandomPlies int                    // random opening plies before the players take over
	Random      *Random                // source for the random plies; nil seeds one
	OnMove      func(Ply, board.Board) // called after every ply
}

// Play runs one game to the end. A player's error aborts the game; an
// illegal move ends it as a forfeit.
func Play(ctx context.Context, black, white Player, opts Options) (Result, error) {
	b := board.Start()
	if opts.Start != nil {
		b = *opts.Start
	}
	rnd := opts.Random
	if rnd == nil && opts.RandomPlies > 0 {
		rnd = NewRandom(nil)
	}

	var res Result
	for ply := 0; !b.Done(); ply++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		side := b.Turn()
		var p Player = black
		if side == board.White {
			p = white
		}
		if ply < opts.RandomPlies {
			p = rnd
		}

		m, err := p.Move(ctx, b)
		if err != nil {
			return res, fmt.Errorf("ply %d (%s): %w", ply, side, err)
		}
		ok := b.Apply(m)
		step := Ply{Side: side, Move: m, OK: ok}
		res.Moves = append(res.Moves, step)
		if opts.OnMove != nil {
			opts.OnMove(step, b)
		}
		if !ok {
			res.Forfeit = true
			log.Warn().Str("side", side.String()).Str("move", m.String()).Msg("illegal-move-forfeit")
		}
	}

	res.Black, res.White, res.Winner = b.Count(board.Black), b.Count(board.White), b.Winner()
	return res, nil
}

// Tally counts results by winner.
type Tally struct {
	Black, White, Draw, Forfeits int
}

func (t *Tally) Add(r Result) {
	switch r.Winner {
	case board.Black:
		t.Black++
	case board.White:
		t.White++
	default:
		t.Draw++
	}
	if r.Forfeit {
		t.Forfeits++
	}
}

// Arena plays n games on at most workers goroutines. newGame returns the two
// players and options for game i; results keep the game order.
func Arena(ctx context.Context, n, workers int, newGame func(i int) (black, white Player, opts Options)) ([]Result, error) {
	results := make([]Result, n)
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			black, white, opts := newGame(i)
			r, err := Play(ctx, black, white, opts)
			if err != nil {
				return fmt.Errorf("game %d: %w", i, err)
			}
			results[i] = r
			log.Debug().Int("game", i).Int("black", r.Black).Int("white", r.White).
				Str("winner", r.Winner.String()).Msg("game-finished")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
