// internal/search/parallel.go
package search

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"othello_go/internal/board"
)

func (s *Searcher) workers() int {
	if s.cfg.Workers > 0 {
		return s.cfg.Workers
	}
	w := runtime.NumCPU() - 1
	if w < 1 {
		w = 1
	}
	return w
}

// ChooseMoveParallel searches the root moves concurrently, each with a full
// window, and picks the first move with the highest score. It returns the
// same move as ChooseMove.
func (s *Searcher) ChooseMoveParallel(ctx context.Context, b *board.Board, self board.Cell) (board.Move, error) {
	moves := b.LegalMoves()
	if len(moves) == 0 {
		return board.NoMove, ErrNoMoves
	}

	tok := newCancelToken(ctx)
	defer tok.release()

	scores := make([]int32, len(moves))
	var g errgroup.Group
	g.SetLimit(s.workers())
	for i, m := range moves {
		i, m := i, m
		g.Go(func() error {
			child := *b
			child.Apply(m)
			r := &run{s: s, self: self, stop: tok}
			scores[i] = r.minimax(&child, s.depthFor(&child), board.Opponent(self), -Inf, Inf)
			if tok.IsAborted() {
				return ctx.Err()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return board.NoMove, err
	}

	best := 0
	for i := range scores {
		if scores[i] > scores[best] {
			best = i
		}
	}
	return moves[best], nil
}
