// internal/search/deadline.go
package search

import (
	"context"

	"github.com/rs/zerolog/log"

	"othello_go/internal/board"
)

// Result of a deadline-bounded search.
type Result struct {
	Move     board.Move
	Score    int32
	Depth    int  // depth of the last completed iteration, 0 if none
	Complete bool // the full depth policy was searched
}

// ChooseMoveWithin deepens one ply at a time until the depth policy of
// ChooseMove is reached or ctx is done, and returns the move of the deepest
// finished iteration. A complete result is the move ChooseMove would pick.
// Without any finished iteration the first legal move is returned.
func (s *Searcher) ChooseMoveWithin(ctx context.Context, b *board.Board, self board.Cell) (Result, error) {
	moves := b.LegalMoves()
	if len(moves) == 0 {
		return Result{Move: board.NoMove}, ErrNoMoves
	}

	tok := newCancelToken(ctx)
	defer tok.release()

	top := s.topDepth(b)
	res := Result{Move: moves[0]}
	for d := 1; d <= top; d++ {
		m, v, ok := s.root(b, self, tok, d)
		if !ok {
			log.Debug().Int("depth", d).Msg("iteration-aborted")
			break
		}
		res = Result{Move: m, Score: v, Depth: d, Complete: d == top}
		log.Debug().Int("depth", d).Str("move", m.String()).Int32("score", v).Msg("iteration-complete")
	}
	return res, nil
}
