package match

import (
	"context"
	"sync"
	"time"

	"lukechampine.com/frand"

	"othello_go/internal/board"
	"othello_go/internal/search"
)

// Player picks a move for the side to move of b.
type Player interface {
	Move(ctx context.Context, b board.Board) (board.Move, error)
}

// Engine plays with a Searcher. A positive Timeout uses the deadline search.
type Engine struct {
	Searcher *search.Searcher
	Timeout  time.Duration
	Parallel bool
}

func (e *Engine) Move(ctx context.Context, b board.Board) (board.Move, error) {
	if b.NumLegal() == 0 {
		return board.NoMove, search.ErrNoMoves
	}
	self := b.Turn()
	switch {
	case e.Timeout > 0:
		ctx, cancel := context.WithTimeout(ctx, e.Timeout)
		defer cancel()
		res, err := e.Searcher.ChooseMoveWithin(ctx, &b, self)
		return res.Move, err
	case e.Parallel:
		return e.Searcher.ChooseMoveParallel(ctx, &b, self)
	default:
		return e.Searcher.ChooseMove(&b, self), nil
	}
}

// Random plays a uniformly random legal move.
type Random struct {
	mu  sync.Mutex
	rng *frand.RNG
}

// NewRandom seeds from the system when seed is nil; otherwise seed must be 32 bytes.
func NewRandom(seed []byte) *Random {
	if seed == nil {
		seed = frand.Bytes(32)
	}
	return &Random{rng: frand.NewCustom(seed, 1024, 12)}
}

func (p *Random) Move(_ context.Context, b board.Board) (board.Move, error) {
	moves := b.LegalMoves()
	if len(moves) == 0 {
		return board.NoMove, search.ErrNoMoves
	}
	p.mu.Lock()
	i := p.rng.Intn(len(moves))
	p.mu.Unlock()
	return moves[i], nil
}

// Scripted replays fixed moves, then repeats the last one.
type Scripted struct {
	Moves []board.Move
	next  int
}

func (p *Scripted) Move(_ context.Context, _ board.Board) (board.Move, error) {
	if len(p.Moves) == 0 {
		return board.NoMove, search.ErrNoMoves
	}
	m := p.Moves[min(p.next, len(p.Moves)-1)]
	p.next++
	return m, nil
}
