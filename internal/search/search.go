// internal/search/search.go
package search

import (
	"errors"
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"othello_go/internal/board"
	"othello_go/internal/eval"
	"othello_go/internal/tt"
	"othello_go/internal/zobrist"
)

// Inf bounds every evaluation.
const Inf int32 = 100000000

var ErrNoMoves = errors.New("search: no legal move")

type Config struct {
	Depth        int   `json:"depth"`         // plies searched after each root move
	EndgameDepth int   `json:"endgame_depth"` // used once EndgameDiscs discs are on the board
	EndgameDiscs int   `json:"endgame_discs"`
	CacheBits    uint8 `json:"cache_bits"` // leaf cache size 2^CacheBits, 0 disables it
	Workers      int   `json:"workers"`    // parallel root; 0 means NumCPU-1
}

func DefaultConfig() Config {
	return Config{
		Depth:        5,
		EndgameDepth: 11,
		EndgameDiscs: 53, // 11 or fewer empty squares
		CacheBits:    16,
	}
}

type Stats struct {
	Nodes     uint64
	Leaves    uint64
	CacheHits uint64
}

// Searcher holds the configuration and the optional leaf cache. It keeps no
// position state between calls and is safe for concurrent use.
type Searcher struct {
	cfg   Config
	cache *tt.Table

	nodes, leaves, hits atomic.Uint64
}

func New(cfg Config) *Searcher {
	s := &Searcher{cfg: cfg}
	if cfg.CacheBits > 0 {
		s.cache = tt.New(cfg.CacheBits)
	}
	return s
}

func (s *Searcher) Config() Config { return s.cfg }

func (s *Searcher) Stats() Stats {
	return Stats{Nodes: s.nodes.Load(), Leaves: s.leaves.Load(), CacheHits: s.hits.Load()}
}

// reference has no cache; the package-level helpers use it.
var reference = New(Config{Depth: 5, EndgameDepth: 11, EndgameDiscs: 53})

// ChooseMove searches every legal move of b with the default depth policy.
func ChooseMove(b *board.Board, self board.Cell) board.Move {
	return reference.ChooseMove(b, self)
}

func Minimax(b *board.Board, depth int, self, toMax board.Cell, alpha, beta int32) int32 {
	return reference.Minimax(b, depth, self, toMax, alpha, beta)
}

/* ──────────────── root ──────────────── */

// ChooseMove returns the legal move with the best backed-up score for self.
// Ties go to the first move in row-major order. b must have a legal move;
// otherwise board.NoMove is returned.
func (s *Searcher) ChooseMove(b *board.Board, self board.Cell) board.Move {
	m, _, _ := s.root(b, self, nil, 0)
	return m
}

// Search is ChooseMove that also reports the backed-up score.
func (s *Searcher) Search(b *board.Board, self board.Cell) Result {
	m, v, _ := s.root(b, self, nil, 0)
	return Result{Move: m, Score: v, Depth: s.topDepth(b), Complete: true}
}

// depthFor picks the search depth from the position after the root move.
func (s *Searcher) depthFor(child *board.Board) int {
	if child.Placed() >= s.cfg.EndgameDiscs {
		return s.cfg.EndgameDepth
	}
	return s.cfg.Depth
}

// topDepth is the deepest search any root move of b gets.
func (s *Searcher) topDepth(b *board.Board) int {
	top := 0
	for _, m := range b.LegalMoves() {
		child := *b
		child.Apply(m)
		top = max(top, s.depthFor(&child))
	}
	return top
}

// root runs one pass over the root moves, passing the best score so far as
// alpha to the next candidate. limit > 0 caps the depth. ok is false when
// the pass was aborted.
func (s *Searcher) root(b *board.Board, self board.Cell, stop *cancelToken, limit int) (best board.Move, score int32, ok bool) {
	r := &run{s: s, self: self, stop: stop}
	best, alpha := board.NoMove, -Inf
	for _, m := range b.LegalMoves() {
		child := *b
		child.Apply(m)
		depth := s.depthFor(&child)
		if limit > 0 && depth > limit {
			depth = limit
		}
		v := r.minimax(&child, depth, board.Opponent(self), alpha, Inf)
		if stop.IsAborted() {
			return best, alpha, false
		}
		log.Debug().Str("move", m.String()).Int("depth", depth).Int32("score", v).Msg("root-candidate")
		if v > alpha {
			alpha, best = v, m
		}
	}
	return best, alpha, true
}

/* ──────────────── minimax + αβ ──────────────── */

// Minimax scores b for self, searching depth plies. toMax is the side whose
// turn it is in the tree; it alternates every ply even when the board passed.
func (s *Searcher) Minimax(b *board.Board, depth int, self, toMax board.Cell, alpha, beta int32) int32 {
	r := &run{s: s, self: self}
	return r.minimax(b, depth, toMax, alpha, beta)
}

// run carries what stays fixed during one search.
type run struct {
	s    *Searcher
	self board.Cell
	stop *cancelToken
}

func (r *run) minimax(b *board.Board, depth int, toMax board.Cell, alpha, beta int32) int32 {
	r.s.nodes.Add(1)
	if depth == 0 || b.Done() {
		return r.leaf(b)
	}
	if r.stop.IsAborted() {
		return 0 // discarded by the caller
	}

	next := board.Opponent(toMax)
	if toMax == r.self {
		value := -Inf
		for _, m := range b.LegalMoves() {
			child := *b
			child.Apply(m)
			value = max(value, r.minimax(&child, depth-1, next, alpha, beta))
			alpha = max(alpha, value)
			if alpha >= beta {
				break // β cut
			}
		}
		return value
	}

	value := Inf
	for _, m := range b.LegalMoves() {
		child := *b
		child.Apply(m)
		value = min(value, r.minimax(&child, depth-1, next, alpha, beta))
		beta = min(beta, value)
		if beta <= alpha {
			break // α cut
		}
	}
	return value
}

func (r *run) leaf(b *board.Board) int32 {
	r.s.leaves.Add(1)
	cache := r.s.cache
	if cache == nil {
		return eval.Score(b, r.self)
	}
	key := b.Hash() ^ zobrist.Self(int8(r.self))
	if v, ok := cache.Probe(key); ok {
		r.s.hits.Add(1)
		return v
	}
	v := eval.Score(b, r.self)
	cache.Store(key, v)
	return v
}
