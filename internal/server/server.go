package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"othello_go/internal/board"
	"othello_go/internal/codec"
	"othello_go/internal/config"
	"othello_go/internal/eval"
	"othello_go/internal/search"
)

const maxStateBytes = 4 << 10

type handler struct {
	s   *search.Searcher
	cfg config.ServerConfig
}

type moveResponse struct {
	Row      int8   `json:"row"`
	Col      int8   `json:"col"`
	Score    int32  `json:"score"`
	Depth    int    `json:"depth"`
	Complete bool   `json:"complete"`
	Nodes    uint64 `json:"nodes"`
}

type evalResponse struct {
	Self       board.Cell `json:"self"`
	Score      int32      `json:"score"`
	Positional int32      `json:"positional"`
	Placed     int        `json:"placed"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// New wires the HTTP and websocket routes around s.
func New(s *search.Searcher, cfg config.ServerConfig) http.Handler {
	h := &handler{s: s, cfg: cfg}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/api/ping", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pong"))
	})
	r.Post("/api/move", h.move)
	r.Post("/api/evaluate", h.evaluate)
	r.Post("/api/render", h.render)
	r.Get("/ws/selfplay", h.selfplay)
	return r
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			log.Info().
				Str("req_id", middleware.GetReqID(r.Context())).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Int("bytes", ww.BytesWritten()).
				Dur("elapsed", time.Since(start)).
				Msg("http-request")
		}()
		next.ServeHTTP(ww, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write-json")
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (h *handler) readBoard(w http.ResponseWriter, r *http.Request) (board.Board, bool) {
	st, err := codec.ReadState(http.MaxBytesReader(w, r.Body, maxStateBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return board.Board{}, false
	}
	return st.Board(), true
}

func (h *handler) move(w http.ResponseWriter, r *http.Request) {
	b, ok := h.readBoard(w, r)
	if !ok {
		return
	}
	if b.NumLegal() == 0 {
		writeError(w, http.StatusUnprocessableEntity, search.ErrNoMoves)
		return
	}

	before := h.s.Stats().Nodes
	var res search.Result
	if raw := r.URL.Query().Get("timeout"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			writeError(w, http.StatusBadRequest, errors.New("timeout must be a positive duration"))
			return
		}
		if limit := h.cfg.MoveTimeout.Duration; limit > 0 && d > limit {
			d = limit
		}
		ctx, cancel := context.WithTimeout(r.Context(), d)
		defer cancel()
		res, err = h.s.ChooseMoveWithin(ctx, &b, b.Turn())
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
	} else {
		res = h.s.Search(&b, b.Turn())
	}

	writeJSON(w, http.StatusOK, moveResponse{
		Row:      res.Move.R,
		Col:      res.Move.C,
		Score:    res.Score,
		Depth:    res.Depth,
		Complete: res.Complete,
		Nodes:    h.s.Stats().Nodes - before,
	})
}

func (h *handler) evaluate(w http.ResponseWriter, r *http.Request) {
	b, ok := h.readBoard(w, r)
	if !ok {
		return
	}
	self := b.Turn()
	if raw := r.URL.Query().Get("self"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || (board.Cell(v) != board.Black && board.Cell(v) != board.White) {
			writeError(w, http.StatusBadRequest, errors.New("self must be 1 or 2"))
			return
		}
		self = board.Cell(v)
	}
	writeJSON(w, http.StatusOK, evalResponse{
		Self:       self,
		Score:      eval.Score(&b, self),
		Positional: eval.Positional(&b, self),
		Placed:     b.Placed(),
	})
}

func (h *handler) render(w http.ResponseWriter, r *http.Request) {
	b, ok := h.readBoard(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(codec.Render(&b, false)))
}
