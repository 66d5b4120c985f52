package server

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strconv"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"othello_go/internal/board"
	"othello_go/internal/codec"
	"othello_go/internal/match"
)

var errBadRandom = errors.New("random must be a non-negative integer")

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

type wsMessage struct {
	Type   string        `json:"type"` // ply, result or error
	Ply    *match.Ply    `json:"ply,omitempty"`
	State  string        `json:"state,omitempty"` // state file text after the ply
	Result *match.Result `json:"result,omitempty"`
	Error  string        `json:"error,omitempty"`
}

// selfplay streams one engine-vs-engine game, one message per ply.
func (h *handler) selfplay(w http.ResponseWriter, r *http.Request) {
	plies := 0
	if raw := r.URL.Query().Get("random"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			writeError(w, http.StatusBadRequest, errBadRandom)
			return
		}
		plies = min(v, h.cfg.RandomPlies)
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("ws-upgrade")
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	var (
		mu       sync.Mutex
		writeErr error
	)
	send := func(msg wsMessage) {
		mu.Lock()
		defer mu.Unlock()
		if writeErr != nil {
			return
		}
		if writeErr = conn.WriteJSON(msg); writeErr != nil {
			cancel()
		}
	}

	eng := &match.Engine{Searcher: h.s}
	res, err := match.Play(ctx, eng, eng, match.Options{
		RandomPlies: plies,
		OnMove: func(p match.Ply, b board.Board) {
			var buf bytes.Buffer
			codec.WriteState(&buf, &b)
			send(wsMessage{Type: "ply", Ply: &p, State: buf.String()})
		},
	})
	if err != nil {
		log.Warn().Err(err).Msg("selfplay-aborted")
		send(wsMessage{Type: "error", Error: err.Error()})
		return
	}
	send(wsMessage{Type: "result", Result: &res})
	conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "game over"))
}
