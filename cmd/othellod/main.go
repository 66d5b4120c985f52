package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"othello_go/internal/config"
	"othello_go/internal/search"
	"othello_go/internal/server"
)

func main() {
	var (
		cfgPath = flag.String("config", "", "JSON config file (defaults when empty)")
		addr    = flag.String("addr", "", "listen address, overrides the config")
	)
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load-config")
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	cfg.Log.Setup()

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           server.New(search.New(cfg.Search), cfg.Server),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("listening")
		errCh <- srv.ListenAndServe()
	}()

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("serve")
		}
		return
	case <-sigCtx.Done():
		log.Info().Msg("shutdown-signal")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error().Err(err).Msg("shutdown")
	}
}
