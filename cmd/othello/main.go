package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/rs/zerolog/log"

	"othello_go/internal/board"
	"othello_go/internal/codec"
	"othello_go/internal/config"
	"othello_go/internal/search"
)

func main() {
	// ──────── flags ────────
	var (
		cfgPath  = flag.String("config", "", "JSON config file (defaults when empty)")
		timeout  = flag.Duration("timeout", 0, "wall-clock budget; 0 searches the full depth")
		parallel = flag.Bool("parallel", false, "search root moves concurrently")
		prof     = flag.String("profile", "", "write a cpu or mem profile to the working directory")
		verbose  = flag.Bool("v", false, "debug logging")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <state-file> <action-file>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load-config")
	}
	if *verbose {
		cfg.Log.Level = "debug"
	}
	cfg.Log.Setup()

	os.Exit(run(cfg.Search, *timeout, *parallel, *prof, flag.Arg(0), flag.Arg(1)))
}

func run(cfg search.Config, timeout time.Duration, parallel bool, prof, in, out string) int {
	switch prof {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	}

	if err := play(cfg, timeout, parallel, in, out); err != nil {
		log.Error().Err(err).Str("state", in).Msg("othello")
		return 1
	}
	return 0
}

// play reads the state file, picks a move for the side to move and writes it.
func play(cfg search.Config, timeout time.Duration, parallel bool, in, out string) error {
	f, err := os.Open(in)
	if err != nil {
		return err
	}
	st, err := codec.ReadState(f)
	f.Close()
	if err != nil {
		return err
	}

	b := st.Board()
	if b.NumLegal() != len(st.Moves) {
		log.Warn().Int("given", len(st.Moves)).Int("computed", b.NumLegal()).Msg("legal-move-list-mismatch")
	}
	if b.NumLegal() == 0 {
		return search.ErrNoMoves
	}

	s := search.New(cfg)
	start := time.Now()
	var m board.Move
	switch {
	case timeout > 0:
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		res, err := s.ChooseMoveWithin(ctx, &b, b.Turn())
		if err != nil {
			return err
		}
		m = res.Move
		log.Debug().Int("depth", res.Depth).Bool("complete", res.Complete).Msg("deadline-search")
	case parallel:
		if m, err = s.ChooseMoveParallel(context.Background(), &b, b.Turn()); err != nil {
			return err
		}
	default:
		m = s.ChooseMove(&b, b.Turn())
	}

	stats := s.Stats()
	log.Info().
		Str("side", b.Turn().String()).
		Str("move", m.String()).
		Uint64("nodes", stats.Nodes).
		Uint64("cache_hits", stats.CacheHits).
		Dur("elapsed", time.Since(start)).
		Msg("move-chosen")

	o, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := codec.WriteAction(o, m); err != nil {
		o.Close()
		return err
	}
	return o.Close()
}
