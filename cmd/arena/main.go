package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/rs/zerolog/log"

	"othello_go/internal/board"
	"othello_go/internal/config"
	"othello_go/internal/match"
	"othello_go/internal/search"
)

func main() {
	var (
		cfgPath  = flag.String("config", "", "JSON config file (defaults when empty)")
		games    = flag.Int("games", -1, "number of games, overrides the config")
		workers  = flag.Int("workers", -1, "concurrent games, overrides the config")
		plies    = flag.Int("random-plies", -1, "random opening plies, overrides the config")
		opponent = flag.String("opponent", "engine", "engine or random")
		out      = flag.String("out", "", "write game records as JSON to this file")
		cpuProf  = flag.Bool("profile", false, "write a cpu profile to the working directory")
	)
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load-config")
	}
	cfg.Log.Setup()
	if *games >= 0 {
		cfg.Arena.Games = *games
	}
	if *workers >= 0 {
		cfg.Arena.Workers = *workers
	}
	if *plies >= 0 {
		cfg.Arena.RandomPlies = *plies
	}
	if *opponent != "engine" && *opponent != "random" {
		log.Fatal().Str("opponent", *opponent).Msg("opponent must be engine or random")
	}
	if *cpuProf {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	}

	s := search.New(cfg.Search)
	start := time.Now()
	results, err := match.Arena(context.Background(), cfg.Arena.Games, cfg.Arena.Workers,
		func(i int) (match.Player, match.Player, match.Options) {
			eng := &match.Engine{Searcher: s}
			opts := match.Options{RandomPlies: cfg.Arena.RandomPlies}
			if *opponent == "engine" {
				return eng, eng, opts
			}
			// engine alternates colours against the random player
			if engineColour(i) == board.Black {
				return eng, match.NewRandom(nil), opts
			}
			return match.NewRandom(nil), eng, opts
		})
	if err != nil {
		log.Error().Err(err).Msg("arena")
		return
	}

	var t match.Tally
	engineWins := 0
	for i, r := range results {
		t.Add(r)
		if engine := engineColour(i); *opponent == "random" && r.Winner == engine {
			engineWins++
		}
	}
	log.Info().
		Int("games", len(results)).
		Int("black", t.Black).
		Int("white", t.White).
		Int("draw", t.Draw).
		Int("forfeits", t.Forfeits).
		Int("engine_wins", engineWins).
		Uint64("nodes", s.Stats().Nodes).
		Dur("elapsed", time.Since(start)).
		Msg("arena-finished")

	if *out == "" {
		return
	}
	f, err := os.Create(*out)
	if err != nil {
		log.Error().Err(err).Msg("create-output")
		return
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		log.Error().Err(err).Msg("write-output")
	}
}

// engineColour is the side the engine plays in game i against the random player.
func engineColour(i int) board.Cell {
	if i%2 == 0 {
		return board.Black
	}
	return board.White
}
