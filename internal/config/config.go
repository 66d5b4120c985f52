package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"othello_go/internal/search"
)

type Config struct {
	Search search.Config `json:"search"`
	Log    LogConfig     `json:"log"`
	Server ServerConfig  `json:"server"`
	Arena  ArenaConfig   `json:"arena"`
}

type LogConfig struct {
	Level  string `json:"level"`
	Pretty bool   `json:"pretty"`
}

type ServerConfig struct {
	Addr        string   `json:"addr"`
	MoveTimeout Duration `json:"move_timeout"` // upper bound for ?timeout on /api/move
	RandomPlies int      `json:"random_plies"` // cap for ?random on /ws/selfplay
}

type ArenaConfig struct {
	Games       int `json:"games"`
	Workers     int `json:"workers"`
	RandomPlies int `json:"random_plies"`
}

// Duration reads "250ms"-style strings from JSON.
type Duration struct{ time.Duration }

func (d Duration) MarshalJSON() ([]byte, error) { return json.Marshal(d.String()) }

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func Default() Config {
	return Config{
		Search: search.DefaultConfig(),
		Log:    LogConfig{Level: "info", Pretty: true},
		Server: ServerConfig{
			Addr:        ":8080",
			MoveTimeout: Duration{5 * time.Second},
			RandomPlies: 8,
		},
		Arena: ArenaConfig{
			Games:       16,
			Workers:     4,
			RandomPlies: 6,
		},
	}
}

// Load overlays the JSON file at path on Default. An empty path gives the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	if err := Decode(f, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func Decode(r io.Reader, cfg *Config) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return err
	}
	return cfg.Validate()
}

func (c Config) Validate() error {
	var errs []error
	s := c.Search
	if s.Depth < 1 || s.EndgameDepth < 1 {
		errs = append(errs, errors.New("search depths must be at least 1"))
	}
	if s.EndgameDiscs < 0 || s.EndgameDiscs > 64 {
		errs = append(errs, fmt.Errorf("endgame_discs %d not in [0,64]", s.EndgameDiscs))
	}
	if s.CacheBits > 28 {
		errs = append(errs, fmt.Errorf("cache_bits %d too large", s.CacheBits))
	}
	if s.Workers < 0 {
		errs = append(errs, errors.New("workers must not be negative"))
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.Log.Level)); err != nil {
		errs = append(errs, fmt.Errorf("log level: %w", err))
	}
	if c.Arena.Games < 0 || c.Arena.Workers < 0 || c.Arena.RandomPlies < 0 {
		errs = append(errs, errors.New("arena settings must not be negative"))
	}
	return errors.Join(errs...)
}

// Setup points the global zerolog logger at stderr with the configured level.
func (l LogConfig) Setup() {
	lvl, err := zerolog.ParseLevel(strings.ToLower(l.Level))
	if err != nil || l.Level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	if l.Pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	}
}
