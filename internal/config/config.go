// Package config loads the game configuration from an HCL file with
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/dartscore/darts"
	"github.com/lox/dartscore/internal/game"
)

// Config is the complete configuration file
type Config struct {
	Game       *GameConfig `hcl:"game,block"`
	Players    []string    `hcl:"players,optional"`
	LogLevel   string      `hcl:"log_level,optional"`
	HistoryDir string      `hcl:"history_dir,optional"`
	Seed       int64       `hcl:"seed,optional"`
}

// GameConfig selects the variant and its rules. Zero values take the
// variant defaults.
type GameConfig struct {
	Variant         string `hcl:"variant,label"`
	CountTo         int    `hcl:"count_to,optional"`
	OptIn           string `hcl:"opt_in,optional"`
	OptOut          string `hcl:"opt_out,optional"`
	OptAtC          string `hcl:"opt_atc,optional"`
	Lives           int    `hcl:"lives,optional"`
	Rounds          int    `hcl:"rounds,optional"`
	SplitScoreStart int    `hcl:"split_score_start,optional"`
}

// Env holds the environment overrides
type Env struct {
	LogLevel   string   `env:"DARTSCORE_LOG_LEVEL"`
	HistoryDir string   `env:"DARTSCORE_HISTORY_DIR"`
	Seed       int64    `env:"DARTSCORE_SEED"`
	Players    []string `env:"DARTSCORE_PLAYERS" envSeparator:","`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		Game:     &GameConfig{Variant: "x01"},
		Players:  []string{"Player 1", "Player 2"},
		LogLevel: "info",
	}
}

// Load reads the configuration file. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source; filename is used in diagnostics
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	defaults := Default()
	if cfg.Game == nil {
		cfg.Game = defaults.Game
	}
	if len(cfg.Players) == 0 {
		cfg.Players = defaults.Players
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaults.LogLevel
	}
	return &cfg, nil
}

// ApplyEnv overrides settings from environ, or from the process
// environment when environ is nil.
func (c *Config) ApplyEnv(environ map[string]string) error {
	var e Env
	var err error
	if environ == nil {
		err = env.Parse(&e)
	} else {
		err = env.ParseWithOptions(&e, env.Options{Environment: environ})
	}
	if err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	if e.LogLevel != "" {
		c.LogLevel = e.LogLevel
	}
	if e.HistoryDir != "" {
		c.HistoryDir = e.HistoryDir
	}
	if e.Seed != 0 {
		c.Seed = e.Seed
	}
	if len(e.Players) > 0 {
		c.Players = e.Players
	}
	return nil
}

// GameOptions converts the game block into engine options
func (c *Config) GameOptions() (game.Options, error) {
	g := c.Game
	if g == nil {
		g = Default().Game
	}
	variant, err := game.ParseVariant(g.Variant)
	if err != nil {
		return game.Options{}, err
	}

	var opts []game.Option
	if g.CountTo != 0 {
		opts = append(opts, game.WithCountTo(g.CountTo))
	}
	if g.OptIn != "" {
		rule, err := darts.ParseOutRule(g.OptIn)
		if err != nil {
			return game.Options{}, fmt.Errorf("opt_in: %w", err)
		}
		opts = append(opts, game.WithOptIn(rule))
	}
	if g.OptOut != "" {
		rule, err := darts.ParseOutRule(g.OptOut)
		if err != nil {
			return game.Options{}, fmt.Errorf("opt_out: %w", err)
		}
		opts = append(opts, game.WithOptOut(rule))
	}
	if g.OptAtC != "" {
		ring, err := darts.ParseRing(g.OptAtC)
		if err != nil {
			return game.Options{}, fmt.Errorf("opt_atc: %w", err)
		}
		opts = append(opts, game.WithOptAtC(ring))
	}
	if g.Lives != 0 {
		opts = append(opts, game.WithLives(g.Lives))
	}
	if g.Rounds != 0 {
		opts = append(opts, game.WithRounds(g.Rounds))
	}
	if g.SplitScoreStart != 0 {
		opts = append(opts, game.WithSplitScoreStart(g.SplitScoreStart))
	}
	return game.NewOptions(variant, opts...), nil
}

// Validate checks the configuration
func (c *Config) Validate() error {
	opts, err := c.GameOptions()
	if err != nil {
		return err
	}
	if err := opts.Validate(); err != nil {
		return err
	}
	if len(c.Players) == 0 {
		return errors.New("at least one player is required")
	}
	seen := make(map[string]bool, len(c.Players))
	for _, name := range c.Players {
		if name == "" {
			return errors.New("player names must not be empty")
		}
		if seen[name] {
			return fmt.Errorf("duplicate player %q", name)
		}
		seen[name] = true
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return nil
}
