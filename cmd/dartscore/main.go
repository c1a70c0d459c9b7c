package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/dartscore/internal/config"
)

// version is set by ldflags during build
var version = "dev"

// Globals are the flags shared by every command
type Globals struct {
	Config string `short:"c" type:"path" default:"dartscore.hcl" help:"Path to the HCL game file"`
	Debug  bool   `help:"Enable debug logging"`
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Checkout CheckoutCmd      `cmd:"" help:"Show checkout paths for scores"`
	Play     PlayCmd          `cmd:"" help:"Score a game from the terminal"`
	Simulate SimulateCmd      `cmd:"" help:"Play random legs and report statistics"`
	History  HistoryCmd       `cmd:"" help:"Show a recorded leg"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("dartscore"),
		kong.Description("Dart scoring and rules engine"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

// loadConfig reads the game file and applies environment overrides
func (g *Globals) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(nil); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", g.Config, err)
	}
	return cfg, nil
}

// logger builds the stderr logger at the configured level; --debug wins
func (g *Globals) logger(cfg *config.Config) *log.Logger {
	level := log.InfoLevel
	if cfg != nil {
		if parsed, err := log.ParseLevel(cfg.LogLevel); err == nil {
			level = parsed
		}
	}
	if g.Debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
	})
}
