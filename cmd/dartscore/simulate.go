package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/lox/dartscore/internal/config"
	"github.com/lox/dartscore/internal/simulator"
	"github.com/lox/dartscore/internal/statistics"
)

// SimulateCmd plays random legs through the engines
type SimulateCmd struct {
	Variant   string `help:"Variant to simulate, overriding the game file"`
	Legs      int    `default:"1000" help:"Number of legs to play"`
	Seed      *int64 `help:"RNG seed (defaults to the game file seed, then the clock)"`
	Workers   int    `help:"Parallel workers (0 = number of CPUs)"`
	MaxRounds int    `default:"100" help:"Abandon legs after this many rounds"`
	UndoCheck int    `default:"0" help:"Throw, undo and compare every nth dart (0 = off)"`
}

func (c *SimulateCmd) Run(g *Globals) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}
	if c.Variant != "" {
		cfg.Game = &config.GameConfig{Variant: c.Variant}
	}
	opts, err := cfg.GameOptions()
	if err != nil {
		return err
	}
	logger := g.logger(cfg)

	seed := cfg.Seed
	if c.Seed != nil {
		seed = *c.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("starting simulation", "variant", opts.Variant, "legs", c.Legs, "seed", seed)

	sim, err := simulator.New(simulator.Config{
		Legs:           c.Legs,
		Players:        cfg.Players,
		Options:        opts,
		Seed:           seed,
		Workers:        c.Workers,
		MaxRounds:      c.MaxRounds,
		UndoCheckEvery: c.UndoCheck,
		Logger:         logger,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	stats, err := sim.Run(ctx)
	if err != nil {
		return err
	}
	printSummary(os.Stdout, stats, cfg.Players, time.Since(start))
	return nil
}

func printSummary(w io.Writer, stats *statistics.Statistics, players []string, elapsed time.Duration) {
	low, high := stats.ConfidenceInterval95()

	fmt.Fprintln(w, headerStyle.Render("=== RESULTS ==="))
	fmt.Fprintf(w, "Legs played: %d (%d finished) in %v\n", stats.Legs, stats.Finished, elapsed.Round(time.Millisecond))
	fmt.Fprintf(w, "Darts per leg: mean %.1f, median %.1f, std dev %.1f\n", stats.Mean(), stats.Median(), stats.StdDev())
	fmt.Fprintf(w, "95%% CI: [%.1f, %.1f]\n", low, high)
	fmt.Fprintf(w, "Percentiles: P5=%.0f, P25=%.0f, P75=%.0f, P95=%.0f\n",
		stats.Percentile(0.05), stats.Percentile(0.25), stats.Percentile(0.75), stats.Percentile(0.95))
	if stats.NoWinner > 0 {
		fmt.Fprintf(w, "Legs without a winner: %d\n", stats.NoWinner)
	}

	fmt.Fprintln(w, headerStyle.Render("=== SEATS ==="))
	for i, seat := range stats.Seats {
		name := fmt.Sprintf("Seat %d", i+1)
		if i < len(players) {
			name = players[i]
		}
		fmt.Fprintf(w, "%-12s wins %5d (%5.1f%%)  avg %5.1f  checkout %5.1f%%  high %3d  marks %d\n",
			scoreStyle.Render(name), seat.Wins, seat.WinRate(), seat.Stats.Average(),
			seat.Stats.CheckoutPercentage(), seat.Stats.HighestFinish, seat.Stats.TotalMarksScored)
	}
}
