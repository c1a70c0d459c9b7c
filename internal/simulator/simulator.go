// Package simulator plays many legs of random darts through the match
// controller. It doubles as a soak test for the engines: with undo checks
// enabled every checked dart is thrown, undone and compared.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"reflect"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/dartscore/darts"
	"github.com/lox/dartscore/internal/game"
	"github.com/lox/dartscore/internal/match"
	"github.com/lox/dartscore/internal/randutil"
	"github.com/lox/dartscore/internal/statistics"
)

// ErrUndoMismatch is returned when undoing a dart did not restore the
// state from before it
var ErrUndoMismatch = errors.New("simulator: undo did not restore state")

// Config holds configuration for running simulations
type Config struct {
	Legs      int
	Players   []string
	Options   game.Options
	Seed      int64
	Workers   int // defaults to the number of CPUs, capped at 8
	MaxRounds int // legs still running after this many rounds are abandoned

	// UndoCheckEvery throws, undoes and re-checks every nth dart. Zero
	// disables the check.
	UndoCheckEvery int

	Logger *log.Logger
}

// Simulator runs leg simulations
type Simulator struct {
	config Config
}

// New creates a simulator, filling in defaults
func New(config Config) (*Simulator, error) {
	if config.Legs <= 0 {
		return nil, fmt.Errorf("legs must be positive, got %d", config.Legs)
	}
	if len(config.Players) == 0 {
		return nil, errors.New("at least one player is required")
	}
	if err := config.Options.Validate(); err != nil {
		return nil, err
	}
	if config.Workers <= 0 {
		config.Workers = min(runtime.NumCPU(), 8)
	}
	config.Workers = min(config.Workers, config.Legs)
	if config.MaxRounds <= 0 {
		config.MaxRounds = 100
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	return &Simulator{config: config}, nil
}

// Run plays the configured legs and returns the aggregated statistics.
// Results do not depend on the number of workers.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	g, ctx := errgroup.WithContext(ctx)
	results := make(chan *statistics.Statistics, s.config.Workers)

	for w := 0; w < s.config.Workers; w++ {
		g.Go(func() error {
			stats := &statistics.Statistics{}
			for leg := w; leg < s.config.Legs; leg += s.config.Workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				result, err := s.playLeg(leg)
				if err != nil {
					return fmt.Errorf("leg %d (seed %d): %w", leg+1, result.Seed, err)
				}
				stats.Add(result)
			}

			select {
			case results <- stats:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}

	go func() {
		defer close(results)
		_ = g.Wait()
	}()

	total := &statistics.Statistics{}
	for stats := range results {
		total.Merge(stats)
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := total.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}
	s.config.Logger.Info("simulation complete",
		"variant", s.config.Options.Variant,
		"legs", total.Legs,
		"finished", total.Finished,
		"mean_darts", fmt.Sprintf("%.1f", total.Mean()))
	return total, nil
}

// playLeg plays one leg to completion or the round cap
func (s *Simulator) playLeg(leg int) (statistics.LegResult, error) {
	result := statistics.LegResult{Leg: leg, Seed: s.config.Seed, Winner: -1}
	rng := randutil.Derive(s.config.Seed, leg)

	m, err := match.New(s.config.Options, s.config.Players, match.WithLogger(s.config.Logger))
	if err != nil {
		return result, err
	}

	for !m.Over() && m.Round() <= s.config.MaxRounds {
		p := m.Current()
		for !p.TurnOver && !m.Over() {
			t := randutil.Throw(rng)
			result.Darts++
			if every := s.config.UndoCheckEvery; every > 0 && result.Darts%every == 0 {
				if err := checkUndo(m, t); err != nil {
					return result, err
				}
			}
			if _, err := m.Throw(t); err != nil {
				return result, err
			}
		}
		if m.Over() {
			break
		}
		if _, err := m.NextTurn(); err != nil {
			return result, err
		}
	}

	result.Finished = m.Over()
	result.Rounds = m.Round()
	for i, p := range m.Players() {
		result.Players = append(result.Players, p.Stats)
		if p == m.Winner() {
			result.Winner = i
		}
	}
	s.config.Logger.Debug("leg complete", "leg", leg+1, "finished", result.Finished, "darts", result.Darts)
	return result, nil
}

// checkUndo throws t, undoes it and compares every player's state with the
// state before the throw
func checkUndo(m *match.Match, t darts.Throw) error {
	before := m.Snapshot()
	if _, err := m.Throw(t); err != nil {
		return err
	}
	if _, err := m.Undo(); err != nil {
		return err
	}
	if after := m.Snapshot(); !reflect.DeepEqual(before, after) {
		return fmt.Errorf("%w: %s by %s", ErrUndoMismatch, t.Label(), m.Current().Name)
	}
	return nil
}

// RunSimulation is a convenience function for running a simulation with basic parameters
func RunSimulation(ctx context.Context, opts game.Options, players []string, legs int, seed int64, logger *log.Logger) (*statistics.Statistics, error) {
	sim, err := New(Config{
		Legs:    legs,
		Players: players,
		Options: opts,
		Seed:    seed,
		Logger:  logger,
	})
	if err != nil {
		return nil, err
	}
	return sim.Run(ctx)
}
