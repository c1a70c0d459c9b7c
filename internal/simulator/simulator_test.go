package simulator

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/dartscore/darts"
	"github.com/lox/dartscore/internal/game"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.WarnLevel})
}

func TestNewValidates(t *testing.T) {
	t.Parallel()
	_, err := New(Config{Legs: 0, Players: []string{"A"}, Options: game.NewOptions(game.X01)})
	assert.Error(t, err)

	_, err = New(Config{Legs: 1, Options: game.NewOptions(game.X01)})
	assert.Error(t, err)

	_, err = New(Config{Legs: 1, Players: []string{"A"}, Options: game.NewOptions(game.Killer, game.WithLives(0))})
	assert.Error(t, err)

	sim, err := New(Config{Legs: 3, Players: []string{"A"}, Options: game.NewOptions(game.X01), Workers: 16})
	require.NoError(t, err)
	assert.Equal(t, 3, sim.config.Workers, "no more workers than legs")
	assert.Equal(t, 100, sim.config.MaxRounds)
	assert.NotNil(t, sim.config.Logger)
}

func TestRunEveryVariantWithUndoChecks(t *testing.T) {
	t.Parallel()
	configs := []game.Options{
		game.NewOptions(game.X01, game.WithCountTo(301)),
		game.NewOptions(game.X01, game.WithCountTo(101), game.WithOptIn(darts.OutDouble), game.WithOptOut(darts.OutMasters)),
		game.NewOptions(game.Cricket),
		game.NewOptions(game.CutThroat),
		game.NewOptions(game.Tactics),
		game.NewOptions(game.Killer),
		game.NewOptions(game.Elimination),
		game.NewOptions(game.Shanghai),
		game.NewOptions(game.Micky),
		game.NewOptions(game.AroundTheClock),
		game.NewOptions(game.SplitScore),
	}
	for _, opts := range configs {
		t.Run(opts.Variant.String(), func(t *testing.T) {
			t.Parallel()
			sim, err := New(Config{
				Legs:           8,
				Players:        []string{"A", "B", "C"},
				Options:        opts,
				Seed:           2024,
				Workers:        2,
				MaxRounds:      60,
				UndoCheckEvery: 1,
				Logger:         quietLogger(),
			})
			require.NoError(t, err)

			stats, err := sim.Run(context.Background())
			require.NoError(t, err)
			assert.Equal(t, 8, stats.Legs)
			require.Len(t, stats.Seats, 3)
			require.NoError(t, stats.Validate())
		})
	}
}

func TestRoundLimitedVariantsAlwaysFinish(t *testing.T) {
	t.Parallel()
	for _, opts := range []game.Options{game.NewOptions(game.Shanghai), game.NewOptions(game.SplitScore)} {
		stats, err := RunSimulation(context.Background(), opts, []string{"A", "B"}, 20, 7, quietLogger())
		require.NoError(t, err)
		assert.Equal(t, 20, stats.Finished, opts.Variant.String())
	}
}

func TestResultsIndependentOfWorkers(t *testing.T) {
	t.Parallel()
	run := func(workers int) (float64, []int) {
		sim, err := New(Config{
			Legs:    24,
			Players: []string{"A", "B"},
			Options: game.NewOptions(game.X01, game.WithCountTo(301)),
			Seed:    99,
			Workers: workers,
		})
		require.NoError(t, err)
		stats, err := sim.Run(context.Background())
		require.NoError(t, err)
		wins := make([]int, len(stats.Seats))
		for i, seat := range stats.Seats {
			wins[i] = seat.Wins
		}
		return stats.Mean(), wins
	}

	mean1, wins1 := run(1)
	mean4, wins4 := run(4)
	assert.Equal(t, mean1, mean4)
	assert.Equal(t, wins1, wins4)
}

func TestRunHonoursCancellation(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sim, err := New(Config{Legs: 10, Players: []string{"A"}, Options: game.NewOptions(game.Cricket)})
	require.NoError(t, err)
	_, err = sim.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
