package match

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/dartscore/darts"
	"github.com/lox/dartscore/internal/game"
)

func testLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.DebugLevel})
}

func mustThrow(t *testing.T, m *Match, label string) game.ThrowResult {
	t.Helper()
	th, err := darts.ParseLabel(label)
	require.NoError(t, err)
	result, err := m.Throw(th)
	require.NoError(t, err)
	return result
}

func TestNewValidates(t *testing.T) {
	t.Parallel()
	_, err := New(game.NewOptions(game.X01), nil)
	assert.Error(t, err)

	_, err = New(game.NewOptions(game.Killer, game.WithLives(0)), []string{"A"})
	assert.Error(t, err)
}

func TestPlayersGetStableIDs(t *testing.T) {
	t.Parallel()
	m, err := New(game.NewOptions(game.Cricket), []string{"A", "B", "C"})
	require.NoError(t, err)
	for i, p := range m.Players() {
		assert.Equal(t, i+1, p.ID)
	}
}

func TestTurnSequencing(t *testing.T) {
	t.Parallel()
	m, err := New(game.NewOptions(game.X01), []string{"Alice", "Bob"}, WithLogger(testLogger()))
	require.NoError(t, err)
	assert.Equal(t, "Alice", m.Current().Name)
	assert.Equal(t, 1, m.Round())

	for range 3 {
		mustThrow(t, m, "T20")
	}
	assert.True(t, m.Current().TurnOver)
	_, err = m.Throw(darts.NewThrow(darts.Single, 1))
	assert.ErrorIs(t, err, ErrTurnOver)

	_, err = m.NextTurn()
	require.NoError(t, err)
	assert.Equal(t, "Bob", m.Current().Name)
	assert.Empty(t, m.Current().Throws)
	assert.Equal(t, 321, m.Players()[0].Score)

	_, err = m.NextTurn()
	require.NoError(t, err)
	assert.Equal(t, "Alice", m.Current().Name)
	assert.Equal(t, 2, m.Round())
	assert.Empty(t, m.Players()[0].Throws, "throws are cleared at turn start")
}

func TestUndo(t *testing.T) {
	t.Parallel()
	m, err := New(game.NewOptions(game.X01), []string{"Alice", "Bob"})
	require.NoError(t, err)

	_, err = m.Undo()
	assert.ErrorIs(t, err, ErrNothingToUndo)

	mustThrow(t, m, "T20")
	mustThrow(t, m, "T20")
	mustThrow(t, m, "T20")
	undone, err := m.Undo()
	require.NoError(t, err)
	assert.Equal(t, darts.NewThrow(darts.Triple, 20), undone)
	assert.False(t, m.Current().TurnOver, "undo reopens the turn")
	assert.Equal(t, 381, m.Current().Score)

	mustThrow(t, m, "D20")
	assert.Equal(t, 341, m.Current().Score)
}

func TestBustEndsTurn(t *testing.T) {
	t.Parallel()
	m, err := New(game.NewOptions(game.X01, game.WithCountTo(40)), []string{"Alice", "Bob"})
	require.NoError(t, err)

	result := mustThrow(t, m, "T20")
	assert.Equal(t, game.StatusBust, result.Status)
	_, err = m.Throw(darts.NewThrow(darts.Double, 20))
	assert.ErrorIs(t, err, ErrTurnOver)

	_, err = m.Undo()
	require.NoError(t, err)
	result = mustThrow(t, m, "D20")
	assert.Equal(t, game.StatusWin, result.Status)
}

func TestWinAndReopen(t *testing.T) {
	t.Parallel()
	clock := quartz.NewMock(t)
	m, err := New(game.NewOptions(game.X01, game.WithCountTo(101)), []string{"Alice", "Bob"}, WithHistory(clock))
	require.NoError(t, err)

	mustThrow(t, m, "T20")
	mustThrow(t, m, "1")
	result := mustThrow(t, m, "D20")
	require.Equal(t, game.StatusWin, result.Status)
	assert.True(t, m.Over())
	assert.Same(t, m.Players()[0], m.Winner())

	_, err = m.Throw(darts.NewThrow(darts.Single, 1))
	assert.ErrorIs(t, err, ErrGameOver)
	_, err = m.NextTurn()
	assert.ErrorIs(t, err, ErrGameOver)

	leg := m.Leg()
	require.NotNil(t, leg)
	assert.Equal(t, "Alice", leg.Winner)
	require.Len(t, leg.Turns, 1)
	assert.Equal(t, []string{"T20", "1", "D20"}, leg.Turns[0].Throws)
	assert.Equal(t, []int{0, 101}, leg.FinalScores)

	_, err = m.Undo()
	require.NoError(t, err)
	assert.False(t, m.Over())
	assert.Nil(t, m.Winner())
	assert.Empty(t, leg.Winner)
	assert.Empty(t, leg.Turns)
	assert.Equal(t, 40, m.Current().Score)
}

func TestHistoryRecordsEveryTurn(t *testing.T) {
	t.Parallel()
	m, err := New(game.NewOptions(game.Cricket), []string{"A", "B"}, WithHistory(quartz.NewMock(t)))
	require.NoError(t, err)

	mustThrow(t, m, "T20")
	_, err = m.NextTurn()
	require.NoError(t, err)
	mustThrow(t, m, "M")
	_, err = m.NextTurn()
	require.NoError(t, err)

	leg := m.Leg()
	require.Len(t, leg.Turns, 2)
	assert.Equal(t, "A", leg.Turns[0].Player)
	assert.Equal(t, "ok", leg.Turns[0].Result)
	assert.Equal(t, []string{"M"}, leg.Turns[1].Throws)
	assert.Equal(t, "Cricket", leg.Variant)
}

func TestNoHistoryByDefault(t *testing.T) {
	t.Parallel()
	m, err := New(game.NewOptions(game.Cricket), []string{"A"})
	require.NoError(t, err)
	assert.Nil(t, m.Leg())
}

func TestKillerSkipsEliminatedPlayers(t *testing.T) {
	t.Parallel()
	m, err := New(game.NewOptions(game.Killer, game.WithLives(1)), []string{"A", "B", "C"})
	require.NoError(t, err)

	// A, B and C pick segments
	for _, label := range []string{"7", "5", "9"} {
		result := mustThrow(t, m, label)
		require.Equal(t, game.StatusInfo, result.Status)
		assert.True(t, m.Current().TurnOver)
		_, err = m.NextTurn()
		require.NoError(t, err)
	}

	// A qualifies and removes B
	mustThrow(t, m, "D7")
	result := mustThrow(t, m, "D5")
	require.Equal(t, game.StatusInfo, result.Status)
	assert.Equal(t, 0, m.Players()[1].Score)

	_, err = m.NextTurn()
	require.NoError(t, err)
	assert.Equal(t, "C", m.Current().Name, "B has no lives left")
}

func TestRoundLimitEndsGame(t *testing.T) {
	t.Parallel()
	m, err := New(game.NewOptions(game.Shanghai, game.WithRounds(1)), []string{"A", "B"})
	require.NoError(t, err)

	mustThrow(t, m, "1")
	_, err = m.NextTurn()
	require.NoError(t, err)
	mustThrow(t, m, "T1")

	result, err := m.NextTurn()
	require.NoError(t, err)
	assert.Equal(t, game.StatusWin, result.Status)
	assert.True(t, m.Over())
	assert.Equal(t, "B", m.Winner().Name)
}

func TestSplitScoreTurnEnd(t *testing.T) {
	t.Parallel()
	m, err := New(game.NewOptions(game.SplitScore), []string{"A"})
	require.NoError(t, err)

	title, body, ok := m.TurnStartMessage()
	require.True(t, ok)
	assert.Equal(t, "Round 1", title)
	assert.Contains(t, body, "15")

	mustThrow(t, m, "20")
	result, err := m.NextTurn()
	require.NoError(t, err)
	assert.Equal(t, game.StatusInfo, result.Status)
	assert.Equal(t, 30, m.Current().Score)
	assert.Equal(t, 2, m.Round())
}

func TestInvalidThrowRejected(t *testing.T) {
	t.Parallel()
	m, err := New(game.NewOptions(game.X01), []string{"A"})
	require.NoError(t, err)
	_, err = m.Throw(darts.Throw{Ring: darts.Double, Segment: 25})
	assert.Error(t, err)
	assert.Empty(t, m.Current().Throws)
}

func TestSettings(t *testing.T) {
	t.Parallel()
	s := Settings(game.NewOptions(game.X01, game.WithCountTo(301)))
	assert.Equal(t, map[string]string{"count_to": "301", "opt_in": "Single", "opt_out": "Double"}, s)
	assert.Equal(t, "3", Settings(game.NewOptions(game.Killer))["lives"])
}
