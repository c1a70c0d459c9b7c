package game

import (
	"testing"

	"github.com/lox/dartscore/darts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCricketTargets(t *testing.T) {
	t.Parallel()
	e, _ := newGame(t, NewOptions(Cricket), "A")
	assert.Equal(t, []string{"20", "19", "18", "17", "16", "15", "Bull"}, e.Targets())

	e, _ = newGame(t, NewOptions(Tactics), "A")
	targets := e.Targets()
	assert.Len(t, targets, 12)
	assert.Equal(t, "10", targets[10])
}

func TestCricketScoresOnClosedTarget(t *testing.T) {
	t.Parallel()
	e, players := newGame(t, NewOptions(Cricket), "A", "B")
	a := players[0]
	a.Marks["20"] = 3

	result := throwAt(e, a, players, darts.Single, 20)
	require.Equal(t, StatusOK, result.Status)
	assert.Equal(t, 20, a.Score)
	assert.Equal(t, 4, a.Marks["20"])

	undoLast(e, a, players)
	assert.Equal(t, 0, a.Score)
	assert.Equal(t, 3, a.Marks["20"])
}

func TestCricketClosingThrowScoresOverflow(t *testing.T) {
	t.Parallel()
	e, players := newGame(t, NewOptions(Cricket), "A", "B")
	a := players[0]
	a.Marks["19"] = 1

	throwAt(e, a, players, darts.Triple, 19)
	assert.Equal(t, 4, a.Marks["19"])
	assert.Equal(t, 19, a.Score, "only the mark beyond closing scores")
	assert.Equal(t, 3, a.Stats.TotalMarksScored)
}

// Points are only scored while some opponent still has the target open.
func TestCricketScoringGate(t *testing.T) {
	t.Parallel()
	for _, v := range []Variant{Cricket, CutThroat, Tactics} {
		t.Run(v.String(), func(t *testing.T) {
			e, players := newGame(t, NewOptions(v), "A", "B", "C")
			for _, p := range players {
				p.Marks["20"] = 3
			}
			throwAt(e, players[0], players, darts.Triple, 20)
			for _, p := range players {
				assert.Zero(t, p.Score, p.Name)
			}
			assert.Equal(t, 6, players[0].Marks["20"])
		})
	}
}

func TestCutThroatCreditsOpenOpponents(t *testing.T) {
	t.Parallel()
	e, players := newGame(t, NewOptions(CutThroat), "A", "B", "C")
	a, b, c := players[0], players[1], players[2]
	a.Marks["18"] = 3
	c.Marks["18"] = 3

	throwAt(e, a, players, darts.Double, 18)
	assert.Equal(t, 0, a.Score)
	assert.Equal(t, 36, b.Score)
	assert.Equal(t, 0, c.Score, "closed opponents are not charged")

	undoLast(e, a, players)
	assert.Equal(t, 0, b.Score)
}

func TestCricketBullseyeCountsTwoMarks(t *testing.T) {
	t.Parallel()
	e, players := newGame(t, NewOptions(Cricket), "A", "B")
	throwAt(e, players[0], players, darts.Bullseye, 50)
	assert.Equal(t, 2, players[0].Marks[BullTarget])
	throwAt(e, players[0], players, darts.Bullseye, 50)
	assert.Equal(t, 4, players[0].Marks[BullTarget])
	assert.Equal(t, 25, players[0].Score)
}

func TestCricketOffTargetThrows(t *testing.T) {
	t.Parallel()
	e, players := newGame(t, NewOptions(Cricket), "A", "B")
	for _, th := range []darts.Throw{darts.NewThrow(darts.Miss, 0), darts.NewThrow(darts.Triple, 14)} {
		players[0].Throws = append(players[0].Throws, th)
		result := e.HandleThrow(players[0], th, players)
		assert.Equal(t, StatusOK, result.Status)
		assert.NotEmpty(t, result.Message)
	}
	assert.Zero(t, players[0].Stats.TotalMarksScored)
	assert.Zero(t, players[0].Score)

	e, players = newGame(t, NewOptions(Tactics), "A", "B")
	throwAt(e, players[0], players, darts.Triple, 14)
	assert.Equal(t, 3, players[0].Marks["14"])
}

func TestCricketWin(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		variant  Variant
		ownScore int
		oppScore int
		wantWin  bool
	}{
		{"cricket level", Cricket, 0, 0, true},
		{"cricket behind", Cricket, 10, 40, false},
		{"cricket ahead", Cricket, 60, 40, true},
		{"cut throat lowest", CutThroat, 0, 40, true},
		{"cut throat higher", CutThroat, 50, 40, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, players := newGame(t, NewOptions(tt.variant), "A", "B")
			a := players[0]
			for _, target := range e.Targets() {
				a.Marks[target] = 3
			}
			a.Marks["15"] = 2
			a.Score = tt.ownScore
			players[1].Score = tt.oppScore

			result := throwAt(e, a, players, darts.Single, 15)
			if tt.wantWin {
				require.Equal(t, StatusWin, result.Status)
				assert.Same(t, a, result.Winner)
			} else {
				assert.Equal(t, StatusOK, result.Status)
			}
		})
	}
}
