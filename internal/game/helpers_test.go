package game

import (
	"testing"

	"github.com/lox/dartscore/darts"
	"github.com/stretchr/testify/require"
)

// newGame creates an engine and initialised players with ids 1..n
func newGame(t *testing.T, opts Options, names ...string) (Engine, []*Player) {
	t.Helper()
	e, err := NewEngine(opts)
	require.NoError(t, err)

	players := make([]*Player, len(names))
	for i, name := range names {
		players[i] = NewPlayer(i+1, name)
		e.InitializePlayer(players[i])
	}
	return e, players
}

// throwAt records a throw on p the way the turn controller does
func throwAt(e Engine, p *Player, players []*Player, ring darts.Ring, segment int) ThrowResult {
	t := darts.NewThrow(ring, segment)
	p.Throws = append(p.Throws, t)
	return e.HandleThrow(p, t, players)
}

// undoLast removes the most recent throw of p and reverses it
func undoLast(e Engine, p *Player, players []*Player) {
	t := p.Throws[len(p.Throws)-1]
	p.Throws = p.Throws[:len(p.Throws)-1]
	e.HandleThrowUndo(p, t, players)
}

func beginTurn(e Engine, p *Player, round int) {
	p.ResetTurn()
	if s, ok := e.(TurnStarter); ok {
		s.StartTurn(p, round)
	}
}

func snapshotAll(players []*Player) []PlayerSnapshot {
	snaps := make([]PlayerSnapshot, len(players))
	for i, p := range players {
		snaps[i] = Snapshot(p)
	}
	return snaps
}

// everyThrow lists every distinct spot on the board plus a miss
func everyThrow() []darts.Throw {
	throws := []darts.Throw{
		darts.NewThrow(darts.Miss, 0),
		darts.NewThrow(darts.Bull, 25),
		darts.NewThrow(darts.Bullseye, 50),
	}
	for seg := 1; seg <= 20; seg++ {
		for _, ring := range []darts.Ring{darts.Single, darts.Double, darts.Triple} {
			throws = append(throws, darts.NewThrow(ring, seg))
		}
	}
	return throws
}
