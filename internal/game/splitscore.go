package game

import (
	"fmt"

	"github.com/lox/dartscore/darts"
)

// splitTargets are the round targets of Split Score, in order
var splitTargets = []darts.Throw{
	darts.NewThrow(darts.Single, 15),
	darts.NewThrow(darts.Single, 16),
	darts.NewThrow(darts.Double, 17),
	darts.NewThrow(darts.Double, 18),
	darts.NewThrow(darts.Triple, 19),
	darts.NewThrow(darts.Triple, 20),
	darts.NewThrow(darts.Bullseye, 50),
}

// splitScore is a training game: every round has a fixed target and a
// round without a hit halves the score.
type splitScore struct {
	base
	round int
}

func newSplitScore(opts Options) Engine {
	e := &splitScore{base: base{opts: opts}}
	for _, t := range splitTargets {
		e.targets = append(e.targets, t.Label())
	}
	return e
}

func (e *splitScore) InitializePlayer(p *Player) {
	p.Score = e.opts.SplitScoreStart
	p.Marks = make(map[string]int)
	p.State = nil
}

func (e *splitScore) StartTurn(_ *Player, round int) {
	e.round = round
}

func splitTarget(round int) (darts.Throw, bool) {
	if round < 1 || round > len(splitTargets) {
		return darts.Throw{}, false
	}
	return splitTargets[round-1], true
}

// HandleThrow accepts every dart; the round is scored in EndTurn
func (e *splitScore) HandleThrow(p *Player, t darts.Throw, _ []*Player) ThrowResult {
	target, found := splitTarget(e.round)
	if found && t.Ring == target.Ring && t.Segment == target.Segment {
		return ThrowResult{Status: StatusOK, Message: fmt.Sprintf("%s hits %s", p.Name, target.Label()), Sound: SoundHit}
	}
	return missed("")
}

func (e *splitScore) HandleThrowUndo(*Player, darts.Throw, []*Player) {}

func (e *splitScore) EndTurn(p *Player, round int) ThrowResult {
	target, found := splitTarget(round)
	if !found {
		return ThrowResult{Status: StatusOK}
	}
	for _, t := range p.Throws {
		if t.Ring == target.Ring && t.Segment == target.Segment {
			return ThrowResult{Status: StatusOK, Message: fmt.Sprintf("%s keeps %d", p.Name, p.Score)}
		}
	}
	p.Score = (p.Score + 1) / 2
	return ThrowResult{
		Status:  StatusInfo,
		Message: fmt.Sprintf("%s missed %s, score halved to %d", p.Name, target.Label(), p.Score),
		Sound:   SoundBust,
	}
}

func (e *splitScore) RoundLimitReached(round int, players []*Player) (ThrowResult, bool) {
	if round <= len(splitTargets) {
		return ThrowResult{}, false
	}
	best := highestScore(players)
	if best == nil {
		return ThrowResult{}, true
	}
	return win(best, fmt.Sprintf("%s wins Split Score with %d", best.Name, best.Score)), true
}

func (e *splitScore) TurnStartMessage(p *Player) (string, string, bool) {
	target, found := splitTarget(e.round)
	if !found {
		return "", "", false
	}
	return fmt.Sprintf("Round %d", e.round), fmt.Sprintf("%s aims for %s", p.Name, target.Label()), true
}
