package game

import (
	"fmt"
	"strconv"

	"github.com/lox/dartscore/darts"
)

// BullTarget is the target name shared by the outer bull and bullseye
const BullTarget = "Bull"

const closedMarks = 3

// cricket implements Cricket, Cut Throat and Tactics. They differ only in
// the target list and in who is credited for points.
type cricket struct {
	base
	values map[string]int
}

func newCricket(opts Options) Engine {
	low := 15
	if opts.Variant == Tactics {
		low = 10
	}
	e := &cricket{base: base{opts: opts}, values: make(map[string]int)}
	for seg := 20; seg >= low; seg-- {
		name := strconv.Itoa(seg)
		e.targets = append(e.targets, name)
		e.values[name] = seg
	}
	e.targets = append(e.targets, BullTarget)
	e.values[BullTarget] = 25
	return e
}

func (e *cricket) InitializePlayer(p *Player) {
	p.Score = 0
	p.Marks = make(map[string]int, len(e.targets))
	for _, target := range e.targets {
		p.Marks[target] = 0
	}
	p.State = &CricketState{}
}

// markTarget maps a throw to the target it marks and how many marks it adds
func markTarget(t darts.Throw, valid func(string) bool) (string, int) {
	var target string
	marks := 0
	switch t.Ring {
	case darts.Bull:
		target, marks = BullTarget, 1
	case darts.Bullseye:
		target, marks = BullTarget, 2
	case darts.Single, darts.Double, darts.Triple:
		target, marks = strconv.Itoa(t.Segment), t.Ring.Multiplier()
	default:
		return "", 0
	}
	if !valid(target) {
		return "", 0
	}
	return target, marks
}

func (e *cricket) isTarget(name string) bool {
	_, ok := e.values[name]
	return ok
}

func (e *cricket) HandleThrow(p *Player, t darts.Throw, players []*Player) ThrowResult {
	target, marks := markTarget(t, e.isTarget)
	if marks == 0 {
		return missed(fmt.Sprintf("%s hit no %s target", p.Name, e.opts.Variant))
	}

	before := p.Marks[target]
	p.Marks[target] = before + marks
	p.Stats.TotalMarksScored += marks
	e.applyPoints(p, target, before, before+marks, players, 1)

	if e.hasWon(p, players) {
		return win(p, fmt.Sprintf("%s closes everything and wins", p.Name))
	}
	return ok(fmt.Sprintf("%s: %d marks on %s", p.Name, min(p.Marks[target], closedMarks), target))
}

func (e *cricket) HandleThrowUndo(p *Player, t darts.Throw, players []*Player) {
	target, marks := markTarget(t, e.isTarget)
	if marks == 0 {
		return
	}
	after := p.Marks[target]
	before := max(0, after-marks)
	// Opponents' marks are untouched by the throw, so the same gate applies.
	e.applyPoints(p, target, before, after, players, -1)
	p.Marks[target] = before
	p.Stats.TotalMarksScored -= marks
}

// applyPoints credits the points for marks beyond closing. sign is -1 on undo.
func (e *cricket) applyPoints(p *Player, target string, before, after int, players []*Player, sign int) {
	scoring := max(0, after-closedMarks) - max(0, before-closedMarks)
	if scoring <= 0 {
		return
	}
	open := openOpponents(p, target, players)
	if len(open) == 0 {
		return
	}
	points := e.values[target] * scoring * sign
	if e.opts.Variant == CutThroat {
		for _, o := range open {
			o.Score += points
		}
		return
	}
	p.Score += points
}

func openOpponents(p *Player, target string, players []*Player) []*Player {
	var open []*Player
	for _, o := range players {
		if o != p && o.Marks[target] < closedMarks {
			open = append(open, o)
		}
	}
	return open
}

func (e *cricket) hasWon(p *Player, players []*Player) bool {
	for _, target := range e.targets {
		if p.Marks[target] < closedMarks {
			return false
		}
	}
	for _, o := range players {
		if o == p {
			continue
		}
		if e.opts.Variant == CutThroat && o.Score < p.Score {
			return false
		}
		if e.opts.Variant != CutThroat && o.Score > p.Score {
			return false
		}
	}
	return true
}

func (e *cricket) TurnStartMessage(p *Player) (string, string, bool) {
	var open []string
	for _, target := range e.targets {
		if p.Marks[target] < closedMarks {
			open = append(open, target)
		}
	}
	if len(open) == 0 {
		return "", "", false
	}
	return fmt.Sprintf("%s to play", p.Name), fmt.Sprintf("Open: %v", open), true
}
