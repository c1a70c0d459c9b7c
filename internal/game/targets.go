package game

import (
	"fmt"
	"strconv"

	"github.com/lox/dartscore/darts"
)

// shanghai plays one number per round. Single, double and treble of the
// round's number in one turn wins outright.
type shanghai struct {
	base
}

func newShanghai(opts Options) Engine {
	e := &shanghai{base: base{opts: opts}}
	for n := 1; n <= opts.Rounds; n++ {
		e.targets = append(e.targets, strconv.Itoa(n))
	}
	return e
}

func (e *shanghai) InitializePlayer(p *Player) {
	p.Score = 0
	p.Marks = make(map[string]int, len(e.targets))
	for _, target := range e.targets {
		p.Marks[target] = 0
	}
	p.State = &TargetState{NextTarget: e.targets[0]}
}

func (e *shanghai) StartTurn(p *Player, round int) {
	s := targetState(p)
	s.NextTarget = ""
	if round >= 1 && round <= len(e.targets) {
		s.NextTarget = e.targets[round-1]
	}
}

func (e *shanghai) hits(t darts.Throw, target string) bool {
	switch t.Ring {
	case darts.Single, darts.Double, darts.Triple:
		return target != "" && strconv.Itoa(t.Segment) == target
	}
	return false
}

func (e *shanghai) HandleThrow(p *Player, t darts.Throw, _ []*Player) ThrowResult {
	target := targetState(p).NextTarget
	if !e.hits(t, target) {
		return ThrowResult{
			Status:  StatusInvalidTarget,
			Message: fmt.Sprintf("%s must hit %s", p.Name, target),
			Sound:   SoundMiss,
		}
	}

	p.Marks[target]++
	p.Score += t.Points()
	p.Stats.TotalMarksScored++

	if isShanghai(p.Throws, target) {
		return win(p, fmt.Sprintf("Shanghai! %s wins on %s", p.Name, target))
	}
	return ok(fmt.Sprintf("%s scores %d", p.Name, t.Points()))
}

// isShanghai reports whether throws hold a single, double and treble of target
func isShanghai(throws []darts.Throw, target string) bool {
	var seen [4]bool
	for _, t := range throws {
		if t.Ring >= darts.Single && t.Ring <= darts.Triple && strconv.Itoa(t.Segment) == target {
			seen[t.Ring] = true
		}
	}
	return seen[darts.Single] && seen[darts.Double] && seen[darts.Triple]
}

func (e *shanghai) HandleThrowUndo(p *Player, t darts.Throw, _ []*Player) {
	target := targetState(p).NextTarget
	if !e.hits(t, target) {
		return
	}
	p.Marks[target]--
	p.Score -= t.Points()
	p.Stats.TotalMarksScored--
}

func (e *shanghai) RoundLimitReached(round int, players []*Player) (ThrowResult, bool) {
	if round <= e.opts.Rounds {
		return ThrowResult{}, false
	}
	best := highestScore(players)
	if best == nil {
		return ThrowResult{}, true
	}
	return win(best, fmt.Sprintf("%s wins with %d after %d rounds", best.Name, best.Score, e.opts.Rounds)), true
}

func (e *shanghai) TurnStartMessage(p *Player) (string, string, bool) {
	target := targetState(p).NextTarget
	if target == "" {
		return "", "", false
	}
	return fmt.Sprintf("Round %s", target), fmt.Sprintf("%s aims for %s", p.Name, target), true
}

// sequence is shared by Micky Mouse and Around the Clock: targets are
// played in order and each needs a number of marks before the next opens.
type sequence struct {
	base
	required int
	counts   func(t darts.Throw, target string) int
}

func (e *sequence) InitializePlayer(p *Player) {
	p.Score = 0
	p.Marks = make(map[string]int, len(e.targets))
	for _, target := range e.targets {
		p.Marks[target] = 0
	}
	p.State = &TargetState{NextTarget: e.targets[0]}
}

func (e *sequence) nextOpen(p *Player) string {
	for _, target := range e.targets {
		if p.Marks[target] < e.required {
			return target
		}
	}
	return ""
}

func (e *sequence) HandleThrow(p *Player, t darts.Throw, _ []*Player) ThrowResult {
	s := targetState(p)
	target := s.NextTarget
	marks := 0
	if target != "" {
		marks = e.counts(t, target)
	}
	if marks == 0 {
		return ThrowResult{
			Status:  StatusInvalidTarget,
			Message: fmt.Sprintf("%s must hit %s %d more times", p.Name, target, e.required-p.Marks[target]),
			Sound:   SoundMiss,
		}
	}

	p.Marks[target] += marks
	p.Stats.TotalMarksScored += marks
	p.Log.Push(Action{Kind: ActionAddMarks, Dart: dartIndex(p), ActorID: p.ID, TargetID: p.ID, Segment: target, Count: marks})
	s.NextTarget = e.nextOpen(p)

	if s.NextTarget == "" {
		return win(p, fmt.Sprintf("%s has hit every target", p.Name))
	}
	return ok(fmt.Sprintf("%s: next target %s", p.Name, s.NextTarget))
}

func (e *sequence) HandleThrowUndo(p *Player, _ darts.Throw, _ []*Player) {
	s := targetState(p)
	for _, a := range p.Log.PopDart(undoneDartIndex(p)) {
		if a.Kind != ActionAddMarks {
			continue
		}
		p.Marks[a.Segment] -= a.Count
		p.Stats.TotalMarksScored -= a.Count
		s.NextTarget = a.Segment
	}
}

func (e *sequence) TurnStartMessage(p *Player) (string, string, bool) {
	target := targetState(p).NextTarget
	if target == "" {
		return "", "", false
	}
	return fmt.Sprintf("%s to play", p.Name), "Next target: " + target, true
}

type micky struct {
	sequence
}

func newMicky(opts Options) Engine {
	e := &micky{sequence: sequence{base: base{opts: opts}, required: closedMarks}}
	for seg := 20; seg >= 12; seg-- {
		e.targets = append(e.targets, strconv.Itoa(seg))
	}
	e.targets = append(e.targets, BullTarget)
	e.counts = func(t darts.Throw, target string) int {
		hit, marks := markTarget(t, func(name string) bool { return name == target })
		if hit == "" {
			return 0
		}
		return marks
	}
	return e
}

type aroundTheClock struct {
	sequence
}

func newAroundTheClock(opts Options) Engine {
	e := &aroundTheClock{sequence: sequence{base: base{opts: opts}, required: 1}}
	for n := 1; n <= 20; n++ {
		e.targets = append(e.targets, strconv.Itoa(n))
	}
	e.targets = append(e.targets, BullTarget)
	e.counts = func(t darts.Throw, target string) int {
		if target == BullTarget {
			if t.Ring == darts.Bullseye || (t.Ring == darts.Bull && opts.OptAtC == darts.Single) {
				return 1
			}
			return 0
		}
		if t.Ring == opts.OptAtC && strconv.Itoa(t.Segment) == target {
			return 1
		}
		return 0
	}
	return e
}
