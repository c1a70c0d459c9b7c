package game

import (
	"fmt"
	"strconv"

	"github.com/lox/dartscore/darts"
)

// killer keeps each player's lives in Score
type killer struct {
	base
}

func newKiller(opts Options) Engine {
	return &killer{base: base{opts: opts}}
}

func (e *killer) InitializePlayer(p *Player) {
	p.Score = e.opts.Lives
	p.Marks = make(map[string]int)
	p.State = &KillerState{}
}

// Skip reports whether p has no lives left
func (e *killer) Skip(p *Player) bool {
	return p.Score <= 0
}

// lifeSegment returns the segment a throw claims in the first phase
func lifeSegment(t darts.Throw) (string, bool) {
	switch t.Ring {
	case darts.Bull, darts.Bullseye:
		return BullTarget, true
	case darts.Single, darts.Double, darts.Triple:
		return strconv.Itoa(t.Segment), true
	default:
		return "", false
	}
}

// hitsLifeSegment reports whether t is a killing hit on segment: the double
// of a number or the bullseye for Bull.
func hitsLifeSegment(t darts.Throw, segment string) bool {
	if segment == BullTarget {
		return t.Ring == darts.Bullseye
	}
	return t.Ring == darts.Double && strconv.Itoa(t.Segment) == segment
}

func (e *killer) HandleThrow(p *Player, t darts.Throw, players []*Player) ThrowResult {
	s := killerState(p)
	dart := dartIndex(p)

	switch s.Phase() {
	case ChoosingLifeSegment:
		segment, claimable := lifeSegment(t)
		if !claimable {
			return warning(fmt.Sprintf("%s must hit a number or the bull to pick a life segment", p.Name))
		}
		for _, o := range players {
			if o != p && o.Score > 0 && killerState(o).LifeSegment == segment {
				return warning(fmt.Sprintf("segment %s already belongs to %s", segment, o.Name))
			}
		}
		s.LifeSegment = segment
		p.Log.Push(Action{Kind: ActionSetLifeSegment, Dart: dart, ActorID: p.ID, TargetID: p.ID, Segment: segment})
		p.TurnOver = true
		r := info(fmt.Sprintf("%s takes segment %s", p.Name, segment))
		r.EndTurn = true
		return r

	case QualifyingAsKiller:
		if !hitsLifeSegment(t, s.LifeSegment) {
			return missed(fmt.Sprintf("%s needs %s to become a killer", p.Name, killingHit(s.LifeSegment)))
		}
		s.CanKill = true
		p.Log.Push(Action{Kind: ActionBecomeKiller, Dart: dart, ActorID: p.ID, TargetID: p.ID, Segment: s.LifeSegment})
		return info(fmt.Sprintf("%s is now a killer", p.Name))
	}

	var victim *Player
	for _, o := range players {
		if o.Score > 0 && killerState(o).LifeSegment != "" && hitsLifeSegment(t, killerState(o).LifeSegment) {
			victim = o
			break
		}
	}
	if victim == nil {
		return missed(fmt.Sprintf("%s hit nobody", p.Name))
	}

	p.Log.Push(Action{Kind: ActionTakeLife, Dart: dart, ActorID: p.ID, TargetID: victim.ID, PrevScore: victim.Score})
	victim.Score--
	if victim.Score > 0 {
		return info(fmt.Sprintf("%s takes a life from %s, %d left", p.Name, victim.Name, victim.Score))
	}

	p.Log.Push(Action{Kind: ActionEliminate, Dart: dart, ActorID: p.ID, TargetID: victim.ID})
	var alive []*Player
	for _, o := range players {
		if o.Score > 0 {
			alive = append(alive, o)
		}
	}
	switch len(alive) {
	case 0:
		return ThrowResult{Status: StatusWin, Message: "nobody is left standing", Sound: SoundWin}
	case 1:
		return win(alive[0], fmt.Sprintf("%s eliminates %s, %s wins", p.Name, victim.Name, alive[0].Name))
	}
	return info(fmt.Sprintf("%s eliminates %s", p.Name, victim.Name))
}

func (e *killer) HandleThrowUndo(p *Player, _ darts.Throw, players []*Player) {
	s := killerState(p)
	for _, a := range p.Log.PopDart(undoneDartIndex(p)) {
		switch a.Kind {
		case ActionSetLifeSegment:
			s.LifeSegment = ""
			p.TurnOver = false
		case ActionBecomeKiller:
			s.CanKill = false
		case ActionTakeLife:
			if victim := findPlayer(players, a.TargetID); victim != nil {
				victim.Score = a.PrevScore
			}
		case ActionEliminate:
			// lives come back with the take_life entry
		}
	}
}

func (e *killer) TurnStartMessage(p *Player) (string, string, bool) {
	s := killerState(p)
	switch s.Phase() {
	case ChoosingLifeSegment:
		return fmt.Sprintf("%s picks a segment", p.Name), "Hit any number or the bull", true
	case QualifyingAsKiller:
		return fmt.Sprintf("%s qualifies", p.Name), "Hit " + killingHit(s.LifeSegment), true
	default:
		return fmt.Sprintf("%s is a killer", p.Name), fmt.Sprintf("%d lives left", p.Score), true
	}
}

func killingHit(segment string) string {
	if segment == BullTarget {
		return "the bullseye"
	}
	return "double " + segment
}
