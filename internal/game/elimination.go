package game

import (
	"fmt"

	"github.com/lox/dartscore/darts"
)

// elimination races up from zero to CountTo. Landing on an opponent's
// score sends them back to zero.
type elimination struct {
	base
}

func newElimination(opts Options) Engine {
	return &elimination{base: base{opts: opts}}
}

func (e *elimination) InitializePlayer(p *Player) {
	p.Score = 0
	p.Marks = make(map[string]int)
	p.State = &EliminationState{}
}

func (e *elimination) StartTurn(p *Player, _ int) {
	eliminationState(p).Busted = false
}

func (e *elimination) busts(newScore int, ring darts.Ring) bool {
	if newScore > e.opts.CountTo {
		return true
	}
	return newScore == e.opts.CountTo && e.opts.OptOut != darts.OutSingle && !e.opts.OptOut.Allows(ring)
}

func (e *elimination) HandleThrow(p *Player, t darts.Throw, players []*Player) ThrowResult {
	if t.Ring == darts.Miss {
		return missed(fmt.Sprintf("%s misses", p.Name))
	}

	s := eliminationState(p)
	points := t.Points()
	newScore := p.Score + points
	if e.busts(newScore, t.Ring) {
		s.Busted = true
		p.TurnOver = true
		return bust(fmt.Sprintf("%s busts, score stays %d", p.Name, p.Score))
	}

	p.Score = newScore
	p.Stats.TotalDartsThrown++
	p.Stats.TotalScoreThrown += points

	var victim *Player
	for _, o := range players {
		if o != p && o.Score != 0 && o.Score == p.Score {
			victim = o
			break
		}
	}
	if victim != nil {
		p.Log.Push(Action{
			Kind:      ActionEliminate,
			Dart:      dartIndex(p),
			ActorID:   p.ID,
			TargetID:  victim.ID,
			PrevScore: victim.Score,
		})
		victim.Score = 0
	}

	if p.Score == e.opts.CountTo {
		return win(p, fmt.Sprintf("%s reaches %d", p.Name, e.opts.CountTo))
	}
	if victim != nil {
		return info(fmt.Sprintf("%s sends %s back to zero", p.Name, victim.Name))
	}
	return ok(fmt.Sprintf("%s needs %d", p.Name, e.opts.CountTo-p.Score))
}

func (e *elimination) HandleThrowUndo(p *Player, t darts.Throw, players []*Player) {
	if t.Ring == darts.Miss {
		return
	}
	s := eliminationState(p)
	if s.Busted {
		s.Busted = false
		p.TurnOver = false
		return
	}

	if a, ok := p.Log.Last(); ok && a.Kind == ActionEliminate && a.ActorID == p.ID &&
		a.Dart == undoneDartIndex(p) && a.PrevScore == p.Score {
		if victim := findPlayer(players, a.TargetID); victim != nil && victim.Score == 0 {
			victim.Score = a.PrevScore
		}
		p.Log.Pop()
	}

	points := t.Points()
	p.Score -= points
	p.Stats.TotalDartsThrown--
	p.Stats.TotalScoreThrown -= points
}
