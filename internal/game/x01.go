package game

import (
	"fmt"

	"github.com/lox/dartscore/darts"
)

type x01 struct {
	base
}

func newX01(opts Options) Engine {
	return &x01{base: base{opts: opts}}
}

func (e *x01) InitializePlayer(p *Player) {
	p.Score = e.opts.CountTo
	p.Marks = make(map[string]int)
	p.State = &X01State{Opened: e.opts.OptIn == darts.OutSingle}
}

// X01PhaseOf returns the player's progress through the leg
func X01PhaseOf(p *Player) X01Phase {
	switch {
	case p.Score == 0:
		return Finished
	case x01State(p).Opened:
		return Opened
	default:
		return NotOpened
	}
}

func (e *x01) StartTurn(p *Player, _ int) {
	s := x01State(p)
	s.Busted = false
	s.OpenedOnDart = 0
}

func (e *x01) HandleThrow(p *Player, t darts.Throw, _ []*Player) ThrowResult {
	s := x01State(p)
	if !s.Opened {
		if !e.opts.OptIn.Allows(t.Ring) {
			return ThrowResult{
				Status:  StatusInvalidOpen,
				Message: fmt.Sprintf("%s needs a %s to open", p.Name, ruleHint(e.opts.OptIn)),
				Sound:   SoundMiss,
			}
		}
		s.Opened = true
		s.OpenedOnDart = dartIndex(p)
	}

	points := t.Points()
	newScore := p.Score - points
	if newScore == 0 && points > 0 {
		p.Stats.CheckoutOpportunities++
	}

	if e.busts(newScore, t.Ring) {
		s.Busted = true
		p.TurnOver = true
		return bust(fmt.Sprintf("%s busts, score stays %d", p.Name, p.Score))
	}

	if t.Ring != darts.Miss {
		p.Stats.TotalDartsThrown++
		p.Stats.TotalScoreThrown += points
	}
	p.Score = newScore

	if newScore == 0 {
		s.PrevHighestFinish = p.Stats.HighestFinish
		if points > p.Stats.HighestFinish {
			p.Stats.HighestFinish = points
		}
		p.Stats.CheckoutsSuccessful++
		return win(p, fmt.Sprintf("%s checks out with %s", p.Name, t.Label()))
	}

	msg := fmt.Sprintf("%d left", p.Score)
	if left := MaxDarts - len(p.Throws); left > 0 {
		if path := darts.Checkout(p.Score, e.opts.OptOut, left, 0); path != darts.NoCheckout {
			msg = fmt.Sprintf("%d left, checkout %s", p.Score, path)
		}
	}
	if t.Ring == darts.Miss {
		return missed(msg)
	}
	return ok(msg)
}

func (e *x01) busts(newScore int, ring darts.Ring) bool {
	switch {
	case newScore < 0:
		return true
	case newScore == 1 && e.opts.OptOut != darts.OutSingle:
		return true
	case newScore == 0 && !e.opts.OptOut.Allows(ring):
		return true
	}
	return false
}

func (e *x01) HandleThrowUndo(p *Player, t darts.Throw, _ []*Player) {
	s := x01State(p)
	if !s.Opened {
		// rejected opening dart
		return
	}
	points := t.Points()
	opening := s.OpenedOnDart != 0 && s.OpenedOnDart == undoneDartIndex(p)

	switch {
	case s.Busted:
		s.Busted = false
		p.TurnOver = false
		if points > 0 && p.Score == points {
			p.Stats.CheckoutOpportunities--
		}
	default:
		if p.Score == 0 {
			p.Stats.CheckoutsSuccessful--
			p.Stats.HighestFinish = s.PrevHighestFinish
			s.PrevHighestFinish = 0
		}
		p.Score += points
		if points > 0 && p.Score == points {
			p.Stats.CheckoutOpportunities--
		}
		if t.Ring != darts.Miss {
			p.Stats.TotalDartsThrown--
			p.Stats.TotalScoreThrown -= points
		}
	}

	if opening {
		s.Opened = false
		s.OpenedOnDart = 0
	}
}

func (e *x01) TurnStartMessage(p *Player) (string, string, bool) {
	if X01PhaseOf(p) != Opened {
		return "", "", false
	}
	path := darts.Checkout(p.Score, e.opts.OptOut, MaxDarts, 0)
	if path == darts.NoCheckout {
		return "", "", false
	}
	return fmt.Sprintf("%s can check out %d", p.Name, p.Score), path, true
}

func ruleHint(rule darts.OutRule) string {
	switch rule {
	case darts.OutDouble:
		return "double or bullseye"
	case darts.OutMasters:
		return "double, treble or bullseye"
	default:
		return "scoring dart"
	}
}
