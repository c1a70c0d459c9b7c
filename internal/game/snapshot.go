package game

import (
	"github.com/lox/dartscore/darts"
)

// PlayerSnapshot is the persisted form of a player
type PlayerSnapshot struct {
	ID           int            `json:"id"`
	Name         string         `json:"name"`
	Score        int            `json:"score"`
	Throws       []darts.Throw  `json:"throws"`
	Marks        map[string]int `json:"marks"`
	VariantState map[string]any `json:"variant_state"`
	Stats        map[string]int `json:"stats"`
}

const (
	statDarts         = "total_darts_thrown"
	statScore         = "total_score_thrown"
	statOpportunities = "checkout_opportunities"
	statCheckouts     = "checkouts_successful"
	statHighestFinish = "highest_finish"
	statMarks         = "total_marks_scored"
)

// Snapshot copies the player's persistent state
func Snapshot(p *Player) PlayerSnapshot {
	snap := PlayerSnapshot{
		ID:           p.ID,
		Name:         p.Name,
		Score:        p.Score,
		Throws:       append([]darts.Throw{}, p.Throws...),
		Marks:        make(map[string]int, len(p.Marks)),
		VariantState: map[string]any{},
		Stats: map[string]int{
			statDarts:         p.Stats.TotalDartsThrown,
			statScore:         p.Stats.TotalScoreThrown,
			statOpportunities: p.Stats.CheckoutOpportunities,
			statCheckouts:     p.Stats.CheckoutsSuccessful,
			statHighestFinish: p.Stats.HighestFinish,
			statMarks:         p.Stats.TotalMarksScored,
		},
	}
	for k, v := range p.Marks {
		snap.Marks[k] = v
	}
	if p.State != nil {
		snap.VariantState = p.State.Fields()
	}
	return snap
}

// Restore rebuilds a player from a snapshot taken in a game of variant v
func Restore(snap PlayerSnapshot, v Variant) *Player {
	p := NewPlayer(snap.ID, snap.Name)
	p.Score = snap.Score
	p.Throws = append([]darts.Throw(nil), snap.Throws...)
	for k, n := range snap.Marks {
		p.Marks[k] = n
	}
	p.Stats = Stats{
		TotalDartsThrown:      snap.Stats[statDarts],
		TotalScoreThrown:      snap.Stats[statScore],
		CheckoutOpportunities: snap.Stats[statOpportunities],
		CheckoutsSuccessful:   snap.Stats[statCheckouts],
		HighestFinish:         snap.Stats[statHighestFinish],
		TotalMarksScored:      snap.Stats[statMarks],
	}
	if state := newVariantState(v); state != nil {
		state.setFields(snap.VariantState)
		p.State = state
	}
	return p
}

func newVariantState(v Variant) VariantState {
	switch v {
	case X01:
		return &X01State{}
	case Cricket, CutThroat, Tactics:
		return &CricketState{}
	case Killer:
		return &KillerState{}
	case Elimination:
		return &EliminationState{}
	case Shanghai, Micky, AroundTheClock:
		return &TargetState{}
	default:
		return nil
	}
}
