package game

import (
	"github.com/lox/dartscore/darts"
)

// MaxDarts is the number of darts in a turn
const MaxDarts = 3

// Stats are the running totals kept for a player across a game
type Stats struct {
	TotalDartsThrown      int
	TotalScoreThrown      int
	CheckoutOpportunities int
	CheckoutsSuccessful   int
	HighestFinish         int
	TotalMarksScored      int
}

// Average returns the three dart average
func (s Stats) Average() float64 {
	if s.TotalDartsThrown == 0 {
		return 0
	}
	return float64(s.TotalScoreThrown) / float64(s.TotalDartsThrown) * MaxDarts
}

// CheckoutPercentage returns successful checkouts as a percentage of
// opportunities
func (s Stats) CheckoutPercentage() float64 {
	if s.CheckoutOpportunities == 0 {
		return 0
	}
	return float64(s.CheckoutsSuccessful) / float64(s.CheckoutOpportunities) * 100
}

// MPR returns marks per round given the number of darts thrown
func (s Stats) MPR(dartsThrown int) float64 {
	if dartsThrown == 0 {
		return 0
	}
	return float64(s.TotalMarksScored) / float64(dartsThrown) * MaxDarts
}

// Player is a participant in a game
type Player struct {
	ID     int
	Name   string
	Score  int
	Throws []darts.Throw // current turn only
	Marks  map[string]int
	State  VariantState
	Stats  Stats
	Log    TurnLog

	// TurnOver is set when the turn cannot take more darts
	TurnOver bool
}

// NewPlayer creates a player. The engine fills in the variant specific
// fields in InitializePlayer.
func NewPlayer(id int, name string) *Player {
	return &Player{
		ID:    id,
		Name:  name,
		Marks: make(map[string]int),
	}
}

// ResetTurn clears the per-turn state before the player's next turn
func (p *Player) ResetTurn() {
	p.Throws = nil
	p.Log.Reset()
	p.TurnOver = false
}

// DartsLeft returns how many darts remain in the current turn
func (p *Player) DartsLeft() int {
	if p.TurnOver {
		return 0
	}
	return max(0, MaxDarts-len(p.Throws))
}

// findPlayer returns the player with the given id
func findPlayer(players []*Player, id int) *Player {
	for _, p := range players {
		if p.ID == id {
			return p
		}
	}
	return nil
}
