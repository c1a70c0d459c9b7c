// Package leghistory records completed turns of a leg and stores them as
// TOML documents, one file per leg.
package leghistory

// Leg is the stored history of one leg
type Leg struct {
	ID       string            `toml:"leg"`
	Variant  string            `toml:"variant"`
	Settings map[string]string `toml:"settings,omitempty"`
	Players  []string          `toml:"players"`
	Started  string            `toml:"started"`
	Finished string            `toml:"finished,omitempty"`
	Winner   string            `toml:"winner,omitempty"`
	// FinalScores is parallel to Players
	FinalScores []int  `toml:"final_scores,omitempty"`
	Turns       []Turn `toml:"turns"`
}

// Turn is one player's visit to the board
type Turn struct {
	Round  int      `toml:"round"`
	Player string   `toml:"player"`
	Throws []string `toml:"throws"`
	Score  int      `toml:"score"` // after the turn
	Result string   `toml:"result,omitempty"`
}

// DartCount returns the number of darts recorded across all turns
func (l *Leg) DartCount() int {
	n := 0
	for _, t := range l.Turns {
		n += len(t.Throws)
	}
	return n
}
