package leghistory

import (
	"time"

	"github.com/coder/quartz"
	"github.com/google/uuid"

	"github.com/lox/dartscore/darts"
)

// Recorder accumulates the turns of a single leg. It is not safe for
// concurrent use; the turn controller owns it.
type Recorder struct {
	clock quartz.Clock
	leg   *Leg
}

// NewRecorder starts recording a leg between players
func NewRecorder(clock quartz.Clock, variant string, settings map[string]string, players []string) *Recorder {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Recorder{
		clock: clock,
		leg: &Leg{
			ID:       uuid.NewString(),
			Variant:  variant,
			Settings: settings,
			Players:  append([]string(nil), players...),
			Started:  formatTime(clock.Now()),
			Turns:    make([]Turn, 0, 32),
		},
	}
}

// RecordTurn appends a completed turn
func (r *Recorder) RecordTurn(round int, player string, throws []darts.Throw, score int, result string) {
	labels := make([]string, len(throws))
	for i, t := range throws {
		labels[i] = t.Label()
	}
	r.leg.Turns = append(r.leg.Turns, Turn{
		Round:  round,
		Player: player,
		Throws: labels,
		Score:  score,
		Result: result,
	})
}

// Finish marks the leg as complete. winner may be empty.
func (r *Recorder) Finish(winner string, scores []int) {
	r.leg.Winner = winner
	r.leg.FinalScores = append([]int(nil), scores...)
	r.leg.Finished = formatTime(r.clock.Now())
}

// Reopen reverses Finish after the winning dart is taken back. dropTurn
// also removes the last recorded turn.
func (r *Recorder) Reopen(dropTurn bool) {
	r.leg.Winner = ""
	r.leg.FinalScores = nil
	r.leg.Finished = ""
	if dropTurn && len(r.leg.Turns) > 0 {
		r.leg.Turns = r.leg.Turns[:len(r.leg.Turns)-1]
	}
}

// Finished reports whether Finish has been called
func (r *Recorder) Finished() bool {
	return r.leg.Finished != ""
}

// Leg returns the recorded leg
func (r *Recorder) Leg() *Leg {
	return r.leg
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
