// Package statistics aggregates the outcome of many legs.
package statistics

import (
	"fmt"
	"math"
	"sort"

	"github.com/lox/dartscore/internal/game"
)

// LegResult is the outcome of a single leg
type LegResult struct {
	Leg      int          // leg index within the run
	Seed     int64        // run seed; randutil.Derive(Seed, Leg) replays the leg
	Finished bool         // false when the leg hit the round cap
	Winner   int          // seat index of the winner, -1 for none
	Rounds   int          // rounds started
	Darts    int          // darts thrown by all players
	Players  []game.Stats // per seat, in turn order
}

// SeatStats accumulates the results of one seat across legs
type SeatStats struct {
	Legs  int
	Wins  int
	Darts int
	Stats game.Stats // summed, except HighestFinish which is the maximum
}

// WinRate returns wins as a percentage of legs played
func (s SeatStats) WinRate() float64 {
	if s.Legs == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Legs) * 100
}

// Statistics tracks leg lengths and per-seat totals
type Statistics struct {
	Legs      int
	Finished  int
	NoWinner  int       // finished legs without a winner
	SumDarts  float64   // darts per finished leg
	SumDarts2 float64   // sum of squares for variance calculation
	Values    []float64 // darts per finished leg, for median/percentile

	Seats []SeatStats
}

// Add incorporates a leg result
func (s *Statistics) Add(r LegResult) {
	s.Legs++
	if r.Finished {
		d := float64(r.Darts)
		s.Finished++
		s.SumDarts += d
		s.SumDarts2 += d * d
		s.Values = append(s.Values, d)
		if r.Winner < 0 {
			s.NoWinner++
		}
	}

	for len(s.Seats) < len(r.Players) {
		s.Seats = append(s.Seats, SeatStats{})
	}
	for i, ps := range r.Players {
		seat := &s.Seats[i]
		seat.Legs++
		seat.Darts += ps.TotalDartsThrown
		addStats(&seat.Stats, ps)
	}
	if r.Finished && r.Winner >= 0 && r.Winner < len(s.Seats) {
		s.Seats[r.Winner].Wins++
	}
}

func addStats(dst *game.Stats, src game.Stats) {
	dst.TotalDartsThrown += src.TotalDartsThrown
	dst.TotalScoreThrown += src.TotalScoreThrown
	dst.CheckoutOpportunities += src.CheckoutOpportunities
	dst.CheckoutsSuccessful += src.CheckoutsSuccessful
	dst.TotalMarksScored += src.TotalMarksScored
	dst.HighestFinish = max(dst.HighestFinish, src.HighestFinish)
}

// Merge folds other into s. Workers keep their own Statistics and merge
// once they are done.
func (s *Statistics) Merge(other *Statistics) {
	s.Legs += other.Legs
	s.Finished += other.Finished
	s.NoWinner += other.NoWinner
	s.SumDarts += other.SumDarts
	s.SumDarts2 += other.SumDarts2
	s.Values = append(s.Values, other.Values...)

	for len(s.Seats) < len(other.Seats) {
		s.Seats = append(s.Seats, SeatStats{})
	}
	for i, o := range other.Seats {
		seat := &s.Seats[i]
		seat.Legs += o.Legs
		seat.Wins += o.Wins
		seat.Darts += o.Darts
		addStats(&seat.Stats, o.Stats)
	}
}

// Mean returns the mean number of darts in a finished leg
func (s *Statistics) Mean() float64 {
	if s.Finished == 0 {
		return 0
	}
	return s.SumDarts / float64(s.Finished)
}

// Variance returns the sample variance of leg lengths
func (s *Statistics) Variance() float64 {
	if s.Finished < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumDarts2 - float64(s.Finished)*mean*mean) / float64(s.Finished-1)
}

// StdDev returns the sample standard deviation of leg lengths
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Finished == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Finished))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median leg length
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the leg length at percentile p (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Validate checks that the counters agree with each other
func (s *Statistics) Validate() error {
	if s.Legs <= 0 {
		return fmt.Errorf("invalid legs count: %d", s.Legs)
	}
	if s.Finished > s.Legs {
		return fmt.Errorf("finished legs (%d) exceed legs (%d)", s.Finished, s.Legs)
	}
	if len(s.Values) != s.Finished {
		return fmt.Errorf("values array length (%d) does not match finished legs (%d)",
			len(s.Values), s.Finished)
	}

	wins := 0
	for i, seat := range s.Seats {
		if seat.Legs != s.Legs {
			return fmt.Errorf("seat %d played %d legs, expected %d", i, seat.Legs, s.Legs)
		}
		if seat.Wins > seat.Legs {
			return fmt.Errorf("seat %d won %d of %d legs", i, seat.Wins, seat.Legs)
		}
		wins += seat.Wins
	}
	if wins+s.NoWinner != s.Finished {
		return fmt.Errorf("wins (%d) plus legs without winner (%d) do not match finished legs (%d)",
			wins, s.NoWinner, s.Finished)
	}
	return nil
}
