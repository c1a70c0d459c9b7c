package game

import (
	"fmt"

	"github.com/lox/dartscore/darts"
)

// Options configures a game. Options are fixed for the life of a game.
type Options struct {
	Variant Variant

	OptIn  darts.OutRule // X01 opening rule
	OptOut darts.OutRule // X01 and Elimination finishing rule
	OptAtC darts.Ring    // Around the Clock ring: Single, Double or Triple

	CountTo         int // X01 start score, Elimination target
	Lives           int // Killer
	Rounds          int // Shanghai
	SplitScoreStart int
}

// Option configures Options during creation.
type Option func(*Options)

// WithOptIn sets the X01 opening rule
func WithOptIn(rule darts.OutRule) Option {
	return func(o *Options) { o.OptIn = rule }
}

// WithOptOut sets the finishing rule
func WithOptOut(rule darts.OutRule) Option {
	return func(o *Options) { o.OptOut = rule }
}

// WithOptAtC sets the ring Around the Clock targets must be hit in
func WithOptAtC(ring darts.Ring) Option {
	return func(o *Options) { o.OptAtC = ring }
}

// WithCountTo sets the X01 start score or the Elimination target
func WithCountTo(n int) Option {
	return func(o *Options) { o.CountTo = n }
}

// WithLives sets the Killer starting lives
func WithLives(n int) Option {
	return func(o *Options) { o.Lives = n }
}

// WithRounds sets the number of Shanghai rounds
func WithRounds(n int) Option {
	return func(o *Options) { o.Rounds = n }
}

// WithSplitScoreStart sets the Split Score starting score
func WithSplitScoreStart(n int) Option {
	return func(o *Options) { o.SplitScoreStart = n }
}

// NewOptions returns the defaults for variant v with opts applied.
//
// Defaults: X01 counts down from 501, Elimination counts up to 301, single
// in, double out, three Killer lives and seven Shanghai rounds.
func NewOptions(v Variant, opts ...Option) Options {
	o := Options{
		Variant:         v,
		OptIn:           darts.OutSingle,
		OptOut:          darts.OutDouble,
		OptAtC:          darts.Single,
		CountTo:         501,
		Lives:           3,
		Rounds:          7,
		SplitScoreStart: 60,
	}
	if v == Elimination {
		o.CountTo = 301
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Validate checks that the options describe a playable game
func (o Options) Validate() error {
	if int(o.Variant) >= len(variantNames) {
		return fmt.Errorf("unknown variant %d", o.Variant)
	}
	if o.OptIn > darts.OutMasters {
		return fmt.Errorf("invalid opt in rule %d", o.OptIn)
	}
	if o.OptOut > darts.OutMasters {
		return fmt.Errorf("invalid opt out rule %d", o.OptOut)
	}
	switch o.OptAtC {
	case darts.Single, darts.Double, darts.Triple:
	default:
		return fmt.Errorf("around the clock ring must be Single, Double or Triple, got %s", o.OptAtC)
	}

	switch o.Variant {
	case X01, Elimination:
		if o.CountTo < 2 {
			return fmt.Errorf("count to must be at least 2, got %d", o.CountTo)
		}
	case Killer:
		if o.Lives < 1 {
			return fmt.Errorf("lives must be positive, got %d", o.Lives)
		}
	case Shanghai:
		if o.Rounds < 1 || o.Rounds > 20 {
			return fmt.Errorf("shanghai rounds must be between 1 and 20, got %d", o.Rounds)
		}
	case SplitScore:
		if o.SplitScoreStart < 1 {
			return fmt.Errorf("split score start must be positive, got %d", o.SplitScoreStart)
		}
	}
	return nil
}
