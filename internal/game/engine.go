package game

import (
	"fmt"

	"github.com/lox/dartscore/darts"
)

// Engine applies the rules of one variant to throws.
//
// HandleThrow is called after the controller has appended t to p.Throws and
// HandleThrowUndo after it has removed it again. Rule violations are
// reported through ThrowResult.Status, never as errors or panics.
type Engine interface {
	Variant() Variant
	InitializePlayer(p *Player)
	Targets() []string
	HandleThrow(p *Player, t darts.Throw, players []*Player) ThrowResult
	HandleThrowUndo(p *Player, t darts.Throw, players []*Player)
	TurnStartMessage(p *Player) (title, body string, ok bool)
}

// TurnStarter is implemented by engines that prepare state at turn start.
// round is 1-based.
type TurnStarter interface {
	StartTurn(p *Player, round int)
}

// TurnEnder is implemented by engines that resolve a turn once it is over
type TurnEnder interface {
	EndTurn(p *Player, round int) ThrowResult
}

// RoundLimiter is implemented by engines that end after a fixed number of
// rounds. It is consulted before round starts; done reports the game is over.
type RoundLimiter interface {
	RoundLimitReached(round int, players []*Player) (result ThrowResult, done bool)
}

// Skipper is implemented by engines where some players no longer take turns
type Skipper interface {
	Skip(p *Player) bool
}

var registry = [...]func(Options) Engine{
	X01:            newX01,
	Cricket:        newCricket,
	CutThroat:      newCricket,
	Tactics:        newCricket,
	Killer:         newKiller,
	Elimination:    newElimination,
	Shanghai:       newShanghai,
	Micky:          newMicky,
	AroundTheClock: newAroundTheClock,
	SplitScore:     newSplitScore,
}

// NewEngine creates the engine for opts.Variant
func NewEngine(opts Options) (Engine, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	return registry[opts.Variant](opts), nil
}

// base carries what every engine shares
type base struct {
	opts    Options
	targets []string
}

func (b *base) Variant() Variant {
	return b.opts.Variant
}

func (b *base) Targets() []string {
	return append([]string(nil), b.targets...)
}

func (b *base) TurnStartMessage(*Player) (string, string, bool) {
	return "", "", false
}

// dartIndex is the 1-based index of the throw being handled
func dartIndex(p *Player) int {
	return max(1, len(p.Throws))
}

// undoneDartIndex is the index the throw being undone had
func undoneDartIndex(p *Player) int {
	return len(p.Throws) + 1
}

// highestScore returns the player with the highest score; the earliest
// listed wins ties.
func highestScore(players []*Player) *Player {
	var best *Player
	for _, p := range players {
		if best == nil || p.Score > best.Score {
			best = p
		}
	}
	return best
}
