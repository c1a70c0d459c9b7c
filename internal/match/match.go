// Package match sequences turns and rounds around a game engine. It owns
// the players, appends throws before handing them to the engine and pops
// them again on undo.
package match

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/dartscore/darts"
	"github.com/lox/dartscore/internal/game"
	"github.com/lox/dartscore/internal/leghistory"
)

var (
	// ErrNothingToUndo is returned by Undo when the current turn has no throws
	ErrNothingToUndo = errors.New("match: nothing to undo")
	// ErrTurnOver is returned by Throw once the turn takes no more darts
	ErrTurnOver = errors.New("match: turn is over")
	// ErrGameOver is returned once the game has been decided
	ErrGameOver = errors.New("match: game is over")
)

// Option configures a Match during creation.
type Option func(*Match)

// WithLogger sets the logger; by default nothing is logged
func WithLogger(logger *log.Logger) Option {
	return func(m *Match) { m.logger = logger }
}

// WithHistory records the leg using clock for timestamps
func WithHistory(clock quartz.Clock) Option {
	return func(m *Match) {
		m.recordHistory = true
		m.clock = clock
	}
}

// idAllocator hands out stable player ids, starting at 1
type idAllocator struct {
	last int
}

func (a *idAllocator) Next() int {
	a.last++
	return a.last
}

// Match is a single game between players. It is not safe for concurrent use.
type Match struct {
	opts    game.Options
	engine  game.Engine
	players []*game.Player
	ids     idAllocator

	current    int
	round      int
	over       bool
	winner     *game.Player
	lastResult game.ThrowResult

	logger        *log.Logger
	recordHistory bool
	clock         quartz.Clock
	recorder      *leghistory.Recorder
}

// New creates a match and starts the first player's turn
func New(opts game.Options, names []string, options ...Option) (*Match, error) {
	if len(names) == 0 {
		return nil, errors.New("match: at least one player is required")
	}
	engine, err := game.NewEngine(opts)
	if err != nil {
		return nil, fmt.Errorf("match: %w", err)
	}

	m := &Match{
		opts:   opts,
		engine: engine,
		round:  1,
		logger: log.New(io.Discard),
	}
	for _, opt := range options {
		opt(m)
	}

	for _, name := range names {
		p := game.NewPlayer(m.ids.Next(), name)
		engine.InitializePlayer(p)
		m.players = append(m.players, p)
	}
	if m.recordHistory {
		m.recorder = leghistory.NewRecorder(m.clock, opts.Variant.String(), Settings(opts), names)
	}

	m.logger.Info("game started", "variant", opts.Variant, "players", len(names))
	m.beginTurn()
	return m, nil
}

// Settings describes the options relevant to the variant, for display and
// leg history.
func Settings(opts game.Options) map[string]string {
	s := make(map[string]string)
	switch opts.Variant {
	case game.X01:
		s["count_to"] = strconv.Itoa(opts.CountTo)
		s["opt_in"] = opts.OptIn.String()
		s["opt_out"] = opts.OptOut.String()
	case game.Elimination:
		s["count_to"] = strconv.Itoa(opts.CountTo)
		s["opt_out"] = opts.OptOut.String()
	case game.Killer:
		s["lives"] = strconv.Itoa(opts.Lives)
	case game.Shanghai:
		s["rounds"] = strconv.Itoa(opts.Rounds)
	case game.AroundTheClock:
		s["opt_atc"] = opts.OptAtC.String()
	case game.SplitScore:
		s["start"] = strconv.Itoa(opts.SplitScoreStart)
	}
	return s
}

// Options returns the game options
func (m *Match) Options() game.Options { return m.opts }

// Engine returns the rules engine
func (m *Match) Engine() game.Engine { return m.engine }

// Players returns the players in turn order
func (m *Match) Players() []*game.Player { return m.players }

// Current returns the player whose turn it is
func (m *Match) Current() *game.Player { return m.players[m.current] }

// Round returns the 1-based round number
func (m *Match) Round() int { return m.round }

// Over reports whether the game has been decided
func (m *Match) Over() bool { return m.over }

// Winner returns the winner, or nil while the game runs or when it ended
// without one
func (m *Match) Winner() *game.Player { return m.winner }

// Leg returns the recorded leg history, or nil when not recording
func (m *Match) Leg() *leghistory.Leg {
	if m.recorder == nil {
		return nil
	}
	return m.recorder.Leg()
}

// Snapshot captures every player's persistent state
func (m *Match) Snapshot() []game.PlayerSnapshot {
	snaps := make([]game.PlayerSnapshot, len(m.players))
	for i, p := range m.players {
		snaps[i] = game.Snapshot(p)
	}
	return snaps
}

// TurnStartMessage returns the engine's message for the current player
func (m *Match) TurnStartMessage() (title, body string, ok bool) {
	return m.engine.TurnStartMessage(m.Current())
}

// Throw records a dart for the current player
func (m *Match) Throw(t darts.Throw) (game.ThrowResult, error) {
	if m.over {
		return game.ThrowResult{}, ErrGameOver
	}
	if err := t.Validate(); err != nil {
		return game.ThrowResult{}, fmt.Errorf("match: %w", err)
	}
	p := m.Current()
	if p.TurnOver || len(p.Throws) >= game.MaxDarts {
		return game.ThrowResult{}, ErrTurnOver
	}

	p.Throws = append(p.Throws, t)
	result := m.engine.HandleThrow(p, t, m.players)
	m.lastResult = result
	m.logger.Debug("throw",
		"player", p.Name,
		"dart", len(p.Throws),
		"throw", t.Label(),
		"status", result.Status,
		"score", p.Score)

	if result.EndTurn || len(p.Throws) == game.MaxDarts {
		p.TurnOver = true
	}

	switch result.Status {
	case game.StatusBust:
		m.logger.Info("bust", "player", p.Name, "score", p.Score)
	case game.StatusWin:
		p.TurnOver = true
		m.recordTurn(p)
		m.finish(result)
	}
	return result, nil
}

// Undo takes back the current player's most recent dart. A dart that won
// the game reopens it.
func (m *Match) Undo() (darts.Throw, error) {
	p := m.Current()
	if len(p.Throws) == 0 {
		return darts.Throw{}, ErrNothingToUndo
	}
	if m.over {
		m.over = false
		m.winner = nil
		if m.recorder != nil {
			m.recorder.Reopen(true)
		}
		m.logger.Info("game reopened", "player", p.Name)
	}

	t := p.Throws[len(p.Throws)-1]
	p.Throws = p.Throws[:len(p.Throws)-1]
	m.engine.HandleThrowUndo(p, t, m.players)
	p.TurnOver = false
	m.lastResult = game.ThrowResult{}

	m.logger.Debug("undo", "player", p.Name, "throw", t.Label(), "score", p.Score)
	return t, nil
}

// NextTurn ends the current turn and moves to the next player. The result
// is the engine's end of turn outcome, or the round limit outcome when the
// game ends on it.
func (m *Match) NextTurn() (game.ThrowResult, error) {
	if m.over {
		return game.ThrowResult{}, ErrGameOver
	}
	p := m.Current()

	var result game.ThrowResult
	if ender, ok := m.engine.(game.TurnEnder); ok {
		result = ender.EndTurn(p, m.round)
		if result.Message != "" {
			m.logger.Info("turn end", "player", p.Name, "message", result.Message)
		}
	}
	m.recordTurn(p)
	p.ResetTurn()

	if !m.advance() {
		m.finish(game.ThrowResult{Status: game.StatusWin, Message: "no players left"})
		return m.lastResult, nil
	}

	if limiter, ok := m.engine.(game.RoundLimiter); ok {
		if limit, done := limiter.RoundLimitReached(m.round, m.players); done {
			m.finish(limit)
			return limit, nil
		}
	}

	m.beginTurn()
	return result, nil
}

// advance moves to the next player who still plays, wrapping into the
// next round. It returns false if nobody is left.
func (m *Match) advance() bool {
	skipper, _ := m.engine.(game.Skipper)
	for range m.players {
		m.current++
		if m.current == len(m.players) {
			m.current = 0
			m.round++
		}
		if skipper == nil || !skipper.Skip(m.Current()) {
			return true
		}
	}
	return false
}

func (m *Match) beginTurn() {
	p := m.Current()
	p.ResetTurn()
	if starter, ok := m.engine.(game.TurnStarter); ok {
		starter.StartTurn(p, m.round)
	}
	m.lastResult = game.ThrowResult{}
	if title, body, ok := m.engine.TurnStartMessage(p); ok {
		m.logger.Debug("turn start", "player", p.Name, "round", m.round, "title", title, "message", body)
	}
}

func (m *Match) recordTurn(p *game.Player) {
	if m.recorder == nil {
		return
	}
	m.recorder.RecordTurn(m.round, p.Name, p.Throws, p.Score, string(m.lastResult.Status))
}

func (m *Match) finish(result game.ThrowResult) {
	m.over = true
	m.winner = result.Winner
	m.lastResult = result

	name := ""
	if m.winner != nil {
		name = m.winner.Name
	}
	m.logger.Info("game over", "winner", name, "round", m.round, "message", result.Message)

	if m.recorder != nil {
		scores := make([]int, len(m.players))
		for i, p := range m.players {
			scores[i] = p.Score
		}
		m.recorder.Finish(name, scores)
	}
}
