package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/dartscore/darts"
	"github.com/lox/dartscore/internal/config"
	"github.com/lox/dartscore/internal/game"
	"github.com/lox/dartscore/internal/leghistory"
	"github.com/lox/dartscore/internal/match"
)

// PlayCmd scores a game entered on stdin, one or more darts per line
type PlayCmd struct {
	Variant    string   `help:"Variant to play, overriding the game file"`
	Players    []string `help:"Player names, overriding the game file"`
	HistoryDir string   `type:"path" help:"Directory to write leg history to"`
}

func (c *PlayCmd) Run(g *Globals) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}
	if c.Variant != "" {
		cfg.Game = &config.GameConfig{Variant: c.Variant}
	}
	if len(c.Players) > 0 {
		cfg.Players = c.Players
	}
	if c.HistoryDir != "" {
		cfg.HistoryDir = c.HistoryDir
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger := g.logger(cfg)

	opts, err := cfg.GameOptions()
	if err != nil {
		return err
	}
	matchOpts := []match.Option{match.WithLogger(logger)}
	if cfg.HistoryDir != "" {
		matchOpts = append(matchOpts, match.WithHistory(quartz.NewReal()))
	}
	m, err := match.New(opts, cfg.Players, matchOpts...)
	if err != nil {
		return err
	}

	s := &session{match: m, out: os.Stdout, logger: logger}
	if err := s.run(os.Stdin); err != nil {
		return err
	}

	if leg := m.Leg(); leg != nil && len(leg.Turns) > 0 {
		w, err := leghistory.NewWriter(cfg.HistoryDir)
		if err != nil {
			return err
		}
		path, err := w.Write(leg)
		if err != nil {
			return err
		}
		logger.Info("leg saved", "path", path)
	}
	return nil
}

// session drives a match from text commands
type session struct {
	match  *match.Match
	out    io.Writer
	logger *log.Logger
}

const playHelp = `Enter darts as labels (T20 D16 25 BE M), several per line.
Commands: undo (u), next (n), status (s), help (h), quit (q).`

func (s *session) run(in io.Reader) error {
	fmt.Fprintln(s.out, headerStyle.Render(s.match.Options().Variant.String()))
	s.announceTurn()

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		for _, word := range strings.Fields(scanner.Text()) {
			quit, err := s.handle(word)
			if err != nil {
				fmt.Fprintln(s.out, warnStyle.Render(err.Error()))
			}
			if quit {
				return nil
			}
		}
	}
	return scanner.Err()
}

// handle executes one word of input. It reports whether to stop.
func (s *session) handle(word string) (bool, error) {
	m := s.match
	switch strings.ToLower(word) {
	case "q", "quit":
		return true, nil
	case "h", "help":
		fmt.Fprintln(s.out, playHelp)
		return false, nil
	case "s", "status":
		s.printStatus()
		return false, nil
	case "u", "undo":
		t, err := m.Undo()
		if err != nil {
			return false, err
		}
		fmt.Fprintf(s.out, "undid %s, %s on %d\n", t.Label(), m.Current().Name, m.Current().Score)
		return false, nil
	case "n", "next":
		result, err := m.NextTurn()
		if err != nil {
			return false, err
		}
		s.printResult(result)
		if m.Over() {
			s.printStatus()
			return false, nil
		}
		s.announceTurn()
		return false, nil
	}

	t, err := darts.ParseLabel(word)
	if err != nil {
		return false, err
	}
	result, err := m.Throw(t)
	if errors.Is(err, match.ErrTurnOver) {
		return false, fmt.Errorf("%s has no darts left, enter next or undo", m.Current().Name)
	}
	if err != nil {
		return false, err
	}
	s.printResult(result)
	if m.Over() {
		s.printStatus()
	}
	return false, nil
}

func (s *session) announceTurn() {
	m := s.match
	title, body, ok := m.TurnStartMessage()
	if !ok {
		fmt.Fprintf(s.out, "%s to throw (round %d)\n", scoreStyle.Render(m.Current().Name), m.Round())
		return
	}
	fmt.Fprintf(s.out, "%s: %s\n", scoreStyle.Render(title), body)
}

func (s *session) printResult(result game.ThrowResult) {
	if result.Message == "" {
		return
	}
	style := pathStyle
	switch result.Status {
	case game.StatusBust, game.StatusError:
		style = bustStyle
	case game.StatusWin:
		style = winStyle
	case game.StatusWarning, game.StatusInvalidOpen, game.StatusInvalidTarget:
		style = warnStyle
	}
	fmt.Fprintln(s.out, style.Render(result.Message))
}

func (s *session) printStatus() {
	m := s.match
	for _, p := range m.Players() {
		marker := " "
		if p == m.Current() && !m.Over() {
			marker = ">"
		}
		fmt.Fprintf(s.out, "%s %-12s %4d  avg %.1f\n", marker, p.Name, p.Score, p.Stats.Average())
	}
	if m.Over() {
		if w := m.Winner(); w != nil {
			fmt.Fprintln(s.out, winStyle.Render(w.Name+" wins"))
		} else {
			fmt.Fprintln(s.out, winStyle.Render("game over"))
		}
	}
}
