package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/lox/dartscore/internal/leghistory"
)

// HistoryCmd prints a recorded leg file
type HistoryCmd struct {
	File string `arg:"" type:"existingfile" help:"Path to a leg-*.toml file"`
}

func (c *HistoryCmd) Run() error {
	leg, err := leghistory.Read(c.File)
	if err != nil {
		return err
	}
	printLeg(os.Stdout, leg)
	return nil
}

func printLeg(w io.Writer, leg *leghistory.Leg) {
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%s leg %s", leg.Variant, leg.ID)))

	keys := make([]string, 0, len(leg.Settings))
	for k := range leg.Settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "  %s = %s\n", k, leg.Settings[k])
	}
	fmt.Fprintf(w, "Players: %s\n", strings.Join(leg.Players, ", "))
	fmt.Fprintf(w, "Started: %s\n", leg.Started)

	for _, turn := range leg.Turns {
		fmt.Fprintf(w, "R%-3d %-12s %-14s %4d  %s\n",
			turn.Round, turn.Player, strings.Join(turn.Throws, " "), turn.Score, turn.Result)
	}

	if leg.Winner != "" {
		fmt.Fprintln(w, winStyle.Render(fmt.Sprintf("%s won in %d darts", leg.Winner, leg.DartCount())))
	}
}
