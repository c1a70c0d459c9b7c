package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/lox/dartscore/darts"
)

// CheckoutCmd prints checkout paths
type CheckoutCmd struct {
	Scores []int  `arg:"" optional:"" help:"Scores to check out"`
	Out    string `default:"double" help:"Out rule: single, double or masters"`
	Darts  int    `default:"3" help:"Darts left in the turn"`
	Double int    `help:"Preferred finishing double segment (1-20, 25 for bullseye)"`
	All    bool   `help:"List every score from 2 to 170"`
}

func (c *CheckoutCmd) Run() error {
	out, err := darts.ParseOutRule(c.Out)
	if err != nil {
		return err
	}
	if c.Darts < 1 || c.Darts > 3 {
		return fmt.Errorf("darts must be between 1 and 3, got %d", c.Darts)
	}

	scores := c.Scores
	if c.All {
		scores = nil
		for s := 2; s <= 170; s++ {
			scores = append(scores, s)
		}
	}
	if len(scores) == 0 {
		return errors.New("give at least one score or --all")
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("%s out, %d darts", out, c.Darts)))
	return printCheckouts(os.Stdout, scores, out, c.Darts, c.Double)
}

func printCheckouts(w io.Writer, scores []int, out darts.OutRule, dartsLeft, double int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, score := range scores {
		path := darts.Checkout(score, out, dartsLeft, double)
		rendered := pathStyle.Render(path)
		if path == darts.NoCheckout {
			rendered = noPathStyle.Render(path)
		}
		fmt.Fprintf(tw, "%s\t%s\n", scoreStyle.Render(strconv.Itoa(score)), rendered)
	}
	return tw.Flush()
}
