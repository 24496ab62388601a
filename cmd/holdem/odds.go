package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/holdem-cli/internal/deck"
	"github.com/lox/holdem-cli/internal/equity"
	"github.com/lox/holdem-cli/internal/evaluator"
)

type OddsCmd struct {
	Hands         []string `arg:"" help:"Hole cards per player, e.g. AcKd QhJs" required:""`
	Board         string   `short:"b" help:"Community cards, e.g. Td7s8h"`
	Possibilities bool     `short:"p" help:"Show how often each hand ends in each category"`
	Iterations    int      `short:"i" help:"Boards to deal" default:"100000"`
	Seed          int64    `help:"Seed for dealing (0 for time-based)" default:"0"`
	Workers       int      `short:"w" help:"Parallel workers (0 for one per CPU)" default:"0"`
	NoColor       bool     `help:"Disable colour output"`
}

func (c *OddsCmd) Run(ctx context.Context) error {
	hands := make([][]deck.Card, len(c.Hands))
	for i, h := range c.Hands {
		cards, err := deck.ParseCards(h)
		if err != nil {
			return fmt.Errorf("hand %d: %w", i+1, err)
		}
		hands[i] = cards
	}
	board, err := deck.ParseCards(c.Board)
	if err != nil {
		return fmt.Errorf("board: %w", err)
	}

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	workers := c.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	start := time.Now()
	report, err := equity.Calculate(ctx, hands, board, equity.Options{
		Iterations: c.Iterations,
		Workers:    workers,
		Seed:       seed,
	})
	if err != nil {
		return err
	}

	printOdds(os.Stdout, report, c.Possibilities, c.NoColor)
	fmt.Printf("\n%d iterations in %v\n", report.Iterations, time.Since(start).Truncate(time.Millisecond))
	return nil
}

type oddsStyles struct {
	header, hand, win, tie, category, percent lipgloss.Style
}

func newOddsStyles(out io.Writer, noColor bool) oddsStyles {
	r := lipgloss.NewRenderer(out)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return oddsStyles{
		header:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		hand:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		win:      r.NewStyle().Foreground(lipgloss.Color("10")),
		tie:      r.NewStyle().Foreground(lipgloss.Color("11")),
		category: r.NewStyle().Foreground(lipgloss.Color("12")),
		percent:  r.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

func printOdds(out io.Writer, report *equity.Report, possibilities, noColor bool) {
	st := newOddsStyles(out, noColor)

	if len(report.Board) > 0 {
		fmt.Fprintf(out, "%s\n%s\n\n", st.header.Render("board"), formatCards(report.Board))
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", st.header.Render("hand"), st.header.Render("win"),
		st.header.Render("tie"), st.header.Render("equity"))
	for _, p := range report.Players {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			st.hand.Render(formatCards(p.Hand)),
			st.win.Render(fmt.Sprintf("%.1f%%", p.WinPct(report.Iterations))),
			st.tie.Render(fmt.Sprintf("%.1f%%", p.TiePct(report.Iterations))),
			st.win.Render(fmt.Sprintf("%.1f%%", p.Equity*100)))
	}
	w.Flush()

	if !possibilities {
		return
	}
	fmt.Fprintln(out)
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprint(w, st.category.Render("hand"))
	for _, p := range report.Players {
		fmt.Fprintf(w, "\t%s", st.hand.Render(formatCards(p.Hand)))
	}
	fmt.Fprintln(w)
	for cat := evaluator.StraightFlush; cat >= evaluator.HighCard; cat-- {
		seen := false
		for _, p := range report.Players {
			seen = seen || p.Categories[cat] > 0
		}
		if !seen {
			continue
		}
		fmt.Fprint(w, st.category.Render(cat.String()))
		for _, p := range report.Players {
			if n := p.Categories[cat]; n > 0 {
				fmt.Fprintf(w, "\t%s", st.percent.Render(fmt.Sprintf("%.1f%%", float64(n)/float64(report.Iterations)*100)))
			} else {
				fmt.Fprintf(w, "\t%s", st.percent.Render("."))
			}
		}
		fmt.Fprintln(w)
	}
	w.Flush()
}

func formatCards(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
