// Package display draws the table in the terminal and reads the human
// seat's actions.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/holdem-cli/internal/deck"
	"github.com/lox/holdem-cli/internal/game"
)

const (
	clearScreen     = "\033[H\033[2J"
	defaultLogLines = 12
)

// Options configures a Renderer
type Options struct {
	NoColor  bool
	LogLines int  // log lines shown under the table
	NoClear  bool // append frames instead of redrawing the screen
}

// Renderer draws table snapshots with lipgloss
type Renderer struct {
	out    io.Writer
	log    *TableLog
	styles *Styles
	opts   Options
	lg     *lipgloss.Renderer
}

// NewRenderer creates a renderer writing to out
func NewRenderer(out io.Writer, log *TableLog, opts Options) *Renderer {
	lg := lipgloss.NewRenderer(out)
	if opts.NoColor {
		lg.SetColorProfile(termenv.Ascii)
	}
	if opts.LogLines <= 0 {
		opts.LogLines = defaultLogLines
	}
	return &Renderer{
		out:    out,
		log:    log,
		styles: NewStyles(lg),
		opts:   opts,
		lg:     lg,
	}
}

// Styles returns the renderer's styles, shared with the prompt
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render redraws the whole table
func (r *Renderer) Render(st *game.State) {
	if !r.opts.NoClear {
		fmt.Fprint(r.out, clearScreen)
	}
	fmt.Fprintln(r.out, r.Table(st))
}

// Table returns the rendered table as a string
func (r *Renderer) Table(st *game.State) string {
	var b strings.Builder

	header := fmt.Sprintf("Hand #%d  %s  Pot %s  Bet %s  Blinds %s/%s",
		st.HandNum, strings.ToUpper(st.Street.String()), money(st.Pot()), money(st.CurrentBet),
		money(st.SmallBlind), money(st.BigBlind))
	b.WriteString(r.styles.Header.Render(header))
	b.WriteString("\n\n")

	b.WriteString(r.styles.Board.Render("Board: "))
	if len(st.Board) == 0 {
		b.WriteString(r.styles.HiddenCard.Render("--"))
	} else {
		b.WriteString(r.Cards(st.Board))
	}
	b.WriteString("\n\n")

	for i := range st.Seats {
		b.WriteString(r.seatLine(st, i))
		b.WriteString("\n")
	}

	if lines := r.log.Tail(r.opts.LogLines); len(lines) > 0 {
		logText := make([]string, len(lines))
		for i, line := range lines {
			logText[i] = r.styles.Log.Render(line)
		}
		b.WriteString("\n")
		b.WriteString(r.styles.Frame.Render(strings.Join(logText, "\n")))
	}
	return b.String()
}

func (r *Renderer) seatLine(st *game.State, idx int) string {
	seat := st.Seats[idx]

	var markers []string
	if idx == st.Dealer {
		markers = append(markers, "D")
	}
	if idx == st.SBIdx {
		markers = append(markers, "SB")
	}
	if idx == st.BBIdx {
		markers = append(markers, "BB")
	}

	var status string
	switch {
	case seat.Out:
		status = "out"
	case seat.Folded:
		status = "folded"
	case seat.AllIn:
		status = "all-in"
	}

	var cards string
	switch {
	case seat.Out || len(seat.Hand) == 0:
		cards = "     "
	case !seat.IsAI || (st.Reveal && !seat.Folded):
		cards = r.Cards(seat.Hand)
	default:
		cards = r.styles.HiddenCard.Render("?? ??")
	}

	style := r.styles.Seat
	prefix := "  "
	switch {
	case idx == st.Current:
		style = r.styles.Acting
		prefix = "> "
	case seat.Out || seat.Folded:
		style = r.styles.Inactive
	case !seat.IsAI:
		style = r.styles.Human
	}

	info := fmt.Sprintf("%s%-8s %-20s %-8s %7s  bet %6s",
		prefix, strings.Join(markers, ","), seat.Name, seat.Persona, money(seat.Stack), money(seat.RoundBet))
	return style.Render(info) + "  " + cards + "  " + style.Render(status)
}

// Cards renders cards separated by spaces, coloured by suit
func (r *Renderer) Cards(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		if c.IsRed() {
			parts[i] = r.styles.RedCard.Render(c.String())
		} else {
			parts[i] = r.styles.BlackCard.Render(c.String())
		}
	}
	return strings.Join(parts, " ")
}

func money(v int) string {
	return fmt.Sprintf("$%d", v)
}
