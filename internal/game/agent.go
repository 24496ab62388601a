package game

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem-cli/internal/deck"
)

// ErrNoHumanProvider is returned when a human seat must act but Deps has no
// HumanProvider to ask.
var ErrNoHumanProvider = errors.New("no human action provider configured")

// View is the read-only snapshot a human seat decides from
type View struct {
	Seat       int
	Name       string
	Hand       []deck.Card
	Board      []deck.Card
	Street     Street
	Stack      int
	RoundBet   int
	CurrentBet int
	ToCall     int
	MinRaiseTo int // smallest full raise target
	MaxRaiseTo int // all-in target
	Pot        int
}

// CanCheck reports whether checking is legal
func (v View) CanCheck() bool { return v.ToCall == 0 }

// CanRaise reports whether the seat has chips beyond the call
func (v View) CanRaise() bool { return v.Stack > v.ToCall }

// Validate rejects decisions the human seat cannot make
func (v View) Validate(d Decision) error {
	switch d.Action {
	case Fold, Call:
		return nil
	case Check:
		if !v.CanCheck() {
			return fmt.Errorf("cannot check facing %s", money(v.ToCall))
		}
		return nil
	case Raise:
		if v.Stack == 0 {
			return errors.New("no chips to raise with")
		}
		if d.Amount <= v.CurrentBet && d.Amount < v.MaxRaiseTo {
			return fmt.Errorf("raise target %s must exceed the current bet %s", money(d.Amount), money(v.CurrentBet))
		}
		return nil
	}
	return fmt.Errorf("unsupported action %s", d.Action)
}

// NewView builds the decision snapshot for a seat
func NewView(s *State, idx int) View {
	seat := s.Seats[idx]
	return View{
		Seat:       idx,
		Name:       seat.Name,
		Hand:       append([]deck.Card(nil), seat.Hand...),
		Board:      append([]deck.Card(nil), s.Board...),
		Street:     s.Street,
		Stack:      seat.Stack,
		RoundBet:   seat.RoundBet,
		CurrentBet: s.CurrentBet,
		ToCall:     s.ToCall(idx),
		MinRaiseTo: min(s.MinRaiseTo(), seat.RoundBet+seat.Stack),
		MaxRaiseTo: seat.RoundBet + seat.Stack,
		Pot:        s.Pot(),
	}
}

// HumanProvider supplies decisions for human seats. NextAction blocks until
// the human acts or ctx is done.
type HumanProvider interface {
	NextAction(ctx context.Context, view View) (Decision, error)
}

// HumanFunc adapts a function to HumanProvider
type HumanFunc func(ctx context.Context, view View) (Decision, error)

func (f HumanFunc) NextAction(ctx context.Context, view View) (Decision, error) {
	return f(ctx, view)
}

// Deps are the host-side capabilities the engine calls out to. All fields are
// optional except Policy when AI seats play and Human when a human seat plays.
type Deps struct {
	Render func()                          // redraw after state changes
	Log    LogFunc                         // human-readable table log
	Human  HumanProvider                   // decisions for human seats
	Policy *Policy                         // decisions for AI seats
	Pace   func(ctx context.Context) error // delay before each AI action
	Logger *log.Logger                     // structured debug logging

	// Observe sees every applied decision, after the state has changed
	Observe func(s *State, idx int, d Decision)
}

func (d Deps) render() {
	if d.Render != nil {
		d.Render()
	}
}

func (d Deps) observe(s *State, idx int, dec Decision) {
	if d.Observe != nil {
		d.Observe(s, idx, dec)
	}
}

func (d Deps) logger() *log.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return log.New(io.Discard)
}

func (d Deps) pace(ctx context.Context) error {
	if d.Pace != nil {
		return d.Pace(ctx)
	}
	return ctx.Err()
}
