// Package session runs a table hand after hand: rotating the button,
// detecting a busted human or a last player standing, and pacing AI actions
// on an injectable clock.
package session

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/holdem-cli/internal/game"
)

// Options configures a Session
type Options struct {
	Clock  quartz.Clock
	Delay  time.Duration // pause before each AI action
	Logger *log.Logger

	Human  game.HumanProvider
	Policy *game.Policy
	Log    game.LogFunc
	Render func(*game.State)

	StartingStack int
	MaxHands      int // zero means play until the game ends

	// StopOnHumanBust ends the session as soon as the human seat has no chips
	StopOnHumanBust bool

	// Between runs after every hand; returning false stops the session
	Between func(ctx context.Context, st *game.State) (bool, error)

	// Recorder, when set, sees every hand played
	Recorder HandRecorder
}

// HandRecorder keeps a record of hands as they are played
type HandRecorder interface {
	BeginHand(st *game.State)
	RecordAction(st *game.State, idx int, d game.Decision)
	EndHand(st *game.State, outcome game.HandOutcome) error
}

// Result describes how a session ended
type Result struct {
	Hands       int
	Winner      string // last seat standing, empty if the game did not finish
	HumanBusted bool
	Stopped     bool // halted by MaxHands or Between
}

// Session owns a table state and drives it hand by hand
type Session struct {
	state  *game.State
	opts   Options
	deps   game.Deps
	logger *log.Logger
}

// New creates a session around state
func New(state *game.State, opts Options) *Session {
	if opts.Clock == nil {
		opts.Clock = quartz.NewReal()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	logger := opts.Logger.WithPrefix("session")

	s := &Session{
		state:  state,
		opts:   opts,
		logger: logger,
	}
	s.deps = game.Deps{
		Log:    s.logLine,
		Human:  opts.Human,
		Policy: opts.Policy,
		Pace:   Pace(opts.Clock, opts.Delay),
		Logger: opts.Logger.WithPrefix("game"),
	}
	if opts.Render != nil {
		s.deps.Render = func() { opts.Render(state) }
	}
	if opts.Recorder != nil {
		s.deps.Observe = opts.Recorder.RecordAction
	}
	return s
}

// State returns the table being played
func (s *Session) State() *game.State {
	return s.state
}

func (s *Session) logLine(line string) {
	s.logger.Debug(line)
	if s.opts.Log != nil {
		s.opts.Log(line)
	}
}

// Run plays hands until the game ends, the human busts (when configured),
// MaxHands is reached, Between asks to stop or ctx is cancelled.
func (s *Session) Run(ctx context.Context) (Result, error) {
	var result Result
	for {
		if s.opts.MaxHands > 0 && result.Hands >= s.opts.MaxHands {
			result.Stopped = true
			return result, nil
		}

		if s.opts.Recorder != nil {
			s.opts.Recorder.BeginHand(s.state)
		}
		outcome, err := game.PlayHand(ctx, s.state, s.deps)
		if err != nil {
			return result, err
		}
		if s.opts.Recorder != nil && !outcome.GameOver {
			if err := s.opts.Recorder.EndHand(s.state, outcome); err != nil {
				return result, err
			}
		}
		if outcome.GameOver {
			if outcome.Winner != game.NoSeat {
				result.Winner = s.state.Seats[outcome.Winner].Name
			}
			s.logger.Info("Game over", "hands", result.Hands, "winner", result.Winner)
			return result, nil
		}
		result.Hands++

		if s.opts.StopOnHumanBust && s.humanBusted() {
			result.HumanBusted = true
			s.logLine("You are out of chips. Game over.")
			s.logger.Info("Human busted", "hands", result.Hands)
			return result, nil
		}

		game.RotateDealer(s.state)

		if s.opts.Between != nil {
			cont, err := s.opts.Between(ctx, s.state)
			if err != nil {
				return result, err
			}
			if !cont {
				result.Stopped = true
				return result, nil
			}
		}
	}
}

func (s *Session) humanBusted() bool {
	for _, seat := range s.state.Seats {
		if !seat.IsAI && seat.Stack == 0 {
			return true
		}
	}
	return false
}

// Reset starts a new game with every seat back at the starting stack
func (s *Session) Reset() {
	s.state.Restart(s.opts.StartingStack)
	s.logLine("New game started.")
	s.logger.Info("Game reset", "stack", s.opts.StartingStack)
}
