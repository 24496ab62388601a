package main

import (
	"context"
	"errors"
	"fmt"
	rand "math/rand/v2"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/holdem-cli/internal/config"
	"github.com/lox/holdem-cli/internal/display"
	"github.com/lox/holdem-cli/internal/game"
	"github.com/lox/holdem-cli/internal/handid"
	"github.com/lox/holdem-cli/internal/phh"
	"github.com/lox/holdem-cli/internal/randutil"
	"github.com/lox/holdem-cli/internal/session"
)

type PlayCmd struct {
	Config   string        `short:"c" help:"Table configuration file (HCL)" default:"holdem.hcl" type:"path"`
	Seed     int64         `help:"Seed for shuffling and AI choices (0 for random)" default:"0"`
	Delay    time.Duration `help:"Pause before each AI action" default:"180ms"`
	Deadline time.Duration `help:"Time allowed for each of your decisions (0 to wait forever)" default:"0s"`
	NoColor  bool          `help:"Disable colour output"`
	NoClear  bool          `help:"Append frames instead of redrawing the screen"`
	History  string        `help:"Append every hand to this PHH hand history file" type:"path"`
	LogFile  string        `help:"Write a debug log to this file" type:"path"`
	Debug    bool          `help:"Include every table event in the debug log"`
}

func (c *PlayCmd) Run(ctx context.Context) error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", c.Config, err)
	}

	logger, closer, err := newLogger(c.LogFile, "holdem", c.Debug)
	if err != nil {
		return err
	}
	defer func() {
		if err := closer.Close(); err != nil {
			log.Error("Failed to close log file", "error", err)
		}
	}()

	deckRNG, policyRNG := c.rngs()
	st := cfg.NewState(deckRNG)
	logger.Info("Starting game", "seats", len(st.Seats), "blinds", fmt.Sprintf("%d/%d", st.SmallBlind, st.BigBlind), "seed", c.Seed)

	tableLog := display.NewTableLog(200)
	renderer := display.NewRenderer(os.Stdout, tableLog, display.Options{NoColor: c.NoColor, NoClear: c.NoClear})
	prompt := display.NewPrompt(os.Stdin, os.Stdout, renderer.Styles())
	clock := quartz.NewReal()

	recorder, closeHistory, err := c.openHistory(clock, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeHistory(); err != nil {
			logger.Error("Failed to close hand history", "error", err)
		}
	}()

	sess := session.New(st, session.Options{
		Clock:  clock,
		Delay:  c.Delay,
		Logger: logger,
		Human:  session.NewDeadlineProvider(prompt, clock, c.Deadline, logger),
		Policy: game.NewPolicy(policyRNG),
		Log: func(line string) {
			tableLog.Add(line)
			renderer.Render(st)
		},
		Render:          renderer.Render,
		StartingStack:   cfg.Table.StartingStack,
		StopOnHumanBust: cfg.HasHuman(),
		Recorder:        recorder,
		Between: func(ctx context.Context, st *game.State) (bool, error) {
			if !cfg.HasHuman() {
				return true, nil
			}
			renderer.Render(st)
			return prompt.Confirm(ctx, "Press Enter for the next hand (n to leave)")
		},
	})

	for {
		result, err := sess.Run(ctx)
		if errors.Is(err, display.ErrQuit) || errors.Is(err, context.Canceled) {
			logger.Info("Player left the table", "hands", result.Hands)
			return nil
		}
		if err != nil {
			return err
		}
		if result.Stopped {
			logger.Info("Player left the table", "hands", result.Hands)
			return nil
		}

		renderer.Render(st)
		again, err := prompt.Confirm(ctx, "Play again? (y/n)")
		if err != nil || !again {
			return nil
		}
		tableLog.Clear()
		sess.Reset()
	}
}

func (c *PlayCmd) rngs() (*rand.Rand, *rand.Rand) {
	if c.Seed == 0 {
		return randutil.NewCrypto(), randutil.NewCrypto()
	}
	return randutil.New(c.Seed), randutil.New(c.Seed ^ 0x5eed)
}

// openHistory returns the hand recorder for --history, or nil when no file
// was requested
func (c *PlayCmd) openHistory(clock quartz.Clock, logger *log.Logger) (session.HandRecorder, func() error, error) {
	if c.History == "" {
		return nil, func() error { return nil }, nil
	}
	last, err := phh.LastSection(c.History)
	if err != nil {
		return nil, nil, fmt.Errorf("read hand history: %w", err)
	}
	f, err := os.OpenFile(c.History, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open hand history: %w", err)
	}
	logger.Info("Recording hands", "path", c.History, "from_section", last+1)
	rec := phh.NewRecorder(phh.NewWriter(f, last), phh.RecorderOptions{
		Table:  "holdem",
		Clock:  clock,
		IDs:    handid.NewGenerator(clock, nil),
		Logger: logger,
	})
	return rec, f.Close, nil
}
