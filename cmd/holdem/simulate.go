package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/lox/holdem-cli/internal/config"
	"github.com/lox/holdem-cli/internal/simulator"
)

type SimulateCmd struct {
	Config   string        `short:"c" help:"Table configuration file (HCL)" default:"holdem.hcl" type:"path"`
	Sessions int           `short:"n" help:"Number of sessions to play" default:"100"`
	Hands    int           `help:"Hand limit per session" default:"1000"`
	Seed     int64         `help:"Base seed; session i uses seed+i" default:"1"`
	Workers  int           `short:"w" help:"Sessions played in parallel (0 for one per CPU)" default:"0"`
	Timeout  time.Duration `help:"Time limit per session (0 for none)" default:"0s"`
	Report   string        `help:"Write a JSON summary to this file" type:"path"`
	LogFile  string        `help:"Write a debug log to this file" type:"path"`
	Debug    bool          `help:"Log every table event"`
}

func (c *SimulateCmd) Run(ctx context.Context) error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}

	logger, closer, err := newLogger(c.LogFile, "simulate", c.Debug)
	if err != nil {
		return err
	}
	defer closer.Close()

	workers := c.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	start := time.Now()
	report, err := simulator.New(simulator.Config{
		Table:    cfg,
		Sessions: c.Sessions,
		Hands:    c.Hands,
		Seed:     c.Seed,
		Workers:  workers,
		Timeout:  c.Timeout,
		Logger:   logger,
	}).Run(ctx)
	if err != nil {
		return err
	}

	simulator.PrintSummary(os.Stdout, report)
	if c.Report != "" {
		if err := simulator.WriteReport(c.Report, report); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		logger.Info("Report written", "path", c.Report)
	}
	fmt.Printf("\nCompleted in %s using %d workers\n", time.Since(start).Round(time.Millisecond), workers)
	return nil
}
