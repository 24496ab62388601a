package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" default:"withargs" help:"Play against the AI seats"`
	Simulate SimulateCmd      `cmd:"" help:"Run AI-only sessions and report results per persona"`
	Odds     OddsCmd          `cmd:"" help:"Estimate win odds for hands against each other"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("holdem"),
		kong.Description("Texas Hold'em in the terminal"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx.BindTo(runCtx, (*context.Context)(nil))

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// newLogger returns a logger writing to path, or a discarding logger when
// path is empty. The returned closer is never nil.
func newLogger(path, prefix string, debug bool) (*log.Logger, io.Closer, error) {
	if path == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          prefix,
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, f, nil
}
