package session

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/holdem-cli/internal/game"
)

// DeadlineProvider bounds how long a human seat may think. When the timeout
// fires the pending request is cancelled and the seat checks if it can,
// otherwise folds.
type DeadlineProvider struct {
	inner   game.HumanProvider
	clock   quartz.Clock
	timeout time.Duration
	logger  *log.Logger
}

// NewDeadlineProvider wraps inner with a timeout. A zero timeout disables it.
func NewDeadlineProvider(inner game.HumanProvider, clock quartz.Clock, timeout time.Duration, logger *log.Logger) *DeadlineProvider {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &DeadlineProvider{
		inner:   inner,
		clock:   clock,
		timeout: timeout,
		logger:  logger.WithPrefix("deadline"),
	}
}

type decisionResult struct {
	decision game.Decision
	err      error
}

// NextAction implements game.HumanProvider
func (p *DeadlineProvider) NextAction(ctx context.Context, view game.View) (game.Decision, error) {
	if p.timeout <= 0 {
		return p.inner.NextAction(ctx, view)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	expired := make(chan struct{})
	timer := p.clock.AfterFunc(p.timeout, func() {
		close(expired)
	}, "session", "deadline")
	defer timer.Stop()

	results := make(chan decisionResult, 1)
	go func() {
		d, err := p.inner.NextAction(ctx, view)
		results <- decisionResult{decision: d, err: err}
	}()

	select {
	case r := <-results:
		return r.decision, r.err
	case <-expired:
		cancel()
		<-results // the prompt must release the terminal before play continues
		p.logger.Warn("Decision timeout", "seat", view.Name, "timeout", p.timeout)
		if view.CanCheck() {
			return game.Decision{Action: game.Check, Reasoning: "decision timeout"}, nil
		}
		return game.Decision{Action: game.Fold, Reasoning: "decision timeout"}, nil
	case <-ctx.Done():
		return game.Decision{}, ctx.Err()
	}
}
