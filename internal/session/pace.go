package session

import (
	"context"
	"time"

	"github.com/coder/quartz"
)

// DefaultDelay is the pause before each AI action in interactive play
const DefaultDelay = 180 * time.Millisecond

// Pace returns a hook that waits delay on clock before each AI action. A
// non-positive delay only checks the context.
func Pace(clock quartz.Clock, delay time.Duration) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		if delay <= 0 {
			return ctx.Err()
		}

		fired := make(chan struct{})
		timer := clock.AfterFunc(delay, func() {
			close(fired)
		}, "session", "pace")
		defer timer.Stop()

		select {
		case <-fired:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
