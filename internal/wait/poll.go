// Package wait polls a condition until it holds or a deadline passes.
package wait

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"
)

// ErrTimeout is returned when a condition does not hold within the poll timeout
var ErrTimeout = errors.New("condition not met before timeout")

var errPending = errors.New("condition pending")

// Condition reports whether the awaited state has been reached. A non-nil
// error is treated as "not yet" and remembered for the timeout message.
type Condition func(ctx context.Context) (bool, error)

// Poller re-evaluates a Condition at a constant interval for at most Timeout.
type Poller struct {
	Timeout  time.Duration
	Interval time.Duration

	ctx context.Context
}

// New returns a Poller
func New(timeout, interval time.Duration) Poller {
	return Poller{Timeout: timeout, Interval: interval}
}

// Until blocks until cond returns true, the timeout elapses, or ctx is done.
func (p Poller) Until(ctx context.Context, cond Condition) error {
	if p.Interval <= 0 {
		return fmt.Errorf("poll interval must be positive, got %s", p.Interval)
	}

	var last error
	backoff := retry.WithMaxDuration(p.Timeout, retry.NewConstant(p.Interval))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		ok, err := cond(ctx)
		if err != nil {
			last = err
			return retry.RetryableError(err)
		}
		if !ok {
			last = nil
			return retry.RetryableError(errPending)
		}
		return nil
	})
	if err == nil {
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if last != nil {
		return fmt.Errorf("%w after %s: %v", ErrTimeout, p.Timeout, last)
	}
	return fmt.Errorf("%w after %s", ErrTimeout, p.Timeout)
}

// WithContext returns a copy of p whose UntilDone stops when ctx is done
func (p Poller) WithContext(ctx context.Context) Poller {
	p.ctx = ctx
	return p
}

// Context returns the context bound by WithContext, or a background one
func (p Poller) Context() context.Context {
	if p.ctx == nil {
		return context.Background()
	}
	return p.ctx
}

// UntilDone is Until on the poller's bound context.
func (p Poller) UntilDone(cond Condition) error {
	return p.Until(p.Context(), cond)
}
