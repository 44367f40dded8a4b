// Copyright 2025 NetApp, Inc. All Rights Reserved.

// Package await polls a condition with a bounded number of attempts, each attempt allowed a longer
// wait than the last. Time is read from an injectable clock so tests run without sleeping.
package await

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"k8s.io/utils/clock"

	. "github.com/netapp/vnx-blockdevice/logging"
	"github.com/netapp/vnx-blockdevice/utils/errors"
)

// Condition reports whether the awaited state has been reached. A non-nil error ends the wait immediately.
type Condition func(ctx context.Context) (bool, error)

// Hook runs before each attempt, e.g. to trigger a rescan. Attempts are numbered from 1.
type Hook func(ctx context.Context, attempt int) error

// Policy bounds a wait.
type Policy struct {
	// MaxAttempts is the attempt ceiling.
	MaxAttempts int
	// Timeout returns how long attempt k may poll before giving up.
	Timeout func(attempt int) time.Duration
	// PollInterval is the delay between condition checks within one attempt.
	PollInterval time.Duration
	// Clock defaults to the real clock.
	Clock clock.Clock
}

// Result describes a completed wait.
type Result struct {
	Attempts int
	Elapsed  time.Duration
}

// Escalating returns a timeout function where attempt k waits k*step.
func Escalating(step time.Duration) func(int) time.Duration {
	return func(attempt int) time.Duration {
		return time.Duration(attempt) * step
	}
}

// Fixed returns a timeout function where every attempt waits d.
func Fixed(d time.Duration) func(int) time.Duration {
	return func(int) time.Duration { return d }
}

// TotalTimeout is the sum of all attempt timeouts of a policy.
func (p Policy) TotalTimeout() time.Duration {
	var total time.Duration
	for k := 1; k <= p.MaxAttempts; k++ {
		total += p.Timeout(k)
	}
	return total
}

func (p Policy) validate() error {
	if p.MaxAttempts < 1 {
		return errors.InvalidInputError("max attempts must be at least 1, got %d", p.MaxAttempts)
	}
	if p.Timeout == nil {
		return errors.InvalidInputError("no attempt timeout specified")
	}
	if p.PollInterval <= 0 {
		return errors.InvalidInputError("poll interval must be positive, got %v", p.PollInterval)
	}
	return nil
}

// Await runs before(k) and then polls condition for up to Timeout(k), for k = 1..MaxAttempts.
// When every attempt is exhausted it returns a MaxWaitExceededError along with the attempts made
// and the total time spent.
func Await(ctx context.Context, p Policy, before Hook, condition Condition) (Result, error) {
	if err := p.validate(); err != nil {
		return Result{}, err
	}
	clk := p.Clock
	if clk == nil {
		clk = clock.RealClock{}
	}

	start := clk.Now()
	result := Result{}

	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		result.Attempts = attempt

		if before != nil {
			if err := before(ctx, attempt); err != nil {
				result.Elapsed = clk.Since(start)
				return result, err
			}
		}

		done, err := pollAttempt(ctx, clk, p.PollInterval, p.Timeout(attempt), condition)
		result.Elapsed = clk.Since(start)
		if err != nil {
			return result, err
		}
		if done {
			return result, nil
		}

		Logc(ctx).WithFields(LogFields{
			"attempt":     attempt,
			"maxAttempts": p.MaxAttempts,
			"elapsed":     result.Elapsed,
		}).Debug("Condition not met within attempt timeout.")
	}

	return result, errors.MaxWaitExceededError("condition not met after %d attempts in %v",
		result.Attempts, result.Elapsed)
}

var errNotYet = fmt.Errorf("condition not met")

// pollAttempt checks the condition every interval until it holds or the attempt timeout passes.
// The full timeout always elapses before the attempt is given up.
func pollAttempt(
	ctx context.Context, clk clock.Clock, interval, timeout time.Duration, condition Condition,
) (bool, error) {
	attemptStart := clk.Now()

	check := func() error {
		ok, err := condition(ctx)
		if err != nil {
			return backoff.Permanent(err)
		}
		if !ok {
			return errNotYet
		}
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = interval
	b.MaxInterval = interval
	b.Multiplier = 1
	b.RandomizationFactor = 0
	b.MaxElapsedTime = timeout
	b.Clock = clk

	err := backoff.RetryNotifyWithTimer(check, backoff.WithContext(b, ctx), nil, newClockTimer(clk))
	if err == nil {
		return true, nil
	}
	if err != errNotYet {
		return false, err
	}

	// The backoff stops once another interval would overshoot; wait out the rest and look once more.
	if remaining := timeout - clk.Since(attemptStart); remaining > 0 {
		clk.Sleep(remaining)
		return condition(ctx)
	}
	return false, nil
}

// clockTimer drives backoff from a clock.Clock so that a fake clock advances instantly.
type clockTimer struct {
	clock clock.Clock
	c     chan time.Time
}

func newClockTimer(clk clock.Clock) *clockTimer {
	return &clockTimer{clock: clk, c: make(chan time.Time, 1)}
}

func (t *clockTimer) Start(d time.Duration) {
	t.clock.Sleep(d)
	t.c <- t.clock.Now()
}

func (t *clockTimer) Stop() {}

func (t *clockTimer) C() <-chan time.Time {
	return t.c
}
