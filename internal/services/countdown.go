package services

import (
	"context"
	"fmt"
	"time"
)

// ExpiredLabel is shown once the payment window has closed
const ExpiredLabel = "Payment time has expired"

// CountdownSnapshot is the state of a payment countdown at one instant
type CountdownSnapshot struct {
	RemainingSeconds int64  `json:"remaining_seconds"`
	Label            string `json:"label"`
	Expired          bool   `json:"expired"`
}

// CountdownAt computes the countdown toward expiry as of now, clamped at
// zero. The label is HH:MM:SS while time remains and the expired message
// afterwards.
func CountdownAt(expiry, now time.Time) CountdownSnapshot {
	remaining := expiry.Sub(now)
	if remaining <= 0 {
		return CountdownSnapshot{Label: ExpiredLabel, Expired: true}
	}

	return CountdownSnapshot{
		RemainingSeconds: int64(remaining.Seconds()),
		Label:            formatCountdown(remaining),
	}
}

// formatCountdown renders a duration as HH:MM:SS
func formatCountdown(d time.Duration) string {
	total := int64(d.Seconds())
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// Countdown ticks toward a payment deadline on a fixed interval. When the
// deadline passes it fires the expiry callback exactly once (so the caller
// can refetch the transaction and pick up server-side auto-expiry) and stops
// ticking.
type Countdown struct {
	expiry   time.Time
	interval time.Duration
	now      func() time.Time

	onTick   func(CountdownSnapshot)
	onExpire func()
}

// CountdownOption configures a Countdown
type CountdownOption func(*Countdown)

// WithTick registers a callback invoked with each snapshot
func WithTick(fn func(CountdownSnapshot)) CountdownOption {
	return func(c *Countdown) { c.onTick = fn }
}

// WithInterval overrides the 1-second tick interval
func WithInterval(interval time.Duration) CountdownOption {
	return func(c *Countdown) { c.interval = interval }
}

// WithClock overrides the time source
func WithClock(now func() time.Time) CountdownOption {
	return func(c *Countdown) { c.now = now }
}

// NewCountdown creates a countdown toward expiry. onExpire may be nil.
func NewCountdown(expiry time.Time, onExpire func(), opts ...CountdownOption) *Countdown {
	c := &Countdown{
		expiry:   expiry,
		interval: time.Second,
		now:      time.Now,
		onExpire: onExpire,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Snapshot returns the countdown state as of the countdown's clock
func (c *Countdown) Snapshot() CountdownSnapshot {
	return CountdownAt(c.expiry, c.now())
}

// Run ticks until the deadline passes or the context is cancelled. It blocks;
// run it in its own goroutine when the caller must not wait.
func (c *Countdown) Run(ctx context.Context) {
	if c.emit() {
		return
	}

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if c.emit() {
				return
			}
		}
	}
}

// emit publishes the current snapshot and reports whether the countdown has
// finished. The expiry callback fires on the tick that observes zero, never
// again.
func (c *Countdown) emit() bool {
	snap := c.Snapshot()
	if c.onTick != nil {
		c.onTick(snap)
	}

	if snap.Expired {
		if c.onExpire != nil {
			c.onExpire()
		}
		return true
	}
	return false
}
