package host

import (
	"context"
	"time"
)

// DefaultTickRate is the simulation rate in ticks per second.
const DefaultTickRate = 10

// TickerScheduler paces ticks with a time.Ticker.
type TickerScheduler struct {
	interval time.Duration
}

// NewTickerScheduler creates a scheduler running rate ticks per second.
// A non-positive rate falls back to DefaultTickRate.
func NewTickerScheduler(rate int) *TickerScheduler {
	if rate <= 0 {
		rate = DefaultTickRate
	}
	return &TickerScheduler{interval: time.Second / time.Duration(rate)}
}

// Interval returns the time between ticks.
func (s *TickerScheduler) Interval() time.Duration {
	return s.interval
}

// Run blocks until tick returns false or ctx is done.
func (s *TickerScheduler) Run(ctx context.Context, tick func() bool) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if !tick() {
				return nil
			}
		}
	}
}

// CountScheduler runs up to N ticks back to back. N <= 0 runs until tick
// returns false.
type CountScheduler struct {
	N int
}

// Run calls tick without delay.
func (s CountScheduler) Run(ctx context.Context, tick func() bool) error {
	for i := 0; s.N <= 0 || i < s.N; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !tick() {
			return nil
		}
	}
	return nil
}
