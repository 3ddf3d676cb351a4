package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/favsync/internal/clock"
)

// ThrottleOptions shapes the pacing of item-level remote requests.
type ThrottleOptions struct {
	Step    time.Duration
	Max     time.Duration
	Warning time.Duration
}

// DefaultThrottleOptions returns the pacing used when no configuration is
// given: 10ms growth per request, capped at 5s, warning from 1s.
func DefaultThrottleOptions() ThrottleOptions {
	return ThrottleOptions{
		Step:    10 * time.Millisecond,
		Max:     5 * time.Second,
		Warning: time.Second,
	}
}

// Throttler paces consecutive remote requests with a delay that grows by a
// fixed step on every call until it reaches the ceiling. Time spent between
// calls counts towards the delay.
type Throttler struct {
	clock clock.Clock
	opts  ThrottleOptions

	mu    sync.Mutex
	delay time.Duration
	last  time.Time
}

// NewThrottler creates a Throttler in its reset state.
func NewThrottler(c clock.Clock, opts ThrottleOptions) *Throttler {
	return &Throttler{clock: c, opts: opts}
}

// Throttle sleeps for whatever remains of the current delay since the previous
// call, then grows the delay. It returns early with ctx.Err() when ctx is
// cancelled.
func (t *Throttler) Throttle(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.last.IsZero() {
		if wait := t.delay - t.clock.Now().Sub(t.last); wait > 0 {
			if err := t.clock.Sleep(ctx, wait); err != nil {
				return err
			}
		}
	}

	t.delay = min(t.delay+t.opts.Step, t.opts.Max)
	t.last = t.clock.Now()
	return nil
}

// Reset drops the accumulated delay. The next Throttle call does not sleep.
func (t *Throttler) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.delay = 0
	t.last = time.Time{}
}

// NeedsWarning reports whether the current delay has reached the warning
// threshold.
func (t *Throttler) NeedsWarning() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.delay >= t.opts.Warning
}

// Delay returns the current delay.
func (t *Throttler) Delay() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.delay
}
