package clock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFakeClock_SleepAdvances(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewFakeClock(start)

	require.NoError(t, c.Sleep(context.Background(), 250*time.Millisecond))
	require.NoError(t, c.Sleep(context.Background(), 0))
	c.Advance(time.Second)

	assert.Equal(t, start.Add(1250*time.Millisecond), c.Now())
	assert.Equal(t, []time.Duration{250 * time.Millisecond, 0}, c.Sleeps())
}

func TestFakeClock_SleepCancelled(t *testing.T) {
	c := NewFakeClock(time.Unix(0, 0))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, c.Sleep(ctx, time.Second), context.Canceled)
	assert.Empty(t, c.Sleeps())
}

func TestRealClock_Sleep(t *testing.T) {
	c := RealClock{}

	begin := time.Now()
	require.NoError(t, c.Sleep(context.Background(), 5*time.Millisecond))
	assert.GreaterOrEqual(t, time.Since(begin), 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, c.Sleep(ctx, time.Hour), context.Canceled)
}
