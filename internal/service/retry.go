package service

import (
	"context"
	"errors"
	"time"

	"github.com/sethvargo/go-retry"
)

// RetryPolicy bounds the attempts made for one remote mutation.
type RetryPolicy struct {
	// Attempts is the total number of tries, the first one included.
	Attempts int
	// Delay is the pause between tries.
	Delay time.Duration
}

// DefaultRetryPolicy returns ten immediate tries.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{Attempts: 10}
}

// retryBounded calls fn until it succeeds or the policy is exhausted and
// returns the last error. Context errors are not retried.
func retryBounded(ctx context.Context, policy RetryPolicy, fn func(ctx context.Context) error) error {
	attempts := max(policy.Attempts, 1)
	backoff := retry.WithMaxRetries(uint64(attempts-1), retry.NewConstant(max(policy.Delay, time.Nanosecond)))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := fn(ctx)
		if err == nil {
			return nil
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return retry.RetryableError(err)
	})
}
