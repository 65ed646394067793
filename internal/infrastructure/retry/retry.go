// Package retry retries connection attempts made while the process starts.
// Bank slip operations themselves are never retried.
package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
)

// Policy bounds a retry loop with exponential backoff.
type Policy struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
}

// DefaultPolicy keeps retrying for up to maxElapsed.
func DefaultPolicy(maxElapsed time.Duration) Policy {
	return Policy{
		InitialInterval: 250 * time.Millisecond,
		MaxInterval:     5 * time.Second,
		MaxElapsedTime:  maxElapsed,
	}
}

// Permanent marks err as not worth retrying.
func Permanent(err error) error {
	return backoff.Permanent(err)
}

// Do calls operation until it succeeds, returns a Permanent error, the
// policy gives up or ctx is done. It returns the last error seen.
func Do(ctx context.Context, logger zerolog.Logger, name string, p Policy, operation func(context.Context) error) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.InitialInterval
	b.MaxInterval = p.MaxInterval
	b.MaxElapsedTime = p.MaxElapsedTime

	attempt := 0

	return backoff.RetryNotify(
		func() error {
			attempt++
			return operation(ctx)
		},
		backoff.WithContext(b, ctx),
		func(err error, wait time.Duration) {
			logger.Warn().
				Err(err).
				Str("target", name).
				Int("attempt", attempt).
				Dur("retry_in", wait).
				Msg("connection attempt failed, retrying")
		},
	)
}
