/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff"

	"github.com/trustbloc/edge-sss/pkg/log"
)

var logger = log.New("edge-sss/retry")

// Params are used to define how retry attempts are handled.
type Params struct {
	MaxRetries     uint
	InitialBackoff time.Duration
	BackoffFactor  float64
}

// Invocation represents a function that is desired to be retried until it succeeds (i.e. it returns nil).
type Invocation func() error

// Retry retries the given Invocation based on the given Params until it returns no error, at which point this
// function returns no error as well.
// If the retry attempts are exhausted, this function returns the most recent error returned from the given Invocation.
func Retry(invocation Invocation, params *Params) error {
	return RetryContext(context.Background(), invocation, params)
}

// RetryContext is Retry that also stops waiting once ctx is done.
func RetryContext(ctx context.Context, invocation Invocation, params *Params) error {
	var policy backoff.BackOff = &backoff.StopBackOff{}

	// WithMaxRetries treats zero as unlimited
	if params.MaxRetries > 0 {
		policy = backoff.WithMaxRetries(newBackOff(params), uint64(params.MaxRetries))
	}

	b := backoff.WithContext(policy, ctx)

	return backoff.RetryNotify(backoff.Operation(invocation), b, func(err error, next time.Duration) {
		logger.Debugf("attempt failed, retrying in %s: %s", next, err)
	})
}

func newBackOff(params *Params) backoff.BackOff {
	b := backoff.NewExponentialBackOff()

	b.InitialInterval = params.InitialBackoff
	b.Multiplier = params.BackoffFactor
	b.RandomizationFactor = 0
	b.MaxElapsedTime = 0

	if params.BackoffFactor < 1 {
		b.Multiplier = 1
	}

	if b.MaxInterval < b.InitialInterval {
		b.MaxInterval = b.InitialInterval
	}

	b.Reset()

	return b
}
