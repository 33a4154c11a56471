/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package shamir

import (
	"crypto/sha256"
	"crypto/subtle"
	"io"

	"github.com/trustbloc/edge-sss/pkg/sss/entropy"
)

// Predicate decides whether a recombined secret is the right one.
type Predicate func(secret []byte) bool

// AlwaysTrue accepts every candidate secret.
func AlwaysTrue([]byte) bool {
	return true
}

// SHA256Predicate accepts a candidate whose SHA-256 digest equals digest.
func SHA256Predicate(digest []byte) Predicate {
	want := append([]byte(nil), digest...)

	return func(secret []byte) bool {
		got := sha256.Sum256(secret)

		return subtle.ConstantTimeCompare(got[:], want) == 1
	}
}

// Config holds the recognized split and combine parameters.
type Config struct {
	// Threshold is the number of shares needed to reconstruct (k).
	Threshold int
	// TotalShares is the number of shares produced by Split (n). Defaults to Threshold.
	TotalShares int
	// Entropy supplies the random polynomial coefficients. Defaults to crypto/rand.
	Entropy io.Reader
	// Predicate validates candidate secrets during Combine. Defaults to AlwaysTrue.
	Predicate Predicate
}

// Option configures Split and Combine.
type Option func(cfg *Config)

// WithTotalShares sets the number of shares to produce.
func WithTotalShares(n int) Option {
	return func(cfg *Config) {
		cfg.TotalShares = n
	}
}

// WithEntropy sets the entropy source.
func WithEntropy(r io.Reader) Option {
	return func(cfg *Config) {
		cfg.Entropy = r
	}
}

// WithThreshold sets the subset size searched by Combine.
func WithThreshold(k int) Option {
	return func(cfg *Config) {
		cfg.Threshold = k
	}
}

// WithPredicate sets the predicate a combination must satisfy.
func WithPredicate(p Predicate) Option {
	return func(cfg *Config) {
		cfg.Predicate = p
	}
}

func newConfig(threshold int, opts []Option) *Config {
	cfg := &Config{
		Threshold:   threshold,
		TotalShares: threshold,
		Entropy:     entropy.Default(),
		Predicate:   AlwaysTrue,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.Entropy == nil {
		cfg.Entropy = entropy.Default()
	}

	if cfg.Predicate == nil {
		cfg.Predicate = AlwaysTrue
	}

	return cfg
}
