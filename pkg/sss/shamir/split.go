/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package shamir implements Shamir's secret sharing over GF(256).
//
// Every byte of the secret is the constant term of its own random polynomial of
// degree threshold-1. Share j holds x = j and the evaluations of all those
// polynomials at j. Any threshold shares recover the secret by Lagrange
// interpolation at x = 0; fewer reveal nothing about it.
//
// Shares carry no checksum. When more shares than the threshold are available and
// some may be corrupt, Combine can search for a subset whose secret satisfies a
// caller supplied Predicate.
package shamir

import (
	"fmt"

	"github.com/trustbloc/edge-sss/pkg/log"
	"github.com/trustbloc/edge-sss/pkg/sss/entropy"
	"github.com/trustbloc/edge-sss/pkg/sss/gf256"
)

const (
	logModule = "edge-sss/shamir"

	// MaxShares is the number of nonzero field elements available as x-coordinates.
	MaxShares = 255
)

var logger = log.New(logModule) // nolint:gochecknoglobals // module logger

// Split divides secret into shares, any threshold of which reconstruct it.
// By default it produces threshold shares; use WithTotalShares for more.
func Split(secret []byte, threshold int, opts ...Option) ([]Share, error) {
	cfg := newConfig(threshold, opts)

	if err := validateSplit(cfg); err != nil {
		return nil, err
	}

	shares := make([]Share, cfg.TotalShares)
	for j := range shares {
		shares[j] = make(Share, 1+len(secret))
		shares[j][0] = byte(j + 1)
	}

	coeffs := make([]byte, cfg.Threshold)
	defer wipe(coeffs)

	for i, b := range secret {
		coeffs[0] = b

		if err := entropy.Fill(cfg.Entropy, coeffs[1:]); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrEntropy, err)
		}

		for j := range shares {
			shares[j][1+i] = evaluate(coeffs, shares[j][0])
		}
	}

	logger.Debugf("split %d byte secret into %d shares with threshold %d",
		len(secret), cfg.TotalShares, cfg.Threshold)

	return shares, nil
}

// SplitInput normalizes in and splits it like Split.
func SplitInput(in Input, threshold int, opts ...Option) ([]Share, error) {
	secret, err := InputBytes(in)
	if err != nil {
		return nil, err
	}

	return Split(secret, threshold, opts...)
}

func validateSplit(cfg *Config) error {
	if cfg.Threshold < 2 {
		return fmt.Errorf("%w: got %d", ErrInvalidThreshold, cfg.Threshold)
	}

	if cfg.TotalShares < cfg.Threshold {
		return fmt.Errorf("%w: %d shares for threshold %d", ErrInsufficientShares, cfg.TotalShares, cfg.Threshold)
	}

	if cfg.TotalShares > MaxShares {
		return fmt.Errorf("%w: got %d", ErrTooManyShares, cfg.TotalShares)
	}

	return nil
}

// evaluate computes coeffs[0] + coeffs[1]*x + ... with Horner's rule.
func evaluate(coeffs []byte, x byte) byte {
	var y byte

	for d := len(coeffs) - 1; d >= 0; d-- {
		y = gf256.Add(gf256.Mul(y, x), coeffs[d])
	}

	return y
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
