/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package base contains a basic Splitter implementation.
package base

import (
	"io"

	"github.com/trustbloc/edge-sss/pkg/sss/shamir"
)

// DefaultNumParts is the default number of splits of a secret.
const DefaultNumParts = 2

// Splitter is an implementation to split a secret into multiple parts and the ability to reconstruct it.
// Parts use the [x][y...] layout of package shamir.
type Splitter struct {
	// Entropy overrides crypto/rand as the coefficient source.
	Entropy io.Reader
}

// Split a secret into numParts (minimum 2) of secret parts and sets a minimum threshold to reconstruct it.
func (b *Splitter) Split(secret []byte, numParts, threshold int) ([][]byte, error) {
	shares, err := shamir.Split(secret, threshold,
		shamir.WithTotalShares(numParts), shamir.WithEntropy(b.Entropy))
	if err != nil {
		return nil, err
	}

	return shamir.ToBytes(shares), nil
}

// Combine the split secretParts into a combined secret. It does not validate if secretParts where split from the
// same original secret. ie the caller of Split() must validate that the returned value of Combine matches the original
// secret.
func (b *Splitter) Combine(secretParts [][]byte) ([]byte, error) {
	return shamir.Interpolate(shamir.FromBytes(secretParts))
}

// CombineSuchThat searches threshold-sized subsets of secretParts for a secret accepted by p.
func (b *Splitter) CombineSuchThat(secretParts [][]byte, threshold int,
	p func(secret []byte) bool) ([]byte, bool, error) {
	return shamir.Combine(shamir.FromBytes(secretParts),
		shamir.WithThreshold(threshold), shamir.WithPredicate(p))
}
