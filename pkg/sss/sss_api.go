/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package sss provides security API for splitting a secret into multiple parts.
package sss

// SecretSplitter is a service that splits a secret []byte into multiple parts.
type SecretSplitter interface {
	Split(secret []byte, numParts, threshold int) ([][]byte, error)
	Combine(secretParts [][]byte) ([]byte, error)
}

// SecretCombiner recovers a secret from more parts than the threshold, some of which may be corrupt.
// It tries threshold-sized subsets until p accepts the result; found is false when none does.
type SecretCombiner interface {
	CombineSuchThat(secretParts [][]byte, threshold int, p func(secret []byte) bool) (secret []byte, found bool, err error)
}
