/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package entropy provides the random byte sources used for polynomial coefficients.
// Any io.Reader can serve as a source; the splitter does not judge its quality.
package entropy

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20"
)

// SeedSize is the seed length accepted by NewChaCha20.
const SeedSize = chacha20.KeySize

// ErrSeedSize is returned by NewChaCha20 for a seed that is not SeedSize bytes long.
var ErrSeedSize = fmt.Errorf("seed must be %d bytes", SeedSize)

// Default returns the system's cryptographically secure source.
func Default() io.Reader {
	return rand.Reader
}

// Zero is a source that only produces zero bytes. It makes every polynomial constant,
// so it must never be used outside of tests.
// nolint:gochecknoglobals // stateless reader
var Zero io.Reader = zeroReader{}

type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}

	return len(p), nil
}

// ChaCha20 is a deterministic keystream source. The same seed always yields the same bytes.
type ChaCha20 struct {
	cipher *chacha20.Cipher
}

// NewChaCha20 returns a deterministic source keyed by seed.
func NewChaCha20(seed []byte) (*ChaCha20, error) {
	if len(seed) != SeedSize {
		return nil, ErrSeedSize
	}

	c, err := chacha20.NewUnauthenticatedCipher(seed, make([]byte, chacha20.NonceSize))
	if err != nil {
		return nil, fmt.Errorf("failed to create chacha20 cipher: %w", err)
	}

	return &ChaCha20{cipher: c}, nil
}

// Read fills p with the next keystream bytes.
func (s *ChaCha20) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}

	s.cipher.XORKeyStream(p, p)

	return len(p), nil
}

// Fill reads exactly len(buf) bytes from r into buf.
func Fill(r io.Reader, buf []byte) error {
	if r == nil {
		return errors.New("entropy source is nil")
	}

	if _, err := io.ReadFull(r, buf); err != nil {
		return fmt.Errorf("failed to read %d random bytes: %w", len(buf), err)
	}

	return nil
}
