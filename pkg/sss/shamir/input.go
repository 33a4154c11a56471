/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package shamir

import (
	"fmt"

	"github.com/trustbloc/edge-sss/pkg/sss/gf256"
)

// Input is a secret in one of the accepted forms: Text, RawBytes or Codes.
type Input interface {
	secretBytes() ([]byte, error)
}

// Text is a secret given as a string. Its UTF-8 bytes are shared.
type Text string

// RawBytes is a secret given as bytes.
type RawBytes []byte

// Codes is a secret given as integer character codes. Every code must be in 0..255.
type Codes []int

func (t Text) secretBytes() ([]byte, error) {
	return []byte(t), nil
}

func (r RawBytes) secretBytes() ([]byte, error) {
	return r, nil
}

func (c Codes) secretBytes() ([]byte, error) {
	b := make([]byte, len(c))

	for i, v := range c {
		if !gf256.IsElem(v) {
			return nil, fmt.Errorf("%w: value %d at index %d", ErrInvalidByte, v, i)
		}

		b[i] = byte(v)
	}

	return b, nil
}

// InputBytes normalizes an Input to the byte sequence that gets split.
func InputBytes(in Input) ([]byte, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: nil input", ErrInvalidByte)
	}

	return in.secretBytes()
}
