/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package shamir

import (
	"encoding/hex"
	"fmt"
)

// Share is one fragment of a split secret.
// Byte 0 is the x-coordinate; byte 1+i is the evaluation of the polynomial for secret byte i.
type Share []byte

// X returns the share's x-coordinate.
func (s Share) X() byte {
	return s[0]
}

// Y returns the y-coordinate for secret byte i.
func (s Share) Y(i int) byte {
	return s[1+i]
}

// SecretLen returns the length of the secret the share belongs to.
func (s Share) SecretLen() int {
	return len(s) - 1
}

// String returns the lowercase hex encoding of the share.
func (s Share) String() string {
	return hex.EncodeToString(s)
}

func (s Share) validate() error {
	if len(s) == 0 {
		return fmt.Errorf("%w: empty share", ErrInvalidShare)
	}

	if s[0] == 0 {
		return fmt.Errorf("%w: x-coordinate 0 is reserved for the secret", ErrInvalidShare)
	}

	return nil
}

// ParseShare decodes a share from its hex encoding.
func ParseShare(encoded string) (Share, error) {
	b, err := hex.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidShare, err)
	}

	s := Share(b)
	if err := s.validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// VaultLayout returns the share in HashiCorp Vault's layout, with the x-coordinate trailing the y values.
func (s Share) VaultLayout() []byte {
	out := make([]byte, len(s))
	copy(out, s[1:])
	out[len(out)-1] = s[0]

	return out
}

// FromVaultLayout converts a share produced by HashiCorp Vault into a Share.
func FromVaultLayout(part []byte) (Share, error) {
	if len(part) == 0 {
		return nil, fmt.Errorf("%w: empty share", ErrInvalidShare)
	}

	s := make(Share, len(part))
	s[0] = part[len(part)-1]
	copy(s[1:], part[:len(part)-1])

	if err := s.validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// ToBytes converts shares into plain byte slices.
func ToBytes(shares []Share) [][]byte {
	out := make([][]byte, len(shares))
	for i, s := range shares {
		out[i] = s
	}

	return out
}

// FromBytes converts plain byte slices into shares without copying them.
func FromBytes(parts [][]byte) []Share {
	out := make([]Share, len(parts))
	for i, p := range parts {
		out[i] = p
	}

	return out
}
