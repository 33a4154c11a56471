/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package gf256 implements arithmetic over the finite field GF(2^8).
//
// Elements are bytes. The field is built on the irreducible polynomial
// x^8 + x^4 + x^3 + x + 1 (0x11B, the AES polynomial) with 0x03 as the
// generator of the multiplicative group. Shares produced with a different
// modulus cannot be combined with shares produced here.
package gf256

import (
	"errors"
	"sync"
)

const (
	// Modulus is the reduction polynomial x^8 + x^4 + x^3 + x + 1.
	Modulus = 0x11B

	// Generator generates the multiplicative group of the field.
	Generator = 0x03

	// Order is the order of the multiplicative group.
	Order = 255
)

// ErrDivisionByZero is returned when dividing by, or inverting, the additive identity.
var ErrDivisionByZero = errors.New("division by zero in GF(256)")

// ErrLogOfZero is returned when the discrete logarithm of 0 is requested.
var ErrLogOfZero = errors.New("logarithm of zero is undefined in GF(256)")

// nolint:gochecknoglobals // precomputed tables, immutable after tablesOnce
var (
	expTable   [Order]byte
	logTable   [256]byte
	tablesOnce sync.Once
)

func tables() {
	tablesOnce.Do(func() {
		var x byte = 1

		for i := 0; i < Order; i++ {
			expTable[i] = x
			logTable[x] = byte(i)

			x = mulSlow(x, Generator)
		}
	})
}

// mulSlow is carry-less multiplication reduced by Modulus. Only used to build the tables.
func mulSlow(a, b byte) byte {
	var p byte

	for b != 0 {
		if b&1 != 0 {
			p ^= a
		}

		carry := a & 0x80
		a <<= 1

		if carry != 0 {
			a ^= Modulus & 0xFF
		}

		b >>= 1
	}

	return p
}

// IsElem reports whether v is a valid field element.
func IsElem(v int) bool {
	return v >= 0 && v <= 255
}

// Add returns a + b.
func Add(a, b byte) byte {
	return a ^ b
}

// Sub returns a - b, which in characteristic 2 is the same as Add.
func Sub(a, b byte) byte {
	return a ^ b
}

// Mul returns a * b.
func Mul(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}

	tables()

	return expTable[(int(logTable[a])+int(logTable[b]))%Order]
}

// Inv returns the multiplicative inverse of a.
func Inv(a byte) (byte, error) {
	if a == 0 {
		return 0, ErrDivisionByZero
	}

	tables()

	return expTable[(Order-int(logTable[a]))%Order], nil
}

// Div returns a / b.
func Div(a, b byte) (byte, error) {
	inv, err := Inv(b)
	if err != nil {
		return 0, err
	}

	return Mul(a, inv), nil
}

// Pow returns a raised to e. Pow(a, 0) is 1 for every a, including 0.
// A negative exponent is a programming error and panics.
func Pow(a byte, e int) byte {
	if e < 0 {
		panic("gf256: negative exponent")
	}

	if e == 0 {
		return 1
	}

	if a == 0 {
		return 0
	}

	tables()

	return expTable[(int(logTable[a])*(e%Order))%Order]
}

// Exp returns Generator raised to i.
func Exp(i int) byte {
	tables()

	i %= Order
	if i < 0 {
		i += Order
	}

	return expTable[i]
}

// Log returns the discrete logarithm of a with respect to Generator.
func Log(a byte) (byte, error) {
	if a == 0 {
		return 0, ErrLogOfZero
	}

	tables()

	return logTable[a], nil
}
