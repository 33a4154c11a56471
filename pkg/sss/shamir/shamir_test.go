/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package shamir_test

import (
	"bytes"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/trustbloc/edge-sss/pkg/sss/combination"
	"github.com/trustbloc/edge-sss/pkg/sss/entropy"
	"github.com/trustbloc/edge-sss/pkg/sss/shamir"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("no entropy left")
}

func seeded(t *testing.T, b byte) *entropy.ChaCha20 {
	t.Helper()

	src, err := entropy.NewChaCha20(bytes.Repeat([]byte{b}, entropy.SeedSize))
	require.NoError(t, err)

	return src
}

func subsetOf(shares []shamir.Share, idx []int) []shamir.Share {
	out := make([]shamir.Share, len(idx))
	for i, j := range idx {
		out[i] = shares[j]
	}

	return out
}

func TestSplit(t *testing.T) {
	secret := []byte("randomSecret")

	t.Run("share layout", func(t *testing.T) {
		shares, err := shamir.Split(secret, 3, shamir.WithTotalShares(5))
		require.NoError(t, err)
		require.Len(t, shares, 5)

		for j, s := range shares {
			require.Len(t, s, 1+len(secret))
			require.Equal(t, byte(j+1), s.X())
			require.Equal(t, len(secret), s.SecretLen())
		}
	})

	t.Run("defaults to threshold shares", func(t *testing.T) {
		shares, err := shamir.Split(secret, 4)
		require.NoError(t, err)
		require.Len(t, shares, 4)
	})

	t.Run("empty secret", func(t *testing.T) {
		shares, err := shamir.Split(nil, 2, shamir.WithTotalShares(3))
		require.NoError(t, err)
		require.Len(t, shares, 3)

		for _, s := range shares {
			require.Equal(t, 0, s.SecretLen())
		}

		got, err := shamir.Interpolate(shares[1:])
		require.NoError(t, err)
		require.Empty(t, got)
	})

	t.Run("zero entropy gives constant polynomials", func(t *testing.T) {
		shares, err := shamir.Split([]byte{0x00}, 2, shamir.WithTotalShares(2), shamir.WithEntropy(entropy.Zero))
		require.NoError(t, err)
		require.Equal(t, []shamir.Share{{1, 0x00}, {2, 0x00}}, shares)

		got, found, err := shamir.Combine([]shamir.Share{{1, 0x00}, {2, 0x00}})
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, []byte{0x00}, got)
	})

	t.Run("seeded entropy is reproducible", func(t *testing.T) {
		a, err := shamir.Split(secret, 3, shamir.WithTotalShares(4), shamir.WithEntropy(seeded(t, 7)))
		require.NoError(t, err)

		b, err := shamir.Split(secret, 3, shamir.WithTotalShares(4), shamir.WithEntropy(seeded(t, 7)))
		require.NoError(t, err)
		require.Equal(t, a, b)

		c, err := shamir.Split(secret, 3, shamir.WithTotalShares(4), shamir.WithEntropy(seeded(t, 8)))
		require.NoError(t, err)
		require.NotEqual(t, a, c)
	})

	t.Run("entropy failure", func(t *testing.T) {
		shares, err := shamir.Split(secret, 2, shamir.WithEntropy(failingReader{}))
		require.ErrorIs(t, err, shamir.ErrEntropy)
		require.Nil(t, shares)
	})
}

func TestSplitValidation(t *testing.T) {
	secret := []byte("s")

	tests := []struct {
		name      string
		threshold int
		total     int
		err       error
	}{
		{name: "threshold of one", threshold: 1, total: 3, err: shamir.ErrInvalidThreshold},
		{name: "threshold of zero", threshold: 0, total: 3, err: shamir.ErrInvalidThreshold},
		{name: "fewer shares than threshold", threshold: 5, total: 3, err: shamir.ErrInsufficientShares},
		{name: "too many shares", threshold: 2, total: 256, err: shamir.ErrTooManyShares},
		{name: "maximum shares", threshold: 2, total: 255},
		{name: "maximum threshold", threshold: 255, total: 255},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			shares, err := shamir.Split(secret, tc.threshold, shamir.WithTotalShares(tc.total))
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				require.Nil(t, shares)

				return
			}

			require.NoError(t, err)
			require.Len(t, shares, tc.total)
		})
	}
}

func TestSplitInput(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		shares, err := shamir.SplitInput(shamir.Text("héllo"), 2, shamir.WithTotalShares(3))
		require.NoError(t, err)

		got, err := shamir.Interpolate(shares[:2])
		require.NoError(t, err)
		require.Equal(t, []byte("héllo"), got)
	})

	t.Run("raw bytes", func(t *testing.T) {
		shares, err := shamir.SplitInput(shamir.RawBytes{0, 1, 255}, 2)
		require.NoError(t, err)

		got, err := shamir.Interpolate(shares)
		require.NoError(t, err)
		require.Equal(t, []byte{0, 1, 255}, got)
	})

	t.Run("character codes", func(t *testing.T) {
		shares, err := shamir.SplitInput(shamir.Codes{104, 105, 0, 255}, 2)
		require.NoError(t, err)

		got, err := shamir.Interpolate(shares)
		require.NoError(t, err)
		require.Equal(t, []byte{104, 105, 0, 255}, got)
	})

	t.Run("character code out of range", func(t *testing.T) {
		_, err := shamir.SplitInput(shamir.Codes{104, 256, 105}, 2)
		require.ErrorIs(t, err, shamir.ErrInvalidByte)
		require.Contains(t, err.Error(), "index 1")

		_, err = shamir.SplitInput(shamir.Codes{-1}, 2)
		require.ErrorIs(t, err, shamir.ErrInvalidByte)
		require.Contains(t, err.Error(), "index 0")
	})

	t.Run("nil input", func(t *testing.T) {
		_, err := shamir.SplitInput(nil, 2)
		require.ErrorIs(t, err, shamir.ErrInvalidByte)
	})
}

func TestRoundTrip(t *testing.T) {
	secret := make([]byte, 24)
	_, err := rand.Read(secret)
	require.NoError(t, err)

	for _, p := range []struct{ k, n int }{{2, 2}, {2, 5}, {3, 5}, {5, 8}, {4, 10}, {7, 7}} {
		shares, err := shamir.Split(secret, p.k, shamir.WithTotalShares(p.n))
		require.NoError(t, err)

		it := combination.New(p.n, p.k)

		for idx, ok := it.Next(); ok; idx, ok = it.Next() {
			got, err := shamir.Interpolate(subsetOf(shares, idx))
			require.NoError(t, err)
			require.Equal(t, secret, got, "k=%d n=%d subset=%v", p.k, p.n, idx)
		}
	}

	t.Run("all 255 shares", func(t *testing.T) {
		shares, err := shamir.Split(secret, 255, shamir.WithTotalShares(255))
		require.NoError(t, err)

		got, err := shamir.Interpolate(shares)
		require.NoError(t, err)
		require.Equal(t, secret, got)
	})

	t.Run("any pair out of 255", func(t *testing.T) {
		shares, err := shamir.Split(secret, 2, shamir.WithTotalShares(255))
		require.NoError(t, err)

		for _, pair := range [][]int{{0, 1}, {0, 254}, {100, 200}, {253, 254}} {
			got, err := shamir.Interpolate(subsetOf(shares, pair))
			require.NoError(t, err)
			require.Equal(t, secret, got)
		}
	})

	t.Run("more shares than threshold", func(t *testing.T) {
		shares, err := shamir.Split(secret, 3, shamir.WithTotalShares(6))
		require.NoError(t, err)

		got, err := shamir.Interpolate(shares)
		require.NoError(t, err)
		require.Equal(t, secret, got)
	})
}

func TestBelowThreshold(t *testing.T) {
	const trials = 200

	var matches int

	for i := 0; i < trials; i++ {
		secret := make([]byte, 16)
		_, err := rand.Read(secret)
		require.NoError(t, err)

		shares, err := shamir.Split(secret, 3, shamir.WithTotalShares(5))
		require.NoError(t, err)

		got, err := shamir.Interpolate(shares[1:3])
		require.NoError(t, err)

		if bytes.Equal(secret, got) {
			matches++
		}
	}

	require.Zero(t, matches)
}

func TestInterpolateValidation(t *testing.T) {
	t.Run("no shares", func(t *testing.T) {
		_, err := shamir.Interpolate(nil)
		require.ErrorIs(t, err, shamir.ErrNoShares)
	})

	t.Run("unequal lengths", func(t *testing.T) {
		_, err := shamir.Interpolate([]shamir.Share{{1, 2, 3}, {2, 3}})
		require.ErrorIs(t, err, shamir.ErrUnequalKeyLengths)
	})

	t.Run("duplicate x-coordinate", func(t *testing.T) {
		_, err := shamir.Interpolate([]shamir.Share{{3, 10}, {3, 20}})
		require.ErrorIs(t, err, shamir.ErrDuplicateXCoordinate)
	})

	t.Run("zero x-coordinate", func(t *testing.T) {
		_, err := shamir.Interpolate([]shamir.Share{{0, 10}, {3, 20}})
		require.ErrorIs(t, err, shamir.ErrInvalidShare)
	})

	t.Run("empty share", func(t *testing.T) {
		_, err := shamir.Interpolate([]shamir.Share{{}, {3, 20}})
		require.ErrorIs(t, err, shamir.ErrInvalidShare)
	})
}

func TestCombine(t *testing.T) {
	secret := []byte("correct horse battery staple")

	shares, err := shamir.Split(secret, 2, shamir.WithTotalShares(5), shamir.WithEntropy(seeded(t, 1)))
	require.NoError(t, err)

	// only shares[1] and shares[3] stay intact
	corrupted := make([]shamir.Share, len(shares))
	for i, s := range shares {
		corrupted[i] = append(shamir.Share(nil), s...)

		if i != 1 && i != 3 {
			for j := 1; j < len(s); j++ {
				corrupted[i][j] ^= 0xA5
			}
		}
	}

	isSecret := func(candidate []byte) bool {
		return bytes.Equal(candidate, secret)
	}

	t.Run("search finds the intact pair", func(t *testing.T) {
		got, found, err := shamir.Combine(corrupted, shamir.WithThreshold(2), shamir.WithPredicate(isSecret))
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, secret, got)
	})

	t.Run("search with a digest predicate", func(t *testing.T) {
		digest := sha256.Sum256(secret)

		got, found, err := shamir.Combine(corrupted, shamir.WithThreshold(2),
			shamir.WithPredicate(shamir.SHA256Predicate(digest[:])))
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, secret, got)
	})

	t.Run("search exhausted", func(t *testing.T) {
		got, found, err := shamir.Combine(corrupted, shamir.WithThreshold(2),
			shamir.WithPredicate(func([]byte) bool { return false }))
		require.NoError(t, err)
		require.False(t, found)
		require.Nil(t, got)
	})

	t.Run("no valid subset when only one intact share is given", func(t *testing.T) {
		given := []shamir.Share{corrupted[0], corrupted[1], corrupted[2]}

		got, found, err := shamir.Combine(given, shamir.WithThreshold(2), shamir.WithPredicate(isSecret))
		require.NoError(t, err)
		require.False(t, found)
		require.Nil(t, got)
	})

	t.Run("default predicate returns the first subset", func(t *testing.T) {
		got, found, err := shamir.Combine(shares, shamir.WithThreshold(2))
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, secret, got)
	})

	t.Run("threshold above share count is clamped", func(t *testing.T) {
		got, found, err := shamir.Combine(shares[:2], shamir.WithThreshold(9))
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, secret, got)
	})

	t.Run("all shares judged by the predicate", func(t *testing.T) {
		got, found, err := shamir.Combine(corrupted[1:4:4], shamir.WithPredicate(isSecret))
		require.NoError(t, err)
		require.False(t, found)
		require.Nil(t, got)
	})

	t.Run("search skips subsets with duplicate x-coordinates", func(t *testing.T) {
		dup := []shamir.Share{shares[0], shares[0], shares[2]}

		got, found, err := shamir.Combine(dup, shamir.WithThreshold(2), shamir.WithPredicate(isSecret))
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, secret, got)
	})

	t.Run("duplicate x-coordinate without search", func(t *testing.T) {
		_, _, err := shamir.Combine([]shamir.Share{{3, 1}, {3, 2}})
		require.ErrorIs(t, err, shamir.ErrDuplicateXCoordinate)
	})

	t.Run("no shares", func(t *testing.T) {
		_, _, err := shamir.Combine(nil, shamir.WithThreshold(2))
		require.ErrorIs(t, err, shamir.ErrNoShares)
	})

	t.Run("unequal lengths are rejected before searching", func(t *testing.T) {
		_, _, err := shamir.Combine([]shamir.Share{{1, 1}, {2, 2}, {3, 3, 3}}, shamir.WithThreshold(2))
		require.ErrorIs(t, err, shamir.ErrUnequalKeyLengths)
	})

	t.Run("non-positive threshold", func(t *testing.T) {
		_, _, err := shamir.Combine(shares, shamir.WithThreshold(0))
		require.ErrorIs(t, err, shamir.ErrInvalidThreshold)
	})
}
