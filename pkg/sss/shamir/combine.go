/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package shamir

import (
	"fmt"

	"github.com/trustbloc/edge-sss/pkg/sss/combination"
	"github.com/trustbloc/edge-sss/pkg/sss/gf256"
)

// Interpolate recovers the secret from exactly the given shares, all of which are used.
// It does not check that the result is the right secret: too few or corrupt shares
// silently produce a wrong one.
func Interpolate(shares []Share) ([]byte, error) {
	if err := validateShares(shares); err != nil {
		return nil, err
	}

	basis, err := lagrangeBasisAtZero(shares)
	if err != nil {
		return nil, err
	}

	secret := make([]byte, shares[0].SecretLen())

	for i := range secret {
		var acc byte

		for t, s := range shares {
			acc = gf256.Add(acc, gf256.Mul(s.Y(i), basis[t]))
		}

		secret[i] = acc
	}

	return secret, nil
}

// Combine recovers the secret from shares.
//
// With the default threshold, every share is used and the predicate only judges that one
// candidate. With WithThreshold(k) for k below len(shares), the size-k subsets are tried
// in lexicographic order and the first candidate accepted by the predicate is returned.
// A threshold above len(shares) is clamped. found is false, with a nil error, when no
// candidate satisfies the predicate.
func Combine(shares []Share, opts ...Option) (secret []byte, found bool, err error) {
	cfg := newConfig(len(shares), opts)

	if err := validateShares(shares); err != nil {
		return nil, false, err
	}

	k := cfg.Threshold
	if k > len(shares) {
		k = len(shares)
	}

	if k < 1 {
		return nil, false, fmt.Errorf("%w: got %d", ErrInvalidThreshold, k)
	}

	if k == len(shares) {
		candidate, err := Interpolate(shares)
		if err != nil {
			return nil, false, err
		}

		if !cfg.Predicate(candidate) {
			return nil, false, nil
		}

		return candidate, true, nil
	}

	logger.Debugf("searching %s combinations of %d shares for threshold %d",
		combination.Count(len(shares), k), len(shares), k)

	var result []byte

	_, found = combination.SuchThat(func(subset []Share) bool {
		candidate, err := Interpolate(subset)
		if err != nil {
			logger.Debugf("skipping share subset: %s", err)

			return false
		}

		if !cfg.Predicate(candidate) {
			return false
		}

		result = candidate

		return true
	}, shares, k)

	if !found {
		logger.Infof("no combination of %d out of %d shares satisfied the predicate", k, len(shares))

		return nil, false, nil
	}

	return result, true, nil
}

func validateShares(shares []Share) error {
	if len(shares) == 0 {
		return ErrNoShares
	}

	for i, s := range shares {
		if err := s.validate(); err != nil {
			return fmt.Errorf("share %d: %w", i, err)
		}

		if len(s) != len(shares[0]) {
			return fmt.Errorf("%w: share %d has length %d, share 0 has length %d",
				ErrUnequalKeyLengths, i, len(s), len(shares[0]))
		}
	}

	return nil
}

// lagrangeBasisAtZero returns l_t(0) = prod_{u != t} (0 - x_u) / (x_t - x_u) for every share t.
func lagrangeBasisAtZero(shares []Share) ([]byte, error) {
	var seen [256]bool

	for _, s := range shares {
		if seen[s.X()] {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateXCoordinate, s.X())
		}

		seen[s.X()] = true
	}

	basis := make([]byte, len(shares))

	for t, st := range shares {
		num, den := byte(1), byte(1)

		for u, su := range shares {
			if u == t {
				continue
			}

			num = gf256.Mul(num, gf256.Sub(0, su.X()))
			den = gf256.Mul(den, gf256.Sub(st.X(), su.X()))
		}

		l, err := gf256.Div(num, den)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateXCoordinate, err)
		}

		basis[t] = l
	}

	return basis, nil
}
