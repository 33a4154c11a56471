/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package combination enumerates k-element subsets of an ordered collection.
package combination

import "math/big"

// Iterator walks the size-k index subsets of {0, ..., n-1} in lexicographic order,
// starting at {0, 1, ..., k-1}. The rightmost index advances fastest.
type Iterator struct {
	n, k    int
	indices []int
	started bool
	done    bool
}

// New returns an Iterator over the size-k subsets of n items.
// If k is negative or greater than n the iterator yields nothing.
func New(n, k int) *Iterator {
	it := &Iterator{n: n, k: k}
	it.Reset()

	return it
}

// Reset rewinds the iterator to the first combination.
func (it *Iterator) Reset() {
	it.started = false
	it.done = it.k < 0 || it.k > it.n

	if it.done {
		it.indices = nil

		return
	}

	it.indices = make([]int, it.k)
	for i := range it.indices {
		it.indices[i] = i
	}
}

// Next returns the next combination. The returned slice is reused by later calls.
func (it *Iterator) Next() ([]int, bool) {
	if it.done {
		return nil, false
	}

	if !it.started {
		it.started = true

		return it.indices, true
	}

	// find the rightmost index that can still move right
	i := it.k - 1
	for i >= 0 && it.indices[i] == it.n-it.k+i {
		i--
	}

	if i < 0 {
		it.done = true

		return nil, false
	}

	it.indices[i]++

	for j := i + 1; j < it.k; j++ {
		it.indices[j] = it.indices[j-1] + 1
	}

	return it.indices, true
}

// SuchThat returns the first size-k subset of items, in Iterator order, accepted by pred.
// It stops generating combinations at the first success.
func SuchThat[T any](pred func([]T) bool, items []T, k int) ([]T, bool) {
	it := New(len(items), k)
	subset := make([]T, 0, max(k, 0))

	for idx, ok := it.Next(); ok; idx, ok = it.Next() {
		subset = subset[:0]
		for _, i := range idx {
			subset = append(subset, items[i])
		}

		if pred(subset) {
			return append([]T(nil), subset...), true
		}
	}

	return nil, false
}

// Count returns the binomial coefficient C(n, k).
func Count(n, k int) *big.Int {
	if k < 0 || k > n {
		return new(big.Int)
	}

	return new(big.Int).Binomial(int64(n), int64(k))
}
