/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package combination_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/trustbloc/edge-sss/pkg/sss/combination"
)

func collect(it *combination.Iterator) [][]int {
	var all [][]int

	for idx, ok := it.Next(); ok; idx, ok = it.Next() {
		c := make([]int, len(idx))
		copy(c, idx)
		all = append(all, c)
	}

	return all
}

func TestIterator(t *testing.T) {
	t.Run("lexicographic order", func(t *testing.T) {
		got := collect(combination.New(4, 2))
		require.Equal(t, [][]int{
			{0, 1}, {0, 2}, {0, 3},
			{1, 2}, {1, 3},
			{2, 3},
		}, got)
	})

	t.Run("size matches binomial coefficient", func(t *testing.T) {
		for n := 0; n <= 10; n++ {
			for k := 0; k <= n; k++ {
				got := collect(combination.New(n, k))
				require.Equal(t, combination.Count(n, k).Int64(), int64(len(got)), "n=%d k=%d", n, k)
			}
		}
	})

	t.Run("k equal to n yields one combination", func(t *testing.T) {
		require.Equal(t, [][]int{{0, 1, 2}}, collect(combination.New(3, 3)))
	})

	t.Run("k of zero yields the empty combination", func(t *testing.T) {
		require.Equal(t, [][]int{{}}, collect(combination.New(3, 0)))
	})

	t.Run("k out of range yields nothing", func(t *testing.T) {
		require.Empty(t, collect(combination.New(2, 3)))
		require.Empty(t, collect(combination.New(2, -1)))
	})

	t.Run("reset restarts the sequence", func(t *testing.T) {
		it := combination.New(5, 3)
		first := collect(it)

		_, ok := it.Next()
		require.False(t, ok)

		it.Reset()
		require.Equal(t, first, collect(it))
	})
}

func TestSuchThat(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}

	t.Run("returns first accepted subset", func(t *testing.T) {
		var calls int

		subset, ok := combination.SuchThat(func(s []string) bool {
			calls++

			return s[0] == "b" && s[1] == "d"
		}, items, 2)
		require.True(t, ok)
		require.Equal(t, []string{"b", "d"}, subset)
		// {a,b} {a,c} {a,d} {a,e} {b,c} {b,d}
		require.Equal(t, 6, calls)
	})

	t.Run("exhaustion", func(t *testing.T) {
		var calls int

		subset, ok := combination.SuchThat(func([]string) bool {
			calls++

			return false
		}, items, 3)
		require.False(t, ok)
		require.Nil(t, subset)
		require.Equal(t, 10, calls)
	})

	t.Run("returned subset is not aliased", func(t *testing.T) {
		var last []string

		subset, ok := combination.SuchThat(func(s []string) bool {
			last = s

			return s[0] == "a"
		}, items, 2)
		require.True(t, ok)

		last[0] = "z"
		require.Equal(t, []string{"a", "b"}, subset)
	})
}

func TestCount(t *testing.T) {
	require.Equal(t, int64(10), combination.Count(5, 2).Int64())
	require.Equal(t, int64(1), combination.Count(5, 0).Int64())
	require.Equal(t, int64(0), combination.Count(2, 5).Int64())
	require.Equal(t, 251, combination.Count(255, 127).BitLen())
}
