/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package storagetest holds the behaviour every storage.Provider implementation must share.
package storagetest

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/trustbloc/edge-sss/pkg/storage"
)

// TestAll runs every common test against the provider returned by newProvider.
// newProvider is called once per test so each test starts from an empty provider.
func TestAll(t *testing.T, newProvider func(t *testing.T) storage.Provider) {
	t.Helper()

	t.Run("create and open", func(t *testing.T) {
		TestProviderCreateOpen(t, newProvider(t))
	})
	t.Run("put get delete", func(t *testing.T) {
		TestStorePutGetDelete(t, newProvider(t))
	})
	t.Run("binary values", func(t *testing.T) {
		TestStoreBinaryValues(t, newProvider(t))
	})
	t.Run("stores are isolated", func(t *testing.T) {
		TestStoreIsolation(t, newProvider(t))
	})
}

// TestProviderCreateOpen checks store creation, duplicate detection and closing.
func TestProviderCreateOpen(t *testing.T, provider storage.Provider) {
	const name = "storagetest"

	_, err := provider.OpenStore("missing")
	require.True(t, errors.Is(err, storage.ErrStoreNotFound), "unexpected error: %v", err)

	require.NoError(t, provider.CreateStore(name))
	require.True(t, errors.Is(provider.CreateStore(name), storage.ErrDuplicateStore))

	store, err := provider.OpenStore(name)
	require.NoError(t, err)
	require.NotNil(t, store)

	store, err = storage.CreateOrOpen(provider, name)
	require.NoError(t, err)
	require.NotNil(t, store)

	require.NoError(t, provider.CloseStore(name))
	require.True(t, errors.Is(provider.CloseStore(name), storage.ErrStoreNotFound))

	require.NoError(t, provider.Close())
}

// TestStorePutGetDelete checks the basic record lifecycle.
func TestStorePutGetDelete(t *testing.T, provider storage.Provider) {
	store, err := storage.CreateOrOpen(provider, "lifecycle")
	require.NoError(t, err)

	require.True(t, errors.Is(store.Put("", []byte("v")), storage.ErrKeyRequired))

	_, err = store.Get("")
	require.True(t, errors.Is(err, storage.ErrKeyRequired))

	_, err = store.Get("k1")
	require.True(t, errors.Is(err, storage.ErrValueNotFound), "unexpected error: %v", err)

	require.NoError(t, store.Put("k1", []byte("first")))

	v, err := store.Get("k1")
	require.NoError(t, err)
	require.Equal(t, []byte("first"), v)

	require.NoError(t, store.Put("k1", []byte("second")))

	v, err = store.Get("k1")
	require.NoError(t, err)
	require.Equal(t, []byte("second"), v)

	require.NoError(t, store.Delete("k1"))

	_, err = store.Get("k1")
	require.True(t, errors.Is(err, storage.ErrValueNotFound), "unexpected error: %v", err)

	require.True(t, errors.Is(store.Delete("k1"), storage.ErrValueNotFound))

	require.NoError(t, provider.Close())
}

// TestStoreBinaryValues checks that values are stored byte for byte, including values that look like JSON.
func TestStoreBinaryValues(t *testing.T, provider storage.Provider) {
	store, err := storage.CreateOrOpen(provider, "binary")
	require.NoError(t, err)

	values := map[string][]byte{
		"zeros":  {0, 0, 0},
		"high":   {0xff, 0xfe, 0x80, 0x00, 0x7f},
		"json":   []byte(`{"x":1}`),
		"key/17": []byte("share"),
	}

	for k, v := range values {
		require.NoError(t, store.Put(k, v))
	}

	for k, want := range values {
		got, err := store.Get(k)
		require.NoError(t, err, k)
		require.Equal(t, want, got, k)
	}

	require.NoError(t, provider.Close())
}

// TestStoreIsolation checks that records in one store are invisible in another.
func TestStoreIsolation(t *testing.T, provider storage.Provider) {
	first, err := storage.CreateOrOpen(provider, "first")
	require.NoError(t, err)

	second, err := storage.CreateOrOpen(provider, "second")
	require.NoError(t, err)

	require.NoError(t, first.Put("k", []byte("v")))

	_, err = second.Get("k")
	require.True(t, errors.Is(err, storage.ErrValueNotFound), "unexpected error: %v", err)

	require.NoError(t, provider.Close())
}
