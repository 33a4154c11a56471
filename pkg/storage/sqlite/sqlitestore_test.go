/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/trustbloc/edge-sss/pkg/storage"
	"github.com/trustbloc/edge-sss/pkg/storage/storagetest"
)

var (
	_ storage.Provider = (*Provider)(nil)
	_ storage.Store    = (*store)(nil)
)

func TestCommon(t *testing.T) {
	storagetest.TestAll(t, func(t *testing.T) storage.Provider {
		prov, err := NewProvider(InMemory)
		require.NoError(t, err)

		return prov
	})
}

func TestNewProvider_BlankPath(t *testing.T) {
	prov, err := NewProvider("")
	require.Nil(t, prov)
	require.Error(t, err)
}

func TestProvider_InvalidStoreName(t *testing.T) {
	prov, err := NewProvider(InMemory, WithDBPrefix("tenant1"))
	require.NoError(t, err)

	defer func() { require.NoError(t, prov.Close()) }()

	require.ErrorIs(t, prov.CreateStore("x\"; DROP TABLE y"), errInvalidStoreName)
	require.ErrorIs(t, prov.CreateStore(""), storage.ErrStoreNameRequired)

	require.NoError(t, prov.CreateStore("sharesets"))

	var count int
	require.NoError(t, prov.db.QueryRow(
		`SELECT COUNT(*) FROM sqlite_master WHERE name = 'tenant1_sharesets'`).Scan(&count))
	require.Equal(t, 1, count)
}

func TestProvider_Persistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sss.db")

	prov, err := NewProvider(path)
	require.NoError(t, err)

	store, err := storage.CreateOrOpen(prov, "sharesets")
	require.NoError(t, err)
	require.NoError(t, store.Put("k", []byte{1, 2, 3}))
	require.NoError(t, prov.Close())

	prov, err = NewProvider(path)
	require.NoError(t, err)

	defer func() { require.NoError(t, prov.Close()) }()

	require.ErrorIs(t, prov.CreateStore("sharesets"), storage.ErrDuplicateStore)

	store, err = prov.OpenStore("sharesets")
	require.NoError(t, err)

	v, err := store.Get("k")
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, v)
}
