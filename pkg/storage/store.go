/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package storage defines the key-value persistence used for share sets.
package storage

import "errors"

// Provider represents a storage provider.
type Provider interface {
	// CreateStore creates a new store with the given name.
	CreateStore(name string) error

	// OpenStore opens an existing store and returns it.
	OpenStore(name string) (Store, error)

	// CloseStore closes the store with the given name.
	CloseStore(name string) error

	// Close closes all stores created under this store provider.
	Close() error
}

// Store represents a storage database.
type Store interface {
	// Put stores the key-record pair, replacing any previous record.
	Put(k string, v []byte) error

	// Get fetches the record associated with the given key.
	Get(k string) ([]byte, error)

	// Delete removes the record associated with the given key.
	Delete(k string) error
}

// CreateOrOpen creates the store name if it doesn't exist yet and opens it.
func CreateOrOpen(p Provider, name string) (Store, error) {
	if err := p.CreateStore(name); err != nil && !errors.Is(err, ErrDuplicateStore) {
		return nil, err
	}

	return p.OpenStore(name)
}
