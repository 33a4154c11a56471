/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package memstore

import (
	"sync"

	"github.com/trustbloc/edge-sss/pkg/storage"
)

// Provider represents an in-memory implementation of the storage.Provider interface.
type Provider struct {
	dbs map[string]*MemStore
	mux sync.RWMutex
}

// NewProvider instantiates Provider.
func NewProvider() *Provider {
	return &Provider{dbs: make(map[string]*MemStore)}
}

// CreateStore creates a new store with the given name.
func (p *Provider) CreateStore(name string) error {
	if name == "" {
		return storage.ErrStoreNameRequired
	}

	p.mux.Lock()
	defer p.mux.Unlock()

	if _, exists := p.dbs[name]; exists {
		return storage.ErrDuplicateStore
	}

	p.dbs[name] = &MemStore{db: make(map[string][]byte)}

	return nil
}

// OpenStore opens an existing store with the given name and returns it.
func (p *Provider) OpenStore(name string) (storage.Store, error) {
	p.mux.RLock()
	defer p.mux.RUnlock()

	store, exists := p.dbs[name]
	if !exists {
		return nil, storage.ErrStoreNotFound
	}

	return store, nil
}

// CloseStore closes a previously opened store. Its contents are discarded.
func (p *Provider) CloseStore(name string) error {
	p.mux.Lock()
	defer p.mux.Unlock()

	store, exists := p.dbs[name]
	if !exists {
		return storage.ErrStoreNotFound
	}

	delete(p.dbs, name)

	store.close()

	return nil
}

// Close closes the provider.
func (p *Provider) Close() error {
	p.mux.Lock()
	defer p.mux.Unlock()

	for _, memStore := range p.dbs {
		memStore.close()
	}

	p.dbs = make(map[string]*MemStore)

	return nil
}

// MemStore is a simple DB that's stored in memory. Useful for demos or testing. Not designed to be performant.
type MemStore struct {
	db  map[string][]byte
	mux sync.RWMutex
}

// Put stores a copy of v under k.
func (m *MemStore) Put(k string, v []byte) error {
	if k == "" {
		return storage.ErrKeyRequired
	}

	m.mux.Lock()
	defer m.mux.Unlock()

	m.db[k] = append([]byte(nil), v...)

	return nil
}

// Get retrieves a copy of the value in the store associated with the given key.
func (m *MemStore) Get(k string) ([]byte, error) {
	if k == "" {
		return nil, storage.ErrKeyRequired
	}

	m.mux.RLock()
	defer m.mux.RUnlock()

	v, exists := m.db[k]
	if !exists {
		return nil, storage.ErrValueNotFound
	}

	return append([]byte{}, v...), nil
}

// Delete deletes the key-value pair associated with k.
func (m *MemStore) Delete(k string) error {
	if k == "" {
		return storage.ErrKeyRequired
	}

	m.mux.Lock()
	defer m.mux.Unlock()

	if _, exists := m.db[k]; !exists {
		return storage.ErrValueNotFound
	}

	delete(m.db, k)

	return nil
}

func (m *MemStore) close() {
	m.mux.Lock()
	defer m.mux.Unlock()

	m.db = make(map[string][]byte)
}
