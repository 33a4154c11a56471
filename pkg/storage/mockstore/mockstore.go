/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mockstore

import (
	"fmt"
	"sync"

	"github.com/trustbloc/edge-sss/pkg/storage"
)

// Provider mock store provider.
type Provider struct {
	Store              *MockStore
	ErrCreateStore     error
	ErrOpenStoreHandle error
	ErrClose           error
	FailNameSpace      string
}

// NewMockStoreProvider new store provider instance.
func NewMockStoreProvider() *Provider {
	return &Provider{Store: &MockStore{
		Store: make(map[string][]byte),
	}}
}

// CreateStore returns ErrCreateStore.
func (p *Provider) CreateStore(name string) error {
	return p.ErrCreateStore
}

// OpenStore returns the shared mock store for every name except FailNameSpace.
func (p *Provider) OpenStore(name string) (storage.Store, error) {
	if name == p.FailNameSpace {
		return nil, fmt.Errorf("failed to open store for name space %s", name)
	}

	return p.Store, p.ErrOpenStoreHandle
}

// Close returns ErrClose.
func (p *Provider) Close() error {
	return p.ErrClose
}

// CloseStore closes store for given name space.
func (p *Provider) CloseStore(name string) error {
	return nil
}

// MockStore represents a mock store.
// ErrGetFor and ErrDeleteFor fail individual keys; the other Err fields fail every call.
type MockStore struct {
	Store       map[string][]byte
	lock        sync.RWMutex
	ErrPut      error
	ErrGet      error
	ErrDelete   error
	ErrGetFor   map[string]error
	ErrPutAfter int
	putCount    int
}

// Put stores the key-value pair. With ErrPutAfter > 0, puts fail with ErrPut once that many succeeded.
func (s *MockStore) Put(k string, v []byte) error {
	if k == "" {
		return storage.ErrKeyRequired
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	if s.ErrPut != nil && s.putCount >= s.ErrPutAfter {
		return s.ErrPut
	}

	s.putCount++
	s.Store[k] = append([]byte(nil), v...)

	return nil
}

// Get fetches the value associated with the given key.
func (s *MockStore) Get(k string) ([]byte, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	if err, ok := s.ErrGetFor[k]; ok {
		return nil, err
	}

	if s.ErrGet != nil {
		return nil, s.ErrGet
	}

	val, ok := s.Store[k]
	if !ok {
		return nil, storage.ErrValueNotFound
	}

	return val, nil
}

// Delete deletes the key-value pair associated with k.
func (s *MockStore) Delete(k string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.ErrDelete != nil {
		return s.ErrDelete
	}

	if _, ok := s.Store[k]; !ok {
		return storage.ErrValueNotFound
	}

	delete(s.Store, k)

	return nil
}
