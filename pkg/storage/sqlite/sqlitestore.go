/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package sqlite is a storage.Provider backed by an embedded SQLite database file.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"sync"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/trustbloc/edge-sss/pkg/storage"
)

// InMemory is the path of a private, non-persistent database.
const InMemory = ":memory:"

var errInvalidStoreName = errors.New("store name may only contain letters, digits and underscores")

// nolint:gochecknoglobals // table names are interpolated into statements
var validName = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// Option configures the SQLite provider.
type Option func(opts *Provider)

// WithDBPrefix option is for adding prefix to table names.
func WithDBPrefix(dbPrefix string) Option {
	return func(opts *Provider) {
		opts.dbPrefix = dbPrefix
	}
}

// Provider keeps each store in its own table of one SQLite database.
type Provider struct {
	db       *sql.DB
	dbs      map[string]*store
	dbPrefix string
	mux      sync.RWMutex
}

type store struct {
	db        *sql.DB
	tableName string
}

// NewProvider opens (creating if needed) the database at path.
func NewProvider(path string, opts ...Option) (*Provider, error) {
	if path == "" {
		return nil, errors.New("database path can't be blank")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database %s: %w", path, err)
	}

	// every connection to :memory: would otherwise see its own empty database
	if path == InMemory {
		db.SetMaxOpenConns(1)
	}

	if err = db.Ping(); err != nil {
		_ = db.Close() // nolint:errcheck // ping error is more useful

		return nil, fmt.Errorf("failed to open sqlite database %s: %w", path, err)
	}

	p := &Provider{db: db, dbs: map[string]*store{}}

	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// CreateStore creates the table for name.
func (p *Provider) CreateStore(name string) error {
	tableName, err := p.tableName(name)
	if err != nil {
		return err
	}

	p.mux.Lock()
	defer p.mux.Unlock()

	exists, err := p.tableExists(tableName)
	if err != nil {
		return err
	}

	if exists {
		return storage.ErrDuplicateStore
	}

	_, err = p.db.Exec(`CREATE TABLE "` + tableName + `" ("key" TEXT NOT NULL PRIMARY KEY, "value" BLOB NOT NULL)`)
	if err != nil {
		return fmt.Errorf("failed to create table %s: %w", tableName, err)
	}

	return nil
}

// OpenStore opens an existing store with the given name and returns it.
func (p *Provider) OpenStore(name string) (storage.Store, error) {
	tableName, err := p.tableName(name)
	if err != nil {
		return nil, err
	}

	p.mux.Lock()
	defer p.mux.Unlock()

	if s, ok := p.dbs[tableName]; ok {
		return s, nil
	}

	exists, err := p.tableExists(tableName)
	if err != nil {
		return nil, err
	}

	if !exists {
		return nil, storage.ErrStoreNotFound
	}

	s := &store{db: p.db, tableName: tableName}
	p.dbs[tableName] = s

	return s, nil
}

// CloseStore forgets a previously opened store.
func (p *Provider) CloseStore(name string) error {
	tableName, err := p.tableName(name)
	if err != nil {
		return err
	}

	p.mux.Lock()
	defer p.mux.Unlock()

	if _, ok := p.dbs[tableName]; !ok {
		return storage.ErrStoreNotFound
	}

	delete(p.dbs, tableName)

	return nil
}

// Close closes the database.
func (p *Provider) Close() error {
	p.mux.Lock()
	defer p.mux.Unlock()

	p.dbs = map[string]*store{}

	return p.db.Close()
}

func (p *Provider) tableName(name string) (string, error) {
	if name == "" {
		return "", storage.ErrStoreNameRequired
	}

	if p.dbPrefix != "" {
		name = p.dbPrefix + "_" + name
	}

	if !validName.MatchString(name) {
		return "", fmt.Errorf("%s: %w", name, errInvalidStoreName)
	}

	return name, nil
}

func (p *Provider) tableExists(tableName string) (bool, error) {
	var count int

	err := p.db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, tableName).
		Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to look up table %s: %w", tableName, err)
	}

	return count > 0, nil
}

func (s *store) Put(k string, v []byte) error {
	if k == "" {
		return storage.ErrKeyRequired
	}

	if v == nil {
		v = []byte{}
	}

	//nolint: gosec // table name is validated
	_, err := s.db.Exec(`INSERT INTO "`+s.tableName+`" ("key", "value") VALUES (?, ?) `+
		`ON CONFLICT("key") DO UPDATE SET "value" = excluded."value"`, k, v)
	if err != nil {
		return fmt.Errorf("failed to put %s into %s: %w", k, s.tableName, err)
	}

	return nil
}

func (s *store) Get(k string) ([]byte, error) {
	if k == "" {
		return nil, storage.ErrKeyRequired
	}

	var value []byte

	//nolint: gosec // table name is validated
	err := s.db.QueryRow(`SELECT "value" FROM "`+s.tableName+`" WHERE "key" = ?`, k).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrValueNotFound
		}

		return nil, fmt.Errorf("failed to get %s from %s: %w", k, s.tableName, err)
	}

	if value == nil {
		value = []byte{}
	}

	return value, nil
}

func (s *store) Delete(k string) error {
	if k == "" {
		return storage.ErrKeyRequired
	}

	//nolint: gosec // table name is validated
	result, err := s.db.Exec(`DELETE FROM "`+s.tableName+`" WHERE "key" = ?`, k)
	if err != nil {
		return fmt.Errorf("failed to delete %s from %s: %w", k, s.tableName, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete %s from %s: %w", k, s.tableName, err)
	}

	if rows == 0 {
		return storage.ErrValueNotFound
	}

	return nil
}
