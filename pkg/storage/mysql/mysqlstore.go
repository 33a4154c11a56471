/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mysql

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"sync"
	"time"

	// Add as per the documentation - https://github.com/go-sql-driver/mysql
	_ "github.com/go-sql-driver/mysql"

	"github.com/trustbloc/edge-sss/pkg/log"
	"github.com/trustbloc/edge-sss/pkg/storage"
	"github.com/trustbloc/edge-sss/pkg/utils/retry"
)

const defaultPingRetries = 10

var logger = log.New("edge-sss/mysql")

// nolint:gochecknoglobals // table names are interpolated into statements
var validName = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// Option configures the MySQL provider.
type Option func(opts *Provider)

// WithDBPrefix option is for adding prefix to table names.
func WithDBPrefix(dbPrefix string) Option {
	return func(opts *Provider) {
		opts.dbPrefix = dbPrefix
	}
}

// WithPingRetries sets how often the server is pinged before NewProvider gives up.
func WithPingRetries(retries uint, initialBackoff time.Duration) Option {
	return func(opts *Provider) {
		opts.pingParams = retry.Params{MaxRetries: retries, InitialBackoff: initialBackoff, BackoffFactor: 1.5}
	}
}

// Provider represents a MySQL DB implementation of the storage.Provider interface.
// Every store is a key-value table in the database named by the DSN.
type Provider struct {
	db         *sql.DB
	dbs        map[string]*sqlDBStore
	dbPrefix   string
	pingParams retry.Params
	mux        sync.RWMutex
}

type sqlDBStore struct {
	db        *sql.DB
	tableName string
}

// NewProvider instantiates Provider and waits until the server answers.
// Example DSN: root:my-secret-pw@tcp(127.0.0.1:3306)/sss
func NewProvider(dbPath string, opts ...Option) (*Provider, error) {
	if dbPath == "" {
		return nil, errBlankDBPath
	}

	db, err := sql.Open("mysql", dbPath)
	if err != nil {
		return nil, fmt.Errorf(failureWhileOpeningMySQLConnectionErrMsg, err)
	}

	p := &Provider{
		db:         db,
		dbs:        map[string]*sqlDBStore{},
		pingParams: retry.Params{MaxRetries: defaultPingRetries, InitialBackoff: time.Second, BackoffFactor: 1.5},
	}

	for _, opt := range opts {
		opt(p)
	}

	err = retry.Retry(db.Ping, &p.pingParams)
	if err != nil {
		_ = db.Close() // nolint:errcheck // ping error is more useful

		return nil, fmt.Errorf(failureWhilePingingMySQLErrMsg, err)
	}

	logger.Debugf("connected to MySQL")

	return p, nil
}

// CreateStore creates the key-value table for name.
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

	// key has max varchar size it can accommodate as per mysql 8.0 spec
	createTableStmt := "CREATE TABLE IF NOT EXISTS `" + tableName +
		"` (`key` varchar(255) NOT NULL, `value` BLOB, PRIMARY KEY (`key`))"

	if _, err = p.db.Exec(createTableStmt); err != nil {
		return fmt.Errorf(failureWhileCreatingTableErrMsg, tableName, err)
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

	if store, ok := p.dbs[tableName]; ok {
		return store, nil
	}

	exists, err := p.tableExists(tableName)
	if err != nil {
		return nil, err
	}

	if !exists {
		return nil, storage.ErrStoreNotFound
	}

	store := &sqlDBStore{db: p.db, tableName: tableName}

	p.dbs[tableName] = store

	return store, nil
}

// CloseStore forgets a previously opened store. The shared connection stays open.
func (p *Provider) CloseStore(name string) error {
	tableName, err := p.tableName(name)
	if err != nil {
		return err
	}

	p.mux.Lock()
	defer p.mux.Unlock()

	if _, exists := p.dbs[tableName]; !exists {
		return storage.ErrStoreNotFound
	}

	delete(p.dbs, tableName)

	return nil
}

// Close closes the provider and its connection pool.
func (p *Provider) Close() error {
	p.mux.Lock()
	defer p.mux.Unlock()

	p.dbs = make(map[string]*sqlDBStore)

	if err := p.db.Close(); err != nil {
		return fmt.Errorf(failureWhileClosingMySQLConnection, err)
	}

	return nil
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

	err := p.db.QueryRow("SELECT COUNT(*) FROM information_schema.tables "+
		"WHERE table_schema = DATABASE() AND table_name = ?", tableName).Scan(&count)
	if err != nil {
		return false, fmt.Errorf(failureWhileQueryingForTableErrMsg, tableName, err)
	}

	return count > 0, nil
}

// Put stores the key and the value.
func (s *sqlDBStore) Put(k string, v []byte) error {
	if k == "" {
		return storage.ErrKeyRequired
	}

	//nolint: gosec // table name is validated
	_, err := s.db.Exec("INSERT INTO `"+s.tableName+"` VALUES (?, ?) ON DUPLICATE KEY UPDATE value=?", k, v, v)
	if err != nil {
		return fmt.Errorf(failureWhileExecutingInsertStatementErrMsg, s.tableName, err)
	}

	return nil
}

// Get fetches the value based on key.
func (s *sqlDBStore) Get(k string) ([]byte, error) {
	if k == "" {
		return nil, storage.ErrKeyRequired
	}

	var value []byte

	//nolint: gosec // table name is validated
	err := s.db.QueryRow("SELECT `value` FROM `"+s.tableName+"` WHERE `key` = ?", k).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrValueNotFound
		}

		return nil, fmt.Errorf(failureWhileQueryingRowErrMsg, err)
	}

	if value == nil {
		value = []byte{}
	}

	return value, nil
}

// Delete removes the row for key.
func (s *sqlDBStore) Delete(k string) error {
	if k == "" {
		return storage.ErrKeyRequired
	}

	//nolint: gosec // table name is validated
	result, err := s.db.Exec("DELETE FROM `"+s.tableName+"` WHERE `key` = ?", k)
	if err != nil {
		return fmt.Errorf(failureWhileDeleteFromTableErrMsg, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf(failureWhileGettingRowsAffectedErrMsg, err)
	}

	if rows == 0 {
		return storage.ErrValueNotFound
	}

	return nil
}
