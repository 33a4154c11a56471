/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package couchdbstore

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	_ "github.com/go-kivik/couchdb" // The CouchDB driver
	"github.com/go-kivik/kivik"

	"github.com/trustbloc/edge-sss/pkg/log"
	"github.com/trustbloc/edge-sss/pkg/storage"
	"github.com/trustbloc/edge-sss/pkg/utils/retry"
)

const (
	logModuleName = "edge-sss/couchdbstore"

	// CouchDB creates this database once it has finished its own setup.
	usersDB = "_users"
)

var logger = log.New(logModuleName)

// Option configures the couchdb provider.
type Option func(opts *Provider)

// WithDBPrefix option is for adding prefix to db name.
func WithDBPrefix(dbPrefix string) Option {
	return func(opts *Provider) {
		opts.dbPrefix = dbPrefix
	}
}

// WithReadyRetries sets how long NewProvider waits for CouchDB to finish starting.
func WithReadyRetries(retries uint, initialBackoff time.Duration) Option {
	return func(opts *Provider) {
		opts.readyParams = retry.Params{MaxRetries: retries, InitialBackoff: initialBackoff, BackoffFactor: 1.5}
	}
}

// Provider represents a CouchDB implementation of the storage.Provider interface.
type Provider struct {
	couchDBClient *kivik.Client
	dbs           map[string]*CouchDBStore
	dbPrefix      string
	readyParams   retry.Params
	mux           sync.RWMutex
}

// NewProvider instantiates Provider once the CouchDB server at hostURL is ready.
// Example hostURL: admin:password@localhost:5984
func NewProvider(hostURL string, opts ...Option) (*Provider, error) {
	if hostURL == "" {
		return nil, errBlankHost
	}

	client, err := kivik.New("couch", hostURL)
	if err != nil {
		return nil, fmt.Errorf(failToInstantiateKivikClientErrMsg, err)
	}

	p := &Provider{
		couchDBClient: client,
		dbs:           map[string]*CouchDBStore{},
		readyParams:   retry.Params{MaxRetries: 10, InitialBackoff: time.Second, BackoffFactor: 1.5},
	}

	for _, opt := range opts {
		opt(p)
	}

	err = retry.Retry(p.ready, &p.readyParams)
	if err != nil {
		return nil, fmt.Errorf(failToPingCouchDB, err)
	}

	return p, nil
}

func (p *Provider) ready() error {
	exists, err := p.couchDBClient.DBExists(context.Background(), usersDB)
	if err != nil {
		return err
	}

	if !exists {
		return fmt.Errorf("couchDB '%s' DB does not yet exist", usersDB)
	}

	return nil
}

// CreateStore creates a new store with the given name.
func (p *Provider) CreateStore(name string) error {
	if name == "" {
		return storage.ErrStoreNameRequired
	}

	p.mux.Lock()
	defer p.mux.Unlock()

	err := p.couchDBClient.CreateDB(context.Background(), p.dbName(name))
	if err != nil {
		if strings.Contains(err.Error(), duplicateDBErrMsgFromKivik) {
			return storage.ErrDuplicateStore
		}

		return fmt.Errorf(failureDuringCouchDBCreateDBCall, err)
	}

	return nil
}

// OpenStore opens an existing store with the given name and returns it.
func (p *Provider) OpenStore(name string) (storage.Store, error) {
	p.mux.Lock()
	defer p.mux.Unlock()

	name = p.dbName(name)

	if cachedStore, ok := p.dbs[name]; ok {
		return cachedStore, nil
	}

	existsOnServer, err := p.couchDBClient.DBExists(context.Background(), name)
	if err != nil {
		return nil, fmt.Errorf(dbExistsCheckFailure, err)
	}

	if !existsOnServer {
		return nil, storage.ErrStoreNotFound
	}

	db := p.couchDBClient.DB(context.Background(), name)

	// db.Err() won't return an error if the database doesn't exist, hence the need for the explicit DBExists call above
	if dbErr := db.Err(); dbErr != nil {
		return nil, dbErr
	}

	store := &CouchDBStore{db: db}

	p.dbs[name] = store

	return store, nil
}

// CloseStore closes a previously opened store.
func (p *Provider) CloseStore(name string) error {
	p.mux.Lock()
	defer p.mux.Unlock()

	name = p.dbName(name)

	store, exists := p.dbs[name]
	if !exists {
		return storage.ErrStoreNotFound
	}

	delete(p.dbs, name)

	return store.db.Close(context.Background())
}

// Close closes the provider.
func (p *Provider) Close() error {
	p.mux.Lock()
	defer p.mux.Unlock()

	for name, store := range p.dbs {
		if err := store.db.Close(context.Background()); err != nil {
			logger.Warnf("failed to close db %s: %s", name, err)
		}
	}

	p.dbs = make(map[string]*CouchDBStore)

	if err := p.couchDBClient.Close(context.Background()); err != nil {
		return fmt.Errorf(failureWhileClosingKivikClient, err)
	}

	return nil
}

func (p *Provider) dbName(name string) string {
	if p.dbPrefix != "" {
		return p.dbPrefix + "_" + name
	}

	return name
}

// CouchDBStore represents a CouchDB-backed database.
// Values are stored base64 encoded in the "value" field of a document whose ID is the key.
type CouchDBStore struct {
	db *kivik.DB
}

type document struct {
	Rev   string  `json:"_rev,omitempty"`
	Value *string `json:"value"`
}

// Put stores the given key-value pair in the store.
func (c *CouchDBStore) Put(k string, v []byte) error {
	if k == "" {
		return storage.ErrKeyRequired
	}

	doc, err := c.getRawDoc(k)
	if err != nil && !isNotFound(err) {
		return err
	}

	var rev string
	if doc != nil {
		rev = doc.Rev
	}

	if _, err = c.db.Put(context.Background(), k, newDocument(rev, v)); err != nil {
		return fmt.Errorf(failureDuringCouchDBPutCall, err)
	}

	return nil
}

// Get retrieves the value in the store associated with the given key.
func (c *CouchDBStore) Get(k string) ([]byte, error) {
	if k == "" {
		return nil, storage.ErrKeyRequired
	}

	doc, err := c.getRawDoc(k)
	if err != nil {
		return nil, err
	}

	return doc.value()
}

// Delete deletes the key-value pair associated with k.
func (c *CouchDBStore) Delete(k string) error {
	if k == "" {
		return storage.ErrKeyRequired
	}

	doc, err := c.getRawDoc(k)
	if err != nil {
		return err
	}

	if doc.Rev == "" {
		return fmt.Errorf(failureDuringCouchDBDeleteCall, errMissingRevIDField)
	}

	if _, err = c.db.Delete(context.Background(), k, doc.Rev); err != nil {
		return fmt.Errorf(failureDuringCouchDBDeleteCall, err)
	}

	return nil
}

func (c *CouchDBStore) getRawDoc(k string) (*document, error) {
	var doc document

	err := c.db.Get(context.Background(), k).ScanDoc(&doc)
	if err != nil {
		if strings.Contains(err.Error(), docNotFoundErrMsgFromKivik) {
			return nil, fmt.Errorf(getRawDocFailureErrMsg, storage.ErrValueNotFound)
		}

		return nil, fmt.Errorf(getRawDocFailureErrMsg, err)
	}

	return &doc, nil
}

func newDocument(rev string, v []byte) *document {
	encoded := base64.StdEncoding.EncodeToString(v)

	return &document{Rev: rev, Value: &encoded}
}

func (d *document) value() ([]byte, error) {
	if d.Value == nil {
		return nil, errMissingValueField
	}

	v, err := base64.StdEncoding.DecodeString(*d.Value)
	if err != nil {
		return nil, fmt.Errorf(failureWhileDecodingValue, err)
	}

	return v, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, storage.ErrValueNotFound)
}
