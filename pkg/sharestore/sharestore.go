/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package sharestore persists split secrets as share sets and recovers them later.
//
// A share set is one metadata record stored under its ID plus one record per share stored
// under "<id>/<x>". Shares can be deleted individually; the secret stays recoverable while
// at least threshold of them remain.
package sharestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/trustbloc/edge-sss/pkg/log"
	"github.com/trustbloc/edge-sss/pkg/sss/shamir"
	"github.com/trustbloc/edge-sss/pkg/storage"
)

// StoreName is the name of the store holding share sets.
const StoreName = "sharesets"

var logger = log.New("edge-sss/sharestore")

var (
	// ErrShareSetNotFound is returned when no share set has the given ID.
	ErrShareSetNotFound = errors.New("share set not found")

	// ErrBelowThreshold is returned by Recover when fewer shares than the threshold remain.
	ErrBelowThreshold = errors.New("fewer shares remain than the threshold")

	// ErrShareNotFound is returned by DeleteShare for an unknown x-coordinate.
	ErrShareNotFound = errors.New("share not found")
)

// ShareSet describes a stored split secret.
type ShareSet struct {
	ID        string    `json:"id"`
	Threshold int       `json:"threshold"`
	Total     int       `json:"total"`
	SecretLen int       `json:"secretLength"`
	Xs        []byte    `json:"-"`
	Created   time.Time `json:"created"`

	// Shares holds the shares still present, ordered by x-coordinate. Filled by Load.
	Shares []shamir.Share `json:"-"`
}

// Present returns the x-coordinates of the shares still present.
func (s *ShareSet) Present() []int {
	xs := make([]int, len(s.Shares))
	for i, sh := range s.Shares {
		xs[i] = int(sh.X())
	}

	return xs
}

type record struct {
	Threshold int       `json:"threshold"`
	Total     int       `json:"total"`
	SecretLen int       `json:"secretLength"`
	Xs        []int     `json:"xs"`
	Created   time.Time `json:"created"`
}

// Option configures a Store.
type Option func(s *Store)

// WithClock replaces time.Now for creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithIDGenerator replaces the random UUID share set IDs.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) {
		s.newID = newID
	}
}

// Store keeps share sets in a storage.Store.
type Store struct {
	store storage.Store
	now   func() time.Time
	newID func() string
}

// New opens (creating it if needed) the share set store of provider.
func New(provider storage.Provider, opts ...Option) (*Store, error) {
	store, err := storage.CreateOrOpen(provider, StoreName)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", StoreName, err)
	}

	s := &Store{
		store: store,
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Save stores shares, which must come from one Split with the given threshold, and returns the new set ID.
func (s *Store) Save(shares []shamir.Share, threshold int) (string, error) {
	if threshold < 2 {
		return "", fmt.Errorf("%w: got %d", shamir.ErrInvalidThreshold, threshold)
	}

	if len(shares) < threshold {
		return "", fmt.Errorf("%w: %d shares for threshold %d", shamir.ErrInsufficientShares, len(shares), threshold)
	}

	// Interpolate validates lengths and distinct x-coordinates
	if _, err := shamir.Interpolate(shares); err != nil {
		return "", err
	}

	id := s.newID()

	rec := record{
		Threshold: threshold,
		Total:     len(shares),
		SecretLen: shares[0].SecretLen(),
		Xs:        make([]int, len(shares)),
		Created:   s.now().UTC(),
	}

	for i, sh := range shares {
		rec.Xs[i] = int(sh.X())

		if err := s.store.Put(shareKey(id, sh.X()), sh); err != nil {
			return "", fmt.Errorf("failed to store share %d of set %s: %w", sh.X(), id, err)
		}
	}

	raw, err := json.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("failed to marshal share set %s: %w", id, err)
	}

	if err := s.store.Put(id, raw); err != nil {
		return "", fmt.Errorf("failed to store share set %s: %w", id, err)
	}

	logger.Debugf("saved share set %s: %d shares, threshold %d", id, len(shares), threshold)

	return id, nil
}

// SplitAndSave splits secret into total shares with the given threshold and saves them.
func (s *Store) SplitAndSave(secret []byte, threshold, total int, opts ...shamir.Option) (string, error) {
	shares, err := shamir.Split(secret, threshold, append(opts, shamir.WithTotalShares(total))...)
	if err != nil {
		return "", err
	}

	return s.Save(shares, threshold)
}

// Load returns the share set id with the shares still present.
func (s *Store) Load(id string) (*ShareSet, error) {
	rec, err := s.record(id)
	if err != nil {
		return nil, err
	}

	set := &ShareSet{
		ID:        id,
		Threshold: rec.Threshold,
		Total:     rec.Total,
		SecretLen: rec.SecretLen,
		Created:   rec.Created,
	}

	for _, x := range rec.Xs {
		set.Xs = append(set.Xs, byte(x))

		raw, err := s.store.Get(shareKey(id, byte(x)))
		if errors.Is(err, storage.ErrValueNotFound) {
			continue
		}

		if err != nil {
			return nil, fmt.Errorf("failed to load share %d of set %s: %w", x, id, err)
		}

		set.Shares = append(set.Shares, shamir.Share(raw))
	}

	sort.Slice(set.Shares, func(i, j int) bool { return set.Shares[i].X() < set.Shares[j].X() })

	return set, nil
}

// DeleteShare removes the share with x-coordinate x from set id.
func (s *Store) DeleteShare(id string, x byte) error {
	if _, err := s.record(id); err != nil {
		return err
	}

	err := s.store.Delete(shareKey(id, x))
	if errors.Is(err, storage.ErrValueNotFound) {
		return fmt.Errorf("%w: set %s has no share %d", ErrShareNotFound, id, x)
	}

	if err != nil {
		return fmt.Errorf("failed to delete share %d of set %s: %w", x, id, err)
	}

	logger.Infof("deleted share %d of set %s", x, id)

	return nil
}

// Recover combines the remaining shares of set id. With a nil predicate the first
// threshold shares are used; otherwise subsets are searched until predicate accepts one.
func (s *Store) Recover(id string, predicate shamir.Predicate) ([]byte, bool, error) {
	set, err := s.Load(id)
	if err != nil {
		return nil, false, err
	}

	if len(set.Shares) < set.Threshold {
		return nil, false, fmt.Errorf("%w: %d of %d shares left, threshold %d",
			ErrBelowThreshold, len(set.Shares), set.Total, set.Threshold)
	}

	shares := set.Shares
	if predicate == nil {
		shares = shares[:set.Threshold]
	}

	return shamir.Combine(shares, shamir.WithThreshold(set.Threshold), shamir.WithPredicate(predicate))
}

func (s *Store) record(id string) (*record, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: empty id", ErrShareSetNotFound)
	}

	raw, err := s.store.Get(id)
	if errors.Is(err, storage.ErrValueNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrShareSetNotFound, id)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to load share set %s: %w", id, err)
	}

	var rec record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal share set %s: %w", id, err)
	}

	return &rec, nil
}

func shareKey(id string, x byte) string {
	return id + "/" + strconv.Itoa(int(x))
}
