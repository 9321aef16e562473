// Package memstore is an in-process emulation of a remote document
// database, used in place of a managed backend during development.
//
// A Store holds named collections of schemaless documents. Reads return
// copies, so callers can never mutate stored state through a result.
// Every operation optionally sleeps for a configured latency to mimic
// network round-trips; once an operation has started its delay it always
// completes; the context is accepted for signature compatibility with
// the real drivers but is not consulted mid-delay.
//
// The store is a plain value handed to whoever needs it. There is no
// package-level instance; tests get isolation by constructing fresh
// stores.
package memstore

import (
	"context"
	"sync"
	"time"

	"github.com/rs/xid"

	"github.com/sakif/wellverse/internal/apperror"
)

// Document is a single record. The "id" field is always present on
// documents returned by the store.
type Document map[string]any

// Store holds named collections of documents. Safe for concurrent use;
// mutations are applied atomically under an internal lock.
type Store struct {
	mu          sync.RWMutex
	collections map[string][]Document // insertion order preserved per collection
	latency     time.Duration
	now         func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithLatency makes every operation sleep for d before touching the
// store, emulating network I/O. Zero (the default) disables the delay.
func WithLatency(d time.Duration) Option {
	return func(s *Store) { s.latency = d }
}

// WithClock overrides the timestamp source used for auto-assigned
// createdAt fields. Tests use this for deterministic ordering.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		collections: make(map[string][]Document),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) delay() {
	if s.latency > 0 {
		time.Sleep(s.latency)
	}
}

// GetAll returns every document in the named collection, in insertion
// order. An unknown collection is an empty result, not an error.
func (s *Store) GetAll(ctx context.Context, collection string) ([]Document, error) {
	s.delay()
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := s.collections[collection]
	out := make([]Document, 0, len(docs))
	for _, d := range docs {
		out = append(out, copyDoc(d))
	}
	return out, nil
}

// GetByID returns the document with the given id, or apperror.NotFound.
func (s *Store) GetByID(ctx context.Context, collection, id string) (Document, error) {
	s.delay()
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, d := range s.collections[collection] {
		if d["id"] == id {
			return copyDoc(d), nil
		}
	}
	return nil, apperror.NotFound(collection, id)
}

// Create appends a new document with a generated unique id. If the data
// carries no createdAt, one is stamped from the store's clock. The stored
// document (id included) is returned.
func (s *Store) Create(ctx context.Context, collection string, data Document) (Document, error) {
	s.delay()
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := copyDoc(data)
	doc["id"] = xid.New().String()
	if _, ok := doc["createdAt"]; !ok {
		doc["createdAt"] = s.now()
	}
	s.collections[collection] = append(s.collections[collection], doc)
	return copyDoc(doc), nil
}

// Set upserts: an existing document is replaced wholesale (id preserved),
// a missing one is inserted with the given id.
func (s *Store) Set(ctx context.Context, collection, id string, data Document) error {
	s.delay()
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := copyDoc(data)
	doc["id"] = id
	docs := s.collections[collection]
	for i, d := range docs {
		if d["id"] == id {
			docs[i] = doc
			return nil
		}
	}
	s.collections[collection] = append(docs, doc)
	return nil
}

// Update shallow-merges partial into the existing document. A missing id
// is apperror.NotFound and leaves the collection untouched. The id field
// cannot be changed through a merge.
func (s *Store) Update(ctx context.Context, collection, id string, partial Document) error {
	s.delay()
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, d := range s.collections[collection] {
		if d["id"] == id {
			for k, v := range partial {
				if k == "id" {
					continue
				}
				d[k] = v
			}
			return nil
		}
	}
	return apperror.NotFound(collection, id)
}

func copyDoc(d Document) Document {
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}
