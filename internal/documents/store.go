// Package documents implements the persistence helper: one JSON document per logical domain,
// stored under a fixed key inside a client namespace.
//
// Reads are forgiving: an absent or malformed document yields the defaults, and fields missing
// from a stored document keep their default values. Writes overwrite the whole document.
package documents

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ErrDocumentNotFound is returned by repositories when no document is stored under a key
var ErrDocumentNotFound = errors.New("document not found")

// Repository is the interface that wraps raw document storage.
type Repository interface {
	// Method Get retrieves the raw body stored for the owner under the key.
	//
	// If nothing is stored, ErrDocumentNotFound is returned together with "nil" value.
	Get(ctx context.Context, owner, key string) ([]byte, error)
	// Method Put stores the body for the owner under the key, replacing any previous body.
	Put(ctx context.Context, owner, key string, body []byte) error
	// Method Delete removes the document. Removing an absent document is not an error.
	Delete(ctx context.Context, owner, key string) error
	// Method DeleteOwner removes every document of the owner.
	DeleteOwner(ctx context.Context, owner string) error
}

// Normalizer is implemented by documents that need fix-ups after decoding,
// e.g. replacing maps decoded from null with empty maps.
type Normalizer interface {
	Normalize()
}

// Store loads and saves typed documents on top of a Repository
type Store struct {
	repo   Repository
	logger *zap.Logger
	locks  *keyedMutex
}

// NewStore creates a new document store
func NewStore(repo Repository, logger *zap.Logger) *Store {
	return &Store{
		repo:   repo,
		logger: logger,
		locks:  newKeyedMutex(),
	}
}

// Load reads the document stored under key and merges it over defaults().
//
// Absent and malformed documents both yield the defaults; the malformed case is logged and never
// surfaces as an error. Only repository failures are returned, so that callers never overwrite a
// document they failed to read.
func Load[T any](ctx context.Context, s *Store, owner, key string, defaults func() T) (T, error) {
	raw, err := s.repo.Get(ctx, owner, key)
	if errors.Is(err, ErrDocumentNotFound) {
		return normalized(defaults()), nil
	}
	if err != nil {
		var zero T
		return zero, fmt.Errorf("failed to load document %s: %w", key, err)
	}

	doc := defaults()
	if err := json.Unmarshal(raw, &doc); err != nil {
		s.logger.Warn("malformed document replaced with defaults",
			zap.String("owner", owner),
			zap.String("key", key),
			zap.Error(err),
		)
		return normalized(defaults()), nil
	}

	return normalized(doc), nil
}

// Update loads the document, applies fn and saves the result.
//
// Updates of the same owner and key are serialized within the process. If fn returns an error
// nothing is saved.
func Update[T any](ctx context.Context, s *Store, owner, key string, defaults func() T, fn func(doc *T) error) (T, error) {
	unlock := s.locks.lock(owner + "\x00" + key)
	defer unlock()

	doc, err := Load(ctx, s, owner, key, defaults)
	if err != nil {
		return doc, err
	}

	if err := fn(&doc); err != nil {
		return doc, err
	}

	if err := s.Save(ctx, owner, key, doc); err != nil {
		return doc, err
	}
	return doc, nil
}

// Save overwrites the document stored under key
func (s *Store) Save(ctx context.Context, owner, key string, doc any) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document %s: %w", key, err)
	}

	if err := s.repo.Put(ctx, owner, key, body); err != nil {
		return fmt.Errorf("failed to save document %s: %w", key, err)
	}
	return nil
}

// Exists reports whether a document is stored under key, regardless of whether it parses
func (s *Store) Exists(ctx context.Context, owner, key string) (bool, error) {
	_, err := s.repo.Get(ctx, owner, key)
	if errors.Is(err, ErrDocumentNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check document %s: %w", key, err)
	}
	return true, nil
}

// Delete removes the document stored under key
func (s *Store) Delete(ctx context.Context, owner, key string) error {
	if err := s.repo.Delete(ctx, owner, key); err != nil {
		return fmt.Errorf("failed to delete document %s: %w", key, err)
	}
	return nil
}

// DeleteAll removes every document of the owner
func (s *Store) DeleteAll(ctx context.Context, owner string) error {
	if err := s.repo.DeleteOwner(ctx, owner); err != nil {
		return fmt.Errorf("failed to delete documents: %w", err)
	}
	return nil
}

func normalized[T any](doc T) T {
	if n, ok := any(&doc).(Normalizer); ok {
		n.Normalize()
	}
	return doc
}
