package services

import (
	"context"
	"testing"
	"time"

	"github.com/benefitnavigator/backend/internal/documents"
	"go.uber.org/zap"
)

// failingRepository fails every call with the configured error
type failingRepository struct {
	err error
}

func (f *failingRepository) Get(ctx context.Context, owner, key string) ([]byte, error) {
	return nil, f.err
}

func (f *failingRepository) Put(ctx context.Context, owner, key string, body []byte) error {
	return f.err
}

func (f *failingRepository) Delete(ctx context.Context, owner, key string) error {
	return f.err
}

func (f *failingRepository) DeleteOwner(ctx context.Context, owner string) error {
	return f.err
}

// setupTestStore creates a document store over an in-memory repository
func setupTestStore(t *testing.T) (*documents.Store, *documents.MemoryRepository) {
	t.Helper()
	logger, _ := zap.NewDevelopment()
	repo := documents.NewMemoryRepository()
	return documents.NewStore(repo, logger), repo
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

const testClientID = "client-12345678"
