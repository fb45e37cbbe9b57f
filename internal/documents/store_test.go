package documents

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testDoc struct {
	Name   string         `json:"name"`
	Region string         `json:"region"`
	Counts map[string]int `json:"counts"`
}

func (d *testDoc) Normalize() {
	if d.Counts == nil {
		d.Counts = map[string]int{}
	}
}

func defaultTestDoc() testDoc {
	return testDoc{Region: "default-region", Counts: map[string]int{}}
}

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

func setupStore(t *testing.T) (*Store, *MemoryRepository) {
	t.Helper()
	repo := NewMemoryRepository()
	return NewStore(repo, zap.NewNop()), repo
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		stored   *string
		expected testDoc
	}{
		{
			name:     "absent document",
			stored:   nil,
			expected: defaultTestDoc(),
		},
		{
			name:     "malformed json",
			stored:   strPtr(`{"name": "Ali", `),
			expected: defaultTestDoc(),
		},
		{
			name:     "wrong json type",
			stored:   strPtr(`"true"`),
			expected: defaultTestDoc(),
		},
		{
			name:     "field of wrong type",
			stored:   strPtr(`{"name": 42}`),
			expected: defaultTestDoc(),
		},
		{
			name:     "json null",
			stored:   strPtr(`null`),
			expected: defaultTestDoc(),
		},
		{
			name:     "missing fields keep defaults",
			stored:   strPtr(`{"name": "Ali"}`),
			expected: testDoc{Name: "Ali", Region: "default-region", Counts: map[string]int{}},
		},
		{
			name:     "null map normalized",
			stored:   strPtr(`{"name": "Ali", "region": "Toshkent", "counts": null}`),
			expected: testDoc{Name: "Ali", Region: "Toshkent", Counts: map[string]int{}},
		},
		{
			name:     "unknown fields ignored",
			stored:   strPtr(`{"name": "Ali", "legacy": true, "counts": {"a": 1}}`),
			expected: testDoc{Name: "Ali", Region: "default-region", Counts: map[string]int{"a": 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, repo := setupStore(t)
			ctx := context.Background()
			if tt.stored != nil {
				require.NoError(t, repo.Put(ctx, "owner-1", "doc", []byte(*tt.stored)))
			}

			doc, err := Load(ctx, store, "owner-1", "doc", defaultTestDoc)

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, doc)
		})
	}
}

func TestLoad_RepositoryError(t *testing.T) {
	store := NewStore(&failingRepository{err: errors.New("connection refused")}, zap.NewNop())

	_, err := Load(context.Background(), store, "owner-1", "doc", defaultTestDoc)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()
	original := testDoc{Name: "Dilnoza", Region: "Samarqand", Counts: map[string]int{"2026-10-18": 120}}

	require.NoError(t, store.Save(ctx, "owner-1", "doc", original))
	loaded, err := Load(ctx, store, "owner-1", "doc", defaultTestDoc)

	require.NoError(t, err)
	assert.Equal(t, original, loaded)

	// A second round trip is idempotent
	require.NoError(t, store.Save(ctx, "owner-1", "doc", loaded))
	again, err := Load(ctx, store, "owner-1", "doc", defaultTestDoc)
	require.NoError(t, err)
	assert.Equal(t, loaded, again)
}

func TestSave_OwnersAreIsolated(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "owner-1", "doc", testDoc{Name: "first"}))
	require.NoError(t, store.Save(ctx, "owner-2", "doc", testDoc{Name: "second"}))

	first, err := Load(ctx, store, "owner-1", "doc", defaultTestDoc)
	require.NoError(t, err)
	second, err := Load(ctx, store, "owner-2", "doc", defaultTestDoc)
	require.NoError(t, err)

	assert.Equal(t, "first", first.Name)
	assert.Equal(t, "second", second.Name)
}

func TestSave_RepositoryError(t *testing.T) {
	store := NewStore(&failingRepository{err: errors.New("disk full")}, zap.NewNop())

	err := store.Save(context.Background(), "owner-1", "doc", testDoc{})

	assert.Error(t, err)
}

func TestUpdate(t *testing.T) {
	t.Run("applies and saves", func(t *testing.T) {
		store, _ := setupStore(t)
		ctx := context.Background()

		updated, err := Update(ctx, store, "owner-1", "doc", defaultTestDoc, func(d *testDoc) error {
			d.Counts["x"]++
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 1, updated.Counts["x"])

		loaded, err := Load(ctx, store, "owner-1", "doc", defaultTestDoc)
		require.NoError(t, err)
		assert.Equal(t, 1, loaded.Counts["x"])
	})

	t.Run("callback error skips save", func(t *testing.T) {
		store, repo := setupStore(t)
		ctx := context.Background()

		_, err := Update(ctx, store, "owner-1", "doc", defaultTestDoc, func(d *testDoc) error {
			d.Name = "changed"
			return errors.New("rejected")
		})
		assert.Error(t, err)

		_, getErr := repo.Get(ctx, "owner-1", "doc")
		assert.ErrorIs(t, getErr, ErrDocumentNotFound)
	})

	t.Run("last write wins", func(t *testing.T) {
		store, _ := setupStore(t)
		ctx := context.Background()

		for _, name := range []string{"in_progress", "completed"} {
			_, err := Update(ctx, store, "owner-1", "doc", defaultTestDoc, func(d *testDoc) error {
				d.Name = name
				return nil
			})
			require.NoError(t, err)
		}

		loaded, err := Load(ctx, store, "owner-1", "doc", defaultTestDoc)
		require.NoError(t, err)
		assert.Equal(t, "completed", loaded.Name)
	})

	t.Run("concurrent updates do not lose increments", func(t *testing.T) {
		store, _ := setupStore(t)
		ctx := context.Background()

		var wg sync.WaitGroup
		for range 50 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := Update(ctx, store, "owner-1", "doc", defaultTestDoc, func(d *testDoc) error {
					d.Counts["hits"]++
					return nil
				})
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		loaded, err := Load(ctx, store, "owner-1", "doc", defaultTestDoc)
		require.NoError(t, err)
		assert.Equal(t, 50, loaded.Counts["hits"])
		assert.Empty(t, store.locks.locks)
	})
}

func TestExists(t *testing.T) {
	store, repo := setupStore(t)
	ctx := context.Background()

	exists, err := store.Exists(ctx, "owner-1", "doc")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.Put(ctx, "owner-1", "doc", []byte("{broken")))
	exists, err = store.Exists(ctx, "owner-1", "doc")
	require.NoError(t, err)
	assert.True(t, exists)

	failing := NewStore(&failingRepository{err: errors.New("timeout")}, zap.NewNop())
	_, err = failing.Exists(ctx, "owner-1", "doc")
	assert.Error(t, err)
}

func TestDelete(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "owner-1", "a", testDoc{Name: "a"}))
	require.NoError(t, store.Save(ctx, "owner-1", "b", testDoc{Name: "b"}))

	require.NoError(t, store.Delete(ctx, "owner-1", "a"))
	a, err := Load(ctx, store, "owner-1", "a", defaultTestDoc)
	require.NoError(t, err)
	assert.Equal(t, defaultTestDoc(), a)

	require.NoError(t, store.DeleteAll(ctx, "owner-1"))
	b, err := Load(ctx, store, "owner-1", "b", defaultTestDoc)
	require.NoError(t, err)
	assert.Equal(t, defaultTestDoc(), b)
}

func strPtr(s string) *string {
	return &s
}
