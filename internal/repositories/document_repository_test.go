package repositories

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/benefitnavigator/backend/internal/database"
	"github.com/benefitnavigator/backend/internal/documents"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var fixedNow = time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)

// setupTestDocumentRepository creates a MySQL repository with a mock database
func setupTestDocumentRepository(t *testing.T) (*documentRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	logger, err := zap.NewDevelopment()
	require.NoError(t, err)

	repo := NewDocumentRepository(db, DialectMySQL, logger)
	repo.now = func() time.Time { return fixedNow }

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func TestNewDocumentRepository(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	db := &sql.DB{}

	repo := NewDocumentRepository(db, DialectSQLite, logger)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
	assert.Equal(t, DialectSQLite, repo.dialect)
	assert.Equal(t, logger, repo.logger)
}

func TestDocumentRepository_Get(t *testing.T) {
	selectQuery := regexp.QuoteMeta(`SELECT body FROM documents WHERE owner = ? AND doc_key = ?`)

	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedBody  []byte
		expectedError error
		wantError     bool
	}{
		{
			name: "success",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"body"}).AddRow(`{"name":"Ali"}`)
				mock.ExpectQuery(selectQuery).WithArgs("client-1", "user_profile").WillReturnRows(rows)
			},
			expectedBody: []byte(`{"name":"Ali"}`),
		},
		{
			name: "not found",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(selectQuery).WithArgs("client-1", "user_profile").WillReturnError(sql.ErrNoRows)
			},
			expectedError: documents.ErrDocumentNotFound,
			wantError:     true,
		},
		{
			name: "database error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(selectQuery).WithArgs("client-1", "user_profile").WillReturnError(errors.New("database error"))
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupTestDocumentRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			body, err := repo.Get(context.Background(), "client-1", "user_profile")

			if tt.wantError {
				assert.Error(t, err)
				assert.Nil(t, body)
				if tt.expectedError != nil {
					assert.ErrorIs(t, err, tt.expectedError)
				} else {
					assert.NotErrorIs(t, err, documents.ErrDocumentNotFound)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedBody, body)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDocumentRepository_Put(t *testing.T) {
	upsertQuery := regexp.QuoteMeta(`INSERT INTO documents (owner, doc_key, body, updated_at) VALUES (?, ?, ?, ?) ON DUPLICATE KEY UPDATE body = VALUES(body), updated_at = VALUES(updated_at)`)

	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
	}{
		{
			name: "success",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(upsertQuery).
					WithArgs("client-1", "bn_session", "true", fixedNow).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
		},
		{
			name: "database error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(upsertQuery).
					WithArgs("client-1", "bn_session", "true", fixedNow).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupTestDocumentRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			err := repo.Put(context.Background(), "client-1", "bn_session", []byte("true"))

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDocumentRepository_PutUnsupportedDialect(t *testing.T) {
	repo, mock, cleanup := setupTestDocumentRepository(t)
	defer cleanup()
	repo.dialect = "postgres"

	err := repo.Put(context.Background(), "client-1", "bn_session", []byte("true"))

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentRepository_Delete(t *testing.T) {
	tests := []struct {
		name          string
		call          func(r *documentRepository) error
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
	}{
		{
			name: "delete one",
			call: func(r *documentRepository) error {
				return r.Delete(context.Background(), "client-1", "bn_session")
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM documents WHERE owner = ? AND doc_key = ?`)).
					WithArgs("client-1", "bn_session").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
		},
		{
			name: "delete one error",
			call: func(r *documentRepository) error {
				return r.Delete(context.Background(), "client-1", "bn_session")
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM documents WHERE owner = ? AND doc_key = ?`)).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
		{
			name: "delete owner",
			call: func(r *documentRepository) error {
				return r.DeleteOwner(context.Background(), "client-1")
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM documents WHERE owner = ?`)).
					WithArgs("client-1").
					WillReturnResult(sqlmock.NewResult(0, 3))
			},
		},
		{
			name: "delete owner error",
			call: func(r *documentRepository) error {
				return r.DeleteOwner(context.Background(), "client-1")
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM documents WHERE owner = ?`)).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupTestDocumentRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			err := tt.call(repo)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

// TestDocumentRepository_SQLite runs the repository against a migrated in-memory SQLite database
func TestDocumentRepository_SQLite(t *testing.T) {
	db, err := database.ConnectSQLite(":memory:")
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, database.RunSQLiteMigrations(db))

	repo := NewDocumentRepository(db, DialectSQLite, zap.NewNop())
	ctx := context.Background()

	_, err = repo.Get(ctx, "client-1", "bn_user")
	assert.ErrorIs(t, err, documents.ErrDocumentNotFound)

	require.NoError(t, repo.Put(ctx, "client-1", "bn_user", []byte(`{"email":"a@b.uz"}`)))
	require.NoError(t, repo.Put(ctx, "client-1", "bn_user", []byte(`{"email":"c@d.uz"}`)))
	require.NoError(t, repo.Put(ctx, "client-1", "bn_session", []byte(`true`)))
	require.NoError(t, repo.Put(ctx, "client-2", "bn_session", []byte(`true`)))

	body, err := repo.Get(ctx, "client-1", "bn_user")
	require.NoError(t, err)
	assert.JSONEq(t, `{"email":"c@d.uz"}`, string(body))

	require.NoError(t, repo.Delete(ctx, "client-1", "bn_user"))
	_, err = repo.Get(ctx, "client-1", "bn_user")
	assert.ErrorIs(t, err, documents.ErrDocumentNotFound)

	require.NoError(t, repo.DeleteOwner(ctx, "client-1"))
	_, err = repo.Get(ctx, "client-1", "bn_session")
	assert.ErrorIs(t, err, documents.ErrDocumentNotFound)

	body, err = repo.Get(ctx, "client-2", "bn_session")
	require.NoError(t, err)
	assert.Equal(t, "true", string(body))

	// Migrations are idempotent
	assert.NoError(t, database.RunSQLiteMigrations(db))
}
