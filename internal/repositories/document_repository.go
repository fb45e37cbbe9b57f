package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/benefitnavigator/backend/internal/documents"
	"go.uber.org/zap"
)

// SQL dialects supported by the document repository
const (
	DialectMySQL  = "mysql"
	DialectSQLite = "sqlite"
)

type documentRepository struct {
	db      *sql.DB
	dialect string
	logger  *zap.Logger
	now     func() time.Time
}

// NewDocumentRepository creates a new SQL implementation of the documents.Repository interface
func NewDocumentRepository(db *sql.DB, dialect string, logger *zap.Logger) *documentRepository {
	return &documentRepository{
		db:      db,
		dialect: dialect,
		logger:  logger,
		now:     time.Now,
	}
}

// Method Get is a documents.Repository implementation for retrieving the body of a document from a database.
func (r *documentRepository) Get(ctx context.Context, owner, key string) ([]byte, error) {
	query := `SELECT body FROM documents WHERE owner = ? AND doc_key = ?`

	var body string
	err := r.db.QueryRowContext(ctx, query, owner, key).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, documents.ErrDocumentNotFound
	}
	if err != nil {
		r.logger.Error("failed to query document", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("failed to query document: %w", err)
	}

	return []byte(body), nil
}

// Method Put is a documents.Repository implementation for inserting or replacing a document in a database.
func (r *documentRepository) Put(ctx context.Context, owner, key string, body []byte) error {
	var query string
	var updatedAt any
	switch r.dialect {
	case DialectMySQL:
		query = `
			INSERT INTO documents (owner, doc_key, body, updated_at)
			VALUES (?, ?, ?, ?)
			ON DUPLICATE KEY UPDATE body = VALUES(body), updated_at = VALUES(updated_at)
		`
		updatedAt = r.now().UTC()
	case DialectSQLite:
		query = `
			INSERT INTO documents (owner, doc_key, body, updated_at)
			VALUES (?, ?, ?, ?)
			ON CONFLICT(owner, doc_key) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at
		`
		updatedAt = r.now().UnixMilli()
	default:
		return fmt.Errorf("unsupported dialect: %s", r.dialect)
	}

	if _, err := r.db.ExecContext(ctx, query, owner, key, string(body), updatedAt); err != nil {
		r.logger.Error("failed to upsert document", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("failed to upsert document: %w", err)
	}

	return nil
}

// Method Delete is a documents.Repository implementation for removing a document from a database.
func (r *documentRepository) Delete(ctx context.Context, owner, key string) error {
	query := `DELETE FROM documents WHERE owner = ? AND doc_key = ?`

	if _, err := r.db.ExecContext(ctx, query, owner, key); err != nil {
		r.logger.Error("failed to delete document", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("failed to delete document: %w", err)
	}

	return nil
}

// Method DeleteOwner is a documents.Repository implementation for removing all documents of a namespace.
func (r *documentRepository) DeleteOwner(ctx context.Context, owner string) error {
	query := `DELETE FROM documents WHERE owner = ?`

	if _, err := r.db.ExecContext(ctx, query, owner); err != nil {
		r.logger.Error("failed to delete documents", zap.Error(err))
		return fmt.Errorf("failed to delete documents: %w", err)
	}

	return nil
}
