package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/benefitnavigator/backend/internal/documents"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// redisCmdable is the subset of redis.Cmdable used by the document repository
type redisCmdable interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Scan(ctx context.Context, cursor uint64, match string, count int64) *redis.ScanCmd
}

type redisDocumentRepository struct {
	client redisCmdable
	logger *zap.Logger
}

// NewRedisDocumentRepository creates a Redis implementation of the documents.Repository interface.
// Documents are stored as plain strings under "bn:{owner}:{key}" without expiry.
func NewRedisDocumentRepository(client redisCmdable, logger *zap.Logger) *redisDocumentRepository {
	return &redisDocumentRepository{
		client: client,
		logger: logger,
	}
}

func redisDocumentKey(owner, key string) string {
	return fmt.Sprintf("bn:%s:%s", owner, key)
}

// Method Get is a documents.Repository implementation for retrieving the body of a document from Redis.
func (r *redisDocumentRepository) Get(ctx context.Context, owner, key string) ([]byte, error) {
	body, err := r.client.Get(ctx, redisDocumentKey(owner, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, documents.ErrDocumentNotFound
	}
	if err != nil {
		r.logger.Error("failed to get document", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return body, nil
}

// Method Put is a documents.Repository implementation for storing a document in Redis.
func (r *redisDocumentRepository) Put(ctx context.Context, owner, key string, body []byte) error {
	if err := r.client.Set(ctx, redisDocumentKey(owner, key), body, 0).Err(); err != nil {
		r.logger.Error("failed to set document", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("failed to set document: %w", err)
	}
	return nil
}

// Method Delete is a documents.Repository implementation for removing a document from Redis.
func (r *redisDocumentRepository) Delete(ctx context.Context, owner, key string) error {
	if err := r.client.Del(ctx, redisDocumentKey(owner, key)).Err(); err != nil {
		r.logger.Error("failed to delete document", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("failed to delete document: %w", err)
	}
	return nil
}

// Method DeleteOwner is a documents.Repository implementation for removing all documents of a namespace.
func (r *redisDocumentRepository) DeleteOwner(ctx context.Context, owner string) error {
	pattern := redisDocumentKey(owner, "*")

	var cursor uint64
	for {
		keys, next, err := r.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			r.logger.Error("failed to scan documents", zap.Error(err))
			return fmt.Errorf("failed to scan documents: %w", err)
		}

		if len(keys) > 0 {
			if err := r.client.Del(ctx, keys...).Err(); err != nil {
				r.logger.Error("failed to delete documents", zap.Error(err))
				return fmt.Errorf("failed to delete documents: %w", err)
			}
		}

		if next == 0 {
			return nil
		}
		cursor = next
	}
}
