package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/benjp009/affiliate-tracker/internal/models"
)

// CacheRepository кэш ссылок для горячего пути редиректа
type CacheRepository interface {
	Get(ctx context.Context, linkID int64) (*models.Link, error)
	Set(ctx context.Context, link *models.Link, ttl time.Duration) error
	Delete(ctx context.Context, linkID int64) error
}

type cacheRepository struct {
	redis *RedisDB
}

func NewCacheRepository(redis *RedisDB) CacheRepository {
	return &cacheRepository{redis: redis}
}

func (r *cacheRepository) Get(ctx context.Context, linkID int64) (*models.Link, error) {
	data, err := r.redis.Client.Get(ctx, r.key(linkID)).Bytes()
	if err != nil {
		return nil, err
	}

	var link models.Link
	if err := json.Unmarshal(data, &link); err != nil {
		return nil, fmt.Errorf("failed to unmarshal link: %w", err)
	}

	return &link, nil
}

func (r *cacheRepository) Set(ctx context.Context, link *models.Link, ttl time.Duration) error {
	data, err := json.Marshal(link)
	if err != nil {
		return fmt.Errorf("failed to marshal link: %w", err)
	}

	return r.redis.Client.Set(ctx, r.key(link.ID), data, ttl).Err()
}

func (r *cacheRepository) Delete(ctx context.Context, linkID int64) error {
	return r.redis.Client.Del(ctx, r.key(linkID)).Err()
}

func (r *cacheRepository) key(linkID int64) string {
	return "link:" + strconv.FormatInt(linkID, 10)
}
