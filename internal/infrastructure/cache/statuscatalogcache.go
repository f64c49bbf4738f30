package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"claimdesk/internal/application/status/dto"
	"claimdesk/internal/shared/logger"
)

const statusCatalogKey = "claimdesk:status_catalog"

// StatusCatalogCache keeps the assembled status list in Redis. Cache
// problems only cost a database round trip, never an error to the caller.
type StatusCatalogCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Interface
}

func NewStatusCatalogCache(client *redis.Client, ttl time.Duration, logger logger.Interface) *StatusCatalogCache {
	return &StatusCatalogCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *StatusCatalogCache) GetStatusList(ctx context.Context) ([]dto.StatusDTO, bool) {
	data, err := c.client.Get(ctx, statusCatalogKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warnw("failed to read status catalog cache", "error", err)
		}
		return nil, false
	}

	var statuses []dto.StatusDTO
	if err := json.Unmarshal(data, &statuses); err != nil {
		c.logger.Warnw("corrupt status catalog cache entry", "error", err)
		c.Invalidate(ctx)
		return nil, false
	}
	return statuses, true
}

func (c *StatusCatalogCache) SetStatusList(ctx context.Context, statuses []dto.StatusDTO) {
	data, err := json.Marshal(statuses)
	if err != nil {
		c.logger.Warnw("failed to marshal status catalog", "error", err)
		return
	}
	if err := c.client.Set(ctx, statusCatalogKey, data, c.ttl).Err(); err != nil {
		c.logger.Warnw("failed to write status catalog cache", "error", err)
	}
}

func (c *StatusCatalogCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, statusCatalogKey).Err(); err != nil {
		c.logger.Warnw("failed to invalidate status catalog cache", "error", err)
	}
}

// NoopCatalogCache is used when Redis is disabled; every read misses.
type NoopCatalogCache struct{}

func NewNoopCatalogCache() *NoopCatalogCache {
	return &NoopCatalogCache{}
}

func (NoopCatalogCache) GetStatusList(ctx context.Context) ([]dto.StatusDTO, bool) {
	return nil, false
}

func (NoopCatalogCache) SetStatusList(ctx context.Context, statuses []dto.StatusDTO) {}

func (NoopCatalogCache) Invalidate(ctx context.Context) {}
