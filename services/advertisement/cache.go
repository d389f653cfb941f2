package advertisement

import (
	"context"
	"encoding/json"

	"github.com/bol3ezzz/spalux-backend/models"
	"github.com/bol3ezzz/spalux-backend/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// AdCache is a Redis read cache for single advertisements. Every method is
// safe on a nil receiver or nil client, so the service runs unchanged when
// Redis is not configured.
type AdCache struct {
	client *redis.Client
}

func NewAdCache(client *redis.Client) *AdCache {
	return &AdCache{client: client}
}

func (c *AdCache) Get(ctx context.Context, id string) *models.Advertisement {
	if c == nil || c.client == nil {
		return nil
	}
	data, err := c.client.Get(ctx, utils.AdCachePrefix+id).Bytes()
	if err != nil {
		return nil
	}
	var ad models.Advertisement
	if err := json.Unmarshal(data, &ad); err != nil {
		return nil
	}
	return &ad
}

func (c *AdCache) Set(ctx context.Context, ad *models.Advertisement) {
	if c == nil || c.client == nil || ad == nil {
		return
	}
	data, err := json.Marshal(ad)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, utils.AdCachePrefix+ad.ID, data, utils.AdCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("Failed to cache advertisement",
			zap.String("id", ad.ID), zap.Error(err))
	}
}

func (c *AdCache) Invalidate(ctx context.Context, id string) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, utils.AdCachePrefix+id).Err(); err != nil {
		utils.GetLogger().Warn("Failed to invalidate cached advertisement",
			zap.String("id", id), zap.Error(err))
	}
}
