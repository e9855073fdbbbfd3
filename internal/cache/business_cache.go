package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/amdeilami/alicetant/internal/models"
)

const businessTTL = 5 * time.Minute

// BusinessCache is a read-through cache for public business lookups.
// A nil *BusinessCache is a no-op, so callers never branch on configuration.
type BusinessCache struct {
	client *redis.Client
	log    zerolog.Logger
}

func NewBusinessCache(addr string, log zerolog.Logger) *BusinessCache {
	if addr == "" {
		return nil
	}
	return &BusinessCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		log:    log,
	}
}

func key(id uint) string {
	return fmt.Sprintf("business:%d", id)
}

func (c *BusinessCache) Get(ctx context.Context, id uint) (*models.Business, bool) {
	if c == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, key(id)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Uint("business_id", id).Msg("business cache read failed")
		}
		return nil, false
	}

	var biz models.Business
	if err := json.Unmarshal(raw, &biz); err != nil {
		return nil, false
	}
	return &biz, true
}

func (c *BusinessCache) Set(ctx context.Context, biz *models.Business) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(biz)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key(biz.ID), raw, businessTTL).Err(); err != nil {
		c.log.Warn().Err(err).Uint("business_id", biz.ID).Msg("business cache write failed")
	}
}

// Invalidate removes the cached entry after any write to the business.
func (c *BusinessCache) Invalidate(ctx context.Context, id uint) {
	if c == nil {
		return
	}
	if err := c.client.Del(ctx, key(id)).Err(); err != nil {
		c.log.Warn().Err(err).Uint("business_id", id).Msg("business cache invalidate failed")
	}
}
