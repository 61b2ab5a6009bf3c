package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"local-services-marketplace/internal/domain/entity"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// CategoryCacheKey holds the JSON-encoded active category list
const CategoryCacheKey = "categories:active"

// Timeout for individual Redis operations
const categoryCacheTimeout = 2 * time.Second

// CategoryLoader reads the category list from the source of truth.
type CategoryLoader func(ctx context.Context) ([]entity.Category, error)

// CategoryCache is a read-through Redis cache in front of the category table.
//
// Concurrent misses share a single database load. Redis failures are logged
// and the loader is used directly, so the cache never turns a healthy
// database into a failed request.
type CategoryCache struct {
	redisClient *redis.Client
	log         *logrus.Logger
	ttl         time.Duration
	group       singleflight.Group
}

func NewCategoryCache(redisClient *redis.Client, log *logrus.Logger, ttl time.Duration) *CategoryCache {
	return &CategoryCache{
		redisClient: redisClient,
		log:         log,
		ttl:         ttl,
	}
}

func (c *CategoryCache) Get(ctx context.Context, load CategoryLoader) ([]entity.Category, error) {
	if categories, ok := c.read(ctx); ok {
		return categories, nil
	}

	v, err, _ := c.group.Do(CategoryCacheKey, func() (interface{}, error) {
		categories, err := load(ctx)
		if err != nil {
			return nil, err
		}
		c.write(ctx, categories)
		return categories, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]entity.Category), nil
}

// Warm loads the list and stores it, replacing whatever is cached.
// Called once at startup before the server accepts traffic.
func (c *CategoryCache) Warm(ctx context.Context, load CategoryLoader) error {
	if err := c.redisClient.Ping(ctx).Err(); err != nil {
		c.log.Warnf("Redis is not available, skipping category warm-up: %+v", err)
		return err
	}

	categories, err := load(ctx)
	if err != nil {
		return err
	}
	c.write(ctx, categories)
	c.log.Infof("Category cache warmed with %d categories", len(categories))
	return nil
}

func (c *CategoryCache) Invalidate(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, categoryCacheTimeout)
	defer cancel()
	return c.redisClient.Del(ctx, CategoryCacheKey).Err()
}

func (c *CategoryCache) read(ctx context.Context) ([]entity.Category, bool) {
	ctx, cancel := context.WithTimeout(ctx, categoryCacheTimeout)
	defer cancel()

	raw, err := c.redisClient.Get(ctx, CategoryCacheKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warnf("Failed to read category cache: %+v", err)
		}
		return nil, false
	}

	var categories []entity.Category
	if err := json.Unmarshal(raw, &categories); err != nil {
		c.log.Warnf("Failed to decode category cache: %+v", err)
		return nil, false
	}
	return categories, true
}

func (c *CategoryCache) write(ctx context.Context, categories []entity.Category) {
	raw, err := json.Marshal(categories)
	if err != nil {
		c.log.Warnf("Failed to encode category cache: %+v", err)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, categoryCacheTimeout)
	defer cancel()
	if err := c.redisClient.Set(ctx, CategoryCacheKey, raw, c.ttl).Err(); err != nil {
		c.log.Warnf("Failed to write category cache: %+v", err)
	}
}
