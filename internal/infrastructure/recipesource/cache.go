package recipesource

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/go-redis/redis/v8"
	"github.com/mealwise/mws/internal/domain/models"
	"github.com/mealwise/mws/internal/infrastructure/config"
	"github.com/mealwise/mws/internal/pkg/logger"
	"go.uber.org/zap"
)

// cachedSource decorates a Source with a Redis response cache. Cache failures
// fall through to the inner source; a cold or broken cache only costs quota.
type cachedSource struct {
	inner  Source
	client *redis.Client
	cfg    config.CacheConfig
	logger *logger.Logger
}

// WithCache wraps src with a Redis cache when caching is enabled. Returns the
// source unwrapped if the cache is disabled or Redis is unreachable.
func WithCache(src Source, cfg config.CacheConfig, log *logger.Logger) Source {
	if !cfg.Enabled {
		return src
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		DB:       cfg.RedisDB,
		Password: cfg.Password,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.WithComponent("recipesource").Warn("Redis unavailable, recipe cache disabled", zap.Error(err))
		return src
	}

	return &cachedSource{
		inner:  src,
		client: client,
		cfg:    cfg,
		logger: log.WithComponent("recipesource-cache"),
	}
}

func (c *cachedSource) Search(ctx context.Context, params SearchParams) ([]*models.Recipe, error) {
	key := searchKey(params)

	if data, err := c.client.Get(ctx, key).Bytes(); err == nil {
		var recipes []*models.Recipe
		if err := json.Unmarshal(data, &recipes); err == nil {
			c.logger.Debug("Search cache hit", zap.String("key", key))
			return recipes, nil
		}
	}

	recipes, err := c.inner.Search(ctx, params)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(recipes); err == nil {
		if err := c.client.Set(ctx, key, data, c.cfg.TTL).Err(); err != nil {
			c.logger.Warn("Failed to cache search response", zap.Error(err))
		}
	}
	return recipes, nil
}

func (c *cachedSource) GetByID(ctx context.Context, id int) (*models.Recipe, error) {
	key := "recipesource:recipe:" + strconv.Itoa(id)

	if data, err := c.client.Get(ctx, key).Bytes(); err == nil {
		var recipe models.Recipe
		if err := json.Unmarshal(data, &recipe); err == nil {
			return &recipe, nil
		}
	}

	recipe, err := c.inner.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(recipe); err == nil {
		if err := c.client.Set(ctx, key, data, c.cfg.TTL).Err(); err != nil {
			c.logger.Warn("Failed to cache recipe response", zap.Error(err))
		}
	}
	return recipe, nil
}

func (c *cachedSource) Quota() QuotaStatus {
	return c.inner.Quota()
}

func searchKey(params SearchParams) string {
	sum := sha256.Sum256([]byte(params.canonical()))
	return fmt.Sprintf("recipesource:search:%s", hex.EncodeToString(sum[:]))
}
