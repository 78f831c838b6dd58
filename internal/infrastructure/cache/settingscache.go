package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vendordesk-io/vendordesk/internal/shared/logger"
)

// CachedSettings is the read-model of a vendor's scope flags kept in Redis.
type CachedSettings struct {
	WorksWithAllServices        bool
	WorksWithAllLanguagePairs   bool
	WorksWithAllSpecializations bool
}

// SettingsCache fronts the vendor_settings table for read-heavy endpoints.
// A nil-returning Get with no error is a cache miss.
type SettingsCache interface {
	Get(ctx context.Context, vendorID uint) (*CachedSettings, error)
	Set(ctx context.Context, vendorID uint, settings *CachedSettings) error
	Invalidate(ctx context.Context, vendorID uint) error
}

const (
	settingsKeyPrefix = "vendor:settings:"
	settingsTTL       = 5 * time.Minute

	fieldAllServices        = "all_services"
	fieldAllLanguagePairs   = "all_language_pairs"
	fieldAllSpecializations = "all_specializations"
)

// RedisSettingsCache implements SettingsCache using a Redis hash per vendor.
type RedisSettingsCache struct {
	client *redis.Client
	logger logger.Interface
}

func NewRedisSettingsCache(client *redis.Client, logger logger.Interface) *RedisSettingsCache {
	return &RedisSettingsCache{
		client: client,
		logger: logger,
	}
}

func (c *RedisSettingsCache) key(vendorID uint) string {
	return fmt.Sprintf("%s%d", settingsKeyPrefix, vendorID)
}

func (c *RedisSettingsCache) Get(ctx context.Context, vendorID uint) (*CachedSettings, error) {
	result, err := c.client.HGetAll(ctx, c.key(vendorID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get settings from cache: %w", err)
	}

	if len(result) == 0 {
		return nil, nil // Cache miss
	}

	return &CachedSettings{
		WorksWithAllServices:        result[fieldAllServices] == "1",
		WorksWithAllLanguagePairs:   result[fieldAllLanguagePairs] == "1",
		WorksWithAllSpecializations: result[fieldAllSpecializations] == "1",
	}, nil
}

func (c *RedisSettingsCache) Set(ctx context.Context, vendorID uint, settings *CachedSettings) error {
	key := c.key(vendorID)

	fields := map[string]interface{}{
		fieldAllServices:        boolToInt(settings.WorksWithAllServices),
		fieldAllLanguagePairs:   boolToInt(settings.WorksWithAllLanguagePairs),
		fieldAllSpecializations: boolToInt(settings.WorksWithAllSpecializations),
	}

	pipe := c.client.Pipeline()
	pipe.HSet(ctx, key, fields)
	pipe.Expire(ctx, key, settingsTTL)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to set settings in cache: %w", err)
	}

	c.logger.Debugw("vendor settings cached", "vendor_id", vendorID)

	return nil
}

func (c *RedisSettingsCache) Invalidate(ctx context.Context, vendorID uint) error {
	if err := c.client.Del(ctx, c.key(vendorID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate settings cache: %w", err)
	}

	c.logger.Debugw("vendor settings cache invalidated", "vendor_id", vendorID)

	return nil
}

// NoopSettingsCache is used when Redis is disabled. Every read is a miss.
type NoopSettingsCache struct{}

func NewNoopSettingsCache() *NoopSettingsCache {
	return &NoopSettingsCache{}
}

func (NoopSettingsCache) Get(ctx context.Context, vendorID uint) (*CachedSettings, error) {
	return nil, nil
}

func (NoopSettingsCache) Set(ctx context.Context, vendorID uint, settings *CachedSettings) error {
	return nil
}

func (NoopSettingsCache) Invalidate(ctx context.Context, vendorID uint) error {
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
