package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	CatalogVersionKey    = "catalog:version"
	catalogSnapshotKey   = "catalog:snapshot:v:%d"
	defaultSnapshotTTL   = 15 * time.Minute
	versionLookupRetries = 3
)

// CacheManager tracks the catalog version and caches the prepared mobile
// snapshot in Redis. Every admin mutation bumps the version, which both
// invalidates the snapshot cache and tells clients to refetch.
type CacheManager struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewCacheManager(rdb *redis.Client) *CacheManager {
	return &CacheManager{
		redis: rdb,
		ttl:   defaultSnapshotTTL,
	}
}

// Version returns the current catalog version, initializing it to 1 the
// first time. Redis being unreachable degrades to version 1 so the mobile
// surface keeps working without the cache.
func (cm *CacheManager) Version(ctx context.Context) int64 {
	for i := 0; i < versionLookupRetries; i++ {
		ver, err := cm.redis.Get(ctx, CatalogVersionKey).Int64()
		if err == nil && ver > 0 {
			return ver
		}

		if err == redis.Nil {
			if err := cm.redis.Set(ctx, CatalogVersionKey, 1, 0).Err(); err == nil {
				return 1
			}
		}

		if i < versionLookupRetries-1 {
			time.Sleep(50 * time.Millisecond)
		}
	}

	zap.L().Warn("Failed to read catalog version from Redis, serving version 1")
	return 1
}

// GetSnapshot retrieves the cached snapshot for a version.
func (cm *CacheManager) GetSnapshot(ctx context.Context, version int64) (map[string]interface{}, bool) {
	cached, err := cm.redis.Get(ctx, fmt.Sprintf(catalogSnapshotKey, version)).Result()
	if err != nil {
		return nil, false
	}

	var snapshot map[string]interface{}
	if err := json.Unmarshal([]byte(cached), &snapshot); err != nil {
		zap.L().Warn("Failed to unmarshal cached catalog snapshot", zap.Error(err))
		return nil, false
	}
	return snapshot, true
}

// SetSnapshotAsync caches a prepared snapshot without blocking the request.
func (cm *CacheManager) SetSnapshotAsync(version int64, snapshot map[string]interface{}) {
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		jsonBytes, err := json.Marshal(snapshot)
		if err != nil {
			zap.L().Warn("Failed to marshal catalog snapshot for cache", zap.Error(err))
			return
		}
		if err := cm.redis.Set(bgCtx, fmt.Sprintf(catalogSnapshotKey, version), jsonBytes, cm.ttl).Err(); err != nil {
			zap.L().Warn("Failed to cache catalog snapshot", zap.Error(err))
		}
	}()
}

// Invalidate bumps the catalog version. Cached snapshots for older versions
// simply expire.
func (cm *CacheManager) Invalidate(ctx context.Context) {
	newVersion, err := cm.redis.Incr(ctx, CatalogVersionKey).Result()
	if err != nil {
		zap.L().Warn("Failed to bump catalog version", zap.Error(err))
		return
	}
	zap.L().Info("Catalog version bumped", zap.Int64("version", newVersion))
}
