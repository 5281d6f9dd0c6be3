// Package cache mirrors the processed artifacts into Redis for the query
// service: the whole summary ledger under one key, each enriched combat log
// under match:<id>, and the season aggregates under season_stats.
package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"pubg-tracker/internal/config"
)

const (
	summariesKey   = "match_summaries"
	seasonStatsKey = "season_stats"
	matchKeyPrefix = "match:"
)

// ErrNotFound is returned when a key has no value in the cache.
var ErrNotFound = errors.New("cache: key not found")

// Cache is a thin wrapper over the Redis client with the tracker's key
// layout baked in.
type Cache struct {
	rdb *redis.Client
}

// New connects a cache client; the connection is lazy, use Ping to verify.
func New(cfg config.RedisConfig) *Cache {
	return &Cache{
		rdb: redis.NewClient(&redis.Options{
			Addr:     cfg.Addr(),
			Password: cfg.Password,
			DB:       cfg.DB,
			PoolSize: cfg.PoolSize,
		}),
	}
}

// Ping verifies connectivity.
func (c *Cache) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// Close releases the connection pool.
func (c *Cache) Close() error {
	return c.rdb.Close()
}

// SetSummaries mirrors the full summary ledger.
func (c *Cache) SetSummaries(ctx context.Context, blob []byte) error {
	if err := c.rdb.Set(ctx, summariesKey, blob, 0).Err(); err != nil {
		return fmt.Errorf("caching summaries: %w", err)
	}
	return nil
}

// GetSummaries returns the mirrored summary ledger.
func (c *Cache) GetSummaries(ctx context.Context) ([]byte, error) {
	return c.get(ctx, summariesKey)
}

// SetMatch mirrors one enriched combat log.
func (c *Cache) SetMatch(ctx context.Context, matchID string, blob []byte) error {
	if err := c.rdb.Set(ctx, matchKeyPrefix+matchID, blob, 0).Err(); err != nil {
		return fmt.Errorf("caching match %s: %w", matchID, err)
	}
	return nil
}

// GetMatch returns one mirrored combat log.
func (c *Cache) GetMatch(ctx context.Context, matchID string) ([]byte, error) {
	return c.get(ctx, matchKeyPrefix+matchID)
}

// DeleteMatch invalidates an evicted match's entry.
func (c *Cache) DeleteMatch(ctx context.Context, matchID string) error {
	if err := c.rdb.Del(ctx, matchKeyPrefix+matchID).Err(); err != nil {
		return fmt.Errorf("invalidating match %s: %w", matchID, err)
	}
	return nil
}

// SetSeasonStats mirrors the season aggregate blob.
func (c *Cache) SetSeasonStats(ctx context.Context, blob []byte) error {
	if err := c.rdb.Set(ctx, seasonStatsKey, blob, 0).Err(); err != nil {
		return fmt.Errorf("caching season stats: %w", err)
	}
	return nil
}

// GetSeasonStats returns the mirrored season aggregates.
func (c *Cache) GetSeasonStats(ctx context.Context) ([]byte, error) {
	return c.get(ctx, seasonStatsKey)
}

func (c *Cache) get(ctx context.Context, key string) ([]byte, error) {
	blob, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", key, err)
	}
	return blob, nil
}
