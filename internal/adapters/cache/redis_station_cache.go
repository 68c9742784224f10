package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"ev-charge-planner/internal/domain"
)

// RedisStationCache is a Redis-backed cache for charger directory search
// results. Keys combine the search point (rounded to 4 decimals, ~11 m)
// with the radius so distinct queries never collide.
type RedisStationCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStationCache(client *redis.Client, ttl time.Duration) *RedisStationCache {
	return &RedisStationCache{client: client, ttl: ttl}
}

func searchKey(lat, lon, radiusKm float64) string {
	return fmt.Sprintf("chargers:%.4f:%.4f:%g", lat, lon, radiusKm)
}

// Get fetches cached results for a search point. A missing key is a miss,
// not an error.
func (r *RedisStationCache) Get(ctx context.Context, lat, lon, radiusKm float64) ([]domain.Charger, bool, error) {
	if r.client == nil {
		return nil, false, errors.New("station cache: client is nil")
	}

	raw, err := r.client.Get(ctx, searchKey(lat, lon, radiusKm)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("station cache get: %w", err)
	}

	var chargers []domain.Charger
	if err := json.Unmarshal(raw, &chargers); err != nil {
		// A corrupt entry behaves as a miss; the caller refetches and
		// overwrites it.
		return nil, false, fmt.Errorf("station cache decode: %w", err)
	}

	return chargers, true, nil
}

// Put stores results for a search point with the configured TTL.
// An empty result set is cached too, so dead zones are not re-queried.
func (r *RedisStationCache) Put(ctx context.Context, lat, lon, radiusKm float64, chargers []domain.Charger) error {
	if r.client == nil {
		return errors.New("station cache: client is nil")
	}

	raw, err := json.Marshal(chargers)
	if err != nil {
		return fmt.Errorf("station cache encode: %w", err)
	}

	if err := r.client.Set(ctx, searchKey(lat, lon, radiusKm), raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("station cache set: %w", err)
	}

	return nil
}
