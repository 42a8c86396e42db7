// Package ratingcache keeps seller rating aggregates in Redis in front of the receipts table.
package ratingcache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/GlebRadaev/marketbid/internal/domain"
)

const keyPrefix = "seller:rating:"

type Source interface {
	SellerRatings(ctx context.Context, sellerIDs []int) (map[int]domain.SellerRating, error)
}

// Client is the subset of *redis.Client used by the cache.
type Client interface {
	MGet(ctx context.Context, keys ...string) *redis.SliceCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type entry struct {
	Average float64 `json:"avg"`
	Count   int     `json:"count"`
}

type Cache struct {
	client Client
	source Source
	ttl    time.Duration
}

// New returns a cache; with a nil client every lookup goes straight to source.
func New(client Client, source Source, ttl time.Duration) *Cache {
	return &Cache{
		client: client,
		source: source,
		ttl:    ttl,
	}
}

func key(sellerID int) string {
	return keyPrefix + strconv.Itoa(sellerID)
}

func (c *Cache) SellerRatings(ctx context.Context, sellerIDs []int) (map[int]domain.SellerRating, error) {
	if c.client == nil || len(sellerIDs) == 0 {
		return c.source.SellerRatings(ctx, sellerIDs)
	}

	keys := make([]string, len(sellerIDs))
	for i, id := range sellerIDs {
		keys[i] = key(id)
	}

	ratings := make(map[int]domain.SellerRating, len(sellerIDs))
	misses := sellerIDs
	vals, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		zap.L().Warn("rating cache unavailable", zap.Error(err))
	} else {
		misses = misses[:0:0]
		for i, v := range vals {
			raw, ok := v.(string)
			var e entry
			if !ok || json.Unmarshal([]byte(raw), &e) != nil {
				misses = append(misses, sellerIDs[i])
				continue
			}
			ratings[sellerIDs[i]] = domain.SellerRating{SellerID: sellerIDs[i], Average: e.Average, Count: e.Count}
		}
	}
	if len(misses) == 0 {
		return ratings, nil
	}

	fresh, err := c.source.SellerRatings(ctx, misses)
	if err != nil {
		return nil, err
	}
	for _, id := range misses {
		sr, ok := fresh[id]
		if !ok {
			sr = domain.SellerRating{SellerID: id}
		}
		ratings[id] = sr
		data, _ := json.Marshal(entry{Average: sr.Average, Count: sr.Count})
		if err := c.client.Set(ctx, key(id), data, c.ttl).Err(); err != nil {
			zap.L().Warn("can't cache seller rating", zap.Int("sellerID", id), zap.Error(err))
		}
	}
	return ratings, nil
}

// Invalidate drops the cached aggregate after a new rating lands.
func (c *Cache) Invalidate(ctx context.Context, sellerID int) {
	if c.client == nil {
		return
	}
	if err := c.client.Del(ctx, key(sellerID)).Err(); err != nil {
		zap.L().Warn("can't invalidate seller rating", zap.Int("sellerID", sellerID), zap.Error(err))
	}
}
