package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"warp_ships/internal/app/ds"

	"github.com/redis/go-redis/v9"
)

const (
	cacheKeyPrefix = "ships:list:"
	cacheIndexKey  = "ships:list-keys"
)

// ShipCache keeps list results in Redis. Every written key is remembered in
// an index set so that Invalidate can drop all of them at once.
type ShipCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewShipCache(client *redis.Client, ttl time.Duration) *ShipCache {
	return &ShipCache{client: client, ttl: ttl}
}

// Get returns the cached list for filter; ok is false on a miss.
func (c *ShipCache) Get(ctx context.Context, filter ds.ListShipsFilter) ([]ds.Ship, bool, error) {
	raw, err := c.client.Get(ctx, cacheKey(filter)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var ships []ds.Ship
	if err := json.Unmarshal(raw, &ships); err != nil {
		return nil, false, err
	}
	return ships, true, nil
}

func (c *ShipCache) Set(ctx context.Context, filter ds.ListShipsFilter, ships []ds.Ship) error {
	raw, err := json.Marshal(ships)
	if err != nil {
		return err
	}

	key := cacheKey(filter)
	_, err = c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, key, raw, c.ttl)
		pipe.SAdd(ctx, cacheIndexKey, key)
		return nil
	})
	return err
}

// Invalidate drops every cached list.
func (c *ShipCache) Invalidate(ctx context.Context) error {
	keys, err := c.client.SMembers(ctx, cacheIndexKey).Result()
	if err != nil {
		return err
	}
	keys = append(keys, cacheIndexKey)
	return c.client.Del(ctx, keys...).Err()
}

func (c *ShipCache) Close() error {
	return c.client.Close()
}

func cacheKey(filter ds.ListShipsFilter) string {
	name, ok := filter.NameFilter()
	if !ok {
		return cacheKeyPrefix + "all"
	}
	return cacheKeyPrefix + "name:" + name
}
