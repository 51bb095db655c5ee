package ingredient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "ingredients:"

// Cache keeps catalog lookups in redis. A nil *Cache is valid and caches
// nothing. Redis failures are logged and treated as misses.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if client == nil {
		return nil
	}
	return &Cache{client: client, ttl: ttl}
}

func idKey(id int64) string          { return fmt.Sprintf("%sid:%d", keyPrefix, id) }
func prefixKey(prefix string) string { return fmt.Sprintf("%sprefix:%s", keyPrefix, prefix) }

func (c *Cache) GetByID(ctx context.Context, id int64) (*Ingredient, bool) {
	var ing Ingredient
	if !c.get(ctx, idKey(id), &ing) {
		return nil, false
	}
	return &ing, true
}

func (c *Cache) SetByID(ctx context.Context, ing *Ingredient) {
	c.set(ctx, idKey(ing.ID), ing)
}

func (c *Cache) GetPrefix(ctx context.Context, prefix string) ([]Ingredient, bool) {
	var items []Ingredient
	if !c.get(ctx, prefixKey(prefix), &items) {
		return nil, false
	}
	return items, true
}

func (c *Cache) SetPrefix(ctx context.Context, prefix string, items []Ingredient) {
	c.set(ctx, prefixKey(prefix), items)
}

// Invalidate drops every cached catalog entry.
func (c *Cache) Invalidate(ctx context.Context) error {
	if c == nil {
		return nil
	}
	iter := c.client.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

func (c *Cache) get(ctx context.Context, key string, dst any) bool {
	if c == nil {
		return false
	}
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			zap.L().Warn("ingredient cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	return json.Unmarshal(data, dst) == nil
}

func (c *Cache) set(ctx context.Context, key string, v any) {
	if c == nil {
		return
	}
	payload, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		zap.L().Warn("ingredient cache write failed", zap.String("key", key), zap.Error(err))
	}
}
