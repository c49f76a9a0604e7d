// Package schedule caches rendered weekly schedules in Redis. The grid is
// pure and cheap to recompute, so the cache is strictly best-effort: a miss
// or a Redis failure falls back to recomputation, and writes invalidate
// explicitly after the database confirms them.
package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss возвращается, когда расписание отсутствует в кеше
var ErrCacheMiss = errors.New("schedule.cache: cache miss")

// Cache кеш недельных расписаний поверх Redis
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache создает новый кеш расписаний
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// key строит ключ кеша по тройке (room, weekKey, viewer).
// Пустой viewerID означает расписание без фильтра по тренеру.
func key(roomID, weekKey, viewerID string) string {
	return fmt.Sprintf("schedule:%s:%s:%s", roomID, weekKey, viewerID)
}

// invalidationPattern шаблон ключей недели для всех viewer'ов сразу
func invalidationPattern(roomID, weekKey string) string {
	return fmt.Sprintf("schedule:%s:%s:*", roomID, weekKey)
}

// Get читает закешированное расписание в dest
func (c *Cache) Get(ctx context.Context, roomID, weekKey, viewerID string, dest interface{}) error {
	raw, err := c.client.Get(ctx, key(roomID, weekKey, viewerID)).Bytes()
	if err == redis.Nil {
		return ErrCacheMiss
	}
	if err != nil {
		return fmt.Errorf("schedule.cache: get: %w", err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("schedule.cache: unmarshal: %w", err)
	}
	return nil
}

// Set сохраняет расписание с настроенным TTL
func (c *Cache) Set(ctx context.Context, roomID, weekKey, viewerID string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("schedule.cache: marshal: %w", err)
	}

	if err := c.client.Set(ctx, key(roomID, weekKey, viewerID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("schedule.cache: set: %w", err)
	}
	return nil
}

// Invalidate удаляет все закешированные варианты расписания недели.
// Вызывается после подтверждённой записи (создание/удаление чека).
func (c *Cache) Invalidate(ctx context.Context, roomID, weekKey string) error {
	iter := c.client.Scan(ctx, 0, invalidationPattern(roomID, weekKey), 0).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("schedule.cache: scan: %w", err)
	}

	if len(keys) == 0 {
		return nil
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("schedule.cache: del: %w", err)
	}
	return nil
}
