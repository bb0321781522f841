// Package pricecache caches full price snapshots in Redis.
//
// TTL policy: snapshots for past dates never change, so they are cached
// without expiry; the current day's snapshot is still moving and expires
// after one hour.
package pricecache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/whatiftr/whatif-backend/internal/model"
)

const (
	keyPrefix = "snapshot:"
	todayTTL  = time.Hour
)

// Cache wraps the Redis client used for snapshot caching.
type Cache struct {
	client *redis.Client
}

// New creates a snapshot cache and verifies the connection.
func New(addr, password string, db int) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Cache{client: client}, nil
}

// NewFromClient wraps an existing Redis client. Used by tests.
func NewFromClient(client *redis.Client) *Cache {
	return &Cache{client: client}
}

// Close closes the Redis connection.
func (c *Cache) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// cachedSnapshot is the stored wire form of a snapshot.
type cachedSnapshot struct {
	Date   string                      `json:"date"`
	Prices map[model.AssetCode]float64 `json:"prices"`
}

// GetSnapshot retrieves the cached snapshot for a date.
// The second return value is false on a miss or an unreadable entry.
func (c *Cache) GetSnapshot(ctx context.Context, date time.Time) (model.PriceSnapshot, bool) {
	raw, err := c.client.Get(ctx, key(date)).Result()
	if err != nil {
		return model.PriceSnapshot{}, false
	}

	var stored cachedSnapshot
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return model.PriceSnapshot{}, false
	}

	day, err := time.Parse("2006-01-02", stored.Date)
	if err != nil {
		return model.PriceSnapshot{}, false
	}

	return model.PriceSnapshot{Date: day, Prices: stored.Prices}, true
}

// SetSnapshot stores a snapshot under the TTL policy: no expiry for past
// dates, one hour for the current day.
func (c *Cache) SetSnapshot(ctx context.Context, snap model.PriceSnapshot) error {
	stored := cachedSnapshot{
		Date:   snap.Date.Format("2006-01-02"),
		Prices: snap.Prices,
	}

	data, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	var ttl time.Duration
	if isToday(snap.Date) {
		ttl = todayTTL
	}

	return c.client.Set(ctx, key(snap.Date), data, ttl).Err()
}

func key(date time.Time) string {
	return keyPrefix + date.Format("2006-01-02")
}

func isToday(date time.Time) bool {
	now := time.Now().UTC()
	return date.Year() == now.Year() && date.YearDay() == now.YearDay()
}
