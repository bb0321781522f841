package pricecache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whatiftr/whatif-backend/internal/model"
)

func setupCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewFromClient(client), mr
}

func TestSnapshotRoundTrip(t *testing.T) {
	cache, _ := setupCache(t)
	ctx := context.Background()

	date := time.Date(2020, 6, 15, 0, 0, 0, 0, time.UTC)
	snap := model.PriceSnapshot{
		Date: date,
		Prices: map[model.AssetCode]float64{
			model.AssetUSD:  6.85,
			model.AssetGold: 390.5,
		},
	}

	require.NoError(t, cache.SetSnapshot(ctx, snap))

	got, ok := cache.GetSnapshot(ctx, date)
	require.True(t, ok)
	assert.True(t, got.Date.Equal(date))
	assert.Equal(t, snap.Prices, got.Prices)
}

func TestGetSnapshotMiss(t *testing.T) {
	cache, _ := setupCache(t)

	_, ok := cache.GetSnapshot(context.Background(), time.Date(2020, 6, 15, 0, 0, 0, 0, time.UTC))
	assert.False(t, ok)
}

func TestGetSnapshotCorruptEntry(t *testing.T) {
	cache, mr := setupCache(t)

	require.NoError(t, mr.Set("snapshot:2020-06-15", "not json"))

	_, ok := cache.GetSnapshot(context.Background(), time.Date(2020, 6, 15, 0, 0, 0, 0, time.UTC))
	assert.False(t, ok)
}

func TestPastSnapshotsNeverExpire(t *testing.T) {
	cache, mr := setupCache(t)
	ctx := context.Background()

	date := time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC)
	snap := model.PriceSnapshot{
		Date:   date,
		Prices: map[model.AssetCode]float64{model.AssetUSD: 2.3},
	}
	require.NoError(t, cache.SetSnapshot(ctx, snap))

	mr.FastForward(48 * time.Hour)

	_, ok := cache.GetSnapshot(ctx, date)
	assert.True(t, ok, "past snapshots must survive indefinitely")
}

func TestTodaySnapshotExpires(t *testing.T) {
	cache, mr := setupCache(t)
	ctx := context.Background()

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	snap := model.PriceSnapshot{
		Date:   today,
		Prices: map[model.AssetCode]float64{model.AssetUSD: 30.1},
	}
	require.NoError(t, cache.SetSnapshot(ctx, snap))

	_, ok := cache.GetSnapshot(ctx, today)
	require.True(t, ok)

	mr.FastForward(2 * time.Hour)

	_, ok = cache.GetSnapshot(ctx, today)
	assert.False(t, ok, "the current day's snapshot must expire")
}
