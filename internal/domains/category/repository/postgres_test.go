package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-backend/internal/domains/category"
)

// memoryCache is an in-process cache.Cache for exercising the cached read
// path without a database behind it.
type memoryCache struct {
	entries map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string][]byte)}
}

func (c *memoryCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(data, dest)
}

func (c *memoryCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = data
	return nil
}

func (c *memoryCache) Delete(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(c.entries, key)
	}
	return nil
}

func (c *memoryCache) DeletePattern(ctx context.Context, pattern string) error { return nil }

func (c *memoryCache) Ping(ctx context.Context) error { return nil }

func cachedCategories(n int) []category.Category {
	cats := make([]category.Category, n)
	for i := range cats {
		cats[i] = category.Category{
			ID:   uuid.New(),
			Name: fmt.Sprintf("Genre %02d", i+1),
			Slug: fmt.Sprintf("genre-%02d", i+1),
		}
	}
	return cats
}

func TestGetAllCacheHitHonorsLimit(t *testing.T) {
	cache := newMemoryCache()
	require.NoError(t, cache.Set(context.Background(), categoryListKey, cachedCategories(5), cacheTTL))

	// nil pool: a cache hit must never touch the database
	repo := NewPostgresRepository(nil, cache)

	cats, total, err := repo.GetAll(context.Background(), category.CategoryFilter{Limit: 1, Offset: 0})
	require.NoError(t, err)
	assert.Len(t, cats, 1)
	assert.Equal(t, int64(5), total)
	assert.Equal(t, "Genre 01", cats[0].Name)
}

func TestGetAllCacheHitLargerLimitReturnsAll(t *testing.T) {
	cache := newMemoryCache()
	require.NoError(t, cache.Set(context.Background(), categoryListKey, cachedCategories(3), cacheTTL))

	repo := NewPostgresRepository(nil, cache)

	cats, total, err := repo.GetAll(context.Background(), category.CategoryFilter{Limit: 20, Offset: 0})
	require.NoError(t, err)
	assert.Len(t, cats, 3)
	assert.Equal(t, int64(3), total)
}
