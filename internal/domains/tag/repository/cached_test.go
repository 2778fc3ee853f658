package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itemtag-backend/internal/domains/tag/model"
)

// memoryCache mimics the Redis client: values round-trip through JSON.
type memoryCache struct {
	data    map[string][]byte
	failGet bool
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: map[string][]byte{}}
}

func (c *memoryCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	if c.failGet {
		return false, errors.New("redis down")
	}
	raw, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *memoryCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = raw
	return nil
}

func (c *memoryCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.data, k)
	}
	return nil
}

func (c *memoryCache) Ping(context.Context) error { return nil }

// countingRepository counts GetByID hits on the underlying store.
type countingRepository struct {
	Repository
	tag   *model.Tag
	reads int
}

func (r *countingRepository) GetByID(_ context.Context, id int64) (*model.Tag, error) {
	r.reads++
	if r.tag == nil || r.tag.ID != id {
		return nil, nil
	}
	cp := *r.tag
	return &cp, nil
}

func (r *countingRepository) Update(_ context.Context, _ int64, tag *model.Tag) (*model.Tag, error) {
	r.tag.Name = tag.Name
	return r.tag, nil
}

func (r *countingRepository) Delete(_ context.Context, id int64) (bool, error) {
	if r.tag == nil || r.tag.ID != id {
		return false, nil
	}
	r.tag = nil
	return true, nil
}

func TestCachedRepository_ReadThrough(t *testing.T) {
	ctx := context.Background()
	store := &countingRepository{tag: &model.Tag{ID: 1, Name: "Red", Color: "#FF0000", CreatedAt: time.Now().UTC()}}
	c := newMemoryCache()
	repo := NewCachedRepository(store, c, time.Minute)

	first, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	second, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, 1, store.reads)
	assert.Equal(t, first.Name, second.Name)
	assert.Contains(t, c.data, "tag:id:1")

	missing, err := repo.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Nil(t, missing)
	assert.NotContains(t, c.data, "tag:id:2")
}

func TestCachedRepository_EvictsOnWrite(t *testing.T) {
	ctx := context.Background()
	store := &countingRepository{tag: &model.Tag{ID: 1, Name: "Red", Color: "#FF0000"}}
	c := newMemoryCache()
	repo := NewCachedRepository(store, c, 0)

	_, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)

	_, err = repo.Update(ctx, 1, &model.Tag{Name: "Crimson"})
	require.NoError(t, err)
	assert.NotContains(t, c.data, "tag:id:1")

	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Crimson", got.Name)

	deleted, err := repo.Delete(ctx, 1)
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.NotContains(t, c.data, "tag:id:1")

	got, err = repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCachedRepository_CacheFailureFallsBackToStore(t *testing.T) {
	ctx := context.Background()
	store := &countingRepository{tag: &model.Tag{ID: 1, Name: "Red", Color: "#FF0000"}}
	c := newMemoryCache()
	c.failGet = true
	repo := NewCachedRepository(store, c, time.Minute)

	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Red", got.Name)
	assert.Equal(t, 1, store.reads)
}
