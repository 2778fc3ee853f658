package repository

import (
	"context"
	"fmt"
	"time"

	"itemtag-backend/internal/domains/tag/model"
	"itemtag-backend/pkg/cache"
	"itemtag-backend/pkg/logger"
)

// cachedRepository là read-through cache cho GetByID.
// Mọi lỗi cache chỉ được log, store vẫn là nguồn dữ liệu chính.
type cachedRepository struct {
	Repository
	cache cache.Cache
	ttl   time.Duration
}

// NewCachedRepository bọc next bằng cache; ttl <= 0 dùng 5 phút
func NewCachedRepository(next Repository, c cache.Cache, ttl time.Duration) Repository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &cachedRepository{Repository: next, cache: c, ttl: ttl}
}

func tagCacheKey(id int64) string {
	return fmt.Sprintf("tag:id:%d", id)
}

func (r *cachedRepository) GetByID(ctx context.Context, id int64) (*model.Tag, error) {
	var cached model.Tag
	found, err := r.cache.Get(ctx, tagCacheKey(id), &cached)
	if err != nil {
		logger.Warn("tag cache get failed", err)
	} else if found {
		return &cached, nil
	}

	tag, err := r.Repository.GetByID(ctx, id)
	if err != nil || tag == nil {
		return tag, err
	}

	if err := r.cache.Set(ctx, tagCacheKey(id), tag, r.ttl); err != nil {
		logger.Warn("tag cache set failed", err)
	}
	return tag, nil
}

func (r *cachedRepository) Update(ctx context.Context, id int64, tag *model.Tag) (*model.Tag, error) {
	updated, err := r.Repository.Update(ctx, id, tag)
	r.evict(ctx, id)
	return updated, err
}

func (r *cachedRepository) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := r.Repository.Delete(ctx, id)
	r.evict(ctx, id)
	return deleted, err
}

func (r *cachedRepository) evict(ctx context.Context, id int64) {
	if err := r.cache.Delete(ctx, tagCacheKey(id)); err != nil {
		logger.Warn("tag cache evict failed", err)
	}
}
