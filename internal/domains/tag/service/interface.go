package service

import (
	"context"

	"itemtag-backend/internal/domains/tag/model"
)

// Service là facade của các tag use-case cho handler và container.
// Not found trả về (nil, nil) hoặc false, không phải error.
type Service interface {
	GetTag(ctx context.Context, id int64) (*model.TagResponse, error)
	ListTags(ctx context.Context, query model.ListTagsQuery) ([]*model.TagResponse, error)
	CreateTag(ctx context.Context, req model.CreateTagRequest) (*model.TagResponse, error)
	UpdateTag(ctx context.Context, id int64, req model.UpdateTagRequest) (*model.TagResponse, error)
	DeleteTag(ctx context.Context, id int64) (bool, error)
}
