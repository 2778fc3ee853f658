package service

import (
	"context"

	"itemtag-backend/internal/domains/item/model"
)

// Service là facade của các item use-case cho handler và container
type Service interface {
	GetItem(ctx context.Context, id int64) (*model.ItemResponse, error)
	ListItems(ctx context.Context, skip, limit int) ([]*model.ItemResponse, error)
	CreateItem(ctx context.Context, req model.CreateItemRequest) (*model.ItemResponse, error)
	UpdateItem(ctx context.Context, id int64, req model.UpdateItemRequest) (*model.ItemResponse, error)
	DeleteItem(ctx context.Context, id int64) (bool, error)
}
