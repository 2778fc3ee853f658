package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"itemtag-backend/internal/domains/item/model"
	"itemtag-backend/internal/domains/item/repository"
)

type itemService struct {
	get    *GetItemUseCase
	list   *ListItemsUseCase
	create *CreateItemUseCase
	update *UpdateItemUseCase
	delete *DeleteItemUseCase
}

// NewService creates a new item service instance
func NewService(repo repository.Repository) Service {
	return &itemService{
		get:    NewGetItemUseCase(repo),
		list:   NewListItemsUseCase(repo),
		create: NewCreateItemUseCase(repo),
		update: NewUpdateItemUseCase(repo),
		delete: NewDeleteItemUseCase(repo),
	}
}

func (s *itemService) GetItem(ctx context.Context, id int64) (*model.ItemResponse, error) {
	return s.get.Execute(ctx, id)
}

func (s *itemService) ListItems(ctx context.Context, skip, limit int) ([]*model.ItemResponse, error) {
	return s.list.Execute(ctx, skip, limit)
}

func (s *itemService) CreateItem(ctx context.Context, req model.CreateItemRequest) (*model.ItemResponse, error) {
	item, err := s.create.Execute(ctx, req)
	if err != nil {
		return nil, err
	}
	log.Info().
		Int64("item_id", item.ID).
		Int("requested_tags", len(req.TagIDs)).
		Int("linked_tags", len(item.Tags)).
		Msg("item created")
	return item, nil
}

func (s *itemService) UpdateItem(ctx context.Context, id int64, req model.UpdateItemRequest) (*model.ItemResponse, error) {
	return s.update.Execute(ctx, id, req)
}

func (s *itemService) DeleteItem(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.delete.Execute(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		log.Info().Int64("item_id", id).Msg("item deleted")
	}
	return deleted, nil
}
