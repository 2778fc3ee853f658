package service

import (
	"context"

	"itemtag-backend/internal/domains/item/model"
	"itemtag-backend/internal/domains/item/repository"
)

type GetItemUseCase struct {
	repo repository.Repository
}

func NewGetItemUseCase(repo repository.Repository) *GetItemUseCase {
	return &GetItemUseCase{repo: repo}
}

func (uc *GetItemUseCase) Execute(ctx context.Context, id int64) (*model.ItemResponse, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil || item == nil {
		return nil, err
	}
	return item.ToResponse(), nil
}

type ListItemsUseCase struct {
	repo repository.Repository
}

func NewListItemsUseCase(repo repository.Repository) *ListItemsUseCase {
	return &ListItemsUseCase{repo: repo}
}

func (uc *ListItemsUseCase) Execute(ctx context.Context, skip, limit int) ([]*model.ItemResponse, error) {
	items, err := uc.repo.GetAll(ctx, skip, limit)
	if err != nil {
		return nil, err
	}
	return model.ToResponses(items), nil
}

type CreateItemUseCase struct {
	repo repository.Repository
}

func NewCreateItemUseCase(repo repository.Repository) *CreateItemUseCase {
	return &CreateItemUseCase{repo: repo}
}

func (uc *CreateItemUseCase) Execute(ctx context.Context, req model.CreateItemRequest) (*model.ItemResponse, error) {
	tagIDs := req.TagIDs
	if tagIDs == nil {
		tagIDs = []int64{}
	}

	created, err := uc.repo.Create(ctx, &model.Item{
		Name:        req.Name,
		Description: req.Description,
	}, tagIDs)
	if err != nil {
		return nil, err
	}
	return created.ToResponse(), nil
}

// UpdateItemUseCase merge name/description với giá trị hiện tại;
// TagIDs được chuyển nguyên trạng (nil khác slice rỗng)
type UpdateItemUseCase struct {
	repo repository.Repository
}

func NewUpdateItemUseCase(repo repository.Repository) *UpdateItemUseCase {
	return &UpdateItemUseCase{repo: repo}
}

func (uc *UpdateItemUseCase) Execute(ctx context.Context, id int64, req model.UpdateItemRequest) (*model.ItemResponse, error) {
	current, err := uc.repo.GetByID(ctx, id)
	if err != nil || current == nil {
		return nil, err
	}

	merged := &model.Item{
		ID:          id,
		Name:        current.Name,
		Description: current.Description,
	}
	if req.Name != nil {
		merged.Name = *req.Name
	}
	if req.Description != nil {
		merged.Description = req.Description
	}

	updated, err := uc.repo.Update(ctx, id, merged, req.TagIDs)
	if err != nil || updated == nil {
		return nil, err
	}
	return updated.ToResponse(), nil
}

type DeleteItemUseCase struct {
	repo repository.Repository
}

func NewDeleteItemUseCase(repo repository.Repository) *DeleteItemUseCase {
	return &DeleteItemUseCase{repo: repo}
}

func (uc *DeleteItemUseCase) Execute(ctx context.Context, id int64) (bool, error) {
	return uc.repo.Delete(ctx, id)
}
