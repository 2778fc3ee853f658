package service

import (
	"context"

	"itemtag-backend/internal/domains/tag/model"
	"itemtag-backend/internal/domains/tag/repository"
)

type GetTagUseCase struct {
	repo repository.Repository
}

func NewGetTagUseCase(repo repository.Repository) *GetTagUseCase {
	return &GetTagUseCase{repo: repo}
}

func (uc *GetTagUseCase) Execute(ctx context.Context, id int64) (*model.TagResponse, error) {
	tag, err := uc.repo.GetByID(ctx, id)
	if err != nil || tag == nil {
		return nil, err
	}
	return tag.ToResponse(), nil
}

type ListTagsUseCase struct {
	repo repository.Repository
}

func NewListTagsUseCase(repo repository.Repository) *ListTagsUseCase {
	return &ListTagsUseCase{repo: repo}
}

func (uc *ListTagsUseCase) Execute(ctx context.Context, skip, limit int) ([]*model.TagResponse, error) {
	tags, err := uc.repo.GetAll(ctx, skip, limit)
	if err != nil {
		return nil, err
	}
	return model.ToResponses(tags), nil
}

// ListTagsByIDsUseCase trả về các tag tồn tại trong ids; id không tồn tại bị bỏ qua
type ListTagsByIDsUseCase struct {
	repo repository.Repository
}

func NewListTagsByIDsUseCase(repo repository.Repository) *ListTagsByIDsUseCase {
	return &ListTagsByIDsUseCase{repo: repo}
}

func (uc *ListTagsByIDsUseCase) Execute(ctx context.Context, ids []int64) ([]*model.TagResponse, error) {
	tags, err := uc.repo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return model.ToResponses(tags), nil
}

// CreateTagUseCase kiểm tra tên trùng trước khi insert
type CreateTagUseCase struct {
	repo repository.Repository
}

func NewCreateTagUseCase(repo repository.Repository) *CreateTagUseCase {
	return &CreateTagUseCase{repo: repo}
}

func (uc *CreateTagUseCase) Execute(ctx context.Context, req model.CreateTagRequest) (*model.TagResponse, error) {
	existing, err := uc.repo.GetByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, model.NewDuplicateTagName(req.Name)
	}

	created, err := uc.repo.Create(ctx, &model.Tag{Name: req.Name, Color: req.Color})
	if err != nil {
		return nil, err
	}
	return created.ToResponse(), nil
}

// UpdateTagUseCase: đổi sang tên của tag khác => duplicate;
// giữ nguyên tên hiện tại thì không cần lookup
type UpdateTagUseCase struct {
	repo repository.Repository
}

func NewUpdateTagUseCase(repo repository.Repository) *UpdateTagUseCase {
	return &UpdateTagUseCase{repo: repo}
}

func (uc *UpdateTagUseCase) Execute(ctx context.Context, id int64, req model.UpdateTagRequest) (*model.TagResponse, error) {
	current, err := uc.repo.GetByID(ctx, id)
	if err != nil || current == nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != current.Name {
		conflict, err := uc.repo.GetByName(ctx, *req.Name)
		if err != nil {
			return nil, err
		}
		if conflict != nil && conflict.ID != current.ID {
			return nil, model.NewDuplicateTagName(*req.Name)
		}
	}

	updated := &model.Tag{
		ID:    id,
		Name:  current.Name,
		Color: current.Color,
	}
	if req.Name != nil {
		updated.Name = *req.Name
	}
	if req.Color != nil {
		updated.Color = *req.Color
	}

	result, err := uc.repo.Update(ctx, id, updated)
	if err != nil || result == nil {
		return nil, err
	}
	return result.ToResponse(), nil
}

type DeleteTagUseCase struct {
	repo repository.Repository
}

func NewDeleteTagUseCase(repo repository.Repository) *DeleteTagUseCase {
	return &DeleteTagUseCase{repo: repo}
}

func (uc *DeleteTagUseCase) Execute(ctx context.Context, id int64) (bool, error) {
	return uc.repo.Delete(ctx, id)
}
