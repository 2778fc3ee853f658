package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"itemtag-backend/internal/domains/tag/model"
	"itemtag-backend/internal/domains/tag/repository"
)

type tagService struct {
	get       *GetTagUseCase
	list      *ListTagsUseCase
	listByIDs *ListTagsByIDsUseCase
	create    *CreateTagUseCase
	update    *UpdateTagUseCase
	delete    *DeleteTagUseCase
}

// NewService creates a new tag service instance
// Dependency injection pattern - receives repository from container
func NewService(repo repository.Repository) Service {
	return &tagService{
		get:       NewGetTagUseCase(repo),
		list:      NewListTagsUseCase(repo),
		listByIDs: NewListTagsByIDsUseCase(repo),
		create:    NewCreateTagUseCase(repo),
		update:    NewUpdateTagUseCase(repo),
		delete:    NewDeleteTagUseCase(repo),
	}
}

func (s *tagService) GetTag(ctx context.Context, id int64) (*model.TagResponse, error) {
	return s.get.Execute(ctx, id)
}

// ListTags: có ids thì lọc theo ids, không thì phân trang skip/limit
func (s *tagService) ListTags(ctx context.Context, query model.ListTagsQuery) ([]*model.TagResponse, error) {
	if len(query.IDs) > 0 {
		return s.listByIDs.Execute(ctx, query.IDs)
	}
	return s.list.Execute(ctx, query.Skip, query.Limit)
}

func (s *tagService) CreateTag(ctx context.Context, req model.CreateTagRequest) (*model.TagResponse, error) {
	tag, err := s.create.Execute(ctx, req)
	if err != nil {
		return nil, err
	}
	log.Info().Int64("tag_id", tag.ID).Str("name", tag.Name).Msg("tag created")
	return tag, nil
}

func (s *tagService) UpdateTag(ctx context.Context, id int64, req model.UpdateTagRequest) (*model.TagResponse, error) {
	return s.update.Execute(ctx, id, req)
}

func (s *tagService) DeleteTag(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.delete.Execute(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		log.Info().Int64("tag_id", id).Msg("tag deleted")
	}
	return deleted, nil
}
