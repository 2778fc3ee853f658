package repository

import (
	"context"

	"itemtag-backend/internal/domains/tag/model"
)

// Repository định nghĩa data access cho Tag domain
// Lookup không thấy trả về (nil, nil), không phải error
type Repository interface {
	// GetByID retrieves a tag by ID
	GetByID(ctx context.Context, id int64) (*model.Tag, error)

	// GetByName exact-match lookup, dùng cho uniqueness check
	GetByName(ctx context.Context, name string) (*model.Tag, error)

	// GetByIDs trả về các tag tồn tại trong ids, bỏ qua id không tồn tại
	GetByIDs(ctx context.Context, ids []int64) ([]*model.Tag, error)

	// GetAll ordered by id, offset skip, tối đa limit rows
	GetAll(ctx context.Context, skip, limit int) ([]*model.Tag, error)

	// Create inserts unconditionally; uniqueness là trách nhiệm của service.
	// Unique index violation vẫn được map sang model.ErrDuplicateTagName
	Create(ctx context.Context, tag *model.Tag) (*model.Tag, error)

	// Update overwrites name/color với giá trị non-empty; (nil, nil) nếu không tồn tại
	Update(ctx context.Context, id int64, tag *model.Tag) (*model.Tag, error)

	// Delete xóa tag và các association rows; false nếu không tồn tại
	Delete(ctx context.Context, id int64) (bool, error)
}
