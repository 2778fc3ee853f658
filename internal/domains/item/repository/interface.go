package repository

import (
	"context"

	"itemtag-backend/internal/domains/item/model"
)

// Repository định nghĩa data access cho Item domain.
// Mọi item trả về đều kèm Tags; lookup không thấy trả về (nil, nil)
type Repository interface {
	GetByID(ctx context.Context, id int64) (*model.Item, error)

	// GetAll ordered by id, offset skip, tối đa limit rows
	GetAll(ctx context.Context, skip, limit int) ([]*model.Item, error)

	// Create inserts item và gắn các tag tồn tại trong tagIDs; id không tồn tại bị bỏ qua
	Create(ctx context.Context, item *model.Item, tagIDs []int64) (*model.Item, error)

	// Update ghi đè name/description. tagIDs == nil giữ nguyên tags,
	// non-nil thay toàn bộ tag set (rỗng = xoá hết)
	Update(ctx context.Context, id int64, item *model.Item, tagIDs *[]int64) (*model.Item, error)

	// Delete xóa item và association rows; false nếu không tồn tại
	Delete(ctx context.Context, id int64) (bool, error)
}
