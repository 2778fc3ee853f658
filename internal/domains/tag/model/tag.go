package model

import "time"

// Tag là entity map bảng tags
// ID = 0 nghĩa là tag chưa được lưu (transient)
type Tag struct {
	ID        int64      `json:"id" db:"id"`
	Name      string     `json:"name" db:"name"`
	Color     string     `json:"color" db:"color"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" db:"updated_at"`
}

// TagResponse là record trả về cho client
type TagResponse struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Color     string     `json:"color"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

func (t *Tag) ToResponse() *TagResponse {
	return &TagResponse{
		ID:        t.ID,
		Name:      t.Name,
		Color:     t.Color,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// ToResponses maps a page of tags, keeping an empty (non-nil) slice for JSON.
func ToResponses(tags []*Tag) []*TagResponse {
	out := make([]*TagResponse, 0, len(tags))
	for _, t := range tags {
		out = append(out, t.ToResponse())
	}
	return out
}
