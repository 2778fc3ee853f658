package model

import "time"

// TagSummary là dạng rút gọn của tag được nhúng trong item
type TagSummary struct {
	ID    int64  `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Color string `json:"color" db:"color"`
}

// Item là entity map bảng items, Tags được load qua item_tags
// ID = 0 nghĩa là item chưa được lưu (transient)
type Item struct {
	ID          int64        `json:"id" db:"id"`
	Name        string       `json:"name" db:"name"`
	Description *string      `json:"description,omitempty" db:"description"`
	CreatedAt   time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt   *time.Time   `json:"updated_at,omitempty" db:"updated_at"`
	Tags        []TagSummary `json:"tags"`
}

// ItemResponse là record trả về cho client
type ItemResponse struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Description *string      `json:"description"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   *time.Time   `json:"updated_at"`
	Tags        []TagSummary `json:"tags"`
}

func (i *Item) ToResponse() *ItemResponse {
	tags := i.Tags
	if tags == nil {
		tags = []TagSummary{}
	}
	return &ItemResponse{
		ID:          i.ID,
		Name:        i.Name,
		Description: i.Description,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
		Tags:        tags,
	}
}

func ToResponses(items []*Item) []*ItemResponse {
	out := make([]*ItemResponse, 0, len(items))
	for _, i := range items {
		out = append(out, i.ToResponse())
	}
	return out
}
