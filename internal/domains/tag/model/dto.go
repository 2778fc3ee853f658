package model

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	NameMinLength = 1
	NameMaxLength = 50
)

var colorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// CreateTagRequest - POST /tags/
type CreateTagRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

func (r CreateTagRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.RuneLength(NameMinLength, NameMaxLength).Error("name must be 1-50 characters"),
		),
		validation.Field(&r.Color,
			validation.Required.Error("color is required"),
			validation.Match(colorPattern).Error("color must be a hex code like #RRGGBB"),
		),
	)
}

// UpdateTagRequest - PUT /tags/:id
// nil = giữ nguyên giá trị hiện tại
type UpdateTagRequest struct {
	Name  *string `json:"name,omitempty"`
	Color *string `json:"color,omitempty"`
}

func (r UpdateTagRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.NilOrNotEmpty.Error("name must be 1-50 characters"),
			validation.RuneLength(NameMinLength, NameMaxLength).Error("name must be 1-50 characters"),
		),
		validation.Field(&r.Color,
			validation.NilOrNotEmpty.Error("color must be a hex code like #RRGGBB"),
			validation.Match(colorPattern).Error("color must be a hex code like #RRGGBB"),
		),
	)
}

// ListTagsQuery - GET /tags/?skip=&limit=&ids=
type ListTagsQuery struct {
	Skip  int
	Limit int
	IDs   []int64
}
