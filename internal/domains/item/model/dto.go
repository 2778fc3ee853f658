package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateItemRequest - POST /items/
type CreateItemRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	TagIDs      []int64 `json:"tag_ids,omitempty"`
}

func (r CreateItemRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required.Error("name is required")),
	)
}

// UpdateItemRequest - PUT /items/:id
// TagIDs: nil = không đổi tags, &[]int64{} = xoá hết tags
type UpdateItemRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	TagIDs      *[]int64 `json:"tag_ids,omitempty"`
}

func (r UpdateItemRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty.Error("name cannot be empty")),
	)
}
