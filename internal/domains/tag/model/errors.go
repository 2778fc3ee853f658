package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeTagNotFound      = "TAG_NOT_FOUND"
	ErrCodeDuplicateTagName = "TAG_NAME_ALREADY_EXISTS"
)

// Sentinel errors, so sánh bằng errors.Is
var (
	ErrTagNotFound      = errors.New("tag not found")
	ErrDuplicateTagName = errors.New("tag name already exists")
)

// TagError định nghĩa base error cho tag domain
type TagError struct {
	Code    string // Error code duy nhất (VD: "TAG_NAME_ALREADY_EXISTS")
	Message string // Human-readable message
	Err     error  // Underlying error
}

func (e *TagError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *TagError) Unwrap() error {
	return e.Err
}

// NewDuplicateTagName tạo error "tag name already exists"
func NewDuplicateTagName(name string) *TagError {
	return &TagError{
		Code:    ErrCodeDuplicateTagName,
		Message: fmt.Sprintf("Tag with name '%s' already exists", name),
		Err:     ErrDuplicateTagName,
	}
}

func NewTagNotFound() *TagError {
	return &TagError{
		Code:    ErrCodeTagNotFound,
		Message: "Tag not found",
		Err:     ErrTagNotFound,
	}
}
