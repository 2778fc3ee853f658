package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeItemNotFound = "ITEM_NOT_FOUND"
)

var ErrItemNotFound = errors.New("item not found")

// ItemError định nghĩa base error cho item domain
type ItemError struct {
	Code    string
	Message string
	Err     error
}

func (e *ItemError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *ItemError) Unwrap() error {
	return e.Err
}

func NewItemNotFound() *ItemError {
	return &ItemError{
		Code:    ErrCodeItemNotFound,
		Message: "Item not found",
		Err:     ErrItemNotFound,
	}
}
