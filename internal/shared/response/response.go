package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error codes dùng chung cho mọi domain
const (
	CodeBadRequest     = "BAD_REQUEST"
	CodeValidation     = "VALIDATION_ERROR"
	CodeNotFound       = "NOT_FOUND"
	CodeInternalError  = "INTERNAL_SERVER_ERROR"
	CodeServiceUnavail = "SERVICE_UNAVAILABLE"
)

type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

type ErrorInfo struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Meta cho list endpoints: skip/limit đã áp dụng (nil nếu không phân trang) và số record trả về
type Meta struct {
	Skip  *int `json:"skip,omitempty"`
	Limit *int `json:"limit,omitempty"`
	Count int  `json:"count"`
}

// PageMeta là Meta cho list có phân trang skip/limit
func PageMeta(skip, limit, count int) *Meta {
	return &Meta{Skip: &skip, Limit: &limit, Count: count}
}

// Success responses
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Data:    data,
	})
}

func SuccessWithMeta(c *gin.Context, statusCode int, data interface{}, meta *Meta) {
	c.JSON(statusCode, Response{
		Success: true,
		Data:    data,
		Meta:    meta,
	})
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error responses
func Error(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Error: &ErrorInfo{
			Code:    code,
			Message: message,
		},
	})
}

func ErrorWithDetails(c *gin.Context, statusCode int, code, message string, details interface{}) {
	c.JSON(statusCode, Response{
		Success: false,
		Error: &ErrorInfo{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// Common error responses
func BadRequest(c *gin.Context, code, message string) {
	Error(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Error(c, http.StatusNotFound, code, message)
}

// ValidationError trả 422; details thường là validation.Errors (map field -> message)
func ValidationError(c *gin.Context, message string, details interface{}) {
	ErrorWithDetails(c, http.StatusUnprocessableEntity, CodeValidation, message, details)
}

func InternalServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, CodeInternalError, "Internal server error")
}
