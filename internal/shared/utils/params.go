package utils

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// Pagination mặc định cho list endpoints
const (
	DefaultSkip  = 0
	DefaultLimit = 100
)

// ParseID đọc path param dạng số nguyên dương
func ParseID(c *gin.Context, name string) (int64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	return id, nil
}

// ParsePagination đọc ?skip=&limit=, thiếu thì dùng default, âm thì lỗi
func ParsePagination(c *gin.Context) (skip, limit int, err error) {
	skip, err = queryInt(c, "skip", DefaultSkip)
	if err != nil {
		return 0, 0, err
	}
	limit, err = queryInt(c, "limit", DefaultLimit)
	if err != nil {
		return 0, 0, err
	}
	return skip, limit, nil
}

func queryInt(c *gin.Context, key string, def int) (int, error) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", key)
	}
	if v < 0 {
		return 0, fmt.Errorf("%s must be greater than or equal to 0", key)
	}
	return v, nil
}

// ParseIDList đọc ?ids=1,2,3 (hoặc ?ids=1&ids=2), bỏ qua phần tử rỗng
func ParseIDList(c *gin.Context, key string) ([]int64, error) {
	var ids []int64
	for _, raw := range c.QueryArray(key) {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.ParseInt(part, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%s must be a comma-separated list of integers", key)
			}
			ids = append(ids, id)
		}
	}
	return ids, nil
}
