package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"itemtag-backend/internal/domains/tag/model"
	"itemtag-backend/internal/domains/tag/service"
	"itemtag-backend/internal/shared/response"
	"itemtag-backend/internal/shared/utils"
	"itemtag-backend/pkg/logger"
)

// ============================================================
// HANDLER STRUCT
// ============================================================
type TagHandler struct {
	service service.Service
}

func NewTagHandler(svc service.Service) *TagHandler {
	return &TagHandler{service: svc}
}

// RegisterRoutes gắn các route /tags vào group
func (h *TagHandler) RegisterRoutes(rg *gin.RouterGroup) {
	tags := rg.Group("/tags")
	{
		tags.GET("/", h.List)
		tags.POST("/", h.Create)
		tags.GET("/:id", h.GetByID)
		tags.PUT("/:id", h.Update)
		tags.DELETE("/:id", h.Delete)
	}
}

// ========== LIST: GET /tags/?skip=0&limit=100&ids=1,2 ==========
func (h *TagHandler) List(c *gin.Context) {
	skip, limit, err := utils.ParsePagination(c)
	if err != nil {
		response.ValidationError(c, err.Error(), nil)
		return
	}
	ids, err := utils.ParseIDList(c, "ids")
	if err != nil {
		response.ValidationError(c, err.Error(), nil)
		return
	}

	tags, err := h.service.ListTags(c.Request.Context(), model.ListTagsQuery{
		Skip:  skip,
		Limit: limit,
		IDs:   ids,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	// lọc theo ids không phân trang
	meta := response.PageMeta(skip, limit, len(tags))
	if len(ids) > 0 {
		meta = &response.Meta{Count: len(tags)}
	}
	response.SuccessWithMeta(c, http.StatusOK, tags, meta)
}

// ========== GET: GET /tags/:id ==========
func (h *TagHandler) GetByID(c *gin.Context) {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		response.ValidationError(c, err.Error(), nil)
		return
	}

	tag, err := h.service.GetTag(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if tag == nil {
		h.notFound(c)
		return
	}

	response.Success(c, http.StatusOK, tag)
}

// ========== CREATE: POST /tags/ ==========
func (h *TagHandler) Create(c *gin.Context) {
	var req model.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.ValidationError(c, "Invalid tag data", err)
		return
	}

	tag, err := h.service.CreateTag(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, tag)
}

// ========== UPDATE: PUT /tags/:id ==========
func (h *TagHandler) Update(c *gin.Context) {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		response.ValidationError(c, err.Error(), nil)
		return
	}

	var req model.UpdateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.ValidationError(c, "Invalid tag data", err)
		return
	}

	tag, err := h.service.UpdateTag(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if tag == nil {
		h.notFound(c)
		return
	}

	response.Success(c, http.StatusOK, tag)
}

// ========== DELETE: DELETE /tags/:id ==========
func (h *TagHandler) Delete(c *gin.Context) {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		response.ValidationError(c, err.Error(), nil)
		return
	}

	deleted, err := h.service.DeleteTag(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if !deleted {
		h.notFound(c)
		return
	}

	response.NoContent(c)
}

func (h *TagHandler) notFound(c *gin.Context) {
	e := model.NewTagNotFound()
	response.NotFound(c, e.Code, e.Message)
}

// handleError map domain error -> HTTP status
func (h *TagHandler) handleError(c *gin.Context, err error) {
	var tagErr *model.TagError
	if errors.As(err, &tagErr) {
		switch {
		case errors.Is(err, model.ErrDuplicateTagName):
			response.BadRequest(c, tagErr.Code, tagErr.Message)
			return
		case errors.Is(err, model.ErrTagNotFound):
			response.NotFound(c, tagErr.Code, tagErr.Message)
			return
		}
	}

	logger.Error("tag handler: unexpected error", err)
	response.InternalServerError(c)
}
