package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"itemtag-backend/internal/domains/item/model"
	"itemtag-backend/internal/domains/item/service"
	"itemtag-backend/internal/shared/response"
	"itemtag-backend/internal/shared/utils"
	"itemtag-backend/pkg/logger"
)

// ============================================================
// HANDLER STRUCT
// ============================================================
type ItemHandler struct {
	service service.Service
}

func NewItemHandler(svc service.Service) *ItemHandler {
	return &ItemHandler{service: svc}
}

func (h *ItemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	items := rg.Group("/items")
	{
		items.GET("/", h.List)
		items.POST("/", h.Create)
		items.GET("/:id", h.GetByID)
		items.PUT("/:id", h.Update)
		items.DELETE("/:id", h.Delete)
	}
}

// ========== LIST: GET /items/?skip=0&limit=100 ==========
func (h *ItemHandler) List(c *gin.Context) {
	skip, limit, err := utils.ParsePagination(c)
	if err != nil {
		response.ValidationError(c, err.Error(), nil)
		return
	}

	items, err := h.service.ListItems(c.Request.Context(), skip, limit)
	if err != nil {
		h.internalError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, items, response.PageMeta(skip, limit, len(items)))
}

// ========== GET: GET /items/:id ==========
func (h *ItemHandler) GetByID(c *gin.Context) {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		response.ValidationError(c, err.Error(), nil)
		return
	}

	item, err := h.service.GetItem(c.Request.Context(), id)
	if err != nil {
		h.internalError(c, err)
		return
	}
	if item == nil {
		h.notFound(c)
		return
	}

	response.Success(c, http.StatusOK, item)
}

// ========== CREATE: POST /items/ ==========
func (h *ItemHandler) Create(c *gin.Context) {
	var req model.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.ValidationError(c, "Invalid item data", err)
		return
	}

	item, err := h.service.CreateItem(c.Request.Context(), req)
	if err != nil {
		h.internalError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, item)
}

// ========== UPDATE: PUT /items/:id ==========
// tag_ids vắng mặt: giữ tags; tag_ids: [] xoá hết tags
func (h *ItemHandler) Update(c *gin.Context) {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		response.ValidationError(c, err.Error(), nil)
		return
	}

	var req model.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.ValidationError(c, "Invalid item data", err)
		return
	}

	item, err := h.service.UpdateItem(c.Request.Context(), id, req)
	if err != nil {
		h.internalError(c, err)
		return
	}
	if item == nil {
		h.notFound(c)
		return
	}

	response.Success(c, http.StatusOK, item)
}

// ========== DELETE: DELETE /items/:id ==========
func (h *ItemHandler) Delete(c *gin.Context) {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		response.ValidationError(c, err.Error(), nil)
		return
	}

	deleted, err := h.service.DeleteItem(c.Request.Context(), id)
	if err != nil {
		h.internalError(c, err)
		return
	}
	if !deleted {
		h.notFound(c)
		return
	}

	response.NoContent(c)
}

func (h *ItemHandler) notFound(c *gin.Context) {
	e := model.NewItemNotFound()
	response.NotFound(c, e.Code, e.Message)
}

func (h *ItemHandler) internalError(c *gin.Context, err error) {
	logger.Error("item handler: unexpected error", err)
	response.InternalServerError(c)
}
