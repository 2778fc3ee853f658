package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itemtag-backend/internal/domains/item/model"
)

type fakeService struct {
	items      map[int64]*model.ItemResponse
	lastUpdate *model.UpdateItemRequest
	lastSkip   int
	lastLimit  int
}

func (s *fakeService) GetItem(_ context.Context, id int64) (*model.ItemResponse, error) {
	return s.items[id], nil
}

func (s *fakeService) ListItems(_ context.Context, skip, limit int) ([]*model.ItemResponse, error) {
	s.lastSkip, s.lastLimit = skip, limit
	return []*model.ItemResponse{}, nil
}

func (s *fakeService) CreateItem(_ context.Context, req model.CreateItemRequest) (*model.ItemResponse, error) {
	tags := []model.TagSummary{}
	for _, id := range req.TagIDs {
		if id == 1 {
			tags = append(tags, model.TagSummary{ID: 1, Name: "Red", Color: "#FF0000"})
		}
	}
	return &model.ItemResponse{ID: 5, Name: req.Name, Description: req.Description, CreatedAt: time.Now(), Tags: tags}, nil
}

func (s *fakeService) UpdateItem(_ context.Context, id int64, req model.UpdateItemRequest) (*model.ItemResponse, error) {
	s.lastUpdate = &req
	return s.items[id], nil
}

func (s *fakeService) DeleteItem(_ context.Context, id int64) (bool, error) {
	_, ok := s.items[id]
	delete(s.items, id)
	return ok, nil
}

func setup(svc *fakeService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewItemHandler(svc).RegisterRoutes(&r.RouterGroup)
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func newFake() *fakeService {
	return &fakeService{items: map[int64]*model.ItemResponse{
		1: {ID: 1, Name: "Box", Tags: []model.TagSummary{}},
	}}
}

func TestItemHandler_Create(t *testing.T) {
	r := setup(newFake())

	w := do(r, http.MethodPost, "/items/", `{"name":"Box","tag_ids":[1,999]}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Box", body.Data["name"])
	assert.Nil(t, body.Data["description"])
	assert.Nil(t, body.Data["updated_at"])
	assert.Len(t, body.Data["tags"], 1)

	w = do(r, http.MethodPost, "/items/", `{"description":"no name"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = do(r, http.MethodPost, "/items/", `{"name":"Box","tag_ids":["a"]}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestItemHandler_UpdateTagIDsTriState(t *testing.T) {
	t.Run("absent", func(t *testing.T) {
		svc := newFake()
		w := do(setup(svc), http.MethodPut, "/items/1", `{"name":"Crate"}`)
		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, svc.lastUpdate)
		assert.Nil(t, svc.lastUpdate.TagIDs)
		assert.Equal(t, "Crate", *svc.lastUpdate.Name)
	})

	t.Run("empty", func(t *testing.T) {
		svc := newFake()
		w := do(setup(svc), http.MethodPut, "/items/1", `{"tag_ids":[]}`)
		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, svc.lastUpdate.TagIDs)
		assert.Empty(t, *svc.lastUpdate.TagIDs)
	})

	t.Run("values", func(t *testing.T) {
		svc := newFake()
		w := do(setup(svc), http.MethodPut, "/items/1", `{"tag_ids":[2,3]}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []int64{2, 3}, *svc.lastUpdate.TagIDs)
	})

	t.Run("absent item", func(t *testing.T) {
		w := do(setup(newFake()), http.MethodPut, "/items/9", `{"name":"x"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "ITEM_NOT_FOUND")
	})

	t.Run("empty name", func(t *testing.T) {
		w := do(setup(newFake()), http.MethodPut, "/items/1", `{"name":""}`)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestItemHandler_GetListDelete(t *testing.T) {
	svc := newFake()
	r := setup(svc)

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/items/1", "").Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/items/2", "").Code)
	assert.Equal(t, http.StatusUnprocessableEntity, do(r, http.MethodGet, "/items/one", "").Code)

	w := do(r, http.MethodGet, "/items/?skip=1&limit=2", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, svc.lastSkip)
	assert.Equal(t, 2, svc.lastLimit)
	assert.JSONEq(t, `{"success":true,"data":[],"meta":{"skip":1,"limit":2,"count":0}}`, w.Body.String())

	assert.Equal(t, http.StatusUnprocessableEntity, do(r, http.MethodGet, "/items/?limit=abc", "").Code)

	assert.Equal(t, http.StatusNoContent, do(r, http.MethodDelete, "/items/1", "").Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodDelete, "/items/1", "").Code)
}
