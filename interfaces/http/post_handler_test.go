package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"postpilot/domain/model"
	"postpilot/infrastructure/persistence"
	httpHandler "postpilot/interfaces/http"
	"postpilot/usecase"
)

// newPostRouter wires the post routes with a per-test identity so ownership
// filtering can be exercised from the HTTP surface.
func newPostRouter(userID *string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := httpHandler.NewPostHandler(usecase.NewPostUseCase(persistence.NewPostRepository()))
	router := gin.New()
	router.Use(func(ctx *gin.Context) {
		ctx.Set("user_id", *userID)
		ctx.Next()
	})
	router.GET("/posts", h.List)
	router.POST("/posts", h.Create)
	router.PATCH("/posts/:id/status", h.UpdateStatus)
	router.DELETE("/posts/:id", h.Delete)
	return router
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreatePostWithoutPlatformReturns400(t *testing.T) {
	userID := model.DemoUserID
	router := newPostRouter(&userID)

	w := doJSON(router, http.MethodPost, "/posts", `{"content":"hello"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, http.MethodGet, "/posts", "")
	assert.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Items []model.Post `json:"items"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Empty(t, list.Items)
}

func TestCreateListDeleteOwnerScoped(t *testing.T) {
	userID := "user-1"
	router := newPostRouter(&userID)

	w := doJSON(router, http.MethodPost, "/posts", `{"content":"hello","platform":"tiktok"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	var created model.Post
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "user-1", created.UserID)

	w = doJSON(router, http.MethodGet, "/posts", "")
	var list struct {
		Items []model.Post `json:"items"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list.Items, 1)
	assert.Equal(t, created.ID, list.Items[0].ID)

	// another user sees nothing and cannot delete
	userID = "user-2"
	w = doJSON(router, http.MethodGet, "/posts", "")
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Empty(t, list.Items)

	w = doJSON(router, http.MethodDelete, "/posts/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	// the owner still has it and can delete
	userID = "user-1"
	w = doJSON(router, http.MethodGet, "/posts", "")
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list.Items, 1)

	w = doJSON(router, http.MethodDelete, "/posts/"+created.ID, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateStatusOverHTTP(t *testing.T) {
	userID := "user-1"
	router := newPostRouter(&userID)

	w := doJSON(router, http.MethodPost, "/posts", `{"content":"hello","platform":"tiktok"}`)
	var created model.Post
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(router, http.MethodPatch, "/posts/"+created.ID+"/status", `{"status":"scheduled"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"scheduled"`)

	w = doJSON(router, http.MethodPatch, "/posts/"+created.ID+"/status", `{"status":"bogus"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
