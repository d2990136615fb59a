package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"postpilot/domain/dto"
	"postpilot/domain/model"
	"postpilot/usecase"
)

// IPostHandler defines the demo post CRUD endpoints.
type IPostHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	UpdateStatus(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type PostHandler struct {
	postUseCase usecase.IPostUseCase
}

func NewPostHandler(postUseCase usecase.IPostUseCase) IPostHandler {
	return &PostHandler{postUseCase: postUseCase}
}

func currentUserID(ctx *gin.Context) string {
	if userID := ctx.GetString("user_id"); userID != "" {
		return userID
	}
	return model.DemoUserID
}

// Create handles POST /api/posts.
func (h *PostHandler) Create(ctx *gin.Context) {
	var req dto.PostCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "bad_request", Details: "invalid JSON body"})
		return
	}
	post, err := h.postUseCase.Create(ctx.Request.Context(), currentUserID(ctx), &req)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, post)
}

// List handles GET /api/posts.
func (h *PostHandler) List(ctx *gin.Context) {
	posts, err := h.postUseCase.List(ctx.Request.Context(), currentUserID(ctx))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ListRes{Items: posts})
}

// UpdateStatus handles PATCH /api/posts/:id/status.
func (h *PostHandler) UpdateStatus(ctx *gin.Context) {
	var req dto.PostStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "bad_request", Details: "invalid JSON body"})
		return
	}
	post, err := h.postUseCase.UpdateStatus(ctx.Request.Context(), currentUserID(ctx), ctx.Param("id"), req.Status)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, post)
}

// Delete handles DELETE /api/posts/:id.
func (h *PostHandler) Delete(ctx *gin.Context) {
	if err := h.postUseCase.Delete(ctx.Request.Context(), currentUserID(ctx), ctx.Param("id")); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessRes{Success: true})
}
