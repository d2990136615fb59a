package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"postpilot/domain/dto"
	"postpilot/usecase"
)

// IMediaHandler defines the media library endpoints.
type IMediaHandler interface {
	Upload(ctx *gin.Context)
	List(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type MediaHandler struct {
	mediaUseCase usecase.IMediaUseCase
}

func NewMediaHandler(mediaUseCase usecase.IMediaUseCase) IMediaHandler {
	return &MediaHandler{mediaUseCase: mediaUseCase}
}

// Upload handles POST /api/media.
func (h *MediaHandler) Upload(ctx *gin.Context) {
	var req dto.MediaCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "bad_request", Details: "invalid JSON body"})
		return
	}
	item, err := h.mediaUseCase.Upload(ctx.Request.Context(), currentUserID(ctx), &req)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, item)
}

// List handles GET /api/media.
func (h *MediaHandler) List(ctx *gin.Context) {
	items, err := h.mediaUseCase.List(ctx.Request.Context(), currentUserID(ctx))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ListRes{Items: items})
}

// Delete handles DELETE /api/media/:id.
func (h *MediaHandler) Delete(ctx *gin.Context) {
	if err := h.mediaUseCase.Delete(ctx.Request.Context(), currentUserID(ctx), ctx.Param("id")); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessRes{Success: true})
}
