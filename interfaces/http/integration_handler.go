package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"postpilot/domain/dto"
	"postpilot/infrastructure/tokenstore"
	"postpilot/usecase"
)

// IIntegrationHandler defines the provider read endpoints.
type IIntegrationHandler interface {
	ListVideos(ctx *gin.Context)
	ListComments(ctx *gin.Context)
	ListAlbums(ctx *gin.Context)
}

// IntegrationHandler reads the per-provider credential cookie and delegates
// to the integration use case.
type IntegrationHandler struct {
	integrations usecase.IIntegrationUseCase
	store        *tokenstore.CookieStore
}

func NewIntegrationHandler(integrations usecase.IIntegrationUseCase, store *tokenstore.CookieStore) IIntegrationHandler {
	return &IntegrationHandler{integrations: integrations, store: store}
}

func pageQuery(ctx *gin.Context) (int64, string) {
	var maxResults int64
	if raw := ctx.Query("max_results"); raw != "" {
		if val, err := strconv.ParseInt(raw, 10, 64); err == nil {
			maxResults = val
		}
	}
	return maxResults, ctx.Query("page_token")
}

// ListVideos handles GET /api/integrations/tiktok/videos.
func (h *IntegrationHandler) ListVideos(ctx *gin.Context) {
	cred, err := h.store.ReadCredential(ctx, "tiktok")
	if err != nil {
		writeError(ctx, err)
		return
	}
	maxResults, pageToken := pageQuery(ctx)
	res, err := h.integrations.ListVideos(ctx.Request.Context(), cred, &dto.VideoListRequest{
		MaxResults: maxResults,
		PageToken:  pageToken,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ListRes{Items: res.Items, NextPageToken: res.NextPageToken})
}

// ListComments handles GET /api/integrations/tiktok/videos/:videoId/comments.
func (h *IntegrationHandler) ListComments(ctx *gin.Context) {
	cred, err := h.store.ReadCredential(ctx, "tiktok")
	if err != nil {
		writeError(ctx, err)
		return
	}
	maxResults, pageToken := pageQuery(ctx)
	res, err := h.integrations.ListComments(ctx.Request.Context(), cred, &dto.CommentListRequest{
		VideoID:    ctx.Param("videoId"),
		MaxResults: maxResults,
		PageToken:  pageToken,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ListRes{Items: res.Items, NextPageToken: res.NextPageToken})
}

// ListAlbums handles GET /api/integrations/google-photos/albums.
func (h *IntegrationHandler) ListAlbums(ctx *gin.Context) {
	cred, err := h.store.ReadCredential(ctx, "google-photos")
	if err != nil {
		writeError(ctx, err)
		return
	}
	maxResults, pageToken := pageQuery(ctx)
	res, err := h.integrations.ListAlbums(ctx.Request.Context(), cred, &dto.AlbumListRequest{
		MaxResults: maxResults,
		PageToken:  pageToken,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ListRes{Items: res.Items, NextPageToken: res.NextPageToken})
}
