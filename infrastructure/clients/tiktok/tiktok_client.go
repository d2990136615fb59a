package tiktok

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/go-querystring/query"

	"postpilot/domain/dto"
	"postpilot/domain/model"
	"postpilot/domain/repository"
)

const (
	defaultBaseURL    = "https://open.tiktokapis.com"
	defaultMaxResults = 20
	requestTimeout    = 15 * time.Second
)

// Client wraps the TikTok open API v2 display endpoints. Calls carry the
// caller-supplied bearer token; no retries are performed.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a TikTok API client with a bounded request timeout.
func NewClient() repository.ITikTok {
	return &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// NewClientWithBaseURL points the client at an alternate host. Used by tests.
func NewClientWithBaseURL(baseURL string) repository.ITikTok {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

type fieldsQuery struct {
	Fields string `url:"fields"`
}

// apiError is the envelope TikTok attaches to every v2 response.
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	LogID   string `json:"log_id"`
}

func (e *apiError) ok() bool {
	return e == nil || e.Code == "" || e.Code == "ok"
}

type videoListResponse struct {
	Data struct {
		Videos []struct {
			ID               string `json:"id"`
			Title            string `json:"title"`
			VideoDescription string `json:"video_description"`
			Duration         int64  `json:"duration"`
			CoverImageURL    string `json:"cover_image_url"`
			ShareURL         string `json:"share_url"`
			ViewCount        int64  `json:"view_count"`
			LikeCount        int64  `json:"like_count"`
			CommentCount     int64  `json:"comment_count"`
			ShareCount       int64  `json:"share_count"`
			CreateTime       int64  `json:"create_time"`
		} `json:"videos"`
		Cursor  int64 `json:"cursor"`
		HasMore bool  `json:"has_more"`
	} `json:"data"`
	Error *apiError `json:"error"`
}

// ListVideos retrieves a page of the user's videos and normalizes it into the
// application shape.
func (c *Client) ListVideos(ctx context.Context, cred *model.Credential, req *dto.VideoListRequest) (*dto.VideoListResponse, error) {
	if req == nil {
		req = &dto.VideoListRequest{}
	}
	maxCount := req.MaxResults
	if maxCount <= 0 {
		maxCount = defaultMaxResults
	}

	body := map[string]interface{}{"max_count": maxCount}
	if req.PageToken != "" {
		if cursor, err := strconv.ParseInt(req.PageToken, 10, 64); err == nil {
			body["cursor"] = cursor
		}
	}

	fields := fieldsQuery{Fields: "id,title,video_description,duration,cover_image_url,share_url,view_count,like_count,comment_count,share_count,create_time"}
	var out videoListResponse
	if err := c.post(ctx, cred, "/v2/video/list/", fields, body, &out); err != nil {
		return nil, err
	}
	if !out.Error.ok() {
		return nil, &model.ProviderError{Provider: "tiktok", StatusCode: http.StatusOK, Message: out.Error.Message}
	}

	items := make([]dto.Video, 0, len(out.Data.Videos))
	for _, v := range out.Data.Videos {
		items = append(items, dto.Video{
			ID:           v.ID,
			Title:        v.Title,
			Description:  v.VideoDescription,
			CoverURL:     v.CoverImageURL,
			ShareURL:     v.ShareURL,
			Duration:     v.Duration,
			ViewCount:    v.ViewCount,
			LikeCount:    v.LikeCount,
			CommentCount: v.CommentCount,
			ShareCount:   v.ShareCount,
			CreateTime:   v.CreateTime,
		})
	}
	res := &dto.VideoListResponse{Items: items, HasMore: out.Data.HasMore}
	if out.Data.HasMore {
		res.NextPageToken = strconv.FormatInt(out.Data.Cursor, 10)
	}
	return res, nil
}

type commentListResponse struct {
	Data struct {
		Comments []struct {
			ID         string `json:"id"`
			VideoID    string `json:"video_id"`
			Text       string `json:"text"`
			LikeCount  int64  `json:"like_count"`
			ReplyCount int64  `json:"reply_count"`
			Pinned     bool   `json:"pinned"`
			CreateTime int64  `json:"create_time"`
		} `json:"comments"`
		Cursor  int64 `json:"cursor"`
		HasMore bool  `json:"has_more"`
	} `json:"data"`
	Error *apiError `json:"error"`
}

// ListComments retrieves a page of comments for one of the user's videos.
func (c *Client) ListComments(ctx context.Context, cred *model.Credential, req *dto.CommentListRequest) (*dto.CommentListResponse, error) {
	if req == nil || req.VideoID == "" {
		return nil, model.NewValidationError("video_id", "required")
	}
	maxCount := req.MaxResults
	if maxCount <= 0 {
		maxCount = defaultMaxResults
	}

	body := map[string]interface{}{"video_id": req.VideoID, "max_count": maxCount}
	if req.PageToken != "" {
		if cursor, err := strconv.ParseInt(req.PageToken, 10, 64); err == nil {
			body["cursor"] = cursor
		}
	}

	fields := fieldsQuery{Fields: "id,video_id,text,like_count,reply_count,pinned,create_time"}
	var out commentListResponse
	if err := c.post(ctx, cred, "/v2/video/comment/list/", fields, body, &out); err != nil {
		return nil, err
	}
	if !out.Error.ok() {
		return nil, &model.ProviderError{Provider: "tiktok", StatusCode: http.StatusOK, Message: out.Error.Message}
	}

	items := make([]dto.Comment, 0, len(out.Data.Comments))
	for _, cm := range out.Data.Comments {
		items = append(items, dto.Comment{
			ID:         cm.ID,
			VideoID:    cm.VideoID,
			Text:       cm.Text,
			LikeCount:  cm.LikeCount,
			ReplyCount: cm.ReplyCount,
			Pinned:     cm.Pinned,
			CreateTime: cm.CreateTime,
		})
	}
	res := &dto.CommentListResponse{Items: items, HasMore: out.Data.HasMore}
	if out.Data.HasMore {
		res.NextPageToken = strconv.FormatInt(out.Data.Cursor, 10)
	}
	return res, nil
}

// post issues an authenticated JSON POST and decodes the response envelope.
func (c *Client) post(ctx context.Context, cred *model.Credential, path string, q fieldsQuery, body map[string]interface{}, out interface{}) error {
	values, err := query.Values(q)
	if err != nil {
		return err
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	u := fmt.Sprintf("%s%s?%s", c.baseURL, path, values.Encode())
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Authorization", "Bearer "+cred.AccessToken)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return &model.ProviderError{Provider: "tiktok", StatusCode: http.StatusBadGateway, Message: "request failed"}
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode == http.StatusUnauthorized {
		return model.ErrUnauthenticated
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var envelope struct {
			Error *apiError `json:"error"`
		}
		msg := "unexpected status"
		if jsonErr := json.Unmarshal(raw, &envelope); jsonErr == nil && envelope.Error != nil && envelope.Error.Message != "" {
			msg = envelope.Error.Message
		}
		return &model.ProviderError{Provider: "tiktok", StatusCode: resp.StatusCode, Message: msg}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &model.ProviderError{Provider: "tiktok", StatusCode: resp.StatusCode, Message: "malformed response"}
	}
	return nil
}
