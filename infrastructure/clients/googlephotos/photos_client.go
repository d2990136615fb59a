package googlephotos

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"postpilot/domain/dto"
	"postpilot/domain/model"
	"postpilot/domain/repository"
)

const (
	defaultBaseURL  = "https://photoslibrary.googleapis.com"
	defaultPageSize = 20
	requestTimeout  = 15 * time.Second
)

// Client wraps the Google Photos Library REST API for album listing.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Google Photos client with a bounded request timeout.
func NewClient() repository.IGooglePhotos {
	return &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// NewClientWithBaseURL points the client at an alternate host. Used by tests.
func NewClientWithBaseURL(baseURL string) repository.IGooglePhotos {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

type albumListResponse struct {
	Albums []struct {
		ID                    string `json:"id"`
		Title                 string `json:"title"`
		ProductURL            string `json:"productUrl"`
		IsWriteable           bool   `json:"isWriteable"`
		MediaItemsCount       string `json:"mediaItemsCount"`
		CoverPhotoBaseURL     string `json:"coverPhotoBaseUrl"`
		CoverPhotoMediaItemID string `json:"coverPhotoMediaItemId"`
	} `json:"albums"`
	NextPageToken string `json:"nextPageToken"`
}

// ListAlbums retrieves a page of the user's albums and normalizes it. The
// provider reports item counts as strings; unparseable or missing counts
// default to zero.
func (c *Client) ListAlbums(ctx context.Context, cred *model.Credential, req *dto.AlbumListRequest) (*dto.AlbumListResponse, error) {
	if req == nil {
		req = &dto.AlbumListRequest{}
	}
	pageSize := req.MaxResults
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	q := url.Values{}
	q.Set("pageSize", strconv.FormatInt(pageSize, 10))
	if req.PageToken != "" {
		q.Set("pageToken", req.PageToken)
	}

	u := fmt.Sprintf("%s/v1/albums?%s", c.baseURL, q.Encode())
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+cred.AccessToken)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &model.ProviderError{Provider: "google-photos", StatusCode: http.StatusBadGateway, Message: "request failed"}
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, model.ErrUnauthenticated
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var envelope struct {
			Error struct {
				Message string `json:"message"`
				Status  string `json:"status"`
			} `json:"error"`
		}
		msg := "unexpected status"
		if jsonErr := json.Unmarshal(raw, &envelope); jsonErr == nil && envelope.Error.Message != "" {
			msg = envelope.Error.Message
		}
		return nil, &model.ProviderError{Provider: "google-photos", StatusCode: resp.StatusCode, Message: msg}
	}

	var out albumListResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, &model.ProviderError{Provider: "google-photos", StatusCode: resp.StatusCode, Message: "malformed response"}
	}

	items := make([]dto.Album, 0, len(out.Albums))
	for _, a := range out.Albums {
		count, _ := strconv.ParseInt(a.MediaItemsCount, 10, 64)
		items = append(items, dto.Album{
			ID:            a.ID,
			Title:         a.Title,
			ItemCount:     count,
			CoverPhotoURL: a.CoverPhotoBaseURL,
			ProductURL:    a.ProductURL,
			Writeable:     a.IsWriteable,
		})
	}
	return &dto.AlbumListResponse{Items: items, NextPageToken: out.NextPageToken}, nil
}
