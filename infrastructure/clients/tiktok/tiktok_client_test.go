package tiktok_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"postpilot/domain/dto"
	"postpilot/domain/model"
	"postpilot/infrastructure/clients/tiktok"
)

func testCredential() *model.Credential {
	return &model.Credential{
		AccessToken: "token-123",
		ExpiresAt:   time.Now().Add(time.Hour).UnixMilli(),
	}
}

func TestListVideosNormalizesResponse(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, "/v2/video/list/", r.URL.Path)
		assert.NotEmpty(t, r.URL.Query().Get("fields"))

		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.EqualValues(t, 5, body["max_count"])

		_, _ = w.Write([]byte(`{
			"data": {
				"videos": [
					{"id":"v1","title":"First","video_description":"desc","duration":30,"view_count":100,"like_count":7,"share_url":"https://t/v1"},
					{"id":"v2","title":"Second"}
				],
				"cursor": 1700000000,
				"has_more": true
			},
			"error": {"code":"ok","message":"","log_id":"x"}
		}`))
	}))
	defer server.Close()

	client := tiktok.NewClientWithBaseURL(server.URL)
	res, err := client.ListVideos(context.Background(), testCredential(), &dto.VideoListRequest{MaxResults: 5})
	assert.NoError(t, err)
	assert.Equal(t, "Bearer token-123", gotAuth)
	assert.Len(t, res.Items, 2)
	assert.Equal(t, "v1", res.Items[0].ID)
	assert.Equal(t, int64(100), res.Items[0].ViewCount)
	// missing counts default to zero
	assert.Equal(t, int64(0), res.Items[1].ViewCount)
	assert.Equal(t, int64(0), res.Items[1].LikeCount)
	assert.True(t, res.HasMore)
	assert.Equal(t, "1700000000", res.NextPageToken)
}

func TestListVideosErrorEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{},"error":{"code":"rate_limit_exceeded","message":"too many requests","log_id":"y"}}`))
	}))
	defer server.Close()

	client := tiktok.NewClientWithBaseURL(server.URL)
	_, err := client.ListVideos(context.Background(), testCredential(), nil)
	var providerErr *model.ProviderError
	assert.ErrorAs(t, err, &providerErr)
	assert.Equal(t, "tiktok", providerErr.Provider)
	assert.Equal(t, "too many requests", providerErr.Message)
}

func TestListVideosUnauthorizedStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := tiktok.NewClientWithBaseURL(server.URL)
	_, err := client.ListVideos(context.Background(), testCredential(), nil)
	assert.ErrorIs(t, err, model.ErrUnauthenticated)
}

func TestListCommentsRequiresVideoID(t *testing.T) {
	client := tiktok.NewClientWithBaseURL("http://unused.invalid")
	_, err := client.ListComments(context.Background(), testCredential(), &dto.CommentListRequest{})
	var validationErr *model.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestListCommentsNormalizesResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/video/comment/list/", r.URL.Path)
		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "v1", body["video_id"])

		_, _ = w.Write([]byte(`{
			"data": {
				"comments": [
					{"id":"c1","video_id":"v1","text":"nice","like_count":2,"reply_count":1,"pinned":true,"create_time":1700000001}
				],
				"cursor": 0,
				"has_more": false
			},
			"error": {"code":"ok"}
		}`))
	}))
	defer server.Close()

	client := tiktok.NewClientWithBaseURL(server.URL)
	res, err := client.ListComments(context.Background(), testCredential(), &dto.CommentListRequest{VideoID: "v1"})
	assert.NoError(t, err)
	assert.Len(t, res.Items, 1)
	assert.Equal(t, "c1", res.Items[0].ID)
	assert.True(t, res.Items[0].Pinned)
	assert.False(t, res.HasMore)
	assert.Empty(t, res.NextPageToken)
}

func TestExchangeSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "client-key", r.Form.Get("client_key"))
		assert.Equal(t, "authorization_code", r.Form.Get("grant_type"))
		assert.Equal(t, "code-abc", r.Form.Get("code"))

		_, _ = w.Write([]byte(`{"access_token":"at-1","refresh_token":"rt-1","expires_in":86400,"open_id":"open-1","token_type":"Bearer"}`))
	}))
	defer server.Close()

	p := tiktok.NewOAuthProviderWithTokenURL("client-key", "secret", "https://app.example.com/auth/tiktok/callback", server.URL)
	cred, err := p.Exchange(context.Background(), "code-abc")
	assert.NoError(t, err)
	assert.Equal(t, "at-1", cred.AccessToken)
	assert.Equal(t, "rt-1", cred.RefreshToken)
	assert.Greater(t, cred.ExpiresAt, time.Now().UnixMilli())
}

func TestExchangeProviderErrorNotLeaked(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_grant","error_description":"Authorization code expired","log_id":"z"}`))
	}))
	defer server.Close()

	p := tiktok.NewOAuthProviderWithTokenURL("client-key", "secret", "https://app.example.com/auth/tiktok/callback", server.URL)
	cred, err := p.Exchange(context.Background(), "stale")
	assert.Nil(t, cred)
	var providerErr *model.ProviderError
	assert.ErrorAs(t, err, &providerErr)
	assert.Equal(t, http.StatusBadRequest, providerErr.StatusCode)
}

func TestAuthCodeURLCarriesClientKeyAndState(t *testing.T) {
	p := tiktok.NewOAuthProvider("client-key", "secret", "https://app.example.com/auth/tiktok/callback")
	u := p.AuthCodeURL("state-1")
	assert.Contains(t, u, "client_key=client-key")
	assert.Contains(t, u, "state=state-1")
	assert.Contains(t, u, "response_type=code")
}
