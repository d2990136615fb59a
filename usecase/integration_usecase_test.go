package usecase_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"postpilot/domain/dto"
	"postpilot/domain/model"
	"postpilot/usecase"
)

// Mock implementations

type MockTikTok struct {
	mock.Mock
}

func (m *MockTikTok) ListVideos(ctx context.Context, cred *model.Credential, req *dto.VideoListRequest) (*dto.VideoListResponse, error) {
	args := m.Called(ctx, cred, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.VideoListResponse), args.Error(1)
}

func (m *MockTikTok) ListComments(ctx context.Context, cred *model.Credential, req *dto.CommentListRequest) (*dto.CommentListResponse, error) {
	args := m.Called(ctx, cred, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CommentListResponse), args.Error(1)
}

type MockGooglePhotos struct {
	mock.Mock
}

func (m *MockGooglePhotos) ListAlbums(ctx context.Context, cred *model.Credential, req *dto.AlbumListRequest) (*dto.AlbumListResponse, error) {
	args := m.Called(ctx, cred, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AlbumListResponse), args.Error(1)
}

type MockIntegrationCache struct {
	mock.Mock
}

func (m *MockIntegrationCache) Get(ctx context.Context, key string) ([]byte, bool) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).([]byte), args.Bool(1)
}

func (m *MockIntegrationCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	m.Called(ctx, key, value, ttl)
}

func validCredential() *model.Credential {
	return &model.Credential{
		AccessToken: "token-123",
		ExpiresAt:   time.Now().Add(time.Hour).UnixMilli(),
	}
}

func expiredCredential() *model.Credential {
	return &model.Credential{
		AccessToken: "token-123",
		ExpiresAt:   time.Now().Add(-time.Minute).UnixMilli(),
	}
}

func TestListVideosExpiredCredentialShortCircuits(t *testing.T) {
	mockTikTok := new(MockTikTok)
	mockPhotos := new(MockGooglePhotos)
	uc := usecase.NewIntegrationUseCase(mockTikTok, mockPhotos)

	res, err := uc.ListVideos(context.Background(), expiredCredential(), &dto.VideoListRequest{})
	assert.Nil(t, res)
	assert.ErrorIs(t, err, model.ErrUnauthenticated)
	mockTikTok.AssertNotCalled(t, "ListVideos", mock.Anything, mock.Anything, mock.Anything)
}

func TestListVideosNilCredentialShortCircuits(t *testing.T) {
	mockTikTok := new(MockTikTok)
	uc := usecase.NewIntegrationUseCase(mockTikTok, new(MockGooglePhotos))

	_, err := uc.ListVideos(context.Background(), nil, &dto.VideoListRequest{})
	assert.ErrorIs(t, err, model.ErrUnauthenticated)
	mockTikTok.AssertNotCalled(t, "ListVideos", mock.Anything, mock.Anything, mock.Anything)
}

func TestListVideosPassesThroughNormalizedPage(t *testing.T) {
	mockTikTok := new(MockTikTok)
	uc := usecase.NewIntegrationUseCase(mockTikTok, new(MockGooglePhotos))

	expected := &dto.VideoListResponse{
		Items:         []dto.Video{{ID: "v1", Title: "First"}},
		NextPageToken: "20",
		HasMore:       true,
	}
	mockTikTok.On("ListVideos", mock.Anything, mock.Anything, mock.Anything).
		Return(expected, nil).
		Once()

	res, err := uc.ListVideos(context.Background(), validCredential(), &dto.VideoListRequest{})
	assert.NoError(t, err)
	assert.Equal(t, expected, res)
	mockTikTok.AssertExpectations(t)
}

func TestListVideosProviderErrorSurfacesUnchanged(t *testing.T) {
	mockTikTok := new(MockTikTok)
	uc := usecase.NewIntegrationUseCase(mockTikTok, new(MockGooglePhotos))

	provErr := &model.ProviderError{Provider: "tiktok", StatusCode: 500, Message: "rate limited"}
	mockTikTok.On("ListVideos", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, provErr).
		Once()

	_, err := uc.ListVideos(context.Background(), validCredential(), &dto.VideoListRequest{})
	var got *model.ProviderError
	assert.ErrorAs(t, err, &got)
	assert.Equal(t, "tiktok", got.Provider)
}

func TestListVideosCacheHitSkipsProvider(t *testing.T) {
	mockTikTok := new(MockTikTok)
	mockCache := new(MockIntegrationCache)
	uc := usecase.NewIntegrationUseCase(mockTikTok, new(MockGooglePhotos)).WithCache(mockCache)

	cached := &dto.VideoListResponse{Items: []dto.Video{{ID: "v1"}}}
	raw, _ := json.Marshal(cached)
	mockCache.On("Get", mock.Anything, mock.AnythingOfType("string")).
		Return(raw, true).
		Once()

	res, err := uc.ListVideos(context.Background(), validCredential(), &dto.VideoListRequest{})
	assert.NoError(t, err)
	assert.Equal(t, cached, res)
	mockTikTok.AssertNotCalled(t, "ListVideos", mock.Anything, mock.Anything, mock.Anything)
}

func TestListVideosCacheMissStoresResponse(t *testing.T) {
	mockTikTok := new(MockTikTok)
	mockCache := new(MockIntegrationCache)
	uc := usecase.NewIntegrationUseCase(mockTikTok, new(MockGooglePhotos)).WithCache(mockCache)

	expected := &dto.VideoListResponse{Items: []dto.Video{{ID: "v1"}}}
	mockCache.On("Get", mock.Anything, mock.AnythingOfType("string")).
		Return(nil, false).
		Once()
	mockTikTok.On("ListVideos", mock.Anything, mock.Anything, mock.Anything).
		Return(expected, nil).
		Once()
	mockCache.On("Set", mock.Anything, mock.AnythingOfType("string"), mock.Anything, mock.Anything).
		Once()

	res, err := uc.ListVideos(context.Background(), validCredential(), &dto.VideoListRequest{})
	assert.NoError(t, err)
	assert.Equal(t, expected, res)
	mockCache.AssertExpectations(t)
}

func TestListCommentsRequiresVideoID(t *testing.T) {
	mockTikTok := new(MockTikTok)
	uc := usecase.NewIntegrationUseCase(mockTikTok, new(MockGooglePhotos))

	_, err := uc.ListComments(context.Background(), validCredential(), &dto.CommentListRequest{})
	var validationErr *model.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	mockTikTok.AssertNotCalled(t, "ListComments", mock.Anything, mock.Anything, mock.Anything)
}

func TestListAlbumsExpiredCredentialShortCircuits(t *testing.T) {
	mockPhotos := new(MockGooglePhotos)
	uc := usecase.NewIntegrationUseCase(new(MockTikTok), mockPhotos)

	_, err := uc.ListAlbums(context.Background(), expiredCredential(), &dto.AlbumListRequest{})
	assert.ErrorIs(t, err, model.ErrUnauthenticated)
	mockPhotos.AssertNotCalled(t, "ListAlbums", mock.Anything, mock.Anything, mock.Anything)
}

func TestListAlbumsPassesThrough(t *testing.T) {
	mockPhotos := new(MockGooglePhotos)
	uc := usecase.NewIntegrationUseCase(new(MockTikTok), mockPhotos)

	expected := &dto.AlbumListResponse{
		Items:         []dto.Album{{ID: "a1", Title: "Trip", ItemCount: 3}},
		NextPageToken: "next",
	}
	mockPhotos.On("ListAlbums", mock.Anything, mock.Anything, mock.Anything).
		Return(expected, nil).
		Once()

	res, err := uc.ListAlbums(context.Background(), validCredential(), &dto.AlbumListRequest{})
	assert.NoError(t, err)
	assert.Equal(t, expected, res)
}
