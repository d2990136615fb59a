package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"postpilot/domain/dto"
	"postpilot/domain/model"
	"postpilot/domain/repository"
	"postpilot/infrastructure/logger"
	"postpilot/infrastructure/utils"
)

const cacheTTL = 2 * time.Minute

// IIntegrationUseCase exposes authenticated reads against connected
// providers. Every call checks credential expiry first: a known-expired
// credential never reaches a provider.
type IIntegrationUseCase interface {
	ListVideos(ctx context.Context, cred *model.Credential, req *dto.VideoListRequest) (*dto.VideoListResponse, error)
	ListComments(ctx context.Context, cred *model.Credential, req *dto.CommentListRequest) (*dto.CommentListResponse, error)
	ListAlbums(ctx context.Context, cred *model.Credential, req *dto.AlbumListRequest) (*dto.AlbumListResponse, error)
}

// IntegrationUseCase implements IIntegrationUseCase over the provider
// clients, with an optional short-TTL response cache in front.
type IntegrationUseCase struct {
	tiktok repository.ITikTok
	photos repository.IGooglePhotos
	cache  repository.IIntegrationCache
	now    func() time.Time
}

func NewIntegrationUseCase(tiktok repository.ITikTok, photos repository.IGooglePhotos) *IntegrationUseCase {
	return &IntegrationUseCase{tiktok: tiktok, photos: photos, now: utils.GetCurrentTime}
}

// WithCache enables the response cache on the use case (fluent).
func (u *IntegrationUseCase) WithCache(cache repository.IIntegrationCache) *IntegrationUseCase {
	u.cache = cache
	return u
}

func (u *IntegrationUseCase) checkCredential(cred *model.Credential) error {
	if cred == nil || cred.AccessToken == "" {
		return model.ErrUnauthenticated
	}
	if cred.Expired(u.now()) {
		return model.ErrUnauthenticated
	}
	return nil
}

// cacheKey derives a stable key from the credential and page position without
// storing the raw token.
func cacheKey(kind string, cred *model.Credential, extra string) string {
	sum := sha256.Sum256([]byte(cred.AccessToken))
	return fmt.Sprintf("integrations:%s:%s:%s", kind, hex.EncodeToString(sum[:8]), extra)
}

func (u *IntegrationUseCase) ListVideos(ctx context.Context, cred *model.Credential, req *dto.VideoListRequest) (*dto.VideoListResponse, error) {
	if err := u.checkCredential(cred); err != nil {
		return nil, err
	}
	if u.tiktok == nil {
		return nil, model.ErrNotConfigured
	}
	if req == nil {
		req = &dto.VideoListRequest{}
	}

	key := cacheKey("tiktok:videos", cred, req.PageToken)
	if u.cache != nil {
		if raw, ok := u.cache.Get(ctx, key); ok {
			var cached dto.VideoListResponse
			if err := json.Unmarshal(raw, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	res, err := u.tiktok.ListVideos(ctx, cred, req)
	if err != nil {
		return nil, err
	}
	u.store(ctx, key, res)
	return res, nil
}

func (u *IntegrationUseCase) ListComments(ctx context.Context, cred *model.Credential, req *dto.CommentListRequest) (*dto.CommentListResponse, error) {
	if err := u.checkCredential(cred); err != nil {
		return nil, err
	}
	if u.tiktok == nil {
		return nil, model.ErrNotConfigured
	}
	if req == nil || req.VideoID == "" {
		return nil, model.NewValidationError("video_id", "required")
	}

	key := cacheKey("tiktok:comments", cred, req.VideoID+":"+req.PageToken)
	if u.cache != nil {
		if raw, ok := u.cache.Get(ctx, key); ok {
			var cached dto.CommentListResponse
			if err := json.Unmarshal(raw, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	res, err := u.tiktok.ListComments(ctx, cred, req)
	if err != nil {
		return nil, err
	}
	u.store(ctx, key, res)
	return res, nil
}

func (u *IntegrationUseCase) ListAlbums(ctx context.Context, cred *model.Credential, req *dto.AlbumListRequest) (*dto.AlbumListResponse, error) {
	if err := u.checkCredential(cred); err != nil {
		return nil, err
	}
	if u.photos == nil {
		return nil, model.ErrNotConfigured
	}
	if req == nil {
		req = &dto.AlbumListRequest{}
	}

	key := cacheKey("google-photos:albums", cred, req.PageToken)
	if u.cache != nil {
		if raw, ok := u.cache.Get(ctx, key); ok {
			var cached dto.AlbumListResponse
			if err := json.Unmarshal(raw, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	res, err := u.photos.ListAlbums(ctx, cred, req)
	if err != nil {
		return nil, err
	}
	u.store(ctx, key, res)
	return res, nil
}

func (u *IntegrationUseCase) store(ctx context.Context, key string, value interface{}) {
	if u.cache == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		logger.GetLogger().WithField("error", err).Debug("integration cache marshal failed")
		return
	}
	u.cache.Set(ctx, key, raw, cacheTTL)
}
