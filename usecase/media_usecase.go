package usecase

import (
	"context"

	"github.com/google/uuid"

	"postpilot/domain/dto"
	"postpilot/domain/model"
	"postpilot/domain/repository"
	"postpilot/infrastructure/utils"
)

// IMediaUseCase covers the media library surface.
type IMediaUseCase interface {
	Upload(ctx context.Context, userID string, req *dto.MediaCreateRequest) (*model.MediaItem, error)
	List(ctx context.Context, userID string) ([]model.MediaItem, error)
	Delete(ctx context.Context, userID, id string) error
}

// MediaUseCase implements IMediaUseCase over the injected store.
type MediaUseCase struct {
	media repository.IMedia
}

func NewMediaUseCase(media repository.IMedia) IMediaUseCase {
	return &MediaUseCase{media: media}
}

// Upload validates and stores item metadata. Re-uploading an existing name
// replaces the previous item; items are never mutated in place.
func (u *MediaUseCase) Upload(ctx context.Context, userID string, req *dto.MediaCreateRequest) (*model.MediaItem, error) {
	if req == nil || req.Name == "" {
		return nil, model.NewValidationError("name", "required")
	}
	if !model.ValidMediaType(req.Type) {
		return nil, model.NewValidationError("type", "must be image, video, or audio")
	}
	if req.Size < 0 {
		return nil, model.NewValidationError("size", "must be non-negative")
	}

	item := &model.MediaItem{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      req.Name,
		Type:      req.Type,
		Size:      req.Size,
		Tags:      req.Tags,
		CreatedAt: utils.GetCurrentTime(),
	}
	if item.Tags == nil {
		item.Tags = []string{}
	}
	if err := u.media.Put(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (u *MediaUseCase) List(ctx context.Context, userID string) ([]model.MediaItem, error) {
	return u.media.ListByUser(ctx, userID)
}

func (u *MediaUseCase) Delete(ctx context.Context, userID, id string) error {
	return u.media.Delete(ctx, id, userID)
}
