package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"postpilot/domain/dto"
	"postpilot/domain/model"
	"postpilot/infrastructure/persistence"
	"postpilot/usecase"
)

func newMediaUseCase() usecase.IMediaUseCase {
	return usecase.NewMediaUseCase(persistence.NewMediaRepository())
}

func TestUploadValidation(t *testing.T) {
	uc := newMediaUseCase()

	var validationErr *model.ValidationError

	_, err := uc.Upload(context.Background(), "user-1", &dto.MediaCreateRequest{Type: "image"})
	assert.ErrorAs(t, err, &validationErr)

	_, err = uc.Upload(context.Background(), "user-1", &dto.MediaCreateRequest{Name: "a.gif", Type: "gif"})
	assert.ErrorAs(t, err, &validationErr)

	_, err = uc.Upload(context.Background(), "user-1", &dto.MediaCreateRequest{Name: "a.png", Type: "image", Size: -1})
	assert.ErrorAs(t, err, &validationErr)
}

func TestReUploadReplacesExistingItem(t *testing.T) {
	uc := newMediaUseCase()

	first, err := uc.Upload(context.Background(), "user-1", &dto.MediaCreateRequest{Name: "banner.png", Type: "image", Size: 100})
	assert.NoError(t, err)

	second, err := uc.Upload(context.Background(), "user-1", &dto.MediaCreateRequest{Name: "banner.png", Type: "image", Size: 250, Tags: []string{"hero"}})
	assert.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	items, err := uc.List(context.Background(), "user-1")
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, int64(250), items[0].Size)
	assert.Equal(t, []string{"hero"}, items[0].Tags)
}

func TestMediaOwnershipScoping(t *testing.T) {
	uc := newMediaUseCase()

	item, err := uc.Upload(context.Background(), "user-1", &dto.MediaCreateRequest{Name: "clip.mp4", Type: "video", Size: 1024})
	assert.NoError(t, err)

	theirs, err := uc.List(context.Background(), "user-2")
	assert.NoError(t, err)
	assert.Empty(t, theirs)

	err = uc.Delete(context.Background(), "user-2", item.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)

	assert.NoError(t, uc.Delete(context.Background(), "user-1", item.ID))
}
