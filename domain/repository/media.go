package repository

import (
	"context"

	"postpilot/domain/model"
)

// IMedia is the storage capability for media library items.
type IMedia interface {
	// Put stores an item. An existing item with the same owner and name is
	// replaced (re-upload semantics).
	Put(ctx context.Context, item *model.MediaItem) error
	ListByUser(ctx context.Context, userID string) ([]model.MediaItem, error)
	Delete(ctx context.Context, id, userID string) error
}
