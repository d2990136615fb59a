package repository

import (
	"context"

	"postpilot/domain/model"
)

// IPost is the storage capability for posts: get/put/delete by key with an
// ownership filter. The demo in-memory implementation can be swapped for a
// persistent store without touching route logic.
type IPost interface {
	Create(ctx context.Context, post *model.Post) error
	GetByID(ctx context.Context, id, userID string) (*model.Post, error)
	ListByUser(ctx context.Context, userID string) ([]model.Post, error)
	UpdateStatus(ctx context.Context, id, userID, status string) (*model.Post, error)
	Delete(ctx context.Context, id, userID string) error
}
