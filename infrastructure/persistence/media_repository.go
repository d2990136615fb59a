package persistence

import (
	"context"
	"sync"

	"postpilot/domain/model"
	"postpilot/domain/repository"
)

// MediaRepository is the in-memory demo store for media library items.
type MediaRepository struct {
	mu    sync.RWMutex
	items map[string]*model.MediaItem
	order []string
}

func NewMediaRepository() repository.IMedia {
	return &MediaRepository{items: map[string]*model.MediaItem{}}
}

// Put stores an item. An existing item with the same owner and name is
// replaced in place, keeping its position.
func (r *MediaRepository) Put(ctx context.Context, item *model.MediaItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, existing := range r.items {
		if existing.UserID == item.UserID && existing.Name == item.Name {
			clone := *item
			clone.ID = id
			r.items[id] = &clone
			item.ID = id
			return nil
		}
	}
	clone := *item
	r.items[item.ID] = &clone
	r.order = append(r.order, item.ID)
	return nil
}

func (r *MediaRepository) ListByUser(ctx context.Context, userID string) ([]model.MediaItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.MediaItem, 0)
	for _, id := range r.order {
		if item, ok := r.items[id]; ok && item.UserID == userID {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (r *MediaRepository) Delete(ctx context.Context, id, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok || item.UserID != userID {
		return model.ErrNotFound
	}
	delete(r.items, id)
	for i, mid := range r.order {
		if mid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
