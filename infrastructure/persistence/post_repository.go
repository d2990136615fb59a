package persistence

import (
	"context"
	"sync"

	"postpilot/domain/model"
	"postpilot/domain/repository"
)

// PostRepository is the in-memory demo store for posts. Contents are lost on
// restart; no durability guarantee is made.
type PostRepository struct {
	mu    sync.RWMutex
	posts map[string]*model.Post
	order []string
}

func NewPostRepository() repository.IPost {
	return &PostRepository{posts: map[string]*model.Post{}}
}

func (r *PostRepository) Create(ctx context.Context, post *model.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *post
	r.posts[post.ID] = &clone
	r.order = append(r.order, post.ID)
	return nil
}

func (r *PostRepository) GetByID(ctx context.Context, id, userID string) (*model.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	post, ok := r.posts[id]
	if !ok || post.UserID != userID {
		return nil, model.ErrNotFound
	}
	clone := *post
	return &clone, nil
}

func (r *PostRepository) ListByUser(ctx context.Context, userID string) ([]model.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Post, 0)
	for _, id := range r.order {
		if post, ok := r.posts[id]; ok && post.UserID == userID {
			out = append(out, *post)
		}
	}
	return out, nil
}

func (r *PostRepository) UpdateStatus(ctx context.Context, id, userID, status string) (*model.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	post, ok := r.posts[id]
	if !ok || post.UserID != userID {
		return nil, model.ErrNotFound
	}
	post.Status = status
	clone := *post
	return &clone, nil
}

func (r *PostRepository) Delete(ctx context.Context, id, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	post, ok := r.posts[id]
	if !ok || post.UserID != userID {
		return model.ErrNotFound
	}
	delete(r.posts, id)
	for i, pid := range r.order {
		if pid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
