package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"postpilot/domain/dto"
	"postpilot/domain/model"
	"postpilot/domain/repository"
	"postpilot/infrastructure/utils"
)

// IPostUseCase covers the demo post CRUD surface.
type IPostUseCase interface {
	Create(ctx context.Context, userID string, req *dto.PostCreateRequest) (*model.Post, error)
	List(ctx context.Context, userID string) ([]model.Post, error)
	UpdateStatus(ctx context.Context, userID, id, status string) (*model.Post, error)
	Delete(ctx context.Context, userID, id string) error
}

// PostUseCase implements IPostUseCase over the injected store.
type PostUseCase struct {
	posts repository.IPost
}

func NewPostUseCase(posts repository.IPost) IPostUseCase {
	return &PostUseCase{posts: posts}
}

// Create validates the request and stores a new post. Content and platform
// are both required; a failed validation leaves the store untouched.
func (u *PostUseCase) Create(ctx context.Context, userID string, req *dto.PostCreateRequest) (*model.Post, error) {
	if req == nil || req.Content == "" {
		return nil, model.NewValidationError("content", "required")
	}
	if req.Platform == "" {
		return nil, model.NewValidationError("platform", "required")
	}

	post := &model.Post{
		ID:        uuid.NewString(),
		UserID:    userID,
		Content:   req.Content,
		Platform:  req.Platform,
		Status:    model.PostStatusDraft,
		CreatedAt: utils.GetCurrentTime(),
	}
	if req.ScheduledTime != "" {
		scheduled, err := time.Parse(time.RFC3339, req.ScheduledTime)
		if err != nil {
			return nil, model.NewValidationError("scheduled_time", "must be RFC3339")
		}
		post.ScheduledTime = &scheduled
		post.Status = model.PostStatusScheduled
	}

	if err := u.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (u *PostUseCase) List(ctx context.Context, userID string) ([]model.Post, error) {
	return u.posts.ListByUser(ctx, userID)
}

// UpdateStatus applies a lifecycle transition. Unknown statuses and illegal
// transitions are validation errors; the store is only touched on success.
func (u *PostUseCase) UpdateStatus(ctx context.Context, userID, id, status string) (*model.Post, error) {
	if !model.ValidPostStatus(status) {
		return nil, model.NewValidationError("status", "unknown status")
	}
	post, err := u.posts.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if !post.CanTransition(status) {
		return nil, model.NewValidationError("status", "illegal transition from "+post.Status)
	}
	return u.posts.UpdateStatus(ctx, id, userID, status)
}

func (u *PostUseCase) Delete(ctx context.Context, userID, id string) error {
	return u.posts.Delete(ctx, id, userID)
}
