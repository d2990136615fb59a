package repository

import (
	"context"

	"postpilot/domain/dto"
	"postpilot/domain/model"
)

// ITikTok defines authenticated read access to a user's TikTok resources.
// Every call receives the caller-supplied credential; expiry is checked by
// the usecase before the client is ever reached.
type ITikTok interface {
	ListVideos(ctx context.Context, cred *model.Credential, req *dto.VideoListRequest) (*dto.VideoListResponse, error)
	ListComments(ctx context.Context, cred *model.Credential, req *dto.CommentListRequest) (*dto.CommentListResponse, error)
}

// IGooglePhotos defines authenticated read access to a user's Google Photos
// albums.
type IGooglePhotos interface {
	ListAlbums(ctx context.Context, cred *model.Credential, req *dto.AlbumListRequest) (*dto.AlbumListResponse, error)
}
