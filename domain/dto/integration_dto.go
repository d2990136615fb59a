package dto

// VideoListRequest represents a request for listing a user's videos.
type VideoListRequest struct {
	MaxResults int64  `json:"max_results,omitempty"`
	PageToken  string `json:"page_token,omitempty"`
}

// Video is the application-side video shape, normalized from the provider
// response. Missing counts default to zero.
type Video struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	CoverURL     string `json:"cover_url,omitempty"`
	ShareURL     string `json:"share_url,omitempty"`
	Duration     int64  `json:"duration"`
	ViewCount    int64  `json:"view_count"`
	LikeCount    int64  `json:"like_count"`
	CommentCount int64  `json:"comment_count"`
	ShareCount   int64  `json:"share_count"`
	CreateTime   int64  `json:"create_time,omitempty"`
}

// VideoListResponse represents a normalized video list page.
type VideoListResponse struct {
	Items         []Video `json:"items"`
	NextPageToken string  `json:"next_page_token,omitempty"`
	HasMore       bool    `json:"has_more"`
}

// CommentListRequest represents a request for listing comments on a video.
type CommentListRequest struct {
	VideoID    string `json:"video_id"`
	MaxResults int64  `json:"max_results,omitempty"`
	PageToken  string `json:"page_token,omitempty"`
}

// Comment is the application-side comment shape.
type Comment struct {
	ID         string `json:"id"`
	VideoID    string `json:"video_id"`
	Text       string `json:"text"`
	LikeCount  int64  `json:"like_count"`
	ReplyCount int64  `json:"reply_count"`
	Pinned     bool   `json:"pinned"`
	CreateTime int64  `json:"create_time,omitempty"`
}

// CommentListResponse represents a normalized comment list page.
type CommentListResponse struct {
	Items         []Comment `json:"items"`
	NextPageToken string    `json:"next_page_token,omitempty"`
	HasMore       bool      `json:"has_more"`
}

// AlbumListRequest represents a request for listing a user's albums.
type AlbumListRequest struct {
	MaxResults int64  `json:"max_results,omitempty"`
	PageToken  string `json:"page_token,omitempty"`
}

// Album is the application-side album shape.
type Album struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	ItemCount     int64  `json:"item_count"`
	CoverPhotoURL string `json:"cover_photo_url,omitempty"`
	ProductURL    string `json:"product_url,omitempty"`
	Writeable     bool   `json:"writeable"`
}

// AlbumListResponse represents a normalized album list page.
type AlbumListResponse struct {
	Items         []Album `json:"items"`
	NextPageToken string  `json:"next_page_token,omitempty"`
}

// IntegrationStatus reports whether a provider is connected for the session.
type IntegrationStatus struct {
	Connected    bool   `json:"connected"`
	AccountEmail string `json:"account_email,omitempty"`
	ExpiresAt    int64  `json:"expires_at,omitempty"`
}
