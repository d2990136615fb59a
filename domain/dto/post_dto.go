package dto

// PostCreateRequest represents the body of POST /api/posts.
type PostCreateRequest struct {
	Content       string `json:"content"`
	Platform      string `json:"platform"`
	ScheduledTime string `json:"scheduled_time,omitempty"` // RFC3339
}

// PostStatusRequest represents the body of PATCH /api/posts/:id/status.
type PostStatusRequest struct {
	Status string `json:"status"`
}

// MediaCreateRequest represents the body of POST /api/media.
type MediaCreateRequest struct {
	Name string   `json:"name"`
	Type string   `json:"type"`
	Size int64    `json:"size"`
	Tags []string `json:"tags,omitempty"`
}
