package model

import "time"

// Post statuses.
const (
	PostStatusDraft     = "draft"
	PostStatusScheduled = "scheduled"
	PostStatusPublished = "published"
	PostStatusFailed    = "failed"
)

// Post represents a social post managed through the dashboard. Posts live in
// the in-memory demo store only and carry no durability guarantee.
type Post struct {
	ID            string     `json:"id"`
	UserID        string     `json:"user_id"`
	Content       string     `json:"content"`
	Platform      string     `json:"platform"`
	ScheduledTime *time.Time `json:"scheduled_time,omitempty"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
}

// legal status transitions, keyed by current status
var postTransitions = map[string][]string{
	PostStatusDraft:     {PostStatusScheduled, PostStatusPublished},
	PostStatusScheduled: {PostStatusPublished, PostStatusFailed, PostStatusDraft},
	PostStatusPublished: {},
	PostStatusFailed:    {PostStatusScheduled, PostStatusDraft},
}

// CanTransition reports whether a post may move from its current status to next.
func (p *Post) CanTransition(next string) bool {
	for _, s := range postTransitions[p.Status] {
		if s == next {
			return true
		}
	}
	return false
}

// ValidPostStatus reports whether s is one of the known post statuses.
func ValidPostStatus(s string) bool {
	_, ok := postTransitions[s]
	return ok
}
