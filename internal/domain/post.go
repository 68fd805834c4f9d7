package domain

import "time"

type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusScheduled PostStatus = "scheduled"
	PostStatusPosted    PostStatus = "posted"
	PostStatusFailed    PostStatus = "failed"
)

// Post is a draft or scheduled dashboard post. The engine never touches these;
// they exist so the calendar and composer have somewhere to live server-side.
type Post struct {
	ID          int64      `json:"id"`
	Platform    string     `json:"platform"`
	ContentType string     `json:"contentType"`
	Title       string     `json:"title"`
	Caption     string     `json:"caption"`
	Hashtags    string     `json:"hashtags"`
	ScheduledAt *time.Time `json:"scheduledAt,omitempty"`
	Status      PostStatus `json:"status"`
	Score       *int       `json:"score,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (s PostStatus) Valid() bool {
	switch s {
	case PostStatusDraft, PostStatusScheduled, PostStatusPosted, PostStatusFailed:
		return true
	}
	return false
}
