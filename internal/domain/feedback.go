package domain

import "time"

// Feedback is one entry from the site feedback widget. Users may submit
// at most one entry per 30 days.
type Feedback struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	UserEmail       string    `json:"user_email,omitempty"`
	PreferredTopics []string  `json:"preferred_topics,omitempty"`
	TopicSuggestion string    `json:"new_topic_suggestion,omitempty"`
	Rating          int       `json:"rating"`
	CreatedAt       time.Time `json:"created_at"`
}

// Access-log event types.
const (
	EventLogin    = "login"
	EventViewPost = "view_post"
	EventPageView = "page_view"
)

// AccessEvent is one best-effort audit row; failures to record it are
// swallowed by the repository.
type AccessEvent struct {
	UserID    *string        `json:"user_id,omitempty"`
	EventType string         `json:"event_type"`
	EventData map[string]any `json:"event_data,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// IsValidEventType checks if an access-log event type is valid.
func IsValidEventType(eventType string) bool {
	switch eventType {
	case EventLogin, EventViewPost, EventPageView:
		return true
	}
	return false
}
