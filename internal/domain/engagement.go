package domain

import "time"

// Comment represents a reader comment on a post.
type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username,omitempty"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Vote types for the like/dislike widget.
const (
	VoteLike    = "like"
	VoteDislike = "dislike"
)

// IsValidVoteType checks if a vote type is valid.
func IsValidVoteType(voteType string) bool {
	return voteType == VoteLike || voteType == VoteDislike
}

// VoteCounts aggregates the reactions on one post.
type VoteCounts struct {
	Likes    int `json:"likes"`
	Dislikes int `json:"dislikes"`
}
