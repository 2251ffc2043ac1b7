package domain

// PostViewCount pairs a post with its recorded view count.
type PostViewCount struct {
	PostID string `json:"post_id"`
	Title  string `json:"title"`
	Views  int    `json:"views"`
}

// DailyActivity is the number of recorded events on one calendar day.
type DailyActivity struct {
	Day    string `json:"day"`
	Events int    `json:"events"`
}

// AdminMetrics is the dashboard snapshot served to operators.
type AdminMetrics struct {
	TotalUsers      int             `json:"total_users"`
	Subscribers     int             `json:"subscribers"`
	TotalPosts      int             `json:"total_posts"`
	PostsByCategory map[string]int  `json:"posts_by_category"`
	TopPosts        []PostViewCount `json:"top_posts"`
	ActivityPerDay  []DailyActivity `json:"activity_per_day"`
	FeedbackCount   int             `json:"feedback_count"`
	AverageRating   float64         `json:"average_rating"`
	RecentFeedback  []Feedback      `json:"recent_feedback"`
}
