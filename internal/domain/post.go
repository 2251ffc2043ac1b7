package domain

import "time"

// Post represents a published article owned by the portal.
// Posts are created exactly once by the ingestion pipeline and never
// updated or deleted by it; OriginalURL is the durable dedup key.
type Post struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Summary     string    `json:"summary"`
	OriginalURL string    `json:"original_url"`
	ImageURL    string    `json:"image_url,omitempty"`
	Category    string    `json:"category"`
	Tags        []string  `json:"tags,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// PostFilter narrows and paginates the public feed.
type PostFilter struct {
	Page     int
	PageSize int
	Search   string
	Category string
}

// PostPage is one page of the feed plus the total match count.
type PostPage struct {
	Posts      []Post `json:"posts"`
	Total      int    `json:"total"`
	Page       int    `json:"page"`
	PageSize   int    `json:"page_size"`
	TotalPages int    `json:"total_pages"`
}

// ValidCategories contains the fixed editorial category set.
var ValidCategories = []string{"Tech", "World", "AI", "Economy", "Science"}

// IsValidCategory checks if a category is part of the editorial set.
func IsValidCategory(category string) bool {
	for _, c := range ValidCategories {
		if c == category {
			return true
		}
	}
	return false
}

// CategoryKeywords maps each category to the news-search keyword group
// used when that category is picked as the topic hint for a run.
var CategoryKeywords = map[string]string{
	"Tech":    `(Apple OR Google OR Microsoft OR Startup OR "Tech Trends")`,
	"World":   `("world news" OR geopolitics OR election OR diplomacy)`,
	"AI":      `(AI OR "Artificial Intelligence" OR LLM OR OpenAI)`,
	"Economy": `(economy OR inflation OR "stock market" OR Crypto)`,
	"Science": `(science OR research OR NASA OR breakthrough)`,
}
