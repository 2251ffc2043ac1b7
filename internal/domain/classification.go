package domain

// Classification is the structured verdict returned by the AI rewriter
// for one candidate. When Valid is false the remaining fields are not
// trusted and nothing is persisted.
type Classification struct {
	Valid          bool     `json:"valid"`
	Category       string   `json:"category"`
	Tags           []string `json:"tags"`
	Title          string   `json:"title"`
	HTMLContent    string   `json:"html_content"`
	TwitterSummary string   `json:"twitter_summary"`
}
