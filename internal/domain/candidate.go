package domain

import "time"

// RemovedTitle is the sentinel the news source uses for retracted stories.
const RemovedTitle = "[Removed]"

// Candidate is an article fetched from the news source, before any
// editorial processing. It only lives for the duration of one run.
type Candidate struct {
	URL         string
	Title       string
	Description string
	Content     string
	ImageURL    string
	SourceName  string
	PublishedAt time.Time
}

// Eligible reports whether the candidate passes the static quality
// filters: non-empty title and URL, an image to work with, and not the
// retracted-story sentinel. Dedup against the posts table happens
// separately.
func (c Candidate) Eligible() bool {
	if c.URL == "" || c.Title == "" || c.ImageURL == "" {
		return false
	}
	return c.Title != RemovedTitle
}
