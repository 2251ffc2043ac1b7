package domain

import (
	"testing"
)

func TestIsValidCategory(t *testing.T) {
	tests := []struct {
		category string
		valid    bool
	}{
		{"Tech", true},
		{"World", true},
		{"AI", true},
		{"Economy", true},
		{"Science", true},
		{"Sports", false},
		{"tech", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			if got := IsValidCategory(tt.category); got != tt.valid {
				t.Errorf("IsValidCategory(%q) = %v, want %v", tt.category, got, tt.valid)
			}
		})
	}
}

func TestCategoryKeywordsCoverAllCategories(t *testing.T) {
	for _, c := range ValidCategories {
		if CategoryKeywords[c] == "" {
			t.Errorf("CategoryKeywords missing entry for %q", c)
		}
	}
}

func TestCandidateEligible(t *testing.T) {
	base := Candidate{
		URL:      "https://example.com/story",
		Title:    "A headline",
		ImageURL: "https://example.com/story.jpg",
	}

	tests := []struct {
		name   string
		mutate func(*Candidate)
		want   bool
	}{
		{"complete candidate", func(c *Candidate) {}, true},
		{"missing url", func(c *Candidate) { c.URL = "" }, false},
		{"missing title", func(c *Candidate) { c.Title = "" }, false},
		{"missing image", func(c *Candidate) { c.ImageURL = "" }, false},
		{"retracted sentinel", func(c *Candidate) { c.Title = RemovedTitle }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base
			tt.mutate(&c)
			if got := c.Eligible(); got != tt.want {
				t.Errorf("Eligible() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsValidVoteType(t *testing.T) {
	tests := []struct {
		voteType string
		valid    bool
	}{
		{"like", true},
		{"dislike", true},
		{"upvote", false},
		{"", false},
		{"LIKE", false},
	}

	for _, tt := range tests {
		t.Run(tt.voteType, func(t *testing.T) {
			if got := IsValidVoteType(tt.voteType); got != tt.valid {
				t.Errorf("IsValidVoteType(%q) = %v, want %v", tt.voteType, got, tt.valid)
			}
		})
	}
}

func TestIsValidEventType(t *testing.T) {
	tests := []struct {
		eventType string
		valid     bool
	}{
		{"login", true},
		{"view_post", true},
		{"page_view", true},
		{"delete_post", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.eventType, func(t *testing.T) {
			if got := IsValidEventType(tt.eventType); got != tt.valid {
				t.Errorf("IsValidEventType(%q) = %v, want %v", tt.eventType, got, tt.valid)
			}
		})
	}
}

func TestIngestResultPublished(t *testing.T) {
	if !(IngestResult{Status: IngestPublished}).Published() {
		t.Error("published result should report Published() = true")
	}
	for _, s := range []IngestStatus{IngestNothingNew, IngestRejected, IngestAlreadyExists, IngestBusy} {
		if (IngestResult{Status: s}).Published() {
			t.Errorf("status %s should report Published() = false", s)
		}
	}
}
