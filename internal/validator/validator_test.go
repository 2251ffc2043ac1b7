package validator

import (
	"strings"
	"testing"

	"github.com/samScriptt/novapress/internal/domain"
)

func validClassification() domain.Classification {
	return domain.Classification{
		Valid:          true,
		Category:       "AI",
		Tags:           []string{"AI", "Tech", "Research"},
		Title:          "Breakthrough",
		HTMLContent:    "<p>Body</p>",
		TwitterSummary: "Big news!",
	}
}

func TestValidateClassification(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		mutate  func(*domain.Classification)
		wantErr bool
	}{
		{"valid classification", func(c *domain.Classification) {}, false},
		{"rejected passes regardless of fields", func(c *domain.Classification) {
			*c = domain.Classification{Valid: false}
		}, false},
		{"unknown category", func(c *domain.Classification) { c.Category = "Sports" }, true},
		{"missing category", func(c *domain.Classification) { c.Category = "" }, true},
		{"too few tags", func(c *domain.Classification) { c.Tags = []string{"AI"} }, true},
		{"too many tags", func(c *domain.Classification) {
			c.Tags = []string{"a", "b", "c", "d", "e", "f"}
		}, true},
		{"five tags ok", func(c *domain.Classification) {
			c.Tags = []string{"a", "b", "c", "d", "e"}
		}, false},
		{"missing title", func(c *domain.Classification) { c.Title = "" }, true},
		{"missing html", func(c *domain.Classification) { c.HTMLContent = "" }, true},
		{"empty summary allowed", func(c *domain.Classification) { c.TwitterSummary = "" }, false},
		{"oversized summary is not fatal", func(c *domain.Classification) {
			c.TwitterSummary = strings.Repeat("x", TwitterSummaryMaxLen+1)
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validClassification()
			tt.mutate(&c)
			err := v.ValidateClassification(&c)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateClassification() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateFeedback(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name     string
		feedback domain.Feedback
		wantErr  bool
	}{
		{"valid", domain.Feedback{Rating: 4, PreferredTopics: []string{"AI"}}, false},
		{"rating low", domain.Feedback{Rating: 0}, true},
		{"rating high", domain.Feedback{Rating: 6}, true},
		{"suggestion too long", domain.Feedback{Rating: 3, TopicSuggestion: strings.Repeat("s", 501)}, true},
		{"topic too long", domain.Feedback{Rating: 3, PreferredTopics: []string{strings.Repeat("t", 61)}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateFeedback(&tt.feedback)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFeedback() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateComment(t *testing.T) {
	v := NewValidator()

	if err := v.ValidateComment("nice article"); err != nil {
		t.Errorf("ValidateComment() unexpected error: %v", err)
	}
	if err := v.ValidateComment(""); err == nil {
		t.Error("ValidateComment() expected error for empty comment")
	}
	if err := v.ValidateComment(strings.Repeat("c", 2001)); err == nil {
		t.Error("ValidateComment() expected error for oversized comment")
	}
}
