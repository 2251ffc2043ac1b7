package validator

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/samScriptt/novapress/internal/domain"
)

// TwitterSummaryMaxLen is the character bound the AI is instructed to
// respect for the social summary. Overruns are clamped by the rewriter
// rather than rejected; compose time enforces the platform limit again.
const TwitterSummaryMaxLen = 200

var validCategories = func() []interface{} {
	out := make([]interface{}, len(domain.ValidCategories))
	for i, c := range domain.ValidCategories {
		out[i] = c
	}
	return out
}()

// Validator provides validation methods for domain entities.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateClassification validates the AI rewriter's output contract.
// A rejected classification (Valid == false) passes by definition: its
// remaining fields are untrusted and never read.
func (v *Validator) ValidateClassification(c *domain.Classification) error {
	if !c.Valid {
		return nil
	}

	return validation.ValidateStruct(c,
		validation.Field(&c.Category,
			validation.Required.Error("category_required"),
			validation.In(validCategories...).Error("unknown_category"),
		),
		validation.Field(&c.Tags,
			validation.Required.Error("tags_required"),
			validation.Length(3, 5).Error("tags_must_be_3_to_5"),
		),
		validation.Field(&c.Title,
			validation.Required.Error("title_required"),
		),
		validation.Field(&c.HTMLContent,
			validation.Required.Error("html_content_required"),
		),
	)
}

// ValidateFeedback validates a feedback submission.
func (v *Validator) ValidateFeedback(f *domain.Feedback) error {
	return validation.ValidateStruct(f,
		validation.Field(&f.Rating,
			validation.Required.Error("rating_required"),
			validation.Min(1).Error("rating_out_of_range"),
			validation.Max(5).Error("rating_out_of_range"),
		),
		validation.Field(&f.TopicSuggestion,
			validation.Length(0, 500).Error("suggestion_too_long"),
		),
		validation.Field(&f.PreferredTopics,
			validation.Each(validation.Length(1, 60).Error("topic_too_long")),
		),
	)
}

// ValidateComment validates a comment body.
func (v *Validator) ValidateComment(content string) error {
	return validation.Validate(content,
		validation.Required.Error("empty_comment"),
		validation.Length(1, 2000).Error("comment_too_long"),
	)
}
