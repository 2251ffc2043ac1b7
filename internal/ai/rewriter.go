// Package ai rewrites and classifies candidate articles through a
// generative model, enforcing a strict JSON output contract.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/samScriptt/novapress/internal/domain"
	"github.com/samScriptt/novapress/internal/validator"
)

// Config holds the settings for the Gemini client.
type Config struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Rewriter translates one candidate into one classification via a
// single model call.
type Rewriter struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	validator  *validator.Validator
}

// NewRewriter builds a Rewriter from configuration.
func NewRewriter(cfg Config) *Rewriter {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Rewriter{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		httpClient: &http.Client{Timeout: timeout},
		validator:  validator.NewValidator(),
	}
}

const rewritePrompt = `Act as the Editor-in-Chief of "NovaPress". Analyze this news item:

Title: %q
Description: %q
Snippet: %q
Source: %q

STEP 1 - QUALITY REVIEW:
If the article is a company press release, an irrelevant product
announcement, or low-substance spam, set "valid" to false and leave the
other fields empty.

STEP 2 - REWRITE (only if it passes review):
- "category": exactly one of %s.
- "tags": 3 to 5 short free-text tags.
- "title": a punchy rewritten headline.
- "html_content": the full article as an HTML fragment (h2 sections,
  p paragraphs, no html/head/body tags), serious newspaper style.
- "twitter_summary": an engaging teaser under 200 characters, serious
  tone, no hashtags, no links.

Respond with ONLY a JSON object with the keys: valid, category, tags,
title, html_content, twitter_summary.`

type geminiRequest struct {
	Contents         []geminiContent  `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMIMEType string  `json:"response_mime_type"`
	Temperature      float64 `json:"temperature"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Rewrite submits the candidate to the model and parses the JSON
// verdict. Malformed model output is an error; the caller treats it as
// fatal for the run, with no retry.
func (r *Rewriter) Rewrite(ctx context.Context, candidate domain.Candidate) (domain.Classification, error) {
	prompt := fmt.Sprintf(rewritePrompt,
		candidate.Title,
		candidate.Description,
		candidate.Content,
		candidate.SourceName,
		strings.Join(domain.ValidCategories, ", "),
	)

	text, err := r.generate(ctx, prompt)
	if err != nil {
		return domain.Classification{}, err
	}

	var classification domain.Classification
	if err := json.Unmarshal([]byte(stripFences(text)), &classification); err != nil {
		return domain.Classification{}, fmt.Errorf("parse classification: %w", err)
	}

	if err := r.validator.ValidateClassification(&classification); err != nil {
		return domain.Classification{}, fmt.Errorf("invalid classification: %w", err)
	}
	classification.TwitterSummary = clampSummary(classification.TwitterSummary)

	return classification, nil
}

// clampSummary trims a summary that overruns the instructed bound. The
// post is otherwise valid, so drift here is not worth failing the run;
// tweet composition truncates again against the platform limit.
func clampSummary(s string) string {
	runes := []rune(s)
	if len(runes) <= validator.TwitterSummaryMaxLen {
		return s
	}
	return strings.TrimSpace(string(runes[:validator.TwitterSummaryMaxLen]))
}

func (r *Rewriter) generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			ResponseMIMEType: "application/json",
			Temperature:      0.4,
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal gemini payload: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", r.baseURL, r.model, r.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini API error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("gemini API %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var gr geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return "", fmt.Errorf("decode gemini response: %w", err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty gemini response")
	}

	return gr.Candidates[0].Content.Parts[0].Text, nil
}

// stripFences removes markdown code fences the model sometimes wraps
// around its JSON despite the response MIME type.
func stripFences(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
