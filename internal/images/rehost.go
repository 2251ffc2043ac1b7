// Package images re-hosts remote article images into first-party
// storage. The whole pipeline is best-effort: any failure falls back to
// the original URL and never reaches the caller as an error.
package images

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/samScriptt/novapress/internal/metrics"
)

// maxImageSize bounds the downloaded payload (8 MiB).
const maxImageSize = 8 << 20

// Uploader is the slice of the object store the rehoster needs.
type Uploader interface {
	Enabled() bool
	Upload(ctx context.Context, name, contentType string, data []byte) error
	PublicURL(name string) string
}

// Outcome is the result of one re-hosting attempt. URL is always
// usable: either the public URL of the re-hosted copy or the original
// remote URL. Data/ContentType carry the downloaded payload, when the
// download succeeded, so the social publisher can reuse it without a
// second fetch.
type Outcome struct {
	URL         string
	Rehosted    bool
	Data        []byte
	ContentType string
}

// Rehoster downloads, validates, and re-uploads remote images.
type Rehoster struct {
	uploader   Uploader
	httpClient *http.Client
	logger     *slog.Logger
	now        func() time.Time
}

// NewRehoster builds a Rehoster. A nil logger falls back to slog.Default.
func NewRehoster(uploader Uploader, timeout time.Duration, logger *slog.Logger) *Rehoster {
	if timeout == 0 {
		timeout = 20 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Rehoster{
		uploader:   uploader,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
		now:        time.Now,
	}
}

// Rehost fetches the remote image and uploads it to first-party
// storage. It cannot fail: every error path logs a warning and returns
// the original URL unchanged.
func (r *Rehoster) Rehost(ctx context.Context, imageURL string) Outcome {
	fallback := Outcome{URL: imageURL}
	if imageURL == "" {
		return fallback
	}

	data, contentType, err := r.download(ctx, imageURL)
	if err != nil {
		r.logger.Warn("image download failed, keeping original URL",
			slog.String("image_url", imageURL),
			slog.String("error", err.Error()))
		metrics.ObserveImageRehost(false)
		return fallback
	}

	// Keep the payload for the social publisher even if the upload
	// below fails.
	fallback.Data = data
	fallback.ContentType = contentType

	if r.uploader == nil || !r.uploader.Enabled() {
		metrics.ObserveImageRehost(false)
		return fallback
	}

	name := r.objectName(contentType)
	if err := r.uploader.Upload(ctx, name, contentType, data); err != nil {
		r.logger.Warn("image upload failed, keeping original URL",
			slog.String("image_url", imageURL),
			slog.String("error", err.Error()))
		metrics.ObserveImageRehost(false)
		return fallback
	}

	metrics.ObserveImageRehost(true)
	return Outcome{
		URL:         r.uploader.PublicURL(name),
		Rehosted:    true,
		Data:        data,
		ContentType: contentType,
	}
}

func (r *Rehoster) download(ctx context.Context, imageURL string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("new request: %w", err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, "", fmt.Errorf("unexpected status %s", resp.Status)
	}

	// An HTML error page served with a 200 must not end up in the
	// bucket as an "image".
	contentType := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return nil, "", fmt.Errorf("not an image: content-type %q", contentType)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageSize))
	if err != nil {
		return nil, "", fmt.Errorf("read image body: %w", err)
	}
	if len(data) == 0 {
		return nil, "", fmt.Errorf("empty image body")
	}

	return data, contentType, nil
}

// objectName derives a collision-resistant object name from the upload
// time and the MIME subtype.
func (r *Rehoster) objectName(contentType string) string {
	return fmt.Sprintf("%d-%s%s", r.now().UnixMilli(), uuid.New().String()[:8], extensionFor(contentType))
}

func extensionFor(contentType string) string {
	subtype := strings.TrimPrefix(contentType, "image/")
	if i := strings.IndexByte(subtype, ';'); i >= 0 {
		subtype = subtype[:i]
	}
	subtype = strings.TrimSpace(subtype)
	switch subtype {
	case "jpeg":
		return ".jpg"
	case "svg+xml":
		return ".svg"
	case "":
		return ".img"
	default:
		return "." + subtype
	}
}
