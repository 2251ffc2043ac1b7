package handler

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/samScriptt/novapress/internal/middleware"
	"github.com/samScriptt/novapress/internal/repository"
)

// signatureTolerance bounds how old a webhook timestamp may be before
// the delivery is rejected as a possible replay.
const signatureTolerance = 5 * time.Minute

// maxWebhookBody bounds the accepted payload size (256 KiB).
const maxWebhookBody = 256 << 10

// StripeWebhookHandler is the thin adapter from the payment provider's
// events to the subscription flag.
type StripeWebhookHandler struct {
	profiles      repository.ProfileRepository
	webhookSecret string
	now           func() time.Time
}

// NewStripeWebhookHandler creates a new StripeWebhookHandler.
func NewStripeWebhookHandler(profiles repository.ProfileRepository, webhookSecret string) *StripeWebhookHandler {
	return &StripeWebhookHandler{
		profiles:      profiles,
		webhookSecret: webhookSecret,
		now:           time.Now,
	}
}

type stripeEvent struct {
	Type string `json:"type"`
	Data struct {
		Object struct {
			Customer string            `json:"customer"`
			Metadata map[string]string `json:"metadata"`
		} `json:"object"`
	} `json:"data"`
}

// Handle handles POST /api/webhooks/stripe. The signature covers the
// raw body, so the body is read before any JSON parsing. Events other
// than a completed checkout are acknowledged and ignored.
func (h *StripeWebhookHandler) Handle(c *gin.Context) {
	if h.webhookSecret == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "webhook not configured"})
		return
	}

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable body"})
		return
	}

	if !h.verifySignature(c.GetHeader("Stripe-Signature"), body) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid signature"})
		return
	}

	var event stripeEvent
	if err := json.Unmarshal(body, &event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	if event.Type != "checkout.session.completed" {
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	userID := event.Data.Object.Metadata["userId"]
	if userID == "" {
		log.Printf("[request_id=%s] Checkout completed without userId metadata", middleware.GetRequestID(c))
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	var customerID *string
	if event.Data.Object.Customer != "" {
		customerID = &event.Data.Object.Customer
	}

	if err := h.profiles.SetSubscriber(c.Request.Context(), userID, true, customerID); err != nil {
		log.Printf("[request_id=%s] Failed to activate subscription for %s: %v",
			middleware.GetRequestID(c), userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to activate subscription"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}

// verifySignature checks the provider's signature scheme: HMAC-SHA256
// with the endpoint secret over "<timestamp>.<body>", carried in a
// header shaped like "t=...,v1=...,v1=...".
func (h *StripeWebhookHandler) verifySignature(header string, body []byte) bool {
	if header == "" {
		return false
	}

	var timestamp string
	var signatures []string
	for _, part := range strings.Split(header, ",") {
		key, value, found := strings.Cut(strings.TrimSpace(part), "=")
		if !found {
			continue
		}
		switch key {
		case "t":
			timestamp = value
		case "v1":
			signatures = append(signatures, value)
		}
	}
	if timestamp == "" || len(signatures) == 0 {
		return false
	}

	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return false
	}
	age := h.now().Sub(time.Unix(ts, 0))
	if age > signatureTolerance || age < -signatureTolerance {
		return false
	}

	mac := hmac.New(sha256.New, []byte(h.webhookSecret))
	mac.Write([]byte(timestamp))
	mac.Write([]byte("."))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	for _, sig := range signatures {
		if hmac.Equal([]byte(expected), []byte(sig)) {
			return true
		}
	}
	return false
}
