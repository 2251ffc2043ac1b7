package domain

import "time"

// Profile holds the portal-side state for an authenticated user.
// Identity itself lives in the hosted auth provider; this row carries
// subscription status and the daily free-view bookkeeping.
type Profile struct {
	ID                 string     `json:"id"`
	Email              string     `json:"email"`
	Username           string     `json:"username,omitempty"`
	IsSubscriber       bool       `json:"is_subscriber"`
	StripeCustomerID   *string    `json:"stripe_customer_id,omitempty"`
	LastFreeViewDate   *string    `json:"last_free_view_date,omitempty"`
	LastFreeViewPostID *string    `json:"last_free_view_post_id,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          *time.Time `json:"updated_at,omitempty"`
}
