package domain

// Access grant reasons.
const (
	AccessSubscriber = "subscriber"
	AccessFreeView   = "free_view"
	AccessRevisit    = "revisit"
)

// Lock reasons.
const (
	LockLoginRequired = "login_required"
	LockDailyLimit    = "daily_limit"
)

// PostAccess is the gating verdict for one post view. When Locked is
// true the detail response omits the article body.
type PostAccess struct {
	Locked bool   `json:"locked"`
	Reason string `json:"reason,omitempty"`
	Access string `json:"access,omitempty"`
}
