package domain

import "time"

// Session is an authenticated session handle. It is passed explicitly to the
// identity service; nothing looks it up from ambient state.
type Session struct {
	ID        string    `json:"-"`
	AccountID string    `json:"-"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
