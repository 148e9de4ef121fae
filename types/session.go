package types

import "time"

// Session binds an issued access token to a user and a validity window.
// One row is created per sign-in; rows are never deleted. Sign-out sets
// SignedOutAt exactly once, after which the session is no longer usable
// but remains queryable as audit history.
type Session struct {
	ID          int        `json:"-" db:"id"`
	UUID        string     `json:"uuid" db:"uuid"`
	UserID      int        `json:"-" db:"user_id"`
	AccessToken string     `json:"-" db:"access_token"`
	IssuedAt    time.Time  `json:"issued_at" db:"issued_at"`
	ExpiresAt   time.Time  `json:"expires_at" db:"expires_at"`
	SignedOutAt *time.Time `json:"signed_out_at,omitempty" db:"signed_out_at"`
}

// Active reports whether the session has not been signed out.
func (s Session) Active() bool {
	return s.SignedOutAt == nil
}

// Expired reports whether the session's validity window has passed.
func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
