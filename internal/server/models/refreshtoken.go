package models

import "time"

// RefreshToken is an opaque rotating token; each use deletes it and mints
// a replacement.
type RefreshToken struct {
	Token     string
	UserID    string
	ExpiresAt time.Time
}
