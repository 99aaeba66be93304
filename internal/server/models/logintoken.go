package models

import "time"

// LoginToken is a single-use email-link credential. Only a bcrypt hash of
// the secret half is stored; the id half keys the lookup.
type LoginToken struct {
	ID         string
	UserID     string
	SecretHash []byte
	ExpiresAt  time.Time
	ConsumedAt *time.Time
}
