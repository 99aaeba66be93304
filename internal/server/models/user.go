// Package models holds the server-side persistence models.
package models

import "time"

// User is an account identified by email. Accounts are created implicitly
// the first time a login link is requested for an address.
type User struct {
	ID        string
	Email     string
	CreatedAt time.Time
}
