package models

import "time"

// Person is a contact record, owned exclusively by one user. Every query
// touching people is scoped by UserID.
type Person struct {
	ID              string
	UserID          string
	Name            string
	Contact         string
	Email           string
	Address         string
	SocialFacebook  string
	SocialInstagram string
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
