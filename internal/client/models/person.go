// Package models holds the client-side record types.
package models

// Attributes is the structured-field portion of a person record, the part
// edited through the table row form. Notes travel separately.
type Attributes struct {
	Name            string `json:"name"`
	Contact         string `json:"contact"`
	Email           string `json:"email"`
	Address         string `json:"address"`
	SocialFacebook  string `json:"social_facebook"`
	SocialInstagram string `json:"social_instagram"`
}

// Person is one contact record as seen by the client. The list the client
// holds is always the server's answer to the last successful fetch.
type Person struct {
	ID              string
	Name            string
	Contact         string
	Email           string
	Address         string
	SocialFacebook  string
	SocialInstagram string
	Notes           string
}

// Attributes returns the structured fields of p as an editable snapshot.
func (p Person) Attributes() Attributes {
	return Attributes{
		Name:            p.Name,
		Contact:         p.Contact,
		Email:           p.Email,
		Address:         p.Address,
		SocialFacebook:  p.SocialFacebook,
		SocialInstagram: p.SocialInstagram,
	}
}
