package models

import "time"

// User is an asserted identity: login records a name/email pair, nothing
// is verified. At most one user is current at a time.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
