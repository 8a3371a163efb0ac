package token

import "time"

// Kind distinguishes patient accounts from clinic accounts.
type Kind string

const (
	KindUser   Kind = "user"
	KindClinic Kind = "clinic"
)

// Claims is the app-facing token payload.
type Claims struct {
	AccountID string
	Kind      Kind

	IssuedAt  time.Time
	ExpiresAt time.Time
}
