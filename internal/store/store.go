// Package store implements MongoDB persistence for users, clinics, and
// chats. One type per collection; services depend on these through their
// own narrow interfaces.
package store

import "errors"

var (
	ErrNotFound  = errors.New("document not found")
	ErrDuplicate = errors.New("duplicate key")
)

const (
	usersCollection   = "users"
	clinicsCollection = "clinics"
	chatsCollection   = "chats"
)
