package domain

import "time"

type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // argon2 encoded, never exposed at the API boundary
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AuthPayload pairs a freshly issued token with the user it belongs to.
// Returned by signup and login, never persisted.
type AuthPayload struct {
	Token string
	User  User
}

// Identity is the decoded claim set of a verified request token. A nil
// *Identity on a request context means the caller is anonymous.
type Identity struct {
	UserID   string
	Username string
	Email    string
}
