package models

import "github.com/google/uuid"

// User owns zero or more accounts. The account list is append-only; accounts
// are never removed or transferred between users.
type User struct {
	ID         string
	Nickname   string
	AccountIDs []string
}

// NewUser creates a user with a generated identifier and no accounts.
func NewUser(nickname string) *User {
	return &User{
		ID:       uuid.New().String(),
		Nickname: nickname,
	}
}
