package auth

import "time"

// User is the domain entity.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
