package model

import "time"

// Roles assignable to a user account. Settings routes require RoleAdmin.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is an account that can own licenses and devices.
// PasswordHash is a bcrypt hash and never leaves the API.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
