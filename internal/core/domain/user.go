package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrTooManyAttempts = errors.New("too many login attempts")

// ValidRole reports whether role is one of the recognised roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}

// User models a registered identity. Created on registration, never mutated.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
