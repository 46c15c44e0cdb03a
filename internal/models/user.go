package models

import (
	"errors"
	"regexp"
	"strings"
)

// UserRole represents a user's role as reported by the upstream API
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// User represents the authenticated user as reported by the upstream API.
// The upstream service owns credentials and identity; this is a read-only
// mirror held for the session.
type User struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Email             string   `json:"email"`
	Role              UserRole `json:"role"`
	ProfilePictureURL string   `json:"profilePictureUrl"`
	PhoneNumber       string   `json:"phoneNumber"`
}

// IsAdmin returns true when the user holds the admin role
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// LoginRequest represents the credentials forwarded to the upstream API
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate validates the login data before any network call
func (req *LoginRequest) Validate() error {
	if strings.TrimSpace(req.Email) == "" {
		return errors.New("email is required")
	}

	if !emailRegex.MatchString(req.Email) {
		return errors.New("email format is invalid")
	}

	if req.Password == "" {
		return errors.New("password is required")
	}

	return nil
}
