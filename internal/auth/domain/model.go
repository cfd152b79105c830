package domain

import (
	"errors"

	"github.com/golang-jwt/jwt/v4"
)

// AdminIdentity is the single administrator account. It is fixed
// configuration: defined at startup, never mutated at runtime.
type AdminIdentity struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"` // bcrypt hash, never expose
	Name         string `json:"name"`
}

// UserInfo is the identity summary returned to clients.
type UserInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (a AdminIdentity) UserInfo() UserInfo {
	return UserInfo{ID: a.ID, Email: a.Email, Name: a.Name}
}

// Claims is the decoded payload of a session token: the admin's public
// fields plus the standard issued-at/expiry timestamps.
type Claims struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

func (c *Claims) UserInfo() UserInfo {
	return UserInfo{ID: c.ID, Email: c.Email, Name: c.Name}
}

var (
	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so callers cannot distinguish the two.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrTokenInvalid = errors.New("token invalid")
	ErrTokenExpired = errors.New("token expired")
	ErrMissingToken = errors.New("access token required")
)
