// Package token locates an optional GitHub token for API requests.
//
// Anonymous requests to the GitHub API are limited to 60 per hour, so a
// token is picked up from the environment when one is present:
//
//	export GIT_TOKEN_GITHUB='{"Value":"ghp_abc..."}'  // JSON form with metadata
//	export GITHUB_TOKEN=ghp_abc...                    // plain value
//	export GH_TOKEN=ghp_abc...                        // plain value, gh CLI
//
// The JSON form wins over the plain variables. No token means anonymous
// requests.
package token

import (
	"errors"
	"time"
)

var (
	ErrTokenNotFound = errors.New("token not found")
	ErrTokenInvalid  = errors.New("token is invalid")
	ErrTokenExpired  = errors.New("token has expired")
)

// Token represents an authentication token with metadata
type Token struct {
	// Value is the actual token string
	Value string `json:"Value"`

	// ExpiresAt indicates when the token will expire
	// Zero value means the token does not expire
	ExpiresAt time.Time `json:"ExpiresAt"`

	// Source is the environment variable the token was read from
	Source string `json:"-"`
}

// IsExpired checks if a token has expired
func IsExpired(token Token) bool {
	if token.ExpiresAt.IsZero() {
		return false
	}
	return time.Now().After(token.ExpiresAt)
}

// IsValid performs basic validation of a token
func IsValid(token Token) bool {
	return token.Value != ""
}
