package token

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/samber/lo"
)

const (
	// EnvPrefix is the prefix used for JSON-encoded token variables
	EnvPrefix = "GIT_TOKEN_"

	// GitHubKey is the storage key for GitHub tokens
	GitHubKey = "github"
)

// PlainEnvVars are consulted in order when no JSON-encoded token is set.
var PlainEnvVars = []string{"GITHUB_TOKEN", "GH_TOKEN"}

// EnvStorage reads tokens stored as JSON strings in GIT_TOKEN_* variables.
type EnvStorage struct{}

// NewEnvStorage creates a new environment variable-based token storage
func NewEnvStorage() *EnvStorage {
	return &EnvStorage{}
}

// Retrieve gets a token by its key from environment variables
func (e *EnvStorage) Retrieve(_ context.Context, key string) (Token, error) {
	envKey := e.FormatEnvKey(key)
	data := os.Getenv(envKey)
	if data == "" {
		return Token{}, ErrTokenNotFound
	}

	var token Token
	if err := json.Unmarshal([]byte(data), &token); err != nil {
		return Token{}, fmt.Errorf("failed to unmarshal %s: %w", envKey, err)
	}

	if !IsValid(token) {
		return Token{}, ErrTokenInvalid
	}
	if IsExpired(token) {
		return Token{}, ErrTokenExpired
	}

	token.Source = envKey
	return token, nil
}

// FormatEnvKey converts a token key into an environment variable name
func (e *EnvStorage) FormatEnvKey(key string) string {
	sanitized := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			return r
		}
		return '_'
	}, strings.ToUpper(key))

	return EnvPrefix + sanitized
}

// LookupGitHub returns the GitHub token from the environment. It returns
// ErrTokenNotFound when none of the supported variables is set.
func LookupGitHub(ctx context.Context) (Token, error) {
	t, err := NewEnvStorage().Retrieve(ctx, GitHubKey)
	if err == nil {
		return t, nil
	}
	if !errors.Is(err, ErrTokenNotFound) {
		return Token{}, err
	}

	name, ok := lo.Find(PlainEnvVars, func(name string) bool {
		return strings.TrimSpace(os.Getenv(name)) != ""
	})
	if !ok {
		return Token{}, ErrTokenNotFound
	}

	return Token{
		Value:  strings.TrimSpace(os.Getenv(name)),
		Source: name,
	}, nil
}
