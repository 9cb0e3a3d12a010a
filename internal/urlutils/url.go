// Package urlutils parses GitHub repository URLs of the form
// http(s)://github.com/<owner>/<repo>[.git].
package urlutils

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// GitSuffix is the suffix carried by every normalized repository URL.
const GitSuffix = ".git"

var (
	// ErrInvalidURL indicates that the URL is not a GitHub repository URL
	ErrInvalidURL = errors.New("invalid repository URL")

	// ErrEmptyURL indicates that no URL was provided
	ErrEmptyURL = errors.New("empty repository URL")

	repoPattern = regexp.MustCompile(`^https?://github\.com/([^/]+)/([^/]+)$`)
)

// Reference identifies a GitHub repository by owner and name.
type Reference struct {
	Owner string
	Repo  string
	// URL is the input with a ".git" suffix guaranteed.
	URL string
}

// FullName returns the owner/repo pair.
func (r Reference) FullName() string {
	return r.Owner + "/" + r.Repo
}

// Parse extracts the owner and repository name from rawURL. A single
// trailing ".git" is ignored when matching.
//
// Accepted forms:
//   - https://github.com/owner/repo
//   - https://github.com/owner/repo.git
//   - http://github.com/owner/repo
func Parse(rawURL string) (Reference, error) {
	if rawURL == "" {
		return Reference{}, ErrEmptyURL
	}

	m := repoPattern.FindStringSubmatch(strings.TrimSuffix(rawURL, GitSuffix))
	if m == nil || m[1] == "" || m[2] == "" {
		return Reference{}, fmt.Errorf("%w: %s", ErrInvalidURL, rawURL)
	}

	return Reference{
		Owner: m[1],
		Repo:  m[2],
		URL:   EnsureGitSuffix(rawURL),
	}, nil
}

// EnsureGitSuffix appends ".git" unless rawURL already ends with it.
func EnsureGitSuffix(rawURL string) string {
	if strings.HasSuffix(rawURL, GitSuffix) {
		return rawURL
	}
	return rawURL + GitSuffix
}

// ValidateURL reports whether rawURL is a GitHub repository URL.
func ValidateURL(rawURL string) error {
	_, err := Parse(rawURL)
	return err
}
