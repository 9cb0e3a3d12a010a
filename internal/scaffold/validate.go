package scaffold

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/NicabarNimble/create-next-app/internal/ui"
	"github.com/NicabarNimble/create-next-app/internal/urlutils"
)

// RepositoryChecker reports whether a GitHub repository exists.
type RepositoryChecker interface {
	RepositoryExists(ctx context.Context, owner, repo string) (bool, error)
}

// Rejection reasons logged for failed attempts. All of them cost one
// attempt.
const (
	reasonMalformed = "malformed"
	reasonLookup    = "lookup-error"
	reasonNotFound  = "not-found"
)

// Validator checks repository URLs, asking for a replacement after each
// rejected attempt.
type Validator struct {
	checker     RepositoryChecker
	console     ui.Prompter
	logger      *zap.Logger
	maxAttempts int
}

// NewValidator creates a Validator allowing maxAttempts checks per call.
func NewValidator(checker RepositoryChecker, console ui.Prompter, logger *zap.Logger, maxAttempts int) *Validator {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Validator{
		checker:     checker,
		console:     console,
		logger:      logger,
		maxAttempts: maxAttempts,
	}
}

// Validate returns rawURL normalized to end in ".git" once its repository is
// confirmed to exist. An empty rawURL returns ErrNoURL without any lookup.
// After maxAttempts rejections it returns ErrValidationFailed; no prompt
// follows the last rejection.
func (v *Validator) Validate(ctx context.Context, rawURL string) (string, error) {
	if rawURL == "" {
		return "", ErrNoURL
	}

	for attempt := 1; ; attempt++ {
		normalized, reason, err := v.check(ctx, rawURL)
		if err == nil {
			v.logger.Debug("repository URL accepted",
				zap.String("url", normalized),
				zap.Int("attempt", attempt))
			return normalized, nil
		}

		v.logger.Debug("repository URL rejected",
			zap.String("url", rawURL),
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", v.maxAttempts),
			zap.String("reason", reason),
			zap.Error(err))
		v.console.Println("\nRepository URL is not valid. Please try again.")

		if attempt >= v.maxAttempts {
			return "", ErrValidationFailed
		}

		next, err := v.console.Ask("Enter the repository URL again: ")
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrValidationFailed, err)
		}
		rawURL = next
	}
}

func (v *Validator) check(ctx context.Context, rawURL string) (string, string, error) {
	ref, err := urlutils.Parse(rawURL)
	if err != nil {
		return "", reasonMalformed, err
	}

	exists, err := v.checker.RepositoryExists(ctx, ref.Owner, ref.Repo)
	if err != nil {
		return "", reasonLookup, err
	}
	if !exists {
		return "", reasonNotFound, fmt.Errorf("repository %s does not exist", ref.FullName())
	}

	return ref.URL, "", nil
}
