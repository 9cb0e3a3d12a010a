// Package scaffold prepares a local directory for a new project.
//
// A run resolves and confirms the target path, validates the repository URL
// against the GitHub API with a bounded number of attempts, and optionally
// removes the target tree:
//
//	s := scaffold.New(console, client, logger, tracker)
//	res, err := s.Run(ctx, scaffold.Options{Path: "./myapp"})
//	if errors.Is(err, scaffold.ErrAborted) {
//	    return nil // user declined the path
//	}
//
// URL validation never fails a run. When no URL is given, or every attempt
// is rejected, the default repository URL is used instead.
package scaffold

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/NicabarNimble/create-next-app/internal/config"
	"github.com/NicabarNimble/create-next-app/internal/progress"
	"github.com/NicabarNimble/create-next-app/internal/ui"
)

// DefaultMaxAttempts bounds URL validation when Options leaves it unset.
const DefaultMaxAttempts = 3

var (
	// ErrAborted is returned when the user declines the target path
	ErrAborted = errors.New("aborted by user")

	// ErrNoURL is returned by Validate for an empty repository URL
	ErrNoURL = errors.New("no repository URL supplied")

	// ErrValidationFailed is returned by Validate once every attempt failed
	ErrValidationFailed = errors.New("repository URL validation failed")
)

// Options controls a single run
type Options struct {
	Path           string
	RepoURL        string
	Clean          bool
	Debug          bool
	MaxAttempts    int
	DefaultRepoURL string
}

func (o Options) withDefaults() Options {
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = DefaultMaxAttempts
	}
	if o.DefaultRepoURL == "" {
		o.DefaultRepoURL = config.DefaultRepoURL
	}
	return o
}

// Result describes what a run selected and did
type Result struct {
	Path        string
	RepoURL     string
	UsedDefault bool
	Cleaned     bool
}

// Scaffolder runs the scaffolding steps against a console and a repository
// checker.
type Scaffolder struct {
	console ui.Prompter
	checker RepositoryChecker
	logger  *zap.Logger
	tracker progress.Tracker
}

// New creates a Scaffolder. A nil logger or tracker is replaced by a no-op
// logger and an in-memory tracker.
func New(console ui.Prompter, checker RepositoryChecker, logger *zap.Logger, tracker progress.Tracker) *Scaffolder {
	if logger == nil {
		logger = zap.NewNop()
	}
	if tracker == nil {
		tracker = &progress.DefaultTracker{}
	}

	return &Scaffolder{
		console: console,
		checker: checker,
		logger:  logger,
		tracker: tracker,
	}
}

// Run resolves the path, selects the repository URL and cleans the path if
// requested. Only ErrAborted and filesystem or input failures are returned.
func (s *Scaffolder) Run(ctx context.Context, opts Options) (*Result, error) {
	opts = opts.withDefaults()

	if opts.Debug {
		s.console.Println(ui.Yellow("\nDebugging enabled."))
	}

	s.tracker.Start("resolve path")
	path, err := ResolvePath(s.console, opts.Path)
	if err != nil {
		s.tracker.Error(err)
		return nil, err
	}
	s.tracker.Complete()

	res := &Result{Path: path}

	s.tracker.Start("validate repository URL")
	validator := NewValidator(s.checker, s.console, s.logger, opts.MaxAttempts)
	res.RepoURL, err = validator.Validate(ctx, opts.RepoURL)
	if err != nil {
		s.logger.Debug("using default repository URL",
			zap.String("default", opts.DefaultRepoURL),
			zap.NamedError("cause", err))
		res.RepoURL = opts.DefaultRepoURL
		res.UsedDefault = true
	}
	s.tracker.Complete()

	s.console.Printf("\nSelected repository URL: %s\n", ui.Green(res.RepoURL))

	if opts.Clean {
		s.tracker.Start("clean")
		res.Cleaned, err = Clean(s.console, path, opts.Debug)
		if err != nil {
			s.tracker.Error(err)
			return res, err
		}
		s.tracker.Complete()
	}

	return res, nil
}
