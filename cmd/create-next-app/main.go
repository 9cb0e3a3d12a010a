// Command create-next-app prepares a project directory and selects the
// GitHub repository it will be created from.
package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/NicabarNimble/create-next-app/internal/config"
	"github.com/NicabarNimble/create-next-app/internal/github"
	"github.com/NicabarNimble/create-next-app/internal/logging"
	"github.com/NicabarNimble/create-next-app/internal/progress"
	"github.com/NicabarNimble/create-next-app/internal/scaffold"
	"github.com/NicabarNimble/create-next-app/internal/token"
	"github.com/NicabarNimble/create-next-app/internal/ui"
)

var (
	// loadConfig allows for mocking in tests
	loadConfig = config.New
)

type rootOptions struct {
	clean       bool
	debug       bool
	maxAttempts int
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "create-next-app [path] [repo_url] [clean] [debug]",
		Short: "Initialize a NextJS project directory",
		Long: `Prepare a directory for a new NextJS project.

The target path is confirmed interactively and created if missing. The
repository URL is checked against the GitHub API; after three rejected
attempts, or when no URL is given, the default template repository is used.`,
		Example: `  create-next-app ./myapp
  create-next-app ./myapp https://github.com/owner/template
  create-next-app ./myapp https://github.com/owner/template true true
  create-next-app ./myapp --clean --debug`,
		Args:          cobra.MaximumNArgs(4),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	cmd.Flags().BoolVar(&opts.clean, "clean", false, "Remove the target directory after setup")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Enable verbose status messages")
	cmd.Flags().IntVar(&opts.maxAttempts, "max-attempts", 0, "Repository URL validation attempts (default from config)")

	return cmd
}

// parseArgs maps the positional arguments onto scaffold options.
func parseArgs(opts *rootOptions, args []string) (scaffold.Options, error) {
	so := scaffold.Options{
		Clean:       opts.clean,
		Debug:       opts.debug,
		MaxAttempts: opts.maxAttempts,
	}

	if len(args) > 0 {
		so.Path = args[0]
	}
	if len(args) > 1 {
		so.RepoURL = args[1]
	}
	for i, target := range []*bool{&so.Clean, &so.Debug} {
		pos := i + 2
		if len(args) <= pos {
			break
		}
		v, err := strconv.ParseBool(args[pos])
		if err != nil {
			return scaffold.Options{}, fmt.Errorf("invalid boolean %q for argument %d", args[pos], pos+1)
		}
		*target = *target || v
	}

	return so, nil
}

func run(cmd *cobra.Command, opts *rootOptions, args []string) error {
	so, err := parseArgs(opts, args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if so.MaxAttempts <= 0 {
		so.MaxAttempts = cfg.Repository.MaxAttempts
	}
	so.DefaultRepoURL = cfg.Repository.DefaultURL

	logger, err := logging.New(so.Debug)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx := cmd.Context()
	tok, err := token.LookupGitHub(ctx)
	if err != nil && !errors.Is(err, token.ErrTokenNotFound) {
		logger.Debug("ignoring unusable GitHub token", zap.Error(err))
	}
	if tok.Source != "" {
		logger.Debug("using GitHub token", zap.String("source", tok.Source))
	}

	client := github.NewClient(cfg.GitHub.APIURL, tok.Value, cfg.GitHub.Timeout, logger.Named("github"))
	console := ui.NewConsole(cmd.InOrStdin(), cmd.OutOrStdout())
	s := scaffold.New(console, client, logger, progress.NewLogTracker(logger))

	if _, err := s.Run(ctx, so); err != nil {
		if errors.Is(err, scaffold.ErrAborted) {
			return nil
		}
		return err
	}

	return nil
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
