// Package config loads runtime settings for create-next-app.
//
// Values come from Default, then an optional YAML file named by CONFIG_PATH,
// then the environment, and are validated before use.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-core-fx/config"
	"github.com/go-playground/validator/v10"

	gerrors "github.com/NicabarNimble/create-next-app/internal/errors"
	"github.com/NicabarNimble/create-next-app/internal/urlutils"
)

// DefaultRepoURL is used whenever no valid repository URL is supplied.
const DefaultRepoURL = "https://github.com/sarbaaz0303/create-next-app.git"

type repositoryConfig struct {
	DefaultURL  string `koanf:"default_url" validate:"required,http_url"`
	MaxAttempts int    `koanf:"max_attempts" validate:"min=1,max=10"`
}

type githubConfig struct {
	APIURL  string        `koanf:"api_url" validate:"required,http_url"`
	Timeout time.Duration `koanf:"timeout" validate:"gt=0"`
}

type Config struct {
	Repository repositoryConfig `koanf:"repository"`
	GitHub     githubConfig     `koanf:"github"`
}

func Default() Config {
	//nolint:mnd //default values
	return Config{
		Repository: repositoryConfig{
			DefaultURL:  DefaultRepoURL,
			MaxAttempts: 3,
		},
		GitHub: githubConfig{
			APIURL:  "https://api.github.com",
			Timeout: 10 * time.Second,
		},
	}
}

func New() (Config, error) {
	cfg := Default()

	options := []config.Option{}
	if yamlPath := os.Getenv("CONFIG_PATH"); yamlPath != "" {
		options = append(options, config.WithLocalYAML(yamlPath))
	}

	if err := config.Load(&cfg, options...); err != nil {
		return Config{}, gerrors.New(gerrors.OpConfig, fmt.Errorf("failed to load config: %w", err))
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks field constraints and that the default repository URL is
// itself a GitHub repository URL.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return gerrors.New(gerrors.OpConfig, fmt.Errorf("invalid config: %w", err))
	}

	if err := urlutils.ValidateURL(c.Repository.DefaultURL); err != nil {
		return gerrors.New(gerrors.OpConfig, fmt.Errorf("repository.default_url: %w", err))
	}

	return nil
}
