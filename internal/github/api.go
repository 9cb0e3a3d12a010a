package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	gerrors "github.com/NicabarNimble/create-next-app/internal/errors"
)

const (
	// DefaultAPIURL is the public GitHub REST endpoint.
	DefaultAPIURL  = "https://api.github.com"
	DefaultTimeout = 10 * time.Second
	userAgent      = "create-next-app/1.0"
)

// ErrRepositoryNotFound is returned when the API answers 404
var ErrRepositoryNotFound = errors.New("repository not found")

// Repository is the subset of the repository metadata we read
type Repository struct {
	FullName      string `json:"full_name"`
	DefaultBranch string `json:"default_branch"`
	Private       bool   `json:"private"`
	HTMLURL       string `json:"html_url"`
}

// Client handles GitHub API lookups
type Client struct {
	httpClient *http.Client
	token      string
	baseURL    string
	logger     *zap.Logger
}

// NewClient creates a GitHub API client. An empty baseURL selects
// DefaultAPIURL, a zero timeout selects DefaultTimeout and an empty token
// sends anonymous requests.
func NewClient(baseURL, token string, timeout time.Duration, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultAPIURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		token:      token,
		baseURL:    strings.TrimRight(baseURL, "/"),
		logger:     logger,
	}
}

// GetRepository fetches the metadata of owner/repo. A 200 response is the
// only success; 404 yields ErrRepositoryNotFound and other statuses an
// APIError.
func (c *Client) GetRepository(ctx context.Context, owner, repo string) (*Repository, error) {
	resp, err := c.lookup(ctx, owner, repo)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var info Repository
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, gerrors.New(gerrors.OpLookup, fmt.Errorf("failed to decode repository: %w", err))
	}

	return &info, nil
}

// RepositoryExists reports whether owner/repo answers 200. The body is
// only read for debug logging; an unreadable body still means the
// repository exists.
func (c *Client) RepositoryExists(ctx context.Context, owner, repo string) (bool, error) {
	resp, err := c.lookup(ctx, owner, repo)
	if errors.Is(err, ErrRepositoryNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	var info Repository
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		c.logger.Debug("repository found, metadata unreadable",
			zap.String("owner", owner),
			zap.String("repo", repo),
			zap.Error(err))
		return true, nil
	}

	c.logger.Debug("repository found",
		zap.String("full_name", info.FullName),
		zap.String("default_branch", info.DefaultBranch),
		zap.Bool("private", info.Private),
		zap.String("html_url", info.HTMLURL))
	return true, nil
}

func (c *Client) lookup(ctx context.Context, owner, repo string) (*http.Response, error) {
	endpoint := fmt.Sprintf("%s/repos/%s/%s", c.baseURL, url.PathEscape(owner), url.PathEscape(repo))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, gerrors.New(gerrors.OpLookup, fmt.Errorf("failed to create request: %w", err))
	}

	c.logger.Debug("querying repository metadata",
		zap.String("endpoint", endpoint),
		zap.Bool("authenticated", c.token != ""))

	return c.sendRequest(req)
}

// sendRequest sends an HTTP request with the necessary headers
func (c *Client) sendRequest(req *http.Request) (*http.Response, error) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, gerrors.New(gerrors.OpLookup, err)
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<10))
		resp.Body.Close()

		if resp.StatusCode == http.StatusNotFound {
			return nil, gerrors.NewAPIError(gerrors.OpLookup, resp.StatusCode, "repository not found", ErrRepositoryNotFound)
		}
		return nil, gerrors.NewAPIError(gerrors.OpLookup, resp.StatusCode,
			fmt.Sprintf("unexpected response: %s", strings.TrimSpace(string(body))), nil)
	}

	return resp, nil
}
