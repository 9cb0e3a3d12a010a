package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	gerrors "github.com/NicabarNimble/create-next-app/internal/errors"
)

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient("", "", 0, nil)

	assert.Equal(t, DefaultAPIURL, client.baseURL)
	assert.Equal(t, DefaultTimeout, client.httpClient.Timeout)
	assert.NotNil(t, client.logger)

	client = NewClient("http://localhost:9000/", "tok", time.Second, nil)
	assert.Equal(t, "http://localhost:9000", client.baseURL)
	assert.Equal(t, time.Second, client.httpClient.Timeout)
}

func TestGetRepository(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		mockAPI    func(t *testing.T) http.HandlerFunc
		wantRepo   *Repository
		wantErr    error
		wantStatus int
	}{
		{
			name: "repository exists",
			mockAPI: func(t *testing.T) http.HandlerFunc {
				return func(w http.ResponseWriter, r *http.Request) {
					assert.Equal(t, http.MethodGet, r.Method)
					assert.Equal(t, "/repos/owner/repo", r.URL.Path)
					assert.Equal(t, "application/vnd.github.v3+json", r.Header.Get("Accept"))
					assert.Equal(t, userAgent, r.Header.Get("User-Agent"))
					assert.Empty(t, r.Header.Get("Authorization"))
					w.WriteHeader(http.StatusOK)
					w.Write([]byte(`{"full_name":"owner/repo","default_branch":"main","private":false,"html_url":"https://github.com/owner/repo"}`))
				}
			},
			wantRepo: &Repository{
				FullName:      "owner/repo",
				DefaultBranch: "main",
				HTMLURL:       "https://github.com/owner/repo",
			},
		},
		{
			name:  "token is sent",
			token: "ghp_test",
			mockAPI: func(t *testing.T) http.HandlerFunc {
				return func(w http.ResponseWriter, r *http.Request) {
					assert.Equal(t, "Bearer ghp_test", r.Header.Get("Authorization"))
					w.Write([]byte(`{"full_name":"owner/repo"}`))
				}
			},
			wantRepo: &Repository{FullName: "owner/repo"},
		},
		{
			name: "not found",
			mockAPI: func(t *testing.T) http.HandlerFunc {
				return func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusNotFound)
					w.Write([]byte(`{"message":"Not Found"}`))
				}
			},
			wantErr:    ErrRepositoryNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name: "rate limited",
			mockAPI: func(t *testing.T) http.HandlerFunc {
				return func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusForbidden)
					w.Write([]byte(`{"message":"API rate limit exceeded"}`))
				}
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name: "non-200 success status is a failure",
			mockAPI: func(t *testing.T) http.HandlerFunc {
				return func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusNoContent)
				}
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name: "metadata body is not JSON",
			mockAPI: func(t *testing.T) http.HandlerFunc {
				return func(w http.ResponseWriter, r *http.Request) {
					w.Write([]byte(`{not json`))
				}
			},
			wantErr: &gerrors.OperationError{Op: gerrors.OpLookup},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.mockAPI(t))
			defer server.Close()

			client := NewClient(server.URL, tt.token, time.Second, nil)
			repo, err := client.GetRepository(context.Background(), "owner", "repo")

			if tt.wantErr == nil && tt.wantStatus == 0 {
				require.NoError(t, err)
				assert.Equal(t, tt.wantRepo, repo)
				return
			}

			require.Error(t, err)
			assert.Nil(t, repo)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantStatus != 0 {
				var apiErr *gerrors.APIError
				require.ErrorAs(t, err, &apiErr)
				assert.Equal(t, tt.wantStatus, apiErr.Status)
			}
		})
	}
}

func TestRepositoryExists(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/repos/owner/present":
			w.Write([]byte(`{"full_name":"owner/present"}`))
		case "/repos/owner/broken":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL, "", time.Second, nil)
	ctx := context.Background()

	ok, err := client.RepositoryExists(ctx, "owner", "present")
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = client.RepositoryExists(ctx, "owner", "missing")
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = client.RepositoryExists(ctx, "owner", "broken")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestRepositoryExists_OKWithoutMetadata(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty body", body: ""},
		{name: "non-JSON body", body: "<html>ok</html>"},
		{name: "truncated JSON", body: `{"full_name":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			core, logs := observer.New(zapcore.DebugLevel)
			client := NewClient(server.URL, "", time.Second, zap.New(core))

			ok, err := client.RepositoryExists(context.Background(), "o", "r")

			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, 1, logs.FilterMessage("repository found, metadata unreadable").Len())
		})
	}
}

func TestRepositoryExists_LogsMetadata(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"full_name":"vercel/next.js","default_branch":"canary","private":false,"html_url":"https://github.com/vercel/next.js"}`))
	}))
	defer server.Close()

	core, logs := observer.New(zapcore.DebugLevel)
	client := NewClient(server.URL, "", time.Second, zap.New(core))

	ok, err := client.RepositoryExists(context.Background(), "vercel", "next.js")
	require.NoError(t, err)
	assert.True(t, ok)

	found := logs.FilterMessage("repository found").AllUntimed()
	require.Len(t, found, 1)
	fields := found[0].ContextMap()
	assert.Equal(t, "vercel/next.js", fields["full_name"])
	assert.Equal(t, "canary", fields["default_branch"])
	assert.Equal(t, false, fields["private"])
	assert.Equal(t, "https://github.com/vercel/next.js", fields["html_url"])
}

func TestGetRepository_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	client := NewClient(baseURL, "", time.Second, nil)
	_, err := client.GetRepository(context.Background(), "owner", "repo")

	require.Error(t, err)
	assert.ErrorIs(t, err, &gerrors.OperationError{Op: gerrors.OpLookup})
}
