// Package github queries the GitHub REST API for repository metadata.
//
// Only one endpoint is used, GET /repos/{owner}/{repo}, to confirm that a
// repository exists before its URL is accepted:
//
//	client := github.NewClient("", tok.Value, 10*time.Second, logger)
//	ok, err := client.RepositoryExists(ctx, "sarbaaz0303", "create-next-app")
//
// The base URL is configurable so tests can point the client at an
// httptest server.
package github
