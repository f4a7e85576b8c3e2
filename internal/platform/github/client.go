package github

import (
	"context"
	"errors"
)

// Sentinel errors returned by the client. Callers wrap them into the
// application error taxonomy.
var (
	// ErrUserNotFound indicates the login does not resolve to a GitHub user.
	ErrUserNotFound = errors.New("github user not found")

	// ErrRateLimited indicates the GitHub API rate limit has been exceeded.
	ErrRateLimited = errors.New("github rate limit exceeded")
)

// Client is the interface to the GitHub API. It exists so the aggregation
// logic can be tested against a mock.
type Client interface {
	// FetchProfile retrieves the user's scalar profile snapshot, including
	// the opaque user ID needed by FetchRepositoryPage.
	FetchProfile(ctx context.Context, username string) (*Profile, error)

	// FetchRepositoryPage retrieves one page of the user's repository
	// connection, ordered by repository name ascending. An empty after
	// cursor fetches the first page. The client does not retry and does
	// not throttle.
	FetchRepositoryPage(ctx context.Context, username, userID, after string) (*RepoPage, error)
}
