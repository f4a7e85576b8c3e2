// Package github provides a typed client for the pieces of the GitHub
// GraphQL API this service consumes: a user's profile snapshot and the
// paginated repository connection with per-repository statistics.
package github

import "time"

// RateLimit carries the rate-limit telemetry GitHub returns with every
// query. The client surfaces it to the caller; throttling policy is a
// caller concern.
type RateLimit struct {
	Limit     int
	Cost      int
	Remaining int
	ResetAt   time.Time
}

// Profile is the scalar snapshot of a GitHub user. ID is the opaque node
// identifier required to filter commit history in repository pages.
type Profile struct {
	ID        string
	Login     string
	Name      string
	Bio       string
	CreatedAt time.Time
	AvatarURL string
	URL       string
	Followers int
	Following int
	RepoCount int

	RateLimit RateLimit
}

// Language is one entry of a repository's language breakdown.
type Language struct {
	Name  string
	Color string
}

// RepoSummary is one node of the repository connection.
type RepoSummary struct {
	NameWithOwner string
	URL           string
	Owner         string
	IsFork        bool
	Stars         int
	Watchers      int
	Forks         int
	DefaultBranch string

	// Languages holds at most five entries, largest by size first.
	Languages []Language

	// UserCommits is the commit count authored by the queried user on the
	// default branch. Zero when the repository has no default branch.
	UserCommits int
}

// RepoPage is one page of the repository connection. EndCursor feeds the
// next call's after parameter while HasNextPage is true.
type RepoPage struct {
	TotalCount  int
	HasNextPage bool
	EndCursor   string
	Nodes       []RepoSummary

	RateLimit RateLimit
}
