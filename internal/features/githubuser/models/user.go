package models

import "time"

// UserRecord is the cached document for one GitHub user and the body of a
// successful response. The profile is embedded so its fields sit at the top
// level of the JSON, next to username and the repository list.
type UserRecord struct {
	// Username is the lowercased login the record is stored under.
	Username string `json:"username" example:"octocat"`

	Profile

	Repositories []RepoSummary `json:"repositories"`

	// FetchedAt is when the upstream aggregation that produced this record
	// completed.
	FetchedAt time.Time `json:"fetchedAt" example:"2024-03-15T14:30:00Z"`

	// Fresh reports whether this response was fetched upstream during the
	// current request. It is stored as written but forced to false whenever
	// the record is served from cache, so its persisted value is transient.
	Fresh bool `json:"fresh"`
}

// Profile is the account-level snapshot taken alongside the repositories.
type Profile struct {
	ID        string    `json:"id"`
	Login     string    `json:"login" example:"octocat"`
	Name      string    `json:"name" example:"The Octocat"`
	Bio       string    `json:"bio"`
	CreatedAt time.Time `json:"createdAt"`
	AvatarURL string    `json:"avatarUrl"`
	URL       string    `json:"url"`
	Followers int       `json:"followers" example:"3938"`
	Following int       `json:"following" example:"9"`
	RepoCount int       `json:"repoCount" example:"8"`
}

// Validate reports whether the profile carries the fields every downstream
// consumer depends on. ID doubles as the commit author filter and Login as
// the record identity.
func (p Profile) Validate() bool {
	return p.ID != "" && p.Login != ""
}

// RepoSummary is one repository with the per-user statistics attached.
type RepoSummary struct {
	NameWithOwner string     `json:"nameWithOwner" example:"octocat/Hello-World"`
	URL           string     `json:"url"`
	Owner         string     `json:"owner" example:"octocat"`
	IsFork        bool       `json:"isFork"`
	Stars         int        `json:"stars"`
	Watchers      int        `json:"watchers"`
	Forks         int        `json:"forks"`
	DefaultBranch string     `json:"defaultBranch" example:"master"`
	Languages     []Language `json:"languages"`

	// UserCommits counts default-branch commits authored by the queried
	// user, zero for repositories without a default branch.
	UserCommits int `json:"userCommits"`
}

// Language is one entry of a repository's top-languages list.
type Language struct {
	Name  string `json:"name" example:"Go"`
	Color string `json:"color" example:"#00ADD8"`
}
