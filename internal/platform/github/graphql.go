package github

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shurcooL/graphql"
)

const defaultPageSize = 25

// GraphQLClient implements Client against the GitHub GraphQL API.
type GraphQLClient struct {
	client   *graphql.Client
	pageSize int
}

// NewGraphQLClient creates a client authenticated with the given token.
// pageSize bounds the repository connection page; values outside (0, 100]
// fall back to the default of 25.
func NewGraphQLClient(token, endpoint string, pageSize int) *GraphQLClient {
	if pageSize <= 0 || pageSize > 100 {
		pageSize = defaultPageSize
	}

	httpClient := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &authTransport{
			token: token,
			base:  http.DefaultTransport,
		},
	}

	return &GraphQLClient{
		client:   graphql.NewClient(endpoint, httpClient),
		pageSize: pageSize,
	}
}

// FetchProfile implements Client.
func (c *GraphQLClient) FetchProfile(ctx context.Context, username string) (*Profile, error) {
	var query struct {
		User struct {
			ID           graphql.String
			Login        graphql.String
			Name         graphql.String
			Bio          graphql.String
			CreatedAt    time.Time
			AvatarURL    graphql.String `graphql:"avatarUrl"`
			URL          graphql.String `graphql:"url"`
			Followers    struct{ TotalCount graphql.Int }
			Following    struct{ TotalCount graphql.Int }
			Repositories struct{ TotalCount graphql.Int }
		} `graphql:"user(login: $login)"`
		RateLimit rateLimitQuery
	}

	variables := map[string]interface{}{
		"login": graphql.String(username),
	}

	if err := c.client.Query(ctx, &query, variables); err != nil {
		return nil, c.mapError(err, username)
	}

	return &Profile{
		ID:        string(query.User.ID),
		Login:     string(query.User.Login),
		Name:      string(query.User.Name),
		Bio:       string(query.User.Bio),
		CreatedAt: query.User.CreatedAt,
		AvatarURL: string(query.User.AvatarURL),
		URL:       string(query.User.URL),
		Followers: int(query.User.Followers.TotalCount),
		Following: int(query.User.Following.TotalCount),
		RepoCount: int(query.User.Repositories.TotalCount),
		RateLimit: query.RateLimit.toRateLimit(),
	}, nil
}

// FetchRepositoryPage implements Client. userID is the opaque identifier
// from FetchProfile; it filters the default-branch commit history down to
// commits authored by the queried user.
func (c *GraphQLClient) FetchRepositoryPage(ctx context.Context, username, userID, after string) (*RepoPage, error) {
	var query struct {
		User struct {
			Repositories struct {
				TotalCount graphql.Int
				PageInfo   struct {
					HasNextPage graphql.Boolean
					EndCursor   graphql.String
				}
				Nodes []repoNode
			} `graphql:"repositories(first: $first, after: $after, orderBy: {field: NAME, direction: ASC})"`
		} `graphql:"user(login: $login)"`
		RateLimit rateLimitQuery
	}

	variables := map[string]interface{}{
		"login":    graphql.String(username),
		"authorId": graphql.ID(userID),
		"first":    graphql.Int(int32(c.pageSize)),
	}

	// null cursor fetches the first page.
	if after == "" {
		variables["after"] = (*graphql.String)(nil)
	} else {
		variables["after"] = graphql.String(after)
	}

	if err := c.client.Query(ctx, &query, variables); err != nil {
		return nil, c.mapError(err, username)
	}

	page := &RepoPage{
		TotalCount:  int(query.User.Repositories.TotalCount),
		HasNextPage: bool(query.User.Repositories.PageInfo.HasNextPage),
		EndCursor:   string(query.User.Repositories.PageInfo.EndCursor),
		Nodes:       make([]RepoSummary, 0, len(query.User.Repositories.Nodes)),
		RateLimit:   query.RateLimit.toRateLimit(),
	}

	for i := range query.User.Repositories.Nodes {
		page.Nodes = append(page.Nodes, query.User.Repositories.Nodes[i].toRepoSummary())
	}

	return page, nil
}

// repoNode mirrors the repository selection of the upstream query.
type repoNode struct {
	NameWithOwner graphql.String
	URL           graphql.String `graphql:"url"`
	IsFork        graphql.Boolean
	Owner         struct{ Login graphql.String }
	Stargazers    struct{ TotalCount graphql.Int }
	Watchers      struct{ TotalCount graphql.Int }
	Forks         struct{ TotalCount graphql.Int }

	// Nil for repositories without a default branch (empty repositories).
	DefaultBranchRef *struct {
		Name   graphql.String
		Target struct {
			Commit struct {
				History struct {
					TotalCount graphql.Int
				} `graphql:"history(first: 0, author: {id: $authorId})"`
			} `graphql:"... on Commit"`
		}
	}

	Languages struct {
		Nodes []struct {
			Name  graphql.String
			Color graphql.String
		}
	} `graphql:"languages(first: 5, orderBy: {field: SIZE, direction: DESC})"`
}

func (n *repoNode) toRepoSummary() RepoSummary {
	repo := RepoSummary{
		NameWithOwner: string(n.NameWithOwner),
		URL:           string(n.URL),
		Owner:         string(n.Owner.Login),
		IsFork:        bool(n.IsFork),
		Stars:         int(n.Stargazers.TotalCount),
		Watchers:      int(n.Watchers.TotalCount),
		Forks:         int(n.Forks.TotalCount),
		Languages:     make([]Language, 0, len(n.Languages.Nodes)),
	}

	if n.DefaultBranchRef != nil {
		repo.DefaultBranch = string(n.DefaultBranchRef.Name)
		repo.UserCommits = int(n.DefaultBranchRef.Target.Commit.History.TotalCount)
	}

	for _, lang := range n.Languages.Nodes {
		repo.Languages = append(repo.Languages, Language{
			Name:  string(lang.Name),
			Color: string(lang.Color),
		})
	}

	return repo
}

// rateLimitQuery is the rateLimit selection attached to every query.
type rateLimitQuery struct {
	Limit     graphql.Int
	Cost      graphql.Int
	Remaining graphql.Int
	ResetAt   time.Time
}

func (r rateLimitQuery) toRateLimit() RateLimit {
	return RateLimit{
		Limit:     int(r.Limit),
		Cost:      int(r.Cost),
		Remaining: int(r.Remaining),
		ResetAt:   r.ResetAt,
	}
}

// mapError classifies upstream failures onto the package sentinels so
// callers can branch without string matching.
func (c *GraphQLClient) mapError(err error, username string) error {
	msg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(msg, "could not resolve to a user"):
		return fmt.Errorf("user %q: %w", username, ErrUserNotFound)
	case strings.Contains(msg, "rate limit"), strings.Contains(msg, "rate_limited"):
		return fmt.Errorf("user %q: %w", username, ErrRateLimited)
	default:
		return fmt.Errorf("github graphql query for %q: %w", username, err)
	}
}

// authTransport adds the bearer token and a User-Agent to every request.
type authTransport struct {
	token string
	base  http.RoundTripper
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("Authorization", "Bearer "+t.token)
	req.Header.Set("User-Agent", "gitfame-api")
	return t.base.RoundTrip(req)
}
