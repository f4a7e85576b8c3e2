package service

import (
	"context"
	"errors"
	"fmt"

	apperrors "github.com/hereisnaman/api.gitfa.me/internal/common/errors"
	"github.com/hereisnaman/api.gitfa.me/internal/common/logger"
	"github.com/hereisnaman/api.gitfa.me/internal/features/githubuser/models"
	"github.com/hereisnaman/api.gitfa.me/internal/platform/github"
)

// fetchFullUser aggregates a complete user record from the upstream API:
// the profile first, then the repository connection page by page. Pagination
// is sequential because every call needs the previous page's end cursor.
func (s *userService) fetchFullUser(ctx context.Context, username string) (*models.UserRecord, error) {
	profile, err := s.github.FetchProfile(ctx, username)
	if err != nil {
		return nil, mapUpstreamError(err, "profile")
	}

	p := toProfile(profile)
	if !p.Validate() {
		return nil, apperrors.New(apperrors.ErrCodeGitHubAPI,
			fmt.Sprintf("upstream returned malformed profile for %q", username))
	}

	var (
		repos []models.RepoSummary
		total = -1
		after = ""
	)

	for {
		page, err := s.github.FetchRepositoryPage(ctx, username, profile.ID, after)
		if err != nil {
			return nil, mapUpstreamError(err, "repositories")
		}

		logger.Debug().
			Str("username", username).
			Str("cursor", after).
			Int("nodes", len(page.Nodes)).
			Int("rate_limit_cost", page.RateLimit.Cost).
			Int("rate_limit_remaining", page.RateLimit.Remaining).
			Msg("Fetched repository page")

		if total < 0 {
			total = page.TotalCount
			repos = make([]models.RepoSummary, 0, total)
		}
		for i := range page.Nodes {
			repos = append(repos, toRepoSummary(&page.Nodes[i]))
		}

		if !page.HasNextPage {
			break
		}
		after = page.EndCursor
	}

	// A partial result must never be committed.
	if len(repos) != total {
		return nil, apperrors.New(apperrors.ErrCodeIncompleteFetch,
			fmt.Sprintf("aggregated %d of %d repositories for %q", len(repos), total, username)).
			WithDetail("username", username)
	}

	return &models.UserRecord{
		Username:     username,
		Profile:      p,
		Repositories: repos,
		FetchedAt:    s.now(),
		Fresh:        true,
	}, nil
}

func toProfile(p *github.Profile) models.Profile {
	return models.Profile{
		ID:        p.ID,
		Login:     p.Login,
		Name:      p.Name,
		Bio:       p.Bio,
		CreatedAt: p.CreatedAt,
		AvatarURL: p.AvatarURL,
		URL:       p.URL,
		Followers: p.Followers,
		Following: p.Following,
		RepoCount: p.RepoCount,
	}
}

func toRepoSummary(r *github.RepoSummary) models.RepoSummary {
	repo := models.RepoSummary{
		NameWithOwner: r.NameWithOwner,
		URL:           r.URL,
		Owner:         r.Owner,
		IsFork:        r.IsFork,
		Stars:         r.Stars,
		Watchers:      r.Watchers,
		Forks:         r.Forks,
		DefaultBranch: r.DefaultBranch,
		Languages:     make([]models.Language, 0, len(r.Languages)),
		UserCommits:   r.UserCommits,
	}
	for _, lang := range r.Languages {
		repo.Languages = append(repo.Languages, models.Language{Name: lang.Name, Color: lang.Color})
	}
	return repo
}

func mapUpstreamError(err error, operation string) error {
	switch {
	case errors.Is(err, github.ErrUserNotFound):
		return apperrors.Wrap(err, apperrors.ErrCodeUserNotFound, "github user not found")
	case errors.Is(err, github.ErrRateLimited):
		return apperrors.Wrap(err, apperrors.ErrCodeRateLimit, "github rate limit exceeded")
	default:
		return apperrors.NewGitHubAPIError(operation, err)
	}
}
