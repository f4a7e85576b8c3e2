package service

import (
	"context"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	apperrors "github.com/hereisnaman/api.gitfa.me/internal/common/errors"
	"github.com/hereisnaman/api.gitfa.me/internal/common/logger"
	"github.com/hereisnaman/api.gitfa.me/internal/features/githubuser/models"
	"github.com/hereisnaman/api.gitfa.me/internal/features/githubuser/repository"
	"github.com/hereisnaman/api.gitfa.me/internal/platform/github"
)

type userService struct {
	repo   repository.UserRepository
	github github.Client
	ttl    time.Duration
	now    func() time.Time

	// flight collapses concurrent fetches for the same username into one
	// upstream round trip.
	flight singleflight.Group
}

// NewUserService wires the cache store and the GitHub client together under
// the freshness policy. ttl is the staleness threshold for explicit
// refreshes; it matches the store-level expiry.
func NewUserService(repo repository.UserRepository, client github.Client, ttl time.Duration) UserService {
	return &userService{
		repo:   repo,
		github: client,
		ttl:    ttl,
		now:    time.Now,
	}
}

// GetUser implements UserService. The username is lowercased before any
// store or upstream interaction; it is the cache key.
func (s *userService) GetUser(ctx context.Context, name string, fresh bool) (*models.UserRecord, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	cached, err := s.repo.Get(ctx, name)
	if err != nil {
		return nil, err
	}

	action := Decide(cached, fresh, s.now(), s.ttl)
	logger.Debug().
		Str("username", name).
		Str("action", action.String()).
		Bool("fresh_requested", fresh).
		Msg("Freshness decision")

	switch action {
	case ActionServeCached:
		// Not freshly fetched this call, whatever the stored flag says.
		record := *cached
		record.Fresh = false
		return &record, nil

	case ActionRefresh:
		record, err := s.fetchAndStore(ctx, name)
		if err != nil {
			// The previously cached record stays intact and un-bumped.
			return nil, wrapRefreshFailure(err, name)
		}
		return record, nil

	default: // ActionInsert
		return s.fetchAndStore(ctx, name)
	}
}

// fetchAndStore runs the full aggregation and commits the result. Concurrent
// calls for the same username share a single fetch and upsert.
func (s *userService) fetchAndStore(ctx context.Context, username string) (*models.UserRecord, error) {
	v, err, shared := s.flight.Do(username, func() (interface{}, error) {
		record, err := s.fetchFullUser(ctx, username)
		if err != nil {
			return nil, err
		}
		if err := s.repo.Upsert(ctx, record); err != nil {
			return nil, err
		}
		return record, nil
	})
	if err != nil {
		return nil, err
	}

	if shared {
		logger.Debug().Str("username", username).Msg("Fetch shared with concurrent request")
	}
	return v.(*models.UserRecord), nil
}

// wrapRefreshFailure tags a failure on the refresh path while keeping the
// underlying message for the client response.
func wrapRefreshFailure(err error, username string) error {
	message := err.Error()
	if appErr, ok := apperrors.AsAppError(err); ok {
		message = appErr.Message
	}
	return apperrors.Wrap(err, apperrors.ErrCodeRefreshFailed, message).
		WithDetail("username", username)
}
