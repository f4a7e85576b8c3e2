package service

import (
	"context"

	"github.com/hereisnaman/api.gitfa.me/internal/features/githubuser/models"
)

// UserService resolves a username to its statistics record, serving from
// the cache store or fetching from GitHub as the freshness policy dictates.
type UserService interface {
	GetUser(ctx context.Context, name string, fresh bool) (*models.UserRecord, error)
}
