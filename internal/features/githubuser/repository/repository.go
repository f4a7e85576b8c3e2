package repository

import (
	"context"

	"github.com/hereisnaman/api.gitfa.me/internal/features/githubuser/models"
)

// UserRepository is the cache store for user records. One record exists per
// lowercased username; the store expires records on its own after the
// configured TTL, independent of reads and writes.
type UserRepository interface {
	// Get returns the cached record for the username, or (nil, nil) when no
	// record exists.
	Get(ctx context.Context, username string) (*models.UserRecord, error)

	// Upsert overwrites any existing record for the username and resets the
	// store-level TTL.
	Upsert(ctx context.Context, record *models.UserRecord) error
}
