package service

import (
	"time"

	"github.com/hereisnaman/api.gitfa.me/internal/features/githubuser/models"
)

// Action is the freshness policy's verdict for one request.
type Action int

const (
	// ActionInsert: no cached record exists, fetch and store.
	ActionInsert Action = iota
	// ActionServeCached: answer from the cache, fresh forced to false.
	ActionServeCached
	// ActionRefresh: record is stale and the caller asked for fresh data.
	ActionRefresh
)

func (a Action) String() string {
	switch a {
	case ActionInsert:
		return "insert"
	case ActionServeCached:
		return "serve_cached"
	case ActionRefresh:
		return "refresh"
	default:
		return "unknown"
	}
}

// Decide applies the freshness rules in order: a missing record is always
// inserted; a record older than ttl is refreshed only when the caller
// explicitly asked for it; everything else is served from cache.
func Decide(cached *models.UserRecord, refreshRequested bool, now time.Time, ttl time.Duration) Action {
	if cached == nil {
		return ActionInsert
	}
	if now.Sub(cached.FetchedAt) > ttl && refreshRequested {
		return ActionRefresh
	}
	return ActionServeCached
}

// ParseFresh normalizes the request's fresh field into a strict boolean.
// Only the boolean true and the exact string "true" request a refresh;
// every other value, including "True" and 1, does not.
func ParseFresh(v interface{}) bool {
	switch fresh := v.(type) {
	case bool:
		return fresh
	case string:
		return fresh == "true"
	default:
		return false
	}
}
