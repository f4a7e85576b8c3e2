package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/hereisnaman/api.gitfa.me/internal/common/errors"
	"github.com/hereisnaman/api.gitfa.me/internal/features/githubuser/models"
	"github.com/hereisnaman/api.gitfa.me/internal/platform/github"
)

type mockRepo struct {
	records map[string]*models.UserRecord

	getErr    error
	upsertErr error

	getCalls    int
	upsertCalls int
	lastUpsert  *models.UserRecord
}

func newMockRepo() *mockRepo {
	return &mockRepo{records: make(map[string]*models.UserRecord)}
}

func (m *mockRepo) Get(_ context.Context, username string) (*models.UserRecord, error) {
	m.getCalls++
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.records[username], nil
}

func (m *mockRepo) Upsert(_ context.Context, record *models.UserRecord) error {
	m.upsertCalls++
	if m.upsertErr != nil {
		return m.upsertErr
	}
	m.lastUpsert = record
	m.records[record.Username] = record
	return nil
}

var testNow = time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)

func newTestService(repo *mockRepo, client github.Client) *userService {
	return &userService{
		repo:   repo,
		github: client,
		ttl:    24 * time.Hour,
		now:    func() time.Time { return testNow },
	}
}

func testProfile() *github.Profile {
	return &github.Profile{
		ID:        "MDQ6VXNlcjU4MzIzMQ==",
		Login:     "octocat",
		Name:      "The Octocat",
		CreatedAt: testNow.Add(-10 * 365 * 24 * time.Hour),
		AvatarURL: "https://avatars.githubusercontent.com/u/583231",
		URL:       "https://github.com/octocat",
		Followers: 3938,
		Following: 9,
		RepoCount: 8,
	}
}

// repoPages builds sequential pages with the given node counts. Node names
// ascend across page boundaries so ordering can be asserted end to end.
func repoPages(totalCount int, counts ...int) []*github.RepoPage {
	pages := make([]*github.RepoPage, 0, len(counts))
	n := 0
	for i, count := range counts {
		page := &github.RepoPage{
			TotalCount:  totalCount,
			HasNextPage: i < len(counts)-1,
			EndCursor:   fmt.Sprintf("cursor-%d", i),
			RateLimit:   github.RateLimit{Limit: 5000, Cost: 1, Remaining: 4999 - i},
		}
		for j := 0; j < count; j++ {
			page.Nodes = append(page.Nodes, github.RepoSummary{
				NameWithOwner: fmt.Sprintf("octocat/repo-%03d", n),
				Owner:         "octocat",
				DefaultBranch: "master",
				Stars:         n,
			})
			n++
		}
		pages = append(pages, page)
	}
	return pages
}

func TestGetUser_InsertOnUnseenUsername(t *testing.T) {
	repo := newMockRepo()
	client := &github.MockClient{
		Profile: testProfile(),
		Pages:   repoPages(8, 8),
	}
	svc := newTestService(repo, client)

	record, err := svc.GetUser(context.Background(), "Octocat", false)
	require.NoError(t, err)

	assert.Equal(t, "octocat", record.Username, "cache key is the lowercased username")
	assert.True(t, record.Fresh)
	assert.Equal(t, testNow, record.FetchedAt)
	assert.Len(t, record.Repositories, 8)
	assert.Equal(t, record.RepoCount, len(record.Repositories))

	assert.Equal(t, 1, client.ProfileCalls)
	assert.Equal(t, 1, repo.upsertCalls)
	require.NotNil(t, repo.lastUpsert)
	assert.Equal(t, "octocat", repo.lastUpsert.Username)
}

func TestGetUser_ServeCachedYoungRecord(t *testing.T) {
	repo := newMockRepo()
	repo.records["octocat"] = &models.UserRecord{
		Username:  "octocat",
		FetchedAt: testNow.Add(-time.Hour),
		Fresh:     true,
	}
	client := &github.MockClient{}
	svc := newTestService(repo, client)

	// Even an explicit refresh request must not bypass a young record.
	record, err := svc.GetUser(context.Background(), "octocat", true)
	require.NoError(t, err)

	assert.False(t, record.Fresh, "cached responses always report fresh=false")
	assert.Equal(t, 0, client.ProfileCalls)
	assert.Equal(t, 0, client.PageCalls)
	assert.Equal(t, 0, repo.upsertCalls)
}

func TestGetUser_ServeCachedStaleWithoutRefresh(t *testing.T) {
	repo := newMockRepo()
	repo.records["octocat"] = &models.UserRecord{
		Username:  "octocat",
		FetchedAt: testNow.Add(-48 * time.Hour),
	}
	client := &github.MockClient{}
	svc := newTestService(repo, client)

	record, err := svc.GetUser(context.Background(), "octocat", false)
	require.NoError(t, err)

	assert.False(t, record.Fresh)
	assert.Equal(t, 0, client.ProfileCalls)
	assert.Equal(t, 0, repo.upsertCalls)
}

func TestGetUser_RefreshStaleRecord(t *testing.T) {
	previous := testNow.Add(-48 * time.Hour)
	repo := newMockRepo()
	repo.records["octocat"] = &models.UserRecord{
		Username:  "octocat",
		FetchedAt: previous,
	}
	client := &github.MockClient{
		Profile: testProfile(),
		Pages:   repoPages(8, 8),
	}
	svc := newTestService(repo, client)

	record, err := svc.GetUser(context.Background(), "octocat", true)
	require.NoError(t, err)

	assert.True(t, record.Fresh)
	assert.True(t, record.FetchedAt.After(previous), "a refresh never regresses fetchedAt")
	assert.Equal(t, 1, client.ProfileCalls)
	assert.Equal(t, 1, repo.upsertCalls)
}

func TestGetUser_PaginationAggregatesAllPages(t *testing.T) {
	repo := newMockRepo()
	client := &github.MockClient{
		Profile: testProfile(),
		Pages:   repoPages(60, 25, 25, 10),
	}
	svc := newTestService(repo, client)

	record, err := svc.GetUser(context.Background(), "octocat", false)
	require.NoError(t, err)

	assert.Equal(t, 3, client.PageCalls, "exactly one call per page")
	assert.Equal(t, []string{"", "cursor-0", "cursor-1"}, client.Cursors,
		"each call resumes from the previous end cursor")
	require.Len(t, record.Repositories, 60)

	// Upstream name-ascending order survives the merge.
	for i := 1; i < len(record.Repositories); i++ {
		assert.Less(t, record.Repositories[i-1].NameWithOwner, record.Repositories[i].NameWithOwner)
	}

	assert.Equal(t, client.Profile.ID, client.LastUserID,
		"page queries carry the opaque user id from the profile")
}

func TestGetUser_IncompleteAggregationRejected(t *testing.T) {
	repo := newMockRepo()
	pages := repoPages(60, 25, 25)
	pages[len(pages)-1].HasNextPage = false // upstream lied about the total
	client := &github.MockClient{
		Profile: testProfile(),
		Pages:   pages,
	}
	svc := newTestService(repo, client)

	_, err := svc.GetUser(context.Background(), "octocat", false)
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeIncompleteFetch, appErr.Code)
	assert.Equal(t, 0, repo.upsertCalls, "partial results are never committed")
}

func TestGetUser_ProfileFailureShortCircuits(t *testing.T) {
	repo := newMockRepo()
	client := &github.MockClient{
		ProfileErr: fmt.Errorf("boom: %w", github.ErrUserNotFound),
	}
	svc := newTestService(repo, client)

	_, err := svc.GetUser(context.Background(), "nosuchuser", false)
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeUserNotFound, appErr.Code)
	assert.Equal(t, 0, client.PageCalls, "no page calls after a profile failure")
	assert.Equal(t, 0, repo.upsertCalls)
}

func TestGetUser_MalformedProfileRejected(t *testing.T) {
	repo := newMockRepo()
	client := &github.MockClient{
		Profile: &github.Profile{Login: "octocat"}, // missing node ID
	}
	svc := newTestService(repo, client)

	_, err := svc.GetUser(context.Background(), "octocat", false)
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeGitHubAPI, appErr.Code)
	assert.Equal(t, 0, repo.upsertCalls)
}

func TestGetUser_StoreLookupFailurePropagates(t *testing.T) {
	repo := newMockRepo()
	repo.getErr = apperrors.NewCacheError("get", errors.New("connection refused"))
	client := &github.MockClient{}
	svc := newTestService(repo, client)

	_, err := svc.GetUser(context.Background(), "octocat", false)
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeCacheError, appErr.Code)
	assert.Equal(t, 0, client.ProfileCalls, "upstream untouched on store failure")
}

func TestGetUser_RefreshFailureKeepsCachedRecord(t *testing.T) {
	previous := testNow.Add(-48 * time.Hour)
	repo := newMockRepo()
	repo.records["octocat"] = &models.UserRecord{
		Username:  "octocat",
		FetchedAt: previous,
	}
	client := &github.MockClient{
		Profile:   testProfile(),
		PageErr:   errors.New("network timeout"),
		PageErrAt: -1,
	}
	svc := newTestService(repo, client)

	_, err := svc.GetUser(context.Background(), "octocat", true)
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.True(t, appErr.IsRefreshFailure())

	// The stale record is left intact and un-bumped.
	assert.Equal(t, 0, repo.upsertCalls)
	assert.Equal(t, previous, repo.records["octocat"].FetchedAt)
}

func TestGetUser_IdempotentWithinTTL(t *testing.T) {
	repo := newMockRepo()
	client := &github.MockClient{
		Profile: testProfile(),
		Pages:   repoPages(8, 8),
	}
	svc := newTestService(repo, client)

	first, err := svc.GetUser(context.Background(), "octocat", false)
	require.NoError(t, err)
	second, err := svc.GetUser(context.Background(), "octocat", false)
	require.NoError(t, err)

	assert.Equal(t, 1, client.ProfileCalls, "second call is served from cache")
	assert.Equal(t, first.Profile, second.Profile)
	assert.Equal(t, first.Repositories, second.Repositories)
	assert.True(t, first.Fresh)
	assert.False(t, second.Fresh)
}
