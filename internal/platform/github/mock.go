package github

import "context"

// MockClient is a scripted implementation of Client for tests. Pages are
// served in order, one per FetchRepositoryPage call, and every call is
// recorded for verification.
type MockClient struct {
	Profile *Profile
	Pages   []*RepoPage

	// Errors to return instead of data.
	ProfileErr error
	PageErr    error
	// PageErrAt makes the n-th page call (0-based) fail with PageErr.
	// Negative means fail every call when PageErr is set.
	PageErrAt int

	// Recorded calls.
	ProfileCalls int
	PageCalls    int
	LastUsername string
	LastUserID   string
	Cursors      []string
}

var _ Client = (*MockClient)(nil)

// FetchProfile implements Client.
func (m *MockClient) FetchProfile(ctx context.Context, username string) (*Profile, error) {
	m.ProfileCalls++
	m.LastUsername = username

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.ProfileErr != nil {
		return nil, m.ProfileErr
	}
	return m.Profile, nil
}

// FetchRepositoryPage implements Client.
func (m *MockClient) FetchRepositoryPage(ctx context.Context, username, userID, after string) (*RepoPage, error) {
	call := m.PageCalls
	m.PageCalls++
	m.LastUsername = username
	m.LastUserID = userID
	m.Cursors = append(m.Cursors, after)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.PageErr != nil && (m.PageErrAt < 0 || m.PageErrAt == call) {
		return nil, m.PageErr
	}
	if call >= len(m.Pages) {
		return &RepoPage{}, nil
	}
	return m.Pages[call], nil
}
