// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"testing"

	"github.com/desertthunder/likesync/internal/models"
)

// MockLikesProvider is a configurable test double for [services.LikesProvider].
type MockLikesProvider struct {
	Likes       map[string][]models.Song
	Stations    map[string]bool
	AuthErr     error
	LikesErr    error
	StationsErr error
}

func (m *MockLikesProvider) Authenticate(ctx context.Context, credentials map[string]string) error {
	return m.AuthErr
}

func (m *MockLikesProvider) FetchLikes(ctx context.Context) (map[string][]models.Song, error) {
	if m.LikesErr != nil {
		return nil, m.LikesErr
	}
	return m.Likes, nil
}

func (m *MockLikesProvider) FetchStationNames(ctx context.Context) (map[string]bool, error) {
	if m.StationsErr != nil {
		return nil, m.StationsErr
	}
	return m.Stations, nil
}

func (m *MockLikesProvider) Name() string { return "mock source" }

// MockCatalogClient is a configurable test double for [services.CatalogClient].
// It records mutations so tests can assert on what was applied.
type MockCatalogClient struct {
	SearchResults map[string][]models.Candidate
	Playlists     []models.RemotePlaylist
	SearchErr     error
	MutationErr   error

	SearchQueries []string
	Created       []string
	Added         map[string][]string
	Removed       []string
}

func (m *MockCatalogClient) Authenticate(ctx context.Context, credentials map[string]string) error {
	return nil
}

func (m *MockCatalogClient) SearchCatalog(ctx context.Context, query string) ([]models.Candidate, error) {
	m.SearchQueries = append(m.SearchQueries, query)
	if m.SearchErr != nil {
		return nil, m.SearchErr
	}
	return m.SearchResults[query], nil
}

func (m *MockCatalogClient) ListPlaylists(ctx context.Context) ([]models.RemotePlaylist, error) {
	return m.Playlists, nil
}

// CreatePlaylist records the name and uses it as the playlist id so
// assertions can key mutations by name.
func (m *MockCatalogClient) CreatePlaylist(ctx context.Context, name string) (string, error) {
	if m.MutationErr != nil {
		return "", m.MutationErr
	}
	m.Created = append(m.Created, name)
	return name, nil
}

func (m *MockCatalogClient) AddSongs(ctx context.Context, playlistID string, trackIDs []string) error {
	if m.MutationErr != nil {
		return m.MutationErr
	}
	if m.Added == nil {
		m.Added = make(map[string][]string)
	}
	m.Added[playlistID] = append(m.Added[playlistID], trackIDs...)
	return nil
}

func (m *MockCatalogClient) RemoveEntries(ctx context.Context, entryIDs []string) error {
	if m.MutationErr != nil {
		return m.MutationErr
	}
	m.Removed = append(m.Removed, entryIDs...)
	return nil
}

func (m *MockCatalogClient) Name() string { return "mock catalog" }

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
