// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"net/http"

	"mixtape/internal/models"
)

// MockService is a test double for [services.Service].
//
// Each method delegates to the corresponding function field when set and
// returns zero values otherwise, so tests script only what they exercise.
type MockService struct {
	AuthenticateFunc     func(ctx context.Context, credentials map[string]string) error
	CurrentUserFunc      func(ctx context.Context) (*models.User, error)
	PlaylistTracksFunc   func(ctx context.Context, playlistID, fields, pageURL string) (*models.TrackPage, error)
	CreatePlaylistFunc   func(ctx context.Context, userID, name string, public bool) (*models.Playlist, error)
	AddTracksFunc        func(ctx context.Context, playlistID string, uris []string) error
	UnfollowPlaylistFunc func(ctx context.Context, playlistID string) error
}

func (m *MockService) Authenticate(ctx context.Context, credentials map[string]string) error {
	if m.AuthenticateFunc != nil {
		return m.AuthenticateFunc(ctx, credentials)
	}
	return nil
}

func (m *MockService) CurrentUser(ctx context.Context) (*models.User, error) {
	if m.CurrentUserFunc != nil {
		return m.CurrentUserFunc(ctx)
	}
	return &models.User{ID: "mock_user"}, nil
}

func (m *MockService) PlaylistTracks(ctx context.Context, playlistID, fields, pageURL string) (*models.TrackPage, error) {
	if m.PlaylistTracksFunc != nil {
		return m.PlaylistTracksFunc(ctx, playlistID, fields, pageURL)
	}
	return &models.TrackPage{}, nil
}

func (m *MockService) CreatePlaylist(ctx context.Context, userID, name string, public bool) (*models.Playlist, error) {
	if m.CreatePlaylistFunc != nil {
		return m.CreatePlaylistFunc(ctx, userID, name, public)
	}
	return &models.Playlist{ID: "mock_playlist", Name: name, Public: public}, nil
}

func (m *MockService) AddTracks(ctx context.Context, playlistID string, uris []string) error {
	if m.AddTracksFunc != nil {
		return m.AddTracksFunc(ctx, playlistID, uris)
	}
	return nil
}

func (m *MockService) UnfollowPlaylist(ctx context.Context, playlistID string) error {
	if m.UnfollowPlaylistFunc != nil {
		return m.UnfollowPlaylistFunc(ctx, playlistID)
	}
	return nil
}

func (m *MockService) Name() string { return "mock" }

// PagedTracks builds a scripted PlaylistTracks function serving the given
// pages in order, wiring continuation cursors between them.
func PagedTracks(pages ...models.TrackPage) func(ctx context.Context, playlistID, fields, pageURL string) (*models.TrackPage, error) {
	cursors := make(map[string]int, len(pages))
	for i := 1; i < len(pages); i++ {
		cursor := "https://api.example.com/page/" + string(rune('0'+i))
		cursors[cursor] = i
		next := cursor
		pages[i-1].Next = &next
	}

	return func(ctx context.Context, playlistID, fields, pageURL string) (*models.TrackPage, error) {
		if len(pages) == 0 {
			return &models.TrackPage{}, nil
		}
		if pageURL == "" {
			page := pages[0]
			return &page, nil
		}
		i, ok := cursors[pageURL]
		if !ok {
			return nil, errors.New("unknown page cursor: " + pageURL)
		}
		page := pages[i]
		return &page, nil
	}
}

// URIItems converts track URIs into playlist items; an empty URI produces
// a trackless slot.
func URIItems(uris ...string) []models.PlaylistItem {
	items := make([]models.PlaylistItem, len(uris))
	for i, uri := range uris {
		if uri == "" {
			continue
		}
		items[i] = models.PlaylistItem{Track: &models.Track{URI: uri}}
	}
	return items
}

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

// RoundTripFunc adapts a function to http.RoundTripper for request inspection.
type RoundTripFunc func(*http.Request) (*http.Response, error)

func (f RoundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}
