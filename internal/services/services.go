// package services defines interface Service for the Spotify Web API collaborator
package services

import (
	"context"

	"golang.org/x/oauth2"

	"mixtape/internal/models"
)

// Service defines the remote collaborator consumed by playlist operations.
//
// Implementations own authentication and HTTP transport; callers see only
// pages, playlists, and track references.
type Service interface {
	// Authenticate performs authentication with the service.
	// Expects either an "access_token" or "auth_code" entry in credentials.
	Authenticate(ctx context.Context, credentials map[string]string) error

	// CurrentUser resolves the acting account.
	CurrentUser(ctx context.Context) (*models.User, error)

	// PlaylistTracks fetches one page of a playlist's tracks, filtered to
	// the given response fields. An empty pageURL fetches the first page;
	// otherwise pageURL is the continuation cursor from a previous page.
	PlaylistTracks(ctx context.Context, playlistID, fields, pageURL string) (*models.TrackPage, error)

	// CreatePlaylist creates a playlist owned by the given user.
	CreatePlaylist(ctx context.Context, userID, name string, public bool) (*models.Playlist, error)

	// AddTracks appends track URIs to a playlist. At most 100 URIs are
	// accepted per call, matching the service's write ceiling.
	AddTracks(ctx context.Context, playlistID string, uris []string) error

	// UnfollowPlaylist removes the acting user's follow of a playlist,
	// which deletes playlists the user owns.
	UnfollowPlaylist(ctx context.Context, playlistID string) error

	// Name returns the name of the service (e.g., "Spotify")
	Name() string
}

// OAuthService extends Service for providers using server-side OAuth2
// flows, giving the CLI access to the authorization URL and config.
type OAuthService interface {
	Service

	// GetAuthURL returns the OAuth2 authorization URL for user login.
	GetAuthURL(state string) string

	// GetOAuthConfig exposes the underlying OAuth2 config for callback handling.
	GetOAuthConfig() *oauth2.Config

	// OAuthenticate installs an existing token on the service.
	OAuthenticate(ctx context.Context, token *oauth2.Token) error
}
