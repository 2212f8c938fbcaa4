// Package services defines the [Service] interface for the remote playlist
// collaborator and implements it for Spotify.
//
// # Service Interface
//
// The interface covers exactly what the playlist operations consume: the
// acting user, cursor-paged track listings, playlist creation, batched
// track writes, and unfollow (delete) for cleanup.
//
// # Spotify Implementation
//
// [SpotifyService] uses OAuth2 for authentication with automatic token
// refresh via the [oauth2.Config] client. Requests go through a single
// doRequest helper; pagination cursors are the absolute "next" URLs the
// API returns and are followed verbatim.
//
// # OAuth Service Extension
//
// The [OAuthService] interface extends Service for OAuth providers.
// [SpotifyService] implements it for the CLI's authorization-code flow.
//
// # Error Handling
//
// Services use typed errors from the shared package:
//   - [shared.ErrNotAuthenticated] : Authenticate() not called
//   - [shared.ErrTokenExpired] : OAuth token expired, reauthorization needed
//   - [shared.ErrAPIRequest] : HTTP request failed
//   - [shared.ErrPlaylistNotFound] : playlist ID not found
package services
