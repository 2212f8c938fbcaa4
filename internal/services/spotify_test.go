package services

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"mixtape/internal/shared"
	tu "mixtape/internal/testing"
)

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

func authenticatedService(t *testing.T, transport http.RoundTripper) *SpotifyService {
	t.Helper()

	srv, err := NewSpotifyService(map[string]string{
		"client_id":     "test_client_id",
		"client_secret": "test_client_secret",
	})
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}

	if err := srv.Authenticate(context.Background(), map[string]string{"access_token": "test_token"}); err != nil {
		t.Fatalf("failed to authenticate: %v", err)
	}

	srv.httpClient = &http.Client{Transport: transport}
	return srv
}

func TestSpotifyService(t *testing.T) {
	t.Run("NewSpotifyService", func(t *testing.T) {
		t.Run("With Valid Credentials", func(t *testing.T) {
			credentials := map[string]string{
				"client_id":     "test_client_id",
				"client_secret": "test_client_secret",
				"redirect_uri":  "http://localhost:9999/callback",
			}

			srv, err := NewSpotifyService(credentials)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if srv == nil {
				t.Fatal("expected service to be created")
			}

			if srv.Name() != "Spotify" {
				t.Errorf("expected service name 'Spotify', got %s", srv.Name())
			}
		})

		t.Run("Missing Client ID", func(t *testing.T) {
			credentials := map[string]string{
				"client_secret": "test_client_secret",
			}

			_, err := NewSpotifyService(credentials)
			if err == nil {
				t.Error("expected error for missing client_id")
			}
		})

		t.Run("Missing Client Secret", func(t *testing.T) {
			credentials := map[string]string{
				"client_id": "test_client_id",
			}

			_, err := NewSpotifyService(credentials)
			if err == nil {
				t.Error("expected error for missing client_secret")
			}
		})

		t.Run("Default Redirect URI", func(t *testing.T) {
			credentials := map[string]string{
				"client_id":     "test_client_id",
				"client_secret": "test_client_secret",
			}

			srv, err := NewSpotifyService(credentials)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if srv.config.RedirectURL != "http://127.0.0.1:3000/callback" {
				t.Errorf("expected default redirect URI, got %s", srv.config.RedirectURL)
			}
		})
	})

	t.Run("GetAuthURL", func(t *testing.T) {
		srv, err := NewSpotifyService(map[string]string{
			"client_id":     "test_client_id",
			"client_secret": "test_client_secret",
		})
		if err != nil {
			t.Fatalf("failed to create service: %v", err)
		}

		authURL := srv.GetAuthURL("test_state")
		if !strings.Contains(authURL, "accounts.spotify.com") {
			t.Error("auth URL should contain Spotify domain")
		}
		if !strings.Contains(authURL, "test_client_id") {
			t.Error("auth URL should contain client_id")
		}
		if !strings.Contains(authURL, "test_state") {
			t.Error("auth URL should contain state")
		}
	})

	t.Run("Authenticate", func(t *testing.T) {
		srv, err := NewSpotifyService(map[string]string{
			"client_id":     "test_client_id",
			"client_secret": "test_client_secret",
		})
		if err != nil {
			t.Fatalf("failed to create service: %v", err)
		}

		t.Run("With Access Token", func(t *testing.T) {
			err := srv.Authenticate(context.Background(), map[string]string{
				"access_token": "test_access_token",
			})
			if err != nil {
				t.Errorf("expected no error with access token, got %v", err)
			}

			if srv.token == nil || srv.token.AccessToken != "test_access_token" {
				t.Errorf("expected token to be set, got %+v", srv.token)
			}
		})

		t.Run("Missing Credentials", func(t *testing.T) {
			err := srv.Authenticate(context.Background(), map[string]string{})
			if !errors.Is(err, shared.ErrMissingCredentials) {
				t.Errorf("expected ErrMissingCredentials, got %v", err)
			}
		})

		t.Run("Nil Token", func(t *testing.T) {
			if err := srv.OAuthenticate(context.Background(), nil); err == nil {
				t.Error("expected error for nil token")
			}
		})
	})

	t.Run("Not Authenticated", func(t *testing.T) {
		srv, err := NewSpotifyService(map[string]string{
			"client_id":     "test_client_id",
			"client_secret": "test_client_secret",
		})
		if err != nil {
			t.Fatalf("failed to create service: %v", err)
		}

		_, err = srv.CurrentUser(context.Background())
		if !errors.Is(err, shared.ErrNotAuthenticated) {
			t.Errorf("expected ErrNotAuthenticated, got %v", err)
		}
	})

	t.Run("CurrentUser", func(t *testing.T) {
		var gotPath, gotAuth string
		srv := authenticatedService(t, tu.RoundTripFunc(func(r *http.Request) (*http.Response, error) {
			gotPath = r.URL.String()
			gotAuth = r.Header.Get("Authorization")
			return jsonResponse(200, `{"id":"user123","display_name":"Test User"}`), nil
		}))

		user, err := srv.CurrentUser(context.Background())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if user.ID != "user123" || user.DisplayName != "Test User" {
			t.Errorf("unexpected user: %+v", user)
		}
		if gotPath != "https://api.spotify.com/v1/me" {
			t.Errorf("unexpected request URL: %s", gotPath)
		}
		if gotAuth != "Bearer test_token" {
			t.Errorf("unexpected auth header: %s", gotAuth)
		}
	})

	t.Run("PlaylistTracks", func(t *testing.T) {
		t.Run("First Page", func(t *testing.T) {
			var gotURL string
			srv := authenticatedService(t, tu.RoundTripFunc(func(r *http.Request) (*http.Response, error) {
				gotURL = r.URL.String()
				return jsonResponse(200, `{
					"items": [
						{"track": {"uri": "spotify:track:1"}},
						{"track": null},
						{"track": {"uri": "spotify:track:2"}}
					],
					"next": "https://api.spotify.com/v1/playlists/pl1/tracks?offset=100"
				}`), nil
			}))

			page, err := srv.PlaylistTracks(context.Background(), "pl1", "items.track.uri,next", "")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if len(page.Items) != 3 {
				t.Fatalf("expected 3 items, got %d", len(page.Items))
			}
			if page.Items[0].Track == nil || page.Items[0].Track.URI != "spotify:track:1" {
				t.Errorf("unexpected first item: %+v", page.Items[0])
			}
			if page.Items[1].Track != nil {
				t.Error("expected trackless slot to decode as nil track")
			}
			if page.Next == nil || !strings.Contains(*page.Next, "offset=100") {
				t.Errorf("expected continuation cursor, got %v", page.Next)
			}

			if !strings.Contains(gotURL, "/playlists/pl1/tracks") {
				t.Errorf("unexpected request URL: %s", gotURL)
			}
			if !strings.Contains(gotURL, "fields=items.track.uri%2Cnext") {
				t.Errorf("expected fields filter in URL, got %s", gotURL)
			}
			if !strings.Contains(gotURL, "limit=100") {
				t.Errorf("expected page limit in URL, got %s", gotURL)
			}
		})

		t.Run("Cursor Page", func(t *testing.T) {
			var gotURL string
			srv := authenticatedService(t, tu.RoundTripFunc(func(r *http.Request) (*http.Response, error) {
				gotURL = r.URL.String()
				return jsonResponse(200, `{"items": [], "next": null}`), nil
			}))

			cursor := "https://api.spotify.com/v1/playlists/pl1/tracks?offset=200"
			page, err := srv.PlaylistTracks(context.Background(), "pl1", "items.track.uri,next", cursor)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if gotURL != cursor {
				t.Errorf("expected cursor URL to be followed verbatim, got %s", gotURL)
			}
			if page.Next != nil {
				t.Error("expected nil cursor on final page")
			}
		})

		t.Run("Not Found", func(t *testing.T) {
			srv := authenticatedService(t, tu.NewMockRoundTripper(jsonResponse(404, `{}`), nil))

			_, err := srv.PlaylistTracks(context.Background(), "missing", "items.track.uri,next", "")
			if !errors.Is(err, shared.ErrPlaylistNotFound) {
				t.Errorf("expected ErrPlaylistNotFound, got %v", err)
			}
		})

		t.Run("Expired Token", func(t *testing.T) {
			srv := authenticatedService(t, tu.NewMockRoundTripper(jsonResponse(401, `{}`), nil))

			_, err := srv.PlaylistTracks(context.Background(), "pl1", "items.track.uri,next", "")
			if !errors.Is(err, shared.ErrTokenExpired) {
				t.Errorf("expected ErrTokenExpired, got %v", err)
			}
		})
	})

	t.Run("CreatePlaylist", func(t *testing.T) {
		var gotURL, gotBody string
		srv := authenticatedService(t, tu.RoundTripFunc(func(r *http.Request) (*http.Response, error) {
			gotURL = r.URL.String()
			payload, _ := io.ReadAll(r.Body)
			gotBody = string(payload)
			return jsonResponse(201, `{
				"id": "newpl",
				"name": "Mixed playlist 2026-08-25",
				"public": false,
				"external_urls": {"spotify": "https://open.spotify.com/playlist/newpl"}
			}`), nil
		}))

		pl, err := srv.CreatePlaylist(context.Background(), "user123", "Mixed playlist 2026-08-25", false)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if pl.ID != "newpl" || pl.Public {
			t.Errorf("unexpected playlist: %+v", pl)
		}
		if pl.URL != "https://open.spotify.com/playlist/newpl" {
			t.Errorf("expected external URL to be mapped, got %s", pl.URL)
		}
		if !strings.Contains(gotURL, "/users/user123/playlists") {
			t.Errorf("unexpected request URL: %s", gotURL)
		}
		if !strings.Contains(gotBody, `"public":false`) {
			t.Errorf("expected private playlist in body, got %s", gotBody)
		}
	})

	t.Run("AddTracks", func(t *testing.T) {
		t.Run("Rejects Empty Batch", func(t *testing.T) {
			srv := authenticatedService(t, tu.RoundTripFunc(func(r *http.Request) (*http.Response, error) {
				t.Error("no request expected")
				return nil, nil
			}))

			err := srv.AddTracks(context.Background(), "pl1", nil)
			if !errors.Is(err, shared.ErrInvalidArgument) {
				t.Errorf("expected ErrInvalidArgument, got %v", err)
			}
		})

		t.Run("Rejects Oversized Batch", func(t *testing.T) {
			srv := authenticatedService(t, tu.RoundTripFunc(func(r *http.Request) (*http.Response, error) {
				t.Error("no request expected")
				return nil, nil
			}))

			uris := make([]string, MaxTracksPerAdd+1)
			for i := range uris {
				uris[i] = "spotify:track:x"
			}

			err := srv.AddTracks(context.Background(), "pl1", uris)
			if !errors.Is(err, shared.ErrInvalidArgument) {
				t.Errorf("expected ErrInvalidArgument, got %v", err)
			}
		})

		t.Run("Posts URIs", func(t *testing.T) {
			var gotURL, gotBody string
			srv := authenticatedService(t, tu.RoundTripFunc(func(r *http.Request) (*http.Response, error) {
				gotURL = r.URL.String()
				payload, _ := io.ReadAll(r.Body)
				gotBody = string(payload)
				return jsonResponse(201, `{"snapshot_id": "snap"}`), nil
			}))

			err := srv.AddTracks(context.Background(), "pl1", []string{"spotify:track:1", "spotify:track:2"})
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if !strings.Contains(gotURL, "/playlists/pl1/tracks") {
				t.Errorf("unexpected request URL: %s", gotURL)
			}
			if !strings.Contains(gotBody, `"uris":["spotify:track:1","spotify:track:2"]`) {
				t.Errorf("unexpected body: %s", gotBody)
			}
		})
	})

	t.Run("UnfollowPlaylist", func(t *testing.T) {
		var gotMethod, gotURL string
		srv := authenticatedService(t, tu.RoundTripFunc(func(r *http.Request) (*http.Response, error) {
			gotMethod = r.Method
			gotURL = r.URL.String()
			return jsonResponse(200, ``), nil
		}))

		if err := srv.UnfollowPlaylist(context.Background(), "pl1"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if gotMethod != http.MethodDelete {
			t.Errorf("expected DELETE, got %s", gotMethod)
		}
		if !strings.Contains(gotURL, "/playlists/pl1/followers") {
			t.Errorf("unexpected request URL: %s", gotURL)
		}
	})
}
