package shared

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/oauth2"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Server.Port != 3000 {
			t.Errorf("expected server port 3000, got %d", config.Server.Port)
		}

		if config.Server.Host != "127.0.0.1" {
			t.Errorf("expected server host 127.0.0.1, got %s", config.Server.Host)
		}

		if config.Credentials.Spotify.ClientID != "your_spotify_client_id" {
			t.Errorf("expected spotify client_id your_spotify_client_id, got %s", config.Credentials.Spotify.ClientID)
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			t.Fatal("expected config file to exist")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("expected error when config file already exists")
		}
	})

	t.Run("SaveConfig and LoadConfig roundtrip", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		config := DefaultConfig()
		config.Credentials.Spotify.ClientID = "roundtrip_id"
		config.Credentials.Spotify.AccessToken = "roundtrip_token"

		if err := SaveConfig(configPath, config); err != nil {
			t.Fatalf("failed to save config: %v", err)
		}

		loaded, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if loaded.Credentials.Spotify.ClientID != "roundtrip_id" {
			t.Errorf("expected client_id roundtrip_id, got %s", loaded.Credentials.Spotify.ClientID)
		}
		if loaded.Credentials.Spotify.AccessToken != "roundtrip_token" {
			t.Errorf("expected access token roundtrip_token, got %s", loaded.Credentials.Spotify.AccessToken)
		}
	})

	t.Run("SaveConfig with nil config", func(t *testing.T) {
		if err := SaveConfig("/tmp/unused.toml", nil); err == nil {
			t.Error("expected error for nil config")
		}
	})

	t.Run("LoadConfig with missing file", func(t *testing.T) {
		if _, err := LoadConfig("/nonexistent/config.toml"); err == nil {
			t.Error("expected error for missing file")
		}
	})
}

func TestSpotifyConfig(t *testing.T) {
	t.Run("Map", func(t *testing.T) {
		sc := SpotifyConfig{
			ClientID:     "id",
			ClientSecret: "secret",
			RedirectURI:  "http://localhost/callback",
		}

		m := sc.Map()
		if m["client_id"] != "id" || m["client_secret"] != "secret" || m["redirect_uri"] != "http://localhost/callback" {
			t.Errorf("unexpected credential map: %v", m)
		}
	})

	t.Run("Token", func(t *testing.T) {
		sc := SpotifyConfig{}
		if sc.Token() != nil {
			t.Error("expected nil token when no access token stored")
		}

		sc.AccessToken = "access"
		sc.RefreshToken = "refresh"
		tok := sc.Token()
		if tok == nil {
			t.Fatal("expected token")
		}
		if tok.AccessToken != "access" || tok.RefreshToken != "refresh" {
			t.Errorf("unexpected token values: %+v", tok)
		}
	})

	t.Run("Update", func(t *testing.T) {
		sc := SpotifyConfig{RefreshToken: "old_refresh"}

		if err := sc.Update(nil); err == nil {
			t.Error("expected error for nil token")
		}

		if err := sc.Update(&oauth2.Token{AccessToken: "new_access"}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if sc.AccessToken != "new_access" {
			t.Errorf("expected access token to update, got %s", sc.AccessToken)
		}
		if sc.RefreshToken != "old_refresh" {
			t.Error("expected empty refresh token to preserve previous value")
		}

		if err := sc.Update(&oauth2.Token{AccessToken: "a2", RefreshToken: "r2"}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if sc.RefreshToken != "r2" {
			t.Errorf("expected refresh token r2, got %s", sc.RefreshToken)
		}
	})
}

func TestApplyEnv(t *testing.T) {
	config := DefaultConfig()

	t.Setenv("SPOTIFY_CLIENT_ID", "env_id")
	t.Setenv("SPOTIFY_CLIENT_SECRET", "env_secret")

	config.ApplyEnv()

	if config.Credentials.Spotify.ClientID != "env_id" {
		t.Errorf("expected env override for client_id, got %s", config.Credentials.Spotify.ClientID)
	}
	if config.Credentials.Spotify.ClientSecret != "env_secret" {
		t.Errorf("expected env override for client_secret, got %s", config.Credentials.Spotify.ClientSecret)
	}
	if config.Credentials.Spotify.RedirectURI != "http://127.0.0.1:3000/callback" {
		t.Errorf("expected redirect_uri to keep default, got %s", config.Credentials.Spotify.RedirectURI)
	}
}
