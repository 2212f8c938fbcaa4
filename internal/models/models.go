// package models defines the data model shared across the playlist tooling layers
package models

// Artist is a single credited artist on a track.
type Artist struct {
	Name string `json:"name"`
}

// Track is one playable track as returned by the Spotify Web API.
//
// URI is the opaque, stable identifier used for playlist writes.
type Track struct {
	URI     string   `json:"uri"`
	Name    string   `json:"name"`
	Artists []Artist `json:"artists"`
}

// PlaylistItem is a single playlist slot.
//
// Track is nil when the slot's track has been removed or is unavailable
// in the requesting market; such slots carry no usable reference.
type PlaylistItem struct {
	Track *Track `json:"track"`
}

// TrackPage is one page of playlist items.
//
// Next holds the absolute URL of the following page; nil signals the
// final page.
type TrackPage struct {
	Items []PlaylistItem `json:"items"`
	Next  *string        `json:"next"`
}

// Playlist represents a Spotify playlist.
type Playlist struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Public bool   `json:"public"`
	URL    string `json:"url,omitempty"`
}

// User is the acting Spotify account.
type User struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

// TrackTitle is a single row of the titles view.
type TrackTitle struct {
	Name   string `json:"name"`
	Artist string `json:"artist"`
}
