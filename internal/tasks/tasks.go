package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"mixtape/internal/models"
	"mixtape/internal/services"
	"mixtape/internal/shared"
)

const (
	// Field selectors keep tracks responses down to what each operation reads.
	trackURIFields   = "items.track.uri,next"
	trackTitleFields = "items(track(name,artists(name))),next"

	// Spotify caps playlist writes at 100 URIs per request.
	addBatchSize = 100

	// DefaultPerSourceLimit bounds how many tracks a merge takes from each source.
	DefaultPerSourceLimit = 100

	// UnknownArtist is printed for tracks with no credited artist.
	UnknownArtist = "Unknown Artist"
)

// CollectTrackRefs walks a playlist's pages and returns its track URIs in
// playlist order.
//
// Slots without an attached track are skipped and do not count toward
// limit. A limit > 0 stops collection at exactly that many URIs, even
// mid-page; limit <= 0 collects the entire playlist.
func CollectTrackRefs(ctx context.Context, svc services.Service, playlistID string, limit int) ([]string, error) {
	if svc == nil {
		return nil, fmt.Errorf("%w: service not initialized", shared.ErrServiceUnavailable)
	}

	var uris []string
	pageURL := ""

	for {
		page, err := svc.PlaylistTracks(ctx, playlistID, trackURIFields, pageURL)
		if err != nil {
			return nil, err
		}

		for _, item := range page.Items {
			if item.Track == nil {
				continue
			}
			uris = append(uris, item.Track.URI)
			if limit > 0 && len(uris) >= limit {
				return uris, nil
			}
		}

		if page.Next == nil {
			return uris, nil
		}
		pageURL = *page.Next
	}
}

// Interleave merges two sequences positionally: a[0], b[0], a[1], b[1],
// continuing with the remainder of whichever sequence is longer.
func Interleave(a, b []string) []string {
	merged := make([]string, 0, len(a)+len(b))
	for i := 0; i < len(a) || i < len(b); i++ {
		if i < len(a) {
			merged = append(merged, a[i])
		}
		if i < len(b) {
			merged = append(merged, b[i])
		}
	}
	return merged
}

// Reversed returns a reversed copy of refs.
func Reversed(refs []string) []string {
	out := make([]string, len(refs))
	for i, ref := range refs {
		out[len(refs)-1-i] = ref
	}
	return out
}

// DefaultMergeName is the playlist name used when none is given.
func DefaultMergeName(now time.Time) string {
	return fmt.Sprintf("Mixed playlist %s", now.Format("2006-01-02"))
}

// MergeOpts configures a merge operation.
type MergeOpts struct {
	Source1 string // First source playlist ID
	Source2 string // Second source playlist ID
	Name    string // Name for the created playlist

	// PerSourceLimit bounds tracks taken from each source. Zero uses
	// DefaultPerSourceLimit; a negative value removes the bound.
	PerSourceLimit int

	// ReverseSecond takes the second source back-to-front before
	// interleaving. Off by default.
	ReverseSecond bool

	// KeepPartial leaves the created playlist in place when a batch
	// write fails partway, instead of unfollowing it.
	KeepPartial bool
}

// MergeResult reports a completed merge.
type MergeResult struct {
	Playlist   models.Playlist `json:"playlist"`    // The created destination playlist
	TrackCount int             `json:"track_count"` // Total track URIs written
	Batches    int             `json:"batches"`     // Number of write calls issued
}

// MixEngine implements the playlist operations with an injected service.
type MixEngine struct {
	svc    services.Service
	logger *log.Logger
}

// NewMixEngine creates a MixEngine for the given service.
func NewMixEngine(svc services.Service, logger *log.Logger) *MixEngine {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &MixEngine{svc: svc, logger: logger}
}

// Merge interleaves two source playlists into a newly created private
// playlist owned by the acting user.
//
// Tracks are written in sequential batches of at most 100 URIs. If a
// batch write fails the created playlist is unfollowed (best effort)
// unless opts.KeepPartial is set; the write error is returned either way.
func (e *MixEngine) Merge(ctx context.Context, opts MergeOpts) (*MergeResult, error) {
	if e.svc == nil {
		return nil, fmt.Errorf("%w: service not initialized", shared.ErrServiceUnavailable)
	}

	limit := opts.PerSourceLimit
	if limit == 0 {
		limit = DefaultPerSourceLimit
	}
	if limit < 0 {
		limit = 0
	}

	user, err := e.svc.CurrentUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve current user: %w", err)
	}

	e.logger.Debug("collecting source tracks", "src1", opts.Source1, "src2", opts.Source2, "limit", limit)

	tracks1, err := CollectTrackRefs(ctx, e.svc, opts.Source1, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to collect tracks from %s: %w", opts.Source1, err)
	}

	tracks2, err := CollectTrackRefs(ctx, e.svc, opts.Source2, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to collect tracks from %s: %w", opts.Source2, err)
	}

	if opts.ReverseSecond {
		tracks2 = Reversed(tracks2)
	}

	merged := Interleave(tracks1, tracks2)

	playlist, err := e.svc.CreatePlaylist(ctx, user.ID, opts.Name, false)
	if err != nil {
		return nil, fmt.Errorf("failed to create playlist: %w", err)
	}

	batches := 0
	for start := 0; start < len(merged); start += addBatchSize {
		end := min(start+addBatchSize, len(merged))
		if err := e.svc.AddTracks(ctx, playlist.ID, merged[start:end]); err != nil {
			if !opts.KeepPartial {
				if cleanupErr := e.svc.UnfollowPlaylist(ctx, playlist.ID); cleanupErr != nil {
					e.logger.Warn("failed to remove partially written playlist", "playlist", playlist.ID, "error", cleanupErr)
				}
			}
			return nil, fmt.Errorf("failed to add tracks %d-%d: %w", start, end-1, err)
		}
		batches++
	}

	e.logger.Info("merge complete", "playlist", playlist.ID, "tracks", len(merged), "batches", batches)

	return &MergeResult{
		Playlist:   *playlist,
		TrackCount: len(merged),
		Batches:    batches,
	}, nil
}

// Titles collects every track's name and primary artist across all pages
// of a playlist.
//
// Slots without an attached track are skipped. Tracks with no credited
// artist get the [UnknownArtist] placeholder.
func (e *MixEngine) Titles(ctx context.Context, playlistID string) ([]models.TrackTitle, error) {
	if e.svc == nil {
		return nil, fmt.Errorf("%w: service not initialized", shared.ErrServiceUnavailable)
	}

	var titles []models.TrackTitle
	pageURL := ""

	for {
		page, err := e.svc.PlaylistTracks(ctx, playlistID, trackTitleFields, pageURL)
		if err != nil {
			return nil, err
		}

		for _, item := range page.Items {
			if item.Track == nil {
				continue
			}

			artist := UnknownArtist
			if len(item.Track.Artists) > 0 {
				artist = item.Track.Artists[0].Name
			}

			titles = append(titles, models.TrackTitle{
				Name:   item.Track.Name,
				Artist: artist,
			})
		}

		if page.Next == nil {
			return titles, nil
		}
		pageURL = *page.Next
	}
}
