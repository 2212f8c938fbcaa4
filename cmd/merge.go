package main

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	"mixtape/internal/shared"
	"mixtape/internal/tasks"
)

// Merge builds a new private playlist from two sources, alternating
// tracks from each. Retries once after reauthorization if the stored
// token has expired.
func (r *Runner) Merge(ctx context.Context, cmd *cli.Command) error {
	if r.spotify == nil {
		return fmt.Errorf("%w: Spotify service not configured, run 'mixtape auth' first", shared.ErrServiceUnavailable)
	}

	name := cmd.String("name")
	if name == "" {
		name = tasks.DefaultMergeName(time.Now())
	}

	opts := tasks.MergeOpts{
		Source1:        cmd.String("src1"),
		Source2:        cmd.String("src2"),
		Name:           name,
		PerSourceLimit: cmd.Int("per-src-limit"),
		ReverseSecond:  cmd.Bool("reverse"),
		KeepPartial:    cmd.Bool("keep-partial"),
	}

	r.logger.Infof("merging playlists %v and %v into %q", opts.Source1, opts.Source2, opts.Name)

	result, err := r.engine.Merge(ctx, opts)
	if err != nil {
		reauthed, authErr := r.handleAuthError(ctx, err, cmd)
		if !reauthed {
			return err
		}
		if authErr != nil {
			return authErr
		}

		if result, err = r.engine.Merge(ctx, opts); err != nil {
			return err
		}
	}

	if cmd.Bool("json") {
		return r.writeJSON(result, cmd.Bool("pretty"))
	}

	r.writePlain("✓ Created playlist %q with %d tracks\n", result.Playlist.Name, result.TrackCount)
	r.writePlain("  ID: %s\n", result.Playlist.ID)
	if result.Playlist.URL != "" {
		r.writePlain("  URL: %s\n", result.Playlist.URL)
	}

	return nil
}
