package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"mixtape/internal/formatter"
	"mixtape/internal/shared"
)

// Titles prints one "name - artist" line per playable track in a
// playlist, or the same data as CSV or JSON.
func (r *Runner) Titles(ctx context.Context, cmd *cli.Command) error {
	if r.spotify == nil {
		return fmt.Errorf("%w: Spotify service not configured, run 'mixtape auth' first", shared.ErrServiceUnavailable)
	}

	playlistID := cmd.String("playlist")
	format := cmd.String("format")
	outputFile := cmd.String("output")

	r.logger.Infof("reading titles for playlist %v", playlistID)

	titles, err := r.engine.Titles(ctx, playlistID)
	if err != nil {
		reauthed, authErr := r.handleAuthError(ctx, err, cmd)
		if !reauthed {
			return err
		}
		if authErr != nil {
			return authErr
		}

		if titles, err = r.engine.Titles(ctx, playlistID); err != nil {
			return err
		}
	}

	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()

		if err := formatter.WriteTitles(f, titles, format); err != nil {
			return err
		}

		r.logger.Infof("wrote %v titles to %v", len(titles), outputFile)
		return nil
	}

	return formatter.WriteTitles(r.output, titles, format)
}
