package main

import (
	"github.com/urfave/cli/v3"

	"mixtape/internal/tasks"
)

func configFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   "config.toml",
	}
}

func initCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "init",
		Usage:  "Write an example configuration file",
		Flags:  []cli.Flag{configFlag()},
		Action: r.Init,
	}
}

func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "auth",
		Usage:  "Authenticate with Spotify using OAuth2",
		Flags:  []cli.Flag{configFlag()},
		Action: r.Auth,
	}
}

func mergeCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "merge",
		Usage: "Merge two playlists into a new private playlist, alternating tracks",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "src1",
				Usage:    "First source playlist ID",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "src2",
				Usage:    "Second source playlist ID",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "name",
				Usage: "Name for the new playlist (default: \"Mixed playlist <date>\")",
			},
			&cli.IntFlag{
				Name:  "per-src-limit",
				Usage: "Maximum number of tracks taken from each source (negative for no limit)",
				Value: tasks.DefaultPerSourceLimit,
			},
			&cli.BoolFlag{
				Name:  "reverse",
				Usage: "Take tracks from the second source in reverse order",
			},
			&cli.BoolFlag{
				Name:  "keep-partial",
				Usage: "Keep the new playlist even if some tracks fail to add",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Print the merge result as JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty print JSON output",
			},
			configFlag(),
		},
		Action: r.Merge,
	}
}

func titlesCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "titles",
		Usage: "Print the track titles and primary artist of a playlist",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "playlist",
				Usage:    "Playlist ID to read",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "Output format: text, csv, or json",
				Value: "text",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Write to a file instead of stdout",
			},
			configFlag(),
		},
		Action: r.Titles,
	}
}
