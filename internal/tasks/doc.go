// Package tasks implements the playlist operations behind the CLI.
//
// # Core Operations
//
// [CollectTrackRefs] walks a playlist's cursor-paged track listing and
// flattens it into an ordered slice of track URIs, optionally bounded.
//
// [MixEngine] holds the injected [services.Service] and implements:
//
//  1. [MixEngine.Merge] : interleave two source playlists into a newly
//     created private playlist, writing in batches of at most 100 URIs.
//  2. [MixEngine.Titles] : collect every track's name and primary artist
//     across all pages of a playlist.
//
// # Failure Semantics
//
// Collaborator errors propagate unmodified; there is no retry. A merge
// whose batch write fails unfollows the playlist it just created unless
// [MergeOpts.KeepPartial] is set, so a half-written playlist is not left
// behind silently.
package tasks
