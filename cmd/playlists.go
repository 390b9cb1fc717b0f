package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/likesync/internal/shared"
	"github.com/urfave/cli/v3"
)

// Playlists fetches and displays the remote playlist library.
func (r *Runner) Playlists(ctx context.Context, cmd *cli.Command) error {
	useJSON := cmd.Bool("json")

	if r.catalog == nil {
		return fmt.Errorf("%w: catalog service not initialized", shared.ErrServiceUnavailable)
	}

	r.logger.Info("fetching playlists")

	if err := r.catalog.Authenticate(ctx, r.catalogCredentials()); err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}

	playlists, err := r.catalog.ListPlaylists(ctx)
	if err != nil {
		return fmt.Errorf("failed to list playlists: %w", err)
	}

	if useJSON {
		return r.writeJSON(playlists, true)
	}

	r.writePlain("%d playlists:\n", len(playlists))
	for _, playlist := range playlists {
		r.writePlain("  %s (%d tracks) [%s]\n", playlist.Name, len(playlist.Entries), playlist.ID)
	}

	return nil
}
