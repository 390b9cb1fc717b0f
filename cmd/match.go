package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/likesync/internal/matching"
	"github.com/desertthunder/likesync/internal/models"
	"github.com/desertthunder/likesync/internal/shared"
	"github.com/desertthunder/likesync/internal/ui"
	"github.com/urfave/cli/v3"
)

// Match classifies a single song against the catalog without touching
// any playlist.
func (r *Runner) Match(ctx context.Context, cmd *cli.Command) error {
	artist := cmd.StringArg("artist")
	title := cmd.StringArg("title")
	useJSON := cmd.Bool("json")

	if artist == "" || title == "" {
		return fmt.Errorf("%w: artist and title are required", shared.ErrMissingArgument)
	}
	if r.catalog == nil {
		return fmt.Errorf("%w: catalog service not initialized", shared.ErrServiceUnavailable)
	}

	r.logger.Info("matching song", "artist", artist, "title", title)

	if err := r.catalog.Authenticate(ctx, r.catalogCredentials()); err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}

	song := models.Song{Artist: artist, Title: title}
	matcher := matching.NewSongMatcher(r.config.Sync.Threshold)

	result, err := matcher.Match(ctx, song, r.catalog)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if useJSON {
		return r.writeJSON(map[string]any{
			"artist":    artist,
			"title":     title,
			"status":    result.Status.String(),
			"candidate": result.Candidate,
		}, true)
	}

	r.writePlain("%s %s - %s\n", ui.RenderStatus(result.Status), artist, title)
	if result.Candidate != nil {
		r.writePlain("   → %s - %s [%s]\n", result.Candidate.Artist, result.Candidate.Title, result.Candidate.TrackID)
	}
	r.writePlain("Status: %s\n", result.Status)

	return nil
}
