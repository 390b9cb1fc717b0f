package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/likesync/internal/repositories"
	"github.com/desertthunder/likesync/internal/shared"
	"github.com/urfave/cli/v3"
)

// History lists recorded sync runs, newest first.
func (r *Runner) History(ctx context.Context, cmd *cli.Command) error {
	limit := cmd.Int("limit")
	useJSON := cmd.Bool("json")

	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	runs, err := repositories.NewRunRepository(db).List(map[string]any{"limit": int(limit)})
	if err != nil {
		return fmt.Errorf("failed to list sync runs: %w", err)
	}

	if useJSON {
		rows := make([]map[string]any, 0, len(runs))
		for _, run := range runs {
			rows = append(rows, map[string]any{
				"id":          run.ID(),
				"master":      run.Master(),
				"likes":       run.LikeCount(),
				"matched":     run.Matched(),
				"added":       run.Added(),
				"removed":     run.Removed(),
				"playlists":   run.Playlists(),
				"failures":    run.Failures(),
				"dry_run":     run.DryRun(),
				"started_at":  run.StartedAt(),
				"finished_at": run.FinishedAt(),
			})
		}
		return r.writeJSON(rows, true)
	}

	if len(runs) == 0 {
		r.writePlain("No sync runs recorded yet. Run 'likesync sync' first.\n")
		return nil
	}

	r.writePlain("%d sync runs:\n", len(runs))
	for _, run := range runs {
		marker := ""
		if run.DryRun() {
			marker = " (dry run)"
		}
		duration := shared.FormatDuration(run.FinishedAt().Sub(run.StartedAt()))
		r.writePlain("  %s  %s%s\n", run.StartedAt().Format("2006-01-02 15:04"), run.Master(), marker)
		r.writePlain("      likes %d, matched %d, +%d -%d across %d playlists, %d failures, %s\n",
			run.LikeCount(), run.Matched(), run.Added(), run.Removed(), run.Playlists(), run.Failures(), duration)
	}

	return nil
}
