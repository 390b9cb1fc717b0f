package main

import (
	"context"
	"fmt"
	"time"

	"github.com/desertthunder/likesync/internal/formatter"
	"github.com/desertthunder/likesync/internal/models"
	"github.com/desertthunder/likesync/internal/repositories"
	"github.com/desertthunder/likesync/internal/shared"
	"github.com/desertthunder/likesync/internal/tasks"
	"github.com/urfave/cli/v3"
)

// Sync runs a full Pandora → YouTube Music likes sync.
func (r *Runner) Sync(ctx context.Context, cmd *cli.Command) error {
	dryRun := cmd.Bool("dry-run")
	save := cmd.Bool("save")
	stations := cmd.StringSlice("station")
	master := cmd.String("master")
	if master == "" {
		master = r.config.Sync.Master
	}

	r.logger.Info("starting sync", "master", master, "dry_run", dryRun)
	r.writePlain("Starting likes sync...\n")
	r.writePlain("Master playlist: %s\n", master)
	if dryRun {
		r.writePlain("Dry run: no playlists will be modified\n")
	}
	r.writePlain("\n")

	// The database backs both the match cache and run history; a sync
	// still works without it.
	var cache tasks.MatchCache
	var runs *repositories.RunRepository
	if db, err := r.openDatabase(); err != nil {
		r.logger.Warn("database unavailable, continuing without cache or history", "error", err)
	} else {
		defer db.Close()
		if r.config.Sync.CacheEnabled {
			cache = repositories.NewMatchCacheAdapter(repositories.NewMatchRepository(db))
		}
		runs = repositories.NewRunRepository(db)
	}

	engine := r.newEngine(master, cache)

	// Create progress channel and goroutine to handle updates
	progressCh := make(chan tasks.ProgressUpdate, 50)
	progressDone := make(chan struct{})
	go func() {
		defer close(progressDone)
		for update := range progressCh {
			switch update.Phase {
			case tasks.FetchLikes:
				r.writePlain("📥 %s\n", update.Message)
			case tasks.FetchStations:
				r.writePlain("📥 %s\n", update.Message)
			case tasks.MatchSongs:
				if update.Step == 0 {
					r.writePlain("\n🔍 %s\n", update.Message)
				} else {
					r.writePlain("   %s\n", update.Message)
				}
			case tasks.FetchPlaylists:
				r.writePlain("\n📝 %s\n", update.Message)
			case tasks.ApplyPlaylist:
				r.writePlain("   %s\n", update.Message)
			}
		}
	}()

	opts := tasks.RunOptions{
		SourceCredentials:  r.sourceCredentials(),
		CatalogCredentials: r.catalogCredentials(),
		DryRun:             dryRun,
		Stations:           stations,
	}

	report, err := engine.Run(ctx, opts, progressCh)
	close(progressCh)
	// Drain buffered updates before the summary so lines do not interleave.
	<-progressDone

	if err != nil {
		return err
	}

	// Output summary
	title := "Sync Complete!"
	if report.DryRun {
		title = "Dry Run Complete!"
	}
	r.writePlain("\n")
	r.writePlainHeader(title)
	r.writePlain("Likes processed: %d\n", report.LikeCount)
	r.writePlain("Matched: %d\n", report.MatchedCount)
	r.writePlain("Probable spam: %d\n", report.SpamCount)
	r.writePlain("No match: %d\n", report.MissCount)
	if report.FailedSongs > 0 {
		r.writePlain("Search failures: %d\n", report.FailedSongs)
	}
	r.writePlain("Playlists: %d (+%d -%d)\n", len(report.Playlists), report.Added, report.Removed)
	r.writePlain("Duration: %s\n", shared.FormatDuration(report.Duration()))

	if len(report.Failures) > 0 {
		r.writePlain("\n%d playlists failed:\n", len(report.Failures))
		for _, failure := range report.Failures {
			r.writePlain("  - %s: %v\n", failure.Playlist, failure.Err)
		}
	}

	if runs != nil {
		run := models.NewSyncRun(*report)
		if err := runs.Create(run); err != nil {
			r.logger.Warn("failed to record sync run", "error", err)
		} else {
			r.logger.Info("sync run recorded", "id", run.ID())
		}
	}

	if save {
		base := fmt.Sprintf("sync_%s", time.Now().Format("20060102_150405"))
		result, err := formatter.WriteReportExport(report, base)
		if err != nil {
			return fmt.Errorf("failed to export report: %w", err)
		}
		r.writePlain("\nReport saved to: %s\n", result.ReportFile)
		r.writePlain("Summary saved to: %s\n", result.SummaryFile)
	}

	return nil
}

func syncCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "sync",
		Usage: "Sync liked songs into the master and per-station playlists",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Compute playlist changes without applying them",
			},
			&cli.StringFlag{
				Name:  "master",
				Usage: "Override the master playlist name",
			},
			&cli.StringSliceFlag{
				Name:  "station",
				Usage: "Limit the run to these stations (repeatable)",
			},
			&cli.BoolFlag{
				Name:  "save",
				Usage: "Export the report as Markdown and JSON",
			},
		},
		Action: r.Sync,
	}
}
