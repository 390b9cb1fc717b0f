package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/likesync/internal/formatter"
	"github.com/desertthunder/likesync/internal/repositories"
	"github.com/urfave/cli/v3"
)

// CacheStats reports how many good matches are cached.
func (r *Runner) CacheStats(ctx context.Context, cmd *cli.Command) error {
	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	matches := repositories.NewMatchRepository(db)
	count, err := matches.Count()
	if err != nil {
		return fmt.Errorf("failed to count cached matches: %w", err)
	}

	r.writePlain("Cached matches: %d\n", count)
	if !r.config.Sync.CacheEnabled {
		r.writePlain("Note: caching is disabled in config (sync.cache_enabled)\n")
	}

	return nil
}

// CacheClear removes all cached matches.
func (r *Runner) CacheClear(ctx context.Context, cmd *cli.Command) error {
	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	matches := repositories.NewMatchRepository(db)
	removed, err := matches.Clear()
	if err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}

	r.logger.Info("cache cleared", "removed", removed)
	r.writePlain("✓ Removed %d cached matches\n", removed)

	return nil
}

// CacheExport writes the cached matches to a CSV file.
func (r *Runner) CacheExport(ctx context.Context, cmd *cli.Command) error {
	outputPath := cmd.String("output")

	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	matches, err := repositories.NewMatchRepository(db).List(nil)
	if err != nil {
		return fmt.Errorf("failed to list cached matches: %w", err)
	}

	path, err := formatter.WriteMatchesExport(matches, outputPath)
	if err != nil {
		return fmt.Errorf("failed to export matches: %w", err)
	}

	r.writePlain("✓ Exported %d matches to %s\n", len(matches), path)

	return nil
}

// cacheCommand handles the persisted match cache
func cacheCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "cache",
		Usage: "Inspect and manage the match cache",
		Commands: []*cli.Command{
			{
				Name:  "stats",
				Usage: "Show match cache statistics",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.CacheStats,
			},
			{
				Name:  "clear",
				Usage: "Remove all cached matches",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.CacheClear,
			},
			{
				Name:  "export",
				Usage: "Export cached matches to CSV",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path",
					},
				},
				Action: r.CacheExport,
			},
		},
	}
}
