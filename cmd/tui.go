package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/likesync/internal/repositories"
	"github.com/desertthunder/likesync/internal/shared"
	"github.com/desertthunder/likesync/internal/tasks"
	"github.com/desertthunder/likesync/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive station-selection sync.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	if r.source == nil {
		return fmt.Errorf("%w: Pandora service not initialized", shared.ErrServiceUnavailable)
	}
	if r.catalog == nil {
		return fmt.Errorf("%w: catalog service not initialized", shared.ErrServiceUnavailable)
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger("./tmp/likesync-tui.log")
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	var cache tasks.MatchCache
	if r.config.Sync.CacheEnabled {
		if db, err := r.openDatabase(); err != nil {
			r.logger.Warn("database unavailable, continuing without cache", "error", err)
		} else {
			defer db.Close()
			cache = repositories.NewMatchCacheAdapter(repositories.NewMatchRepository(db))
		}
	}

	engine := r.newEngine(r.config.Sync.Master, cache)
	runOpts := tasks.RunOptions{
		SourceCredentials:  r.sourceCredentials(),
		CatalogCredentials: r.catalogCredentials(),
		DryRun:             cmd.Bool("dry-run"),
	}

	model := ui.NewModel(ctx, r.source, engine, runOpts)
	p := tea.NewProgram(model)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}

func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "tui",
		Usage: "Interactive station selection and sync",
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
		},
		Action: r.TUI,
	}
}
