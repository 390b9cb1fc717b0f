package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/desertthunder/likesync/internal/services"
	"github.com/desertthunder/likesync/internal/shared"
	"github.com/urfave/cli/v3"
)

// PandoraLikes fetches and displays liked songs grouped by station.
func (r *Runner) PandoraLikes(ctx context.Context, cmd *cli.Command) error {
	useJSON := cmd.Bool("json")

	if r.source == nil {
		return fmt.Errorf("%w: Pandora service not initialized", shared.ErrServiceUnavailable)
	}

	r.logger.Info("fetching liked songs")

	if err := r.source.Authenticate(ctx, r.sourceCredentials()); err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}

	likes, err := r.source.FetchLikes(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch likes: %w", err)
	}

	if useJSON {
		return r.writeJSON(likes, true)
	}

	stations := make([]string, 0, len(likes))
	total := 0
	for station, songs := range likes {
		stations = append(stations, station)
		total += len(songs)
	}
	sort.Strings(stations)

	for _, station := range stations {
		name := station
		if station == services.Bookmarked {
			name = "Bookmarked Tracks"
		}
		r.writePlain("\n%s (%d)\n", name, len(likes[station]))
		for _, song := range likes[station] {
			r.writePlain("  %s - %s\n", song.Artist, song.Title)
		}
	}
	r.writePlainln("Total: %d liked songs across %d groups", total, len(stations))

	return nil
}

// PandoraStations fetches and displays the live station list.
func (r *Runner) PandoraStations(ctx context.Context, cmd *cli.Command) error {
	useJSON := cmd.Bool("json")

	if r.source == nil {
		return fmt.Errorf("%w: Pandora service not initialized", shared.ErrServiceUnavailable)
	}

	r.logger.Info("fetching stations")

	if err := r.source.Authenticate(ctx, r.sourceCredentials()); err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}

	stationSet, err := r.source.FetchStationNames(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch stations: %w", err)
	}

	stations := make([]string, 0, len(stationSet))
	for name := range stationSet {
		stations = append(stations, name)
	}
	sort.Strings(stations)

	if useJSON {
		return r.writeJSON(stations, true)
	}

	r.writePlain("%d stations:\n", len(stations))
	for i, name := range stations {
		r.writePlain("  %d. %s\n", i+1, name)
	}

	return nil
}
