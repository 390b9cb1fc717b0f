// package services defines the collaborator interfaces for the two
// streaming services involved in a sync
package services

import (
	"context"

	"github.com/desertthunder/likesync/internal/models"
)

// Bookmarked is the station-group key for likes recorded without a
// station (bookmarked tracks). They contribute only to the master
// playlist.
const Bookmarked = ""

// LikesProvider is the source service: an authenticated web session the
// liked-track history is scraped from.
type LikesProvider interface {
	// Authenticate establishes the scraping session. Returns an error
	// wrapping shared.ErrAuthFailed when credentials are rejected.
	Authenticate(ctx context.Context, credentials map[string]string) error

	// FetchLikes returns liked songs grouped by station name. The
	// [Bookmarked] key holds likes without a station. Order within a
	// group follows the order the service reports; there is no
	// ordering guarantee across groups.
	FetchLikes(ctx context.Context) (map[string][]models.Song, error)

	// FetchStationNames returns the set of stations that currently
	// exist. Stations deleted after likes were recorded are absent.
	FetchStationNames(ctx context.Context) (map[string]bool, error)

	// Name returns the name of the service (e.g. "Pandora")
	Name() string
}

// CatalogClient is the target service: catalog search plus playlist
// mutation. All calls are synchronous and may fail with a generic
// request error.
type CatalogClient interface {
	// Authenticate validates access to the target service. Returns an
	// error wrapping shared.ErrAuthFailed when rejected.
	Authenticate(ctx context.Context, credentials map[string]string) error

	// SearchCatalog searches the catalog, results ordered best-first.
	SearchCatalog(ctx context.Context, query string) ([]models.Candidate, error)

	// ListPlaylists returns the user's playlists with their entries,
	// including the membership id of each placement.
	ListPlaylists(ctx context.Context) ([]models.RemotePlaylist, error)

	// CreatePlaylist creates an empty playlist and returns its id.
	CreatePlaylist(ctx context.Context, name string) (string, error)

	// AddSongs adds catalog tracks to a playlist in one batched call.
	AddSongs(ctx context.Context, playlistID string, trackIDs []string) error

	// RemoveEntries removes playlist placements by membership id in one
	// batched call.
	RemoveEntries(ctx context.Context, entryIDs []string) error

	// Name returns the name of the service (e.g. "YouTube Music")
	Name() string
}
