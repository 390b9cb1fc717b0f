package tasks

import (
	"fmt"

	"github.com/desertthunder/likesync/internal/models"
)

// ProgressUpdate represents a progress event during a long-running operation.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data for advanced UIs
}

// Operation phase enumeration
type Phase int

const (
	FetchLikes Phase = iota
	FetchStations
	MatchSongs
	FetchPlaylists
	ApplyPlaylist
)

func (p Phase) String() string {
	switch p {
	case FetchLikes:
		return "fetch_likes"
	case FetchStations:
		return "fetch_stations"
	case MatchSongs:
		return "match_songs"
	case FetchPlaylists:
		return "fetch_playlists"
	case ApplyPlaylist:
		return "apply_playlist"
	default:
		return ""
	}
}

func fetchLikesUpdate(name string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchLikes,
		Step:    1,
		Total:   2,
		Message: fmt.Sprintf("Fetching liked songs from %s...", name),
	}
}

func fetchStationsUpdate(count int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchStations,
		Step:    2,
		Total:   2,
		Message: fmt.Sprintf("Fetching station list (%d likes found)...", count),
	}
}

func matchSongsUpdate(total int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   MatchSongs,
		Step:    0,
		Total:   total,
		Message: "Matching songs against the catalog...",
	}
}

func matchResultUpdate(step, total int, song models.Song, result models.MatchResult) ProgressUpdate {
	return ProgressUpdate{
		Phase:   MatchSongs,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] %s %s - %s", step, total, result.Status.Indicator(), song.Artist, song.Title),
		Data:    result,
	}
}

func matchFailedUpdate(step, total int, song models.Song, err error) ProgressUpdate {
	return ProgressUpdate{
		Phase:   MatchSongs,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] ✗ %s - %s: %v", step, total, song.Artist, song.Title, err),
	}
}

func fetchPlaylistsUpdate() ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchPlaylists,
		Step:    1,
		Total:   1,
		Message: "Fetching existing playlists from YouTube Music...",
	}
}

func applyPlaylistUpdate(step, total int, name string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ApplyPlaylist,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] Reconciling: %s...", step, total, name),
	}
}

func playlistDoneUpdate(step, total int, result models.ReconcileResult) ProgressUpdate {
	msg := fmt.Sprintf("[%d/%d] ✓ %s: up to date", step, total, result.Playlist)
	if result.Added > 0 || result.Removed > 0 || result.Created {
		msg = fmt.Sprintf("[%d/%d] ✓ %s: +%d -%d", step, total, result.Playlist, result.Added, result.Removed)
	}
	return ProgressUpdate{
		Phase:   ApplyPlaylist,
		Step:    step,
		Total:   total,
		Message: msg,
		Data:    result,
	}
}

func playlistFailedUpdate(step, total int, name string, err error) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ApplyPlaylist,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] ✗ %s: %v", step, total, name, err),
	}
}
