// package tasks implements the likes-to-playlist sync between music services.
//
// The core abstraction is SyncEngine, which maps liked songs to desired
// playlists, diffs them against remote state, and applies the minimal
// mutation set. Operations emit progress updates via channels for
// non-blocking status reporting to CLI/UI layers.
package tasks

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/desertthunder/likesync/internal/matching"
	"github.com/desertthunder/likesync/internal/models"
	"github.com/desertthunder/likesync/internal/services"
	"github.com/desertthunder/likesync/internal/shared"
)

// MatchCache persists good matches so repeat runs skip the catalog
// search for songs already resolved.
//
// This abstraction allows for easier testing and decoupling from the
// concrete sqlite implementation.
type MatchCache interface {
	// Get returns the cached candidate for a song, if one exists.
	Get(song models.Song) (*models.Candidate, bool)
	// Put stores a good match for a song.
	Put(song models.Song, candidate models.Candidate) error
}

// BuildResult contains the desired playlists and match statistics from
// mapping liked songs to the target catalog.
type BuildResult struct {
	Playlists    []DesiredPlaylist // Master first, then live stations in sorted order
	LikeCount    int               // Total liked songs processed
	MatchedCount int               // Songs with a good match
	SpamCount    int               // Songs classified as probable spam
	MissCount    int               // Songs with no candidate at all
	FailedSongs  int               // Songs skipped because search failed
}

// RunOptions configures a full sync run.
type RunOptions struct {
	SourceCredentials  map[string]string // Passed to the likes provider's Authenticate
	CatalogCredentials map[string]string // Passed to the catalog client's Authenticate
	DryRun             bool              // Compute plans without mutating anything
	Stations           []string          // Limit the run to these station groups (nil = all)
}

// SyncEngine defines the likes sync operation.
type SyncEngine interface {
	// Run performs a full sync: authenticate both services, fetch and
	// match likes, then reconcile every desired playlist.
	Run(ctx context.Context, opts RunOptions, progress chan<- ProgressUpdate) (*models.SyncReport, error)
}

// LikesEngine implements SyncEngine.
// Contains dependencies on the likes provider, catalog client, matcher, and cache.
type LikesEngine struct {
	source  services.LikesProvider
	catalog services.CatalogClient
	matcher *matching.SongMatcher
	cache   MatchCache
	master  string
}

// EngineOpts configures a LikesEngine. Matcher and Master fall back to
// defaults when zero; Cache may be nil to disable caching.
type EngineOpts struct {
	Source  services.LikesProvider
	Catalog services.CatalogClient
	Matcher *matching.SongMatcher
	Cache   MatchCache
	Master  string
}

// DefaultMasterPlaylist is the name of the playlist that receives every
// matched like regardless of station.
const DefaultMasterPlaylist = "Pandora"

// NewLikesEngine creates a new LikesEngine with the provided services.
func NewLikesEngine(opts EngineOpts) *LikesEngine {
	matcher := opts.Matcher
	if matcher == nil {
		matcher = matching.NewSongMatcher(matching.DefaultThreshold)
	}
	master := opts.Master
	if master == "" {
		master = DefaultMasterPlaylist
	}

	return &LikesEngine{
		source:  opts.Source,
		catalog: opts.Catalog,
		matcher: matcher,
		cache:   opts.Cache,
		master:  master,
	}
}

// sendProgress sends a progress update through the channel without blocking.
// Uses select with default to ensure progress reporting never blocks execution.
func (e *LikesEngine) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
		// Sent successfully
	default:
		// Channel full or closed, skip this update
	}
}

// matchSong resolves one song, consulting the cache before the catalog.
// A cache hit counts as a good match; good matches found by search are
// written back (write failures are ignored, the sync matters more).
func (e *LikesEngine) matchSong(ctx context.Context, song models.Song) (models.MatchResult, error) {
	if e.cache != nil {
		if candidate, ok := e.cache.Get(song); ok {
			return models.MatchResult{Status: models.GoodMatch, Candidate: candidate}, nil
		}
	}

	result, err := e.matcher.Match(ctx, song, e.catalog)
	if err != nil {
		return models.MatchResult{}, err
	}

	if result.Status == models.GoodMatch && e.cache != nil {
		_ = e.cache.Put(song, *result.Candidate)
	}

	return result, nil
}

// BuildPlaylists maps station-grouped likes onto desired playlists.
//
// Every matched song lands in the master playlist. Songs liked on a
// station that still exists additionally land in "<master> - <station>".
// Bookmarked songs (empty station key) only reach the master. Stations
// are walked in sorted order so output is deterministic; within a
// station the like order is preserved. A failed search skips the song
// and the build continues.
func (e *LikesEngine) BuildPlaylists(ctx context.Context, likes map[string][]models.Song, liveStations map[string]bool, progress chan<- ProgressUpdate) (*BuildResult, error) {
	stations := make([]string, 0, len(likes))
	total := 0
	for station, songs := range likes {
		stations = append(stations, station)
		total += len(songs)
	}
	sort.Strings(stations)

	result := &BuildResult{LikeCount: total}
	master := DesiredPlaylist{Name: e.master}
	var stationLists []DesiredPlaylist

	e.sendProgress(progress, matchSongsUpdate(total))

	matched := make(map[models.Song]models.MatchResult)
	step := 0

	for _, station := range stations {
		live := station != services.Bookmarked && liveStations[station]
		list := DesiredPlaylist{Name: fmt.Sprintf("%s - %s", e.master, station)}

		for _, song := range likes[station] {
			step++

			match, seen := matched[song]
			if !seen {
				var err error
				match, err = e.matchSong(ctx, song)
				if err != nil {
					result.FailedSongs++
					e.sendProgress(progress, matchFailedUpdate(step, total, song, err))
					continue
				}
				matched[song] = match
			}

			e.sendProgress(progress, matchResultUpdate(step, total, song, match))

			switch match.Status {
			case models.GoodMatch:
				result.MatchedCount++
				master.TrackIDs = append(master.TrackIDs, match.Candidate.TrackID)
				if live {
					list.TrackIDs = append(list.TrackIDs, match.Candidate.TrackID)
				}
			case models.ProbableSpam:
				result.SpamCount++
			default:
				result.MissCount++
			}
		}

		if live {
			stationLists = append(stationLists, list)
		}
	}

	result.Playlists = append([]DesiredPlaylist{master}, stationLists...)
	return result, nil
}

// Reconcile applies the plan for one playlist: create it when missing,
// then one batched add and one batched remove. With dryRun set the
// returned result reports what would change without touching the
// service.
func (e *LikesEngine) Reconcile(ctx context.Context, desired DesiredPlaylist, remote *models.RemotePlaylist, dryRun bool) (models.ReconcileResult, error) {
	plan := PlanReconciliation(desired.TrackIDs, remote)
	result := models.ReconcileResult{Playlist: desired.Name}

	if plan.UpToDate() {
		return result, nil
	}

	if dryRun {
		result.Created = !plan.PlaylistExists
		result.Added = len(plan.ToAdd)
		result.Removed = len(plan.ToRemove)
		return result, nil
	}

	var playlistID string
	if plan.PlaylistExists {
		playlistID = remote.ID
	} else {
		id, err := e.catalog.CreatePlaylist(ctx, desired.Name)
		if err != nil {
			return result, fmt.Errorf("%w: failed to create playlist: %v", shared.ErrAPIRequest, err)
		}
		playlistID = id
		result.Created = true
	}

	if len(plan.ToAdd) > 0 {
		if err := e.catalog.AddSongs(ctx, playlistID, plan.ToAdd); err != nil {
			return result, fmt.Errorf("%w: failed to add tracks: %v", shared.ErrAPIRequest, err)
		}
		result.Added = len(plan.ToAdd)
	}

	if len(plan.ToRemove) > 0 {
		if err := e.catalog.RemoveEntries(ctx, plan.ToRemove); err != nil {
			return result, fmt.Errorf("%w: failed to remove entries: %v", shared.ErrAPIRequest, err)
		}
		result.Removed = len(plan.ToRemove)
	}

	return result, nil
}

// Run performs a full likes sync.
func (e *LikesEngine) Run(ctx context.Context, opts RunOptions, progress chan<- ProgressUpdate) (*models.SyncReport, error) {
	if e.source == nil {
		return nil, fmt.Errorf("%w: likes provider not initialized", shared.ErrServiceUnavailable)
	}
	if e.catalog == nil {
		return nil, fmt.Errorf("%w: catalog client not initialized", shared.ErrServiceUnavailable)
	}

	report := &models.SyncReport{
		Master:    e.master,
		DryRun:    opts.DryRun,
		StartedAt: time.Now(),
	}

	if err := e.source.Authenticate(ctx, opts.SourceCredentials); err != nil {
		return nil, fmt.Errorf("%s authentication failed: %w", e.source.Name(), err)
	}
	if err := e.catalog.Authenticate(ctx, opts.CatalogCredentials); err != nil {
		return nil, fmt.Errorf("%s authentication failed: %w", e.catalog.Name(), err)
	}

	e.sendProgress(progress, fetchLikesUpdate(e.source.Name()))
	likes, err := e.source.FetchLikes(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to fetch likes: %v", shared.ErrAPIRequest, err)
	}

	if len(opts.Stations) > 0 {
		selected := make(map[string]bool, len(opts.Stations))
		for _, s := range opts.Stations {
			selected[s] = true
		}
		for station := range likes {
			if !selected[station] {
				delete(likes, station)
			}
		}
	}

	likeCount := 0
	for _, songs := range likes {
		likeCount += len(songs)
	}

	e.sendProgress(progress, fetchStationsUpdate(likeCount))
	stations, err := e.source.FetchStationNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to fetch stations: %v", shared.ErrAPIRequest, err)
	}

	build, err := e.BuildPlaylists(ctx, likes, stations, progress)
	if err != nil {
		return nil, err
	}

	report.LikeCount = build.LikeCount
	report.MatchedCount = build.MatchedCount
	report.SpamCount = build.SpamCount
	report.MissCount = build.MissCount
	report.FailedSongs = build.FailedSongs

	e.sendProgress(progress, fetchPlaylistsUpdate())
	remotes, err := e.catalog.ListPlaylists(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list playlists: %v", shared.ErrAPIRequest, err)
	}

	remoteByName := make(map[string]*models.RemotePlaylist, len(remotes))
	for i := range remotes {
		remoteByName[remotes[i].Name] = &remotes[i]
	}

	total := len(build.Playlists)
	for i, desired := range build.Playlists {
		e.sendProgress(progress, applyPlaylistUpdate(i+1, total, desired.Name))

		result, err := e.Reconcile(ctx, desired, remoteByName[desired.Name], opts.DryRun)
		if err != nil {
			report.Failures = append(report.Failures, models.PlaylistFailure{Playlist: desired.Name, Err: err})
			e.sendProgress(progress, playlistFailedUpdate(i+1, total, desired.Name, err))
			continue
		}

		report.Playlists = append(report.Playlists, result)
		report.Added += result.Added
		report.Removed += result.Removed
		e.sendProgress(progress, playlistDoneUpdate(i+1, total, result))
	}

	report.FinishedAt = time.Now()
	return report, nil
}
