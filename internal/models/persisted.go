package models

import (
	"fmt"
	"time"
)

// CachedMatch is a persisted good match: the scraped (artist, title)
// pair mapped to the catalog entry it resolved to. Cached matches let a
// re-run skip the catalog search for songs already resolved.
type CachedMatch struct {
	id            string
	artist        string
	title         string
	trackID       string
	matchedArtist string
	matchedTitle  string
	createdAt     time.Time
	updatedAt     time.Time
	deletedAt     *time.Time
}

// NewCachedMatch builds a cache row for a resolved song. The ID is
// assigned by the repository on insert.
func NewCachedMatch(song Song, candidate Candidate) *CachedMatch {
	now := time.Now()
	return &CachedMatch{
		artist:        song.Artist,
		title:         song.Title,
		trackID:       candidate.TrackID,
		matchedArtist: candidate.Artist,
		matchedTitle:  candidate.Title,
		createdAt:     now,
		updatedAt:     now,
	}
}

func (m *CachedMatch) ID() string            { return m.id }
func (m *CachedMatch) Artist() string        { return m.artist }
func (m *CachedMatch) Title() string         { return m.title }
func (m *CachedMatch) TrackID() string       { return m.trackID }
func (m *CachedMatch) MatchedArtist() string { return m.matchedArtist }
func (m *CachedMatch) MatchedTitle() string  { return m.matchedTitle }
func (m *CachedMatch) CreatedAt() time.Time  { return m.createdAt }
func (m *CachedMatch) UpdatedAt() time.Time  { return m.updatedAt }
func (m *CachedMatch) DeletedAt() *time.Time { return m.deletedAt }

func (m *CachedMatch) SetID(id string)             { m.id = id }
func (m *CachedMatch) SetCreatedAt(t time.Time)    { m.createdAt = t }
func (m *CachedMatch) SetUpdatedAt(t time.Time)    { m.updatedAt = t }
func (m *CachedMatch) SetDeletedAt(t *time.Time)   { m.deletedAt = t }
func (m *CachedMatch) SetCandidate(c Candidate) {
	m.trackID = c.TrackID
	m.matchedArtist = c.Artist
	m.matchedTitle = c.Title
}

// Candidate reconstructs the catalog entry this row caches.
func (m *CachedMatch) Candidate() Candidate {
	return Candidate{TrackID: m.trackID, Artist: m.matchedArtist, Title: m.matchedTitle}
}

// Validate checks that the cached match carries a usable identity.
func (m *CachedMatch) Validate() error {
	if m.title == "" {
		return fmt.Errorf("cached match requires a title")
	}
	if m.trackID == "" {
		return fmt.Errorf("cached match requires a track id")
	}
	return nil
}

// SyncRun records one completed sync for the history command.
type SyncRun struct {
	id         string
	master     string
	likeCount  int
	matched    int
	added      int
	removed    int
	playlists  int
	failures   int
	dryRun     bool
	startedAt  time.Time
	finishedAt time.Time
	createdAt  time.Time
	updatedAt  time.Time
}

// NewSyncRun builds a history row from a finished report.
func NewSyncRun(report SyncReport) *SyncRun {
	now := time.Now()
	return &SyncRun{
		master:     report.Master,
		likeCount:  report.LikeCount,
		matched:    report.MatchedCount,
		added:      report.Added,
		removed:    report.Removed,
		playlists:  len(report.Playlists),
		failures:   len(report.Failures),
		dryRun:     report.DryRun,
		startedAt:  report.StartedAt,
		finishedAt: report.FinishedAt,
		createdAt:  now,
		updatedAt:  now,
	}
}

func (r *SyncRun) ID() string            { return r.id }
func (r *SyncRun) Master() string        { return r.master }
func (r *SyncRun) LikeCount() int        { return r.likeCount }
func (r *SyncRun) Matched() int          { return r.matched }
func (r *SyncRun) Added() int            { return r.added }
func (r *SyncRun) Removed() int          { return r.removed }
func (r *SyncRun) Playlists() int        { return r.playlists }
func (r *SyncRun) Failures() int         { return r.failures }
func (r *SyncRun) DryRun() bool          { return r.dryRun }
func (r *SyncRun) StartedAt() time.Time  { return r.startedAt }
func (r *SyncRun) FinishedAt() time.Time { return r.finishedAt }
func (r *SyncRun) CreatedAt() time.Time  { return r.createdAt }
func (r *SyncRun) UpdatedAt() time.Time  { return r.updatedAt }

func (r *SyncRun) SetID(id string)          { r.id = id }
func (r *SyncRun) SetMaster(m string)       { r.master = m }
func (r *SyncRun) SetCounts(likes, matched, added, removed, playlists, failures int) {
	r.likeCount = likes
	r.matched = matched
	r.added = added
	r.removed = removed
	r.playlists = playlists
	r.failures = failures
}
func (r *SyncRun) SetDryRun(d bool)            { r.dryRun = d }
func (r *SyncRun) SetStartedAt(t time.Time)    { r.startedAt = t }
func (r *SyncRun) SetFinishedAt(t time.Time)   { r.finishedAt = t }
func (r *SyncRun) SetCreatedAt(t time.Time)    { r.createdAt = t }
func (r *SyncRun) SetUpdatedAt(t time.Time)    { r.updatedAt = t }

// Validate checks run invariants before persisting.
func (r *SyncRun) Validate() error {
	if r.master == "" {
		return fmt.Errorf("sync run requires a master playlist name")
	}
	if r.finishedAt.Before(r.startedAt) {
		return fmt.Errorf("sync run finished before it started")
	}
	return nil
}
