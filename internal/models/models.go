// package models defines the data model for the likes migration tool
package models

import (
	"time"
)

// Model defines the base interface for all persistent models.
// Implementations include CachedMatch and SyncRun.
type Model interface {
	ID() string           // ID returns the unique identifier for this model
	CreatedAt() time.Time // CreatedAt returns when this model was created
	UpdatedAt() time.Time // UpdatedAt returns when this model was last updated
	Validate() error      // Validate checks if the model's data is valid and returns an error if not
}

// Repository defines the interface for data access operations.
// Implementations handle database interactions for specific model types.
type Repository[T Model] interface {
	Create(model T) error                      // Create inserts a new model into the database
	Get(id string) (T, error)                  // Get retrieves a model by its ID
	Update(model T) error                      // Update modifies an existing model in the database
	Delete(id string) error                    // Delete removes a model from the database by its ID
	List(criteria map[string]any) ([]T, error) // List retrieves all models matching the given criteria
}

// Song is the raw identity of a liked track as scraped from the source
// service. Immutable once built.
type Song struct {
	Artist string
	Title  string
}

// Candidate represents a target-catalog entry returned by search.
//
// TrackID is the stable catalog identity. EntryID is only set when the
// candidate was read out of an existing playlist; it identifies that
// specific placement and is required to remove it.
type Candidate struct {
	TrackID string
	Artist  string
	Title   string
	EntryID string
}

// MatchStatus classifies the outcome of resolving a Song against the
// target catalog.
type MatchStatus int

const (
	NoMatch MatchStatus = iota
	ProbableSpam
	GoodMatch
)

func (s MatchStatus) String() string {
	switch s {
	case NoMatch:
		return "no_match"
	case ProbableSpam:
		return "probable_spam"
	case GoodMatch:
		return "good_match"
	default:
		return ""
	}
}

// Indicator returns the single-letter marker used in classification output.
func (s MatchStatus) Indicator() string {
	switch s {
	case GoodMatch:
		return "Y"
	case ProbableSpam:
		return "S"
	default:
		return "N"
	}
}

// MatchResult is the tagged outcome of attempting to resolve a Song.
// Candidate is nil only when Status is NoMatch.
type MatchResult struct {
	Status    MatchStatus
	Candidate *Candidate
}

// PlaylistEntry is one placement inside a remote playlist. EntryID is
// distinct from TrackID since a track can appear more than once.
type PlaylistEntry struct {
	EntryID string
	TrackID string
	Artist  string
	Title   string
}

// RemotePlaylist is the current state of one playlist on the target
// service.
type RemotePlaylist struct {
	ID      string
	Name    string
	Entries []PlaylistEntry
}

// TrackIDs returns the set of catalog track ids present in the playlist.
func (p RemotePlaylist) TrackIDs() map[string]bool {
	ids := make(map[string]bool, len(p.Entries))
	for _, e := range p.Entries {
		ids[e.TrackID] = true
	}
	return ids
}

// EntryIDsFor returns the membership ids of every entry whose track id
// is in the given set.
func (p RemotePlaylist) EntryIDsFor(trackIDs map[string]bool) []string {
	var entryIDs []string
	for _, e := range p.Entries {
		if trackIDs[e.TrackID] {
			entryIDs = append(entryIDs, e.EntryID)
		}
	}
	return entryIDs
}

// ReconciliationPlan is the minimal mutation set for one playlist.
//
// Invariant: when PlaylistExists is false, ToRemove is always empty.
// ToAdd holds catalog track ids, ToRemove holds membership ids; both
// are sorted for deterministic output.
type ReconciliationPlan struct {
	PlaylistExists bool
	ToAdd          []string
	ToRemove       []string
}

// UpToDate reports whether applying the plan would be a no-op.
func (p ReconciliationPlan) UpToDate() bool {
	return p.PlaylistExists && len(p.ToAdd) == 0 && len(p.ToRemove) == 0
}

// ReconcileResult reports what actually happened to one playlist.
type ReconcileResult struct {
	Playlist string
	Created  bool
	Added    int
	Removed  int
}

// PlaylistFailure records a playlist whose mutation failed; the run
// continues with the remaining playlists.
type PlaylistFailure struct {
	Playlist string
	Err      error
}

// SyncReport is the aggregate outcome of a full run.
type SyncReport struct {
	Master       string
	LikeCount    int
	MatchedCount int
	SpamCount    int
	MissCount    int
	FailedSongs  int
	Added        int
	Removed      int
	Playlists    []ReconcileResult
	Failures     []PlaylistFailure
	DryRun       bool
	StartedAt    time.Time
	FinishedAt   time.Time
}

// Duration returns the wall-clock time the run took.
func (r SyncReport) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}
