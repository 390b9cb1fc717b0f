package repositories

import (
	"fmt"
	"strings"

	"github.com/desertthunder/likesync/internal/models"
)

// MatchCacheAdapter implements tasks.MatchCache using MatchRepository.
//
// Re-runs hit the cache instead of the catalog search for songs already
// resolved. Duplicate songs are silently ignored (UNIQUE constraint
// violations).
type MatchCacheAdapter struct {
	repo *MatchRepository
}

// NewMatchCacheAdapter creates a new MatchCacheAdapter with the given repository
func NewMatchCacheAdapter(repo *MatchRepository) *MatchCacheAdapter {
	return &MatchCacheAdapter{repo: repo}
}

// Get returns the cached candidate for a song, if one exists.
func (a *MatchCacheAdapter) Get(song models.Song) (*models.Candidate, bool) {
	match, err := a.repo.GetBySong(song.Artist, song.Title)
	if err != nil || match == nil {
		return nil, false
	}

	candidate := match.Candidate()
	return &candidate, true
}

// Put stores a good match for a song.
// Returns nil if the song is already cached (deduplication).
// Only returns errors for actual failures (not constraint violations).
func (a *MatchCacheAdapter) Put(song models.Song, candidate models.Candidate) error {
	if _, ok := a.Get(song); ok {
		return nil
	}

	err := a.repo.Create(models.NewCachedMatch(song, candidate))
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint") {
			return nil
		}
		return fmt.Errorf("failed to cache match: %w", err)
	}

	return nil
}
