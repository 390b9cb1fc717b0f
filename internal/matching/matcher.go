package matching

import (
	"context"

	"github.com/desertthunder/likesync/internal/models"
)

// CatalogSearcher is the search capability the matcher needs from the
// target service. Results are ordered best-first.
type CatalogSearcher interface {
	SearchCatalog(ctx context.Context, query string) ([]models.Candidate, error)
}

// SongMatcher classifies songs against a catalog search.
type SongMatcher struct {
	threshold float64
}

// NewSongMatcher creates a matcher with the given artist similarity
// threshold. A threshold of zero or less falls back to
// [DefaultThreshold].
func NewSongMatcher(threshold float64) *SongMatcher {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &SongMatcher{threshold: threshold}
}

// Queries returns the search strings for a song, most specific first:
// the raw title preserves exact-match precision, the normalized title
// is a fallback for titles carrying annotation noise the catalog does
// not index literally.
func Queries(song models.Song) []string {
	artist := Normalize(song.Artist)
	return []string{
		artist + " " + song.Title,
		artist + " " + Normalize(song.Title),
	}
}

// Match resolves one song against the catalog.
//
// Each query is tried in order; only the first (highest-ranked) result
// of a query is considered. A candidate whose normalized artist is
// similar to the song's normalized artist is returned immediately as a
// good match. Otherwise the first dissimilar candidate is retained as
// probable spam and later queries may still upgrade the result to a
// good match. A result payload without an artist field counts as a
// failed comparison rather than an error.
//
// Search errors are not retried or interpreted here; they propagate to
// the caller.
func (m *SongMatcher) Match(ctx context.Context, song models.Song, search CatalogSearcher) (models.MatchResult, error) {
	artist := Normalize(song.Artist)
	result := models.MatchResult{Status: models.NoMatch}

	for _, query := range Queries(song) {
		candidates, err := search.SearchCatalog(ctx, query)
		if err != nil {
			return models.MatchResult{Status: models.NoMatch}, err
		}
		if len(candidates) == 0 {
			continue
		}

		candidate := candidates[0]
		if candidate.Artist != "" && SimilarWithin(artist, Normalize(candidate.Artist), m.threshold) {
			return models.MatchResult{Status: models.GoodMatch, Candidate: &candidate}, nil
		}

		// Keep the first spam candidate, not the best one.
		if result.Status == models.NoMatch {
			result = models.MatchResult{Status: models.ProbableSpam, Candidate: &candidate}
		}
	}

	return result, nil
}
