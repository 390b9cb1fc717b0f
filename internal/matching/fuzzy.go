package matching

import "github.com/xrash/smetrics"

// DefaultThreshold is the similarity score at or above which two
// artist strings are considered the same artist. Tuned by hand, not
// derived from data; override per matcher via [NewSongMatcher].
const DefaultThreshold = 0.7

// Jaro-Winkler parameters: standard boost threshold and prefix length.
const (
	jwBoostThreshold = 0.7
	jwPrefixSize     = 4
)

// Similarity scores two already-normalized artist strings in [0, 1],
// 1.0 meaning identical. The metric is Jaro-Winkler: edit-similarity
// weighted by length with a boost for common prefixes.
func Similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}
	return smetrics.JaroWinkler(a, b, jwBoostThreshold, jwPrefixSize)
}

// SimilarMatch reports whether two normalized artist strings represent
// the same artist within [DefaultThreshold] tolerance.
func SimilarMatch(a, b string) bool {
	return SimilarWithin(a, b, DefaultThreshold)
}

// SimilarWithin is [SimilarMatch] with an explicit threshold.
func SimilarWithin(a, b string, threshold float64) bool {
	return Similarity(a, b) >= threshold
}
