// Package matching resolves scraped songs against the target catalog.
//
// # Normalization
//
// [Normalize] canonicalizes artist and title strings so metadata from
// two catalogs can be compared: transliteration to ASCII, lowercasing,
// truncation at secondary-artist markers, bracket stripping, and
// whitespace collapse. Normalization is idempotent, so it is safe to
// apply to both sides of a comparison.
//
// # Artist similarity
//
// [SimilarMatch] compares two already-normalized artist strings with a
// Jaro-Winkler score and a fixed threshold ([DefaultThreshold]). Search
// results are frequently covers or alternate spellings; the threshold
// trades false accepts (spam) against false rejects.
//
// # Song matching
//
// [SongMatcher.Match] classifies one song against a catalog search as
// a good match, probable spam, or no match, trying queries from most to
// least specific and trusting search ranking once artist identity is
// confirmed.
package matching
