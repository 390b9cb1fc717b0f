package matching

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// Matches the earliest secondary-artist marker: a comma, or a
	// whole-word feat/featuring/ft with an optional trailing period.
	secondaryRe = regexp.MustCompile(`,|\b(?:feat|featuring|ft)\b\.?`)

	// Parenthesized and bracketed annotation tags. Non-greedy, does not
	// handle nested brackets.
	bracketRe = regexp.MustCompile(`\([^)]*\)|\[[^\]]*\]`)

	whitespaceRe = regexp.MustCompile(`\s{2,}`)

	// NFD decomposition with combining marks stripped maps diacritics
	// to their base letters ("Beyoncé" -> "beyonce").
	asciiFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// Normalize canonicalizes a piece of song metadata for searching and
// comparison. It never fails; input that cannot be transliterated is
// still lowercased and trimmed. Normalizing an already-normalized
// string is a no-op.
func Normalize(raw string) string {
	value := raw

	// ASCII-ish representation
	if folded, _, err := transform.String(asciiFold, value); err == nil {
		value = folded
	}

	value = strings.ToLower(value)

	// Drop secondary/featured artists
	if loc := secondaryRe.FindStringIndex(value); loc != nil {
		value = value[:loc[0]]
	}

	// Drop remix/live/annotation tags
	value = bracketRe.ReplaceAllString(value, "")

	value = whitespaceRe.ReplaceAllString(value, " ")
	return strings.TrimSpace(value)
}
