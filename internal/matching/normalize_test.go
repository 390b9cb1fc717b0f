package matching

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tc := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "lowercase and trim",
			in:   "  The Beatles  ",
			want: "the beatles",
		},
		{
			name: "diacritics folded",
			in:   "Beyoncé",
			want: "beyonce",
		},
		{
			name: "comma drops secondary artists",
			in:   "Billie Eilish, Khalid - lovely",
			want: "billie eilish",
		},
		{
			name: "feat marker with period",
			in:   "Artist feat. Other - Title",
			want: "artist",
		},
		{
			name: "featuring marker",
			in:   "Artist featuring Other",
			want: "artist",
		},
		{
			name: "ft marker without period",
			in:   "Artist ft Other - Title",
			want: "artist",
		},
		{
			name: "ft not matched inside words",
			in:   "Left Shift",
			want: "left shift",
		},
		{
			name: "earliest marker wins",
			in:   "A feat. B, C",
			want: "a",
		},
		{
			name: "parenthesized tag removed",
			in:   "Song (Remix)",
			want: "song",
		},
		{
			name: "multiple brackets removed",
			in:   "Song (Remix) [Live]",
			want: "song",
		},
		{
			name: "whitespace collapsed",
			in:   "Some   Song\t\tName",
			want: "some song name",
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Billie Eilish, Khalid - lovely",
		"Artist feat. Other - Title",
		"Söng (Remix) [Live]",
		"  plain   text  ",
		"",
		"Sigur Rós",
	}

	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestNormalizeStripsBracketContent(t *testing.T) {
	got := Normalize("Song (Remix) [Live]")

	for _, forbidden := range []string{"remix", "live", "(", ")", "[", "]"} {
		if strings.Contains(got, forbidden) {
			t.Errorf("Normalize output %q still contains %q", got, forbidden)
		}
	}
}
