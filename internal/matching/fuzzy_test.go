package matching

import "testing"

func TestSimilarity(t *testing.T) {
	t.Run("identical strings score 1.0", func(t *testing.T) {
		if got := Similarity("the beatles", "the beatles"); got != 1.0 {
			t.Errorf("Similarity() = %v, want 1.0", got)
		}
	})

	t.Run("both empty score 1.0", func(t *testing.T) {
		if got := Similarity("", ""); got != 1.0 {
			t.Errorf("Similarity() = %v, want 1.0", got)
		}
	})

	t.Run("empty against non-empty scores 0", func(t *testing.T) {
		if got := Similarity("", "kanye west"); got != 0.0 {
			t.Errorf("Similarity() = %v, want 0.0", got)
		}
	})

	t.Run("score stays within bounds", func(t *testing.T) {
		pairs := [][2]string{
			{"kanye west", "taylor swift"},
			{"sigur ros", "sigur rós"},
			{"a", "b"},
		}
		for _, p := range pairs {
			got := Similarity(p[0], p[1])
			if got < 0.0 || got > 1.0 {
				t.Errorf("Similarity(%q, %q) = %v, out of [0, 1]", p[0], p[1], got)
			}
		}
	})
}

func TestSimilarMatch(t *testing.T) {
	tc := []struct {
		name string
		a    string
		b    string
		want bool
	}{
		{
			name: "exact match",
			a:    "the beatles",
			b:    "the beatles",
			want: true,
		},
		{
			name: "unrelated artists",
			a:    "kanye west",
			b:    "taylor swift",
			want: false,
		},
		{
			name: "alternate credited spelling",
			a:    "the beatles",
			b:    "beatles",
			want: true,
		},
		{
			name: "empty against artist",
			a:    "",
			b:    "daft punk",
			want: false,
		},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			if got := SimilarMatch(tt.a, tt.b); got != tt.want {
				t.Errorf("SimilarMatch(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
