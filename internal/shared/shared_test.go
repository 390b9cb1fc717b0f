package shared

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestGenerateID(t *testing.T) {
	a := GenerateID()
	b := GenerateID()

	if a == "" || b == "" {
		t.Fatal("expected non-empty ids")
	}
	if a == b {
		t.Error("expected distinct ids")
	}
	if len(strings.Split(a, "-")) != 5 {
		t.Errorf("expected uuid shape, got %s", a)
	}
}

func TestMarshalJSON(t *testing.T) {
	data := map[string]string{"key": "value"}

	compact, err := MarshalJSON(data, false)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}
	if string(compact) != `{"key":"value"}` {
		t.Errorf("unexpected compact output: %s", compact)
	}

	pretty, err := MarshalJSON(data, true)
	if err != nil {
		t.Fatalf("failed to marshal pretty: %v", err)
	}
	if !strings.Contains(string(pretty), "\n") {
		t.Errorf("expected indented output, got %s", pretty)
	}
}

func TestFormatDuration(t *testing.T) {
	tc := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"zero", 0, "0:00"},
		{"seconds only", 42 * time.Second, "0:42"},
		{"minutes and seconds", 3*time.Minute + 7*time.Second, "3:07"},
		{"over an hour", 61*time.Minute + 30*time.Second, "61:30"},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDuration(tt.d); got != tt.want {
				t.Errorf("FormatDuration(%v) = %v, want %v", tt.d, got, tt.want)
			}
		})
	}
}

func TestWithLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewLogger(buf)
	child := WithLogger(logger, "service", "pandora")

	child.Info("fetching likes")

	if !strings.Contains(buf.String(), "service=pandora") {
		t.Errorf("expected child logger fields, got %s", buf.String())
	}
}
