package formatter

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/desertthunder/likesync/internal/models"
	th "github.com/desertthunder/likesync/internal/testing"
)

func sampleReport() *models.SyncReport {
	started := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return &models.SyncReport{
		Master:       "Pandora",
		LikeCount:    10,
		MatchedCount: 8,
		SpamCount:    1,
		MissCount:    1,
		Added:        5,
		Removed:      2,
		Playlists: []models.ReconcileResult{
			{Playlist: "Pandora", Added: 4, Removed: 2},
			{Playlist: "Pandora - Jazz Radio", Created: true, Added: 1},
		},
		StartedAt:  started,
		FinishedAt: started.Add(90 * time.Second),
	}
}

func TestExportMatchesToCSV(t *testing.T) {
	matches := []*models.CachedMatch{
		models.NewCachedMatch(
			models.Song{Artist: "radiohead", Title: "karma police"},
			models.Candidate{TrackID: "t1", Artist: "Radiohead", Title: "Karma Police"},
		),
	}

	data, err := ExportMatchesToCSV(matches)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header and one record, got %d lines", len(lines))
	}
	if lines[0] != "Artist,Title,TrackID,MatchedArtist,MatchedTitle" {
		t.Errorf("unexpected header %q", lines[0])
	}
	if lines[1] != "radiohead,karma police,t1,Radiohead,Karma Police" {
		t.Errorf("unexpected record %q", lines[1])
	}
}

func TestExportReportToMarkdown(t *testing.T) {
	data, err := ExportReportToMarkdown(sampleReport())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	md := string(data)

	for _, want := range []string{
		"# Sync Report: Pandora",
		"**Likes**: 10",
		"**Matched**: 8",
		"- Pandora: +4 -2",
		"- Pandora - Jazz Radio: created, +1",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q", want)
		}
	}

	if strings.Contains(md, "Dry run") {
		t.Error("non-dry-run report must not carry the dry run banner")
	}
}

func TestExportReportToText(t *testing.T) {
	report := sampleReport()
	report.DryRun = true

	data, err := ExportReportToText(report)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text := string(data)

	if !strings.Contains(text, "Dry run") {
		t.Error("expected dry run notice")
	}
	if !strings.Contains(text, "Likes: 10  Matched: 8") {
		t.Errorf("unexpected summary line in %q", text)
	}
}

func TestWriteReportExport(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "run42")

	result, err := WriteReportExport(sampleReport(), base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	th.AssertFileExists(t, result.ReportFile)
	th.AssertFileExists(t, result.SummaryFile)

	summary := th.MustReadFile(t, result.SummaryFile)
	if !strings.Contains(summary, `"master": "Pandora"`) {
		t.Errorf("summary JSON missing master: %s", summary)
	}
	if !strings.Contains(summary, `"matched": 8`) {
		t.Errorf("summary JSON missing counts: %s", summary)
	}
}

func TestWriteMatchesExport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cache.csv")

	matches := []*models.CachedMatch{
		models.NewCachedMatch(models.Song{Artist: "a", Title: "b"}, models.Candidate{TrackID: "t"}),
	}

	written, err := WriteMatchesExport(matches, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if written != path {
		t.Errorf("expected %q, got %q", path, written)
	}
	th.AssertFileExists(t, path)
}
