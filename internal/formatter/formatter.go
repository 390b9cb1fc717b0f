// package formatter provides functions to export sync reports and the match cache to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/desertthunder/likesync/internal/models"
	"github.com/desertthunder/likesync/internal/shared"
)

// ExportMatchesToCSV converts cached matches to CSV format with columns: Artist, Title, TrackID, MatchedArtist, MatchedTitle
func ExportMatchesToCSV(matches []*models.CachedMatch) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Artist", "Title", "TrackID", "MatchedArtist", "MatchedTitle"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, match := range matches {
		record := []string{
			match.Artist(),
			match.Title(),
			match.TrackID(),
			match.MatchedArtist(),
			match.MatchedTitle(),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportReportToMarkdown converts a sync report to Markdown format
func ExportReportToMarkdown(report *models.SyncReport) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# Sync Report: %s\n\n", report.Master))

	if report.DryRun {
		buf.WriteString("**Dry run** - no playlists were modified.\n\n")
	}

	buf.WriteString(fmt.Sprintf("**Likes**: %d\n", report.LikeCount))
	buf.WriteString(fmt.Sprintf("**Matched**: %d\n", report.MatchedCount))
	buf.WriteString(fmt.Sprintf("**Probable spam**: %d\n", report.SpamCount))
	buf.WriteString(fmt.Sprintf("**No match**: %d\n", report.MissCount))
	if report.FailedSongs > 0 {
		buf.WriteString(fmt.Sprintf("**Search failures**: %d\n", report.FailedSongs))
	}
	buf.WriteString(fmt.Sprintf("**Duration**: %s\n\n", report.Duration().Round(time.Second)))

	buf.WriteString("## Playlists\n\n")
	for _, result := range report.Playlists {
		status := "up to date"
		if result.Created {
			status = fmt.Sprintf("created, +%d", result.Added)
		} else if result.Added > 0 || result.Removed > 0 {
			status = fmt.Sprintf("+%d -%d", result.Added, result.Removed)
		}
		buf.WriteString(fmt.Sprintf("- %s: %s\n", result.Playlist, status))
	}

	if len(report.Failures) > 0 {
		buf.WriteString("\n## Failures\n\n")
		for _, failure := range report.Failures {
			buf.WriteString(fmt.Sprintf("- %s: %v\n", failure.Playlist, failure.Err))
		}
	}

	return buf.Bytes(), nil
}

// ExportReportToText converts a sync report to plain text format
func ExportReportToText(report *models.SyncReport) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Master playlist: %s\n", report.Master))
	if report.DryRun {
		buf.WriteString("Dry run - no playlists were modified\n")
	}
	buf.WriteString(fmt.Sprintf("Likes: %d  Matched: %d  Spam: %d  Missed: %d\n",
		report.LikeCount, report.MatchedCount, report.SpamCount, report.MissCount))
	buf.WriteString(fmt.Sprintf("Added: %d  Removed: %d\n\n", report.Added, report.Removed))

	for _, result := range report.Playlists {
		buf.WriteString(fmt.Sprintf("%s: +%d -%d\n", result.Playlist, result.Added, result.Removed))
	}

	for _, failure := range report.Failures {
		buf.WriteString(fmt.Sprintf("FAILED %s: %v\n", failure.Playlist, failure.Err))
	}

	return buf.Bytes(), nil
}

// ReportSummary is the JSON shape written next to report exports.
type ReportSummary struct {
	Master     string    `json:"master"`
	Likes      int       `json:"likes"`
	Matched    int       `json:"matched"`
	Spam       int       `json:"probable_spam"`
	Misses     int       `json:"no_match"`
	Failed     int       `json:"search_failures"`
	Added      int       `json:"added"`
	Removed    int       `json:"removed"`
	DryRun     bool      `json:"dry_run"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}

// ToSummaryJSON generates a JSON representation of the report's headline numbers
func ToSummaryJSON(report *models.SyncReport) ([]byte, error) {
	summary := ReportSummary{
		Master:     report.Master,
		Likes:      report.LikeCount,
		Matched:    report.MatchedCount,
		Spam:       report.SpamCount,
		Misses:     report.MissCount,
		Failed:     report.FailedSongs,
		Added:      report.Added,
		Removed:    report.Removed,
		DryRun:     report.DryRun,
		StartedAt:  report.StartedAt,
		FinishedAt: report.FinishedAt,
	}
	return shared.MarshalJSON(summary, true)
}

// ReportExportResult contains the paths of files created by WriteReportExport
type ReportExportResult struct {
	ReportFile  string
	SummaryFile string
}

// WriteReportExport exports a sync report to Markdown with an accompanying summary JSON file.
//
// Creates {base}_report.md and {base}_summary.json
func WriteReportExport(report *models.SyncReport, baseFilepath string) (*ReportExportResult, error) {
	if baseFilepath == "" {
		baseFilepath = "sync"
	}

	mdData, err := ExportReportToMarkdown(report)
	if err != nil {
		return nil, fmt.Errorf("failed to generate Markdown: %w", err)
	}

	reportFile := baseFilepath + "_report.md"
	if err := os.WriteFile(reportFile, mdData, 0644); err != nil {
		return nil, fmt.Errorf("failed to write report file: %w", err)
	}

	summaryJSON, err := ToSummaryJSON(report)
	if err != nil {
		return nil, fmt.Errorf("failed to generate summary JSON: %w", err)
	}

	summaryFile := baseFilepath + "_summary.json"
	if err := os.WriteFile(summaryFile, summaryJSON, 0644); err != nil {
		return nil, fmt.Errorf("failed to write summary file: %w", err)
	}

	return &ReportExportResult{
		ReportFile:  reportFile,
		SummaryFile: summaryFile,
	}, nil
}

// WriteMatchesExport exports the match cache to a CSV file.
//
// Defaults to matches.csv as the filename.
func WriteMatchesExport(matches []*models.CachedMatch, filepath string) (string, error) {
	if filepath == "" {
		filepath = "matches.csv"
	}

	csvData, err := ExportMatchesToCSV(matches)
	if err != nil {
		return "", fmt.Errorf("failed to generate CSV: %w", err)
	}

	if err := os.WriteFile(filepath, csvData, 0644); err != nil {
		return "", fmt.Errorf("failed to write CSV file: %w", err)
	}

	return filepath, nil
}
