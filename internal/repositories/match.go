package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/desertthunder/likesync/internal/models"
	"github.com/desertthunder/likesync/internal/shared"
)

// MatchRepository implements models.Repository[*models.CachedMatch] for the match cache.
//
// A row maps a scraped (artist, title) pair to the catalog track it
// resolved to. The unique index on (artist, title) keeps one live row
// per song; soft-deleted rows fall out of every query.
type MatchRepository struct {
	db *sql.DB
}

// NewMatchRepository creates a new MatchRepository with the given database connection
func NewMatchRepository(db *sql.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

// Create inserts a new [models.CachedMatch] into the database with generated ID and sequence
func (r *MatchRepository) Create(match *models.CachedMatch) error {
	sequence, err := NextSequence(r.db, "matches")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	id := shared.GenerateID()
	match.SetID(id)

	if err := match.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO matches (id, sequence, artist, title, track_id, matched_artist, matched_title, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query,
		id,
		sequence,
		match.Artist(),
		match.Title(),
		match.TrackID(),
		match.MatchedArtist(),
		match.MatchedTitle(),
		match.CreatedAt(),
		match.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert match: %w", err)
	}

	return nil
}

// Get retrieves a match by ID, excluding soft-deleted matches
func (r *MatchRepository) Get(id string) (*models.CachedMatch, error) {
	query := `
		SELECT id, artist, title, track_id, matched_artist, matched_title, created_at, updated_at, deleted_at
		FROM matches
		WHERE id = ? AND deleted_at IS NULL
	`

	return r.scanOne(r.db.QueryRow(query, id))
}

// GetBySong retrieves the live match for a scraped (artist, title) pair
func (r *MatchRepository) GetBySong(artist, title string) (*models.CachedMatch, error) {
	query := `
		SELECT id, artist, title, track_id, matched_artist, matched_title, created_at, updated_at, deleted_at
		FROM matches
		WHERE artist = ? AND title = ? AND deleted_at IS NULL
	`

	return r.scanOne(r.db.QueryRow(query, artist, title))
}

// Update modifies an existing match in the database
func (r *MatchRepository) Update(match *models.CachedMatch) error {
	if err := match.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	now := time.Now()
	match.SetUpdatedAt(now)

	query := `
		UPDATE matches
		SET track_id = ?, matched_artist = ?, matched_title = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query,
		match.TrackID(),
		match.MatchedArtist(),
		match.MatchedTitle(),
		now,
		match.ID(),
	)
	if err != nil {
		return fmt.Errorf("failed to update match: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("match not found or already deleted: %s", match.ID())
	}

	return nil
}

// Delete soft-deletes a match by ID
func (r *MatchRepository) Delete(id string) error {
	now := time.Now()

	query := `
		UPDATE matches
		SET deleted_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query, now, id)
	if err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("match not found or already deleted: %s", id)
	}

	return nil
}

// List retrieves all matches matching the given criteria, excluding soft-deleted matches
func (r *MatchRepository) List(criteria map[string]any) ([]*models.CachedMatch, error) {
	query := `
		SELECT id, artist, title, track_id, matched_artist, matched_title, created_at, updated_at, deleted_at
		FROM matches
		WHERE deleted_at IS NULL
	`

	args := []any{}

	if artist, ok := criteria["artist"].(string); ok && artist != "" {
		query += " AND artist = ?"
		args = append(args, artist)
	}

	if trackID, ok := criteria["track_id"].(string); ok && trackID != "" {
		query += " AND track_id = ?"
		args = append(args, trackID)
	}

	query += " ORDER BY sequence ASC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches: %w", err)
	}
	defer rows.Close()

	var matches []*models.CachedMatch
	for rows.Next() {
		match, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		matches = append(matches, match)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return matches, nil
}

// Count returns the number of live cache rows
func (r *MatchRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM matches WHERE deleted_at IS NULL").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count matches: %w", err)
	}
	return count, nil
}

// Clear soft-deletes every live cache row and returns how many were cleared
func (r *MatchRepository) Clear() (int, error) {
	result, err := r.db.Exec("UPDATE matches SET deleted_at = ? WHERE deleted_at IS NULL", time.Now())
	if err != nil {
		return 0, fmt.Errorf("failed to clear matches: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return int(rows), nil
}

// scanOne scans a single [sql.Row] into a [models.CachedMatch]
func (r *MatchRepository) scanOne(row *sql.Row) (*models.CachedMatch, error) {
	var (
		id            string
		artist        string
		title         string
		trackID       string
		matchedArtist sql.NullString
		matchedTitle  sql.NullString
		createdAt     time.Time
		updatedAt     time.Time
		deletedAt     sql.NullTime
	)

	err := row.Scan(&id, &artist, &title, &trackID, &matchedArtist, &matchedTitle, &createdAt, &updatedAt, &deletedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("match not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan match: %w", err)
	}

	return buildMatch(id, artist, title, trackID, matchedArtist, matchedTitle, createdAt, updatedAt, deletedAt), nil
}

// scanRow scans a row from [sql.Rows] into a [models.CachedMatch]
func (r *MatchRepository) scanRow(rows *sql.Rows) (*models.CachedMatch, error) {
	var (
		id            string
		artist        string
		title         string
		trackID       string
		matchedArtist sql.NullString
		matchedTitle  sql.NullString
		createdAt     time.Time
		updatedAt     time.Time
		deletedAt     sql.NullTime
	)

	err := rows.Scan(&id, &artist, &title, &trackID, &matchedArtist, &matchedTitle, &createdAt, &updatedAt, &deletedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to scan match: %w", err)
	}

	return buildMatch(id, artist, title, trackID, matchedArtist, matchedTitle, createdAt, updatedAt, deletedAt), nil
}

func buildMatch(id, artist, title, trackID string, matchedArtist, matchedTitle sql.NullString, createdAt, updatedAt time.Time, deletedAt sql.NullTime) *models.CachedMatch {
	match := models.NewCachedMatch(
		models.Song{Artist: artist, Title: title},
		models.Candidate{TrackID: trackID, Artist: matchedArtist.String, Title: matchedTitle.String},
	)
	match.SetID(id)
	match.SetCreatedAt(createdAt)
	match.SetUpdatedAt(updatedAt)
	if deletedAt.Valid {
		match.SetDeletedAt(&deletedAt.Time)
	}

	return match
}
