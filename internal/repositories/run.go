package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/desertthunder/likesync/internal/models"
	"github.com/desertthunder/likesync/internal/shared"
)

// RunRepository persists one row per completed sync for the history command.
type RunRepository struct {
	db *sql.DB
}

// NewRunRepository creates a new RunRepository with the given database connection
func NewRunRepository(db *sql.DB) *RunRepository {
	return &RunRepository{db: db}
}

// Create inserts a new [models.SyncRun] into the database with generated ID and sequence
func (r *RunRepository) Create(run *models.SyncRun) error {
	sequence, err := NextSequence(r.db, "sync_runs")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	id := shared.GenerateID()
	run.SetID(id)

	if err := run.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO sync_runs (id, sequence, master, like_count, matched, added, removed, playlists, failures, dry_run, started_at, finished_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query,
		id,
		sequence,
		run.Master(),
		run.LikeCount(),
		run.Matched(),
		run.Added(),
		run.Removed(),
		run.Playlists(),
		run.Failures(),
		run.DryRun(),
		run.StartedAt(),
		run.FinishedAt(),
		run.CreatedAt(),
		run.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert sync run: %w", err)
	}

	return nil
}

// Get retrieves a sync run by ID
func (r *RunRepository) Get(id string) (*models.SyncRun, error) {
	query := `
		SELECT id, master, like_count, matched, added, removed, playlists, failures, dry_run, started_at, finished_at, created_at, updated_at
		FROM sync_runs
		WHERE id = ?
	`

	var (
		rowID      string
		master     string
		likeCount  int
		matched    int
		added      int
		removed    int
		playlists  int
		failures   int
		dryRun     bool
		startedAt  time.Time
		finishedAt time.Time
		createdAt  time.Time
		updatedAt  time.Time
	)

	err := r.db.QueryRow(query, id).Scan(&rowID, &master, &likeCount, &matched, &added, &removed, &playlists, &failures, &dryRun, &startedAt, &finishedAt, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("sync run not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan sync run: %w", err)
	}

	return buildRun(rowID, master, likeCount, matched, added, removed, playlists, failures, dryRun, startedAt, finishedAt, createdAt, updatedAt), nil
}

// Update modifies an existing sync run in the database
func (r *RunRepository) Update(run *models.SyncRun) error {
	if err := run.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	now := time.Now()
	run.SetUpdatedAt(now)

	query := `
		UPDATE sync_runs
		SET like_count = ?, matched = ?, added = ?, removed = ?, playlists = ?, failures = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.Exec(query,
		run.LikeCount(),
		run.Matched(),
		run.Added(),
		run.Removed(),
		run.Playlists(),
		run.Failures(),
		now,
		run.ID(),
	)
	if err != nil {
		return fmt.Errorf("failed to update sync run: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("sync run not found: %s", run.ID())
	}

	return nil
}

// Delete removes a sync run by ID
func (r *RunRepository) Delete(id string) error {
	result, err := r.db.Exec("DELETE FROM sync_runs WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete sync run: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("sync run not found: %s", id)
	}

	return nil
}

// List retrieves sync runs newest-first. criteria["limit"] caps the
// result count; criteria["master"] filters on the master playlist name.
func (r *RunRepository) List(criteria map[string]any) ([]*models.SyncRun, error) {
	query := `
		SELECT id, master, like_count, matched, added, removed, playlists, failures, dry_run, started_at, finished_at, created_at, updated_at
		FROM sync_runs
	`

	args := []any{}

	if master, ok := criteria["master"].(string); ok && master != "" {
		query += " WHERE master = ?"
		args = append(args, master)
	}

	query += " ORDER BY started_at DESC"

	if limit, ok := criteria["limit"].(int); ok && limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sync runs: %w", err)
	}
	defer rows.Close()

	var runs []*models.SyncRun
	for rows.Next() {
		var (
			rowID      string
			master     string
			likeCount  int
			matched    int
			added      int
			removed    int
			playlists  int
			failures   int
			dryRun     bool
			startedAt  time.Time
			finishedAt time.Time
			createdAt  time.Time
			updatedAt  time.Time
		)

		if err := rows.Scan(&rowID, &master, &likeCount, &matched, &added, &removed, &playlists, &failures, &dryRun, &startedAt, &finishedAt, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan sync run: %w", err)
		}

		runs = append(runs, buildRun(rowID, master, likeCount, matched, added, removed, playlists, failures, dryRun, startedAt, finishedAt, createdAt, updatedAt))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return runs, nil
}

func buildRun(id, master string, likeCount, matched, added, removed, playlists, failures int, dryRun bool, startedAt, finishedAt, createdAt, updatedAt time.Time) *models.SyncRun {
	run := models.NewSyncRun(models.SyncReport{
		Master:       master,
		LikeCount:    likeCount,
		MatchedCount: matched,
		Added:        added,
		Removed:      removed,
		DryRun:       dryRun,
		StartedAt:    startedAt,
		FinishedAt:   finishedAt,
	})
	run.SetID(id)
	run.SetCounts(likeCount, matched, added, removed, playlists, failures)
	run.SetCreatedAt(createdAt)
	run.SetUpdatedAt(updatedAt)

	return run
}
