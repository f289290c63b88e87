package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/opencode-ai/swatch/internal/models"
)

// Snapshot repository errors.
var (
	ErrSnapshotNotFound  = errors.New("snapshot not found")
	ErrSnapshotAmbiguous = errors.New("snapshot id prefix is ambiguous")
)

// SnapshotRepository handles snapshot persistence.
type SnapshotRepository struct {
	db *DB
}

// NewSnapshotRepository creates a new SnapshotRepository.
func NewSnapshotRepository(db *DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// Create stores a snapshot and its entries in one transaction.
// An empty ID or CreatedAt is filled in.
func (r *SnapshotRepository) Create(ctx context.Context, snapshot *models.Snapshot) error {
	if err := snapshot.Validate(); err != nil {
		return err
	}
	if snapshot.ID == "" {
		snapshot.ID = uuid.New().String()
	}
	if snapshot.CreatedAt.IsZero() {
		snapshot.CreatedAt = time.Now().UTC()
	} else {
		snapshot.CreatedAt = snapshot.CreatedAt.UTC()
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO snapshots (id, note, created_at) VALUES (?, ?, ?)
	`, snapshot.ID, nullString(snapshot.Note), snapshot.CreatedAt.Format(timeLayout)); err != nil {
		return fmt.Errorf("failed to insert snapshot: %w", err)
	}

	for i, entry := range snapshot.Entries {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO snapshot_entries (snapshot_id, position, token, l, c, h, r, g, b, hex)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`,
			snapshot.ID, i, entry.Token,
			entry.Source.L, entry.Source.C, entry.Source.H,
			entry.Color.R, entry.Color.G, entry.Color.B,
			entry.Hex,
		); err != nil {
			return fmt.Errorf("failed to insert snapshot entry %s: %w", entry.Token, err)
		}
	}

	return tx.Commit()
}

// Get retrieves a snapshot by full ID or unique ID prefix.
func (r *SnapshotRepository) Get(ctx context.Context, id string) (*models.Snapshot, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrSnapshotNotFound
	}

	snapshots, err := r.query(ctx, `SELECT id, note, created_at FROM snapshots WHERE id = ?`, id)
	if err != nil {
		return nil, err
	}
	if len(snapshots) == 0 {
		snapshots, err = r.query(ctx, `
			SELECT id, note, created_at FROM snapshots
			WHERE id LIKE ? ESCAPE '\'
			ORDER BY created_at
			LIMIT 2
		`, escapeLike(id)+"%")
		if err != nil {
			return nil, err
		}
	}

	switch len(snapshots) {
	case 0:
		return nil, ErrSnapshotNotFound
	case 1:
	default:
		return nil, fmt.Errorf("%w: %q", ErrSnapshotAmbiguous, id)
	}

	snapshot := snapshots[0]
	if err := r.loadEntries(ctx, snapshot); err != nil {
		return nil, err
	}
	return snapshot, nil
}

// List returns snapshots newest first, without entries.
func (r *SnapshotRepository) List(ctx context.Context, limit int) ([]*models.Snapshot, error) {
	if limit <= 0 {
		limit = 50
	}
	return r.query(ctx, `
		SELECT id, note, created_at FROM snapshots
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
}

// Delete removes a snapshot and its entries.
func (r *SnapshotRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM snapshots WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return ErrSnapshotNotFound
	}
	return nil
}

func (r *SnapshotRepository) loadEntries(ctx context.Context, snapshot *models.Snapshot) error {
	rows, err := r.db.QueryContext(ctx, `
		SELECT token, l, c, h, r, g, b, hex
		FROM snapshot_entries
		WHERE snapshot_id = ?
		ORDER BY position
	`, snapshot.ID)
	if err != nil {
		return fmt.Errorf("failed to query snapshot entries: %w", err)
	}
	defer rows.Close()

	snapshot.Entries = snapshot.Entries[:0]
	for rows.Next() {
		var entry models.SnapshotEntry
		if err := rows.Scan(
			&entry.Token,
			&entry.Source.L, &entry.Source.C, &entry.Source.H,
			&entry.Color.R, &entry.Color.G, &entry.Color.B,
			&entry.Hex,
		); err != nil {
			return fmt.Errorf("failed to scan snapshot entry: %w", err)
		}
		snapshot.Entries = append(snapshot.Entries, entry)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating snapshot entries: %w", err)
	}
	return nil
}

func (r *SnapshotRepository) query(ctx context.Context, query string, args ...any) ([]*models.Snapshot, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []*models.Snapshot
	for rows.Next() {
		var snapshot models.Snapshot
		var note sql.NullString
		var createdAt string
		if err := rows.Scan(&snapshot.ID, &note, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		snapshot.Note = note.String
		if t, err := time.Parse(timeLayout, createdAt); err == nil {
			snapshot.CreatedAt = t
		}
		snapshots = append(snapshots, &snapshot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating snapshots: %w", err)
	}
	return snapshots, nil
}

func escapeLike(value string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(value)
}
