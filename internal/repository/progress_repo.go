package repository

import (
	"database/sql"
	"fmt"
	"time"

	"kidlearn/internal/database"
	"kidlearn/internal/models"
)

// ProgressRepository handles database operations for per-item progress
// records. The table carries a unique index on (user_id, category,
// item_id); Upsert preserves that invariant by doing its read-modify-
// write inside a single transaction.
type ProgressRepository struct {
	db *database.DB
}

// NewProgressRepository creates a new progress repository
func NewProgressRepository(db *database.DB) *ProgressRepository {
	return &ProgressRepository{db: db}
}

const progressColumns = `id, user_id, category, item_id, completed, score, completed_at`

// GetForUser retrieves all progress records for a user, optionally
// filtered to one category (empty category means no filter).
func (r *ProgressRepository) GetForUser(userID int64, category string) ([]models.ProgressRecord, error) {
	query := `SELECT ` + progressColumns + ` FROM progress WHERE user_id = ?`
	args := []interface{}{userID}

	if category != "" {
		query += ` AND category = ?`
		args = append(args, category)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list progress: %w", err)
	}
	defer rows.Close()

	var records []models.ProgressRecord
	for rows.Next() {
		record, err := scanProgress(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}

	return records, rows.Err()
}

// GetByItem retrieves the single record for (userID, category, itemID),
// or nil, nil when the user has not touched that item yet.
func (r *ProgressRepository) GetByItem(userID int64, category, itemID string) (*models.ProgressRecord, error) {
	query := `SELECT ` + progressColumns + ` FROM progress WHERE user_id = ? AND category = ? AND item_id = ?`

	record, err := scanProgress(r.db.QueryRow(query, userID, category, itemID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}
	return record, nil
}

// Upsert records completion for one item. An existing record for the
// same (userID, category, itemID) key is updated in place with a fresh
// timestamp; otherwise a new record is created. Repeated completions
// therefore never produce duplicate rows.
func (r *ProgressRepository) Upsert(userID int64, category, itemID string, completed bool, score *int) (*models.ProgressRecord, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()

	var existingID int64
	err = tx.QueryRow(
		`SELECT id FROM progress WHERE user_id = ? AND category = ? AND item_id = ?`,
		userID, category, itemID,
	).Scan(&existingID)

	switch {
	case err == sql.ErrNoRows:
		existingID, err = tx.ExecReturningID(
			`INSERT INTO progress (user_id, category, item_id, completed, score, completed_at)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			userID, category, itemID, completed, score, now,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to insert progress: %w", err)
		}

	case err != nil:
		return nil, fmt.Errorf("failed to look up progress: %w", err)

	default:
		_, err = tx.Exec(
			`UPDATE progress SET completed = ?, score = ?, completed_at = ? WHERE id = ?`,
			completed, score, now, existingID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to update progress: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit progress: %w", err)
	}

	return &models.ProgressRecord{
		ID:          existingID,
		UserID:      userID,
		Category:    category,
		ItemID:      itemID,
		Completed:   completed,
		Score:       score,
		CompletedAt: now,
	}, nil
}

func scanProgress(s rowScanner) (*models.ProgressRecord, error) {
	record := &models.ProgressRecord{}
	var score sql.NullInt64

	err := s.Scan(
		&record.ID,
		&record.UserID,
		&record.Category,
		&record.ItemID,
		&record.Completed,
		&score,
		&record.CompletedAt,
	)
	if err != nil {
		return nil, err
	}

	if score.Valid {
		v := int(score.Int64)
		record.Score = &v
	}
	return record, nil
}
