package repository

import (
	"database/sql"
	"fmt"
	"time"

	"kidlearn/internal/database"
	"kidlearn/internal/models"
)

// DefaultActivityLimit bounds Recent when the caller gives no limit.
const DefaultActivityLimit = 10

// ActivityRepository handles the append-only activity log. Entries are
// inserted with a server-side timestamp and never updated or deleted.
type ActivityRepository struct {
	db *database.DB
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *database.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Append inserts one activity record, assigning its id and timestamp.
func (r *ActivityRepository) Append(userID int64, category, itemID, activity string, score *int) (*models.ActivityRecord, error) {
	now := time.Now()

	id, err := r.db.ExecReturningID(
		`INSERT INTO activities (user_id, category, item_id, activity, score, timestamp)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		userID, category, itemID, activity, score, now,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to append activity: %w", err)
	}

	return &models.ActivityRecord{
		ID:        id,
		UserID:    userID,
		Category:  category,
		ItemID:    itemID,
		Activity:  activity,
		Score:     score,
		Timestamp: now,
	}, nil
}

// Recent retrieves up to limit activities for a user, newest first.
// Records sharing a timestamp keep insertion order via the id tie-break.
func (r *ActivityRepository) Recent(userID int64, limit int) ([]models.ActivityRecord, error) {
	if limit <= 0 {
		limit = DefaultActivityLimit
	}

	rows, err := r.db.Query(
		`SELECT id, user_id, category, item_id, activity, score, timestamp
		 FROM activities
		 WHERE user_id = ?
		 ORDER BY timestamp DESC, id DESC
		 LIMIT ?`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	defer rows.Close()

	var records []models.ActivityRecord
	for rows.Next() {
		var record models.ActivityRecord
		var score sql.NullInt64

		err := rows.Scan(
			&record.ID,
			&record.UserID,
			&record.Category,
			&record.ItemID,
			&record.Activity,
			&score,
			&record.Timestamp,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}

		if score.Valid {
			v := int(score.Int64)
			record.Score = &v
		}
		records = append(records, record)
	}

	return records, rows.Err()
}
