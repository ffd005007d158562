package service

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"kidlearn/internal/database"
)

// BackupData represents the complete database backup structure
type BackupData struct {
	Version    string           `json:"version"`
	ExportedAt time.Time        `json:"exported_at"`
	Users      []UserBackup     `json:"users"`
	Progress   []ProgressBackup `json:"progress"`
	Activities []ActivityBackup `json:"activities"`
}

// UserBackup represents an account record for backup
type UserBackup struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"password_hash"`
	IsParent     bool      `json:"is_parent"`
	ChildName    string    `json:"child_name"`
	ChildAvatar  string    `json:"child_avatar"`
	ParentID     *int64    `json:"parent_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// ProgressBackup represents a progress record for backup
type ProgressBackup struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Category    string    `json:"category"`
	ItemID      string    `json:"item_id"`
	Completed   bool      `json:"completed"`
	Score       *int      `json:"score"`
	CompletedAt time.Time `json:"completed_at"`
}

// ActivityBackup represents an activity record for backup
type ActivityBackup struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Category  string    `json:"category"`
	ItemID    string    `json:"item_id"`
	Activity  string    `json:"activity"`
	Score     *int      `json:"score"`
	Timestamp time.Time `json:"timestamp"`
}

// BackupService handles database backup and restore operations
type BackupService struct {
	db *database.DB
}

// NewBackupService creates a new backup service
func NewBackupService(db *database.DB) *BackupService {
	return &BackupService{db: db}
}

// Export creates a complete backup of the learning data to a file
func (s *BackupService) Export(outputPath string) error {
	log.Println("Starting database export...")

	backup := &BackupData{
		Version:    "1.0",
		ExportedAt: time.Now(),
	}

	if err := s.exportUsers(backup); err != nil {
		return fmt.Errorf("failed to export users: %w", err)
	}
	if err := s.exportProgress(backup); err != nil {
		return fmt.Errorf("failed to export progress: %w", err)
	}
	if err := s.exportActivities(backup); err != nil {
		return fmt.Errorf("failed to export activities: %w", err)
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(backup); err != nil {
		return fmt.Errorf("failed to encode backup: %w", err)
	}

	log.Printf("Database exported successfully to %s", outputPath)
	log.Printf("Exported: %d users, %d progress records, %d activities",
		len(backup.Users), len(backup.Progress), len(backup.Activities))

	return nil
}

// Import restores learning data from a backup file. With clearExisting
// the current data is removed first; otherwise users are matched by
// username and progress by its (user, category, item) key, so importing
// the same file twice never duplicates records.
func (s *BackupService) Import(inputPath string, clearExisting bool) error {
	log.Printf("Starting database import from %s...", inputPath)

	file, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	var backup BackupData
	if err := json.NewDecoder(file).Decode(&backup); err != nil {
		return fmt.Errorf("failed to decode backup: %w", err)
	}

	log.Printf("Backup version: %s, exported at: %s", backup.Version, backup.ExportedAt)

	if clearExisting {
		if err := s.clearAll(); err != nil {
			return fmt.Errorf("failed to clear existing data: %w", err)
		}
	}

	// Users first; progress and activities reference them by id.
	idMap, err := s.importUsers(backup.Users)
	if err != nil {
		return fmt.Errorf("failed to import users: %w", err)
	}
	if err := s.importProgress(backup.Progress, idMap); err != nil {
		return fmt.Errorf("failed to import progress: %w", err)
	}
	if err := s.importActivities(backup.Activities, idMap); err != nil {
		return fmt.Errorf("failed to import activities: %w", err)
	}

	log.Println("Database import completed successfully")
	return nil
}

func (s *BackupService) clearAll() error {
	// Children reference parents, so users go last.
	for _, table := range []string{"activities", "progress", "sessions", "users"} {
		if _, err := s.db.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return nil
}

func (s *BackupService) exportUsers(backup *BackupData) error {
	query := "SELECT id, username, password_hash, is_parent, child_name, child_avatar, parent_id, created_at FROM users ORDER BY id"
	rows, err := s.db.Query(query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var u UserBackup
		var parentID sql.NullInt64
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.IsParent, &u.ChildName, &u.ChildAvatar, &parentID, &u.CreatedAt); err != nil {
			return err
		}
		if parentID.Valid {
			u.ParentID = &parentID.Int64
		}
		backup.Users = append(backup.Users, u)
	}
	return rows.Err()
}

func (s *BackupService) exportProgress(backup *BackupData) error {
	query := "SELECT id, user_id, category, item_id, completed, score, completed_at FROM progress ORDER BY id"
	rows, err := s.db.Query(query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var p ProgressBackup
		var score sql.NullInt64
		if err := rows.Scan(&p.ID, &p.UserID, &p.Category, &p.ItemID, &p.Completed, &score, &p.CompletedAt); err != nil {
			return err
		}
		if score.Valid {
			v := int(score.Int64)
			p.Score = &v
		}
		backup.Progress = append(backup.Progress, p)
	}
	return rows.Err()
}

func (s *BackupService) exportActivities(backup *BackupData) error {
	query := "SELECT id, user_id, category, item_id, activity, score, timestamp FROM activities ORDER BY id"
	rows, err := s.db.Query(query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var a ActivityBackup
		var score sql.NullInt64
		if err := rows.Scan(&a.ID, &a.UserID, &a.Category, &a.ItemID, &a.Activity, &score, &a.Timestamp); err != nil {
			return err
		}
		if score.Valid {
			v := int(score.Int64)
			a.Score = &v
		}
		backup.Activities = append(backup.Activities, a)
	}
	return rows.Err()
}

// importUsers inserts accounts and returns a mapping from backup user
// ids to database ids. Existing usernames are reused rather than
// duplicated. Parents are imported before children so parent references
// always resolve.
func (s *BackupService) importUsers(users []UserBackup) (map[int64]int64, error) {
	idMap := make(map[int64]int64, len(users))

	var ordered []UserBackup
	for _, u := range users {
		if u.ParentID == nil {
			ordered = append(ordered, u)
		}
	}
	for _, u := range users {
		if u.ParentID != nil {
			ordered = append(ordered, u)
		}
	}

	for _, u := range ordered {
		var existingID int64
		err := s.db.QueryRow("SELECT id FROM users WHERE username = ?", u.Username).Scan(&existingID)
		switch {
		case err == nil:
			idMap[u.ID] = existingID
			continue
		case err != sql.ErrNoRows:
			return nil, err
		}

		var parentID interface{}
		if u.ParentID != nil {
			mapped, ok := idMap[*u.ParentID]
			if !ok {
				return nil, fmt.Errorf("user %s references unknown parent %d", u.Username, *u.ParentID)
			}
			parentID = mapped
		}

		newID, err := s.db.ExecReturningID(
			"INSERT INTO users (username, password_hash, is_parent, child_name, child_avatar, parent_id, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
			u.Username, u.PasswordHash, u.IsParent, u.ChildName, u.ChildAvatar, parentID, u.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		idMap[u.ID] = newID
	}

	return idMap, nil
}

func (s *BackupService) importProgress(records []ProgressBackup, idMap map[int64]int64) error {
	for _, p := range records {
		userID, ok := idMap[p.UserID]
		if !ok {
			return fmt.Errorf("progress record %d references unknown user %d", p.ID, p.UserID)
		}

		var existingID int64
		err := s.db.QueryRow(
			"SELECT id FROM progress WHERE user_id = ? AND category = ? AND item_id = ?",
			userID, p.Category, p.ItemID,
		).Scan(&existingID)

		switch {
		case err == sql.ErrNoRows:
			_, err := s.db.Exec(
				"INSERT INTO progress (user_id, category, item_id, completed, score, completed_at) VALUES (?, ?, ?, ?, ?, ?)",
				userID, p.Category, p.ItemID, p.Completed, p.Score, p.CompletedAt,
			)
			if err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			_, err := s.db.Exec(
				"UPDATE progress SET completed = ?, score = ?, completed_at = ? WHERE id = ?",
				p.Completed, p.Score, p.CompletedAt, existingID,
			)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *BackupService) importActivities(records []ActivityBackup, idMap map[int64]int64) error {
	for _, a := range records {
		userID, ok := idMap[a.UserID]
		if !ok {
			return fmt.Errorf("activity record %d references unknown user %d", a.ID, a.UserID)
		}

		// The log is append-only; skip entries that are already present
		// so repeated imports stay idempotent.
		var count int
		err := s.db.QueryRow(
			"SELECT COUNT(*) FROM activities WHERE user_id = ? AND category = ? AND item_id = ? AND activity = ? AND timestamp = ?",
			userID, a.Category, a.ItemID, a.Activity, a.Timestamp,
		).Scan(&count)
		if err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		_, err = s.db.Exec(
			"INSERT INTO activities (user_id, category, item_id, activity, score, timestamp) VALUES (?, ?, ?, ?, ?, ?)",
			userID, a.Category, a.ItemID, a.Activity, a.Score, a.Timestamp,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
