package repository

import (
	"database/sql"
	"fmt"
	"time"

	"kidlearn/internal/database"
	"kidlearn/internal/models"
)

// UserRepository handles database operations for accounts and parent sessions
type UserRepository struct {
	db *database.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, username, password_hash, is_parent, child_name, child_avatar, parent_id, created_at`

// CreateUser inserts a new account. The id is assigned by the database.
func (r *UserRepository) CreateUser(user *models.User) (*models.User, error) {
	query := `
		INSERT INTO users (username, password_hash, is_parent, child_name, child_avatar, parent_id)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query,
		user.Username,
		user.PasswordHash,
		user.IsParent,
		user.ChildName,
		user.ChildAvatar,
		user.ParentID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return r.GetByID(id)
}

// GetByID retrieves a user by id. Returns nil, nil when no such user exists.
func (r *UserRepository) GetByID(id int64) (*models.User, error) {
	row := r.db.QueryRow(`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

// GetByUsername retrieves the user with the given username. Usernames
// are unique at the schema level; lookup returns the single match or
// nil, nil.
func (r *UserRepository) GetByUsername(username string) (*models.User, error) {
	row := r.db.QueryRow(`SELECT `+userColumns+` FROM users WHERE username = ?`, username)
	return scanUser(row)
}

// GetChildByAvatar retrieves the first child account using the given
// avatar color. Returns nil, nil when no child uses it.
func (r *UserRepository) GetChildByAvatar(avatar string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE child_avatar = ? AND parent_id IS NOT NULL ORDER BY id LIMIT 1`
	return scanUser(r.db.QueryRow(query, avatar))
}

// ChildrenOf retrieves every child account whose parent reference is parentID.
func (r *UserRepository) ChildrenOf(parentID int64) ([]models.User, error) {
	rows, err := r.db.Query(`SELECT `+userColumns+` FROM users WHERE parent_id = ? ORDER BY id`, parentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list children: %w", err)
	}
	defer rows.Close()

	var children []models.User
	for rows.Next() {
		user, err := scanUserRow(rows)
		if err != nil {
			return nil, err
		}
		children = append(children, *user)
	}

	return children, rows.Err()
}

// CountUsers returns the total number of accounts. Used by the
// bootstrap seeder to decide whether defaults are needed.
func (r *UserRepository) CountUsers() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

// CreateSession stores a new parent session
func (r *UserRepository) CreateSession(sessionID string, userID int64, expiresAt time.Time) (*models.Session, error) {
	query := `INSERT INTO sessions (id, user_id, expires_at) VALUES (?, ?, ?)`
	if _, err := r.db.Exec(query, sessionID, userID, expiresAt); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &models.Session{
		ID:        sessionID,
		UserID:    userID,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}, nil
}

// GetSession retrieves a session by id. Returns nil, nil when unknown.
func (r *UserRepository) GetSession(sessionID string) (*models.Session, error) {
	query := `SELECT id, user_id, expires_at, created_at FROM sessions WHERE id = ?`

	session := &models.Session{}
	err := r.db.QueryRow(query, sessionID).Scan(
		&session.ID,
		&session.UserID,
		&session.ExpiresAt,
		&session.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return session, nil
}

// DeleteSession removes a session
func (r *UserRepository) DeleteSession(sessionID string) error {
	_, err := r.db.Exec("DELETE FROM sessions WHERE id = ?", sessionID)
	return err
}

// DeleteExpiredSessions removes all sessions past their expiry
func (r *UserRepository) DeleteExpiredSessions() error {
	_, err := r.db.Exec("DELETE FROM sessions WHERE expires_at < ?", time.Now())
	return err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanUser(row *sql.Row) (*models.User, error) {
	user, err := scanUserFrom(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func scanUserRow(rows *sql.Rows) (*models.User, error) {
	user, err := scanUserFrom(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	return user, nil
}

func scanUserFrom(s rowScanner) (*models.User, error) {
	user := &models.User{}
	var parentID sql.NullInt64

	err := s.Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.IsParent,
		&user.ChildName,
		&user.ChildAvatar,
		&parentID,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if parentID.Valid {
		user.ParentID = &parentID.Int64
	}
	return user, nil
}
