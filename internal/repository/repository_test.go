package repository

import (
	"path/filepath"
	"testing"

	"kidlearn/internal/database"
	"kidlearn/internal/models"
)

// newTestDB opens a throwaway SQLite database with all migrations applied.
func newTestDB(t *testing.T) *database.DB {
	t.Helper()

	db, err := database.Initialize(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}

func createTestParent(t *testing.T, users *UserRepository, username string) *models.User {
	t.Helper()

	parent, err := users.CreateUser(&models.User{
		Username:     username,
		PasswordHash: "hash",
		IsParent:     true,
	})
	if err != nil {
		t.Fatalf("Failed to create parent: %v", err)
	}
	return parent
}

func createTestChild(t *testing.T, users *UserRepository, parentID int64, avatar string) *models.User {
	t.Helper()

	child, err := users.CreateUser(&models.User{
		Username:    avatar,
		ChildName:   avatar,
		ChildAvatar: avatar,
		ParentID:    &parentID,
	})
	if err != nil {
		t.Fatalf("Failed to create child: %v", err)
	}
	return child
}
