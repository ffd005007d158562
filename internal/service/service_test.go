package service

import (
	"path/filepath"
	"testing"
	"time"

	"kidlearn/internal/content"
	"kidlearn/internal/database"
	"kidlearn/internal/repository"
	"kidlearn/internal/security"
)

// testEnv bundles a migrated throwaway database with the services
// wired the same way cmd/server does it.
type testEnv struct {
	db        *database.DB
	users     *repository.UserRepository
	auth      *AuthService
	directory *DirectoryService
	learning  *LearningService
	backup    *BackupService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := database.Initialize(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	users := repository.NewUserRepository(db)
	progress := repository.NewProgressRepository(db)
	activities := repository.NewActivityRepository(db)
	tokens := security.NewChildTokenIssuer("test-secret", time.Hour)

	return &testEnv{
		db:        db,
		users:     users,
		auth:      NewAuthService(users, tokens, time.Hour),
		directory: NewDirectoryService(users),
		learning:  NewLearningService(content.Default(), progress, activities, users),
		backup:    NewBackupService(db),
	}
}

func (env *testEnv) seed(t *testing.T) {
	t.Helper()
	if err := env.directory.SeedDefaultAccounts(); err != nil {
		t.Fatalf("SeedDefaultAccounts failed: %v", err)
	}
}
