package service

import (
	"path/filepath"
	"testing"

	"kidlearn/internal/content"
)

func TestBackupRoundTrip(t *testing.T) {
	source := newTestEnv(t)
	source.seed(t)

	blue, _ := source.users.GetByUsername("blue")
	if _, err := source.learning.CompleteLesson(blue.ID, content.CategoryAlphabets, "A"); err != nil {
		t.Fatalf("CompleteLesson failed: %v", err)
	}
	if _, err := source.learning.CompleteQuiz(blue.ID, content.CategoryNumbers, "7", 2); err != nil {
		t.Fatalf("CompleteQuiz failed: %v", err)
	}

	backupPath := filepath.Join(t.TempDir(), "backup.json")
	if err := source.backup.Export(backupPath); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	target := newTestEnv(t)
	if err := target.backup.Import(backupPath, false); err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	count, err := target.users.CountUsers()
	if err != nil {
		t.Fatalf("CountUsers failed: %v", err)
	}
	if count != 4 {
		t.Errorf("expected 4 imported accounts, got %d", count)
	}

	importedBlue, err := target.users.GetByUsername("blue")
	if err != nil || importedBlue == nil {
		t.Fatalf("imported child missing: %v", err)
	}

	records, err := target.learning.ProgressFor(importedBlue, importedBlue.ID, "")
	if err != nil {
		t.Fatalf("ProgressFor failed: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("expected 2 imported progress records, got %d", len(records))
	}

	activities, err := target.learning.ActivitiesFor(importedBlue, importedBlue.ID, 0)
	if err != nil {
		t.Fatalf("ActivitiesFor failed: %v", err)
	}
	if len(activities) != 2 {
		t.Errorf("expected 2 imported activities, got %d", len(activities))
	}
}

func TestImportIsIdempotent(t *testing.T) {
	source := newTestEnv(t)
	source.seed(t)

	blue, _ := source.users.GetByUsername("blue")
	if _, err := source.learning.CompleteLesson(blue.ID, content.CategoryAlphabets, "A"); err != nil {
		t.Fatalf("CompleteLesson failed: %v", err)
	}

	backupPath := filepath.Join(t.TempDir(), "backup.json")
	if err := source.backup.Export(backupPath); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	target := newTestEnv(t)
	if err := target.backup.Import(backupPath, false); err != nil {
		t.Fatalf("first Import failed: %v", err)
	}
	if err := target.backup.Import(backupPath, false); err != nil {
		t.Fatalf("second Import failed: %v", err)
	}

	count, err := target.users.CountUsers()
	if err != nil {
		t.Fatalf("CountUsers failed: %v", err)
	}
	if count != 4 {
		t.Errorf("expected 4 accounts after repeated import, got %d", count)
	}

	importedBlue, _ := target.users.GetByUsername("blue")
	records, err := target.learning.ProgressFor(importedBlue, importedBlue.ID, "")
	if err != nil {
		t.Fatalf("ProgressFor failed: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("expected 1 progress record after repeated import, got %d", len(records))
	}

	activities, err := target.learning.ActivitiesFor(importedBlue, importedBlue.ID, 0)
	if err != nil {
		t.Fatalf("ActivitiesFor failed: %v", err)
	}
	if len(activities) != 1 {
		t.Errorf("expected 1 activity after repeated import, got %d", len(activities))
	}
}

func TestImportWithClear(t *testing.T) {
	source := newTestEnv(t)
	source.seed(t)

	backupPath := filepath.Join(t.TempDir(), "backup.json")
	if err := source.backup.Export(backupPath); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	target := newTestEnv(t)
	target.seed(t)

	other, err := target.directory.CreateChild(1, "Extra", "yellow", "")
	if err != nil {
		t.Fatalf("CreateChild failed: %v", err)
	}

	if err := target.backup.Import(backupPath, true); err != nil {
		t.Fatalf("Import with clear failed: %v", err)
	}

	count, err := target.users.CountUsers()
	if err != nil {
		t.Fatalf("CountUsers failed: %v", err)
	}
	if count != 4 {
		t.Errorf("expected only the 4 backed-up accounts, got %d", count)
	}

	stale, err := target.users.GetByUsername(other.Username)
	if err != nil {
		t.Fatalf("GetByUsername failed: %v", err)
	}
	if stale != nil {
		t.Errorf("account created before the clearing import survived: %+v", stale)
	}
}
