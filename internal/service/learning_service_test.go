package service

import (
	"testing"

	"kidlearn/internal/content"
	"kidlearn/internal/models"
)

func TestCompleteLesson(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t)

	blue, _ := env.users.GetByUsername("blue")

	record, err := env.learning.CompleteLesson(blue.ID, content.CategoryAlphabets, "A")
	if err != nil {
		t.Fatalf("CompleteLesson failed: %v", err)
	}
	if !record.Completed || record.Score != nil {
		t.Errorf("lesson record should be completed without a score: %+v", record)
	}

	activities, err := env.learning.ActivitiesFor(blue, blue.ID, 0)
	if err != nil {
		t.Fatalf("ActivitiesFor failed: %v", err)
	}
	if len(activities) != 1 {
		t.Fatalf("expected 1 activity, got %d", len(activities))
	}
	if activities[0].Activity != models.ActivityLesson || activities[0].ItemID != "A" {
		t.Errorf("activity is %+v, want lesson on A", activities[0])
	}
}

func TestCompleteLessonTwiceKeepsOneRecord(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t)

	blue, _ := env.users.GetByUsername("blue")

	if _, err := env.learning.CompleteLesson(blue.ID, content.CategoryAlphabets, "A"); err != nil {
		t.Fatalf("CompleteLesson failed: %v", err)
	}
	if _, err := env.learning.CompleteLesson(blue.ID, content.CategoryAlphabets, "A"); err != nil {
		t.Fatalf("CompleteLesson failed: %v", err)
	}

	records, err := env.learning.ProgressFor(blue, blue.ID, "")
	if err != nil {
		t.Fatalf("ProgressFor failed: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("expected 1 progress record, got %d", len(records))
	}

	// The activity log keeps both completions.
	activities, err := env.learning.ActivitiesFor(blue, blue.ID, 0)
	if err != nil {
		t.Fatalf("ActivitiesFor failed: %v", err)
	}
	if len(activities) != 2 {
		t.Errorf("expected 2 activities, got %d", len(activities))
	}
}

func TestCompleteQuiz(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t)

	blue, _ := env.users.GetByUsername("blue")

	record, err := env.learning.CompleteQuiz(blue.ID, content.CategoryNumbers, "7", 3)
	if err != nil {
		t.Fatalf("CompleteQuiz failed: %v", err)
	}
	if record.Score == nil || *record.Score != 3 {
		t.Errorf("quiz record lost its score: %+v", record)
	}

	activities, err := env.learning.ActivitiesFor(blue, blue.ID, 0)
	if err != nil {
		t.Fatalf("ActivitiesFor failed: %v", err)
	}
	if len(activities) != 1 || activities[0].Activity != models.ActivityQuiz {
		t.Fatalf("expected one quiz activity, got %+v", activities)
	}
	if activities[0].Score == nil || *activities[0].Score != 3 {
		t.Errorf("quiz activity lost its score: %+v", activities[0])
	}
}

func TestCompleteQuizCategoryWide(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t)

	blue, _ := env.users.GetByUsername("blue")

	record, err := env.learning.CompleteQuiz(blue.ID, content.CategoryShapes, "", 4)
	if err != nil {
		t.Fatalf("CompleteQuiz failed: %v", err)
	}
	if record.ItemID != CategoryQuizItemID {
		t.Errorf("category-wide quiz stored under %q, want %q", record.ItemID, CategoryQuizItemID)
	}
}

func TestCompleteValidation(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t)

	blue, _ := env.users.GetByUsername("blue")

	if _, err := env.learning.CompleteLesson(blue.ID, "colors", "red"); err != ErrUnknownCategory {
		t.Errorf("unknown category: err = %v, want ErrUnknownCategory", err)
	}
	if _, err := env.learning.CompleteLesson(blue.ID, content.CategoryShapes, "cube"); err != ErrUnknownItem {
		t.Errorf("unknown item: err = %v, want ErrUnknownItem", err)
	}
	if _, err := env.learning.CompleteQuiz(blue.ID, content.CategoryNumbers, "7", -1); err != ErrInvalidScore {
		t.Errorf("negative score: err = %v, want ErrInvalidScore", err)
	}
}

func TestAccessControl(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t)

	parent, _ := env.users.GetByUsername("parent")
	blue, _ := env.users.GetByUsername("blue")
	red, _ := env.users.GetByUsername("red")

	if _, err := env.learning.CompleteLesson(blue.ID, content.CategoryAlphabets, "A"); err != nil {
		t.Fatalf("CompleteLesson failed: %v", err)
	}

	// Parent may read its own child.
	records, err := env.learning.ProgressFor(parent, blue.ID, "")
	if err != nil {
		t.Fatalf("parent reading child progress failed: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("expected 1 record, got %d", len(records))
	}

	// A sibling may not read another child's data.
	if _, err := env.learning.ProgressFor(red, blue.ID, ""); err != ErrForbidden {
		t.Errorf("sibling access: err = %v, want ErrForbidden", err)
	}
	if _, err := env.learning.ActivitiesFor(red, blue.ID, 0); err != ErrForbidden {
		t.Errorf("sibling activity access: err = %v, want ErrForbidden", err)
	}

	// Unknown target.
	if err := env.learning.CanAccess(parent, 9999); err != ErrUserNotFound {
		t.Errorf("unknown target: err = %v, want ErrUserNotFound", err)
	}
}

func TestSummary(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t)

	blue, _ := env.users.GetByUsername("blue")

	for _, item := range []string{"circle", "square", "star"} {
		if _, err := env.learning.CompleteLesson(blue.ID, content.CategoryShapes, item); err != nil {
			t.Fatalf("CompleteLesson(%s) failed: %v", item, err)
		}
	}
	// Category-wide quiz records do not count toward item completion.
	if _, err := env.learning.CompleteQuiz(blue.ID, content.CategoryShapes, "", 5); err != nil {
		t.Fatalf("CompleteQuiz failed: %v", err)
	}

	summaries, err := env.learning.Summary(blue.ID)
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	if len(summaries) != 3 {
		t.Fatalf("expected 3 category summaries, got %d", len(summaries))
	}

	byCategory := make(map[string]int)
	for _, s := range summaries {
		byCategory[s.Category] = s.Percent
		if s.Category == content.CategoryShapes {
			if s.CompletedItems != 3 || s.TotalItems != 10 {
				t.Errorf("shapes summary = %+v, want 3 of 10", s)
			}
		}
	}
	if byCategory[content.CategoryShapes] != 30 {
		t.Errorf("shapes percent = %d, want 30", byCategory[content.CategoryShapes])
	}
	if byCategory[content.CategoryAlphabets] != 0 {
		t.Errorf("alphabets percent = %d, want 0", byCategory[content.CategoryAlphabets])
	}
}
