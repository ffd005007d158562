package service

import (
	"errors"
	"fmt"
	"math"

	"kidlearn/internal/content"
	"kidlearn/internal/models"
	"kidlearn/internal/repository"
)

var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrUnknownItem     = errors.New("unknown item")
	ErrInvalidScore    = errors.New("score out of range")
	ErrForbidden       = errors.New("not allowed to access this account")
)

// CategoryQuizItemID is the item id recorded for category-wide quizzes,
// which are not tied to a single catalog item.
const CategoryQuizItemID = "quiz"

// LearningService orchestrates lesson and quiz completion: one progress
// upsert plus one activity append per completion, both validated
// against the content catalog.
type LearningService struct {
	catalog      *content.Catalog
	progressRepo *repository.ProgressRepository
	activityRepo *repository.ActivityRepository
	userRepo     *repository.UserRepository
}

// NewLearningService creates a new learning service
func NewLearningService(catalog *content.Catalog, progressRepo *repository.ProgressRepository, activityRepo *repository.ActivityRepository, userRepo *repository.UserRepository) *LearningService {
	return &LearningService{
		catalog:      catalog,
		progressRepo: progressRepo,
		activityRepo: activityRepo,
		userRepo:     userRepo,
	}
}

// CompleteLesson records that the user finished the lesson for one item
func (s *LearningService) CompleteLesson(userID int64, category, itemID string) (*models.ProgressRecord, error) {
	if !s.catalog.Exists(category) {
		return nil, ErrUnknownCategory
	}
	if !s.catalog.Contains(category, itemID) {
		return nil, ErrUnknownItem
	}

	record, err := s.progressRepo.Upsert(userID, category, itemID, true, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to record lesson progress: %w", err)
	}

	if _, err := s.activityRepo.Append(userID, category, itemID, models.ActivityLesson, nil); err != nil {
		return nil, fmt.Errorf("failed to log lesson activity: %w", err)
	}

	return record, nil
}

// CompleteQuiz records a quiz result. An empty itemID means a
// category-wide quiz, stored under CategoryQuizItemID.
func (s *LearningService) CompleteQuiz(userID int64, category, itemID string, score int) (*models.ProgressRecord, error) {
	if !s.catalog.Exists(category) {
		return nil, ErrUnknownCategory
	}
	if itemID == "" {
		itemID = CategoryQuizItemID
	}
	if itemID != CategoryQuizItemID && !s.catalog.Contains(category, itemID) {
		return nil, ErrUnknownItem
	}
	if score < 0 {
		return nil, ErrInvalidScore
	}

	record, err := s.progressRepo.Upsert(userID, category, itemID, true, &score)
	if err != nil {
		return nil, fmt.Errorf("failed to record quiz progress: %w", err)
	}

	if _, err := s.activityRepo.Append(userID, category, itemID, models.ActivityQuiz, &score); err != nil {
		return nil, fmt.Errorf("failed to log quiz activity: %w", err)
	}

	return record, nil
}

// CanAccess checks whether caller may read targetID's learning data.
// Everyone may read their own; parents may read their own children.
func (s *LearningService) CanAccess(caller *models.User, targetID int64) error {
	if caller.ID == targetID {
		return nil
	}
	if !caller.IsParent {
		return ErrForbidden
	}

	target, err := s.userRepo.GetByID(targetID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if target == nil {
		return ErrUserNotFound
	}
	if !target.IsChildOf(caller.ID) {
		return ErrForbidden
	}
	return nil
}

// ProgressFor retrieves progress records for targetID on behalf of
// caller, optionally filtered to one category.
func (s *LearningService) ProgressFor(caller *models.User, targetID int64, category string) ([]models.ProgressRecord, error) {
	if err := s.CanAccess(caller, targetID); err != nil {
		return nil, err
	}
	if category != "" && !s.catalog.Exists(category) {
		return nil, ErrUnknownCategory
	}

	records, err := s.progressRepo.GetForUser(targetID, category)
	if err != nil {
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}
	return records, nil
}

// ActivitiesFor retrieves recent activities for targetID on behalf of caller
func (s *LearningService) ActivitiesFor(caller *models.User, targetID int64, limit int) ([]models.ActivityRecord, error) {
	if err := s.CanAccess(caller, targetID); err != nil {
		return nil, err
	}

	records, err := s.activityRepo.Recent(targetID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get activities: %w", err)
	}
	return records, nil
}

// Summary computes per-category completion for the dashboard. Only
// catalog items count toward the percentage; category-wide quiz records
// are excluded.
func (s *LearningService) Summary(userID int64) ([]models.CategorySummary, error) {
	records, err := s.progressRepo.GetForUser(userID, "")
	if err != nil {
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}

	completed := make(map[string]map[string]bool)
	for _, record := range records {
		if !record.Completed || !s.catalog.Contains(record.Category, record.ItemID) {
			continue
		}
		if completed[record.Category] == nil {
			completed[record.Category] = make(map[string]bool)
		}
		completed[record.Category][record.ItemID] = true
	}

	var summaries []models.CategorySummary
	for _, category := range s.catalog.Categories() {
		total := s.catalog.Count(category)
		done := len(completed[category])

		percent := 0
		if total > 0 {
			percent = int(math.Round(float64(done) / float64(total) * 100))
		}

		summaries = append(summaries, models.CategorySummary{
			Category:       category,
			CompletedItems: done,
			TotalItems:     total,
			Percent:        percent,
		})
	}

	return summaries, nil
}
