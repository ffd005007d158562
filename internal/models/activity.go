package models

import "time"

// Activity kinds recorded in the activity log.
const (
	ActivityLesson = "lesson"
	ActivityQuiz   = "quiz"
)

// ActivityRecord is one entry in the append-only activity log. Records
// are never updated or deleted after insertion.
type ActivityRecord struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Category  string    `json:"category"`
	ItemID    string    `json:"itemId"`
	Activity  string    `json:"activity"`
	Score     *int      `json:"score"`
	Timestamp time.Time `json:"timestamp"`
}
