package models

import "time"

// ProgressRecord tracks per-item completion for a user. There is at most
// one record per (UserID, Category, ItemID); repeated completions update
// the existing record in place.
type ProgressRecord struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	Category    string    `json:"category"`
	ItemID      string    `json:"itemId"`
	Completed   bool      `json:"completed"`
	Score       *int      `json:"score"`
	CompletedAt time.Time `json:"completedAt"`
}

// CategorySummary aggregates completion for one category.
type CategorySummary struct {
	Category       string `json:"category"`
	CompletedItems int    `json:"completedItems"`
	TotalItems     int    `json:"totalItems"`
	Percent        int    `json:"percent"`
}
