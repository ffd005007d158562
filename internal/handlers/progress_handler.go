package handlers

import (
	"net/http"
	"strconv"

	"kidlearn/internal/models"
	"kidlearn/internal/service"
	"kidlearn/internal/validation"
)

// ProgressHandler records completions and serves progress and activity
// data for the authenticated account.
type ProgressHandler struct {
	learningService *service.LearningService
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(learningService *service.LearningService) *ProgressHandler {
	return &ProgressHandler{learningService: learningService}
}

// CompleteLesson handles POST /api/progress/lesson
func (h *ProgressHandler) CompleteLesson(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Category string `json:"category"`
		ItemID   string `json:"itemId"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	user := GetUserFromContext(r.Context())

	record, err := h.learningService.CompleteLesson(user.ID, req.Category, req.ItemID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, record)
}

// CompleteQuiz handles POST /api/progress/quiz. An omitted itemId means
// a category-wide quiz.
func (h *ProgressHandler) CompleteQuiz(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Category string `json:"category"`
		ItemID   string `json:"itemId"`
		Score    int    `json:"score"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	user := GetUserFromContext(r.Context())

	record, err := h.learningService.CompleteQuiz(user.ID, req.Category, req.ItemID, req.Score)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, record)
}

// Progress handles GET /api/progress with optional category and userId
// query parameters.
func (h *ProgressHandler) Progress(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	targetID, err := targetUserID(r, user.ID)
	if err != nil {
		respondError(w, err)
		return
	}

	records, err := h.learningService.ProgressFor(user, targetID, r.URL.Query().Get("category"))
	if err != nil {
		respondError(w, err)
		return
	}
	if records == nil {
		records = []models.ProgressRecord{}
	}

	respondJSON(w, http.StatusOK, records)
}

// Activities handles GET /api/activities with optional limit and userId
// query parameters.
func (h *ProgressHandler) Activities(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	targetID, err := targetUserID(r, user.ID)
	if err != nil {
		respondError(w, err)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, validation.ValidationError{Field: "limit", Message: "limit must be a number"})
			return
		}
		limit = parsed
	}

	records, err := h.learningService.ActivitiesFor(user, targetID, limit)
	if err != nil {
		respondError(w, err)
		return
	}
	if records == nil {
		records = []models.ActivityRecord{}
	}

	respondJSON(w, http.StatusOK, records)
}

// targetUserID resolves the optional userId query parameter, defaulting
// to the caller's own id.
func targetUserID(r *http.Request, fallback int64) (int64, error) {
	raw := r.URL.Query().Get("userId")
	if raw == "" {
		return fallback, nil
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, validation.ValidationError{Field: "userId", Message: "userId must be a number"}
	}
	return id, nil
}
