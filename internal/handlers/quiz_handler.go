package handlers

import (
	"net/http"

	"kidlearn/internal/quiz"
)

// QuizHandler serves generated quiz questions
type QuizHandler struct {
	generator *quiz.Generator
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(generator *quiz.Generator) *QuizHandler {
	return &QuizHandler{generator: generator}
}

// ForCategory handles GET /api/quiz/{category}
func (h *QuizHandler) ForCategory(w http.ResponseWriter, r *http.Request) {
	questions, err := h.generator.ForCategory(r.PathValue("category"))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, questions)
}

// ForItem handles GET /api/quiz/{category}/{item}
func (h *QuizHandler) ForItem(w http.ResponseWriter, r *http.Request) {
	questions, err := h.generator.ForItem(r.PathValue("category"), r.PathValue("item"))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, questions)
}
