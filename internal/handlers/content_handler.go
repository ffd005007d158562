package handlers

import (
	"net/http"

	"kidlearn/internal/content"
)

// ContentHandler serves the static learning catalog
type ContentHandler struct {
	catalog *content.Catalog
}

// NewContentHandler creates a new content handler
func NewContentHandler(catalog *content.Catalog) *ContentHandler {
	return &ContentHandler{catalog: catalog}
}

// Items handles GET /api/content/{category}
func (h *ContentHandler) Items(w http.ResponseWriter, r *http.Request) {
	category := r.PathValue("category")
	if !h.catalog.Exists(category) {
		respondMessage(w, http.StatusNotFound, "unknown category")
		return
	}

	respondJSON(w, http.StatusOK, h.catalog.Items(category))
}

// Lesson handles GET /api/lessons/{category}/{item}
func (h *ContentHandler) Lesson(w http.ResponseWriter, r *http.Request) {
	category := r.PathValue("category")
	item := r.PathValue("item")

	lesson, ok := h.catalog.Lesson(category, item)
	if !ok {
		respondMessage(w, http.StatusNotFound, "unknown category or item")
		return
	}

	respondJSON(w, http.StatusOK, lesson)
}
