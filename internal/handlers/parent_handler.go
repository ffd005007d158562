package handlers

import (
	"net/http"
	"strconv"

	"kidlearn/internal/models"
	"kidlearn/internal/service"
	"kidlearn/internal/validation"
)

// ParentHandler serves the parent dashboard endpoints
type ParentHandler struct {
	directoryService *service.DirectoryService
	learningService  *service.LearningService
	reportService    *service.ReportService
}

// NewParentHandler creates a new parent handler
func NewParentHandler(directoryService *service.DirectoryService, learningService *service.LearningService, reportService *service.ReportService) *ParentHandler {
	return &ParentHandler{
		directoryService: directoryService,
		learningService:  learningService,
		reportService:    reportService,
	}
}

// Children handles GET /api/parent/children
func (h *ParentHandler) Children(w http.ResponseWriter, r *http.Request) {
	parent := GetUserFromContext(r.Context())

	children, err := h.directoryService.ChildrenOf(parent.ID)
	if err != nil {
		respondError(w, err)
		return
	}
	if children == nil {
		children = []models.User{}
	}

	respondJSON(w, http.StatusOK, children)
}

// CreateChild handles POST /api/parent/children
func (h *ParentHandler) CreateChild(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ChildName string `json:"childName"`
		Avatar    string `json:"avatar"`
		Username  string `json:"username"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	parent := GetUserFromContext(r.Context())

	child, err := h.directoryService.CreateChild(parent.ID, req.ChildName, req.Avatar, req.Username)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, child)
}

// ChildSummary handles GET /api/parent/children/{id}/summary
func (h *ParentHandler) ChildSummary(w http.ResponseWriter, r *http.Request) {
	parent := GetUserFromContext(r.Context())

	child, err := h.ownChild(parent, r.PathValue("id"))
	if err != nil {
		respondError(w, err)
		return
	}

	summaries, err := h.learningService.Summary(child.ID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, struct {
		Child      *models.User             `json:"child"`
		Categories []models.CategorySummary `json:"categories"`
	}{Child: child, Categories: summaries})
}

// SendReport handles POST /api/parent/children/{id}/report
func (h *ParentHandler) SendReport(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	if err := validation.ValidateEmail(req.Email); err != nil {
		respondError(w, err)
		return
	}

	if !h.reportService.IsEnabled() {
		respondMessage(w, http.StatusServiceUnavailable, "report emails are not configured")
		return
	}

	parent := GetUserFromContext(r.Context())

	child, err := h.ownChild(parent, r.PathValue("id"))
	if err != nil {
		respondError(w, err)
		return
	}

	summaries, err := h.learningService.Summary(child.ID)
	if err != nil {
		respondError(w, err)
		return
	}
	recent, err := h.learningService.ActivitiesFor(parent, child.ID, 0)
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.reportService.SendProgressReport(r.Context(), req.Email, child, summaries, recent); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusAccepted, errorResponse{Message: "report sent"})
}

// ownChild parses the path id and checks it names a child of parent
func (h *ParentHandler) ownChild(parent *models.User, rawID string) (*models.User, error) {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return nil, validation.ValidationError{Field: "id", Message: "child id must be a number"}
	}

	child, err := h.directoryService.UserByID(id)
	if err != nil {
		return nil, err
	}
	if !child.IsChildOf(parent.ID) {
		return nil, service.ErrForbidden
	}
	return child, nil
}
