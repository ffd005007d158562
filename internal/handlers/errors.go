package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"kidlearn/internal/quiz"
	"kidlearn/internal/service"
	"kidlearn/internal/validation"
)

type errorResponse struct {
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Message: message})
}

// respondError maps known errors onto the API status taxonomy. Anything
// unrecognized is logged and reported as a 500 without leaking details.
func respondError(w http.ResponseWriter, err error) {
	var validationErr validation.ValidationError
	if errors.As(err, &validationErr) {
		respondMessage(w, http.StatusBadRequest, validationErr.Error())
		return
	}

	switch {
	case errors.Is(err, service.ErrUnknownCategory),
		errors.Is(err, service.ErrUnknownItem),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, quiz.ErrInvalidCategory),
		errors.Is(err, quiz.ErrUnknownItem):
		respondMessage(w, http.StatusNotFound, err.Error())

	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrUnknownChild),
		errors.Is(err, service.ErrSessionNotFound),
		errors.Is(err, service.ErrSessionExpired):
		respondMessage(w, http.StatusUnauthorized, err.Error())

	case errors.Is(err, service.ErrForbidden):
		respondMessage(w, http.StatusForbidden, err.Error())

	case errors.Is(err, service.ErrUsernameTaken),
		errors.Is(err, service.ErrInvalidScore):
		respondMessage(w, http.StatusBadRequest, err.Error())

	default:
		log.Printf("Internal error: %v", err)
		respondMessage(w, http.StatusInternalServerError, "internal server error")
	}
}

// decodeJSON reads a JSON request body into dst
func decodeJSON(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return validation.ValidationError{Field: "body", Message: "invalid JSON body"}
	}
	return nil
}
