package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-trial-participants/internal/logger"
	"github.com/sbilibin2017/gw-trial-participants/internal/services"
	"github.com/sbilibin2017/gw-trial-participants/internal/validation"
)

const msgInternalError = "Internal server error"

// ErrorResponse is the body of every failed request.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// MessageResponse is a plain confirmation body.
// swagger:model MessageResponse
type MessageResponse struct {
	// default: Participant deleted
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

func writeInternalError(w http.ResponseWriter, err error) {
	logger.Log.Errorw("internal server error", "err", err)
	writeError(w, http.StatusInternalServerError, msgInternalError)
}

// participantID parses the {id} URL parameter.
func participantID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

const msgParticipantNotFound = "Participant not found"

// writeParticipantError maps participant service errors to responses.
func writeParticipantError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, validation.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrParticipantNotFound):
		writeError(w, http.StatusNotFound, msgParticipantNotFound)
	case errors.Is(err, services.ErrSubjectIDAlreadyExists):
		writeError(w, http.StatusConflict, "Subject ID already exists")
	case errors.Is(err, services.ErrParticipantIDAlreadyExists):
		writeError(w, http.StatusConflict, "Participant ID already exists")
	default:
		writeInternalError(w, err)
	}
}
