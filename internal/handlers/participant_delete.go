package handlers

//go:generate mockgen -source=participant_delete.go -destination=mock_participant_delete_test.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-trial-participants/internal/middlewares"
)

// ParticipantDeleter defines the interface that the service must implement.
type ParticipantDeleter interface {
	Delete(ctx context.Context, userID, id int64) error
}

// NewDeleteParticipantHandler returns an HTTP handler removing a participant.
// @Summary Delete participant
// @Tags participants
// @Produce json
// @Param id path int true "Participant id"
// @Success 200 {object} handlers.MessageResponse "Participant deleted"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Participant not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /participants/{id} [delete]
// @Security BearerAuth
func NewDeleteParticipantHandler(svc ParticipantDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := participantID(r)
		if !ok {
			writeError(w, http.StatusNotFound, msgParticipantNotFound)
			return
		}
		userID, _ := middlewares.GetUserIDFromContext(r.Context())

		if err := svc.Delete(r.Context(), userID, id); err != nil {
			writeParticipantError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Participant deleted"})
	}
}
