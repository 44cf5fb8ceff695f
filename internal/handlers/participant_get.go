package handlers

//go:generate mockgen -source=participant_get.go -destination=mock_participant_get_test.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-trial-participants/internal/models"
)

// ParticipantGetter defines the interface that the service must implement.
type ParticipantGetter interface {
	Get(ctx context.Context, id int64) (*models.Participant, error)
}

// NewGetParticipantHandler returns an HTTP handler fetching one participant.
// @Summary Get participant
// @Tags participants
// @Produce json
// @Param id path int true "Participant id"
// @Success 200 {object} models.Participant
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Participant not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /participants/{id} [get]
// @Security BearerAuth
func NewGetParticipantHandler(svc ParticipantGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := participantID(r)
		if !ok {
			writeError(w, http.StatusNotFound, msgParticipantNotFound)
			return
		}

		p, err := svc.Get(r.Context(), id)
		if err != nil {
			writeParticipantError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, p)
	}
}
