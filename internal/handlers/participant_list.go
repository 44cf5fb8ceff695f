package handlers

//go:generate mockgen -source=participant_list.go -destination=mock_participant_list_test.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-trial-participants/internal/models"
)

// ParticipantLister defines the interface that the service must implement.
type ParticipantLister interface {
	List(ctx context.Context) ([]models.Participant, error)
}

// NewListParticipantsHandler returns an HTTP handler listing all participants.
// @Summary List participants
// @Tags participants
// @Produce json
// @Success 200 {array} models.Participant
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /participants [get]
// @Security BearerAuth
func NewListParticipantsHandler(svc ParticipantLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		participants, err := svc.List(r.Context())
		if err != nil {
			writeInternalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, participants)
	}
}
