package handlers

//go:generate mockgen -source=participant_update.go -destination=mock_participant_update_test.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-trial-participants/internal/logger"
	"github.com/sbilibin2017/gw-trial-participants/internal/middlewares"
	"github.com/sbilibin2017/gw-trial-participants/internal/models"
	"github.com/sbilibin2017/gw-trial-participants/internal/validation"
)

// ParticipantUpdater defines the interface that the service must implement.
type ParticipantUpdater interface {
	Get(ctx context.Context, id int64) (*models.Participant, error)
	Update(ctx context.Context, userID, id int64, in models.ParticipantInput) (*models.Participant, error)
}

// NewUpdateParticipantHandler returns an HTTP handler replacing a participant.
// @Summary Update participant
// @Description Full replacement of every field except id and participant_id.
// @Tags participants
// @Accept json
// @Produce json
// @Param id path int true "Participant id"
// @Param participant body models.ParticipantInput true "Participant"
// @Success 200 {object} models.Participant
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Participant not found"
// @Failure 409 {object} handlers.ErrorResponse "Subject ID already exists"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /participants/{id} [put]
// @Security BearerAuth
func NewUpdateParticipantHandler(svc ParticipantUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := participantID(r)
		if !ok {
			writeError(w, http.StatusNotFound, msgParticipantNotFound)
			return
		}
		userID, _ := middlewares.GetUserIDFromContext(r.Context())

		var in models.ParticipantInput
		if err := validation.DecodeJSON(r.Body, &in); err != nil {
			// A missing participant is reported ahead of a bad body.
			if _, getErr := svc.Get(r.Context(), id); getErr != nil {
				writeParticipantError(w, getErr)
				return
			}
			logger.Log.Warnw("participant update validation error", "id", id, "err", err)
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		p, err := svc.Update(r.Context(), userID, id, in)
		if err != nil {
			writeParticipantError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, p)
	}
}
