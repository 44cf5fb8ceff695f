package handlers

//go:generate mockgen -source=participant_create.go -destination=mock_participant_create_test.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-trial-participants/internal/logger"
	"github.com/sbilibin2017/gw-trial-participants/internal/middlewares"
	"github.com/sbilibin2017/gw-trial-participants/internal/models"
	"github.com/sbilibin2017/gw-trial-participants/internal/validation"
)

// ParticipantCreator defines the interface that the service must implement.
type ParticipantCreator interface {
	Create(ctx context.Context, userID int64, in models.ParticipantInput) (*models.Participant, error)
}

// NewCreateParticipantHandler returns an HTTP handler enrolling a participant.
// @Summary Create participant
// @Description Status defaults to active, participant_id is generated when omitted.
// @Tags participants
// @Accept json
// @Produce json
// @Param participant body models.ParticipantInput true "Participant"
// @Success 201 {object} models.Participant
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 409 {object} handlers.ErrorResponse "Subject ID already exists"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /participants [post]
// @Security BearerAuth
func NewCreateParticipantHandler(svc ParticipantCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middlewares.GetUserIDFromContext(r.Context())

		var in models.ParticipantInput
		if err := validation.DecodeJSON(r.Body, &in); err != nil {
			logger.Log.Warnw("participant creation validation error", "user_id", userID, "err", err)
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		p, err := svc.Create(r.Context(), userID, in)
		if err != nil {
			writeParticipantError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, p)
	}
}
