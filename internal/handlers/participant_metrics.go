package handlers

//go:generate mockgen -source=participant_metrics.go -destination=mock_participant_metrics_test.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-trial-participants/internal/models"
)

// MetricsGetter defines the interface that the service must implement.
type MetricsGetter interface {
	Metrics(ctx context.Context) (*models.ParticipantMetrics, error)
}

// NewParticipantMetricsHandler returns an HTTP handler with enrollment counts.
// @Summary Participant metrics
// @Description Total participants and breakdown by status and study group.
// @Tags participants
// @Produce json
// @Success 200 {object} models.ParticipantMetrics
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /participants/metrics/summary [get]
// @Security BearerAuth
func NewParticipantMetricsHandler(svc MetricsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := svc.Metrics(r.Context())
		if err != nil {
			writeInternalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, m)
	}
}
