package handlers

//go:generate mockgen -source=login.go -destination=mock_login_test.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-trial-participants/internal/logger"
	"github.com/sbilibin2017/gw-trial-participants/internal/models"
	"github.com/sbilibin2017/gw-trial-participants/internal/services"
	"github.com/sbilibin2017/gw-trial-participants/internal/validation"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, creds models.UserCredentials) (*models.User, string, error)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate user and return JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} models.TokenResponse "JWT token returned"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Invalid credentials"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var creds models.UserCredentials
		if err := validation.DecodeJSON(r.Body, &creds); err != nil {
			logger.Log.Warnw("login validation error", "err", err)
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		user, token, err := svc.Login(r.Context(), creds)
		switch {
		case err == nil:
			writeJSON(w, http.StatusOK, models.NewTokenResponse(token, user))
		case errors.Is(err, validation.ErrValidation):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrInvalidCredentials):
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
		default:
			writeInternalError(w, err)
		}
	}
}
