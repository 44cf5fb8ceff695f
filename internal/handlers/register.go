package handlers

//go:generate mockgen -source=register.go -destination=mock_register_test.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-trial-participants/internal/logger"
	"github.com/sbilibin2017/gw-trial-participants/internal/models"
	"github.com/sbilibin2017/gw-trial-participants/internal/services"
	"github.com/sbilibin2017/gw-trial-participants/internal/validation"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, creds models.UserCredentials) (*models.User, string, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`

	// Full name
	// default: John Doe
	FullName *string `json:"full_name,omitempty"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account and returns an access token. Email must be unique.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} models.TokenResponse "User successfully registered"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 409 {object} handlers.ErrorResponse "Email already registered"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var creds models.UserCredentials
		if err := validation.DecodeJSON(r.Body, &creds); err != nil {
			logger.Log.Warnw("registration validation error", "err", err)
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		user, token, err := svc.Register(r.Context(), creds)
		switch {
		case err == nil:
			writeJSON(w, http.StatusCreated, models.NewTokenResponse(token, user))
		case errors.Is(err, validation.ErrValidation):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrEmailAlreadyExists):
			writeError(w, http.StatusConflict, "Email already registered")
		default:
			writeInternalError(w, err)
		}
	}
}
