package services

//go:generate mockgen -source=auth.go -destination=mock_auth_test.go -package=services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/gw-trial-participants/internal/logger"
	"github.com/sbilibin2017/gw-trial-participants/internal/models"
	"github.com/sbilibin2017/gw-trial-participants/internal/repositories"
	"github.com/sbilibin2017/gw-trial-participants/internal/validation"
)

// Error variables
var (
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, email string, fullName *string, passwordHash string) (*models.User, error)
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID int64) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    JWTGenerator
	cost   int
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
		cost:   bcrypt.DefaultCost,
	}
}

// Register creates a user and returns it together with an access token.
func (svc *AuthService) Register(ctx context.Context, creds models.UserCredentials) (*models.User, string, error) {
	if err := validation.Struct(&creds); err != nil {
		logger.Log.Warnw("registration validation error", "err", err)
		return nil, "", err
	}
	email := *creds.Email

	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, "", err
	}
	if existing != nil {
		logger.Log.Warnw("email already registered", "email", email)
		return nil, "", ErrEmailAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*creds.Password), svc.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, "", &validation.Error{Field: "password", Reason: "must be at most 72 bytes"}
	}
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, "", err
	}

	user, err := svc.writer.Save(ctx, email, creds.FullName, string(hashedPassword))
	if errors.Is(err, repositories.ErrUniqueViolation) {
		logger.Log.Warnw("email already registered", "email", email)
		return nil, "", ErrEmailAlreadyExists
	}
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, "", err
	}
	logger.Log.Infow("user created", "user_id", user.ID, "email", user.Email)

	token, err := svc.jwt.Generate(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return nil, "", err
	}

	return user, token, nil
}

// Login authenticates a user and returns it together with an access token.
// Unknown emails and wrong passwords both yield ErrInvalidCredentials.
func (svc *AuthService) Login(ctx context.Context, creds models.UserCredentials) (*models.User, string, error) {
	if err := validation.Struct(&creds); err != nil {
		logger.Log.Warnw("login validation error", "err", err)
		return nil, "", err
	}
	email := *creds.Email

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, "", err
	}
	if user == nil {
		logger.Log.Warnw("failed login attempt", "email", email)
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(*creds.Password)); err != nil {
		logger.Log.Warnw("failed login attempt", "email", email)
		return nil, "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return nil, "", err
	}
	logger.Log.Infow("successful login", "user_id", user.ID)

	return user, token, nil
}
