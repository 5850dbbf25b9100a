package service

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/release-notes-service/internal/auth"
	"github.com/spec-kit/release-notes-service/internal/config"
	"github.com/spec-kit/release-notes-service/internal/domain"
	"github.com/spec-kit/release-notes-service/internal/repository"
	apperrors "github.com/spec-kit/release-notes-service/pkg/util"
)

// AuthService coordinates registration and login flows.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, users repository.UserRepository) *AuthService {
	return &AuthService{
		users:      users,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// Register creates a new account. Emails are unique and case-sensitive;
// a duplicate registration is a conflict.
func (s *AuthService) Register(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, apperrors.NewValidationError("email and password required", nil)
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewConflict("email already registered", nil)
	} else if err != pgx.ErrNoRows {
		return nil, apperrors.MapError(err)
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, apperrors.MapError(err)
	}
	return user, nil
}

// Login authenticates a user and issues an access token. Unknown email
// and wrong password collapse into the same failure so credentials
// cannot be probed.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", time.Time{}, apperrors.NewUnauthorized("incorrect email or password")
		}
		return "", time.Time{}, apperrors.MapError(err)
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return "", time.Time{}, apperrors.NewUnauthorized("incorrect email or password")
	}

	token, exp, err := s.tokenMgr.GenerateToken(user.ID)
	if err != nil {
		return "", time.Time{}, apperrors.MapError(err)
	}
	return token, exp, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
