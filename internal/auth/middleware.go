package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/release-notes-service/internal/domain"
	"github.com/spec-kit/release-notes-service/internal/repository"
	apperrors "github.com/spec-kit/release-notes-service/pkg/util"
)

const principalKey = "auth_principal"

// AuthMiddleware validates bearer tokens and loads the authenticated user.
type AuthMiddleware struct {
	tokens *TokenManager
	users  repository.UserRepository
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager, users repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, users: users}
}

// Handle enforces authentication for protected routes. Every rejection
// carries a bearer challenge so clients know which scheme is expected.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return m.unauthorized(c, "missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return m.unauthorized(c, "invalid authorization header")
	}

	subjectID, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return m.unauthorized(c, "invalid or expired token")
	}

	// A deleted account can still hold a token that verifies; reject it here.
	user, err := m.users.GetByID(c.Context(), subjectID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return m.unauthorized(c, "user not found")
		}
		return apperrors.MapError(err)
	}

	c.Locals(principalKey, user)
	return c.Next()
}

func (m *AuthMiddleware) unauthorized(c *fiber.Ctx, message string) error {
	c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
	return apperrors.NewUnauthorized(message)
}

// UserFromContext retrieves the authenticated user.
func UserFromContext(c *fiber.Ctx) (*domain.User, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	user, ok := val.(*domain.User)
	return user, ok
}
