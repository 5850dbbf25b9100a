package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/release-notes-service/internal/domain"
	apperrors "github.com/spec-kit/release-notes-service/pkg/util"
)

type userStoreMock struct {
	getByIDFn func(ctx context.Context, id string) (*domain.User, error)
}

func (m *userStoreMock) Create(context.Context, *domain.User) error { return nil }

func (m *userStoreMock) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return m.getByIDFn(ctx, id)
}

func (m *userStoreMock) GetByEmail(context.Context, string) (*domain.User, error) {
	return nil, pgx.ErrNoRows
}

func protectedApp(mw *AuthMiddleware) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if err := c.Next(); err != nil {
			domainErr := apperrors.ToDomainError(err)
			return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{"code": domainErr.Code})
		}
		return nil
	})
	app.Get("/me", mw.Handle, func(c *fiber.Ctx) error {
		user, ok := UserFromContext(c)
		if !ok {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.JSON(fiber.Map{"id": user.ID})
	})
	return app
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	tm := NewTokenManager("secret", 60)
	store := &userStoreMock{
		getByIDFn: func(_ context.Context, id string) (*domain.User, error) {
			return &domain.User{ID: id, Email: "alice@example.com"}, nil
		},
	}
	app := protectedApp(NewAuthMiddleware(tm, store))

	token, _, err := tm.GenerateToken("user-1")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthMiddlewareRejections(t *testing.T) {
	tm := NewTokenManager("secret", 60)
	otherTM := NewTokenManager("other-secret", 60)

	validToken, _, err := tm.GenerateToken("user-1")
	require.NoError(t, err)
	foreignToken, _, err := otherTM.GenerateToken("user-1")
	require.NoError(t, err)

	tests := []struct {
		name      string
		header    string
		getByIDFn func(ctx context.Context, id string) (*domain.User, error)
	}{
		{name: "missing header", header: ""},
		{name: "not a bearer scheme", header: "Basic abc123"},
		{name: "malformed value", header: "Bearer"},
		{name: "bad signature", header: "Bearer " + foreignToken},
		{
			name:   "deleted account",
			header: "Bearer " + validToken,
			getByIDFn: func(context.Context, string) (*domain.User, error) {
				return nil, pgx.ErrNoRows
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &userStoreMock{getByIDFn: tt.getByIDFn}
			app := protectedApp(NewAuthMiddleware(tm, store))

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			assert.Equal(t, "Bearer", resp.Header.Get(fiber.HeaderWWWAuthenticate))
		})
	}
}
