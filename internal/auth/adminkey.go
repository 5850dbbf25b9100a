package auth

import (
	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/release-notes-service/pkg/util"
)

// AdminKeyHeader carries the shared admin secret on hiring requests.
const AdminKeyHeader = "X-Admin-Key"

// AdminKeyGate guards the hiring admin surface with a single static
// secret. It carries no identity: access is all-or-nothing.
type AdminKeyGate struct {
	adminKey string
}

// NewAdminKeyGate constructs the gate.
func NewAdminKeyGate(adminKey string) *AdminKeyGate {
	return &AdminKeyGate{adminKey: adminKey}
}

// Handle rejects requests whose admin key does not exactly match the
// configured secret. A missing server-side secret is a configuration
// fault, not an auth failure.
func (g *AdminKeyGate) Handle(c *fiber.Ctx) error {
	if g.adminKey == "" {
		return apperrors.NewNotConfigured("admin key not configured")
	}
	if c.Get(AdminKeyHeader) != g.adminKey {
		return apperrors.NewUnauthorized("invalid admin key")
	}
	return c.Next()
}
