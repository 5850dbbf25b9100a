package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/release-notes-service/internal/api/dto"
	"github.com/spec-kit/release-notes-service/internal/auth"
	"github.com/spec-kit/release-notes-service/internal/domain"
	"github.com/spec-kit/release-notes-service/internal/service"
	apperrors "github.com/spec-kit/release-notes-service/pkg/util"
)

// ReleasesHandler exposes the owner-scoped release endpoints.
type ReleasesHandler struct {
	releases *service.ReleaseService
}

// NewReleasesHandler constructs handler.
func NewReleasesHandler(releaseService *service.ReleaseService) *ReleasesHandler {
	return &ReleasesHandler{releases: releaseService}
}

// List handles GET /releases.
func (h *ReleasesHandler) List(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	filter := service.ReleaseListFilter{
		Limit:  parseIntQuery(c, "limit", 50),
		Offset: parseIntQuery(c, "offset", 0),
	}
	if status := c.Query("status"); status != "" {
		visibility := domain.Visibility(status)
		if visibility != domain.VisibilityDraft && visibility != domain.VisibilityPublished {
			return apperrors.NewValidationError("status must be draft or published", map[string]any{"field": "status"})
		}
		filter.Visibility = &visibility
	}

	releases, err := h.releases.List(c.Context(), user.ID, filter)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewReleaseResponses(releases))
}

// Create handles POST /releases.
func (h *ReleasesHandler) Create(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.CreateReleaseRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	release, err := h.releases.Create(c.Context(), user.ID, service.ReleaseCreateInput{
		Title:     req.Title,
		Version:   req.Version,
		ContentMD: req.ContentMD,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewReleaseResponse(release))
}

// Get handles GET /releases/:id.
func (h *ReleasesHandler) Get(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	release, err := h.releases.Get(c.Context(), user.ID, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewReleaseResponse(release))
}

// Update handles PUT /releases/:id.
func (h *ReleasesHandler) Update(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.UpdateReleaseRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	release, err := h.releases.Update(c.Context(), user.ID, c.Params("id"), service.ReleaseUpdateInput{
		Title:     req.Title,
		Version:   req.Version,
		ContentMD: req.ContentMD,
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.NewReleaseResponse(release))
}

// Delete handles DELETE /releases/:id.
func (h *ReleasesHandler) Delete(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	if err := h.releases.Delete(c.Context(), user.ID, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// Publish handles POST /releases/:id/publish.
func (h *ReleasesHandler) Publish(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	release, err := h.releases.Publish(c.Context(), user.ID, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewReleaseResponse(release))
}

// Unpublish handles POST /releases/:id/unpublish.
func (h *ReleasesHandler) Unpublish(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	release, err := h.releases.Unpublish(c.Context(), user.ID, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewReleaseResponse(release))
}

func parseIntQuery(c *fiber.Ctx, key string, fallback int) int {
	val := c.Query(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}
