package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/release-notes-service/internal/api/dto"
	"github.com/spec-kit/release-notes-service/internal/service"
)

// PublicReleasesHandler exposes the unauthenticated read surface.
type PublicReleasesHandler struct {
	releases *service.ReleaseService
}

// NewPublicReleasesHandler constructs handler.
func NewPublicReleasesHandler(releaseService *service.ReleaseService) *PublicReleasesHandler {
	return &PublicReleasesHandler{releases: releaseService}
}

// List handles GET /public/releases.
func (h *PublicReleasesHandler) List(c *fiber.Ctx) error {
	limit := parseIntQuery(c, "limit", 50)
	offset := parseIntQuery(c, "offset", 0)

	releases, err := h.releases.PublicList(c.Context(), limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewPublicReleaseResponses(releases))
}

// Get handles GET /public/releases/:slug.
func (h *PublicReleasesHandler) Get(c *fiber.Ctx) error {
	release, err := h.releases.PublicGet(c.Context(), c.Params("slug"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewPublicReleaseResponse(release))
}
