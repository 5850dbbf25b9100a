package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/release-notes-service/internal/api/dto"
	"github.com/spec-kit/release-notes-service/internal/service"
	apperrors "github.com/spec-kit/release-notes-service/pkg/util"
)

// PortfolioHandler exposes the personal-site endpoints.
type PortfolioHandler struct {
	portfolio *service.PortfolioService
}

// NewPortfolioHandler constructs handler.
func NewPortfolioHandler(portfolioService *service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{portfolio: portfolioService}
}

// Testimonials handles GET /api/portfolio/testimonials.
func (h *PortfolioHandler) Testimonials(c *fiber.Ctx) error {
	randomOrder := c.Query("random_order", "true") != "false"
	result := h.portfolio.Testimonials(randomOrder)
	return c.JSON(fiber.Map{
		"testimonials": result,
		"total":        len(result),
	})
}

// RandomTestimonial handles GET /api/portfolio/testimonials/random.
func (h *PortfolioHandler) RandomTestimonial(c *fiber.Ctx) error {
	return c.JSON(h.portfolio.RandomTestimonial())
}

// Skills handles GET /api/portfolio/skills.
func (h *PortfolioHandler) Skills(c *fiber.Ctx) error {
	skills, categories, average := h.portfolio.Skills(c.Query("category"))
	return c.JSON(fiber.Map{
		"skills":              skills,
		"categories":          categories,
		"average_proficiency": average,
	})
}

// Projects handles GET /api/portfolio/projects.
func (h *PortfolioHandler) Projects(c *fiber.Ctx) error {
	projects, techs := h.portfolio.Projects()
	return c.JSON(fiber.Map{
		"projects":  projects,
		"total":     len(projects),
		"tech_used": techs,
	})
}

// Stats handles GET /api/portfolio/stats.
func (h *PortfolioHandler) Stats(c *fiber.Ctx) error {
	return c.JSON(h.portfolio.Stats())
}

// TrackView handles POST /api/portfolio/views.
func (h *PortfolioHandler) TrackView(c *fiber.Ctx) error {
	var req dto.ViewEventRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	stats, newVisitor, err := h.portfolio.TrackView(c.Context(), req.SessionID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"total_views":     stats.Total,
		"unique_visitors": stats.UniqueVisitors,
		"is_new_visitor":  newVisitor,
	})
}

// Views handles GET /api/portfolio/views.
func (h *PortfolioHandler) Views(c *fiber.Ctx) error {
	stats, err := h.portfolio.Views(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"total_views":     stats.Total,
		"unique_visitors": stats.UniqueVisitors,
	})
}

// SubmitContact handles POST /api/portfolio/contact.
func (h *PortfolioHandler) SubmitContact(c *fiber.Ctx) error {
	var req dto.ContactMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	msg, err := h.portfolio.SubmitContact(c.Context(), service.ContactSubmission{
		Name:    req.Name,
		Email:   req.Email,
		Company: req.Company,
		Message: req.Message,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success":      true,
		"reference_id": msg.ID,
	})
}

// Messages handles GET /api/portfolio/messages.
func (h *PortfolioHandler) Messages(c *fiber.Ctx) error {
	msgs, unread, err := h.portfolio.Messages(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"messages": dto.NewContactMessageResponses(msgs),
		"total":    len(msgs),
		"unread":   unread,
	})
}
