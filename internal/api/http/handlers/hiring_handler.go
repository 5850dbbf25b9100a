package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/release-notes-service/internal/api/dto"
	"github.com/spec-kit/release-notes-service/internal/service"
	apperrors "github.com/spec-kit/release-notes-service/pkg/util"
)

// HiringHandler exposes the hiring tracker endpoints.
type HiringHandler struct {
	hiring *service.HiringService
}

// NewHiringHandler constructs handler.
func NewHiringHandler(hiringService *service.HiringService) *HiringHandler {
	return &HiringHandler{hiring: hiringService}
}

// GetBanner handles GET /api/hiring/banner. Public.
func (h *HiringHandler) GetBanner(c *fiber.Ctx) error {
	banner, err := h.hiring.GetActiveBanner(c.Context())
	if err != nil {
		return err
	}
	if banner == nil {
		return c.JSON(nil)
	}
	return c.JSON(dto.NewBannerResponse(banner))
}

// ListContacts handles GET /api/hiring/contacts. Public.
func (h *HiringHandler) ListContacts(c *fiber.Ctx) error {
	contacts, err := h.hiring.ListContacts(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewContactResponses(contacts))
}

// Dashboard handles GET /api/hiring/dashboard. Public.
func (h *HiringHandler) Dashboard(c *fiber.Ctx) error {
	stats, err := h.hiring.Dashboard(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(stats)
}

// ListApplications handles GET /api/hiring/applications.
func (h *HiringHandler) ListApplications(c *fiber.Ctx) error {
	apps, err := h.hiring.ListApplications(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewApplicationResponses(apps))
}

// CreateApplication handles POST /api/hiring/applications.
func (h *HiringHandler) CreateApplication(c *fiber.Ctx) error {
	var req dto.CreateApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	app, err := h.hiring.CreateApplication(c.Context(), service.ApplicationInput{
		Company:  req.Company,
		Role:     req.Role,
		JobType:  req.JobType,
		Status:   req.Status,
		DateSent: req.DateSent,
		Notes:    req.Notes,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewApplicationResponse(app))
}

// UpdateApplication handles PUT /api/hiring/applications/:id.
func (h *HiringHandler) UpdateApplication(c *fiber.Ctx) error {
	var req dto.UpdateApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	app, err := h.hiring.UpdateApplication(c.Context(), c.Params("id"), service.ApplicationUpdateInput{
		Company:  req.Company,
		Role:     req.Role,
		JobType:  req.JobType,
		Status:   req.Status,
		DateSent: req.DateSent,
		Notes:    req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.NewApplicationResponse(app))
}

// DeleteApplication handles DELETE /api/hiring/applications/:id.
func (h *HiringHandler) DeleteApplication(c *fiber.Ctx) error {
	if err := h.hiring.DeleteApplication(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// CreateContact handles POST /api/hiring/contacts.
func (h *HiringHandler) CreateContact(c *fiber.Ctx) error {
	var req dto.CreateContactRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	contact, err := h.hiring.CreateContact(c.Context(), service.ContactInput{
		Name:    req.Name,
		Company: req.Company,
		Email:   req.Email,
		Notes:   req.Notes,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewContactResponse(contact))
}

// UpdateContact handles PUT /api/hiring/contacts/:id.
func (h *HiringHandler) UpdateContact(c *fiber.Ctx) error {
	var req dto.UpdateContactRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	contact, err := h.hiring.UpdateContact(c.Context(), c.Params("id"), service.ContactUpdateInput{
		Name:    req.Name,
		Company: req.Company,
		Email:   req.Email,
		Notes:   req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.NewContactResponse(contact))
}

// DeleteContact handles DELETE /api/hiring/contacts/:id.
func (h *HiringHandler) DeleteContact(c *fiber.Ctx) error {
	if err := h.hiring.DeleteContact(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// UpsertBanner handles PUT /api/hiring/banner.
func (h *HiringHandler) UpsertBanner(c *fiber.Ctx) error {
	var req dto.UpsertBannerRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	banner, err := h.hiring.UpsertBanner(c.Context(), service.BannerInput{
		Message:  req.Message,
		IsActive: req.IsActive,
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.NewBannerResponse(banner))
}
