package handler

import (
	"fireforge/internal/dto"
	"fireforge/internal/service"

	"github.com/gofiber/fiber/v2"
)

// LeadHandler handles contact-form HTTP requests
type LeadHandler struct {
	service service.LeadService
}

// NewLeadHandler creates a new LeadHandler instance
func NewLeadHandler(service service.LeadService) *LeadHandler {
	return &LeadHandler{
		service: service,
	}
}

// SubmitLead handles POST /api/leads.
func (h *LeadHandler) SubmitLead(c *fiber.Ctx) error {
	var req dto.LeadRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	response, err := h.service.SubmitLead(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(response)
}

// ListLeads handles GET /api/admin/leads, with an optional ?status= filter.
func (h *LeadHandler) ListLeads(c *fiber.Ctx) error {
	leads, err := h.service.ListLeads(c.Context(), c.Query("status"))
	if err != nil {
		return err
	}
	return c.JSON(leads)
}

// UpdateLeadStatus handles PATCH /api/admin/leads/:id/status.
func (h *LeadHandler) UpdateLeadStatus(c *fiber.Ctx) error {
	var req dto.StatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := h.service.UpdateLeadStatus(c.Context(), c.Params("id"), req.Status); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
