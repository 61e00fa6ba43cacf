package handler

import (
	"fireforge/internal/dto"
	"fireforge/internal/service"

	"github.com/gofiber/fiber/v2"
)

// PortfolioHandler handles the public client grid and its admin CRUD
type PortfolioHandler struct {
	service service.PortfolioService
}

// NewPortfolioHandler creates a new PortfolioHandler instance
func NewPortfolioHandler(service service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{
		service: service,
	}
}

// ListClients handles GET /api/clients.
func (h *PortfolioHandler) ListClients(c *fiber.Ctx) error {
	clients, err := h.service.ListClients(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(clients)
}

// CreateClient handles POST /api/admin/clients.
func (h *PortfolioHandler) CreateClient(c *fiber.Ctx) error {
	var req dto.ClientRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	client, err := h.service.CreateClient(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(client)
}

// UpdateClient handles PUT /api/admin/clients/:id.
func (h *PortfolioHandler) UpdateClient(c *fiber.Ctx) error {
	var req dto.ClientRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	client, err := h.service.UpdateClient(c.Context(), c.Params("id"), &req)
	if err != nil {
		return err
	}
	return c.JSON(client)
}

// DeleteClient handles DELETE /api/admin/clients/:id.
func (h *PortfolioHandler) DeleteClient(c *fiber.Ctx) error {
	if err := h.service.DeleteClient(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
