package handler

import (
	"fireforge/internal/service"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler serves the admin overview counters
type DashboardHandler struct {
	service service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler instance
func NewDashboardHandler(service service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		service: service,
	}
}

// GetDashboard handles GET /api/admin/dashboard.
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	dashboard, err := h.service.GetDashboard(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dashboard)
}
