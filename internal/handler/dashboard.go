package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/printflow/api/internal/service"
	"github.com/printflow/api/pkg/response"
)

type DashboardHandler struct {
	service *service.AnalyticsService
}

func NewDashboardHandler(svc *service.AnalyticsService) *DashboardHandler {
	return &DashboardHandler{service: svc}
}

// Get handles GET /api/dashboard
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	return response.OK(c, h.service.Dashboard(c.Context()))
}
