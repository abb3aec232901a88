package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/printflow/api/internal/service"
	"github.com/printflow/api/pkg/response"
)

type ReportHandler struct {
	service *service.ReportService
}

func NewReportHandler(svc *service.ReportService) *ReportHandler {
	return &ReportHandler{service: svc}
}

// Request handles POST /api/report
func (h *ReportHandler) Request(c *fiber.Ctx) error {
	result, err := h.service.Request(c.Context())
	if err != nil {
		return response.ServiceError(c, err.Error())
	}

	return response.Accepted(c, result)
}

// Get handles GET /api/report/:id
func (h *ReportHandler) Get(c *fiber.Ctx) error {
	reportID := c.Params("id")
	if reportID == "" {
		return response.ValidationError(c, "Report ID is required", nil)
	}

	report, err := h.service.Get(c.Context(), reportID)
	if err != nil {
		if errors.Is(err, service.ErrReportNotFound) {
			return response.NotFound(c, "Report not found")
		}
		return response.ServiceError(c, err.Error())
	}

	return response.OK(c, report)
}
