package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/printflow/api/internal/service"
	"github.com/printflow/api/pkg/response"
)

type CustomerHandler struct {
	service *service.CustomerService
}

func NewCustomerHandler(svc *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: svc}
}

// List handles GET /api/customers
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	return response.OK(c, h.service.List(c.Context()))
}
