package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/printflow/api/internal/model"
	"github.com/printflow/api/internal/service"
	"github.com/printflow/api/pkg/response"
)

type UserHandler struct {
	service   *service.UserService
	validator *validator.Validate
}

func NewUserHandler(svc *service.UserService, v *validator.Validate) *UserHandler {
	return &UserHandler{
		service:   svc,
		validator: v,
	}
}

// List handles GET /api/users
func (h *UserHandler) List(c *fiber.Ctx) error {
	return response.OK(c, h.service.List(c.Context()))
}

// Create handles POST /api/users
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req model.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return response.ValidationError(c, "Invalid request body", nil)
	}

	if err := h.validator.Struct(&req); err != nil {
		return response.ValidationError(c, "Validation failed", formatValidationErrors(err))
	}

	user, err := h.service.Create(c.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			return response.ValidationError(c, "Username already exists", nil)
		}
		return response.ServiceError(c, err.Error())
	}

	return response.Created(c, user)
}

// SetActive handles PATCH /api/users/:id/active
func (h *UserHandler) SetActive(c *fiber.Ctx) error {
	userID := c.Params("id")
	if userID == "" {
		return response.ValidationError(c, "User ID is required", nil)
	}

	var req model.SetUserActiveRequest
	if err := c.BodyParser(&req); err != nil {
		return response.ValidationError(c, "Invalid request body", nil)
	}

	if err := h.validator.Struct(&req); err != nil {
		return response.ValidationError(c, "Validation failed", formatValidationErrors(err))
	}

	user, err := h.service.SetActive(c.Context(), userID, *req.IsActive)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return response.NotFound(c, "User not found")
		}
		return response.ServiceError(c, err.Error())
	}

	return response.OK(c, user)
}
