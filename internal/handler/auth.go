package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/printflow/api/internal/middleware"
	"github.com/printflow/api/internal/model"
	"github.com/printflow/api/internal/service"
	"github.com/printflow/api/pkg/response"
)

type AuthHandler struct {
	service   *service.UserService
	auth      *middleware.AuthMiddleware
	validator *validator.Validate
}

func NewAuthHandler(svc *service.UserService, auth *middleware.AuthMiddleware, v *validator.Validate) *AuthHandler {
	return &AuthHandler{
		service:   svc,
		auth:      auth,
		validator: v,
	}
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req model.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.ValidationError(c, "Invalid request body", nil)
	}

	if err := h.validator.Struct(&req); err != nil {
		return response.ValidationError(c, "Validation failed", formatValidationErrors(err))
	}

	user, err := h.service.Authenticate(c.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserInactive) {
			return response.Forbidden(c, "Account is deactivated")
		}
		return response.Unauthorized(c, "Invalid credentials")
	}

	token, err := h.auth.GenerateToken(user)
	if err != nil {
		return response.ServiceError(c, "Failed to generate token")
	}

	return response.OK(c, model.LoginResponse{Token: token, User: user.Sanitized()})
}
