package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/printflow/api/internal/model"
	"github.com/printflow/api/internal/service"
	"github.com/printflow/api/internal/workflow"
	"github.com/printflow/api/pkg/response"
)

type JobHandler struct {
	service   *service.JobService
	validator *validator.Validate
}

func NewJobHandler(svc *service.JobService, v *validator.Validate) *JobHandler {
	return &JobHandler{
		service:   svc,
		validator: v,
	}
}

// List handles GET /api/jobs
func (h *JobHandler) List(c *fiber.Ctx) error {
	return response.OK(c, h.service.List(c.Context()))
}

// Create handles POST /api/jobs
func (h *JobHandler) Create(c *fiber.Ctx) error {
	var req model.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return response.ValidationError(c, "Invalid request body", nil)
	}

	if err := h.validator.Struct(&req); err != nil {
		return response.ValidationError(c, "Validation failed", formatValidationErrors(err))
	}

	job, err := h.service.Create(c.Context(), &req)
	if err != nil {
		return response.ServiceError(c, err.Error())
	}

	return response.Created(c, job)
}

// Advance handles POST /api/jobs/:id/advance
func (h *JobHandler) Advance(c *fiber.Ctx) error {
	jobID := c.Params("id")
	if jobID == "" {
		return response.ValidationError(c, "Job ID is required", nil)
	}

	job, err := h.service.Advance(c.Context(), jobID)
	if err != nil {
		if errors.Is(err, workflow.ErrJobNotFound) {
			return response.NotFound(c, "Job not found")
		}
		if errors.Is(err, workflow.ErrJobCompleted) {
			return response.JobCompleted(c, "Job already completed")
		}
		return response.ServiceError(c, err.Error())
	}

	return response.OK(c, model.AdvanceJobResponse{Job: job, NextStage: job.CurrentStage})
}

// Delete handles DELETE /api/jobs/:id
func (h *JobHandler) Delete(c *fiber.Ctx) error {
	jobID := c.Params("id")
	if jobID == "" {
		return response.ValidationError(c, "Job ID is required", nil)
	}

	if err := h.service.Delete(c.Context(), jobID); err != nil {
		return response.ServiceError(c, err.Error())
	}

	return response.NoContent(c)
}

// formatValidationErrors formats validator errors for response
func formatValidationErrors(err error) interface{} {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		errors := make(map[string]string)
		for _, e := range validationErrors {
			errors[e.Field()] = e.Tag()
		}
		return errors
	}
	return nil
}
