package handler

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/printflow/api/internal/restore"
	"github.com/printflow/api/internal/service"
	"github.com/printflow/api/pkg/response"
)

type BackupHandler struct {
	service *service.BackupService
}

func NewBackupHandler(svc *service.BackupService) *BackupHandler {
	return &BackupHandler{service: svc}
}

// Export handles GET /api/backup/export
func (h *BackupHandler) Export(c *fiber.Ctx) error {
	f, filename, err := h.service.Export(c.Context())
	if err != nil {
		return response.ServiceError(c, err.Error())
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return response.ServiceError(c, err.Error())
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(buf.Bytes())
}

// Import handles POST /api/backup/import
func (h *BackupHandler) Import(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.ValidationError(c, "Backup file is required", nil)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.ServiceError(c, err.Error())
	}
	defer file.Close()

	snap, err := h.service.Import(c.Context(), file)
	if err != nil {
		if errors.Is(err, restore.ErrParse) {
			return response.ParseError(c, err.Error())
		}
		return response.ServiceError(c, err.Error())
	}

	return response.OK(c, fiber.Map{
		"jobs":      len(snap.Jobs),
		"customers": len(snap.Customers),
		"users":     len(snap.Users),
	})
}
