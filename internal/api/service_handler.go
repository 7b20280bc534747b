package api

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/TharunBejawada/Dr-Sarath-Chandra/internal/model"
	"github.com/TharunBejawada/Dr-Sarath-Chandra/internal/repository"
	"github.com/TharunBejawada/Dr-Sarath-Chandra/internal/service"
)

type ServiceHandler struct {
	catalog  service.CatalogService
	uploader ImageUploader
}

func NewServiceHandler(catalog service.CatalogService, uploader ImageUploader) *ServiceHandler {
	return &ServiceHandler{
		catalog:  catalog,
		uploader: uploader,
	}
}

func (h *ServiceHandler) AddService(c *fiber.Ctx) error {
	var svc model.Service
	if err := c.BodyParser(&svc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.catalog.AddService(c.Context(), &svc); err != nil {
		slog.ErrorContext(c.Context(), "add service failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to add service"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Service added",
		"service": svc,
	})
}

func (h *ServiceHandler) GetAllServices(c *fiber.Ctx) error {
	services, err := h.catalog.ListServices(c.Context())
	if err != nil {
		slog.ErrorContext(c.Context(), "list services failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch services"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"Items": services})
}

func (h *ServiceHandler) GetServiceByID(c *fiber.Ctx) error {
	svc, err := h.catalog.GetService(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Service not found"})
		}
		slog.ErrorContext(c.Context(), "get service failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch service"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"Item": svc})
}

func (h *ServiceHandler) UpdateService(c *fiber.Ctx) error {
	var svc model.Service
	if err := c.BodyParser(&svc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.catalog.UpdateService(c.Context(), c.Params("id"), &svc); err != nil {
		slog.ErrorContext(c.Context(), "update service failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update service"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Service updated"})
}

func (h *ServiceHandler) ToggleServiceStatus(c *fiber.Ctx) error {
	var req ToggleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.catalog.ToggleService(c.Context(), c.Params("id"), req.Enabled); err != nil {
		slog.ErrorContext(c.Context(), "toggle service failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to toggle status"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Status updated"})
}

func (h *ServiceHandler) UploadServiceImage(c *fiber.Ctx) error {
	return handleImageUpload(c, h.uploader, "services")
}
