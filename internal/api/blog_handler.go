package api

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/TharunBejawada/Dr-Sarath-Chandra/internal/model"
	"github.com/TharunBejawada/Dr-Sarath-Chandra/internal/repository"
	"github.com/TharunBejawada/Dr-Sarath-Chandra/internal/service"
)

type BlogHandler struct {
	blogService service.BlogService
	uploader    ImageUploader
}

func NewBlogHandler(blogService service.BlogService, uploader ImageUploader) *BlogHandler {
	return &BlogHandler{
		blogService: blogService,
		uploader:    uploader,
	}
}

func (h *BlogHandler) AddBlog(c *fiber.Ctx) error {
	var blog model.Blog
	if err := c.BodyParser(&blog); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.blogService.AddBlog(c.Context(), &blog); err != nil {
		slog.ErrorContext(c.Context(), "add blog failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to add blog"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Blog added successfully",
		"blog":    blog,
	})
}

func (h *BlogHandler) GetAllBlogs(c *fiber.Ctx) error {
	blogs, err := h.blogService.ListBlogs(c.Context())
	if err != nil {
		slog.ErrorContext(c.Context(), "list blogs failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch blogs"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"Items": blogs})
}

func (h *BlogHandler) GetBlogByID(c *fiber.Ctx) error {
	blog, err := h.blogService.GetBlog(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Blog not found"})
		}
		slog.ErrorContext(c.Context(), "get blog failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch blog"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"Item": blog})
}

func (h *BlogHandler) UpdateBlog(c *fiber.Ctx) error {
	var blog model.Blog
	if err := c.BodyParser(&blog); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.blogService.UpdateBlog(c.Context(), c.Params("id"), &blog); err != nil {
		slog.ErrorContext(c.Context(), "update blog failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update blog"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Blog updated"})
}

type ToggleRequest struct {
	Enabled bool `json:"enabled"`
}

func (h *BlogHandler) ToggleBlogStatus(c *fiber.Ctx) error {
	var req ToggleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.blogService.ToggleBlog(c.Context(), c.Params("id"), req.Enabled); err != nil {
		slog.ErrorContext(c.Context(), "toggle blog failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to toggle status"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Status updated"})
}

func (h *BlogHandler) UploadBlogImage(c *fiber.Ctx) error {
	return handleImageUpload(c, h.uploader, "blogs")
}
