package api

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// maxUploadSize caps image uploads at 5 MB.
const maxUploadSize = 5 * 1024 * 1024

// ImageUploader stores image bytes and returns a public URL.
// *s3.FileUploader satisfies it.
type ImageUploader interface {
	Upload(ctx context.Context, key string, body []byte, contentType string) (string, error)
}

// handleImageUpload reads the multipart "image" field and stores it
// under the given key prefix ("blogs" or "services").
func handleImageUpload(c *fiber.Ctx, uploader ImageUploader, prefix string) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No image file provided"})
	}

	if fileHeader.Size > maxUploadSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Image exceeds the 5MB size limit"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No image file provided"})
	}
	defer file.Close()

	body, err := io.ReadAll(file)
	if err != nil {
		slog.ErrorContext(c.Context(), "reading upload failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to upload image"})
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := prefix + "/" + uuid.New().String()
	if ext := strings.TrimPrefix(filepath.Ext(fileHeader.Filename), "."); ext != "" {
		key = fmt.Sprintf("%s.%s", key, ext)
	}

	imageURL, err := uploader.Upload(c.Context(), key, body, contentType)
	if err != nil {
		slog.ErrorContext(c.Context(), "S3 upload failed", "key", key, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to upload image"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":  true,
		"imageUrl": imageURL,
	})
}
