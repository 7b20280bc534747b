package api_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/TharunBejawada/Dr-Sarath-Chandra/internal/api"
	"github.com/TharunBejawada/Dr-Sarath-Chandra/internal/model"
	"github.com/TharunBejawada/Dr-Sarath-Chandra/internal/repository"
	"github.com/TharunBejawada/Dr-Sarath-Chandra/internal/service"
)

type memServiceRepo struct {
	services map[string]*model.Service
}

func newMemServiceRepo() *memServiceRepo {
	return &memServiceRepo{services: map[string]*model.Service{}}
}

func (m *memServiceRepo) Put(_ context.Context, svc *model.Service) error {
	cp := *svc
	m.services[svc.ServiceID] = &cp
	return nil
}

func (m *memServiceRepo) GetByID(_ context.Context, serviceID string) (*model.Service, error) {
	if s, ok := m.services[serviceID]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (m *memServiceRepo) List(_ context.Context) ([]model.Service, error) {
	out := make([]model.Service, 0, len(m.services))
	for _, s := range m.services {
		out = append(out, *s)
	}
	return out, nil
}

func (m *memServiceRepo) SetEnabled(_ context.Context, serviceID string, enabled bool) error {
	if s, ok := m.services[serviceID]; ok {
		s.Enabled = enabled
	}
	return nil
}

func newServiceTestApp() (*fiber.App, *memServiceRepo, *fakeUploader) {
	repo := newMemServiceRepo()
	uploader := &fakeUploader{}
	handler := api.NewServiceHandler(service.NewCatalogService(repo), uploader)

	app := fiber.New(fiber.Config{BodyLimit: 10 * 1024 * 1024})
	services := app.Group("/api/services")
	services.Get("/getAllServices", handler.GetAllServices)
	services.Get("/getServiceById/:id", handler.GetServiceByID)
	services.Post("/addService", handler.AddService)
	services.Put("/updateService/:id", handler.UpdateService)
	services.Put("/:id/toggle", handler.ToggleServiceStatus)
	services.Post("/uploadServiceImage", handler.UploadServiceImage)

	return app, repo, uploader
}

func TestAddServiceEndpoint(t *testing.T) {
	app, repo, _ := newServiceTestApp()

	resp, body := doJSON(t, app, http.MethodPost, "/api/services/addService", map[string]any{
		"title":       "Spine Surgery",
		"badge":       "Advanced Care",
		"description": "Minimally invasive procedures",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	require.Equal(t, true, body["success"])

	svc := body["service"].(map[string]any)
	require.NotEmpty(t, svc["serviceId"])
	require.Equal(t, true, svc["enabled"])
	require.Len(t, repo.services, 1)
}

func TestUpdateServiceEndpoint_PathIDWins(t *testing.T) {
	app, repo, _ := newServiceTestApp()

	resp, body := doJSON(t, app, http.MethodPost, "/api/services/addService", map[string]any{
		"title": "Original title",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	serviceID := body["service"].(map[string]any)["serviceId"].(string)

	resp, _ = doJSON(t, app, http.MethodPut, "/api/services/updateService/"+serviceID, map[string]any{
		"serviceId": "spoofed",
		"title":     "Edited title",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, "Edited title", repo.services[serviceID].Title)
	require.NotContains(t, repo.services, "spoofed")
}

func TestGetServiceEndpoint_NotFound(t *testing.T) {
	app, _, _ := newServiceTestApp()

	req := httptest.NewRequest(http.MethodGet, "/api/services/getServiceById/missing", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestUploadServiceImageEndpoint_KeyPrefix(t *testing.T) {
	app, _, uploader := newServiceTestApp()

	buf, contentType := multipartImage(t, "image", "clinic.jpg", bytes.Repeat([]byte("y"), 512))
	req := httptest.NewRequest(http.MethodPost, "/api/services/uploadServiceImage", buf)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Contains(t, uploader.lastKey, "services/")
	require.Contains(t, uploader.lastKey, ".jpg")
}
