package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
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

type memBlogRepo struct {
	blogs map[string]*model.Blog
}

func newMemBlogRepo() *memBlogRepo {
	return &memBlogRepo{blogs: map[string]*model.Blog{}}
}

func (m *memBlogRepo) Put(_ context.Context, blog *model.Blog) error {
	cp := *blog
	m.blogs[blog.BlogID] = &cp
	return nil
}

func (m *memBlogRepo) GetByID(_ context.Context, blogID string) (*model.Blog, error) {
	if b, ok := m.blogs[blogID]; ok {
		cp := *b
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (m *memBlogRepo) List(_ context.Context) ([]model.Blog, error) {
	out := make([]model.Blog, 0, len(m.blogs))
	for _, b := range m.blogs {
		out = append(out, *b)
	}
	return out, nil
}

func (m *memBlogRepo) SetEnabled(_ context.Context, blogID string, enabled bool) error {
	if b, ok := m.blogs[blogID]; ok {
		b.Enabled = enabled
	}
	return nil
}

type fakeUploader struct {
	lastKey         string
	lastContentType string
	lastSize        int
}

func (f *fakeUploader) Upload(_ context.Context, key string, body []byte, contentType string) (string, error) {
	f.lastKey = key
	f.lastContentType = contentType
	f.lastSize = len(body)
	return "https://assets.example.com/" + key, nil
}

func newBlogTestApp() (*fiber.App, *memBlogRepo, *fakeUploader) {
	repo := newMemBlogRepo()
	uploader := &fakeUploader{}
	handler := api.NewBlogHandler(service.NewBlogService(repo), uploader)

	app := fiber.New(fiber.Config{BodyLimit: 10 * 1024 * 1024})
	blogs := app.Group("/api/blogs")
	blogs.Get("/getAllBlogs", handler.GetAllBlogs)
	blogs.Get("/getBlogbyId/:id", handler.GetBlogByID)
	blogs.Post("/addBlog", handler.AddBlog)
	blogs.Put("/updateBlog/:id", handler.UpdateBlog)
	blogs.Put("/:id/toggle", handler.ToggleBlogStatus)
	blogs.Post("/uploadblogImage", handler.UploadBlogImage)

	return app, repo, uploader
}

func TestAddBlogEndpoint(t *testing.T) {
	app, repo, _ := newBlogTestApp()

	resp, body := doJSON(t, app, http.MethodPost, "/api/blogs/addBlog", map[string]any{
		"blogTitle":  "Managing chronic back pain",
		"author":     "Dr. Chandra",
		"categories": []string{"spine"},
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	require.Equal(t, true, body["success"])

	blog := body["blog"].(map[string]any)
	require.NotEmpty(t, blog["blogId"])
	require.Equal(t, true, blog["enabled"])
	require.Len(t, repo.blogs, 1)
}

func TestGetBlogEndpoint_NotFound(t *testing.T) {
	app, _, _ := newBlogTestApp()

	req := httptest.NewRequest(http.MethodGet, "/api/blogs/getBlogbyId/missing", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestToggleBlogEndpoint(t *testing.T) {
	app, repo, _ := newBlogTestApp()

	resp, body := doJSON(t, app, http.MethodPost, "/api/blogs/addBlog", map[string]any{
		"blogTitle": "Toggle me",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	blogID := body["blog"].(map[string]any)["blogId"].(string)

	resp, _ = doJSON(t, app, http.MethodPut, "/api/blogs/"+blogID+"/toggle", map[string]any{"enabled": false})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.False(t, repo.blogs[blogID].Enabled)
	require.Equal(t, "Toggle me", repo.blogs[blogID].BlogTitle)
}

func multipartImage(t *testing.T, fieldName, fileName string, payload []byte) (*bytes.Buffer, string) {
	t.Helper()

	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)
	part, err := writer.CreateFormFile(fieldName, fileName)
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return buf, writer.FormDataContentType()
}

func TestUploadBlogImageEndpoint(t *testing.T) {
	app, _, uploader := newBlogTestApp()

	payload := bytes.Repeat([]byte("x"), 1024)
	buf, contentType := multipartImage(t, "image", "hero.png", payload)

	req := httptest.NewRequest(http.MethodPost, "/api/blogs/uploadblogImage", buf)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))

	require.Equal(t, true, body["success"])
	require.Contains(t, body["imageUrl"], "https://assets.example.com/blogs/")
	require.Contains(t, uploader.lastKey, "blogs/")
	require.Contains(t, uploader.lastKey, ".png")
	require.Equal(t, len(payload), uploader.lastSize)
}

func TestUploadBlogImageEndpoint_MissingFile(t *testing.T) {
	app, _, _ := newBlogTestApp()

	buf, contentType := multipartImage(t, "document", "notes.txt", []byte("hi"))
	req := httptest.NewRequest(http.MethodPost, "/api/blogs/uploadblogImage", buf)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUploadBlogImageEndpoint_TooLarge(t *testing.T) {
	app, _, _ := newBlogTestApp()

	payload := bytes.Repeat([]byte("x"), 5*1024*1024+1)
	buf, contentType := multipartImage(t, "image", "huge.jpg", payload)

	req := httptest.NewRequest(http.MethodPost, "/api/blogs/uploadblogImage", buf)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
