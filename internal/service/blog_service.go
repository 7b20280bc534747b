package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/TharunBejawada/Dr-Sarath-Chandra/internal/model"
	"github.com/TharunBejawada/Dr-Sarath-Chandra/internal/repository"
)

type BlogService interface {
	AddBlog(ctx context.Context, blog *model.Blog) error
	GetBlog(ctx context.Context, blogID string) (*model.Blog, error)
	ListBlogs(ctx context.Context) ([]model.Blog, error)
	UpdateBlog(ctx context.Context, blogID string, blog *model.Blog) error
	ToggleBlog(ctx context.Context, blogID string, enabled bool) error
}

type blogService struct {
	blogRepo repository.BlogRepository
	now      func() time.Time
}

func NewBlogService(blogRepo repository.BlogRepository) BlogService {
	return &blogService{blogRepo: blogRepo, now: time.Now}
}

// AddBlog assigns the server-side fields and persists the post. New
// posts are enabled by default.
func (s *blogService) AddBlog(ctx context.Context, blog *model.Blog) error {
	blog.BlogID = uuid.New().String()
	blog.Enabled = true
	blog.CreatedAt = s.now().UTC()
	return s.blogRepo.Put(ctx, blog)
}

func (s *blogService) GetBlog(ctx context.Context, blogID string) (*model.Blog, error) {
	return s.blogRepo.GetByID(ctx, blogID)
}

func (s *blogService) ListBlogs(ctx context.Context) ([]model.Blog, error) {
	return s.blogRepo.List(ctx)
}

// UpdateBlog replaces the stored post wholesale, keyed by the path id
// regardless of any id in the body.
func (s *blogService) UpdateBlog(ctx context.Context, blogID string, blog *model.Blog) error {
	blog.BlogID = blogID
	return s.blogRepo.Put(ctx, blog)
}

func (s *blogService) ToggleBlog(ctx context.Context, blogID string, enabled bool) error {
	return s.blogRepo.SetEnabled(ctx, blogID, enabled)
}
