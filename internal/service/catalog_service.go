package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/TharunBejawada/Dr-Sarath-Chandra/internal/model"
	"github.com/TharunBejawada/Dr-Sarath-Chandra/internal/repository"
)

// CatalogService manages the treatment/service detail pages shown on
// the public site.
type CatalogService interface {
	AddService(ctx context.Context, svc *model.Service) error
	GetService(ctx context.Context, serviceID string) (*model.Service, error)
	ListServices(ctx context.Context) ([]model.Service, error)
	UpdateService(ctx context.Context, serviceID string, svc *model.Service) error
	ToggleService(ctx context.Context, serviceID string, enabled bool) error
}

type catalogService struct {
	serviceRepo repository.ServiceRepository
	now         func() time.Time
}

func NewCatalogService(serviceRepo repository.ServiceRepository) CatalogService {
	return &catalogService{serviceRepo: serviceRepo, now: time.Now}
}

func (s *catalogService) AddService(ctx context.Context, svc *model.Service) error {
	svc.ServiceID = uuid.New().String()
	svc.Enabled = true
	svc.CreatedAt = s.now().UTC()
	return s.serviceRepo.Put(ctx, svc)
}

func (s *catalogService) GetService(ctx context.Context, serviceID string) (*model.Service, error) {
	return s.serviceRepo.GetByID(ctx, serviceID)
}

func (s *catalogService) ListServices(ctx context.Context) ([]model.Service, error) {
	return s.serviceRepo.List(ctx)
}

func (s *catalogService) UpdateService(ctx context.Context, serviceID string, svc *model.Service) error {
	svc.ServiceID = serviceID
	return s.serviceRepo.Put(ctx, svc)
}

func (s *catalogService) ToggleService(ctx context.Context, serviceID string, enabled bool) error {
	return s.serviceRepo.SetEnabled(ctx, serviceID, enabled)
}
