package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/stocktrack-api/internal/application/dto"
	"github.com/jhoicas/stocktrack-api/internal/application/scope"
	"github.com/jhoicas/stocktrack-api/internal/domain"
	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
	"github.com/jhoicas/stocktrack-api/internal/domain/repository"
)

// SiteUseCase casos de uso para sedes. El core no muta sedes existentes;
// solo alta (admin) y listado.
type SiteUseCase struct {
	repo repository.SiteRepository
}

// NewSiteUseCase construye el caso de uso.
func NewSiteUseCase(repo repository.SiteRepository) *SiteUseCase {
	return &SiteUseCase{repo: repo}
}

// Create crea una sede (solo admin).
func (uc *SiteUseCase) Create(caller scope.Access, in dto.CreateSiteRequest) (*dto.SiteResponse, error) {
	if err := caller.RequireAdmin(); err != nil {
		return nil, err
	}
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	site := &entity.Site{
		ID:        uuid.New().String(),
		Name:      in.Name,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(site); err != nil {
		return nil, err
	}
	return toSiteResponse(site), nil
}

// List lista todas las sedes.
func (uc *SiteUseCase) List(caller scope.Access) ([]dto.SiteResponse, error) {
	if err := caller.Valid(); err != nil {
		return nil, err
	}
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.SiteResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSiteResponse(s))
	}
	return items, nil
}

func toSiteResponse(s *entity.Site) *dto.SiteResponse {
	if s == nil {
		return nil
	}
	return &dto.SiteResponse{ID: s.ID, Name: s.Name, CreatedAt: s.CreatedAt}
}
