package repository

import "github.com/jhoicas/stocktrack-api/internal/domain/entity"

// SiteRepository define el puerto de persistencia para Site (DIP).
type SiteRepository interface {
	Create(site *entity.Site) error
	GetByID(id string) (*entity.Site, error)
	List() ([]*entity.Site, error)
}
