package stock

import (
	"context"

	"github.com/jhoicas/stocktrack-api/internal/application/dto"
	"github.com/jhoicas/stocktrack-api/internal/application/scope"
	"github.com/jhoicas/stocktrack-api/internal/domain"
	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
	"github.com/jhoicas/stocktrack-api/internal/domain/repository"
)

// QueryUseCase lecturas de stock e historial más el override directo de
// cantidad. Todas las operaciones pasan por el Scoper.
type QueryUseCase struct {
	entryRepo    repository.StockEntryRepository
	movementRepo repository.StockMovementRepository
}

// NewQueryUseCase construye el caso de uso con repos atados al pool.
func NewQueryUseCase(entryRepo repository.StockEntryRepository, movementRepo repository.StockMovementRepository) *QueryUseCase {
	return &QueryUseCase{entryRepo: entryRepo, movementRepo: movementRepo}
}

// ListStock lista el stock visible para el caller: admin ve todas las sedes,
// técnico solo la suya. Un técnico sin sede ligada no ve filas.
func (uc *QueryUseCase) ListStock(ctx context.Context, caller scope.Access) ([]dto.StockEntryResponse, error) {
	if err := caller.Valid(); err != nil {
		return nil, err
	}
	filter, unbound := caller.SiteFilter()
	if unbound {
		return []dto.StockEntryResponse{}, nil
	}
	views, err := uc.entryRepo.ListViews(filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockEntryResponse, 0, len(views))
	for _, v := range views {
		out = append(out, dto.StockEntryResponse{
			ID:          v.ID,
			ProductName: v.ProductName,
			SiteName:    v.SiteName,
			Quantity:    v.Quantity,
		})
	}
	return out, nil
}

// ListMovements lista el historial visible para el caller, del más reciente
// al más antiguo. Un técnico sin sede ligada no ve filas.
func (uc *QueryUseCase) ListMovements(ctx context.Context, caller scope.Access) ([]dto.MovementHistoryResponse, error) {
	if err := caller.Valid(); err != nil {
		return nil, err
	}
	filter, unbound := caller.SiteFilter()
	if unbound {
		return []dto.MovementHistoryResponse{}, nil
	}
	views, err := uc.movementRepo.ListViews(filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementHistoryResponse, 0, len(views))
	for _, v := range views {
		out = append(out, dto.MovementHistoryResponse{
			ID:             v.ID,
			ProductName:    v.ProductName,
			SiteName:       v.SiteName,
			QuantityChange: v.QuantityChange,
			MovementType:   v.Type,
			Timestamp:      v.Timestamp,
			Username:       v.Username,
		})
	}
	return out, nil
}

// SetQuantity fija la cantidad de una fila existente a un valor no negativo
// arbitrario (solo admin). No crea filas y no escribe movimiento en el libro.
func (uc *QueryUseCase) SetQuantity(ctx context.Context, caller scope.Access, entryID string, quantity int64) (*entity.StockEntry, error) {
	if err := caller.RequireAdmin(); err != nil {
		return nil, err
	}
	if entryID == "" || quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	return uc.entryRepo.UpdateQuantity(entryID, quantity)
}
