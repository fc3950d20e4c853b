package stock

import (
	"context"

	"github.com/google/uuid"
	"github.com/jhoicas/stocktrack-api/internal/application/dto"
	"github.com/jhoicas/stocktrack-api/internal/application/scope"
	"github.com/jhoicas/stocktrack-api/internal/domain"
	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
	"github.com/jhoicas/stocktrack-api/internal/domain/repository"
)

// PostMovementUseCase aplica movimientos de stock de forma transaccional:
// bloqueo de fila (SELECT FOR UPDATE) sobre la proyección, recorte en 0 y
// alta en el libro dentro de la misma transacción.
type PostMovementUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	siteRepo    repository.SiteRepository
}

// NewPostMovementUseCase construye el caso de uso.
func NewPostMovementUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	siteRepo repository.SiteRepository,
) *PostMovementUseCase {
	return &PostMovementUseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		siteRepo:    siteRepo,
	}
}

// PostMovement valida la entrada, aplica el scoping y ejecuta la transacción:
//  1. Bloquea la fila de (producto, sede) si existe.
//  2. Ausente: la crea con max(0, delta); una salida contra una fila
//     inexistente queda en 0, nunca negativa.
//  3. Presente: quantity = max(0, quantity + delta).
//  4. Inserta el movimiento con la magnitud SOLICITADA, sin recortar: el
//     libro conserva la auditoría aunque la proyección haya tocado el piso.
//
// Devuelve el movimiento persistido con id y timestamp asignados.
func (uc *PostMovementUseCase) PostMovement(ctx context.Context, caller scope.Access, in dto.PostMovementRequest) (*entity.StockMovement, error) {
	// Validar antes de tocar la BD: ningún efecto parcial ante entrada mala
	if err := caller.Valid(); err != nil {
		return nil, err
	}
	if in.ProductID == "" || in.SiteID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.QuantityChange <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidMovementType(in.MovementType) {
		return nil, domain.ErrInvalidInput
	}

	// Scoper: postear es mutación (solo admin) y además la sede debe estar
	// al alcance del caller. Un técnico falla aquí sin tocar el store.
	if err := caller.CheckSite(in.SiteID); err != nil {
		return nil, err
	}
	if err := caller.RequireAdmin(); err != nil {
		return nil, err
	}

	// Las referencias deben existir (integridad relacional)
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	site, err := uc.siteRepo.GetByID(in.SiteID)
	if err != nil {
		return nil, err
	}
	if site == nil {
		return nil, domain.ErrNotFound
	}

	delta := in.QuantityChange
	if in.MovementType == entity.MovementTypeOut {
		delta = -delta
	}

	userID := caller.UserID
	movement := &entity.StockMovement{
		ID:             uuid.New().String(),
		ProductID:      in.ProductID,
		SiteID:         in.SiteID,
		QuantityChange: in.QuantityChange,
		Type:           in.MovementType,
		UserID:         &userID,
	}

	err = uc.txRunner.Run(ctx, func(
		entryRepo repository.StockEntryRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		entry, err := entryRepo.GetForUpdate(in.ProductID, in.SiteID)
		if err != nil {
			return err
		}
		if entry == nil {
			// Primera vez para este par: upsert atómico con recorte, por si
			// otra transacción concurrente crea la fila entre el SELECT y acá
			if _, err := entryRepo.ApplyDelta(in.ProductID, in.SiteID, delta); err != nil {
				return err
			}
		} else {
			newQty := entry.Quantity + delta
			if newQty < 0 {
				newQty = 0
			}
			if _, err := entryRepo.UpdateQuantity(entry.ID, newQty); err != nil {
				return err
			}
		}
		// El timestamp lo asigna el servidor al insertar
		return movementRepo.Create(movement)
	})
	if err != nil {
		return nil, err
	}
	return movement, nil
}
