package repository

import "github.com/jhoicas/stocktrack-api/internal/domain/entity"

// StockMovementRepository define el puerto de persistencia del libro de
// movimientos. Solo inserción y lectura: las filas nunca se actualizan ni se
// borran.
type StockMovementRepository interface {
	// Create persiste un movimiento. El timestamp lo asigna el servidor al
	// insertar y queda escrito de vuelta en movement.
	Create(movement *entity.StockMovement) error
	// ListViews lista el historial con nombres resueltos, ordenado del más
	// reciente al más antiguo. siteID nil = todas las sedes.
	ListViews(siteID *string) ([]*entity.StockMovementView, error)
}
