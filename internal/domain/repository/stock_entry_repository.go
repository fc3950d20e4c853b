package repository

import "github.com/jhoicas/stocktrack-api/internal/domain/entity"

// StockEntryRepository define el puerto para la proyección de cantidades.
// Las operaciones de escritura se usan dentro de transacciones para garantizar
// consistencia con el libro de movimientos.
type StockEntryRepository interface {
	// GetForUpdate obtiene la fila de (producto, sede) bloqueándola para
	// update (SELECT FOR UPDATE). Devuelve nil si no existe.
	GetForUpdate(productID, siteID string) (*entity.StockEntry, error)
	// ApplyDelta crea la fila con GREATEST(0, delta) o, si otra transacción la
	// creó primero, suma el delta con recorte en 0. Upsert atómico.
	ApplyDelta(productID, siteID string, delta int64) (*entity.StockEntry, error)
	// UpdateQuantity fija la cantidad de una fila existente.
	// Devuelve domain.ErrNotFound si la fila no existe; nunca crea filas.
	UpdateQuantity(id string, quantity int64) (*entity.StockEntry, error)
	// ListViews lista el stock con nombres resueltos, ordenado por sede y
	// producto. siteID nil = todas las sedes.
	ListViews(siteID *string) ([]*entity.StockEntryView, error)
}
