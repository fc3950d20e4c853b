package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
	"github.com/jhoicas/stocktrack-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación sobre PostgreSQL (usable con pool o tx).
// El libro es append-only: no hay UPDATE ni DELETE.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create inserta un movimiento. El timestamp lo asigna el servidor (now() al
// commit) y queda escrito de vuelta en movement.
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_movements (id, product_id, site_id, quantity_change, movement_type, user_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING "timestamp"`
	err := r.q.QueryRow(context.Background(), query,
		movement.ID, movement.ProductID, movement.SiteID,
		movement.QuantityChange, movement.Type, movement.UserID,
	).Scan(&movement.Timestamp)
	if err != nil {
		return fmt.Errorf("create stock movement: %w", err)
	}
	return nil
}

// ListViews lista el historial con nombres resueltos, del más reciente al más
// antiguo (id como desempate estable). siteID nil = todas las sedes.
func (r *StockMovementRepo) ListViews(siteID *string) ([]*entity.StockMovementView, error) {
	query := `
		SELECT sm.id, p.name AS product_name, si.name AS site_name, sm.site_id,
		       sm.quantity_change, sm.movement_type, sm."timestamp", u.username AS user_name
		FROM stock_movements sm
		JOIN products p ON sm.product_id = p.id
		JOIN sites si ON sm.site_id = si.id
		LEFT JOIN users u ON sm.user_id = u.id`
	args := []any{}
	if siteID != nil {
		query += ` WHERE sm.site_id = $1`
		args = append(args, *siteID)
	}
	query += ` ORDER BY sm."timestamp" DESC, sm.id DESC`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovementView
	for rows.Next() {
		var v entity.StockMovementView
		if err := rows.Scan(&v.ID, &v.ProductName, &v.SiteName, &v.SiteID,
			&v.QuantityChange, &v.Type, &v.Timestamp, &v.Username); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}
