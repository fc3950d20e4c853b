package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/stocktrack-api/internal/domain"
	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
	"github.com/jhoicas/stocktrack-api/internal/domain/repository"
)

var _ repository.StockEntryRepository = (*StockEntryRepo)(nil)

// StockEntryRepo implementación de StockEntryRepository sobre PostgreSQL
// (usable con pool o tx).
type StockEntryRepo struct {
	q Querier
}

// NewStockEntryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockEntryRepository(q Querier) *StockEntryRepo {
	return &StockEntryRepo{q: q}
}

// GetForUpdate obtiene la fila de (producto, sede) y la bloquea para update
// (SELECT FOR UPDATE). Devuelve nil si no existe; el lock solo aplica a filas
// existentes, el caso de creación lo cubre ApplyDelta.
func (r *StockEntryRepo) GetForUpdate(productID, siteID string) (*entity.StockEntry, error) {
	query := `
		SELECT id, product_id, site_id, quantity, updated_at
		FROM stock_entries WHERE product_id = $1 AND site_id = $2
		FOR UPDATE`
	var e entity.StockEntry
	err := r.q.QueryRow(context.Background(), query, productID, siteID).Scan(
		&e.ID, &e.ProductID, &e.SiteID, &e.Quantity, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock entry for update: %w", err)
	}
	return &e, nil
}

// ApplyDelta crea la fila con GREATEST(0, delta) o, si ya existe, suma el
// delta con recorte en 0. El upsert resuelve la carrera de dos primeras
// transacciones concurrentes sobre el mismo par.
func (r *StockEntryRepo) ApplyDelta(productID, siteID string, delta int64) (*entity.StockEntry, error) {
	query := `
		INSERT INTO stock_entries (id, product_id, site_id, quantity, updated_at)
		VALUES ($1, $2, $3, GREATEST(0, $4::bigint), now())
		ON CONFLICT (product_id, site_id)
		DO UPDATE SET quantity = GREATEST(0, stock_entries.quantity + $4::bigint), updated_at = now()
		RETURNING id, product_id, site_id, quantity, updated_at`
	var e entity.StockEntry
	err := r.q.QueryRow(context.Background(), query, uuid.New().String(), productID, siteID, delta).Scan(
		&e.ID, &e.ProductID, &e.SiteID, &e.Quantity, &e.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("apply stock delta: %w", err)
	}
	return &e, nil
}

// UpdateQuantity fija la cantidad de una fila existente. No crea filas:
// sin fila devuelve domain.ErrNotFound.
func (r *StockEntryRepo) UpdateQuantity(id string, quantity int64) (*entity.StockEntry, error) {
	query := `
		UPDATE stock_entries SET quantity = $2, updated_at = now()
		WHERE id = $1
		RETURNING id, product_id, site_id, quantity, updated_at`
	var e entity.StockEntry
	err := r.q.QueryRow(context.Background(), query, id, quantity).Scan(
		&e.ID, &e.ProductID, &e.SiteID, &e.Quantity, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update stock quantity: %w", err)
	}
	return &e, nil
}

// ListViews lista el stock con nombres resueltos, ordenado por sede y
// producto. siteID nil = todas las sedes.
func (r *StockEntryRepo) ListViews(siteID *string) ([]*entity.StockEntryView, error) {
	query := `
		SELECT s.id, p.name AS product_name, si.name AS site_name, s.site_id, s.quantity
		FROM stock_entries s
		JOIN products p ON s.product_id = p.id
		JOIN sites si ON s.site_id = si.id`
	args := []any{}
	if siteID != nil {
		query += ` WHERE s.site_id = $1`
		args = append(args, *siteID)
	}
	query += ` ORDER BY si.name, p.name`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock entries: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockEntryView
	for rows.Next() {
		var v entity.StockEntryView
		if err := rows.Scan(&v.ID, &v.ProductName, &v.SiteName, &v.SiteID, &v.Quantity); err != nil {
			return nil, fmt.Errorf("scan stock entry: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}
