package dto

import "time"

// StockEntryResponse fila de stock con nombres resueltos.
type StockEntryResponse struct {
	ID          string `json:"id"`
	ProductName string `json:"product_name"`
	SiteName    string `json:"site_name"`
	Quantity    int64  `json:"quantity"`
}

// SetQuantityRequest body para PUT /api/stock/:id (solo admin).
type SetQuantityRequest struct {
	Quantity *int64 `json:"quantity"` // puntero para distinguir ausente de 0
}

// PostMovementRequest body para POST /api/stock/movements.
type PostMovementRequest struct {
	ProductID      string `json:"product_id"`
	SiteID         string `json:"site_id"`
	QuantityChange int64  `json:"quantity_change"`
	MovementType   string `json:"movement_type"`
}

// MovementResponse salida de un movimiento del libro.
type MovementResponse struct {
	ID             string    `json:"id"`
	ProductID      string    `json:"product_id"`
	SiteID         string    `json:"site_id"`
	QuantityChange int64     `json:"quantity_change"`
	MovementType   string    `json:"movement_type"`
	UserID         *string   `json:"user_id,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
}

// MovementHistoryResponse fila del historial con nombres resueltos.
type MovementHistoryResponse struct {
	ID             string    `json:"id"`
	ProductName    string    `json:"product_name"`
	SiteName       string    `json:"site_name"`
	QuantityChange int64     `json:"quantity_change"`
	MovementType   string    `json:"movement_type"`
	Timestamp      time.Time `json:"timestamp"`
	Username       *string   `json:"user_name,omitempty"`
}
