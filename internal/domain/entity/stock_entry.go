package entity

import "time"

// StockEntry es la proyección de cantidad actual para un par (producto, sede).
// Existe a lo sumo una fila por par; se crea de forma perezosa con el primer
// movimiento. Quantity nunca se persiste negativa (se recorta en 0).
type StockEntry struct {
	ID        string
	ProductID string
	SiteID    string
	Quantity  int64
	UpdatedAt time.Time
}

// StockEntryView fila de stock con nombres resueltos para listados y reportes.
type StockEntryView struct {
	ID          string
	ProductName string
	SiteName    string
	SiteID      string
	Quantity    int64
}
