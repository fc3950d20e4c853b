package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeIn  = "in"  // entrada
	MovementTypeOut = "out" // salida
)

// ValidMovementType verifica que el tipo sea exactamente "in" o "out".
func ValidMovementType(t string) bool {
	return t == MovementTypeIn || t == MovementTypeOut
}

// StockMovement es un registro inmutable del libro de movimientos.
// QuantityChange guarda la magnitud solicitada (siempre positiva); el signo lo
// da Type. El libro registra la magnitud sin recortar aunque la proyección se
// haya recortado en 0: el libro es la verdad, la proyección es una caché.
type StockMovement struct {
	ID             string
	ProductID      string
	SiteID         string
	QuantityChange int64
	Type           string
	UserID         *string // quién registró el movimiento; nullable en storage
	Timestamp      time.Time
}

// StockMovementView fila del historial con nombres resueltos.
type StockMovementView struct {
	ID             string
	ProductName    string
	SiteName       string
	SiteID         string
	QuantityChange int64
	Type           string
	Timestamp      time.Time
	Username       *string
}
