package entity

import "time"

// Product representa un producto rastreado por el inventario.
// La identidad (ID) es inmutable; nombre y descripción pueden cambiar.
type Product struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
