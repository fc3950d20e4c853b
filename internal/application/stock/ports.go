package stock

import (
	"context"

	"github.com/jhoicas/stocktrack-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la actualización de la
// proyección y el alta en el libro sean todo-o-nada; ante conflictos de
// serialización reintenta de forma acotada y termina en domain.ErrConflict.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		entryRepo repository.StockEntryRepository,
		movementRepo repository.StockMovementRepository,
	) error) error
}
