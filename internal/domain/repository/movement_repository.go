package repository

import (
	"time"

	"github.com/StearCodeK/MajoTerminalo/internal/domain/entity"
)

// MovementRepository define el puerto para el libro de movimientos.
// Solo inserta y lista: los movimientos nunca se actualizan ni se borran.
type MovementRepository interface {
	Create(movement *entity.StockMovement) error
	ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.MovementDetail, error)
	CountByProduct(productID string) (int, error)
}
