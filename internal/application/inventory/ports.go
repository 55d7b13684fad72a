package inventory

import (
	"context"

	"github.com/StearCodeK/MajoTerminalo/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que saldo y movimiento se escriban
// como una sola unidad (todo o nada).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
	) error) error
}
