package delivery

import (
	"context"

	"github.com/StearCodeK/MajoTerminalo/internal/domain/repository"
)

// TxRunner ejecuta el commit de una entrega dentro de una transacción:
// cabecera, líneas, descuentos de saldo y movimientos de salida se escriben
// como una sola unidad o se revierten completos.
type TxRunner interface {
	RunDelivery(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
		deliveryRepo repository.DeliveryRepository,
	) error) error
}
