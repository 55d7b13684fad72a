package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/StearCodeK/MajoTerminalo/internal/domain"
	"github.com/StearCodeK/MajoTerminalo/internal/domain/entity"
	"github.com/StearCodeK/MajoTerminalo/internal/domain/repository"
)

// EntryInput describe un asiento del libro de movimientos: delta con signo
// (positivo Entrada, negativo Salida) más el contexto de quién, dónde y por
// qué. La cantidad registrada es siempre el valor absoluto del delta.
type EntryInput struct {
	ProductID     string
	Delta         int64
	LocationID    string // opcional
	ResponsibleID string // opcional: vacío si no hubo sesión
	Reference     string
}

// StockLedger aplica deltas de stock de forma transaccional: actualiza el
// saldo del producto y agrega exactamente un StockMovement, o nada.
type StockLedger struct {
	txRunner TxRunner
}

// NewStockLedger construye el caso de uso.
func NewStockLedger(txRunner TxRunner) *StockLedger {
	return &StockLedger{txRunner: txRunner}
}

// Apply inicia una transacción y aplica el asiento. Un delta cero no escribe
// movimiento ni toca el saldo.
func (l *StockLedger) Apply(ctx context.Context, in EntryInput) error {
	if in.ProductID == "" {
		return domain.ErrInvalidInput
	}
	if in.Delta == 0 {
		return nil
	}
	now := time.Now()
	return l.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
	) error {
		return ApplyInTx(productRepo, movementRepo, in, now)
	})
}

// ApplyInTx aplica el asiento usando repositorios ya atados a la transacción
// del caller (mismo patrón que una salida dentro del commit de una entrega).
// Bloquea la fila del producto, verifica que el saldo no quede negativo,
// actualiza el saldo y agrega el movimiento.
func ApplyInTx(
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
	in EntryInput,
	now time.Time,
) error {
	if in.Delta == 0 {
		return nil
	}
	stock, err := productRepo.GetStockForUpdate(in.ProductID)
	if err != nil {
		return err
	}
	newStock := stock + in.Delta
	if newStock < 0 {
		return domain.ErrStockInsuficiente
	}
	if err := productRepo.UpdateStock(in.ProductID, newStock); err != nil {
		return err
	}

	movementType := entity.MovementEntrada
	quantity := in.Delta
	if in.Delta < 0 {
		movementType = entity.MovementSalida
		quantity = -in.Delta
	}
	return movementRepo.Create(&entity.StockMovement{
		ID:            uuid.New().String(),
		ProductID:     in.ProductID,
		Type:          movementType,
		Quantity:      quantity,
		LocationID:    in.LocationID,
		ResponsibleID: in.ResponsibleID,
		Reference:     in.Reference,
		CreatedAt:     now,
	})
}
