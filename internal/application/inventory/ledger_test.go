package inventory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StearCodeK/MajoTerminalo/internal/domain"
	"github.com/StearCodeK/MajoTerminalo/internal/domain/entity"
	"github.com/StearCodeK/MajoTerminalo/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de prueba en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	stocks         map[string]int64
	updateStockErr error
}

func newFakeProductRepo(stocks map[string]int64) *fakeProductRepo {
	return &fakeProductRepo{stocks: stocks}
}

func (r *fakeProductRepo) Create(*entity.Product) error                  { return nil }
func (r *fakeProductRepo) GetByID(string) (*entity.Product, error)       { return nil, nil }
func (r *fakeProductRepo) GetByCode(string) (*entity.Product, error)     { return nil, nil }
func (r *fakeProductRepo) Update(*entity.Product) error                  { return nil }
func (r *fakeProductRepo) Deactivate(string) error                       { return nil }
func (r *fakeProductRepo) List(repository.ProductFilter) ([]*entity.InventoryItem, error) {
	return nil, nil
}

func (r *fakeProductRepo) GetStockForUpdate(id string) (int64, error) {
	stock, ok := r.stocks[id]
	if !ok {
		return 0, domain.ErrNotFound
	}
	return stock, nil
}

func (r *fakeProductRepo) UpdateStock(id string, stock int64) error {
	if r.updateStockErr != nil {
		return r.updateStockErr
	}
	r.stocks[id] = stock
	return nil
}

type fakeMovementRepo struct {
	movements []*entity.StockMovement
	createErr error
}

func (r *fakeMovementRepo) Create(m *entity.StockMovement) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.movements = append(r.movements, m)
	return nil
}

func (r *fakeMovementRepo) ListByProduct(string, *time.Time, *time.Time, int, int) ([]*entity.MovementDetail, error) {
	return nil, nil
}
func (r *fakeMovementRepo) CountByProduct(string) (int, error) { return 0, nil }

// fakeTxRunner emula la semántica todo-o-nada: toma una instantánea del estado
// y la restaura si el callback falla (como haría el rollback de la BD).
type fakeTxRunner struct {
	productRepo  *fakeProductRepo
	movementRepo *fakeMovementRepo
}

func (t *fakeTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
) error) error {
	stocksBefore := make(map[string]int64, len(t.productRepo.stocks))
	for k, v := range t.productRepo.stocks {
		stocksBefore[k] = v
	}
	movementsBefore := len(t.movementRepo.movements)

	if err := fn(t.productRepo, t.movementRepo); err != nil {
		t.productRepo.stocks = stocksBefore
		t.movementRepo.movements = t.movementRepo.movements[:movementsBefore]
		return err
	}
	return nil
}

func newLedgerFixture(stocks map[string]int64) (*StockLedger, *fakeProductRepo, *fakeMovementRepo) {
	productRepo := newFakeProductRepo(stocks)
	movementRepo := &fakeMovementRepo{}
	runner := &fakeTxRunner{productRepo: productRepo, movementRepo: movementRepo}
	return NewStockLedger(runner), productRepo, movementRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestApply_EntradaRegistraUnMovimiento(t *testing.T) {
	ledger, productRepo, movementRepo := newLedgerFixture(map[string]int64{"p1": 10})

	err := ledger.Apply(context.Background(), EntryInput{
		ProductID:     "p1",
		Delta:         7,
		ResponsibleID: "u1",
		Reference:     "Entrada de stock",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(17), productRepo.stocks["p1"])
	require.Len(t, movementRepo.movements, 1)
	mov := movementRepo.movements[0]
	assert.Equal(t, entity.MovementEntrada, mov.Type)
	assert.Equal(t, int64(7), mov.Quantity, "la cantidad registrada es el valor absoluto")
	assert.Equal(t, "u1", mov.ResponsibleID)
	assert.Equal(t, "Entrada de stock", mov.Reference)
}

func TestApply_SalidaRegistraCantidadPositiva(t *testing.T) {
	ledger, productRepo, movementRepo := newLedgerFixture(map[string]int64{"p1": 10})

	err := ledger.Apply(context.Background(), EntryInput{ProductID: "p1", Delta: -6, Reference: "ajuste"})
	require.NoError(t, err)

	assert.Equal(t, int64(4), productRepo.stocks["p1"])
	require.Len(t, movementRepo.movements, 1)
	assert.Equal(t, entity.MovementSalida, movementRepo.movements[0].Type)
	assert.Equal(t, int64(6), movementRepo.movements[0].Quantity)
}

func TestApply_DeltaCeroNoEscribeNada(t *testing.T) {
	ledger, productRepo, movementRepo := newLedgerFixture(map[string]int64{"p1": 10})

	err := ledger.Apply(context.Background(), EntryInput{ProductID: "p1", Delta: 0, Reference: "sin cambio"})
	require.NoError(t, err)

	assert.Equal(t, int64(10), productRepo.stocks["p1"])
	assert.Empty(t, movementRepo.movements, "delta cero no debe emitir movimiento")
}

func TestApply_SaldoNegativoRechazado(t *testing.T) {
	ledger, productRepo, movementRepo := newLedgerFixture(map[string]int64{"p1": 3})

	err := ledger.Apply(context.Background(), EntryInput{ProductID: "p1", Delta: -4})
	require.ErrorIs(t, err, domain.ErrStockInsuficiente)

	assert.Equal(t, int64(3), productRepo.stocks["p1"], "el saldo no debe cambiar")
	assert.Empty(t, movementRepo.movements)
}

func TestApply_FalloAlRegistrarMovimientoRevierteSaldo(t *testing.T) {
	// Si el movimiento no puede escribirse, el cambio de saldo tampoco queda:
	// ambos van en la misma transacción.
	ledger, productRepo, movementRepo := newLedgerFixture(map[string]int64{"p1": 10})
	movementRepo.createErr = assert.AnError

	err := ledger.Apply(context.Background(), EntryInput{ProductID: "p1", Delta: 5})
	require.Error(t, err)

	assert.Equal(t, int64(10), productRepo.stocks["p1"], "rollback debe restaurar el saldo")
	assert.Empty(t, movementRepo.movements)
}

func TestApply_SinProductoEsInvalido(t *testing.T) {
	ledger, _, _ := newLedgerFixture(map[string]int64{})
	err := ledger.Apply(context.Background(), EntryInput{Delta: 5})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
