package delivery

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StearCodeK/MajoTerminalo/internal/application/dto"
	"github.com/StearCodeK/MajoTerminalo/internal/domain"
	"github.com/StearCodeK/MajoTerminalo/internal/domain/entity"
	"github.com/StearCodeK/MajoTerminalo/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de prueba en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (r *fakeProductRepo) Create(*entity.Product) error              { return nil }
func (r *fakeProductRepo) GetByCode(string) (*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) Update(*entity.Product) error              { return nil }
func (r *fakeProductRepo) Deactivate(string) error                   { return nil }
func (r *fakeProductRepo) List(repository.ProductFilter) ([]*entity.InventoryItem, error) {
	return nil, nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *fakeProductRepo) GetStockForUpdate(id string) (int64, error) {
	p, ok := r.products[id]
	if !ok {
		return 0, domain.ErrNotFound
	}
	return p.Stock, nil
}

func (r *fakeProductRepo) UpdateStock(id string, stock int64) error {
	r.products[id].Stock = stock
	return nil
}

type fakeMovementRepo struct {
	movements []*entity.StockMovement
}

func (r *fakeMovementRepo) Create(m *entity.StockMovement) error {
	r.movements = append(r.movements, m)
	return nil
}
func (r *fakeMovementRepo) ListByProduct(string, *time.Time, *time.Time, int, int) ([]*entity.MovementDetail, error) {
	return nil, nil
}
func (r *fakeMovementRepo) CountByProduct(string) (int, error) { return 0, nil }

type fakeDeliveryRepo struct {
	requests      []*entity.DeliveryRequest
	items         []*entity.RequestItem
	createItemErr error
}

func (r *fakeDeliveryRepo) CreateRequest(req *entity.DeliveryRequest) error {
	r.requests = append(r.requests, req)
	return nil
}

func (r *fakeDeliveryRepo) CreateItem(it *entity.RequestItem) error {
	if r.createItemErr != nil {
		return r.createItemErr
	}
	r.items = append(r.items, it)
	return nil
}

func (r *fakeDeliveryRepo) GetRequest(string) (*entity.RequestSummary, error) { return nil, nil }
func (r *fakeDeliveryRepo) ListRequests(repository.RequestFilter) ([]*entity.RequestSummary, error) {
	return nil, nil
}
func (r *fakeDeliveryRepo) ListItems(string) ([]*entity.RequestItemDetail, error) { return nil, nil }

type fakeDepartmentRepo struct{ depts map[string]*entity.Department }

func (r *fakeDepartmentRepo) Create(*entity.Department) error { return nil }
func (r *fakeDepartmentRepo) GetByID(id string) (*entity.Department, error) {
	return r.depts[id], nil
}
func (r *fakeDepartmentRepo) ListActive() ([]*entity.Department, error) { return nil, nil }

type fakeRequesterRepo struct{ requesters map[string]*entity.Requester }

func (r *fakeRequesterRepo) Create(*entity.Requester) error { return nil }
func (r *fakeRequesterRepo) GetByID(id string) (*entity.Requester, error) {
	return r.requesters[id], nil
}
func (r *fakeRequesterRepo) GetByCedula(string) (*entity.Requester, error) { return nil, nil }
func (r *fakeRequesterRepo) List() ([]*entity.Requester, error)            { return nil, nil }

// fakeTxRunner restaura el estado previo si el callback falla, emulando el
// rollback de la transacción.
type fakeTxRunner struct {
	productRepo  *fakeProductRepo
	movementRepo *fakeMovementRepo
	deliveryRepo *fakeDeliveryRepo
}

func (t *fakeTxRunner) RunDelivery(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
	deliveryRepo repository.DeliveryRepository,
) error) error {
	stocksBefore := make(map[string]int64, len(t.productRepo.products))
	for id, p := range t.productRepo.products {
		stocksBefore[id] = p.Stock
	}
	movsBefore := len(t.movementRepo.movements)
	reqsBefore := len(t.deliveryRepo.requests)
	itemsBefore := len(t.deliveryRepo.items)

	if err := fn(t.productRepo, t.movementRepo, t.deliveryRepo); err != nil {
		for id, stock := range stocksBefore {
			t.productRepo.products[id].Stock = stock
		}
		t.movementRepo.movements = t.movementRepo.movements[:movsBefore]
		t.deliveryRepo.requests = t.deliveryRepo.requests[:reqsBefore]
		t.deliveryRepo.items = t.deliveryRepo.items[:itemsBefore]
		return err
	}
	return nil
}

type fixture struct {
	uc             *RegisterDeliveryUseCase
	productRepo    *fakeProductRepo
	movementRepo   *fakeMovementRepo
	deliveryRepo   *fakeDeliveryRepo
	departmentRepo *fakeDepartmentRepo
}

func newFixture(stocks map[string]int64) *fixture {
	products := make(map[string]*entity.Product, len(stocks))
	for id, stock := range stocks {
		products[id] = &entity.Product{ID: id, Name: "Producto " + id, Stock: stock, Active: true}
	}
	productRepo := &fakeProductRepo{products: products}
	movementRepo := &fakeMovementRepo{}
	deliveryRepo := &fakeDeliveryRepo{}
	runner := &fakeTxRunner{productRepo: productRepo, movementRepo: movementRepo, deliveryRepo: deliveryRepo}
	departmentRepo := &fakeDepartmentRepo{depts: map[string]*entity.Department{"d1": {ID: "d1", Name: "Laboratorio", Active: true}}}
	uc := NewRegisterDeliveryUseCase(
		runner,
		productRepo,
		departmentRepo,
		&fakeRequesterRepo{requesters: map[string]*entity.Requester{"s1": {ID: "s1", Name: "Ana", DepartmentID: "d1"}}},
		deliveryRepo,
	)
	return &fixture{uc: uc, productRepo: productRepo, movementRepo: movementRepo, deliveryRepo: deliveryRepo, departmentRepo: departmentRepo}
}

func validRequest(items ...dto.DeliveryItemRequest) dto.RegisterDeliveryRequest {
	return dto.RegisterDeliveryRequest{
		DepartmentID: "d1",
		RequesterID:  "s1",
		Memo:         "ENT-042",
		Items:        items,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterDelivery_DescuentaYRegistraUnaSalidaPorLinea(t *testing.T) {
	f := newFixture(map[string]int64{"p1": 10, "p2": 8})

	out, err := f.uc.RegisterDelivery(context.Background(), "u1", validRequest(
		dto.DeliveryItemRequest{ProductID: "p1", Quantity: 3},
		dto.DeliveryItemRequest{ProductID: "p2", Quantity: 5},
	))
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, 2, out.ItemCount)

	// Cada línea descuenta exactamente su cantidad.
	assert.Equal(t, int64(7), f.productRepo.products["p1"].Stock)
	assert.Equal(t, int64(3), f.productRepo.products["p2"].Stock)

	// Un movimiento Salida por línea, referenciando la solicitud.
	require.Len(t, f.movementRepo.movements, 2)
	for _, mov := range f.movementRepo.movements {
		assert.Equal(t, entity.MovementSalida, mov.Type)
		assert.Equal(t, "u1", mov.ResponsibleID)
		assert.Equal(t, "Solicitud #ENT-042", mov.Reference)
	}
	assert.Equal(t, int64(3), f.movementRepo.movements[0].Quantity)
	assert.Equal(t, int64(5), f.movementRepo.movements[1].Quantity)

	// Cabecera + líneas en orden de inserción.
	require.Len(t, f.deliveryRepo.requests, 1)
	require.Len(t, f.deliveryRepo.items, 2)
	assert.Equal(t, 0, f.deliveryRepo.items[0].Position)
	assert.Equal(t, "p1", f.deliveryRepo.items[0].ProductID)
	assert.Equal(t, 1, f.deliveryRepo.items[1].Position)
}

func TestRegisterDelivery_CantidadSobreStockRechazada(t *testing.T) {
	f := newFixture(map[string]int64{"p1": 4})

	_, err := f.uc.RegisterDelivery(context.Background(), "u1", validRequest(
		dto.DeliveryItemRequest{ProductID: "p1", Quantity: 5},
	))
	require.ErrorIs(t, err, domain.ErrStockInsuficiente)

	assert.Equal(t, int64(4), f.productRepo.products["p1"].Stock)
	assert.Empty(t, f.movementRepo.movements)
	assert.Empty(t, f.deliveryRepo.requests)
}

func TestRegisterDelivery_LineasRepetidasSeCombinanContraElDisponible(t *testing.T) {
	// Dos líneas del mismo producto que juntas exceden el stock: la segunda
	// debe rechazarse aunque cada una por separado quepa.
	f := newFixture(map[string]int64{"p1": 6})

	_, err := f.uc.RegisterDelivery(context.Background(), "u1", validRequest(
		dto.DeliveryItemRequest{ProductID: "p1", Quantity: 4},
		dto.DeliveryItemRequest{ProductID: "p1", Quantity: 4},
	))
	assert.ErrorIs(t, err, domain.ErrStockInsuficiente)
	assert.Equal(t, int64(6), f.productRepo.products["p1"].Stock)
}

func TestRegisterDelivery_FalloPersistenciaRevierteTodo(t *testing.T) {
	f := newFixture(map[string]int64{"p1": 10, "p2": 8})
	f.deliveryRepo.createItemErr = assert.AnError

	_, err := f.uc.RegisterDelivery(context.Background(), "u1", validRequest(
		dto.DeliveryItemRequest{ProductID: "p1", Quantity: 3},
		dto.DeliveryItemRequest{ProductID: "p2", Quantity: 5},
	))
	require.Error(t, err)

	// Rollback completo: cero movimientos nuevos y cero cambios de saldo.
	assert.Equal(t, int64(10), f.productRepo.products["p1"].Stock)
	assert.Equal(t, int64(8), f.productRepo.products["p2"].Stock)
	assert.Empty(t, f.movementRepo.movements)
	assert.Empty(t, f.deliveryRepo.requests)
	assert.Empty(t, f.deliveryRepo.items)
}

func TestRegisterDelivery_ValidacionesDeCabecera(t *testing.T) {
	f := newFixture(map[string]int64{"p1": 10})
	item := dto.DeliveryItemRequest{ProductID: "p1", Quantity: 1}

	tests := []struct {
		name    string
		actorID string
		mutate  func(*dto.RegisterDeliveryRequest)
		wantErr error
	}{
		{"sin usuario", "", func(r *dto.RegisterDeliveryRequest) {}, domain.ErrUnauthorized},
		{"sin departamento", "u1", func(r *dto.RegisterDeliveryRequest) { r.DepartmentID = "" }, domain.ErrInvalidInput},
		{"sin solicitante", "u1", func(r *dto.RegisterDeliveryRequest) { r.RequesterID = "" }, domain.ErrInvalidInput},
		{"sin memo", "u1", func(r *dto.RegisterDeliveryRequest) { r.Memo = "" }, domain.ErrInvalidInput},
		{"carrito vacío", "u1", func(r *dto.RegisterDeliveryRequest) { r.Items = nil }, domain.ErrSolicitudVacia},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validRequest(item)
			tt.mutate(&in)
			_, err := f.uc.RegisterDelivery(context.Background(), tt.actorID, in)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, f.deliveryRepo.requests, "validación fallida no debe persistir nada")
		})
	}
}

func TestRegisterDelivery_DepartamentoInactivoRechazado(t *testing.T) {
	f := newFixture(map[string]int64{"p1": 10})
	f.departmentRepo.depts["d1"].Active = false

	_, err := f.uc.RegisterDelivery(context.Background(), "u1", validRequest(
		dto.DeliveryItemRequest{ProductID: "p1", Quantity: 1},
	))
	assert.ErrorIs(t, err, domain.ErrRelacionInactiva)
	assert.Empty(t, f.deliveryRepo.requests)
}

func TestRegisterDelivery_ProductoInactivoRechazado(t *testing.T) {
	f := newFixture(map[string]int64{"p1": 10})
	f.productRepo.products["p1"].Active = false

	_, err := f.uc.RegisterDelivery(context.Background(), "u1", validRequest(
		dto.DeliveryItemRequest{ProductID: "p1", Quantity: 1},
	))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
