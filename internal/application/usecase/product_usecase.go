package usecase

import (
	"context"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/StearCodeK/MajoTerminalo/internal/application/dto"
	appinventory "github.com/StearCodeK/MajoTerminalo/internal/application/inventory"
	"github.com/StearCodeK/MajoTerminalo/internal/domain"
	"github.com/StearCodeK/MajoTerminalo/internal/domain/entity"
	dominv "github.com/StearCodeK/MajoTerminalo/internal/domain/inventory"
	"github.com/StearCodeK/MajoTerminalo/internal/domain/repository"
)

// Referencias de movimiento emitidas por las operaciones de producto.
const (
	refProductoNuevo = "Producto nuevo"
	refEdicionStock  = "Edicion de stock inicial"
	refEntradaStock  = "Entrada de stock"
)

// exportRowLimit acota los exportes; el inventario institucional queda muy
// por debajo.
const exportRowLimit = 10000

// ProductUseCase casos de uso de productos. Todo cambio de stock pasa por el
// libro de movimientos: alta con stock inicial, corrección en edición y
// entrada manual escriben saldo y movimiento en la misma transacción.
type ProductUseCase struct {
	txRunner          appinventory.TxRunner
	ledger            *appinventory.StockLedger
	productRepo       repository.ProductRepository
	catalogRepo       repository.CatalogRepository
	movementRepo      repository.MovementRepository
	lowStockThreshold int64
}

// NewProductUseCase construye el caso de uso. threshold es el umbral de
// "stock bajo" inyectado desde configuración.
func NewProductUseCase(
	txRunner appinventory.TxRunner,
	productRepo repository.ProductRepository,
	catalogRepo repository.CatalogRepository,
	movementRepo repository.MovementRepository,
	threshold int64,
) *ProductUseCase {
	return &ProductUseCase{
		txRunner:          txRunner,
		ledger:            appinventory.NewStockLedger(txRunner),
		productRepo:       productRepo,
		catalogRepo:       catalogRepo,
		movementRepo:      movementRepo,
		lowStockThreshold: threshold,
	}
}

// Create crea un producto y, si trae stock inicial, el movimiento Entrada
// "Producto nuevo" correspondiente, en una sola transacción.
func (uc *ProductUseCase) Create(ctx context.Context, actorID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := validateProductData(in.Code, in.Name, in.Stock); err != nil {
		return nil, err
	}
	existing, err := uc.productRepo.GetByCode(in.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if err := uc.checkRelations(in.BrandID, in.CategoryID, in.LocationID); err != nil {
		return nil, err
	}

	now := time.Now()
	product := &entity.Product{
		ID:         uuid.New().String(),
		Code:       in.Code,
		Name:       in.Name,
		BrandID:    in.BrandID,
		CategoryID: in.CategoryID,
		LocationID: in.LocationID,
		Stock:      0, // el stock inicial entra vía el asiento de abajo
		Active:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
	) error {
		if err := productRepo.Create(product); err != nil {
			return err
		}
		return appinventory.ApplyInTx(productRepo, movementRepo, appinventory.EntryInput{
			ProductID:     product.ID,
			Delta:         in.Stock,
			LocationID:    in.LocationID,
			ResponsibleID: actorID,
			Reference:     refProductoNuevo,
		}, now)
	})
	if err != nil {
		return nil, err
	}
	product.Stock = in.Stock
	return uc.toResponse(product), nil
}

// Update edita un producto. Si el stock deseado difiere del vigente, la
// diferencia se asienta como Entrada o Salida "Edicion de stock inicial";
// si no difiere, no se emite movimiento alguno.
func (uc *ProductUseCase) Update(ctx context.Context, actorID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}

	if in.Code != nil {
		if *in.Code != product.Code {
			other, err := uc.productRepo.GetByCode(*in.Code)
			if err != nil {
				return nil, err
			}
			if other != nil && other.ID != product.ID {
				return nil, domain.ErrDuplicate
			}
		}
		product.Code = *in.Code
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.BrandID != nil {
		product.BrandID = *in.BrandID
	}
	if in.CategoryID != nil {
		product.CategoryID = *in.CategoryID
	}
	if in.LocationID != nil {
		product.LocationID = *in.LocationID
	}
	if in.Reserved != nil {
		product.Reserved = *in.Reserved
	}

	wantStock := product.Stock
	if in.Stock != nil {
		wantStock = *in.Stock
	}
	if err := validateProductData(product.Code, product.Name, wantStock); err != nil {
		return nil, err
	}
	if err := uc.checkRelations(product.BrandID, product.CategoryID, product.LocationID); err != nil {
		return nil, err
	}

	now := time.Now()
	product.UpdatedAt = now
	delta := wantStock - product.Stock

	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
	) error {
		// Update no toca la columna de stock; el delta va por el libro.
		if err := productRepo.Update(product); err != nil {
			return err
		}
		return appinventory.ApplyInTx(productRepo, movementRepo, appinventory.EntryInput{
			ProductID:     product.ID,
			Delta:         delta,
			LocationID:    product.LocationID,
			ResponsibleID: actorID,
			Reference:     refEdicionStock,
		}, now)
	})
	if err != nil {
		return nil, err
	}
	product.Stock = wantStock
	return uc.toResponse(product), nil
}

// AddStock agrega stock a un producto existente (movimiento Entrada).
func (uc *ProductUseCase) AddStock(ctx context.Context, actorID, id string, quantity int64) (*dto.ProductResponse, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.Active {
		return nil, domain.ErrNotFound
	}
	err = uc.ledger.Apply(ctx, appinventory.EntryInput{
		ProductID:     product.ID,
		Delta:         quantity,
		LocationID:    product.LocationID,
		ResponsibleID: actorID,
		Reference:     refEntradaStock,
	})
	if err != nil {
		return nil, err
	}
	product.Stock += quantity
	return uc.toResponse(product), nil
}

// GetByID obtiene un producto con su estado calculado.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return uc.toResponse(product), nil
}

// List lista el inventario con relaciones resueltas y estado recalculado en
// cada lectura. El filtro por estado se aplica sobre el estado derivado, no
// sobre una columna: el estado no se persiste.
func (uc *ProductUseCase) List(ctx context.Context, search, categoryID, status string, page dto.PageRequest) (*dto.InventoryListResponse, error) {
	page.DefaultPage()
	if status != "" && !dominv.ValidStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	items, err := uc.productRepo.List(repository.ProductFilter{
		Search:     search,
		CategoryID: categoryID,
		Limit:      page.Limit,
		Offset:     page.Offset,
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryItemResponse, 0, len(items))
	for _, item := range items {
		item.Status = dominv.StatusFor(item.Stock, uc.lowStockThreshold, item.Reserved)
		if status != "" && item.Status != status {
			continue
		}
		out = append(out, dto.InventoryItemResponse{
			ID:           item.ID,
			Code:         item.Code,
			Name:         item.Name,
			BrandName:    item.BrandName,
			CategoryName: item.CategoryName,
			LocationName: item.LocationName,
			Stock:        item.Stock,
			Status:       item.Status,
		})
	}
	return &dto.InventoryListResponse{
		Items: out,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// ExportItems devuelve todas las filas del inventario (sin paginar) con el
// estado derivado, para los exportes CSV/XLSX.
func (uc *ProductUseCase) ExportItems(ctx context.Context, search, categoryID, status string) ([]*entity.InventoryItem, error) {
	if status != "" && !dominv.ValidStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	items, err := uc.productRepo.List(repository.ProductFilter{
		Search:     search,
		CategoryID: categoryID,
		Limit:      exportRowLimit,
		Offset:     0,
	})
	if err != nil {
		return nil, err
	}
	out := make([]*entity.InventoryItem, 0, len(items))
	for _, item := range items {
		item.Status = dominv.StatusFor(item.Stock, uc.lowStockThreshold, item.Reserved)
		if status != "" && item.Status != status {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

// Delete marca el producto como inactivo; los movimientos históricos se
// conservan.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.productRepo.Deactivate(id)
}

// Movements devuelve el historial de movimientos de un producto.
func (uc *ProductUseCase) Movements(productID string, from, to *time.Time, page dto.PageRequest) (*dto.MovementListResponse, error) {
	page.DefaultPage()
	list, err := uc.movementRepo.ListByProduct(productID, from, to, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, dto.MovementResponse{
			ID:              m.ID,
			ProductCode:     m.ProductCode,
			ProductName:     m.ProductName,
			Type:            m.Type,
			Quantity:        m.Quantity,
			LocationName:    m.LocationName,
			ResponsibleName: m.ResponsibleName,
			Reference:       m.Reference,
			CreatedAt:       m.CreatedAt,
		})
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// checkRelations verifica que las relaciones seleccionadas existan y estén
// activas. Una relación inactiva bloquea el guardado con instrucción de
// remediación; los IDs vacíos (sin marca/categoría/ubicación) son legales.
func (uc *ProductUseCase) checkRelations(brandID, categoryID, locationID string) error {
	checks := []struct {
		kind entity.CatalogKind
		id   string
	}{
		{entity.CatalogBrand, brandID},
		{entity.CatalogCategory, categoryID},
		{entity.CatalogLocation, locationID},
	}
	for _, c := range checks {
		if c.id == "" {
			continue
		}
		entry, err := uc.catalogRepo.GetByID(c.kind, c.id)
		if err != nil {
			return err
		}
		if entry == nil {
			return domain.ErrNotFound
		}
		if !entry.Active {
			return domain.ErrRelacionInactiva
		}
	}
	return nil
}

func validateProductData(code, name string, stock int64) error {
	if code == "" || name == "" {
		return domain.ErrInvalidInput
	}
	if stock < 0 {
		return domain.ErrInvalidInput
	}
	if !validCode(code) || !validName(name) {
		return domain.ErrInvalidInput
	}
	return nil
}

// validCode: letras, números y guiones.
func validCode(code string) bool {
	for _, r := range code {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' {
			return false
		}
	}
	return true
}

// validName: letras, números y espacios.
func validName(name string) bool {
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

func (uc *ProductUseCase) toResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:         p.ID,
		Code:       p.Code,
		Name:       p.Name,
		BrandID:    p.BrandID,
		CategoryID: p.CategoryID,
		LocationID: p.LocationID,
		Stock:      p.Stock,
		Reserved:   p.Reserved,
		Status:     dominv.StatusFor(p.Stock, uc.lowStockThreshold, p.Reserved),
		Active:     p.Active,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}
