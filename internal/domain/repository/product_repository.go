package repository

import "github.com/StearCodeK/MajoTerminalo/internal/domain/entity"

// ProductFilter acota el listado de inventario. Search aplica sobre nombre y
// código (ya normalizado por el caller); los vacíos no filtran.
type ProductFilter struct {
	Search     string
	CategoryID string
	Limit      int
	Offset     int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByCode(code string) (*entity.Product, error)
	Update(product *entity.Product) error
	Deactivate(id string) error
	List(filter ProductFilter) ([]*entity.InventoryItem, error)
	// GetStockForUpdate bloquea la fila del producto (SELECT FOR UPDATE) y
	// devuelve el saldo vigente. Usar solo dentro de una transacción.
	GetStockForUpdate(id string) (int64, error)
	UpdateStock(id string, stock int64) error
}
