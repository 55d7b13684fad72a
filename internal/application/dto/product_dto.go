package dto

import "time"

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Code       string `json:"code" validate:"required,min=1,max=50"`
	Name       string `json:"name" validate:"required,min=1,max=200"`
	BrandID    string `json:"brand_id"`
	CategoryID string `json:"category_id"`
	LocationID string `json:"location_id"`
	Stock      int64  `json:"stock" validate:"min=0"`
}

// UpdateProductRequest entrada para editar un producto. Stock es el nuevo
// saldo deseado: la diferencia contra el vigente genera el movimiento.
type UpdateProductRequest struct {
	Code       *string `json:"code"`
	Name       *string `json:"name"`
	BrandID    *string `json:"brand_id"`
	CategoryID *string `json:"category_id"`
	LocationID *string `json:"location_id"`
	Stock      *int64  `json:"stock"`
	Reserved   *bool   `json:"reserved"`
}

// AddStockRequest entrada de stock manual sobre un producto existente.
type AddStockRequest struct {
	Quantity int64 `json:"quantity" validate:"required,gt=0"`
}

// ProductResponse salida de un producto con su estado calculado.
type ProductResponse struct {
	ID         string    `json:"id"`
	Code       string    `json:"code"`
	Name       string    `json:"name"`
	BrandID    string    `json:"brand_id,omitempty"`
	CategoryID string    `json:"category_id,omitempty"`
	LocationID string    `json:"location_id,omitempty"`
	Stock      int64     `json:"stock"`
	Reserved   bool      `json:"reserved"`
	Status     string    `json:"status"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// InventoryItemResponse fila de inventario con relaciones resueltas.
type InventoryItemResponse struct {
	ID           string `json:"id"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	BrandName    string `json:"brand"`
	CategoryName string `json:"category"`
	LocationName string `json:"location"`
	Stock        int64  `json:"stock"`
	Status       string `json:"status"`
}

// InventoryListResponse listado paginado de inventario.
type InventoryListResponse struct {
	Items []InventoryItemResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}
