package entity

import "time"

// Product representa un producto del inventario institucional.
// Stock es el saldo vigente; cada cambio debe quedar reflejado en un
// StockMovement. El borrado de productos es lógico (Active = false).
type Product struct {
	ID         string
	Code       string // único, alfanumérico + guiones
	Name       string
	BrandID    string // vacío si no tiene marca asignada
	CategoryID string // vacío si no tiene categoría asignada
	LocationID string // vacío si no tiene ubicación asignada
	Stock      int64  // siempre >= 0
	Reserved   bool   // marcado manualmente como reservado
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// InventoryItem es la fila del inventario con las relaciones ya resueltas
// (nombres de marca, categoría y ubicación), usada en listados y exportes.
// El estado se calcula al leer, nunca se persiste.
type InventoryItem struct {
	ID           string
	Code         string
	Name         string
	BrandName    string
	CategoryName string
	LocationName string
	Stock        int64
	Reserved     bool
	Status       string // disponible | stock bajo | agotado | reservado
}
