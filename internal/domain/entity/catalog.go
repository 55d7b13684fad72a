package entity

import "time"

// Tablas de catálogo referenciadas por Product. Comparten forma:
// id, nombre y bandera de activo. Se desactivan, nunca se borran.
type CatalogKind string

const (
	CatalogBrand    CatalogKind = "marcas"
	CatalogCategory CatalogKind = "categorias"
	CatalogLocation CatalogKind = "ubicaciones"
)

// Valid indica si el kind corresponde a una tabla de catálogo conocida.
func (k CatalogKind) Valid() bool {
	switch k {
	case CatalogBrand, CatalogCategory, CatalogLocation:
		return true
	}
	return false
}

// CatalogEntry es una entrada de marca, categoría o ubicación.
// Un producto puede seguir referenciando una entrada inactiva; en el flujo de
// edición la entrada se resuelve por ID aunque esté desactivada.
type CatalogEntry struct {
	ID        string
	Name      string
	Active    bool
	CreatedAt time.Time
}
