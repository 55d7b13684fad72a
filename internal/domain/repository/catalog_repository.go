package repository

import "github.com/StearCodeK/MajoTerminalo/internal/domain/entity"

// CatalogRepository define el puerto para marcas, categorías y ubicaciones.
// Las tres tablas comparten forma; kind selecciona la tabla.
type CatalogRepository interface {
	// ListActive devuelve solo entradas activas (las que pueden seleccionarse
	// al crear un producto).
	ListActive(kind entity.CatalogKind) ([]*entity.CatalogEntry, error)
	// GetByID resuelve una entrada aunque esté inactiva: el flujo de edición
	// debe seguir mostrando el nombre de relaciones desactivadas.
	GetByID(kind entity.CatalogKind, id string) (*entity.CatalogEntry, error)
	// GetActiveByName resuelve el ID de una entrada activa por nombre exacto;
	// nil si no existe o está inactiva.
	GetActiveByName(kind entity.CatalogKind, name string) (*entity.CatalogEntry, error)
	Create(kind entity.CatalogKind, entry *entity.CatalogEntry) error
	SetActive(kind entity.CatalogKind, id string, active bool) error
}
