package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/StearCodeK/MajoTerminalo/internal/application/dto"
	"github.com/StearCodeK/MajoTerminalo/internal/domain"
	"github.com/StearCodeK/MajoTerminalo/internal/domain/entity"
	"github.com/StearCodeK/MajoTerminalo/internal/domain/repository"
	"github.com/StearCodeK/MajoTerminalo/pkg/textutil"
)

// CatalogUseCase administra marcas, categorías y ubicaciones. Las tres
// comparten forma y reglas, por eso un solo caso de uso parametrizado
// por CatalogKind.
type CatalogUseCase struct {
	catalogRepo repository.CatalogRepository
}

func NewCatalogUseCase(catalogRepo repository.CatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{catalogRepo: catalogRepo}
}

// List devuelve las entradas activas del catálogo indicado.
func (uc *CatalogUseCase) List(kind entity.CatalogKind) ([]dto.CatalogEntryResponse, error) {
	if !kind.Valid() {
		return nil, domain.ErrInvalidInput
	}
	entries, err := uc.catalogRepo.ListActive(kind)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CatalogEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.CatalogEntryResponse{ID: e.ID, Name: e.Name, Active: e.Active})
	}
	return out, nil
}

// Create agrega una entrada. El nombre se compara sin tildes ni mayúsculas:
// "Papelería" y "papeleria" son la misma entrada.
func (uc *CatalogUseCase) Create(kind entity.CatalogKind, in dto.CreateCatalogEntryRequest) (*dto.CatalogEntryResponse, error) {
	if !kind.Valid() {
		return nil, domain.ErrInvalidInput
	}
	name := strings.TrimSpace(in.Name)
	if name == "" || len(name) > 100 {
		return nil, domain.ErrInvalidInput
	}

	existing, err := uc.catalogRepo.ListActive(kind)
	if err != nil {
		return nil, err
	}
	for _, e := range existing {
		if textutil.Equal(e.Name, name) {
			return nil, domain.ErrDuplicate
		}
	}

	entry := &entity.CatalogEntry{
		ID:        uuid.New().String(),
		Name:      name,
		Active:    true,
		CreatedAt: time.Now(),
	}
	if err := uc.catalogRepo.Create(kind, entry); err != nil {
		return nil, err
	}
	return &dto.CatalogEntryResponse{ID: entry.ID, Name: entry.Name, Active: entry.Active}, nil
}

// SetActive activa o desactiva una entrada. Desactivar no borra: los
// productos que la referencian la siguen resolviendo para mostrarse.
func (uc *CatalogUseCase) SetActive(kind entity.CatalogKind, id string, active bool) error {
	if !kind.Valid() || id == "" {
		return domain.ErrInvalidInput
	}
	entry, err := uc.catalogRepo.GetByID(kind, id)
	if err != nil {
		return err
	}
	if entry == nil {
		return domain.ErrNotFound
	}
	return uc.catalogRepo.SetActive(kind, id, active)
}
