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

// DepartmentUseCase administra departamentos y solicitantes, los dos
// catálogos que alimentan la cabecera de una solicitud de entrega.
type DepartmentUseCase struct {
	departmentRepo repository.DepartmentRepository
	requesterRepo  repository.RequesterRepository
}

func NewDepartmentUseCase(
	departmentRepo repository.DepartmentRepository,
	requesterRepo repository.RequesterRepository,
) *DepartmentUseCase {
	return &DepartmentUseCase{departmentRepo: departmentRepo, requesterRepo: requesterRepo}
}

// ListDepartments devuelve los departamentos activos.
func (uc *DepartmentUseCase) ListDepartments() ([]dto.DepartmentResponse, error) {
	departments, err := uc.departmentRepo.ListActive()
	if err != nil {
		return nil, err
	}
	out := make([]dto.DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		out = append(out, dto.DepartmentResponse{ID: d.ID, Name: d.Name})
	}
	return out, nil
}

// CreateDepartment agrega un departamento con nombre único (sin tildes
// ni mayúsculas).
func (uc *DepartmentUseCase) CreateDepartment(in dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || len(name) > 100 {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.departmentRepo.ListActive()
	if err != nil {
		return nil, err
	}
	for _, d := range existing {
		if textutil.Equal(d.Name, name) {
			return nil, domain.ErrDuplicate
		}
	}
	department := &entity.Department{
		ID:        uuid.New().String(),
		Name:      name,
		Active:    true,
		CreatedAt: time.Now(),
	}
	if err := uc.departmentRepo.Create(department); err != nil {
		return nil, err
	}
	return &dto.DepartmentResponse{ID: department.ID, Name: department.Name}, nil
}

// ListRequesters devuelve los solicitantes registrados.
func (uc *DepartmentUseCase) ListRequesters() ([]dto.RequesterResponse, error) {
	requesters, err := uc.requesterRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.RequesterResponse, 0, len(requesters))
	for _, r := range requesters {
		out = append(out, dto.RequesterResponse{
			ID:           r.ID,
			Cedula:       r.Cedula,
			Name:         r.Name,
			DepartmentID: r.DepartmentID,
		})
	}
	return out, nil
}

// CreateRequester registra un solicitante. La cédula es única y admite
// solo dígitos y guiones.
func (uc *DepartmentUseCase) CreateRequester(in dto.CreateRequesterRequest) (*dto.RequesterResponse, error) {
	cedula := strings.TrimSpace(in.Cedula)
	name := strings.TrimSpace(in.Name)
	if name == "" || in.DepartmentID == "" || !validCedula(cedula) {
		return nil, domain.ErrInvalidInput
	}

	department, err := uc.departmentRepo.GetByID(in.DepartmentID)
	if err != nil {
		return nil, err
	}
	if department == nil {
		return nil, domain.ErrNotFound
	}
	if !department.Active {
		return nil, domain.ErrRelacionInactiva
	}

	existing, err := uc.requesterRepo.GetByCedula(cedula)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	requester := &entity.Requester{
		ID:           uuid.New().String(),
		Cedula:       cedula,
		Name:         name,
		DepartmentID: in.DepartmentID,
		CreatedAt:    time.Now(),
	}
	if err := uc.requesterRepo.Create(requester); err != nil {
		return nil, err
	}
	return &dto.RequesterResponse{
		ID:           requester.ID,
		Cedula:       requester.Cedula,
		Name:         requester.Name,
		DepartmentID: requester.DepartmentID,
	}, nil
}

// validCedula acepta dígitos y guiones, p. ej. "12345678" o "12-345-678".
func validCedula(cedula string) bool {
	if cedula == "" {
		return false
	}
	for _, r := range cedula {
		if (r < '0' || r > '9') && r != '-' {
			return false
		}
	}
	return true
}
