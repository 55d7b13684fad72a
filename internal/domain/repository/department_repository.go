package repository

import "github.com/StearCodeK/MajoTerminalo/internal/domain/entity"

// DepartmentRepository define el puerto para departamentos.
type DepartmentRepository interface {
	Create(dept *entity.Department) error
	GetByID(id string) (*entity.Department, error)
	ListActive() ([]*entity.Department, error)
}

// RequesterRepository define el puerto para solicitantes.
type RequesterRepository interface {
	Create(requester *entity.Requester) error
	GetByID(id string) (*entity.Requester, error)
	GetByCedula(cedula string) (*entity.Requester, error)
	List() ([]*entity.Requester, error)
}
