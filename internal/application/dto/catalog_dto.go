package dto

// CreateCatalogEntryRequest entrada para agregar una marca, categoría o ubicación.
type CreateCatalogEntryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// CatalogEntryResponse salida de una entrada de catálogo.
type CatalogEntryResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// CreateDepartmentRequest entrada para agregar un departamento.
type CreateDepartmentRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// DepartmentResponse salida de un departamento.
type DepartmentResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CreateRequesterRequest entrada para agregar un solicitante.
type CreateRequesterRequest struct {
	Cedula       string `json:"cedula" validate:"required"`
	Name         string `json:"name" validate:"required"`
	DepartmentID string `json:"department_id" validate:"required"`
}

// RequesterResponse salida de un solicitante.
type RequesterResponse struct {
	ID           string `json:"id"`
	Cedula       string `json:"cedula"`
	Name         string `json:"name"`
	DepartmentID string `json:"department_id"`
}
