package entity

import "time"

// Department es un departamento receptor de entregas.
type Department struct {
	ID        string
	Name      string
	Active    bool
	CreatedAt time.Time
}

// Requester es un solicitante: persona identificada por cédula que retira
// material en nombre de un departamento.
type Requester struct {
	ID           string
	Cedula       string // solo dígitos y guiones
	Name         string
	DepartmentID string
	CreatedAt    time.Time
}
