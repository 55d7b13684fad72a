package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/StearCodeK/MajoTerminalo/internal/domain"
	"github.com/StearCodeK/MajoTerminalo/internal/domain/entity"
	"github.com/StearCodeK/MajoTerminalo/internal/domain/repository"
)

var _ repository.DepartmentRepository = (*DepartmentRepo)(nil)
var _ repository.RequesterRepository = (*RequesterRepo)(nil)

// DepartmentRepo implementación del puerto DepartmentRepository sobre PostgreSQL.
type DepartmentRepo struct {
	q Querier
}

// NewDepartmentRepository construye el adaptador para departamentos. Pasar pool o tx (Querier).
func NewDepartmentRepository(q Querier) *DepartmentRepo {
	return &DepartmentRepo{q: q}
}

// Create inserta un departamento.
func (r *DepartmentRepo) Create(dept *entity.Department) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO departamentos (id, nombre, activo, created_at) VALUES ($1, $2, $3, $4)`,
		dept.ID, dept.Name, dept.Active, dept.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert departamento: %w", err)
	}
	return nil
}

// GetByID obtiene un departamento por ID, aunque esté inactivo.
func (r *DepartmentRepo) GetByID(id string) (*entity.Department, error) {
	var d entity.Department
	err := r.q.QueryRow(context.Background(),
		`SELECT id, nombre, activo, created_at FROM departamentos WHERE id = $1`, id).
		Scan(&d.ID, &d.Name, &d.Active, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get departamento: %w", err)
	}
	return &d, nil
}

// ListActive lista los departamentos activos ordenados por nombre.
func (r *DepartmentRepo) ListActive() ([]*entity.Department, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, nombre, activo, created_at FROM departamentos WHERE activo = true ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("list departamentos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Department
	for rows.Next() {
		var d entity.Department
		if err := rows.Scan(&d.ID, &d.Name, &d.Active, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan departamento: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// RequesterRepo implementación del puerto RequesterRepository sobre PostgreSQL.
type RequesterRepo struct {
	q Querier
}

// NewRequesterRepository construye el adaptador para solicitantes. Pasar pool o tx (Querier).
func NewRequesterRepository(q Querier) *RequesterRepo {
	return &RequesterRepo{q: q}
}

// Create inserta un solicitante. La cédula tiene constraint único.
func (r *RequesterRepo) Create(requester *entity.Requester) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO solicitantes (id, cedula, nombre, departamento_id, created_at) VALUES ($1, $2, $3, $4, $5)`,
		requester.ID, requester.Cedula, requester.Name, requester.DepartmentID, requester.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert solicitante: %w", err)
	}
	return nil
}

// GetByID obtiene un solicitante por ID.
func (r *RequesterRepo) GetByID(id string) (*entity.Requester, error) {
	return r.getBy("id = $1", id)
}

// GetByCedula obtiene un solicitante por cédula.
func (r *RequesterRepo) GetByCedula(cedula string) (*entity.Requester, error) {
	return r.getBy("cedula = $1", cedula)
}

func (r *RequesterRepo) getBy(where string, arg any) (*entity.Requester, error) {
	query := `SELECT id, cedula, nombre, departamento_id, created_at FROM solicitantes WHERE ` + where
	var req entity.Requester
	err := r.q.QueryRow(context.Background(), query, arg).
		Scan(&req.ID, &req.Cedula, &req.Name, &req.DepartmentID, &req.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get solicitante: %w", err)
	}
	return &req, nil
}

// List lista los solicitantes ordenados por nombre.
func (r *RequesterRepo) List() ([]*entity.Requester, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, cedula, nombre, departamento_id, created_at FROM solicitantes ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("list solicitantes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Requester
	for rows.Next() {
		var req entity.Requester
		if err := rows.Scan(&req.ID, &req.Cedula, &req.Name, &req.DepartmentID, &req.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan solicitante: %w", err)
		}
		list = append(list, &req)
	}
	return list, rows.Err()
}
