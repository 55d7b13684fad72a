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

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo implementación del puerto CatalogRepository sobre PostgreSQL.
// kind selecciona la tabla (marcas, categorias o ubicaciones); las tres
// comparten esquema. kind.Valid() es la lista blanca: el nombre de tabla
// nunca viene de entrada de usuario sin pasar por ella.
type CatalogRepo struct {
	q Querier
}

// NewCatalogRepository construye el adaptador para catálogos. Pasar pool o tx (Querier).
func NewCatalogRepository(q Querier) *CatalogRepo {
	return &CatalogRepo{q: q}
}

func tableFor(kind entity.CatalogKind) (string, error) {
	if !kind.Valid() {
		return "", domain.ErrInvalidInput
	}
	return string(kind), nil
}

// ListActive devuelve las entradas activas ordenadas por nombre.
func (r *CatalogRepo) ListActive(kind entity.CatalogKind) ([]*entity.CatalogEntry, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(
		`SELECT id, nombre, activo, created_at FROM %s WHERE activo = true ORDER BY nombre`, table)
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", table, err)
	}
	defer rows.Close()
	var list []*entity.CatalogEntry
	for rows.Next() {
		var e entity.CatalogEntry
		if err := rows.Scan(&e.ID, &e.Name, &e.Active, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// GetByID resuelve una entrada aunque esté inactiva.
func (r *CatalogRepo) GetByID(kind entity.CatalogKind, id string) (*entity.CatalogEntry, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`SELECT id, nombre, activo, created_at FROM %s WHERE id = $1`, table)
	var e entity.CatalogEntry
	err = r.q.QueryRow(context.Background(), query, id).Scan(&e.ID, &e.Name, &e.Active, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s: %w", table, err)
	}
	return &e, nil
}

// GetActiveByName resuelve una entrada activa por nombre exacto.
func (r *CatalogRepo) GetActiveByName(kind entity.CatalogKind, name string) (*entity.CatalogEntry, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(
		`SELECT id, nombre, activo, created_at FROM %s WHERE nombre = $1 AND activo = true`, table)
	var e entity.CatalogEntry
	err = r.q.QueryRow(context.Background(), query, name).Scan(&e.ID, &e.Name, &e.Active, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s por nombre: %w", table, err)
	}
	return &e, nil
}

// Create inserta una entrada de catálogo.
func (r *CatalogRepo) Create(kind entity.CatalogKind, entry *entity.CatalogEntry) error {
	table, err := tableFor(kind)
	if err != nil {
		return err
	}
	query := fmt.Sprintf(`INSERT INTO %s (id, nombre, activo, created_at) VALUES ($1, $2, $3, $4)`, table)
	_, err = r.q.Exec(context.Background(), query, entry.ID, entry.Name, entry.Active, entry.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert %s: %w", table, err)
	}
	return nil
}

// SetActive activa o desactiva una entrada. Nunca borra filas.
func (r *CatalogRepo) SetActive(kind entity.CatalogKind, id string, active bool) error {
	table, err := tableFor(kind)
	if err != nil {
		return err
	}
	query := fmt.Sprintf(`UPDATE %s SET activo = $2 WHERE id = $1`, table)
	cmd, err := r.q.Exec(context.Background(), query, id, active)
	if err != nil {
		return fmt.Errorf("update %s: %w", table, err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
