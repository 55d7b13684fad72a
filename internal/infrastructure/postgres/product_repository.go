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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto. El stock inicial entra por movimiento, no aquí.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO productos (id, codigo, nombre, marca_id, categoria_id, ubicacion_id, stock, reservado, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Code, product.Name,
		nullIfEmpty(product.BrandID), nullIfEmpty(product.CategoryID), nullIfEmpty(product.LocationID),
		product.Stock, product.Reserved, product.Active, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.getBy("id = $1", id)
}

// GetByCode obtiene un producto por código.
func (r *ProductRepo) GetByCode(code string) (*entity.Product, error) {
	return r.getBy("codigo = $1", code)
}

func (r *ProductRepo) getBy(where string, arg any) (*entity.Product, error) {
	query := `
		SELECT id, codigo, nombre, marca_id, categoria_id, ubicacion_id, stock, reservado, activo, created_at, updated_at
		FROM productos WHERE ` + where
	var p entity.Product
	var brandID, categoryID, locationID *string
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.Code, &p.Name, &brandID, &categoryID, &locationID,
		&p.Stock, &p.Reserved, &p.Active, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	p.BrandID = emptyIfNull(brandID)
	p.CategoryID = emptyIfNull(categoryID)
	p.LocationID = emptyIfNull(locationID)
	return &p, nil
}

// Update actualiza los campos de un producto. No toca el stock: el saldo solo
// cambia vía UpdateStock dentro de la misma transacción que su movimiento.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE productos SET codigo = $2, nombre = $3, marca_id = $4, categoria_id = $5, ubicacion_id = $6, reservado = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Code, product.Name,
		nullIfEmpty(product.BrandID), nullIfEmpty(product.CategoryID), nullIfEmpty(product.LocationID),
		product.Reserved, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

// Deactivate marca el producto como inactivo (borrado lógico).
func (r *ProductRepo) Deactivate(id string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE productos SET activo = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deactivate producto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista el inventario activo con nombres de relaciones resueltos.
// Las relaciones inactivas se resuelven igual: desactivar una marca no
// oculta los productos que la usan. La búsqueda ignora mayúsculas y
// acentos (unaccent, habilitada en la migración inicial).
func (r *ProductRepo) List(filter repository.ProductFilter) ([]*entity.InventoryItem, error) {
	query := `
		SELECT p.id, p.codigo, p.nombre,
		       COALESCE(m.nombre, ''), COALESCE(c.nombre, ''), COALESCE(u.nombre, ''),
		       p.stock, p.reservado
		FROM productos p
		LEFT JOIN marcas m ON m.id = p.marca_id
		LEFT JOIN categorias c ON c.id = p.categoria_id
		LEFT JOIN ubicaciones u ON u.id = p.ubicacion_id
		WHERE p.activo = true
		  AND ($1 = ''
		       OR unaccent(p.nombre) ILIKE '%' || unaccent($1) || '%'
		       OR unaccent(p.codigo) ILIKE '%' || unaccent($1) || '%')
		  AND ($2 = '' OR p.categoria_id = $2)
		ORDER BY p.nombre
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query,
		filter.Search, filter.CategoryID, filter.Limit, filter.Offset)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryItem
	for rows.Next() {
		var item entity.InventoryItem
		if err := rows.Scan(&item.ID, &item.Code, &item.Name,
			&item.BrandName, &item.CategoryName, &item.LocationName,
			&item.Stock, &item.Reserved); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &item)
	}
	return list, rows.Err()
}

// GetStockForUpdate bloquea la fila del producto y devuelve su saldo vigente.
// Usar solo dentro de una transacción.
func (r *ProductRepo) GetStockForUpdate(id string) (int64, error) {
	var stock int64
	err := r.q.QueryRow(context.Background(),
		`SELECT stock FROM productos WHERE id = $1 FOR UPDATE`, id).Scan(&stock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("lock producto: %w", err)
	}
	return stock, nil
}

// UpdateStock fija el saldo del producto. Siempre acompañado de un movimiento
// en la misma transacción.
func (r *ProductRepo) UpdateStock(id string, stock int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE productos SET stock = $2, updated_at = now() WHERE id = $1`, id, stock)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	return nil
}
