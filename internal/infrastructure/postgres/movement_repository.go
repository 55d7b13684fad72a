package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/StearCodeK/MajoTerminalo/internal/domain/entity"
	"github.com/StearCodeK/MajoTerminalo/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del puerto MovementRepository sobre PostgreSQL.
// El libro es de solo inserción: no hay UPDATE ni DELETE sobre movimientos.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador para movimientos. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create inserta un movimiento.
func (r *MovementRepo) Create(movement *entity.StockMovement) error {
	query := `
		INSERT INTO movimientos (id, producto_id, tipo, cantidad, ubicacion_id, responsable_id, referencia, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ProductID, movement.Type, movement.Quantity,
		nullIfEmpty(movement.LocationID), nullIfEmpty(movement.ResponsibleID),
		movement.Reference, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movimiento: %w", err)
	}
	return nil
}

// ListByProduct lista el historial de un producto, más reciente primero,
// con rango de fechas opcional.
func (r *MovementRepo) ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.MovementDetail, error) {
	query := `
		SELECT mv.id, p.codigo, p.nombre, mv.tipo, mv.cantidad,
		       COALESCE(u.nombre, ''), COALESCE(us.nombre, ''), mv.referencia, mv.created_at
		FROM movimientos mv
		JOIN productos p ON p.id = mv.producto_id
		LEFT JOIN ubicaciones u ON u.id = mv.ubicacion_id
		LEFT JOIN usuarios us ON us.id = mv.responsable_id
		WHERE mv.producto_id = $1
		  AND ($2::timestamptz IS NULL OR mv.created_at >= $2)
		  AND ($3::timestamptz IS NULL OR mv.created_at <= $3)
		ORDER BY mv.created_at DESC
		LIMIT $4 OFFSET $5`
	rows, err := r.q.Query(context.Background(), query, productID, from, to, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()
	var list []*entity.MovementDetail
	for rows.Next() {
		var m entity.MovementDetail
		if err := rows.Scan(&m.ID, &m.ProductCode, &m.ProductName, &m.Type, &m.Quantity,
			&m.LocationName, &m.ResponsibleName, &m.Reference, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// CountByProduct cuenta los movimientos de un producto.
func (r *MovementRepo) CountByProduct(productID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM movimientos WHERE producto_id = $1`, productID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count movimientos: %w", err)
	}
	return count, nil
}
