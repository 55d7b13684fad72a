package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/StearCodeK/MajoTerminalo/internal/domain/entity"
	"github.com/StearCodeK/MajoTerminalo/internal/domain/repository"
)

var _ repository.DeliveryRepository = (*DeliveryRepo)(nil)

// DeliveryRepo implementación del puerto DeliveryRepository sobre PostgreSQL.
type DeliveryRepo struct {
	q Querier
}

// NewDeliveryRepository construye el adaptador para solicitudes. Pasar pool o tx (Querier).
func NewDeliveryRepository(q Querier) *DeliveryRepo {
	return &DeliveryRepo{q: q}
}

// CreateRequest inserta la cabecera de una solicitud.
func (r *DeliveryRepo) CreateRequest(request *entity.DeliveryRequest) error {
	query := `
		INSERT INTO solicitudes (id, departamento_id, solicitante_id, responsable_id, referencia, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		request.ID, request.DepartmentID, request.RequesterID,
		nullIfEmpty(request.ResponsibleID), request.Memo, request.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert solicitud: %w", err)
	}
	return nil
}

// CreateItem inserta una línea de la solicitud.
func (r *DeliveryRepo) CreateItem(item *entity.RequestItem) error {
	query := `
		INSERT INTO detalle_solicitudes (id, solicitud_id, producto_id, cantidad, posicion)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.RequestID, item.ProductID, item.Quantity, item.Position,
	)
	if err != nil {
		return fmt.Errorf("insert detalle: %w", err)
	}
	return nil
}

const requestSummarySelect = `
	SELECT s.id, s.created_at, d.nombre, so.nombre, COALESCE(us.nombre, ''), s.referencia,
	       (SELECT COUNT(*) FROM detalle_solicitudes ds WHERE ds.solicitud_id = s.id)
	FROM solicitudes s
	JOIN departamentos d ON d.id = s.departamento_id
	JOIN solicitantes so ON so.id = s.solicitante_id
	LEFT JOIN usuarios us ON us.id = s.responsable_id`

// GetRequest obtiene la cabecera de una solicitud con nombres resueltos.
func (r *DeliveryRepo) GetRequest(id string) (*entity.RequestSummary, error) {
	query := requestSummarySelect + ` WHERE s.id = $1`
	var s entity.RequestSummary
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.CreatedAt, &s.DepartmentName, &s.RequesterName,
		&s.ResponsibleName, &s.Memo, &s.ItemCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get solicitud: %w", err)
	}
	return &s, nil
}

// ListRequests lista solicitudes, más reciente primero, con filtros
// opcionales por referencia, departamento y rango de fechas.
func (r *DeliveryRepo) ListRequests(filter repository.RequestFilter) ([]*entity.RequestSummary, error) {
	query := requestSummarySelect + `
	WHERE ($1 = ''
	       OR unaccent(s.referencia) ILIKE '%' || unaccent($1) || '%'
	       OR unaccent(so.nombre) ILIKE '%' || unaccent($1) || '%')
	  AND ($2 = '' OR s.departamento_id = $2)
	  AND ($3::timestamptz IS NULL OR s.created_at >= $3)
	  AND ($4::timestamptz IS NULL OR s.created_at <= $4)
	ORDER BY s.created_at DESC
	LIMIT $5 OFFSET $6`
	rows, err := r.q.Query(context.Background(), query,
		filter.Search, filter.DepartmentID, filter.From, filter.To, filter.Limit, filter.Offset)
	if err != nil {
		return nil, fmt.Errorf("list solicitudes: %w", err)
	}
	defer rows.Close()
	var list []*entity.RequestSummary
	for rows.Next() {
		var s entity.RequestSummary
		if err := rows.Scan(&s.ID, &s.CreatedAt, &s.DepartmentName, &s.RequesterName,
			&s.ResponsibleName, &s.Memo, &s.ItemCount); err != nil {
			return nil, fmt.Errorf("scan solicitud: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// ListItems lista las líneas de una solicitud en el orden del carrito.
func (r *DeliveryRepo) ListItems(requestID string) ([]*entity.RequestItemDetail, error) {
	query := `
		SELECT p.codigo, p.nombre, ds.cantidad, ds.posicion
		FROM detalle_solicitudes ds
		JOIN productos p ON p.id = ds.producto_id
		WHERE ds.solicitud_id = $1
		ORDER BY ds.posicion`
	rows, err := r.q.Query(context.Background(), query, requestID)
	if err != nil {
		return nil, fmt.Errorf("list detalle: %w", err)
	}
	defer rows.Close()
	var list []*entity.RequestItemDetail
	for rows.Next() {
		var item entity.RequestItemDetail
		if err := rows.Scan(&item.ProductCode, &item.ProductName, &item.Quantity, &item.Position); err != nil {
			return nil, fmt.Errorf("scan detalle: %w", err)
		}
		list = append(list, &item)
	}
	return list, rows.Err()
}
