package repository

import (
	"time"

	"github.com/StearCodeK/MajoTerminalo/internal/domain/entity"
)

// RequestFilter acota el listado de solicitudes: búsqueda por referencia,
// departamento y rango de fechas. Los campos vacíos no filtran.
type RequestFilter struct {
	Search       string
	DepartmentID string
	From         *time.Time
	To           *time.Time
	Limit        int
	Offset       int
}

// DeliveryRepository define el puerto de persistencia para solicitudes de
// salida y sus líneas. CreateRequest y CreateItem se usan dentro de la misma
// transacción que descuenta el stock.
type DeliveryRepository interface {
	CreateRequest(request *entity.DeliveryRequest) error
	CreateItem(item *entity.RequestItem) error
	GetRequest(id string) (*entity.RequestSummary, error)
	ListRequests(filter RequestFilter) ([]*entity.RequestSummary, error)
	ListItems(requestID string) ([]*entity.RequestItemDetail, error)
}
