package delivery

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/StearCodeK/MajoTerminalo/internal/application/dto"
	appinventory "github.com/StearCodeK/MajoTerminalo/internal/application/inventory"
	"github.com/StearCodeK/MajoTerminalo/internal/domain"
	"github.com/StearCodeK/MajoTerminalo/internal/domain/entity"
	"github.com/StearCodeK/MajoTerminalo/internal/domain/repository"
)

// RegisterDeliveryUseCase convierte un carrito de (producto, cantidad) en una
// solicitud de salida confirmada: cabecera, líneas, descuentos de stock y un
// movimiento Salida por línea, todo en una sola transacción.
type RegisterDeliveryUseCase struct {
	txRunner       TxRunner
	productRepo    repository.ProductRepository
	departmentRepo repository.DepartmentRepository
	requesterRepo  repository.RequesterRepository
	deliveryRepo   repository.DeliveryRepository
}

// NewRegisterDeliveryUseCase construye el caso de uso.
func NewRegisterDeliveryUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	departmentRepo repository.DepartmentRepository,
	requesterRepo repository.RequesterRepository,
	deliveryRepo repository.DeliveryRepository,
) *RegisterDeliveryUseCase {
	return &RegisterDeliveryUseCase{
		txRunner:       txRunner,
		productRepo:    productRepo,
		departmentRepo: departmentRepo,
		requesterRepo:  requesterRepo,
		deliveryRepo:   deliveryRepo,
	}
}

// RegisterDelivery valida cabecera y líneas, arma el carrito contra el stock
// leído de BD y confirma la entrega. actorID es el usuario que entrega; viene
// del token, nunca de estado ambiente.
func (uc *RegisterDeliveryUseCase) RegisterDelivery(ctx context.Context, actorID string, in dto.RegisterDeliveryRequest) (*dto.DeliveryResponse, error) {
	if actorID == "" {
		return nil, domain.ErrUnauthorized
	}
	if in.DepartmentID == "" || in.RequesterID == "" || in.Memo == "" {
		return nil, domain.ErrInvalidInput
	}
	if len(in.Items) == 0 {
		return nil, domain.ErrSolicitudVacia
	}

	dept, err := uc.departmentRepo.GetByID(in.DepartmentID)
	if err != nil {
		return nil, err
	}
	if dept == nil {
		return nil, domain.ErrNotFound
	}
	if !dept.Active {
		return nil, domain.ErrRelacionInactiva
	}
	requester, err := uc.requesterRepo.GetByID(in.RequesterID)
	if err != nil {
		return nil, err
	}
	if requester == nil {
		return nil, domain.ErrNotFound
	}

	// Fase de armado: el carrito descuenta de un contador sembrado con el
	// saldo leído; cualquier línea que exceda el disponible se rechaza aquí,
	// antes de abrir la transacción.
	cart := NewCart()
	for _, item := range in.Items {
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil || !product.Active {
			return nil, domain.ErrNotFound
		}
		cart.Seed(product.ID, product.Stock)
		if err := cart.Add(CartItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    item.Quantity,
		}); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	request := &entity.DeliveryRequest{
		ID:            uuid.New().String(),
		DepartmentID:  in.DepartmentID,
		RequesterID:   in.RequesterID,
		ResponsibleID: actorID,
		Memo:          in.Memo,
		CreatedAt:     now,
	}

	// Fase de commit: todo o nada. El stock se verifica de nuevo bajo
	// bloqueo de fila dentro de la transacción; un fallo en cualquier línea
	// revierte cabecera, líneas, saldos y movimientos completos.
	err = uc.txRunner.RunDelivery(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
		deliveryRepo repository.DeliveryRepository,
	) error {
		if err := deliveryRepo.CreateRequest(request); err != nil {
			return err
		}
		for i, item := range cart.Items() {
			if err := deliveryRepo.CreateItem(&entity.RequestItem{
				ID:        uuid.New().String(),
				RequestID: request.ID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Position:  i,
			}); err != nil {
				return err
			}
			if err := appinventory.ApplyInTx(productRepo, movementRepo, appinventory.EntryInput{
				ProductID:     item.ProductID,
				Delta:         -item.Quantity,
				ResponsibleID: actorID,
				Reference:     "Solicitud #" + in.Memo,
			}, now); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.DeliveryResponse{
		ID:        request.ID,
		Memo:      request.Memo,
		ItemCount: len(cart.Items()),
		CreatedAt: request.CreatedAt,
	}, nil
}

// ListRequests lista solicitudes con filtros de referencia, departamento y
// rango de fechas.
func (uc *RegisterDeliveryUseCase) ListRequests(filter repository.RequestFilter) (*dto.RequestListResponse, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	list, err := uc.deliveryRepo.ListRequests(filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RequestSummaryResponse, 0, len(list))
	for _, r := range list {
		items = append(items, toSummaryResponse(r))
	}
	return &dto.RequestListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: filter.Limit, Offset: filter.Offset},
	}, nil
}

// GetRequestDetail devuelve la cabecera y las líneas de una solicitud.
func (uc *RegisterDeliveryUseCase) GetRequestDetail(id string) (*dto.RequestDetailResponse, error) {
	summary, err := uc.deliveryRepo.GetRequest(id)
	if err != nil {
		return nil, err
	}
	if summary == nil {
		return nil, domain.ErrNotFound
	}
	lines, err := uc.deliveryRepo.ListItems(id)
	if err != nil {
		return nil, err
	}
	detail := &dto.RequestDetailResponse{
		RequestSummaryResponse: toSummaryResponse(summary),
		Items:                  make([]dto.RequestItemResponse, 0, len(lines)),
	}
	for _, l := range lines {
		detail.Items = append(detail.Items, dto.RequestItemResponse{
			ProductCode: l.ProductCode,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
		})
	}
	return detail, nil
}

func toSummaryResponse(r *entity.RequestSummary) dto.RequestSummaryResponse {
	return dto.RequestSummaryResponse{
		ID:              r.ID,
		CreatedAt:       r.CreatedAt,
		DepartmentName:  r.DepartmentName,
		RequesterName:   r.RequesterName,
		ResponsibleName: r.ResponsibleName,
		Memo:            r.Memo,
		ItemCount:       r.ItemCount,
	}
}
