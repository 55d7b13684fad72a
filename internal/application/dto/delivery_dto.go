package dto

import "time"

// DeliveryItemRequest línea de la entrega (producto, cantidad).
type DeliveryItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"required,gt=0"`
}

// RegisterDeliveryRequest entrada para registrar una entrega completa.
type RegisterDeliveryRequest struct {
	DepartmentID string                `json:"department_id" validate:"required"`
	RequesterID  string                `json:"requester_id" validate:"required"`
	Memo         string                `json:"memo" validate:"required"`
	Items        []DeliveryItemRequest `json:"items" validate:"required,min=1"`
}

// DeliveryResponse salida tras registrar una entrega.
type DeliveryResponse struct {
	ID        string    `json:"id"`
	Memo      string    `json:"memo"`
	ItemCount int       `json:"item_count"`
	CreatedAt time.Time `json:"created_at"`
}

// RequestSummaryResponse fila del listado de solicitudes.
type RequestSummaryResponse struct {
	ID              string    `json:"id"`
	CreatedAt       time.Time `json:"created_at"`
	DepartmentName  string    `json:"department"`
	RequesterName   string    `json:"requester"`
	ResponsibleName string    `json:"responsible"`
	Memo            string    `json:"memo"`
	ItemCount       int       `json:"item_count"`
}

// RequestItemResponse línea del detalle de una solicitud.
type RequestItemResponse struct {
	ProductCode string `json:"product_code"`
	ProductName string `json:"product_name"`
	Quantity    int64  `json:"quantity"`
}

// RequestDetailResponse detalle completo de una solicitud.
type RequestDetailResponse struct {
	RequestSummaryResponse
	Items []RequestItemResponse `json:"items"`
}

// RequestListResponse listado de solicitudes.
type RequestListResponse struct {
	Items []RequestSummaryResponse `json:"items"`
	Page  PageResponse             `json:"page"`
}
