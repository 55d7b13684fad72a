package dto

import "time"

// MovementResponse fila del historial de movimientos de un producto.
type MovementResponse struct {
	ID              string    `json:"id"`
	ProductCode     string    `json:"product_code"`
	ProductName     string    `json:"product_name"`
	Type            string    `json:"type"`
	Quantity        int64     `json:"quantity"`
	LocationName    string    `json:"location,omitempty"`
	ResponsibleName string    `json:"responsible,omitempty"`
	Reference       string    `json:"reference"`
	CreatedAt       time.Time `json:"created_at"`
}

// MovementListResponse historial paginado.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
