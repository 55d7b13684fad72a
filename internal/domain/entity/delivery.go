package entity

import "time"

// DeliveryRequest es la cabecera de una solicitud de salida: quién pide,
// para qué departamento, quién entrega y una referencia/memo obligatoria.
// Se crea junto con sus ítems en una sola transacción.
type DeliveryRequest struct {
	ID            string
	DepartmentID  string
	RequesterID   string
	ResponsibleID string // usuario que entrega
	Memo          string
	CreatedAt     time.Time
}

// RequestItem es una línea de la solicitud (producto, cantidad).
// Position conserva el orden de inserción del carrito.
type RequestItem struct {
	ID        string
	RequestID string
	ProductID string
	Quantity  int64
	Position  int
}

// RequestSummary es una fila del listado de solicitudes con nombres resueltos.
type RequestSummary struct {
	ID              string
	CreatedAt       time.Time
	DepartmentName  string
	RequesterName   string
	ResponsibleName string
	Memo            string
	ItemCount       int
}

// RequestItemDetail es una línea con el producto resuelto, para el detalle
// de la solicitud y la nota de entrega.
type RequestItemDetail struct {
	ProductCode string
	ProductName string
	Quantity    int64
	Position    int
}
