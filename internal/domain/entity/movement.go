package entity

import "time"

// Tipos de movimiento de stock. La dirección la lleva el tipo, no el signo:
// Quantity siempre es positiva.
const (
	MovementEntrada = "Entrada" // entrada de stock
	MovementSalida  = "Salida"  // salida de stock
)

// StockMovement es un registro del libro de movimientos: inmutable, solo se
// inserta. La suma con signo de los movimientos de un producto reconcilia con
// su saldo porque ambos se escriben en la misma transacción.
type StockMovement struct {
	ID            string
	ProductID     string
	Type          string // Entrada | Salida
	Quantity      int64  // > 0
	LocationID    string // vacío si no aplica
	ResponsibleID string // vacío si no hubo sesión
	Reference     string // texto libre: "Producto nuevo", "Solicitud #...", etc.
	CreatedAt     time.Time
}

// MovementDetail es un movimiento con nombres resueltos para listados.
type MovementDetail struct {
	ID              string
	ProductCode     string
	ProductName     string
	Type            string
	Quantity        int64
	LocationName    string
	ResponsibleName string
	Reference       string
	CreatedAt       time.Time
}
