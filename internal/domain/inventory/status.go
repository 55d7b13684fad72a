// Package inventory contiene las reglas puras del inventario: el cálculo del
// estado de stock a partir del saldo numérico. El estado es una vista derivada
// y se recalcula en cada lectura; nunca se persiste como dato.
package inventory

// Estados de stock.
const (
	StatusDisponible = "disponible"
	StatusStockBajo  = "stock bajo"
	StatusAgotado    = "agotado"
	StatusReservado  = "reservado"
)

// StatusFor calcula el estado mostrado de un producto.
// reserved es una marca manual que prevalece sobre la cantidad; el resto se
// deriva del saldo contra el umbral de stock bajo configurado.
func StatusFor(stock, threshold int64, reserved bool) string {
	if reserved {
		return StatusReservado
	}
	if stock <= 0 {
		return StatusAgotado
	}
	if stock <= threshold {
		return StatusStockBajo
	}
	return StatusDisponible
}

// ValidStatus indica si s es uno de los estados de filtro conocidos.
func ValidStatus(s string) bool {
	switch s {
	case StatusDisponible, StatusStockBajo, StatusAgotado, StatusReservado:
		return true
	}
	return false
}
