// Package delivery implementa el flujo de solicitudes de salida: el carrito
// en memoria donde se arma la entrega y el commit transaccional que la
// persiste junto con los descuentos de stock.
package delivery

import (
	"github.com/StearCodeK/MajoTerminalo/internal/domain"
)

// CartItem es una línea del carrito en construcción.
type CartItem struct {
	ProductID   string
	ProductName string
	Quantity    int64
}

// Cart acumula líneas de entrega antes del commit. Lleva por producto un
// contador de stock disponible sembrado desde la lectura de BD: cada Add lo
// descuenta y cada Remove lo restaura. El contador nunca queda negativo; un
// Add que lo excedería se rechaza sin mutar el carrito. Nada se persiste
// hasta el commit; descartar el carrito no deja efecto alguno.
type Cart struct {
	items     []CartItem
	available map[string]int64
	seeded    map[string]bool
}

// NewCart construye un carrito vacío.
func NewCart() *Cart {
	return &Cart{
		available: make(map[string]int64),
		seeded:    make(map[string]bool),
	}
}

// Seed siembra el disponible de un producto desde el saldo leído en BD.
// Solo la primera siembra por producto tiene efecto: las adiciones previas
// del mismo carrito ya descontaron del contador.
func (c *Cart) Seed(productID string, stock int64) {
	if c.seeded[productID] {
		return
	}
	c.seeded[productID] = true
	c.available[productID] = stock
}

// Available devuelve el disponible vigente del producto en esta sesión.
func (c *Cart) Available(productID string) int64 {
	return c.available[productID]
}

// Add agrega una línea al carrito. Si el producto ya está en la lista, las
// cantidades se combinan en la línea existente. Devuelve ErrStockInsuficiente
// sin modificar el carrito cuando la cantidad excede el disponible.
func (c *Cart) Add(item CartItem) error {
	if item.ProductID == "" || item.Quantity <= 0 {
		return domain.ErrInvalidInput
	}
	if item.Quantity > c.available[item.ProductID] {
		return domain.ErrStockInsuficiente
	}
	c.available[item.ProductID] -= item.Quantity
	for i := range c.items {
		if c.items[i].ProductID == item.ProductID {
			c.items[i].Quantity += item.Quantity
			return nil
		}
	}
	c.items = append(c.items, item)
	return nil
}

// Remove quita la línea del producto y restaura su cantidad completa al
// contador de disponible (inverso exacto de Add).
func (c *Cart) Remove(productID string) error {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.available[productID] += c.items[i].Quantity
			c.items = append(c.items[:i], c.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// Items devuelve las líneas en orden de inserción.
func (c *Cart) Items() []CartItem {
	return c.items
}

// Empty indica si el carrito no tiene líneas.
func (c *Cart) Empty() bool {
	return len(c.items) == 0
}
