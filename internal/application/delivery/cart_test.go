package delivery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StearCodeK/MajoTerminalo/internal/domain"
)

func TestCart_AddDescuentaDelDisponible(t *testing.T) {
	cart := NewCart()
	cart.Seed("p1", 10)

	require.NoError(t, cart.Add(CartItem{ProductID: "p1", ProductName: "Resma", Quantity: 4}))

	assert.Equal(t, int64(6), cart.Available("p1"))
	require.Len(t, cart.Items(), 1)
	assert.Equal(t, int64(4), cart.Items()[0].Quantity)
}

func TestCart_AddSobreDisponibleRechazadoSinMutar(t *testing.T) {
	cart := NewCart()
	cart.Seed("p1", 3)

	err := cart.Add(CartItem{ProductID: "p1", Quantity: 5})
	require.ErrorIs(t, err, domain.ErrStockInsuficiente)

	// Rechazo idempotente: ni líneas ni contador cambian.
	assert.True(t, cart.Empty())
	assert.Equal(t, int64(3), cart.Available("p1"))

	err = cart.Add(CartItem{ProductID: "p1", Quantity: 5})
	require.ErrorIs(t, err, domain.ErrStockInsuficiente)
	assert.True(t, cart.Empty())
}

func TestCart_AddMismoProductoCombinaLineas(t *testing.T) {
	cart := NewCart()
	cart.Seed("p1", 10)

	require.NoError(t, cart.Add(CartItem{ProductID: "p1", Quantity: 4}))
	require.NoError(t, cart.Add(CartItem{ProductID: "p1", Quantity: 3}))

	require.Len(t, cart.Items(), 1, "el mismo producto se combina en una línea")
	assert.Equal(t, int64(7), cart.Items()[0].Quantity)
	assert.Equal(t, int64(3), cart.Available("p1"))

	// La combinación también respeta el disponible.
	err := cart.Add(CartItem{ProductID: "p1", Quantity: 4})
	assert.ErrorIs(t, err, domain.ErrStockInsuficiente)
	assert.Equal(t, int64(7), cart.Items()[0].Quantity)
}

func TestCart_RemoveRestauraCantidadExacta(t *testing.T) {
	cart := NewCart()
	cart.Seed("p1", 10)
	require.NoError(t, cart.Add(CartItem{ProductID: "p1", Quantity: 6}))
	require.Equal(t, int64(4), cart.Available("p1"))

	require.NoError(t, cart.Remove("p1"))

	// Ida y vuelta: agregar y quitar deja el contador como estaba.
	assert.Equal(t, int64(10), cart.Available("p1"))
	assert.True(t, cart.Empty())
}

func TestCart_RemoveInexistente(t *testing.T) {
	cart := NewCart()
	assert.ErrorIs(t, cart.Remove("p1"), domain.ErrNotFound)
}

func TestCart_SeedSoloLaPrimeraVez(t *testing.T) {
	cart := NewCart()
	cart.Seed("p1", 10)
	require.NoError(t, cart.Add(CartItem{ProductID: "p1", Quantity: 4}))

	// Una relectura de BD no debe pisar el contador ya descontado.
	cart.Seed("p1", 10)
	assert.Equal(t, int64(6), cart.Available("p1"))
}

func TestCart_OrdenDeInsercion(t *testing.T) {
	cart := NewCart()
	cart.Seed("p1", 5)
	cart.Seed("p2", 5)
	cart.Seed("p3", 5)
	require.NoError(t, cart.Add(CartItem{ProductID: "p2", Quantity: 1}))
	require.NoError(t, cart.Add(CartItem{ProductID: "p3", Quantity: 1}))
	require.NoError(t, cart.Add(CartItem{ProductID: "p1", Quantity: 1}))

	ids := []string{}
	for _, it := range cart.Items() {
		ids = append(ids, it.ProductID)
	}
	assert.Equal(t, []string{"p2", "p3", "p1"}, ids)
}

func TestCart_CantidadInvalida(t *testing.T) {
	cart := NewCart()
	cart.Seed("p1", 10)
	assert.ErrorIs(t, cart.Add(CartItem{ProductID: "p1", Quantity: 0}), domain.ErrInvalidInput)
	assert.ErrorIs(t, cart.Add(CartItem{ProductID: "p1", Quantity: -2}), domain.ErrInvalidInput)
	assert.ErrorIs(t, cart.Add(CartItem{Quantity: 1}), domain.ErrInvalidInput)
}
