package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	const threshold = 5

	tests := []struct {
		name     string
		stock    int64
		reserved bool
		want     string
	}{
		{"stock cero es agotado", 0, false, StatusAgotado},
		{"stock igual al umbral es stock bajo", 5, false, StatusStockBajo},
		{"stock bajo el umbral es stock bajo", 1, false, StatusStockBajo},
		{"stock sobre el umbral es disponible", 6, false, StatusDisponible},
		{"stock alto es disponible", 100, false, StatusDisponible},
		{"reservado prevalece con stock alto", 100, true, StatusReservado},
		{"reservado prevalece con stock cero", 0, true, StatusReservado},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFor(tt.stock, threshold, tt.reserved))
		})
	}
}

func TestStatusFor_UmbralCero(t *testing.T) {
	// Con umbral 0 no existe "stock bajo": o hay stock o está agotado.
	assert.Equal(t, StatusAgotado, StatusFor(0, 0, false))
	assert.Equal(t, StatusDisponible, StatusFor(1, 0, false))
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusDisponible, StatusStockBajo, StatusAgotado, StatusReservado} {
		assert.True(t, ValidStatus(s), s)
	}
	assert.False(t, ValidStatus("pendiente"))
	assert.False(t, ValidStatus(""))
}
