package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Categoría", "categoria"},
		{"  Ubicación   Central ", "ubicacion central"},
		{"PAPELERÍA", "papeleria"},
		{"sin-tildes", "sin-tildes"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Fold(tt.in), tt.in)
	}
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal("Categoría", "categoria"))
	assert.True(t, Equal("Almacén  Norte", "almacen norte"))
	assert.False(t, Equal("marcas", "marca"))
}
