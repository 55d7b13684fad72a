// Package textutil normaliza texto en español para comparaciones: los nombres
// de catálogo llegan con tildes y mayúsculas inconsistentes ("Categoría",
// "categoria") y deben tratarse como el mismo valor.
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold devuelve s en minúsculas, sin marcas diacríticas y con los espacios
// colapsados. Pensado para comparar, no para mostrar.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.Join(strings.Fields(strings.ToLower(folded)), " ")
}

// Equal compara dos cadenas tras normalizarlas con Fold.
func Equal(a, b string) bool {
	return Fold(a) == Fold(b)
}
