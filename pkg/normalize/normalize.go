// Package normalize provee plegado de texto para búsqueda: minúsculas y sin
// diacríticos, de modo que "Pérez" y "perez" comparen iguales.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldChain = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold devuelve s en minúsculas y sin marcas diacríticas. Si la
// transformación falla (entrada no UTF-8 válida), devuelve s en minúsculas.
func Fold(s string) string {
	out, _, err := transform.String(foldChain, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}
