package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/agencia-api/pkg/normalize"
)

func TestFold(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Pérez", "perez"},
		{"JOSÉ MARÍA", "jose maria"},
		{"Diseño Gráfico", "diseno grafico"},
		{"camión", "camion"},
		{"ya-sin-acentos", "ya-sin-acentos"},
		{"", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, normalize.Fold(c.in), "Fold(%q)", c.in)
	}
}

// La búsqueda debe dar lo mismo con o sin acentos en la consulta.
func TestFold_EquivalenciaAcentos(t *testing.T) {
	assert.Equal(t, normalize.Fold("pérez"), normalize.Fold("perez"))
	assert.Equal(t, normalize.Fold("Calificación"), normalize.Fold("calificacion"))
}
