package usecase_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/agencia-api/internal/application/dto"
	"github.com/jhoicas/agencia-api/internal/application/usecase"
	"github.com/jhoicas/agencia-api/internal/domain"
	"github.com/jhoicas/agencia-api/internal/domain/entity"
)

func newContentUC() (*usecase.ContentUseCase, *fakeContentRepo) {
	repo := newFakeContentRepo()
	return usecase.NewContentUseCase(repo), repo
}

// ── ParseContentPath ──────────────────────────────────────────────────────────

func TestParseContentPath(t *testing.T) {
	cases := []struct {
		raw  string
		want []string
	}{
		{"titulo", []string{"titulo"}},
		{"hero.titulo", []string{"hero", "titulo"}},
		{"hero.cta.texto", []string{"hero", "cta", "texto"}},
	}
	for _, c := range cases {
		got, err := usecase.ParseContentPath(c.raw)
		require.NoError(t, err, "ruta %q", c.raw)
		assert.Equal(t, c.want, got)
	}
}

func TestParseContentPath_RutasInvalidas(t *testing.T) {
	invalid := []string{
		"",
		".",
		"hero.",
		".titulo",
		"hero..titulo",
		"hero.\x00titulo",
		strings.Repeat("a.", 10) + "a", // 11 segmentos
	}
	for _, raw := range invalid {
		_, err := usecase.ParseContentPath(raw)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "ruta %q", raw)
	}
}

// ── Upsert ────────────────────────────────────────────────────────────────────

func TestContentUpsert_EstadoPorDefectoPublished(t *testing.T) {
	uc, _ := newContentUC()

	resp, err := uc.Upsert("editor-1", "inicio", dto.UpsertContentRequest{
		Name:        "Inicio",
		ContentData: json.RawMessage(`{"hero":{"titulo":"Hola"}}`),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ContentStatusPublished, resp.Status)
	assert.Equal(t, "editor-1", resp.UpdatedBy)
}

func TestContentUpsert_JSONInvalido(t *testing.T) {
	uc, _ := newContentUC()

	_, err := uc.Upsert("editor-1", "inicio", dto.UpsertContentRequest{
		ContentData: json.RawMessage(`{"hero":`),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestContentUpsert_SectionKeyInvalida(t *testing.T) {
	uc, _ := newContentUC()

	_, err := uc.Upsert("editor-1", "Sección Inicio", dto.UpsertContentRequest{
		ContentData: json.RawMessage(`{}`),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ── UpdatePartial ─────────────────────────────────────────────────────────────

func TestContentUpdatePartial_PreservaClavesHermanas(t *testing.T) {
	uc, _ := newContentUC()

	_, err := uc.Upsert("editor-1", "inicio", dto.UpsertContentRequest{
		Name:        "Inicio",
		ContentData: json.RawMessage(`{"hero":{"titulo":"Hola","subtitulo":"Mundo"},"footer":"pie"}`),
	})
	require.NoError(t, err)

	resp, err := uc.UpdatePartial("editor-2", "inicio", dto.PartialContentRequest{
		Path:  "hero.titulo",
		Value: json.RawMessage(`"Bienvenidos"`),
	})
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(resp.ContentData, &doc))
	hero := doc["hero"].(map[string]any)
	assert.Equal(t, "Bienvenidos", hero["titulo"])
	assert.Equal(t, "Mundo", hero["subtitulo"], "las claves hermanas de la ruta no se tocan")
	assert.Equal(t, "pie", doc["footer"])
	assert.Equal(t, "editor-2", resp.UpdatedBy)
}

func TestContentUpdatePartial_CreaObjetosIntermedios(t *testing.T) {
	uc, _ := newContentUC()

	_, err := uc.Upsert("editor-1", "contacto", dto.UpsertContentRequest{
		ContentData: json.RawMessage(`{"email":"hola@agencia.com"}`),
	})
	require.NoError(t, err)

	resp, err := uc.UpdatePartial("editor-1", "contacto", dto.PartialContentRequest{
		Path:  "redes.instagram",
		Value: json.RawMessage(`"@agencia"`),
	})
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(resp.ContentData, &doc))
	assert.Equal(t, "hola@agencia.com", doc["email"])
	redes := doc["redes"].(map[string]any)
	assert.Equal(t, "@agencia", redes["instagram"])
}

func TestContentUpdatePartial_ValorJSONInvalido(t *testing.T) {
	uc, _ := newContentUC()

	_, err := uc.UpdatePartial("editor-1", "inicio", dto.PartialContentRequest{
		Path:  "hero.titulo",
		Value: json.RawMessage(`"sin cerrar`),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestContentUpdatePartial_SeccionInexistente(t *testing.T) {
	uc, _ := newContentUC()

	_, err := uc.UpdatePartial("editor-1", "no-existe", dto.PartialContentRequest{
		Path:  "hero.titulo",
		Value: json.RawMessage(`"x"`),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ── Visibilidad ───────────────────────────────────────────────────────────────

func TestContentGet_BorradorInvisibleSinPermiso(t *testing.T) {
	uc, _ := newContentUC()

	_, err := uc.Upsert("editor-1", "nosotros", dto.UpsertContentRequest{
		ContentData: json.RawMessage(`{"texto":"equipo"}`),
		Status:      entity.ContentStatusDraft,
	})
	require.NoError(t, err)

	resp, err := uc.GetBySectionKey("nosotros", false)
	require.NoError(t, err)
	assert.Nil(t, resp)

	resp, err = uc.GetBySectionKey("nosotros", true)
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, entity.ContentStatusDraft, resp.Status)
}
