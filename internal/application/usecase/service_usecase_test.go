package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/agencia-api/internal/application/dto"
	"github.com/jhoicas/agencia-api/internal/application/usecase"
	"github.com/jhoicas/agencia-api/internal/domain"
	"github.com/jhoicas/agencia-api/internal/domain/entity"
	"github.com/jhoicas/agencia-api/internal/domain/repository"
)

func newServiceUC() (*usecase.ServiceUseCase, *fakeServiceRepo) {
	repo := newFakeServiceRepo()
	tx := &fakeTxRunner{services: repo, plans: newFakePlanRepo()}
	return usecase.NewServiceUseCase(repo, tx), repo
}

func strPtr(s string) *string { return &s }

// ── Create ────────────────────────────────────────────────────────────────────

func TestServiceCreate_AsignaEstadoActivo(t *testing.T) {
	uc, _ := newServiceUC()

	resp, err := uc.Create("admin-1", dto.CreateServiceRequest{
		ServiceID: "diseno-web",
		Title:     "Diseño Web",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.CatalogStatusActive, resp.Status)
	assert.NotEmpty(t, resp.ID)
	assert.NotNil(t, resp.Features, "features nulo debe serializarse como lista vacía")
}

func TestServiceCreate_ServiceIDInvalido(t *testing.T) {
	uc, _ := newServiceUC()

	for _, key := range []string{"", "Diseño Web", "con espacios", "MAYUSCULAS", "con_guion_bajo"} {
		_, err := uc.Create("admin-1", dto.CreateServiceRequest{ServiceID: key, Title: "X"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "clave %q", key)
	}
}

func TestServiceCreate_Duplicado(t *testing.T) {
	uc, _ := newServiceUC()

	_, err := uc.Create("admin-1", dto.CreateServiceRequest{ServiceID: "seo", Title: "SEO"})
	require.NoError(t, err)

	_, err = uc.Create("admin-1", dto.CreateServiceRequest{ServiceID: "seo", Title: "Otro"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// ── Update ────────────────────────────────────────────────────────────────────

func TestServiceUpdate_SinCamposActualizables(t *testing.T) {
	uc, _ := newServiceUC()

	_, err := uc.Update("seo", dto.UpdateServiceRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestServiceUpdate_NoExiste(t *testing.T) {
	uc, _ := newServiceUC()

	resp, err := uc.Update("no-existe", dto.UpdateServiceRequest{Title: strPtr("X")})
	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestServiceUpdate_AplicaSoloCamposPresentes(t *testing.T) {
	uc, _ := newServiceUC()

	_, err := uc.Create("admin-1", dto.CreateServiceRequest{
		ServiceID:   "seo",
		Title:       "SEO",
		Description: "Posicionamiento",
		Icon:        "search",
	})
	require.NoError(t, err)

	resp, err := uc.Update("seo", dto.UpdateServiceRequest{Title: strPtr("SEO Avanzado")})
	require.NoError(t, err)
	assert.Equal(t, "SEO Avanzado", resp.Title)
	assert.Equal(t, "Posicionamiento", resp.Description, "los campos ausentes no se tocan")
	assert.Equal(t, "search", resp.Icon)
}

func TestServiceUpdate_RecursoInactivoSigueEditable(t *testing.T) {
	uc, _ := newServiceUC()

	_, err := uc.Create("admin-1", dto.CreateServiceRequest{ServiceID: "seo", Title: "SEO"})
	require.NoError(t, err)
	require.NoError(t, uc.SoftDelete("seo"))

	resp, err := uc.Update("seo", dto.UpdateServiceRequest{Title: strPtr("SEO v2")})
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "SEO v2", resp.Title)
	assert.Equal(t, entity.CatalogStatusInactive, resp.Status)
}

// ── ChangeStatus / SoftDelete ─────────────────────────────────────────────────

func TestServiceChangeStatus_EstadoInvalido(t *testing.T) {
	uc, _ := newServiceUC()

	err := uc.ChangeStatus("seo", "borrado")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestServiceSoftDelete_OcultaDeListadosPublicos(t *testing.T) {
	uc, _ := newServiceUC()

	_, err := uc.Create("admin-1", dto.CreateServiceRequest{ServiceID: "seo", Title: "SEO"})
	require.NoError(t, err)
	require.NoError(t, uc.SoftDelete("seo"))

	resp, err := uc.GetByServiceID("seo", false)
	require.NoError(t, err)
	assert.Nil(t, resp, "un recurso inactivo no es visible sin include_inactive")

	resp, err = uc.GetByServiceID("seo", true)
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, entity.CatalogStatusInactive, resp.Status)
}

// ── List / paginación ─────────────────────────────────────────────────────────

func TestServiceList_Paginacion(t *testing.T) {
	uc, _ := newServiceUC()

	for i := 0; i < 45; i++ {
		_, err := uc.Create("admin-1", dto.CreateServiceRequest{
			ServiceID: fmt.Sprintf("servicio-%02d", i),
			Title:     fmt.Sprintf("Servicio %d", i),
			Order:     i,
		})
		require.NoError(t, err)
	}

	items, page, err := uc.List(repository.CatalogFilter{Page: 5, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, items, 5)
	assert.Equal(t, 45, page.Total)
	assert.Equal(t, 5, page.Pages)

	items, page, err = uc.List(repository.CatalogFilter{Page: 6, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, items, "una página fuera de rango devuelve lista vacía, no error")
	assert.Equal(t, 5, page.Pages)
}

// ── Reorder ───────────────────────────────────────────────────────────────────

func TestServiceReorder_AplicaLoteCompleto(t *testing.T) {
	uc, repo := newServiceUC()

	for i, key := range []string{"seo", "diseno-web", "branding"} {
		_, err := uc.Create("admin-1", dto.CreateServiceRequest{ServiceID: key, Title: key, Order: i})
		require.NoError(t, err)
	}

	err := uc.Reorder(context.Background(), []dto.ReorderItem{
		{BusinessID: "branding", Order: 0},
		{BusinessID: "seo", Order: 1},
		{BusinessID: "diseno-web", Order: 2},
	})
	require.NoError(t, err)

	assert.Equal(t, 0, repo.items["branding"].DisplayOrder)
	assert.Equal(t, 1, repo.items["seo"].DisplayOrder)
	assert.Equal(t, 2, repo.items["diseno-web"].DisplayOrder)
}

func TestServiceReorder_FalloRevierteElLote(t *testing.T) {
	uc, repo := newServiceUC()

	for i, key := range []string{"seo", "diseno-web", "branding"} {
		_, err := uc.Create("admin-1", dto.CreateServiceRequest{ServiceID: key, Title: key, Order: i})
		require.NoError(t, err)
	}
	repo.failOnKey = "branding"

	err := uc.Reorder(context.Background(), []dto.ReorderItem{
		{BusinessID: "seo", Order: 2},
		{BusinessID: "diseno-web", Order: 0},
		{BusinessID: "branding", Order: 1},
	})
	require.Error(t, err)

	// El lote se aplica completo o no se aplica: los pares ya escritos
	// antes del fallo se revierten.
	assert.Equal(t, 0, repo.items["seo"].DisplayOrder)
	assert.Equal(t, 1, repo.items["diseno-web"].DisplayOrder)
	assert.Equal(t, 2, repo.items["branding"].DisplayOrder)
}

// ── ImportLegacy ──────────────────────────────────────────────────────────────

func TestServiceImportLegacy_DuplicadoActualiza(t *testing.T) {
	uc, _ := newServiceUC()

	_, err := uc.Create("admin-1", dto.CreateServiceRequest{ServiceID: "seo", Title: "SEO"})
	require.NoError(t, err)

	inserted, updated, err := uc.ImportLegacy("migrador", []dto.CreateServiceRequest{
		{ServiceID: "seo", Title: "SEO Legacy"},
		{ServiceID: "branding", Title: "Branding"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, inserted)
	assert.Equal(t, 1, updated)

	resp, err := uc.GetByServiceID("seo", true)
	require.NoError(t, err)
	assert.Equal(t, "SEO Legacy", resp.Title)
}
