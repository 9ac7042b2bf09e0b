package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/agencia-api/internal/application/dto"
	"github.com/jhoicas/agencia-api/internal/application/usecase"
	"github.com/jhoicas/agencia-api/internal/domain"
	"github.com/jhoicas/agencia-api/internal/domain/entity"
	"github.com/jhoicas/agencia-api/internal/domain/repository"
)

func newLeadUC() (*usecase.LeadUseCase, *fakeLeadRepo) {
	repo := newFakeLeadRepo()
	return usecase.NewLeadUseCase(repo), repo
}

// ── Create ────────────────────────────────────────────────────────────────────

func TestLeadCreate_EstadoInicialYNormalizacion(t *testing.T) {
	uc, _ := newLeadUC()

	resp, err := uc.Create(dto.CreateLeadRequest{
		Nombre: "  Ana Pérez  ",
		Email:  " ANA@Ejemplo.COM ",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.LeadEstadoNuevo, resp.Estado)
	assert.Equal(t, "Ana Pérez", resp.Nombre)
	assert.Equal(t, "ana@ejemplo.com", resp.Email)
	assert.Empty(t, resp.AssignedTo)
}

func TestLeadCreate_SinNombreOEmail(t *testing.T) {
	uc, _ := newLeadUC()

	_, err := uc.Create(dto.CreateLeadRequest{Nombre: "   ", Email: "ana@ejemplo.com"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateLeadRequest{Nombre: "Ana", Email: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ── ChangeEstado ──────────────────────────────────────────────────────────────

func TestLeadChangeEstado_EnumCompleto(t *testing.T) {
	uc, repo := newLeadUC()

	resp, err := uc.Create(dto.CreateLeadRequest{Nombre: "Ana", Email: "ana@ejemplo.com"})
	require.NoError(t, err)

	// Las transiciones no están restringidas: cualquier estado es alcanzable.
	for _, estado := range entity.LeadEstados {
		require.NoError(t, uc.ChangeEstado(resp.ID, estado))
		assert.Equal(t, estado, repo.items[resp.ID].Estado)
	}
}

func TestLeadChangeEstado_EstadoInvalido(t *testing.T) {
	uc, _ := newLeadUC()

	err := uc.ChangeEstado("cualquiera", "perdido")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ── List ──────────────────────────────────────────────────────────────────────

func TestLeadList_EstadoInvalidoEnFiltro(t *testing.T) {
	uc, _ := newLeadUC()

	_, _, err := uc.List(repository.LeadFilter{Estado: "pendiente"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLeadList_BusquedaInsensibleAAcentos(t *testing.T) {
	uc, _ := newLeadUC()

	_, err := uc.Create(dto.CreateLeadRequest{Nombre: "José María", Email: "jose@ejemplo.com"})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateLeadRequest{Nombre: "Pedro", Email: "pedro@ejemplo.com"})
	require.NoError(t, err)

	items, _, err := uc.List(repository.LeadFilter{Query: "jose maria"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "José María", items[0].Nombre)
}

// ── Assign ────────────────────────────────────────────────────────────────────

func TestLeadAssign_YDesasignar(t *testing.T) {
	uc, repo := newLeadUC()

	resp, err := uc.Create(dto.CreateLeadRequest{Nombre: "Ana", Email: "ana@ejemplo.com"})
	require.NoError(t, err)

	require.NoError(t, uc.Assign(resp.ID, "user-7"))
	assert.Equal(t, "user-7", repo.items[resp.ID].AssignedTo)

	require.NoError(t, uc.Assign(resp.ID, ""))
	assert.Empty(t, repo.items[resp.ID].AssignedTo)
}

// ── ImportLegacy ──────────────────────────────────────────────────────────────

func TestLeadImportLegacy_ConservaEstadoDelVolcado(t *testing.T) {
	uc, repo := newLeadUC()

	inserted, err := uc.ImportLegacy([]dto.LegacyLeadRecord{
		{
			CreateLeadRequest: dto.CreateLeadRequest{Nombre: "Ana", Email: "ana@ejemplo.com"},
			Estado:            entity.LeadEstadoContactado,
		},
		{
			CreateLeadRequest: dto.CreateLeadRequest{Nombre: "Pedro", Email: "pedro@ejemplo.com"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, inserted)

	estados := make(map[string]string)
	for _, l := range repo.items {
		estados[l.Email] = l.Estado
	}
	assert.Equal(t, entity.LeadEstadoContactado, estados["ana@ejemplo.com"])
	assert.Equal(t, entity.LeadEstadoNuevo, estados["pedro@ejemplo.com"])
}

func TestLeadImportLegacy_EstadoInvalidoDetieneLaImportacion(t *testing.T) {
	uc, _ := newLeadUC()

	_, err := uc.ImportLegacy([]dto.LegacyLeadRecord{
		{
			CreateLeadRequest: dto.CreateLeadRequest{Nombre: "Ana", Email: "ana@ejemplo.com"},
			Estado:            "perdido",
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ── Estadisticas ──────────────────────────────────────────────────────────────

func TestLeadEstadisticas(t *testing.T) {
	uc, _ := newLeadUC()

	for _, email := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		_, err := uc.Create(dto.CreateLeadRequest{Nombre: "Lead", Email: email})
		require.NoError(t, err)
	}
	items, _, err := uc.List(repository.LeadFilter{})
	require.NoError(t, err)
	require.NoError(t, uc.ChangeEstado(items[0].ID, entity.LeadEstadoCerrado))

	stats, err := uc.Estadisticas()
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)

	porEstado := make(map[string]int)
	for _, c := range stats.PorEstado {
		porEstado[c.Key] = c.Count
	}
	assert.Equal(t, 2, porEstado[entity.LeadEstadoNuevo])
	assert.Equal(t, 1, porEstado[entity.LeadEstadoCerrado])
}
