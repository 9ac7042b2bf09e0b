package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/agencia-api/internal/application/dto"
	"github.com/jhoicas/agencia-api/internal/application/usecase"
	"github.com/jhoicas/agencia-api/internal/domain"
)

func newPlanUC() (*usecase.PlanUseCase, *fakePlanRepo) {
	repo := newFakePlanRepo()
	tx := &fakeTxRunner{services: newFakeServiceRepo(), plans: repo}
	return usecase.NewPlanUseCase(repo, tx), repo
}

func seedPlanes(t *testing.T, uc *usecase.PlanUseCase, keys ...string) {
	t.Helper()
	for i, key := range keys {
		_, err := uc.Create("admin-1", dto.CreatePlanRequest{PlanID: key, Name: key, Order: i})
		require.NoError(t, err)
	}
}

// ── Create ────────────────────────────────────────────────────────────────────

func TestPlanCreate_ValoresPorDefecto(t *testing.T) {
	uc, _ := newPlanUC()

	resp, err := uc.Create("admin-1", dto.CreatePlanRequest{PlanID: "basico", Name: "Básico"})
	require.NoError(t, err)
	assert.Equal(t, "USD", resp.Currency)
	assert.Equal(t, "monthly", resp.Period)
	assert.False(t, resp.IsFeatured, "un plan nunca nace destacado")
}

// ── SetFeatured ───────────────────────────────────────────────────────────────

func TestPlanSetFeatured_EsExclusivo(t *testing.T) {
	uc, repo := newPlanUC()
	seedPlanes(t, uc, "basico", "profesional", "premium")

	require.NoError(t, uc.SetFeatured(context.Background(), "basico", true))
	require.NoError(t, uc.SetFeatured(context.Background(), "premium", true))

	assert.Equal(t, 1, repo.featuredCount(), "a lo sumo un plan destacado")
	assert.False(t, repo.items["basico"].IsFeatured)
	assert.True(t, repo.items["premium"].IsFeatured)
}

func TestPlanSetFeatured_DesmarcarNoTocaOtros(t *testing.T) {
	uc, repo := newPlanUC()
	seedPlanes(t, uc, "basico", "premium")

	require.NoError(t, uc.SetFeatured(context.Background(), "premium", true))
	require.NoError(t, uc.SetFeatured(context.Background(), "premium", false))

	assert.Equal(t, 0, repo.featuredCount())
}

func TestPlanSetFeatured_PlanInexistenteRevierteLaTransaccion(t *testing.T) {
	uc, repo := newPlanUC()
	seedPlanes(t, uc, "basico", "premium")

	require.NoError(t, uc.SetFeatured(context.Background(), "premium", true))

	// El ClearFeatured dentro de la transacción no debe sobrevivir si el
	// SetFeatured posterior falla.
	err := uc.SetFeatured(context.Background(), "no-existe", true)
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.True(t, repo.items["premium"].IsFeatured, "el destacado anterior se conserva")
}

// ── Update ────────────────────────────────────────────────────────────────────

func TestPlanUpdate_NoPermiteTocarIsFeatured(t *testing.T) {
	uc, repo := newPlanUC()
	seedPlanes(t, uc, "premium")
	require.NoError(t, uc.SetFeatured(context.Background(), "premium", true))

	name := "Premium Plus"
	resp, err := uc.Update("premium", dto.UpdatePlanRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Premium Plus", resp.Name)
	assert.True(t, repo.items["premium"].IsFeatured, "is_featured solo cambia por su operación propia")
}

func TestPlanUpdate_SinCamposActualizables(t *testing.T) {
	uc, _ := newPlanUC()

	_, err := uc.Update("basico", dto.UpdatePlanRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
