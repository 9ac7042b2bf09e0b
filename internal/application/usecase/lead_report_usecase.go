package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/agencia-api/internal/domain/entity"
	"github.com/jhoicas/agencia-api/internal/domain/repository"
)

// LeadReportGenerator puerto de generación del reporte PDF del CRM.
// La implementación vive en infrastructure/pdf.
type LeadReportGenerator interface {
	GenerateLeadReport(ctx context.Context, stats *repository.LeadStats, recent []*entity.Lead, generatedAt time.Time) ([]byte, error)
}

// leadReportRecentLimit cuántos leads recientes lista el reporte.
const leadReportRecentLimit = 20

// LeadReportUseCase arma el reporte PDF del panel: agregados del pipeline
// más los últimos leads capturados.
type LeadReportUseCase struct {
	repo      repository.LeadRepository
	generator LeadReportGenerator
}

// NewLeadReportUseCase construye el caso de uso.
func NewLeadReportUseCase(repo repository.LeadRepository, generator LeadReportGenerator) *LeadReportUseCase {
	return &LeadReportUseCase{repo: repo, generator: generator}
}

// Generate devuelve los bytes del PDF listos para servir.
func (uc *LeadReportUseCase) Generate(ctx context.Context) ([]byte, error) {
	stats, err := uc.repo.Estadisticas()
	if err != nil {
		return nil, err
	}
	recent, _, err := uc.repo.List(repository.LeadFilter{Page: 1, Limit: leadReportRecentLimit})
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateLeadReport(ctx, stats, recent, time.Now())
}
