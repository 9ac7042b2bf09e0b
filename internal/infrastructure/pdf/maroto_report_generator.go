// Package pdf implementa la generación del reporte de leads del panel CRM.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la agencia  │  Fecha de generación       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: total de leads + conteos por estado               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Por servicio de interés                             │
//	│  TABLA: Por mes (últimos 12)                                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Últimos leads (nombre, email, servicio, estado)     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/agencia-api/internal/application/usecase"
	"github.com/jhoicas/agencia-api/internal/domain/entity"
	"github.com/jhoicas/agencia-api/internal/domain/repository"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa usecase.LeadReportGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	appName string
}

var _ usecase.LeadReportGenerator = (*MarotoReportGenerator)(nil)

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator(appName string) *MarotoReportGenerator {
	return &MarotoReportGenerator{appName: appName}
}

// GenerateLeadReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateLeadReport(
	_ context.Context,
	stats *repository.LeadStats,
	recent []*entity.Lead,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Leads", true).
		WithAuthor(g.appName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.appName, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(stats))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitleRow("POR SERVICIO DE INTERÉS"))
	for _, r := range countRows(stats.PorServicio) {
		m.AddRows(r)
	}

	m.AddRows(sectionTitleRow("POR MES (ÚLTIMOS 12)"))
	for _, r := range countRows(stats.PorMes) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(sectionTitleRow("ÚLTIMOS LEADS"))
	m.AddRows(leadTableHeaderRow())
	for _, r := range leadRows(recent) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la agencia (izq) y fecha de generación (der).
func headerRow(appName string, generatedAt time.Time) core.Row {
	fecha := generatedAt.Format("02/01/2006 15:04")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(appName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Panel CRM", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("REPORTE DE LEADS", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Generado: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// summaryRow: total global + conteo por cada estado del pipeline.
func summaryRow(stats *repository.LeadStats) core.Row {
	porEstado := make(map[string]int, len(stats.PorEstado))
	for _, c := range stats.PorEstado {
		porEstado[c.Key] = c.Count
	}

	cell := func(label string, count int) core.Col {
		return col.New(2).Add(
			text.New(fmt.Sprintf("%d", count), props.Text{
				Style: fontstyle.Bold, Size: 14, Align: align.Center,
				Color: colorPrimary, Top: 1,
			}),
			text.New(label, props.Text{
				Size: 7, Align: align.Center, Top: 9, Color: colorGray,
			}),
		)
	}

	cols := []core.Col{
		col.New(1),
		cell("TOTAL", stats.Total),
	}
	for _, estado := range entity.LeadEstados {
		cols = append(cols, cell(estado, porEstado[estado]))
	}
	cols = append(cols, col.New(1))

	return row.New(16).Add(cols...)
}

func sectionTitleRow(title string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
		}),
	))
}

// countRows: una fila clave/conteo por grupo.
func countRows(counts []repository.LeadCount) []core.Row {
	result := make([]core.Row, 0, len(counts))
	for _, c := range counts {
		result = append(result, row.New(5).Add(
			col.New(8).Add(text.New(c.Key, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 2,
			})),
			col.New(4).Add(text.New(fmt.Sprintf("%d", c.Count), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 2,
			})),
		))
	}
	return result
}

// leadTableHeaderRow: cabecera de la tabla de leads recientes.
func leadTableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(7).Add(
		h("Nombre", 3, align.Left),
		h("Email", 4, align.Left),
		h("Servicio", 3, align.Left),
		h("Estado", 2, align.Center),
	)
}

// leadRows: una fila por lead reciente.
func leadRows(leads []*entity.Lead) []core.Row {
	result := make([]core.Row, 0, len(leads))
	for _, l := range leads {
		result = append(result, row.New(6).Add(
			col.New(3).Add(text.New(
				l.Nombre,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(4).Add(text.New(
				l.Email,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				nonEmpty(l.ServicioInteres, "—"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				l.Estado,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
		))
	}
	return result
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
