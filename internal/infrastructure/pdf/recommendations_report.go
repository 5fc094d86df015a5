// Package pdf genera el reporte imprimible de recomendaciones de compra de repuestos.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título + fecha de generación                        │
//	│  RESUMEN: conteo por prioridad (alta / media / baja)         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Prioridad | Código | Descripción | Stock | Sugerido | │
//	│         Cant. a pedir | Motivo                               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: nota sobre el cálculo heurístico                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
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

	appanalytics "github.com/jhoicas/repuestos-analytics/internal/application/analytics"
	"github.com/jhoicas/repuestos-analytics/internal/application/dto"
)

var _ appanalytics.RecommendationReportGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlta    = &props.Color{Red: 180, Green: 30, Blue: 30}
	colorMedia   = &props.Color{Red: 200, Green: 120, Blue: 0}
)

// MarotoReportGenerator implementa RecommendationReportGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	title string
}

// NewMarotoReportGenerator construye el generador; title encabeza el documento.
func NewMarotoReportGenerator(title string) *MarotoReportGenerator {
	if title == "" {
		title = "Recomendaciones de compra de repuestos"
	}
	return &MarotoReportGenerator{title: title}
}

// GenerateRecommendationsPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateRecommendationsPDF(
	_ context.Context,
	recs []dto.RecommendationDTO,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(g.title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.title, generatedAt))
	m.AddRows(summaryRow(recs))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	if len(recs) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("Sin recomendaciones: ningún repuesto requiere compra.", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 3,
			}),
		)))
	}
	m.AddRows(tableDetailRows(recs)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(title string, generatedAt time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

// summaryRow: conteo por prioridad.
func summaryRow(recs []dto.RecommendationDTO) core.Row {
	counts := map[string]int{}
	total := 0
	for _, r := range recs {
		counts[r.Priority]++
		total += r.SuggestedQuantity
	}
	return row.New(8).Add(
		col.New(12).Add(text.New(fmt.Sprintf(
			"Alta: %d   |   Media: %d   |   Baja: %d   |   Unidades a pedir: %s",
			counts["alta"], counts["media"], counts["baja"], formatThousands(total),
		), props.Text{Size: 8, Top: 1, Color: colorGray})),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Prioridad", 1, align.Center),
		h("Código", 1, align.Left),
		h("Descripción", 3, align.Left),
		h("Stock", 1, align.Right),
		h("Sugerido", 1, align.Right),
		h("A pedir", 1, align.Right),
		h("Motivo", 4, align.Left),
	)
}

// tableDetailRows: una fila por recomendación, en el orden recibido (ya priorizado).
func tableDetailRows(recs []dto.RecommendationDTO) []core.Row {
	result := make([]core.Row, 0, len(recs))
	for _, r := range recs {
		a := r.Analytics
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(r.Priority, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Center, Top: 1, Color: priorityColor(r.Priority),
			})),
			col.New(1).Add(text.New(a.Code, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(nonEmpty(a.Description, "—"), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(formatThousands(a.CurrentStock), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New(formatThousands(a.SuggestedStock), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New(formatThousands(r.SuggestedQuantity), props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
			col.New(4).Add(text.New(r.Reason, props.Text{Size: 7.5, Top: 1, Left: 1, Color: colorGray})),
		))
	}
	return result
}

func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Cantidades calculadas con promedios de consumo mensual ajustados por tendencia. "+
				"Validar con el responsable de mantenimiento antes de emitir la orden de compra.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func priorityColor(p string) *props.Color {
	switch p {
	case "alta":
		return colorAlta
	case "media":
		return colorMedia
	default:
		return colorGray
	}
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatThousands inserta puntos de miles. Ej: 25000 → "25.000".
func formatThousands(n int) string {
	s := strconv.Itoa(n)
	sign := ""
	if n < 0 {
		sign, s = "-", s[1:]
	}
	l := len(s)
	if l <= 3 {
		return sign + s
	}
	buf := make([]byte, 0, l+l/3)
	for i, c := range []byte(s) {
		if i > 0 && (l-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return sign + string(buf)
}
