package forecast

import (
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/repuestos-analytics/internal/domain/entity"
)

// Engine ejecuta el pipeline de analítica por repuesto. Solo guarda la configuración;
// es seguro para uso concurrente.
type Engine struct {
	cfg Config
}

// NewEngine construye el motor con los umbrales indicados.
func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Config devuelve los umbrales del motor.
func (e *Engine) Config() Config { return e.cfg }

// Analyze ejecuta agrupación, tendencia, estacionalidad, pronóstico, estado de stock y
// confianza para un repuesto. history debe contener solo eventos de ese repuesto.
func (e *Engine) Analyze(part entity.Part, history []entity.UsageEvent) PartAnalytics {
	cfg := e.cfg

	buckets := BucketByMonth(history)
	trend := ClassifyTrend(buckets, cfg)
	season := DetectSeasonality(buckets, cfg)
	avg := AverageMonthlyConsumption(buckets)
	demand := ForecastDemand(avg, trend, cfg)
	status := EvaluateStock(part.CurrentStock, avg, trend, cfg)

	return PartAnalytics{
		PartID:                part.ID,
		Code:                  part.Code,
		Description:           part.Description,
		CurrentStock:          part.CurrentStock,
		MinimumStock:          part.MinimumStock,
		AvgMonthlyConsumption: avg,
		Trend:                 trend,
		DaysUntilStockout:     status.DaysUntilStockout,
		SuggestedStock:        status.SuggestedStock,
		Criticality:           status.Criticality,
		Forecast30:            demand.Days30,
		Forecast60:            demand.Days60,
		Forecast90:            demand.Days90,
		HasSeasonalPattern:    season.HasPattern,
		HighDemandMonths:      season.HighDemandMonths,
		PredictionConfidence:  ScoreConfidence(len(history), cfg),
		Alerts:                BuildAlerts(part.CurrentStock, part.MinimumStock, avg, status.DaysUntilStockout, cfg),
	}
}

// ComputeAnalytics analiza todos los repuestos; el resultado respeta el orden de parts.
// Falla solo ante entrada estructuralmente inválida (ver Validate).
func (e *Engine) ComputeAnalytics(parts []entity.Part, history []entity.UsageEvent) ([]PartAnalytics, error) {
	if err := Validate(parts, history); err != nil {
		return nil, err
	}

	byPart := groupByPart(history)
	results := make([]PartAnalytics, len(parts))

	workers := e.cfg.Workers
	if workers < 1 {
		workers = 1
	}
	var g errgroup.Group
	g.SetLimit(workers)
	for i := range parts {
		g.Go(func() error {
			results[i] = e.Analyze(parts[i], byPart[parts[i].ID])
			return nil
		})
	}
	_ = g.Wait() // Analyze no falla

	return results, nil
}

// CriticalItems filtra criticidad critical/high o agotamiento dentro de MediumDays,
// ordenado por días hasta agotarse ascendente.
func (e *Engine) CriticalItems(parts []entity.Part, history []entity.UsageEvent) ([]PartAnalytics, error) {
	all, err := e.ComputeAnalytics(parts, history)
	if err != nil {
		return nil, err
	}
	return FilterCritical(all, e.cfg), nil
}

// PurchaseRecommendations genera la lista de compra priorizada.
func (e *Engine) PurchaseRecommendations(parts []entity.Part, history []entity.UsageEvent) ([]Recommendation, error) {
	all, err := e.ComputeAnalytics(parts, history)
	if err != nil {
		return nil, err
	}
	return GenerateRecommendations(all, e.cfg), nil
}

// FilterCritical aplica el filtro de repuestos críticos sobre analíticas ya calculadas.
func FilterCritical(all []PartAnalytics, cfg Config) []PartAnalytics {
	critical := make([]PartAnalytics, 0, len(all))
	for _, a := range all {
		if a.Criticality == CriticalityCritical || a.Criticality == CriticalityHigh ||
			a.DaysUntilStockout <= cfg.MediumDays {
			critical = append(critical, a)
		}
	}
	sort.SliceStable(critical, func(i, j int) bool {
		return critical[i].DaysUntilStockout < critical[j].DaysUntilStockout
	})
	return critical
}

// Validate rechaza stocks negativos y consumos sin cantidad (<= 0), nombrando repuesto y campo.
func Validate(parts []entity.Part, history []entity.UsageEvent) error {
	for _, p := range parts {
		if p.CurrentStock < 0 {
			return &InvalidInputError{PartID: p.ID, Field: "current_stock", Value: p.CurrentStock}
		}
		if p.MinimumStock < 0 {
			return &InvalidInputError{PartID: p.ID, Field: "minimum_stock", Value: p.MinimumStock}
		}
	}
	for _, ev := range history {
		if ev.Quantity <= 0 {
			return &InvalidInputError{PartID: ev.PartID, Field: "quantity", Value: ev.Quantity}
		}
	}
	return nil
}

// groupByPart reparte el historial por repuesto en slices nuevos, manteniendo el orden de entrada.
func groupByPart(history []entity.UsageEvent) map[string][]entity.UsageEvent {
	byPart := make(map[string][]entity.UsageEvent)
	for _, ev := range history {
		byPart[ev.PartID] = append(byPart[ev.PartID], ev)
	}
	return byPart
}
