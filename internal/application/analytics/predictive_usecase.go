// Package analytics contiene los casos de uso de analítica predictiva de inventario:
// análisis por repuesto, repuestos críticos y recomendaciones de compra.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/repuestos-analytics/internal/application/dto"
	"github.com/jhoicas/repuestos-analytics/internal/domain/entity"
	"github.com/jhoicas/repuestos-analytics/internal/domain/forecast"
	"github.com/jhoicas/repuestos-analytics/internal/domain/repository"
	"github.com/jhoicas/repuestos-analytics/pkg/logger"
)

const (
	cacheKeyAll             = "analytics:all"
	cacheKeyCritical        = "analytics:critical"
	cacheKeyRecommendations = "analytics:recommendations"

	defaultFetchWorkers = 8
)

// PredictiveUseCase obtiene repuestos e historial desde los puertos, ejecuta el motor
// forecast y arma los DTOs. La caché (opcional) vive aquí, nunca dentro del motor.
type PredictiveUseCase struct {
	partRepo     repository.PartRepository
	history      repository.HistoryProvider
	engine       *forecast.Engine
	cache        ResultCache
	report       RecommendationReportGenerator
	log          *logger.Logger
	fetchWorkers int
	now          func() time.Time
}

// Option ajusta dependencias opcionales del caso de uso.
type Option func(*PredictiveUseCase)

// WithCache activa la caché externa de resultados.
func WithCache(c ResultCache) Option {
	return func(uc *PredictiveUseCase) { uc.cache = c }
}

// WithReportGenerator habilita la exportación PDF de recomendaciones.
func WithReportGenerator(g RecommendationReportGenerator) Option {
	return func(uc *PredictiveUseCase) { uc.report = g }
}

// WithFetchWorkers limita las consultas de historial concurrentes.
func WithFetchWorkers(n int) Option {
	return func(uc *PredictiveUseCase) {
		if n > 0 {
			uc.fetchWorkers = n
		}
	}
}

// NewPredictiveUseCase construye el caso de uso.
func NewPredictiveUseCase(
	partRepo repository.PartRepository,
	history repository.HistoryProvider,
	engine *forecast.Engine,
	log *logger.Logger,
	opts ...Option,
) *PredictiveUseCase {
	if log == nil {
		log = logger.Nop()
	}
	uc := &PredictiveUseCase{
		partRepo:     partRepo,
		history:      history,
		engine:       engine,
		log:          log.Component("predictive_analytics"),
		fetchWorkers: defaultFetchWorkers,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// GetAllAnalytics analítica de todos los repuestos en el orden del repositorio.
func (uc *PredictiveUseCase) GetAllAnalytics(ctx context.Context) ([]dto.PartAnalyticsDTO, error) {
	return cached(ctx, uc, cacheKeyAll, func(parts []entity.Part, history []entity.UsageEvent) ([]dto.PartAnalyticsDTO, error) {
		all, err := uc.engine.ComputeAnalytics(parts, history)
		if err != nil {
			return nil, err
		}
		return toPartAnalyticsDTOs(all), nil
	})
}

// GetPartAnalytics analítica de un solo repuesto (sin caché).
func (uc *PredictiveUseCase) GetPartAnalytics(ctx context.Context, partID string) (*dto.PartAnalyticsDTO, error) {
	part, err := uc.partRepo.GetByID(ctx, partID)
	if err != nil {
		return nil, fmt.Errorf("analytics: repuesto %s: %w", partID, err)
	}
	history, err := uc.history.FetchUsage(ctx, partID)
	if err != nil {
		return nil, fmt.Errorf("analytics: historial de %s: %w", partID, err)
	}
	all, err := uc.engine.ComputeAnalytics([]entity.Part{*part}, history)
	if err != nil {
		return nil, fmt.Errorf("analytics: %w", err)
	}
	out := toPartAnalyticsDTO(all[0])
	return &out, nil
}

// GetCriticalItems repuestos críticos ordenados por días hasta agotarse.
func (uc *PredictiveUseCase) GetCriticalItems(ctx context.Context) (*dto.CriticalItemsDTO, error) {
	return cached(ctx, uc, cacheKeyCritical, func(parts []entity.Part, history []entity.UsageEvent) (*dto.CriticalItemsDTO, error) {
		items, err := uc.engine.CriticalItems(parts, history)
		if err != nil {
			return nil, err
		}
		out := &dto.CriticalItemsDTO{Items: toPartAnalyticsDTOs(items)}
		for _, a := range items {
			switch a.Criticality {
			case forecast.CriticalityCritical:
				out.Summary.Critical++
			case forecast.CriticalityHigh:
				out.Summary.High++
			case forecast.CriticalityMedium:
				out.Summary.Medium++
			}
		}
		return out, nil
	})
}

// GetPurchaseRecommendations lista de compra priorizada (alta → media → baja).
func (uc *PredictiveUseCase) GetPurchaseRecommendations(ctx context.Context) ([]dto.RecommendationDTO, error) {
	return cached(ctx, uc, cacheKeyRecommendations, func(parts []entity.Part, history []entity.UsageEvent) ([]dto.RecommendationDTO, error) {
		recs, err := uc.engine.PurchaseRecommendations(parts, history)
		if err != nil {
			return nil, err
		}
		out := make([]dto.RecommendationDTO, 0, len(recs))
		for _, r := range recs {
			out = append(out, dto.RecommendationDTO{
				Analytics:         toPartAnalyticsDTO(r.Analytics),
				SuggestedQuantity: r.SuggestedQuantity,
				Priority:          string(r.Priority),
				Reason:            r.Reason,
			})
		}
		return out, nil
	})
}

// GetRecommendationsPDF genera el PDF de la lista de compra para preparar órdenes.
func (uc *PredictiveUseCase) GetRecommendationsPDF(ctx context.Context) ([]byte, error) {
	if uc.report == nil {
		return nil, fmt.Errorf("analytics: generador de PDF no configurado")
	}
	recs, err := uc.GetPurchaseRecommendations(ctx)
	if err != nil {
		return nil, err
	}
	pdf, err := uc.report.GenerateRecommendationsPDF(ctx, recs, uc.now())
	if err != nil {
		return nil, fmt.Errorf("analytics: pdf: %w", err)
	}
	return pdf, nil
}

// cached resuelve key desde la caché o carga datos, calcula y guarda.
// Los errores de caché solo se registran: nunca hacen fallar la consulta.
func cached[T any](
	ctx context.Context,
	uc *PredictiveUseCase,
	key string,
	compute func(parts []entity.Part, history []entity.UsageEvent) (T, error),
) (T, error) {
	var zero T
	if uc.cache != nil {
		var hit T
		ok, err := uc.cache.Get(ctx, key, &hit)
		if err != nil {
			uc.log.Warn().Err(err).Str("key", key).Msg("lectura de caché fallida")
		} else if ok {
			uc.log.Debug().Str("key", key).Msg("resultado servido desde caché")
			return hit, nil
		}
	}

	start := uc.now()
	parts, history, err := uc.load(ctx)
	if err != nil {
		return zero, err
	}
	result, err := compute(parts, history)
	if err != nil {
		return zero, fmt.Errorf("analytics: %s: %w", key, err)
	}
	uc.log.Info().
		Str("query", key).
		Int("parts", len(parts)).
		Int("events", len(history)).
		Dur("elapsed", uc.now().Sub(start)).
		Msg("analítica calculada")

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, key, result); err != nil {
			uc.log.Warn().Err(err).Str("key", key).Msg("escritura de caché fallida")
		}
	}
	return result, nil
}

// load trae los repuestos y su historial. Las consultas de historial corren en paralelo
// y se concatenan en el orden de los repuestos.
func (uc *PredictiveUseCase) load(ctx context.Context) ([]entity.Part, []entity.UsageEvent, error) {
	parts, err := uc.partRepo.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("analytics: repuestos: %w", err)
	}

	perPart := make([][]entity.UsageEvent, len(parts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.fetchWorkers)
	for i, p := range parts {
		g.Go(func() error {
			events, err := uc.history.FetchUsage(gctx, p.ID)
			if err != nil {
				return fmt.Errorf("historial de %s: %w", p.ID, err)
			}
			perPart[i] = events
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("analytics: %w", err)
	}

	total := 0
	for _, events := range perPart {
		total += len(events)
	}
	history := make([]entity.UsageEvent, 0, total)
	for _, events := range perPart {
		history = append(history, events...)
	}
	return parts, history, nil
}

func toPartAnalyticsDTOs(list []forecast.PartAnalytics) []dto.PartAnalyticsDTO {
	out := make([]dto.PartAnalyticsDTO, 0, len(list))
	for _, a := range list {
		out = append(out, toPartAnalyticsDTO(a))
	}
	return out
}

func toPartAnalyticsDTO(a forecast.PartAnalytics) dto.PartAnalyticsDTO {
	var days *int
	if a.Depletes() {
		d := a.DaysUntilStockout
		days = &d
	}
	months := append([]int{}, a.HighDemandMonths...)
	alerts := append([]string{}, a.Alerts...)

	return dto.PartAnalyticsDTO{
		PartID:                a.PartID,
		Code:                  a.Code,
		Description:           a.Description,
		CurrentStock:          a.CurrentStock,
		MinimumStock:          a.MinimumStock,
		AvgMonthlyConsumption: decimal.NewFromFloat(a.AvgMonthlyConsumption).Round(2),
		Trend:                 string(a.Trend),
		DaysUntilStockout:     days,
		NoDepletion:           !a.Depletes(),
		SuggestedStock:        a.SuggestedStock,
		Criticality:           string(a.Criticality),
		Forecast30:            a.Forecast30,
		Forecast60:            a.Forecast60,
		Forecast90:            a.Forecast90,
		HasSeasonalPattern:    a.HasSeasonalPattern,
		HighDemandMonths:      months,
		PredictionConfidence:  a.PredictionConfidence,
		Alerts:                alerts,
	}
}
