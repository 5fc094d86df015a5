package dto

import "github.com/shopspring/decimal"

// ── Analítica por repuesto ────────────────────────────────────────────────────

// PartAnalyticsDTO analítica predictiva de un repuesto.
// DaysUntilStockout es null cuando no hay agotamiento previsible (NoDepletion = true).
type PartAnalyticsDTO struct {
	PartID                string          `json:"part_id"`
	Code                  string          `json:"code"`
	Description           string          `json:"description"`
	CurrentStock          int             `json:"current_stock"`
	MinimumStock          int             `json:"minimum_stock"`
	AvgMonthlyConsumption decimal.Decimal `json:"avg_monthly_consumption"` // redondeado a 2 decimales
	Trend                 string          `json:"trend"`                   // growing|stable|declining
	DaysUntilStockout     *int            `json:"days_until_stockout"`
	NoDepletion           bool            `json:"no_depletion"`
	SuggestedStock        int             `json:"suggested_stock"`
	Criticality           string          `json:"criticality"` // low|medium|high|critical
	Forecast30            int             `json:"forecast_30"`
	Forecast60            int             `json:"forecast_60"`
	Forecast90            int             `json:"forecast_90"`
	HasSeasonalPattern    bool            `json:"has_seasonal_pattern"`
	HighDemandMonths      []int           `json:"high_demand_months"` // 0 = enero
	PredictionConfidence  int             `json:"prediction_confidence"`
	Alerts                []string        `json:"alerts"`
}

// ── Repuestos críticos ────────────────────────────────────────────────────────

// CriticalSummaryDTO conteo por nivel dentro de la lista de críticos.
type CriticalSummaryDTO struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
}

// CriticalItemsDTO respuesta de GET /api/analytics/critical.
type CriticalItemsDTO struct {
	Summary CriticalSummaryDTO `json:"summary"`
	Items   []PartAnalyticsDTO `json:"items"` // ordenados por días hasta agotarse ascendente
}

// ── Recomendaciones de compra ─────────────────────────────────────────────────

// RecommendationDTO sugerencia de compra priorizada.
type RecommendationDTO struct {
	Analytics         PartAnalyticsDTO `json:"analytics"`
	SuggestedQuantity int              `json:"suggested_quantity"`
	Priority          string           `json:"priority"` // alta|media|baja
	Reason            string           `json:"reason"`
}
