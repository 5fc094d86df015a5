// Package forecast implementa el motor de analítica predictiva de inventario:
// agrupación mensual del consumo, tendencia, estacionalidad, pronóstico de demanda,
// estado de stock, confianza y recomendaciones de compra.
//
// El motor es determinista y sin estado: no hace I/O, no cachea y no persiste nada.
// Cada llamada recalcula todo a partir de los repuestos y el historial recibidos.
package forecast

import "math"

// NoDepletion es el centinela de "sin agotamiento previsible" para DaysUntilStockout.
// No es un conteo real de días.
const NoDepletion = math.MaxInt32

// Trend etiqueta gruesa de la tendencia de consumo.
type Trend string

const (
	TrendGrowing   Trend = "growing"
	TrendStable    Trend = "stable"
	TrendDeclining Trend = "declining"
)

// Criticality nivel de urgencia según los días estimados hasta agotar el stock.
type Criticality string

const (
	CriticalityLow      Criticality = "low"
	CriticalityMedium   Criticality = "medium"
	CriticalityHigh     Criticality = "high"
	CriticalityCritical Criticality = "critical"
)

// Priority prioridad de una recomendación de compra.
type Priority string

const (
	PriorityAlta  Priority = "alta"
	PriorityMedia Priority = "media"
	PriorityBaja  Priority = "baja"
)

// Rank devuelve el orden numérico de la prioridad (alta=3, media=2, baja=1).
func (p Priority) Rank() int {
	switch p {
	case PriorityAlta:
		return 3
	case PriorityMedia:
		return 2
	case PriorityBaja:
		return 1
	default:
		return 0
	}
}

// MonthlyBucket consumo agregado de un mes (MonthIndex 0 = enero).
type MonthlyBucket struct {
	Year          int
	MonthIndex    int
	TotalQuantity int
	EventCount    int
}

// PartAnalytics resultado inmutable del análisis de un repuesto.
type PartAnalytics struct {
	PartID       string
	Code         string
	Description  string
	CurrentStock int
	MinimumStock int

	AvgMonthlyConsumption float64
	Trend                 Trend
	DaysUntilStockout     int // NoDepletion si no hay consumo
	SuggestedStock        int
	Criticality           Criticality

	Forecast30 int
	Forecast60 int
	Forecast90 int

	HasSeasonalPattern bool
	HighDemandMonths   []int

	PredictionConfidence int
	Alerts               []string
}

// Depletes indica si hay un agotamiento previsible (DaysUntilStockout es un conteo real).
func (a PartAnalytics) Depletes() bool {
	return a.DaysUntilStockout != NoDepletion
}

// Recommendation sugerencia de compra derivada de un PartAnalytics.
type Recommendation struct {
	Analytics         PartAnalytics
	SuggestedQuantity int
	Priority          Priority
	Reason            string
}
