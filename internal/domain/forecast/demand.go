package forecast

import "math"

// DemandForecast demanda proyectada a 30/60/90 días.
// Forecast60 y Forecast90 son siempre 2× y 3× Forecast30.
type DemandForecast struct {
	Days30 int
	Days60 int
	Days90 int
}

// AverageMonthlyConsumption consumo total dividido entre los meses (año, mes) con consumo registrado.
func AverageMonthlyConsumption(buckets []MonthlyBucket) float64 {
	return meanQuantity(buckets)
}

// ForecastDemand proyecta la demanda a partir del consumo mensual promedio ajustado por tendencia.
func ForecastDemand(avgMonthly float64, trend Trend, cfg Config) DemandForecast {
	if avgMonthly <= 0 {
		return DemandForecast{}
	}
	factor := 1.0
	switch trend {
	case TrendGrowing:
		factor = cfg.GrowingDemandFactor
	case TrendDeclining:
		factor = cfg.DecliningDemandFactor
	}
	f30 := int(math.Round(avgMonthly * factor))
	return DemandForecast{Days30: f30, Days60: f30 * 2, Days90: f30 * 3}
}
