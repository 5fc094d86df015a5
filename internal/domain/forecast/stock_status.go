package forecast

import "math"

// StockStatus estado del stock de un repuesto frente a su consumo.
type StockStatus struct {
	DaysUntilStockout int
	SuggestedStock    int
	Criticality       Criticality
}

// EvaluateStock calcula días hasta agotarse, stock sugerido y criticidad.
//
// Sin consumo (avgMonthly == 0) los días son NoDepletion y la criticidad es low, incluso
// con stock en cero.
func EvaluateStock(currentStock int, avgMonthly float64, trend Trend, cfg Config) StockStatus {
	days := DaysUntilStockout(currentStock, avgMonthly, cfg)
	return StockStatus{
		DaysUntilStockout: days,
		SuggestedStock:    SuggestedStock(avgMonthly, trend, cfg),
		Criticality:       ClassifyCriticality(days, cfg),
	}
}

// DaysUntilStockout floor(stock / (avgMonthly / DaysPerMonth)); NoDepletion sin consumo.
func DaysUntilStockout(currentStock int, avgMonthly float64, cfg Config) int {
	if avgMonthly <= 0 || cfg.DaysPerMonth <= 0 {
		return NoDepletion
	}
	// stock × días/mes ÷ consumo evita el error de redondeo de la tasa diaria.
	days := math.Floor(float64(currentStock) * cfg.DaysPerMonth / avgMonthly)
	if days >= NoDepletion {
		return NoDepletion
	}
	return int(days)
}

// SuggestedStock meses de cobertura según la tendencia.
func SuggestedStock(avgMonthly float64, trend Trend, cfg Config) int {
	factor := cfg.StableStockFactor
	switch trend {
	case TrendGrowing:
		factor = cfg.GrowingStockFactor
	case TrendDeclining:
		factor = cfg.DecliningStockFactor
	}
	return int(math.Round(math.Max(0, avgMonthly*factor)))
}

// ClassifyCriticality umbrales inclusivos: <=CriticalDays critical, <=HighDays high,
// <=MediumDays medium, resto low. NoDepletion siempre es low.
func ClassifyCriticality(days int, cfg Config) Criticality {
	switch {
	case days == NoDepletion:
		return CriticalityLow
	case days <= cfg.CriticalDays:
		return CriticalityCritical
	case days <= cfg.HighDays:
		return CriticalityHigh
	case days <= cfg.MediumDays:
		return CriticalityMedium
	default:
		return CriticalityLow
	}
}
