package forecast

import (
	"fmt"
	"sort"
)

// GenerateRecommendations arma la lista de compra priorizada.
//
// Se incluye un repuesto si su stock está por debajo del sugerido o si su criticidad no es low.
// La lista se ordena por prioridad descendente conservando el orden de entrada en empates.
func GenerateRecommendations(analytics []PartAnalytics, cfg Config) []Recommendation {
	recs := make([]Recommendation, 0, len(analytics))
	for _, a := range analytics {
		if a.CurrentStock >= a.SuggestedStock && a.Criticality == CriticalityLow {
			continue
		}
		recs = append(recs, Recommendation{
			Analytics:         a,
			SuggestedQuantity: suggestedQuantity(a),
			Priority:          priorityFor(a.Criticality),
			Reason:            recommendationReason(a, cfg),
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Priority.Rank() > recs[j].Priority.Rank()
	})
	return recs
}

// suggestedQuantity max(déficit frente al stock sugerido, demanda a 60 días), nunca negativa.
func suggestedQuantity(a PartAnalytics) int {
	qty := a.SuggestedStock - a.CurrentStock
	if a.Forecast60 > qty {
		qty = a.Forecast60
	}
	if qty < 0 {
		return 0
	}
	return qty
}

func priorityFor(c Criticality) Priority {
	switch c {
	case CriticalityCritical:
		return PriorityAlta
	case CriticalityHigh:
		return PriorityMedia
	default:
		return PriorityBaja
	}
}

func recommendationReason(a PartAnalytics, cfg Config) string {
	if a.Depletes() && a.DaysUntilStockout <= cfg.HighDays {
		return fmt.Sprintf("stock crítico: %d días restantes", a.DaysUntilStockout)
	}
	return fmt.Sprintf("optimización basada en tendencia %s", a.Trend)
}
