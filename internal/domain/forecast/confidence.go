package forecast

import (
	"fmt"
	"sort"
)

// Textos de alerta estables (los consume la UI como etiquetas).
const (
	AlertBelowMinimum  = "stock below minimum"
	AlertNoConsumption = "no recent consumption — review need for stock"
	AlertOverstock     = "possible overstock — consider reducing orders"
)

// ScoreConfidence función escalonada sobre el número de muestras del historial.
func ScoreConfidence(samples int, cfg Config) int {
	tiers := make([]ConfidenceTier, len(cfg.ConfidenceTiers))
	copy(tiers, cfg.ConfidenceTiers)
	sort.SliceStable(tiers, func(i, j int) bool { return tiers[i].MinSamples > tiers[j].MinSamples })

	for _, t := range tiers {
		if samples >= t.MinSamples {
			return t.Score
		}
	}
	return cfg.ConfidenceFloor
}

// CriticalDepletionAlert texto de la alerta de agotamiento crítico.
func CriticalDepletionAlert(cfg Config) string {
	return fmt.Sprintf("critical: depletes in under %d days", cfg.CriticalDays)
}

// LowDepletionAlert texto de la alerta de agotamiento próximo.
func LowDepletionAlert(cfg Config) string {
	return fmt.Sprintf("low: depletes in under %d days", cfg.HighDays)
}

// BuildAlerts genera las alertas aplicables en orden fijo.
// Las alertas de agotamiento crítico y próximo son excluyentes; el resto son independientes.
func BuildAlerts(currentStock, minimumStock int, avgMonthly float64, days int, cfg Config) []string {
	alerts := make([]string, 0, 4)

	if currentStock <= minimumStock {
		alerts = append(alerts, AlertBelowMinimum)
	}
	if days != NoDepletion {
		if days <= cfg.CriticalDays {
			alerts = append(alerts, CriticalDepletionAlert(cfg))
		} else if days <= cfg.HighDays {
			alerts = append(alerts, LowDepletionAlert(cfg))
		}
	}
	if avgMonthly == 0 && currentStock > 0 {
		alerts = append(alerts, AlertNoConsumption)
	}
	if float64(currentStock) > avgMonthly*cfg.OverstockMonths {
		alerts = append(alerts, AlertOverstock)
	}
	return alerts
}
