package analytics

import (
	"github.com/jhoicas/repuestos-analytics/internal/domain/forecast"
	"github.com/jhoicas/repuestos-analytics/pkg/config"
)

// EngineConfig traduce la configuración de la app a los umbrales del motor.
func EngineConfig(c config.AnalyticsConfig) forecast.Config {
	return forecast.Config{
		TrendWindow:           c.TrendWindow,
		GrowthThresholdPct:    c.GrowthThresholdPct,
		DeclineThresholdPct:   c.DeclineThresholdPct,
		SeasonalityFactor:     c.SeasonalityFactor,
		SeasonalityMinMonths:  c.SeasonalityMinMonths,
		GrowingDemandFactor:   c.GrowingDemandFactor,
		DecliningDemandFactor: c.DecliningDemandFactor,
		GrowingStockFactor:    c.GrowingStockFactor,
		DecliningStockFactor:  c.DecliningStockFactor,
		StableStockFactor:     c.StableStockFactor,
		DaysPerMonth:          c.DaysPerMonth,
		CriticalDays:          c.CriticalDays,
		HighDays:              c.HighDays,
		MediumDays:            c.MediumDays,
		OverstockMonths:       c.OverstockMonths,
		ConfidenceTiers: []forecast.ConfidenceTier{
			{MinSamples: c.ConfidenceHighMin, Score: c.ConfidenceHighScore},
			{MinSamples: c.ConfidenceMediumMin, Score: c.ConfidenceMediumScore},
			{MinSamples: c.ConfidenceLowMin, Score: c.ConfidenceLowScore},
		},
		ConfidenceFloor: c.ConfidenceFloor,
		Workers:         c.Workers,
	}
}
