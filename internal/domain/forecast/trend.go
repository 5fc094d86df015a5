package forecast

// ClassifyTrend compara el promedio de los primeros y últimos cfg.TrendWindow buckets.
//
// Es una heurística gruesa, no una prueba de significancia estadística: con menos de
// TrendWindow buckets o promedio inicial en cero la tendencia es stable.
func ClassifyTrend(buckets []MonthlyBucket, cfg Config) Trend {
	w := cfg.TrendWindow
	if w <= 0 || len(buckets) < w {
		return TrendStable
	}

	early := meanQuantity(buckets[:w])
	recent := meanQuantity(buckets[len(buckets)-w:])
	if early == 0 {
		return TrendStable
	}

	deltaPct := (recent - early) * 100 / early
	switch {
	case deltaPct > cfg.GrowthThresholdPct:
		return TrendGrowing
	case deltaPct < cfg.DeclineThresholdPct:
		return TrendDeclining
	default:
		return TrendStable
	}
}
