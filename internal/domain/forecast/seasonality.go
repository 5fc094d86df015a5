package forecast

import "sort"

// Seasonality meses de alta demanda detectados para un repuesto.
type Seasonality struct {
	HasPattern       bool
	HighDemandMonths []int // índices 0-11, ascendentes
}

// DetectSeasonality pliega los buckets por mes del año (enero de todos los años juntos) y marca
// los meses cuyo total supera cfg.SeasonalityFactor × el promedio de esos totales.
// Con menos de cfg.SeasonalityMinMonths meses distintos no hay patrón.
func DetectSeasonality(buckets []MonthlyBucket, cfg Config) Seasonality {
	totals := make(map[int]int, 12)
	for _, b := range buckets {
		totals[b.MonthIndex] += b.TotalQuantity
	}

	none := Seasonality{HighDemandMonths: []int{}}
	if len(totals) == 0 || len(totals) < cfg.SeasonalityMinMonths {
		return none
	}

	sum := 0
	for _, t := range totals {
		sum += t
	}
	overall := float64(sum) / float64(len(totals))
	limit := overall * cfg.SeasonalityFactor

	months := make([]int, 0, len(totals))
	for m, t := range totals {
		if float64(t) > limit {
			months = append(months, m)
		}
	}
	if len(months) == 0 {
		return none
	}
	sort.Ints(months)
	return Seasonality{HasPattern: true, HighDemandMonths: months}
}
