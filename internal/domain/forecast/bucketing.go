package forecast

import (
	"sort"

	"github.com/jhoicas/repuestos-analytics/internal/domain/entity"
)

// BucketByMonth agrupa los consumos de un repuesto por (año, mes).
//
// Los eventos se ordenan por fecha sobre una copia (la lista del llamador no se modifica), así
// que los buckets quedan en orden cronológico. El plegado por mes del año lo hace solo
// DetectSeasonality. Historial vacío → slice vacío.
func BucketByMonth(events []entity.UsageEvent) []MonthlyBucket {
	if len(events) == 0 {
		return []MonthlyBucket{}
	}

	sorted := make([]entity.UsageEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	type monthKey struct{ year, month int }

	buckets := make([]MonthlyBucket, 0, 12)
	pos := make(map[monthKey]int, 12)
	for _, ev := range sorted {
		key := monthKey{year: ev.Timestamp.Year(), month: int(ev.Timestamp.Month()) - 1}
		i, ok := pos[key]
		if !ok {
			buckets = append(buckets, MonthlyBucket{Year: key.year, MonthIndex: key.month})
			i = len(buckets) - 1
			pos[key] = i
		}
		buckets[i].TotalQuantity += ev.Quantity
		buckets[i].EventCount++
	}
	return buckets
}

// meanQuantity promedio de TotalQuantity; 0 para un slice vacío.
func meanQuantity(buckets []MonthlyBucket) float64 {
	if len(buckets) == 0 {
		return 0
	}
	total := 0
	for _, b := range buckets {
		total += b.TotalQuantity
	}
	return float64(total) / float64(len(buckets))
}
