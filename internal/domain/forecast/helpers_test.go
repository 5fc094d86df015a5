package forecast_test

import (
	"time"

	"github.com/jhoicas/repuestos-analytics/internal/domain/entity"
)

// monthly genera un consumo por mes a partir de start (día 15 de cada mes).
func monthly(partID string, start time.Time, qtys ...int) []entity.UsageEvent {
	events := make([]entity.UsageEvent, 0, len(qtys))
	for i, q := range qtys {
		events = append(events, entity.UsageEvent{
			PartID:    partID,
			Quantity:  q,
			Timestamp: time.Date(start.Year(), start.Month()+time.Month(i), 15, 10, 0, 0, 0, time.UTC),
		})
	}
	return events
}

func jan(year int) time.Time {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
}

// repeat devuelve n cantidades iguales a q.
func repeat(q, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = q
	}
	return out
}
