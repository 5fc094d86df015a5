package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/repuestos-analytics/internal/domain/entity"
	"github.com/jhoicas/repuestos-analytics/internal/domain/repository"
)

var _ repository.HistoryProvider = (*UsageRepo)(nil)

// UsageRepo historial de consumo sobre la tabla part_usage (proveedor de historial de producción).
type UsageRepo struct {
	q        Querier
	lookback time.Duration // 0 = todo el historial
	now      func() time.Time
}

// NewUsageRepository construye el adaptador. lookback limita la antigüedad del historial leído.
func NewUsageRepository(q Querier, lookback time.Duration) *UsageRepo {
	return &UsageRepo{q: q, lookback: lookback, now: time.Now}
}

// FetchUsage devuelve los consumos del repuesto ordenados por fecha.
func (r *UsageRepo) FetchUsage(ctx context.Context, partID string) ([]entity.UsageEvent, error) {
	query := `
		SELECT id, part_id, COALESCE(machine_id::text, ''), quantity, used_at
		FROM part_usage WHERE part_id = $1`
	args := []any{partID}
	if r.lookback > 0 {
		query += ` AND used_at >= $2`
		args = append(args, r.now().Add(-r.lookback))
	}
	query += ` ORDER BY used_at`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetch usage: %w", err)
	}
	defer rows.Close()

	var list []entity.UsageEvent
	for rows.Next() {
		var (
			ev  entity.UsageEvent
			qty decimal.Decimal
		)
		if err := rows.Scan(&ev.ID, &ev.PartID, &ev.MachineID, &qty, &ev.Timestamp); err != nil {
			return nil, fmt.Errorf("scan usage: %w", err)
		}
		ev.Quantity = wholeUnits(qty)
		list = append(list, ev)
	}
	return list, rows.Err()
}
