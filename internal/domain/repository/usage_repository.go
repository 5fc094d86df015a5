package repository

import (
	"context"

	"github.com/jhoicas/repuestos-analytics/internal/domain/entity"
)

// HistoryProvider entrega el historial de consumo de un repuesto.
// Producción lo implementa sobre la base de datos; los tests con fixtures en memoria.
type HistoryProvider interface {
	FetchUsage(ctx context.Context, partID string) ([]entity.UsageEvent, error)
}
