package analytics

import (
	"context"
	"time"

	"github.com/jhoicas/repuestos-analytics/internal/application/dto"
)

// ResultCache caché externa de resultados de analítica (el motor no cachea).
// Get devuelve false si la clave no existe o expiró.
type ResultCache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any) error
}

// RecommendationReportGenerator genera la representación imprimible de la lista de compra.
type RecommendationReportGenerator interface {
	GenerateRecommendationsPDF(ctx context.Context, recs []dto.RecommendationDTO, generatedAt time.Time) ([]byte, error)
}
