package repository

import (
	"context"

	"github.com/jhoicas/repuestos-analytics/internal/domain/entity"
)

// PartRepository define el puerto de lectura de repuestos (DIP).
type PartRepository interface {
	List(ctx context.Context) ([]entity.Part, error)
	GetByID(ctx context.Context, id string) (*entity.Part, error)
}
