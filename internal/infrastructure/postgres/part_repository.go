package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/repuestos-analytics/internal/domain"
	"github.com/jhoicas/repuestos-analytics/internal/domain/entity"
	"github.com/jhoicas/repuestos-analytics/internal/domain/repository"
)

var _ repository.PartRepository = (*PartRepo)(nil)

// PartRepo lectura de repuestos sobre la tabla spare_parts.
// current_stock y minimum_stock son NUMERIC; se redondean a unidades enteras.
type PartRepo struct {
	q Querier
}

// NewPartRepository construye el adaptador sobre el pool.
func NewPartRepository(q Querier) *PartRepo {
	return &PartRepo{q: q}
}

const partColumns = `id, code, COALESCE(description, ''), current_stock, minimum_stock`

// List devuelve los repuestos activos ordenados por código.
func (r *PartRepo) List(ctx context.Context) ([]entity.Part, error) {
	query := `SELECT ` + partColumns + ` FROM spare_parts WHERE active = true ORDER BY code`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list spare parts: %w", err)
	}
	defer rows.Close()

	var list []entity.Part
	for rows.Next() {
		p, err := scanPart(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// GetByID obtiene un repuesto activo; domain.ErrNotFound si no existe o está inactivo.
func (r *PartRepo) GetByID(ctx context.Context, id string) (*entity.Part, error) {
	query := `SELECT ` + partColumns + ` FROM spare_parts WHERE id = $1 AND active = true`
	p, err := scanPart(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func scanPart(row pgx.Row) (entity.Part, error) {
	var (
		p            entity.Part
		stock, minim decimal.Decimal
	)
	if err := row.Scan(&p.ID, &p.Code, &p.Description, &stock, &minim); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return p, err
		}
		return p, fmt.Errorf("scan spare part: %w", err)
	}
	p.CurrentStock = wholeUnits(stock)
	p.MinimumStock = wholeUnits(minim)
	return p, nil
}

// wholeUnits redondea un NUMERIC a unidades (mitades lejos de cero), así -0.5 queda en -1
// y la validación del motor lo rechaza en vez de verlo como 0.
func wholeUnits(d decimal.Decimal) int {
	return int(d.Round(0).IntPart())
}
