package forecast

import (
	"fmt"

	"github.com/jhoicas/repuestos-analytics/internal/domain"
)

// InvalidInputError señala una violación del contrato de entrada (stock o cantidad negativa).
// errors.Is(err, domain.ErrInvalidInput) es verdadero.
type InvalidInputError struct {
	PartID string
	Field  string
	Value  int
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s: repuesto %q, campo %s = %d", domain.ErrInvalidInput, e.PartID, e.Field, e.Value)
}

// Unwrap permite errors.Is contra domain.ErrInvalidInput.
func (e *InvalidInputError) Unwrap() error { return domain.ErrInvalidInput }
