package entity

import "time"

// UsageEvent registra un consumo de un repuesto (salida hacia una máquina u orden de trabajo).
// Pueden llegar duplicados o fuera de orden; el motor de analítica los tolera.
type UsageEvent struct {
	ID        string
	PartID    string
	MachineID string // opcional
	Quantity  int
	Timestamp time.Time
}
