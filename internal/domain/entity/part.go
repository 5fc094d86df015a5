package entity

// Part representa un repuesto del almacén de mantenimiento.
// CurrentStock y MinimumStock son unidades enteras; nunca negativas.
type Part struct {
	ID           string
	Code         string // código interno (ej. FIL001)
	Description  string
	CurrentStock int
	MinimumStock int
}
