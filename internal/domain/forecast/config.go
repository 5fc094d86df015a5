package forecast

// ConfidenceTier asigna un puntaje de confianza a partir de un mínimo de muestras.
type ConfidenceTier struct {
	MinSamples int
	Score      int
}

// Config agrupa los umbrales del motor predictivo. Ajustar estos valores no requiere
// tocar el código de los algoritmos.
type Config struct {
	// Tendencia: se comparan los promedios de los primeros y últimos TrendWindow buckets.
	TrendWindow         int     // default 3
	GrowthThresholdPct  float64 // default 15: variación > 15% → growing
	DeclineThresholdPct float64 // default -15: variación < -15% → declining

	// Estacionalidad: un mes es de alta demanda si supera SeasonalityFactor × promedio mensual.
	SeasonalityFactor    float64 // default 1.3
	SeasonalityMinMonths int     // default 3 meses distintos como mínimo

	// Factores de pronóstico por tendencia.
	GrowingDemandFactor   float64 // default 1.1
	DecliningDemandFactor float64 // default 0.9

	// Factores de stock sugerido (meses de cobertura) por tendencia.
	GrowingStockFactor   float64 // default 2.5
	DecliningStockFactor float64 // default 1.5
	StableStockFactor    float64 // default 2.0

	DaysPerMonth float64 // default 30

	// Niveles de criticidad por días hasta agotarse (inclusivos).
	CriticalDays int // default 7
	HighDays     int // default 15
	MediumDays   int // default 30

	// Sobrestock: stock actual mayor a OverstockMonths × consumo mensual.
	OverstockMonths float64 // default 6

	// Confianza: tiers evaluados de mayor a menor MinSamples; ConfidenceFloor si ninguno aplica.
	ConfidenceTiers []ConfidenceTier // default 12→90, 6→75, 3→60
	ConfidenceFloor int              // default 40

	// Workers limita la paralelización del cálculo por repuesto (<=1 = secuencial).
	Workers int // default 4
}

// DefaultConfig devuelve los umbrales de referencia.
func DefaultConfig() Config {
	return Config{
		TrendWindow:           3,
		GrowthThresholdPct:    15,
		DeclineThresholdPct:   -15,
		SeasonalityFactor:     1.3,
		SeasonalityMinMonths:  3,
		GrowingDemandFactor:   1.1,
		DecliningDemandFactor: 0.9,
		GrowingStockFactor:    2.5,
		DecliningStockFactor:  1.5,
		StableStockFactor:     2.0,
		DaysPerMonth:          30,
		CriticalDays:          7,
		HighDays:              15,
		MediumDays:            30,
		OverstockMonths:       6,
		ConfidenceTiers: []ConfidenceTier{
			{MinSamples: 12, Score: 90},
			{MinSamples: 6, Score: 75},
			{MinSamples: 3, Score: 60},
		},
		ConfidenceFloor: 40,
		Workers:         4,
	}
}
