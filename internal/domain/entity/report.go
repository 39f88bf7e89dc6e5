package entity

// SeriesPoint is one point of the revenue/profit chart series.
type SeriesPoint struct {
	Period  string  `json:"period"`
	Revenue float64 `json:"revenue"`
	Profit  float64 `json:"profit"`
}

// PeriodReport is one column of the metrics table.
type PeriodReport struct {
	Period       string            `json:"period"`
	Metrics      ProjectionMetrics `json:"metrics"`
	TargetMargin float64           `json:"target_margin"`

	// Variance is Margin - TargetMargin in percentage points.
	Variance float64 `json:"variance"`
	OnTarget bool    `json:"on_target"`
}

// ProjectionDocument is a loaded payload: the dataset plus its display title.
type ProjectionDocument struct {
	Title       string
	Projections Projections
}
