package model

// SeriesStatistics holds aggregate metrics derived from one PriceSeries.
type SeriesStatistics struct {
	Min          float64 `json:"min"`
	Max          float64 `json:"max"`
	Mean         float64 `json:"mean"`
	CurrentPrice float64 `json:"current_price"`
	Range        float64 `json:"range"`
	Volatility   float64 `json:"volatility"` // percent
	TrendPct     float64 `json:"trend_pct"`  // percent change, first sample to last
	IsDegenerate bool    `json:"is_degenerate"`
	SampleCount  int     `json:"sample_count"`
}
