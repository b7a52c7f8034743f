package model

import "time"

// PriceSample is a single observed price at a point in time.
type PriceSample struct {
	Time  time.Time
	Label string
	Price float64
}

// PriceSeries holds the normalized price history for one product.
// It is built once per render call and never mutated afterwards.
type PriceSeries struct {
	ProductID     string
	Samples       []PriceSample
	CurrentPrice  float64
	TodayAppended bool
	FetchedAt     time.Time
}

// Len returns the number of samples.
func (s *PriceSeries) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Samples)
}
