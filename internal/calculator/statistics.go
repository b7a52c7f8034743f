package calculator

import (
	"errors"
	"math"

	"PriceTrend/internal/model"
)

// Substitute range used when every price in the series is identical.
// Division by the true range (zero) would poison every later coordinate
// and score, so consumers divide by this instead. It is a rendering
// convenience only and must never be reported as the real range.
const (
	degenerateRangeFraction = 0.10
	degenerateRangeFloor    = 1.0
)

// Compute derives aggregate metrics from the series in a single linear scan.
func Compute(s *model.PriceSeries) (*model.SeriesStatistics, error) {
	if s.Len() == 0 {
		return nil, errors.New("no price samples provided")
	}

	n := len(s.Samples)
	min := math.Inf(1)
	max := math.Inf(-1)
	sum := 0.0
	for _, sample := range s.Samples {
		p := sample.Price
		if p < min {
			min = p
		}
		if p > max {
			max = p
		}
		sum += p
	}
	mean := sum / float64(n)

	st := &model.SeriesStatistics{
		Min:          min,
		Max:          max,
		Mean:         mean,
		CurrentPrice: s.CurrentPrice,
		Range:        max - min,
		IsDegenerate: max == min,
		SampleCount:  n,
	}
	st.Volatility = volatility(s.Samples, mean)
	st.TrendPct = trendPct(s.Samples)
	return st, nil
}

// EffectiveRange returns the divisor for position and coordinate math:
// the true range normally, the substitute when the series is degenerate.
func EffectiveRange(st *model.SeriesStatistics) float64 {
	if !st.IsDegenerate {
		return st.Range
	}
	sub := st.Max * degenerateRangeFraction
	if sub < degenerateRangeFloor {
		sub = degenerateRangeFloor
	}
	return sub
}

// volatility is the standard deviation of successive price differences
// divided by the mean, as a percentage. Fewer than two samples, or a
// zero mean, yield zero.
func volatility(samples []model.PriceSample, mean float64) float64 {
	if len(samples) < 2 || mean == 0 {
		return 0
	}
	diffs := make([]float64, 0, len(samples)-1)
	diffSum := 0.0
	for i := 1; i < len(samples); i++ {
		d := samples[i].Price - samples[i-1].Price
		diffs = append(diffs, d)
		diffSum += d
	}
	diffMean := diffSum / float64(len(diffs))
	variance := 0.0
	for _, d := range diffs {
		variance += (d - diffMean) * (d - diffMean)
	}
	variance /= float64(len(diffs))
	return math.Sqrt(variance) / mean * 100
}

// trendPct is the percentage change from the first sample to the last.
func trendPct(samples []model.PriceSample) float64 {
	first := samples[0].Price
	last := samples[len(samples)-1].Price
	if first == 0 {
		return 0
	}
	return (last - first) / first * 100
}
