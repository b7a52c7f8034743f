package calculator

import (
	"math"
	"testing"
	"time"

	"PriceTrend/internal/model"
)

func seriesOf(prices ...float64) *model.PriceSeries {
	samples := make([]model.PriceSample, len(prices))
	for i, p := range prices {
		samples[i] = model.PriceSample{
			Time:  time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i),
			Label: "d",
			Price: p,
		}
	}
	return &model.PriceSeries{
		ProductID:    "test",
		Samples:      samples,
		CurrentPrice: prices[len(prices)-1],
	}
}

func TestCompute_KnownSeries(t *testing.T) {
	st, err := Compute(seriesOf(1000, 1200, 900, 1100, 950))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st.Min != 900 {
		t.Errorf("expected min 900, got %.2f", st.Min)
	}
	if st.Max != 1200 {
		t.Errorf("expected max 1200, got %.2f", st.Max)
	}
	if math.Abs(st.Mean-1030) > 0.001 {
		t.Errorf("expected mean 1030, got %.4f", st.Mean)
	}
	if st.Range != 300 {
		t.Errorf("expected range 300, got %.2f", st.Range)
	}
	if st.IsDegenerate {
		t.Error("series with distinct prices must not be degenerate")
	}
	if st.SampleCount != 5 {
		t.Errorf("expected 5 samples, got %d", st.SampleCount)
	}
}

func TestCompute_MeanWithinBounds(t *testing.T) {
	cases := [][]float64{
		{1, 2},
		{500, 499, 501, 502},
		{10000, 9000, 11000, 10500, 9800, 10200},
	}
	for _, prices := range cases {
		st, err := Compute(seriesOf(prices...))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if st.Mean < st.Min || st.Mean > st.Max {
			t.Errorf("mean %.2f outside [%.2f, %.2f]", st.Mean, st.Min, st.Max)
		}
		for _, p := range prices {
			if p < st.Min || p > st.Max {
				t.Errorf("price %.2f outside [%.2f, %.2f]", p, st.Min, st.Max)
			}
		}
	}
}

func TestCompute_DegenerateSeries(t *testing.T) {
	st, err := Compute(seriesOf(500, 500, 500, 500, 500))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !st.IsDegenerate {
		t.Fatal("expected degenerate flag for constant prices")
	}
	if st.Range != 0 {
		t.Errorf("true range must stay 0, got %.2f", st.Range)
	}
	if st.Volatility != 0 {
		t.Errorf("expected zero volatility for constant prices, got %.4f", st.Volatility)
	}
}

func TestEffectiveRange(t *testing.T) {
	tests := []struct {
		name string
		st   model.SeriesStatistics
		want float64
	}{
		{"normal range passes through", model.SeriesStatistics{Min: 900, Max: 1200, Range: 300}, 300},
		{"degenerate uses tenth of price", model.SeriesStatistics{Min: 500, Max: 500, IsDegenerate: true}, 50},
		{"degenerate floor for tiny prices", model.SeriesStatistics{Min: 2, Max: 2, IsDegenerate: true}, 1},
		{"degenerate floor for zero price", model.SeriesStatistics{IsDegenerate: true}, 1},
	}
	for _, tt := range tests {
		if got := EffectiveRange(&tt.st); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%s: expected %.2f, got %.4f", tt.name, tt.want, got)
		}
	}
}

func TestCompute_Trend(t *testing.T) {
	st, err := Compute(seriesOf(1000, 1100))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(st.TrendPct-10) > 1e-9 {
		t.Errorf("expected trend +10%%, got %.4f", st.TrendPct)
	}

	st, err = Compute(seriesOf(1000, 800))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(st.TrendPct+20) > 1e-9 {
		t.Errorf("expected trend -20%%, got %.4f", st.TrendPct)
	}
}

func TestCompute_SingleSample(t *testing.T) {
	st, err := Compute(seriesOf(750))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st.Min != 750 || st.Max != 750 || st.Mean != 750 {
		t.Errorf("single sample stats off: %+v", st)
	}
	if !st.IsDegenerate {
		t.Error("single sample series must be degenerate")
	}
	if st.Volatility != 0 {
		t.Errorf("single sample volatility must be 0, got %.4f", st.Volatility)
	}
}

func TestCompute_Volatility(t *testing.T) {
	// Diffs are +10 and -10: mean diff 0, stddev 10, mean price 100.
	st, err := Compute(seriesOf(95, 105, 95))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 10.0 / (295.0 / 3.0) * 100
	if math.Abs(st.Volatility-want) > 1e-9 {
		t.Errorf("expected volatility %.4f, got %.4f", want, st.Volatility)
	}
}

func TestCompute_EmptySeries(t *testing.T) {
	if _, err := Compute(&model.PriceSeries{}); err == nil {
		t.Fatal("expected error for empty series")
	}
}
