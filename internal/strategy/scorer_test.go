package strategy

import (
	"math"
	"testing"
	"time"

	"PriceTrend/internal/calculator"
	"PriceTrend/internal/model"
	"PriceTrend/internal/series"
)

func statsFor(min, max, current float64) *model.SeriesStatistics {
	return &model.SeriesStatistics{
		Min:          min,
		Max:          max,
		CurrentPrice: current,
		Range:        max - min,
		IsDegenerate: max == min,
	}
}

func TestScore_BandBoundaries(t *testing.T) {
	// Range 0..100 so position percent equals the current price.
	tests := []struct {
		current  float64
		category model.VerdictCategory
	}{
		{0, model.VerdictYes},
		{10, model.VerdictYes},
		{24.999, model.VerdictYes},
		{25, model.VerdictOkay},
		{40, model.VerdictOkay},
		{49.999, model.VerdictOkay},
		{50, model.VerdictWait},
		{74.999, model.VerdictWait},
		{75, model.VerdictSkip},
		{90, model.VerdictSkip},
		{100, model.VerdictSkip},
	}
	for _, tt := range tests {
		v := Score(statsFor(0, 100, tt.current))
		if v.Category != tt.category {
			t.Errorf("position %.3f: expected %s, got %s", tt.current, tt.category, v.Category)
		}
		if math.Abs(v.PositionPercent-tt.current) > 1e-9 {
			t.Errorf("position %.3f: got %.4f", tt.current, v.PositionPercent)
		}
	}
}

func TestScore_RationalePerBand(t *testing.T) {
	tests := []struct {
		current   float64
		rationale string
	}{
		{10, RationaleYes},
		{30, RationaleOkay},
		{60, RationaleWait},
		{90, RationaleSkip},
	}
	for _, tt := range tests {
		v := Score(statsFor(0, 100, tt.current))
		if v.Rationale != tt.rationale {
			t.Errorf("position %.0f: expected %q, got %q", tt.current, tt.rationale, v.Rationale)
		}
	}
}

func TestScore_ClampsOutOfRangeCurrent(t *testing.T) {
	// Current price below the historical minimum clamps to 0.
	v := Score(statsFor(100, 200, 50))
	if v.PositionPercent != 0 {
		t.Errorf("expected clamp to 0, got %.4f", v.PositionPercent)
	}
	if v.Category != model.VerdictYes {
		t.Errorf("expected YES at position 0, got %s", v.Category)
	}

	// Above the historical maximum clamps to 100.
	v = Score(statsFor(100, 200, 250))
	if v.PositionPercent != 100 {
		t.Errorf("expected clamp to 100, got %.4f", v.PositionPercent)
	}
	if v.Category != model.VerdictSkip {
		t.Errorf("expected SKIP at position 100, got %s", v.Category)
	}
}

func TestScore_DegenerateDefaultsToMiddle(t *testing.T) {
	v := Score(statsFor(500, 500, 500))
	if v.PositionPercent != 50 {
		t.Errorf("expected position 50 for flat history, got %.4f", v.PositionPercent)
	}
	if v.Category != model.VerdictWait {
		t.Errorf("expected WAIT for flat history, got %s", v.Category)
	}
	if v.Rationale != RationaleFlat {
		t.Errorf("expected flat rationale, got %q", v.Rationale)
	}
}

func TestScore_EndToEnd(t *testing.T) {
	// Full pipeline: payload prices with a current price matching the
	// last sample, so no synthetic append happens.
	current := 950.0
	s, err := series.Build("p1",
		[]string{"d1", "d2", "d3", "d4", "d5"},
		[]float64{1000, 1200, 900, 1100, 950},
		&current, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("build series: %v", err)
	}
	if s.Len() != 5 {
		t.Fatalf("expected no append, got %d samples", s.Len())
	}

	st, err := calculator.Compute(s)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if st.Min != 900 || st.Max != 1200 || math.Abs(st.Mean-1030) > 0.001 {
		t.Fatalf("unexpected stats: %+v", st)
	}

	v := Score(st)
	wantPos := (950.0 - 900.0) / 300.0 * 100
	if math.Abs(v.PositionPercent-wantPos) > 0.01 {
		t.Errorf("expected position %.2f, got %.4f", wantPos, v.PositionPercent)
	}
	if v.Category != model.VerdictYes {
		t.Errorf("expected YES, got %s", v.Category)
	}
	if v.Rationale != "Great deal! Price is near the lowest." {
		t.Errorf("unexpected rationale %q", v.Rationale)
	}
}
