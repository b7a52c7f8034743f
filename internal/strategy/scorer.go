package strategy

import (
	"PriceTrend/internal/calculator"
	"PriceTrend/internal/model"
)

// Rationale templates are part of the scorer contract: the UI shell and
// tests both assert on the exact text.
const (
	RationaleYes  = "Great deal! Price is near the lowest."
	RationaleOkay = "Good price. Below the middle of the historical range."
	RationaleWait = "Price is on the higher side. Waiting may pay off."
	RationaleSkip = "Near the highest recorded price. Hold off for now."
	RationaleFlat = "Price has not moved. No better or worse time to buy."
)

// bands maps position-on-range percentages to verdicts. Lower position
// means the current price sits closer to the historical low, which is
// treated as a better time to buy. Each band includes its lower bound
// and excludes its upper, except the top band which includes 100.
var bands = []struct {
	Below     float64
	Category  model.VerdictCategory
	Rationale string
}{
	{25, model.VerdictYes, RationaleYes},
	{50, model.VerdictOkay, RationaleOkay},
	{75, model.VerdictWait, RationaleWait},
}

// Score converts series statistics into a buy-timing verdict.
//
// positionPercent = ((current - min) / effectiveRange) * 100, clamped to
// [0, 100]. A degenerate series has no variation to judge against, so
// the position defaults to the middle.
func Score(st *model.SeriesStatistics) *model.Verdict {
	if st.IsDegenerate {
		return &model.Verdict{
			Category:        model.VerdictWait,
			PositionPercent: 50,
			Rationale:       RationaleFlat,
		}
	}

	pos := (st.CurrentPrice - st.Min) / calculator.EffectiveRange(st) * 100
	if pos < 0 {
		pos = 0
	}
	if pos > 100 {
		pos = 100
	}

	for _, b := range bands {
		if pos < b.Below {
			return &model.Verdict{Category: b.Category, PositionPercent: pos, Rationale: b.Rationale}
		}
	}
	return &model.Verdict{Category: model.VerdictSkip, PositionPercent: pos, Rationale: RationaleSkip}
}
