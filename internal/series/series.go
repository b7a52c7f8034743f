package series

import (
	"errors"
	"fmt"
	"time"

	"PriceTrend/internal/model"
)

// ErrEmptySeries signals that no price samples were supplied. Callers
// recover locally by rendering the no-data placeholder.
var ErrEmptySeries = errors.New("price series is empty")

// ErrMalformedPayload signals that neither recognized chart data shape
// is present in the payload.
var ErrMalformedPayload = errors.New("chart payload has no recognized data shape")

// TodayLabel marks the synthetic sample appended when the current price
// postdates the last historical sample.
const TodayLabel = "Today"

// Build constructs a normalized PriceSeries from parallel label/price
// slices. A nil currentPrice means the freshest price is the last
// historical sample. When currentPrice differs from the last sample,
// exactly one synthetic "Today" sample is appended; this happens here
// and never again, so statistics and rendering always see the same
// series.
func Build(productID string, labels []string, prices []float64, currentPrice *float64, now time.Time) (*model.PriceSeries, error) {
	if len(prices) == 0 {
		return nil, ErrEmptySeries
	}
	if len(labels) != len(prices) {
		return nil, fmt.Errorf("labels/prices length mismatch: %d vs %d", len(labels), len(prices))
	}

	n := len(prices)
	samples := make([]model.PriceSample, 0, n+1)
	for i := 0; i < n; i++ {
		samples = append(samples, model.PriceSample{
			// Sample timestamps are synthesized one day apart ending at now;
			// the wire payload carries only display labels.
			Time:  now.AddDate(0, 0, -(n - 1 - i)),
			Label: labels[i],
			Price: prices[i],
		})
	}

	s := &model.PriceSeries{
		ProductID:    productID,
		Samples:      samples,
		CurrentPrice: prices[n-1],
		FetchedAt:    now,
	}

	if currentPrice != nil {
		s.CurrentPrice = *currentPrice
		if *currentPrice != prices[n-1] {
			s.Samples = append(s.Samples, model.PriceSample{
				Time:  now,
				Label: TodayLabel,
				Price: *currentPrice,
			})
			s.TodayAppended = true
		}
	}

	return s, nil
}

// FromPayload normalizes a wire payload into a PriceSeries. The nested
// datasets shape takes precedence; the flat data shape is the fallback.
func FromPayload(productID string, p *model.ChartPayload, now time.Time) (*model.PriceSeries, error) {
	if p == nil {
		return nil, ErrMalformedPayload
	}
	var prices []float64
	switch {
	case len(p.ChartData.Datasets) > 0:
		prices = p.ChartData.Datasets[0].Data
	case p.ChartData.Data != nil:
		prices = p.ChartData.Data
	default:
		return nil, ErrMalformedPayload
	}
	return Build(productID, p.ChartData.Labels, prices, p.CurrentPrice, now)
}
