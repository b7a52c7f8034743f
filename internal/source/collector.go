package source

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"PriceTrend/internal/calculator"
	"PriceTrend/internal/model"
	"PriceTrend/internal/series"
)

// Collector fetches the price history for a product and derives the
// normalized series plus its statistics. Each call builds everything
// fresh; nothing is cached between invocations.
type Collector struct {
	Fetcher Fetcher
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher) *Collector {
	return &Collector{Fetcher: fetcher}
}

// Collect fetches and normalizes the series for one product. Series
// construction errors (empty or malformed payloads) pass through
// unwrapped so callers can map them to the placeholder state.
func (c *Collector) Collect(ctx context.Context, productID string) (*model.PriceSeries, *model.SeriesStatistics, error) {
	payload, err := c.Fetcher.FetchChart(ctx, productID)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch %s: %w", productID, err)
	}
	if payload.Recommendation != "" {
		// Upstream ships its own textual hint; the engine derives its
		// own verdict and ignores it.
		zap.L().Debug("ignoring upstream recommendation",
			zap.String("product", productID),
			zap.String("recommendation", payload.Recommendation))
	}

	s, err := series.FromPayload(productID, payload, time.Now())
	if err != nil {
		return nil, nil, err
	}

	st, err := calculator.Compute(s)
	if err != nil {
		return nil, nil, fmt.Errorf("compute statistics for %s: %w", productID, err)
	}
	return s, st, nil
}
