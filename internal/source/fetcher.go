package source

import (
	"context"

	"PriceTrend/internal/model"
)

// Fetcher supplies the price-history payload for a product.
type Fetcher interface {
	FetchChart(ctx context.Context, productID string) (*model.ChartPayload, error)
	Name() string
}
