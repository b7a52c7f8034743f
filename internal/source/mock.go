package source

import (
	"context"
	"time"

	"PriceTrend/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Payload *model.ChartPayload
	Err     error

	BasePrice float64
	Days      int
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchChart(_ context.Context, _ string) (*model.ChartPayload, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Payload != nil {
		return m.Payload, nil
	}
	return generateMockPayload(m.BasePrice, m.Days), nil
}

func generateMockPayload(basePrice float64, days int) *model.ChartPayload {
	if basePrice == 0 {
		basePrice = 1000
	}
	if days == 0 {
		days = 90
	}
	labels := make([]string, days)
	prices := make([]float64, days)
	for i := 0; i < days; i++ {
		labels[i] = time.Now().AddDate(0, 0, -(days - 1 - i)).Format("Jan 02")
		prices[i] = basePrice * (1 + float64(i-days/2)*0.002)
	}
	current := prices[days-1] * 0.98
	return &model.ChartPayload{
		ChartData: model.ChartData{
			Labels:   labels,
			Datasets: []model.Dataset{{Data: prices}},
		},
		CurrentPrice: &current,
	}
}
