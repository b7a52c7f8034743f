package model

// ChartPayload mirrors the price-history service response. Two shapes of
// chart data coexist historically: the nested datasets form and a flat
// data array. Both are accepted and normalized during series construction.
type ChartPayload struct {
	ChartData      ChartData `json:"chartData"`
	CurrentPrice   *float64  `json:"currentPrice,omitempty"`
	Recommendation string    `json:"recommendation,omitempty"`
}

// ChartData carries the label and price arrays.
type ChartData struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets,omitempty"`
	Data     []float64 `json:"data,omitempty"`
}

// Dataset is one series inside the nested chart data shape.
type Dataset struct {
	Data []float64 `json:"data"`
}

// RenderPayload is the structured output handed to the UI shell
// alongside the drawn chart.
type RenderPayload struct {
	ProductID  string           `json:"product_id"`
	Statistics SeriesStatistics `json:"statistics"`
	Verdict    Verdict          `json:"verdict"`
}
