package model

// VerdictCategory is the discrete buy-timing recommendation.
type VerdictCategory string

const (
	VerdictYes  VerdictCategory = "YES"
	VerdictOkay VerdictCategory = "OKAY"
	VerdictWait VerdictCategory = "WAIT"
	VerdictSkip VerdictCategory = "SKIP"
)

// Verdict is the buy-timing recommendation for one render.
// PositionPercent is where the current price sits between the historical
// min and max, 0 meaning at the lowest.
type Verdict struct {
	Category        VerdictCategory `json:"category"`
	PositionPercent float64         `json:"position_percent"`
	Rationale       string          `json:"rationale"`
}
