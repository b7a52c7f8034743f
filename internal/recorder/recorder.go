package recorder

import (
	"time"

	"PriceTrend/internal/model"
)

// Snapshot is one recorded render result: the statistics and verdict a
// scheduled render produced for a product. Price history itself is not
// persisted here; that belongs to the upstream price service.
type Snapshot struct {
	ID        string
	ProductID string
	TakenAt   time.Time
	Stats     model.SeriesStatistics
	Verdict   model.Verdict
}

// Recorder persists render snapshots for later analysis.
type Recorder interface {
	Record(snap *Snapshot) error
	Close() error
}
