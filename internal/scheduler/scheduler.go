package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"PriceTrend/internal/recorder"
	"PriceTrend/internal/series"
	"PriceTrend/internal/source"
	"PriceTrend/internal/strategy"
)

// Scheduler runs the periodic snapshot task: for every tracked product,
// collect the price history, score it, and record the result.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *source.Collector
	Recorder  recorder.Recorder
	Products  []string
	Ctx       context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, col *source.Collector, rec recorder.Recorder, products []string) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Collector: col,
		Recorder:  rec,
		Products:  products,
		Ctx:       ctx,
	}
}

// Register registers the snapshot task with the given cron spec.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.snapshotTask); err != nil {
		return fmt.Errorf("register snapshot task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	zap.L().Info("scheduler started", zap.Int("products", len(s.Products)))
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	zap.L().Info("scheduler stopped")
}

// RunNow executes the snapshot task immediately.
func (s *Scheduler) RunNow() {
	s.snapshotTask()
}

func (s *Scheduler) snapshotTask() {
	for _, productID := range s.Products {
		if err := s.snapshotOne(productID); err != nil {
			zap.L().Warn("snapshot failed",
				zap.String("product", productID),
				zap.Error(err))
		}
	}
}

func (s *Scheduler) snapshotOne(productID string) error {
	_, st, err := s.Collector.Collect(s.Ctx, productID)
	if err != nil {
		// Products with no usable history yet are expected; skip quietly.
		if errors.Is(err, series.ErrEmptySeries) || errors.Is(err, series.ErrMalformedPayload) {
			zap.L().Debug("no usable price history", zap.String("product", productID))
			return nil
		}
		return err
	}

	verdict := strategy.Score(st)
	snap := &recorder.Snapshot{
		ProductID: productID,
		TakenAt:   time.Now(),
		Stats:     *st,
		Verdict:   *verdict,
	}
	if err := s.Recorder.Record(snap); err != nil {
		return err
	}

	zap.L().Info("snapshot recorded",
		zap.String("product", productID),
		zap.Float64("position", verdict.PositionPercent),
		zap.String("category", string(verdict.Category)))
	return nil
}
