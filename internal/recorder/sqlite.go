package recorder

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists render snapshots to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so dashboards can read while the scheduler writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	zap.L().Info("sqlite recorder opened", zap.String("path", dbPath))
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS render_snapshots (
			id               TEXT PRIMARY KEY,
			product_id       TEXT NOT NULL,
			timestamp        INTEGER NOT NULL,
			min_price        REAL,
			max_price        REAL,
			mean_price       REAL,
			current_price    REAL,
			price_range      REAL,
			volatility       REAL,
			trend_pct        REAL,
			degenerate       INTEGER,
			sample_count     INTEGER,
			position_percent REAL,
			category         TEXT,
			rationale        TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_product_ts ON render_snapshots(product_id, timestamp)`,
	}
	for _, stmt := range stmts {
		if _, err := r.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Record inserts one snapshot. An empty ID gets a fresh UUID.
func (r *SQLiteRecorder) Record(snap *Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := snap.ID
	if id == "" {
		id = uuid.NewString()
	}
	degenerate := 0
	if snap.Stats.IsDegenerate {
		degenerate = 1
	}

	_, err := r.db.Exec(`INSERT INTO render_snapshots
		(id, product_id, timestamp, min_price, max_price, mean_price, current_price,
		 price_range, volatility, trend_pct, degenerate, sample_count,
		 position_percent, category, rationale)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, snap.ProductID, snap.TakenAt.Unix(),
		snap.Stats.Min, snap.Stats.Max, snap.Stats.Mean, snap.Stats.CurrentPrice,
		snap.Stats.Range, snap.Stats.Volatility, snap.Stats.TrendPct, degenerate,
		snap.Stats.SampleCount,
		snap.Verdict.PositionPercent, string(snap.Verdict.Category), snap.Verdict.Rationale,
	)
	if err != nil {
		return fmt.Errorf("insert snapshot: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}
