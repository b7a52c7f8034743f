package recorder

// NoopRecorder discards all snapshots. Used when no database path is
// configured or opening it failed.
type NoopRecorder struct{}

// NewNoopRecorder creates a no-op recorder.
func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) Record(_ *Snapshot) error { return nil }

func (n *NoopRecorder) Close() error { return nil }
