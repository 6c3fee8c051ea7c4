// Package metrics tracks counters and phase timings of one build.
package metrics

import (
	"fmt"
	"sync/atomic"
	"time"
)

// BuildMetrics tracks performance data during the build process.
type BuildMetrics struct {
	// Timing
	StartTime  time.Time
	EndTime    time.Time
	IngestTime time.Duration
	ModelTime  time.Duration
	RenderTime time.Duration
	AssetTime  time.Duration
	SyncTime   time.Duration

	// Counters
	PostsProcessed  int
	Categories      int
	CommentsFetched int
	UsedFallback    bool

	// Written from the asset copy workers.
	filesWritten atomic.Int64
}

// NewBuildMetrics creates a new metrics instance.
func NewBuildMetrics() *BuildMetrics {
	return &BuildMetrics{
		StartTime: time.Now(),
	}
}

// RecordEnd marks the end of the build.
func (m *BuildMetrics) RecordEnd() {
	m.EndTime = time.Now()
}

// TotalDuration returns the total build duration.
func (m *BuildMetrics) TotalDuration() time.Duration {
	if m.EndTime.IsZero() {
		return time.Since(m.StartTime)
	}
	return m.EndTime.Sub(m.StartTime)
}

// Phase runs fn and adds its wall time to *d.
func (m *BuildMetrics) Phase(d *time.Duration, fn func() error) error {
	start := time.Now()
	err := fn()
	*d += time.Since(start)
	return err
}

// FileWritten counts one output file. Safe for concurrent use.
func (m *BuildMetrics) FileWritten(string) {
	m.filesWritten.Add(1)
}

func (m *BuildMetrics) FilesWritten() int {
	return int(m.filesWritten.Load())
}

// String returns a one-line build summary.
func (m *BuildMetrics) String() string {
	source := "GitHub"
	if m.UsedFallback {
		source = "fallback"
	}
	return fmt.Sprintf("📊 Built %d posts, %d categories, %d files in %v (source: %s, %d comments)",
		m.PostsProcessed,
		m.Categories,
		m.FilesWritten(),
		m.TotalDuration().Round(time.Millisecond),
		source,
		m.CommentsFetched,
	)
}

// Print outputs the metrics to stdout.
func (m *BuildMetrics) Print() {
	fmt.Println(m.String())
}
