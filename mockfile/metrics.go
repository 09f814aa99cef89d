package mockfile

import (
	"sync/atomic"
)

// MetricsCollector defines an interface for collecting file activity.
// Implement this interface to feed counters into a test harness or a
// monitoring system.
type MetricsCollector interface {
	// RecordRead is called after the data of a ReadAsync was copied.
	RecordRead(bytes int)

	// RecordWrite is called after the data of a WriteAsync or a semantic
	// blocking write was copied.
	RecordWrite(bytes int)

	// RecordWritev is called once per WritevAsync with the number of scatter
	// sources; the flattened write is also reported through RecordWrite.
	RecordWritev(sources, bytes int)

	// RecordResize is called after the buffer size changed.
	RecordResize(from, to int64)

	// RecordTransition is called after an opener changed lifecycle state.
	RecordTransition(from, to State)

	// RecordCompletion is called after a completion callback ran.
	RecordCompletion()
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordRead(int)                {}
func (NoopMetricsCollector) RecordWrite(int)               {}
func (NoopMetricsCollector) RecordWritev(int, int)         {}
func (NoopMetricsCollector) RecordResize(int64, int64)     {}
func (NoopMetricsCollector) RecordTransition(State, State) {}
func (NoopMetricsCollector) RecordCompletion()             {}

// BasicMetricsCollector provides simple in-memory counters.
type BasicMetricsCollector struct {
	ReadCount     atomic.Int64
	ReadBytes     atomic.Int64
	WriteCount    atomic.Int64
	WriteBytes    atomic.Int64
	WritevCount   atomic.Int64
	WritevSources atomic.Int64
	ResizeCount   atomic.Int64
	Transitions   atomic.Int64
	Completions   atomic.Int64
}

// RecordRead implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRead(bytes int) {
	b.ReadCount.Add(1)
	b.ReadBytes.Add(int64(bytes))
}

// RecordWrite implements MetricsCollector.
func (b *BasicMetricsCollector) RecordWrite(bytes int) {
	b.WriteCount.Add(1)
	b.WriteBytes.Add(int64(bytes))
}

// RecordWritev implements MetricsCollector.
func (b *BasicMetricsCollector) RecordWritev(sources, bytes int) {
	b.WritevCount.Add(1)
	b.WritevSources.Add(int64(sources))
}

// RecordResize implements MetricsCollector.
func (b *BasicMetricsCollector) RecordResize(from, to int64) {
	b.ResizeCount.Add(1)
}

// RecordTransition implements MetricsCollector.
func (b *BasicMetricsCollector) RecordTransition(from, to State) {
	b.Transitions.Add(1)
}

// RecordCompletion implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCompletion() {
	b.Completions.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		ReadCount:     b.ReadCount.Load(),
		ReadBytes:     b.ReadBytes.Load(),
		WriteCount:    b.WriteCount.Load(),
		WriteBytes:    b.WriteBytes.Load(),
		WritevCount:   b.WritevCount.Load(),
		WritevSources: b.WritevSources.Load(),
		ResizeCount:   b.ResizeCount.Load(),
		Transitions:   b.Transitions.Load(),
		Completions:   b.Completions.Load(),
	}
}

// BasicMetricsStats is a point-in-time copy of BasicMetricsCollector.
type BasicMetricsStats struct {
	ReadCount     int64
	ReadBytes     int64
	WriteCount    int64
	WriteBytes    int64
	WritevCount   int64
	WritevSources int64
	ResizeCount   int64
	Transitions   int64
	Completions   int64
}
