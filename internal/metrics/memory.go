// Package metrics records per-run measurements: runtime memory snapshots taken
// around each strategy run and Prometheus series describing the runs.
package metrics

import "runtime"

// MemorySnapshot holds a point-in-time memory reading.
type MemorySnapshot struct {
	HeapAlloc    uint64 // bytes in use by application
	Sys          uint64 // total bytes obtained from OS
	NumGC        uint32 // number of completed GC cycles
	PauseTotalNs uint64 // cumulative GC pause time
	Mallocs      uint64 // cumulative heap allocations
}

// MemoryDelta is the difference between two snapshots bracketing a run.
type MemoryDelta struct {
	GCCycles uint32
	PauseNs  uint64
	Mallocs  uint64
}

// MemoryCollector reads runtime memory statistics.
type MemoryCollector struct{}

// NewMemoryCollector creates a new memory collector.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{}
}

// Snapshot reads current memory statistics.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:    m.HeapAlloc,
		Sys:          m.Sys,
		NumGC:        m.NumGC,
		PauseTotalNs: m.PauseTotalNs,
		Mallocs:      m.Mallocs,
	}
}

// Since returns what changed between before and the receiver.
func (s MemorySnapshot) Since(before MemorySnapshot) MemoryDelta {
	return MemoryDelta{
		GCCycles: s.NumGC - before.NumGC,
		PauseNs:  s.PauseTotalNs - before.PauseTotalNs,
		Mallocs:  s.Mallocs - before.Mallocs,
	}
}
