// Package sim provides the page-replacement simulation engine.
//
// # Reading Guide
//
// Start with these files to understand the engine:
//   - frames.go: the fixed-capacity frame model every policy shares
//   - result.go: StepRecord and Result, the only output shape
//   - policy.go: policy names and the Simulate dispatcher
//
// Each policy is an independent function of (reference string, capacity):
//   - fifo.go: evict the page loaded earliest
//   - lru.go: evict the page used least recently (simplelru recency list)
//   - optimal.go: evict the page referenced furthest in the future (Belady's MIN)
//
// Runs never share state, so any of them may execute in parallel without
// synchronization. Simulation performs no I/O; reporting lives in metrics.go
// and is driven by cmd/.
//
// # Supporting pieces
//   - page.go: parsing and formatting reference strings
//   - rng.go: reproducible generated reference strings
//   - sweep.go: faults across a range of capacities and Belady's anomaly detection
//   - scenario.go: YAML scenario files
//   - sim/trace/: eviction decision recording
package sim
