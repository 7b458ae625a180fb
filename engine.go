// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gotobench

import (
	"time"

	"code.hybscloud.com/atomix"
)

// Engine runs the indirect-branch benchmark loop.
//
// Each Engine owns its jump tables, dispatch table, sample counters and
// random state exclusively. Run many engines concurrently by giving each
// goroutine its own instance; no locking is needed between them. The
// only field read across goroutines is the cumulative op counter,
// observable through [Engine.Ops] while a run executes.
type Engine struct {
	_   pad
	ops atomix.Uint64 // Cumulative passes, externally observable
	_   pad

	forward  []uint16
	backward []uint16
	labels   []func() // Indirect dispatch targets, one per cycle index
	counters [NumCounters]uint64
	dir      Direction

	// Multiply-with-carry state for the per-pass direction bit.
	// Per-instance, never shared, so Random-mode engines on different
	// goroutines stay independent without synchronization.
	mwcZ uint32
	mwcW uint32
}

// New creates an Engine for the given direction.
//
// Panics if dir is not Forward, Backward or Random; validate external
// input with [ParseDirection] first.
func New(dir Direction) *Engine {
	if !dir.valid() {
		panic("gotobench: invalid direction")
	}

	e := &Engine{dir: dir}
	e.forward, e.backward = BuildTables(NumLabels)

	// One dispatch target per cycle index. The targets are function
	// values selected by a data-dependent table walk, so each step of a
	// pass is an indirect, hard-to-statically-predict control transfer.
	e.labels = make([]func(), NumLabels)
	for i := range e.labels {
		e.labels[i] = func() {
			if i&(sampleInterval-1) == 0 {
				e.counters[i/sampleInterval]++
			}
		}
	}

	e.seed(uint64(time.Now().UnixNano()))
	return e
}

// seed initializes the MWC state. Zero halves would lock the generator
// at zero, so Marsaglia's stock constants back-fill them.
func (e *Engine) seed(v uint64) {
	e.mwcZ = 362436069 ^ uint32(v)
	e.mwcW = 521288629 ^ uint32(v>>32)
	if e.mwcZ == 0 {
		e.mwcZ = 362436069
	}
	if e.mwcW == 0 {
		e.mwcW = 521288629
	}
}

// mwc1 returns one pseudo-random bit from the multiply-with-carry
// generator. Fast and roughly unbiased; not cryptographic.
func (e *Engine) mwc1() uint32 {
	e.mwcZ = 36969*(e.mwcZ&0xffff) + (e.mwcZ >> 16)
	e.mwcW = 18000*(e.mwcW&0xffff) + (e.mwcW >> 16)
	return ((e.mwcZ << 16) + e.mwcW) & 1
}

// Run executes benchmark passes until shouldContinue reports false and
// returns the completed run's counters, pass counts and duration.
//
// One pass visits all 1024 cycle indices of the active table exactly
// once. shouldContinue is polled once per pass, before the pass begins;
// a stop request arriving mid-pass therefore takes effect only at the
// next pass boundary. recordOp, if non-nil, is invoked once per pass and
// should return the cumulative op count for external budget enforcement
// (see [PassBudget]); the engine's own counter is kept either way.
//
// Run may be called again on the same engine; sample counters reset at
// the start of each run while the op counter accumulates across runs.
//
// Panics if shouldContinue is nil.
func (e *Engine) Run(shouldContinue func() bool, recordOp func() uint64) Result {
	if shouldContinue == nil {
		panic("gotobench: nil shouldContinue")
	}

	var res Result
	e.counters = [NumCounters]uint64{}

	active := e.forward
	if e.dir == Backward {
		active = e.backward
	}

	start := time.Now()
	for shouldContinue() {
		switch e.dir {
		case Random:
			if e.mwc1() != 0 {
				active = e.backward
				res.BackwardPasses++
			} else {
				active = e.forward
				res.ForwardPasses++
			}
		case Forward:
			res.ForwardPasses++
		case Backward:
			res.BackwardPasses++
		}

		e.ops.AddAcqRel(1)
		if recordOp != nil {
			recordOp()
		}

		// Index 0 is the loop head: sampled inline, then the walk
		// dispatches through the remaining 1023 indices and ends on
		// the step whose successor is 0.
		e.counters[0]++
		n := active[0]
		for n != 0 {
			e.labels[n]()
			n = active[n]
		}

		res.Passes++
	}
	res.Duration = time.Since(start)
	res.Counters = e.counters
	return res
}

// Direction returns the direction the engine was built with.
func (e *Engine) Direction() Direction {
	return e.dir
}

// Ops returns the cumulative number of passes started across all runs of
// this engine. Safe to call from other goroutines while Run executes.
func (e *Engine) Ops() uint64 {
	return e.ops.LoadAcquire()
}

// Result captures one completed run.
type Result struct {
	// Passes is the number of completed full 1024-step cycles.
	Passes uint64
	// ForwardPasses and BackwardPasses split Passes by the table that
	// drove each pass; their sum equals Passes.
	ForwardPasses  uint64
	BackwardPasses uint64
	// Counters holds the visit counts of the 16 sampled indices;
	// Counters[k] counts visits to cycle index 64*k.
	Counters [NumCounters]uint64
	// Duration is the wall-clock time spent inside Run.
	Duration time.Duration
}

// Verify checks the run's sampled counters against its pass count.
// See [Verify].
func (r *Result) Verify() []Violation {
	return Verify(r.Counters, r.Passes)
}

// Failed reports whether the run's sampled counters are inconsistent
// with its pass count. A failed run's rate metric is still valid.
func (r *Result) Failed() bool {
	return len(r.Verify()) != 0
}

// pad is cache line padding to prevent false sharing.
type pad [64]byte
