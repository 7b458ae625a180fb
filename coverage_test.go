// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gotobench_test

import (
	"math"
	"sync"
	"testing"
	"time"

	"code.hybscloud.com/gotobench"
)

// =============================================================================
// Rate Metric
// =============================================================================

// TestMetricRate pins the rate computation: 10 passes in 0.5s is
// 1024*10/0.5 = 20480 gotos/sec = 0.02048 million/sec.
func TestMetricRate(t *testing.T) {
	res := gotobench.Result{Passes: 10, Duration: 500 * time.Millisecond}

	m := res.Metric()
	if m.Name != gotobench.MetricName {
		t.Fatalf("Name: got %q, want %q", m.Name, gotobench.MetricName)
	}
	if m.Mean != gotobench.HarmonicMean {
		t.Fatalf("Mean: got %v, want HarmonicMean", m.Mean)
	}
	if math.Abs(m.Value-0.02048) > 1e-12 {
		t.Fatalf("Value: got %v, want 0.02048", m.Value)
	}
}

// TestMetricZeroDuration reports zero rather than dividing by zero.
func TestMetricZeroDuration(t *testing.T) {
	res := gotobench.Result{Passes: 10}

	if m := res.Metric(); m.Value != 0 {
		t.Fatalf("Value with zero duration: got %v, want 0", m.Value)
	}
}

// =============================================================================
// Harmonic Aggregation
// =============================================================================

// TestHarmonicAggMean checks the harmonic mean of known samples:
// H(2, 6) = 2 / (1/2 + 1/6) = 3.
func TestHarmonicAggMean(t *testing.T) {
	var agg gotobench.HarmonicAgg

	agg.Add(gotobench.Metric{Name: gotobench.MetricName, Value: 2})
	agg.Add(gotobench.Metric{Name: gotobench.MetricName, Value: 6})

	if n := agg.Count(); n != 2 {
		t.Fatalf("Count: got %d, want 2", n)
	}
	if m := agg.Mean(); math.Abs(m-3) > 1e-12 {
		t.Fatalf("Mean: got %v, want 3", m)
	}
}

// TestHarmonicAggSkipsZero checks zero-valued samples (failed timing,
// zero-duration runs) do not poison the mean.
func TestHarmonicAggSkipsZero(t *testing.T) {
	var agg gotobench.HarmonicAgg

	agg.Add(gotobench.Metric{Value: 0})
	agg.Add(gotobench.Metric{Value: 4})

	if n := agg.Count(); n != 1 {
		t.Fatalf("Count: got %d, want 1", n)
	}
	if m := agg.Mean(); math.Abs(m-4) > 1e-12 {
		t.Fatalf("Mean: got %v, want 4", m)
	}
}

// TestHarmonicAggEmpty returns zero with no samples.
func TestHarmonicAggEmpty(t *testing.T) {
	var agg gotobench.HarmonicAgg

	if m := agg.Mean(); m != 0 {
		t.Fatalf("Mean with no samples: got %v, want 0", m)
	}
	if n := agg.Count(); n != 0 {
		t.Fatalf("Count with no samples: got %d, want 0", n)
	}
}

// TestHarmonicAggConcurrent hammers the aggregator from several
// goroutines; identical samples must yield their own value as the mean.
func TestHarmonicAggConcurrent(t *testing.T) {
	if gotobench.RaceEnabled {
		t.Skip("skip: aggregator lock uses atomix memory ordering")
	}

	const (
		workers = 8
		samples = 1000
	)
	var agg gotobench.HarmonicAgg

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range samples {
				agg.Add(gotobench.Metric{Value: 2.5})
			}
		}()
	}
	wg.Wait()

	if n := agg.Count(); n != workers*samples {
		t.Fatalf("Count: got %d, want %d", n, workers*samples)
	}
	if m := agg.Mean(); math.Abs(m-2.5) > 1e-9 {
		t.Fatalf("Mean: got %v, want 2.5", m)
	}
}

// =============================================================================
// Construction Guards
// =============================================================================

// TestNewPanicsOnInvalidDirection: New is for validated directions only.
func TestNewPanicsOnInvalidDirection(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("New(0): expected panic")
		}
	}()
	gotobench.New(0)
}

// TestRunPanicsOnNilShouldContinue: a run without a cancellation
// collaborator would never terminate.
func TestRunPanicsOnNilShouldContinue(t *testing.T) {
	e := gotobench.New(gotobench.Forward)
	defer func() {
		if recover() == nil {
			t.Fatal("Run(nil, nil): expected panic")
		}
	}()
	e.Run(nil, nil)
}

// TestBuildTablesPanicsOutOfRange guards the size bounds.
func TestBuildTablesPanicsOutOfRange(t *testing.T) {
	for _, size := range []int{-1, 0, 1, 1<<16 + 1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("BuildTables(%d): expected panic", size)
				}
			}()
			gotobench.BuildTables(size)
		}()
	}
}

// TestEngineDirection pins the accessor.
func TestEngineDirection(t *testing.T) {
	for _, d := range []gotobench.Direction{gotobench.Forward, gotobench.Backward, gotobench.Random} {
		if got := gotobench.New(d).Direction(); got != d {
			t.Fatalf("Direction: got %v, want %v", got, d)
		}
	}
}
