// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gotobench

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// MetricName is the single metric the benchmark emits.
const MetricName = "million gotos per sec"

// Mean identifies the aggregation appropriate for a metric when samples
// from multiple runs are combined.
type Mean int

const (
	// HarmonicMean suits rate metrics measured over differing-length
	// intervals.
	HarmonicMean Mean = iota
)

// Metric is a named rate sample tagged with its aggregation method.
type Metric struct {
	Name  string
	Value float64
	Mean  Mean
}

// Metric converts the run into its throughput metric.
//
// The underlying rate is 1024 indirect jumps per pass divided by the
// run duration; the reported value is that rate in millions per second.
// A zero duration reports zero.
func (r *Result) Metric() Metric {
	rate := 0.0
	if d := r.Duration.Seconds(); d > 0 {
		rate = float64(NumLabels) * float64(r.Passes) / d
	}
	return Metric{
		Name:  MetricName,
		Value: rate / 1e6,
		Mean:  HarmonicMean,
	}
}

// HarmonicAgg combines rate metrics from multiple runs into their
// harmonic mean. The zero value is ready to use.
//
// Add and Mean are safe for concurrent use: a CAS-held lock word with a
// spin-wait pause protects the accumulator, which is held only for a few
// arithmetic operations.
type HarmonicAgg struct {
	_     pad
	lock  atomix.Uint64
	_     pad
	n     int
	recip float64 // Sum of reciprocals of positive samples
}

// Add folds one metric sample into the aggregate.
// Zero-valued samples carry no rate information and are skipped.
func (a *HarmonicAgg) Add(m Metric) {
	a.acquire()
	if m.Value > 0 {
		a.n++
		a.recip += 1 / m.Value
	}
	a.release()
}

// Count returns the number of samples folded in so far.
func (a *HarmonicAgg) Count() int {
	a.acquire()
	n := a.n
	a.release()
	return n
}

// Mean returns the harmonic mean of the added samples, or 0 when no
// positive sample has been added.
func (a *HarmonicAgg) Mean() float64 {
	a.acquire()
	m := 0.0
	if a.recip > 0 {
		m = float64(a.n) / a.recip
	}
	a.release()
	return m
}

func (a *HarmonicAgg) acquire() {
	sw := spin.Wait{}
	for !a.lock.CompareAndSwapAcqRel(0, 1) {
		sw.Once()
	}
}

func (a *HarmonicAgg) release() {
	a.lock.StoreRelease(0)
}
