// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gotobench

import "fmt"

// Violation reports a sampled counter outside its expected band.
type Violation struct {
	// Index is the cycle index whose counter misbehaved (a multiple
	// of 64).
	Index int
	// Observed is the counter's value at run end.
	Observed uint64
	// ExpectedLo and ExpectedHi bound the accepted range, inclusive.
	ExpectedLo uint64
	ExpectedHi uint64
}

// String formats the violation as a one-line diagnostic.
func (v Violation) String() string {
	return fmt.Sprintf("label %d execution count out by more than +/-1, got %d, expected between %d and %d",
		v.Index, v.Observed, v.ExpectedLo, v.ExpectedHi)
}

// Verify checks each sampled counter against the completed pass count.
//
// Every counter is expected to lie in [passes-1, passes+1] inclusive
// (clamped at zero): a run stopping around a pass boundary may leave
// some counters one ahead of or behind the pass count, but never
// further. All counters outside their band are collected and returned
// in index order; the run has failed if the result is non-empty.
func Verify(counters [NumCounters]uint64, passes uint64) []Violation {
	lo := uint64(0)
	if passes > 0 {
		lo = passes - 1
	}
	hi := passes + 1

	var violations []Violation
	for k, c := range counters {
		if c < lo || c > hi {
			violations = append(violations, Violation{
				Index:      k * sampleInterval,
				Observed:   c,
				ExpectedLo: lo,
				ExpectedHi: hi,
			})
		}
	}
	return violations
}
