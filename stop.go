// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gotobench

import "code.hybscloud.com/atomix"

// Stop is a cross-goroutine cancellation flag for benchmark runs.
// The zero value is ready to use and may be shared by any number of
// engines; its Continue method is a valid shouldContinue collaborator.
//
// Cancellation is cooperative and coarse-grained: the engine polls once
// per pass, so worst-case latency is one full 1024-step pass.
type Stop struct {
	_    pad
	flag atomix.Bool
	_    pad
}

// Stop requests that runs polling this flag halt at their next pass
// boundary.
func (s *Stop) Stop() {
	s.flag.StoreRelease(true)
}

// Continue reports whether runs polling this flag should keep going.
func (s *Stop) Continue() bool {
	return !s.flag.LoadAcquire()
}

// PassBudget returns a (shouldContinue, recordOp) collaborator pair that
// stops a run after budget passes, the equivalent of an external
// "stop after N×1024 operations" op budget.
//
// The pair shares a private counter and is for a single single-threaded
// run; build a fresh pair for each run.
func PassBudget(budget uint64) (shouldContinue func() bool, recordOp func() uint64) {
	var ops uint64
	return func() bool { return ops < budget },
		func() uint64 { ops++; return ops }
}
