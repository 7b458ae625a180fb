// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package gotobench measures indirect-branch throughput.
//
// The benchmark repeatedly walks a fixed cycle of 1024 program points
// through an indirect dispatch table, loading the CPU's branch predictor
// and instruction-fetch path with a controllable access pattern:
// forward, backward, or a per-pass random choice between the two.
//
// # Quick Start
//
//	e := gotobench.New(gotobench.Random)
//	cont, op := gotobench.PassBudget(1 << 20)
//	res := e.Run(cont, op)
//
//	if v := res.Verify(); len(v) != 0 {
//	    // sampled counters disagree with the pass count
//	}
//	fmt.Println(res.Metric().Value) // million gotos per sec
//
// # Directions
//
// A Direction selects which jump table drives each pass:
//
//   - Forward: ascending index order, fully predictable
//   - Backward: descending index order, fully predictable
//   - Random: one unbiased bit per pass picks forward or backward
//
// External option strings are validated with [ParseDirection]; the
// default when no option is given is [Random].
//
// # Cancellation and Budgets
//
// The engine polls its shouldContinue collaborator once per pass, so the
// hot path stays free of branches unrelated to the benchmark's subject.
// Worst-case stop latency is one full pass (1024 indirect jumps).
//
// [PassBudget] builds a collaborator pair that halts after a fixed
// number of passes. [Stop] is a cross-goroutine flag whose Continue
// method is a valid shouldContinue. A driver on another goroutine can
// watch progress through [Engine.Ops] while a run executes.
//
// # Verification
//
// Every 64th cycle index carries a visit counter, giving 16 independent
// consistency checks per run. After a run, [Verify] (or [Result.Verify])
// checks each counter against the completed pass count with a ±1
// tolerance and reports every counter outside its band. A run with
// violations has failed, but its rate metric is still valid and should
// still be reported.
//
// # Multi-Worker Aggregation
//
// Each Engine owns its tables, counters and random state exclusively, so
// independent engines run concurrently without locking. Rates from
// concurrently finishing runs combine with [HarmonicAgg], the
// aggregation appropriate for rate metrics measured over
// heterogeneous-length intervals:
//
//	var agg gotobench.HarmonicAgg
//	// each worker, after its run:
//	agg.Add(res.Metric())
//	// driver, after all workers:
//	fmt.Println(agg.Mean())
//
// # Race Detection
//
// Go's race detector cannot observe happens-before relationships
// established through atomix memory orderings, so tests that poll
// [Engine.Ops] or a [Stop] flag across goroutines report false
// positives. Those tests are excluded via //go:build !race; the
// RaceEnabled constant lets table-driven tests skip themselves.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/atomix] for atomic primitives
// with explicit memory ordering and [code.hybscloud.com/spin] for CPU
// pause instructions. Test drivers use [code.hybscloud.com/iox] for
// adaptive backoff while polling.
package gotobench
