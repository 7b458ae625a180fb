// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package gotobench

// RaceEnabled is true when the race detector is active.
// Used by tests to skip cross-goroutine polling tests, which trigger
// false positives because the detector cannot observe atomix memory
// orderings.
const RaceEnabled = true
