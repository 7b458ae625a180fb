// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gotobench

const (
	// NumLabels is the cycle length: the number of program points one
	// pass visits.
	NumLabels = 1024

	// sampleInterval is the spacing of sampled indices; every index n
	// with n%sampleInterval == 0 carries a visit counter.
	sampleInterval = 64

	// NumCounters is the number of sampled visit counters per run.
	NumCounters = NumLabels / sampleInterval
)

// BuildTables returns the forward and backward jump tables for a cycle
// of the given size:
//
//	forward[i]  = (i+1) mod size
//	backward[i] = (i+size-1) mod size
//
// Each table is a single size-cycle permutation: following either
// successor function size times from any index visits every index
// exactly once and returns to the start. The result is a pure function
// of size; tables are built once per engine and never mutated.
//
// Panics if size is not in [2, 65536].
func BuildTables(size int) (forward, backward []uint16) {
	if size < 2 || size > 1<<16 {
		panic("gotobench: table size out of range")
	}

	forward = make([]uint16, size)
	backward = make([]uint16, size)
	for i := 0; i < size; i++ {
		forward[i] = uint16((i + 1) % size)
		backward[i] = uint16((i + size - 1) % size)
	}
	return forward, backward
}
