// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gotobench

// Direction selects which jump table drives each pass.
type Direction int

const (
	// Forward walks the cycle in ascending index order every pass.
	Forward Direction = iota + 1
	// Backward walks the cycle in descending index order every pass.
	Backward
	// Random draws one pseudo-random bit per pass to pick the forward
	// or the backward table for that pass.
	Random
)

// DefaultDirection is used when no direction option is given.
const DefaultDirection = Random

// ParseDirection validates an external direction option token.
//
// Exactly "forward", "backward" and "random" are accepted
// (case-sensitive). Any other token fails with a [DirectionError]
// listing the three valid options; no run should be attempted with the
// zero Direction it returns.
func ParseDirection(token string) (Direction, error) {
	switch token {
	case "forward":
		return Forward, nil
	case "backward":
		return Backward, nil
	case "random":
		return Random, nil
	}
	return 0, &DirectionError{Token: token}
}

// String returns the option token for d, or "unknown" for invalid values.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Random:
		return "random"
	}
	return "unknown"
}

// valid reports whether d is one of the three defined directions.
func (d Direction) valid() bool {
	return d == Forward || d == Backward || d == Random
}
