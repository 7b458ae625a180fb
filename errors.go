// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gotobench

import "errors"

// ErrUnknownDirection indicates a direction option token that is not one
// of "forward", "backward" or "random".
//
// It is detected before any run starts; a caller can recover by retrying
// with a valid token. Match with [errors.Is] or [IsUnknownDirection].
var ErrUnknownDirection = errors.New("gotobench: unknown direction")

// DirectionError reports a rejected direction option token. It wraps
// [ErrUnknownDirection] and records the offending token.
type DirectionError struct {
	Token string
}

// Error lists the accepted tokens alongside the rejected one.
func (e *DirectionError) Error() string {
	return "gotobench: direction '" + e.Token + "' not known, options are: forward, backward, random"
}

// Unwrap makes DirectionError match ErrUnknownDirection via errors.Is.
func (e *DirectionError) Unwrap() error {
	return ErrUnknownDirection
}

// IsUnknownDirection reports whether err is a direction option rejection.
func IsUnknownDirection(err error) bool {
	return errors.Is(err, ErrUnknownDirection)
}
