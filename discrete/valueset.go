// Package discrete maps integer-coded design variables onto fixed catalogs
// of allowed engineering values. A solver with integer-variable support
// searches over small integer codes; this package translates those codes
// back into the physical values the evaluators understand.
package discrete

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange reports a code outside [1, len(set)]. This is an
	// upstream bound misconfiguration; codes are never clamped.
	ErrIndexOutOfRange = errors.New("value code out of range")

	// ErrDimensionMismatch reports a design vector of unexpected length or
	// an encoding that references a slot outside the vector.
	ErrDimensionMismatch = errors.New("design vector dimension mismatch")
)

// ValueSet is an ordered, immutable catalog of allowed values for one
// design slot. Codes are 1-based.
type ValueSet []float64

// At returns the value for code. Codes outside [1, len(s)] fail rather
// than clamp so that bad solver bounds surface immediately.
func (s ValueSet) At(code int) (float64, error) {
	if code < 1 || code > len(s) {
		return 0, fmt.Errorf("%w: code %d, set size %d", ErrIndexOutOfRange, code, len(s))
	}
	return s[code-1], nil
}

// Index returns the 1-based code whose catalog entry equals v exactly,
// or 0 if v is not in the set. Exact comparison is intentional: catalog
// values are stored literals, never computed.
func (s ValueSet) Index(v float64) int {
	for i, sv := range s {
		if sv == v {
			return i + 1
		}
	}
	return 0
}
