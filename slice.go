// File: slice.go
// Title: Slice Descriptor and Lazy Iteration
// Description: Implements the Slice descriptor (start, end, step), the Step
//              option type, and the lazy production of selected positions as
//              an iter.Seq. Iteration counts are computed in uint64 so that
//              no step magnitude or bound combination can overflow an
//              intermediate value.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-28
//
// Change History:
// - 2026-08-12 v0.1.0: Initial implementation with count-based stepping

package slyce

import (
	"iter"
	"strconv"
)

// ===============================
// Step Option Type
// ===============================

// Step is an optional signed step value. The zero value is "unset", which
// gives an effective step of 1. A set step of 0 selects nothing; it is a
// well-defined empty result, never an error.
type Step struct {
	set bool
	n   int64
}

// DefaultStep is the unset step, equivalent to a step of 1.
var DefaultStep = Step{}

// StepBy returns a set step with the given value. Negative values iterate
// from back to front; zero yields the empty sequence.
func StepBy(n int64) Step {
	return Step{set: true, n: n}
}

// StepFromPtr converts an optional signed value into a Step. A nil pointer
// maps to DefaultStep. This is the boundary used by the textual parser.
func StepFromPtr(v *int64) Step {
	if v == nil {
		return DefaultStep
	}
	return StepBy(*v)
}

// Value returns the step value and whether it was set.
func (st Step) Value() (int64, bool) {
	return st.n, st.set
}

// IsDefault reports whether the step is unset.
func (st Step) IsDefault() bool {
	return !st.set
}

// String renders the step as it appears inside a slice expression: the
// decimal value when set, the empty string otherwise.
func (st Step) String() string {
	if !st.set {
		return ""
	}
	return strconv.FormatInt(st.n, 10)
}

// effective returns the step value used for iteration, substituting 1 for
// the unset step.
func (st Step) effective() int64 {
	if !st.set {
		return 1
	}
	return st.n
}

// ===============================
// Slice Descriptor
// ===============================

// Slice describes a Python-style slice expression "[start:end:step]". A
// Slice is array-length-agnostic: nothing couples its fields to each other
// or to any array until Indices or Apply resolves it against a concrete
// length. The zero value selects every position, like "[::]".
type Slice struct {
	Start Index
	End   Index
	Step  Step
}

// New constructs a Slice from its three fields.
func New(start, end Index, step Step) Slice {
	return Slice{Start: start, End: end, Step: step}
}

// FromParts constructs a Slice from three optional signed fields, the shape
// produced by the textual parser: nil means unspecified, negative values
// count from the back.
func FromParts(start, end, step *int64) Slice {
	return Slice{
		Start: FromIntPtr(start),
		End:   FromIntPtr(end),
		Step:  StepFromPtr(step),
	}
}

// String renders the slice as "[start:end:step]", mirroring the parse
// format. Unspecified fields render empty, so the zero Slice renders as
// "[::]".
func (s Slice) String() string {
	return "[" + s.Start.String() + ":" + s.End.String() + ":" + s.Step.String() + "]"
}

// bounds resolves the slice against an array length, returning the
// effective start, end and step. The start lies in [0, len] ascending or
// [-1, len-1] descending; the end shares the same range. A negative length
// is treated as zero.
func (s Slice) bounds(length int) (start, end, step int64) {
	if length < 0 {
		length = 0
	}
	step = s.Step.effective()
	descending := step < 0

	var defStart, defEnd int
	if descending {
		defStart, defEnd = length-1, -1
	} else {
		defStart, defEnd = 0, length
	}

	st, ok := s.Start.resolve(length, descending)
	if !ok {
		st = defStart
	}
	en, ok := s.End.resolve(length, descending)
	if !ok {
		en = defEnd
	}
	return int64(st), int64(en), step
}

// Count returns the number of positions the slice selects on an array of
// the given length: max(0, ceil((end-start)/step)) over the resolved
// bounds, and 0 for a zero step.
func (s Slice) Count(length int) int {
	start, end, step := s.bounds(length)
	diff, mag := span(start, end, step)
	if diff == 0 {
		return 0
	}
	// the count is bounded by length, so the narrowing is safe
	return int(1 + (diff-1)/mag)
}

// Indices returns the ordered positions the slice selects on an array of
// the given length as a lazy, single-pass sequence. Each call produces a
// fresh sequence; the sequence holds no resources and may be abandoned at
// any point. Every yielded position lies in [0, length).
func (s Slice) Indices(length int) iter.Seq[int] {
	return func(yield func(int) bool) {
		start, end, step := s.bounds(length)
		diff, mag := span(start, end, step)
		if diff == 0 {
			return
		}
		i := start
		for n := 1 + (diff-1)/mag; n > 0; n-- {
			if !yield(int(i)) {
				return
			}
			// the final advance may wrap; its value is never yielded
			i += step
		}
	}
}

// span returns the distance from start to end in the iteration direction
// and the step magnitude, both as uint64. A zero distance means the slice
// selects nothing (empty window or zero step). Computing the magnitude via
// two's complement negation keeps math.MinInt64 exact.
func span(start, end, step int64) (diff, mag uint64) {
	switch {
	case step > 0 && start < end:
		return uint64(end - start), uint64(step)
	case step < 0 && start > end:
		return uint64(start - end), -uint64(step)
	default:
		return 0, 0
	}
}
