// File: index.go
// Title: Tagged Array Index
// Description: Implements the Index value type, a tagged position that is
//              counted from the front (Head), counted from the back (Tail)
//              or left unspecified (Default), together with its overflow-free
//              resolution against a concrete array length.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-28
//
// Change History:
// - 2026-08-12 v0.1.0: Initial implementation with clamped bound resolution

package slyce

import "strconv"

// indexKind discriminates the three Index variants
type indexKind int

const (
	// kindDefault is the zero value: an unspecified bound resolved from the
	// iteration direction
	kindDefault indexKind = iota

	// kindHead counts positions from the front; Head(0) is the first element
	kindHead

	// kindTail counts positions from the back; Tail(1) is the last element
	kindTail
)

// Index represents a single slice bound. The zero value is Default, an
// unspecified bound. Index values are immutable and array-length-agnostic;
// they acquire a concrete position only when resolved against a length.
type Index struct {
	kind indexKind
	n    uint64
}

// Default is the unspecified bound. As a start it resolves to the first
// position of the iteration direction, as an end to one past the last.
var Default = Index{}

// Head returns the index of position n counted from the front of the array.
// Head(0) is the first element. Values beyond the array length clamp to the
// nearest legal edge at resolution time; they are never rejected.
func Head(n uint64) Index {
	return Index{kind: kindHead, n: n}
}

// Tail returns the index of position n counted from the back of the array.
// Tail(1) is the last element. Tail(0) resolves to one past the end, which
// makes it an empty start for ascending slices. Values beyond the array
// length clamp to the nearest legal edge at resolution time.
func Tail(n uint64) Index {
	return Index{kind: kindTail, n: n}
}

// FromInt converts a signed offset into an Index using the Python
// convention: non-negative values count from the front, negative values
// count from the back (-1 is the last element). The conversion is total;
// math.MinInt64 maps to Tail(1<<63).
func FromInt(v int64) Index {
	if v < 0 {
		// two's complement negation yields the magnitude even for MinInt64
		return Tail(-uint64(v))
	}
	return Head(uint64(v))
}

// FromUint converts an unsigned position into an Index counted from the
// front. The full uint64 range is representable.
func FromUint(v uint64) Index {
	return Head(v)
}

// FromIntPtr converts an optional signed offset into an Index. A nil
// pointer maps to Default; otherwise the conversion follows FromInt. This
// is the boundary used by the textual parser, where an empty field means
// "unspecified".
func FromIntPtr(v *int64) Index {
	if v == nil {
		return Default
	}
	return FromInt(*v)
}

// IsDefault reports whether the index is the unspecified bound.
func (ix Index) IsDefault() bool {
	return ix.kind == kindDefault
}

// String renders the index the way it appears inside a slice expression:
// Head(n) as "n", Tail(n) as "-n" and Default as the empty string. Note
// that Tail(0) renders as "-0", which the parser reads back as Head(0);
// every other index round-trips exactly.
func (ix Index) String() string {
	switch ix.kind {
	case kindHead:
		return strconv.FormatUint(ix.n, 10)
	case kindTail:
		return "-" + strconv.FormatUint(ix.n, 10)
	default:
		return ""
	}
}

// resolve maps the index onto an array of the given length and clamps it
// into the legal bound range for the iteration direction: [0, length] for
// ascending slices, [-1, length-1] for descending ones. The -1 sentinel is
// what lets a descending iteration terminate below position 0. The second
// return value is false for Default, which the caller replaces with the
// direction-dependent default bound.
//
// All magnitude comparisons happen on uint64 values before any subtraction
// or narrowing, so no input can wrap: Tail(n) with n > length clamps to the
// lower edge instead of underflowing, and Head(n) with n beyond the upper
// edge clamps instead of truncating.
func (ix Index) resolve(length int, descending bool) (int, bool) {
	lower, upper := 0, length
	if descending {
		lower, upper = -1, length-1
	}

	switch ix.kind {
	case kindHead:
		// upper is -1 only for a descending slice of an empty array
		if upper < 0 || ix.n > uint64(upper) {
			return upper, true
		}
		return int(ix.n), true

	case kindTail:
		if ix.n > uint64(length) {
			return lower, true
		}
		v := length - int(ix.n)
		// Tail(0) lands one past the descending upper edge
		if v > upper {
			return upper, true
		}
		return v, true

	default:
		return 0, false
	}
}
