// Package slyce implements exact Python-style slice index resolution for Go slices.
//
// Package: slyce
// Title: Python-Style Slice Index Resolution
// Description: This package computes, for an array of known length, the exact
//              ordered sequence of positions selected by a Python-style slice
//              expression (start, end, step with negative-index and open-ended
//              semantics). Resolution is overflow-free for every representable
//              index magnitude, never panics, never rejects an out-of-range
//              bound, and produces positions lazily without allocating.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-28
//
// Change History:
// - 2026-08-12 v0.1.0: Initial implementation with Index, Slice and lazy iteration
//
// Package Overview:
//
// The package is built around two types:
//
//   - Index: a tagged position relative to the front (Head), relative to the
//     back (Tail), or unspecified (Default). An Index is array-length-agnostic
//     until it is resolved against a concrete length.
//   - Slice: a (Start, End, Step) descriptor mirroring the Python slice
//     expression "[start:end:step]". Slice.Indices produces the selected
//     positions as a lazy iter.Seq; Apply projects them into a source slice.
//
// # Resolution Semantics
//
// Bounds are clamped, never rejected. An ascending slice clamps its bounds
// into [0, len]; a descending slice clamps into [-1, len-1], where -1 is the
// sentinel that lets a descending iteration include position 0. Unspecified
// bounds take direction-dependent defaults: ascending runs 0 to len,
// descending runs len-1 down to the -1 sentinel. A zero step selects nothing.
//
// These rules reproduce the Python reference semantics for every combination
// of negative, absent and out-of-range fields:
//
//	arr := []int{10, 20, 30, 40, 50}
//	s := slyce.New(slyce.Tail(3), slyce.Default, slyce.DefaultStep)
//	for v := range slyce.Apply(s, arr) {
//		fmt.Println(v) // 30, 40, 50 — like arr[-3:]
//	}
//
// # Overflow Safety
//
// Index magnitudes cover the full uint64 range. Resolution compares
// magnitudes against the array length before any subtraction or narrowing,
// so Tail(n) with n near math.MaxUint64 clamps to the array edge instead of
// wrapping into a small bogus position. Iteration counts are computed in
// uint64, so huge step magnitudes cannot overflow an intermediate value.
//
// # Error Handling
//
// The core has no fallible operations. Every input maps to a well-defined
// clamped result; the only errors in this module belong to the textual
// parser (package parser) and the demo CLI, which sit upstream of the core.
//
// # Thread Safety
//
// Index, Step and Slice are immutable values. Distinct Slice/array pairs can
// be used concurrently without synchronization; nothing in the package
// shares mutable state.
package slyce
