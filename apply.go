// File: apply.go
// Title: Slice Application
// Description: Implements the generic projection of resolved slice positions
//              into a source slice, yielding the selected elements lazily in
//              iteration order without copying or mutating the source.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-28
//
// Change History:
// - 2026-08-12 v0.1.0: Initial implementation with lazy element projection

package slyce

import "iter"

// Apply returns the elements of src selected by the slice, in iteration
// order, as a lazy single-pass sequence. The sequence borrows from src and
// must not be consumed after src is mutated; it copies nothing. Every
// position produced by Indices is in range by construction, so Apply cannot
// panic for any descriptor.
func Apply[T any](s Slice, src []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range s.Indices(len(src)) {
			if !yield(src[i]) {
				return
			}
		}
	}
}

// ApplyIndexed is Apply with the source position paired to each element,
// for callers that need to know where a selected element came from.
func ApplyIndexed[T any](s Slice, src []T) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range s.Indices(len(src)) {
			if !yield(i, src[i]) {
				return
			}
		}
	}
}
