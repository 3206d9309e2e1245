// File: slice_test.go
// Title: Slice Descriptor Tests
// Description: Test suite for Slice resolution and lazy iteration, covering
//              direction-dependent defaults, clamping, the zero-step policy,
//              overflow safety, rendering and the reference scenarios.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-28
//
// Change History:
// - 2026-08-12 v0.1.0: Initial test implementation

package slyce

import (
	"math"
	"slices"
	"testing"
)

// positions materializes the index sequence for assertions.
func positions(s Slice, length int) []int {
	return slices.Collect(s.Indices(length))
}

// ===============================
// Default and Direction Tests
// ===============================

func TestIndicesAscendingDefault(t *testing.T) {
	for _, length := range []int{0, 1, 2, 5, 17} {
		got := positions(Slice{}, length)
		if len(got) != length {
			t.Fatalf("length %d: got %d positions, want %d", length, len(got), length)
		}
		for i, p := range got {
			if p != i {
				t.Errorf("length %d: position[%d] = %d, want %d", length, i, p, i)
			}
		}
	}
}

func TestIndicesDescendingDefault(t *testing.T) {
	s := New(Default, Default, StepBy(-1))
	for _, length := range []int{0, 1, 2, 5, 17} {
		got := positions(s, length)
		if len(got) != length {
			t.Fatalf("length %d: got %d positions, want %d", length, len(got), length)
		}
		for i, p := range got {
			if want := length - 1 - i; p != want {
				t.Errorf("length %d: position[%d] = %d, want %d", length, i, p, want)
			}
		}
	}
}

func TestIndicesSymmetry(t *testing.T) {
	// forward and backward traversal over the same window select the same
	// positions in opposite order
	const length = 9
	for a := 0; a <= length; a++ {
		for b := a; b <= length; b++ {
			fwd := positions(New(Head(uint64(a)), Head(uint64(b)), StepBy(1)), length)

			var end Index = Default
			if a > 0 {
				end = Tail(uint64(length - a + 1))
			}
			var start Index = Default
			if b < length {
				start = Tail(uint64(length - b + 1))
			}
			bwd := positions(New(start, end, StepBy(-1)), length)

			slices.Reverse(bwd)
			if !slices.Equal(fwd, bwd) {
				t.Errorf("window [%d,%d): forward %v, reversed backward %v", a, b, fwd, bwd)
			}
		}
	}
}

// ===============================
// Clamping and Edge Case Tests
// ===============================

func TestIndicesClamping(t *testing.T) {
	tests := []struct {
		name   string
		s      Slice
		length int
		want   []int
	}{
		{"start beyond length", New(Head(10), Default, DefaultStep), 5, nil},
		{"end beyond length", New(Default, Head(2000), DefaultStep), 5, []int{0, 1, 2, 3, 4}},
		{"both beyond length", New(Tail(1000), Head(2000), DefaultStep), 5, []int{0, 1, 2, 3, 4}},
		{"descending start beyond", New(Head(100), Default, StepBy(-1)), 5, []int{4, 3, 2, 1, 0}},
		{"descending end beyond", New(Default, Tail(100), StepBy(-1)), 5, []int{4, 3, 2, 1, 0}},
		{"empty window", New(Head(3), Head(3), DefaultStep), 5, nil},
		{"inverted window ascending", New(Head(4), Head(1), DefaultStep), 5, nil},
		{"inverted window descending", New(Head(1), Head(4), StepBy(-1)), 5, nil},
		{"empty array", New(Tail(2), Head(7), DefaultStep), 0, nil},
		{"empty array descending", New(Default, Default, StepBy(-1)), 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := positions(tt.s, tt.length)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Indices(%d) = %v, want %v", tt.length, got, tt.want)
			}
		})
	}
}

func TestIndicesZeroStep(t *testing.T) {
	s := New(Head(1), Head(4), StepBy(0))
	for _, length := range []int{0, 1, 5, 100} {
		if got := positions(s, length); len(got) != 0 {
			t.Errorf("length %d: zero step yielded %v, want empty", length, got)
		}
		if got := s.Count(length); got != 0 {
			t.Errorf("length %d: Count = %d, want 0", length, got)
		}
	}
}

func TestIndicesTailZeroStart(t *testing.T) {
	// Tail(0) as a start is "one past the end": empty ascending, clamped to
	// the last element descending.
	if got := positions(New(Tail(0), Default, DefaultStep), 5); len(got) != 0 {
		t.Errorf("ascending Tail(0) start yielded %v, want empty", got)
	}
	got := positions(New(Tail(0), Default, StepBy(-1)), 5)
	if want := []int{4, 3, 2, 1, 0}; !slices.Equal(got, want) {
		t.Errorf("descending Tail(0) start = %v, want %v", got, want)
	}
}

// ===============================
// Overflow Safety Tests
// ===============================

func TestIndicesOverflowSafety(t *testing.T) {
	t.Run("huge tail clamps like small tail", func(t *testing.T) {
		huge := positions(New(Tail(math.MaxUint64), Default, DefaultStep), 4)
		clamped := positions(New(Tail(4), Default, DefaultStep), 4)
		if !slices.Equal(huge, clamped) {
			t.Errorf("Tail(MaxUint64) = %v, Tail(4) = %v, want equal", huge, clamped)
		}
	})

	t.Run("huge positive step", func(t *testing.T) {
		got := positions(New(Default, Default, StepBy(math.MaxInt64)), 5)
		if want := []int{0}; !slices.Equal(got, want) {
			t.Errorf("step MaxInt64 = %v, want %v", got, want)
		}
	})

	t.Run("huge negative step", func(t *testing.T) {
		got := positions(New(Default, Default, StepBy(math.MinInt64)), 5)
		if want := []int{4}; !slices.Equal(got, want) {
			t.Errorf("step MinInt64 = %v, want %v", got, want)
		}
	})

	t.Run("huge head start descending", func(t *testing.T) {
		got := positions(New(Head(math.MaxUint64), Default, StepBy(-2)), 5)
		if want := []int{4, 2, 0}; !slices.Equal(got, want) {
			t.Errorf("Head(MaxUint64) start = %v, want %v", got, want)
		}
	})
}

// ===============================
// Reference Scenario Tests
// ===============================

func TestIndicesReferenceScenarios(t *testing.T) {
	// the scenarios mirror Python slicing on [10,20,30,40,50]
	tests := []struct {
		name string
		s    Slice
		want []int
	}{
		{"arr[-3:]", New(Tail(3), Default, DefaultStep), []int{2, 3, 4}},
		{"arr[-3::-1]", New(Tail(3), Default, StepBy(-1)), []int{2, 1, 0}},
		{"arr[4:0:-1]", New(Head(4), Head(0), StepBy(-1)), []int{4, 3, 2, 1}},
		{"arr[-1000:2000]", New(Tail(1000), Head(2000), DefaultStep), []int{0, 1, 2, 3, 4}},
		{"arr[::2]", New(Default, Default, StepBy(2)), []int{0, 2, 4}},
		{"arr[::-2]", New(Default, Default, StepBy(-2)), []int{4, 2, 0}},
		{"arr[1:4]", New(Head(1), Head(4), DefaultStep), []int{1, 2, 3}},
		{"arr[-2:-5:-2]", New(Tail(2), Tail(5), StepBy(-2)), []int{3, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := positions(tt.s, 5)
			if !slices.Equal(got, tt.want) {
				t.Errorf("positions = %v, want %v", got, tt.want)
			}
			if c := tt.s.Count(5); c != len(tt.want) {
				t.Errorf("Count = %d, want %d", c, len(tt.want))
			}
		})
	}
}

// ===============================
// Sequence Behavior Tests
// ===============================

func TestIndicesFreshPerCall(t *testing.T) {
	s := New(Head(1), Head(4), DefaultStep)
	first := positions(s, 5)
	second := positions(s, 5)
	if !slices.Equal(first, second) {
		t.Errorf("second resolution %v differs from first %v", second, first)
	}
}

func TestIndicesEarlyStop(t *testing.T) {
	s := New(Default, Default, DefaultStep)
	var got []int
	for i := range s.Indices(1000) {
		got = append(got, i)
		if len(got) == 3 {
			break
		}
	}
	if want := []int{0, 1, 2}; !slices.Equal(got, want) {
		t.Errorf("abandoned sequence yielded %v, want %v", got, want)
	}
}

func TestCount(t *testing.T) {
	tests := []struct {
		name   string
		s      Slice
		length int
		want   int
	}{
		{"full", Slice{}, 7, 7},
		{"empty array", Slice{}, 0, 0},
		{"negative length treated as empty", Slice{}, -3, 0},
		{"step two", New(Default, Default, StepBy(2)), 7, 4},
		{"step three", New(Default, Default, StepBy(3)), 7, 3},
		{"descending", New(Default, Default, StepBy(-1)), 7, 7},
		{"window", New(Head(2), Head(6), StepBy(2)), 7, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.Count(tt.length); got != tt.want {
				t.Errorf("Count(%d) = %d, want %d", tt.length, got, tt.want)
			}
		})
	}
}

// ===============================
// Rendering Tests
// ===============================

func TestSliceString(t *testing.T) {
	tests := []struct {
		name string
		s    Slice
		want string
	}{
		{"zero value", Slice{}, "[::]"},
		{"full form", New(Head(1), Tail(2), StepBy(3)), "[1:-2:3]"},
		{"negative step", New(Default, Default, StepBy(-1)), "[::-1]"},
		{"start only", New(Tail(3), Default, DefaultStep), "[-3::]"},
		{"zero step", New(Default, Default, StepBy(0)), "[::0]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

// ===============================
// Fuzz Tests
// ===============================

func FuzzIndices(f *testing.F) {
	f.Add(int64(0), false, int64(5), false, int64(1), false, 5)
	f.Add(int64(-3), false, int64(0), true, int64(-1), false, 5)
	f.Add(int64(math.MinInt64), false, int64(math.MaxInt64), false, int64(0), false, 4)
	f.Add(int64(2), true, int64(2), true, int64(-7), false, 100)

	f.Fuzz(func(t *testing.T, start int64, startNil bool, end int64, endNil bool, step int64, stepNil bool, length int) {
		if length < 0 || length > 1<<16 {
			length = int(uint(length) % (1 << 16))
		}
		var sp, ep, tp *int64
		if !startNil {
			sp = &start
		}
		if !endNil {
			ep = &end
		}
		if !stepNil {
			tp = &step
		}
		s := FromParts(sp, ep, tp)

		n := 0
		prev := -1
		for i := range s.Indices(length) {
			if i < 0 || i >= length {
				t.Fatalf("%v on length %d yielded out-of-range position %d", s, length, i)
			}
			if n > 0 && i == prev {
				t.Fatalf("%v on length %d yielded duplicate position %d", s, length, i)
			}
			prev = i
			n++
		}
		if c := s.Count(length); c != n {
			t.Errorf("%v on length %d: Count = %d, yielded %d", s, length, c, n)
		}
	})
}
