// Copyright 2026 go-sortbench Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sorts

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// randInts returns n ints drawn from rng, small enough to collide often.
func randInts(rng *rand.Rand, n int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = rng.Intn(10000) - 5000
	}
	return data
}

// sameElements checks that got is a permutation of want.
func sameElements(t *testing.T, label string, got, want []int) {
	t.Helper()
	a := slices.Clone(got)
	b := slices.Clone(want)
	slices.Sort(a)
	slices.Sort(b)
	if !slices.Equal(a, b) {
		t.Errorf("%s: output is not a permutation of the input", label)
	}
}

// TestIsSorted tests the IsSorted predicate
func TestIsSorted(t *testing.T) {
	tests := []struct {
		name string
		data []int
		want bool
	}{
		{"empty", []int{}, true},
		{"single", []int{1}, true},
		{"sorted", []int{1, 2, 3, 4, 5}, true},
		{"unsorted", []int{1, 3, 2, 4, 5}, false},
		{"reverse", []int{5, 4, 3, 2, 1}, false},
		{"equal", []int{3, 3, 3, 3}, true},
		{"equal_run", []int{1, 2, 2, 2, 3}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsSorted(tt.data)
			if got != tt.want {
				t.Errorf("IsSorted(%v) = %v, want %v", tt.data, got, tt.want)
			}
		})
	}
}

// TestIsSortedFunc tests the predicate under a reversed ordering
func TestIsSortedFunc(t *testing.T) {
	desc := func(a, b int) bool { return a > b }
	if !IsSortedFunc([]int{5, 4, 4, 1}, desc) {
		t.Errorf("IsSortedFunc(descending, desc) = false, want true")
	}
	if IsSortedFunc([]int{1, 2}, desc) {
		t.Errorf("IsSortedFunc(ascending, desc) = true, want false")
	}
}

// TestAllSortsLiterals runs every catalog algorithm over small hand-written
// inputs with known outputs.
func TestAllSortsLiterals(t *testing.T) {
	tests := []struct {
		name string
		data []int
		want []int
	}{
		{"three", []int{111, 333, 222}, []int{111, 222, 333}},
		{"ten_mixed_signs", []int{3, 7, 1, 5, 2, -6, 15, 4, 33, -5}, []int{-6, -5, 1, 2, 3, 4, 5, 7, 15, 33}},
		{"thirteen_duplicates", []int{9, 9, 1, 8, 3, 0, 2, 0, 7, 15, 4, 3, 3}, []int{0, 0, 1, 2, 3, 3, 3, 4, 7, 8, 9, 9, 15}},
		{"pair_swapped", []int{2, 1}, []int{1, 2}},
		{"pair_sorted", []int{1, 2}, []int{1, 2}},
		{"single", []int{5}, []int{5}},
		{"empty", []int{}, []int{}},
	}

	for _, algo := range All[int]() {
		t.Run(algo.Name, func(t *testing.T) {
			for _, tt := range tests {
				got := make([]int, len(tt.data))
				copy(got, tt.data)
				algo.Sort(got)
				if diff := cmp.Diff(tt.want, got); diff != "" {
					t.Errorf("%s(%v) mismatch (-want +got):\n%s", algo.Name, tt.data, diff)
				}
			}
		})
	}
}

// TestAllSortsRandom runs every catalog algorithm over random inputs of
// assorted sizes and compares against the standard library.
func TestAllSortsRandom(t *testing.T) {
	sizes := []int{0, 1, 7, 8, 15, 16, 31, 32, 63, 64, 100, 256, 1000}
	rng := rand.New(rand.NewSource(42))

	for _, algo := range All[int]() {
		t.Run(algo.Name, func(t *testing.T) {
			for _, n := range sizes {
				data := randInts(rng, n)
				want := slices.Clone(data)
				slices.Sort(want)

				got := slices.Clone(data)
				algo.Sort(got)
				if !slices.Equal(got, want) {
					t.Errorf("%s(random, n=%d) produced wrong result", algo.Name, n)
				}
			}
		})
	}
}

// TestAllSortsPermutation sorts a shuffled permutation of 0..999 and checks
// every element lands at its own index.
func TestAllSortsPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	base := make([]int, 1000)
	for i := range base {
		base[i] = i
	}
	rng.Shuffle(len(base), func(i, j int) { base[i], base[j] = base[j], base[i] })

	for _, algo := range All[int]() {
		t.Run(algo.Name, func(t *testing.T) {
			data := slices.Clone(base)
			algo.Sort(data)
			for i, v := range data {
				if v != i {
					t.Errorf("%s: data[%d] = %d, want %d", algo.Name, i, v, i)
					break
				}
			}
		})
	}
}

// TestAllSortsAllEqual makes sure no algorithm loses elements or loops on a
// constant slice.
func TestAllSortsAllEqual(t *testing.T) {
	for _, algo := range All[int]() {
		data := make([]int, 64)
		for i := range data {
			data[i] = 5
		}
		algo.Sort(data)
		for i, v := range data {
			if v != 5 {
				t.Errorf("%s: data[%d] = %d, want 5", algo.Name, i, v)
				break
			}
		}
	}
}

// TestAllSortsIdempotent sorts twice and expects the second pass to change
// nothing.
func TestAllSortsIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	for _, algo := range All[int]() {
		data := randInts(rng, 256)
		algo.Sort(data)
		once := slices.Clone(data)
		algo.Sort(data)
		if !slices.Equal(data, once) {
			t.Errorf("%s: second sort changed an already sorted slice", algo.Name)
		}
	}
}

// TestAllSortsStrings exercises the catalog with a non-numeric ordered type.
func TestAllSortsStrings(t *testing.T) {
	input := []string{"pear", "apple", "fig", "banana", "date", "apple", ""}
	want := slices.Clone(input)
	slices.Sort(want)

	for _, algo := range All[string]() {
		got := slices.Clone(input)
		algo.Sort(got)
		if !slices.Equal(got, want) {
			t.Errorf("%s(strings) = %v, want %v", algo.Name, got, want)
		}
	}
}

// TestAllNamesUnique guards against catalog copy-paste mistakes.
func TestAllNamesUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, algo := range All[int]() {
		if algo.Name == "" {
			t.Errorf("catalog entry with empty name")
		}
		if seen[algo.Name] {
			t.Errorf("duplicate catalog name %q", algo.Name)
		}
		seen[algo.Name] = true
		if algo.Sort == nil {
			t.Errorf("%s: nil Sort", algo.Name)
		}
	}
}

// funcAlgorithm pins a Func variant behind a uniform signature for tests.
type funcAlgorithm[T any] struct {
	name string
	sort func([]T, func(a, b T) bool)
}

func allFuncs[T any]() []funcAlgorithm[T] {
	return []funcAlgorithm[T]{
		{"InsertionFunc", InsertionFunc[T]},
		{"InsertionBySwapFunc", InsertionBySwapFunc[T]},
		{"BinaryInsertionFunc", BinaryInsertionFunc[T]},
		{"SelectionFunc", SelectionFunc[T]},
		{"BubbleFunc", BubbleFunc[T]},
		{"BubbleNonadaptiveFunc", BubbleNonadaptiveFunc[T]},
		{"BubbleAdaptiveFunc", BubbleAdaptiveFunc[T]},
		{"GnomeFunc", GnomeFunc[T]},
		{"ShellFunc", func(data []T, less func(a, b T) bool) { ShellFunc(data, less, nil) }},
		{"MergesortFunc", MergesortFunc[T]},
		{"MergesortIterativeFunc", MergesortIterativeFunc[T]},
		{"MergesortBottomUpFunc", MergesortBottomUpFunc[T]},
		{"HeapsortFunc", HeapsortFunc[T]},
		{"HeapsortBySwapFunc", HeapsortBySwapFunc[T]},
		{"QuicksortLomutoFunc", QuicksortLomutoFunc[T]},
		{"QuicksortLomutoIterativeFunc", QuicksortLomutoIterativeFunc[T]},
		{"QuicksortLomutoMedian3Func", QuicksortLomutoMedian3Func[T]},
		{"QuicksortLomutoMedian3IterativeFunc", QuicksortLomutoMedian3IterativeFunc[T]},
		{"QuicksortHoareFunc", QuicksortHoareFunc[T]},
		{"QuicksortHoareIterativeFunc", QuicksortHoareIterativeFunc[T]},
		{"StdSortFunc", StdSortFunc[T]},
		{"StdStableFunc", StdStableFunc[T]},
		{"StdHeapsortFunc", StdHeapsortFunc[T]},
		{"SlicesSortFunc", SlicesSortFunc[T]},
		{"SlicesStableFunc", SlicesStableFunc[T]},
		{"ExpSortFunc", ExpSortFunc[T]},
	}
}

// TestFuncVariantsDescending sorts under a reversed ordering and checks the
// result is non-increasing and a permutation of the input.
func TestFuncVariantsDescending(t *testing.T) {
	desc := func(a, b int) bool { return a > b }
	rng := rand.New(rand.NewSource(99))
	input := randInts(rng, 200)

	for _, fa := range allFuncs[int]() {
		t.Run(fa.name, func(t *testing.T) {
			data := slices.Clone(input)
			fa.sort(data, desc)
			if !IsSortedFunc(data, desc) {
				t.Errorf("%s: output is not descending", fa.name)
			}
			sameElements(t, fa.name, data, input)
		})
	}
}
