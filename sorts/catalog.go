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

import "golang.org/x/exp/constraints"

// Algorithm pairs a sorting function with its display name. Quadratic marks
// the elementary sorts so timing harnesses can skip them on inputs large
// enough to stall a run.
type Algorithm[T constraints.Ordered] struct {
	Name      string
	Quadratic bool
	Sort      func([]T)
}

// All returns the full catalog in a stable order: elementary sorts first,
// then shellsort per gap sequence, the mergesorts, the heapsorts, the
// quicksorts, and finally the standard library baselines.
func All[T constraints.Ordered]() []Algorithm[T] {
	shell := func(gaps GapSequence) func([]T) {
		return func(data []T) { Shell(data, gaps) }
	}
	return []Algorithm[T]{
		{Name: "Insertion sort", Quadratic: true, Sort: Insertion[T]},
		{Name: "Insertion sort (by swapping)", Quadratic: true, Sort: InsertionBySwap[T]},
		{Name: "Binary insertion sort", Quadratic: true, Sort: BinaryInsertion[T]},
		{Name: "Selection sort", Quadratic: true, Sort: Selection[T]},
		{Name: "Bubble sort", Quadratic: true, Sort: Bubble[T]},
		{Name: "Bubble sort (non-adaptive)", Quadratic: true, Sort: BubbleNonadaptive[T]},
		{Name: "Bubble sort (fully adaptive)", Quadratic: true, Sort: BubbleAdaptive[T]},
		{Name: "Gnome sort", Quadratic: true, Sort: Gnome[T]},
		{Name: "Shellsort (Hibbard gap sequence)", Sort: shell(HibbardGaps)},
		{Name: "Shellsort (3-smooth gap sequence)", Sort: shell(ThreeSmoothGaps)},
		{Name: "Shellsort (Sedgewick gap sequence)", Sort: shell(SedgewickGaps)},
		{Name: "Shellsort (Tokuda gap sequence)", Sort: shell(TokudaGaps)},
		{Name: "Shellsort (Extended Ciura gap sequence)", Sort: shell(CiuraGaps)},
		{Name: "Mergesort (top-down, recursive)", Sort: Mergesort[T]},
		{Name: "Mergesort (top-down, iterative)", Sort: MergesortIterative[T]},
		{Name: "Mergesort (bottom-up, iterative)", Sort: MergesortBottomUp[T]},
		{Name: "Heapsort", Sort: Heapsort[T]},
		{Name: "Heapsort (by swapping)", Sort: HeapsortBySwap[T]},
		{Name: "Quicksort (Lomuto partitioning, middle-element pivot, recursive)", Sort: QuicksortLomuto[T]},
		{Name: "Quicksort (Lomuto partitioning, middle-element pivot, iterative)", Sort: QuicksortLomutoIterative[T]},
		{Name: "Quicksort (Lomuto partitioning, median-of-three pivot, recursive)", Sort: QuicksortLomutoMedian3[T]},
		{Name: "Quicksort (Lomuto partitioning, median-of-three pivot, iterative)", Sort: QuicksortLomutoMedian3Iterative[T]},
		{Name: "Quicksort (Hoare partitioning, median-of-three pivot, recursive)", Sort: QuicksortHoare[T]},
		{Name: "Quicksort (Hoare partitioning, median-of-three pivot, iterative)", Sort: QuicksortHoareIterative[T]},
		{Name: "container/heap (stdlib heapsort)", Sort: StdHeapsort[T]},
		{Name: "sort.SliceStable (stdlib stable sort)", Sort: StdStable[T]},
		{Name: "sort.Slice (stdlib introsort)", Sort: StdSort[T]},
		{Name: "slices.SortStableFunc (stdlib stable sort)", Sort: SlicesStable[T]},
		{Name: "slices.Sort (stdlib pdqsort)", Sort: SlicesSort[T]},
		{Name: "x/exp/slices.Sort", Sort: ExpSort[T]},
	}
}
