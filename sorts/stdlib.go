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
	"cmp"
	"container/heap"
	"slices"
	"sort"

	"golang.org/x/exp/constraints"
	expslices "golang.org/x/exp/slices"
)

// Thin wrappers over the standard library and x/exp sorts, shaped like the
// rest of the package so timing harnesses can run them as baselines.

// StdSort sorts data with sort.Slice, the reflection-based stdlib sort.
func StdSort[T constraints.Ordered](data []T) {
	StdSortFunc(data, less[T])
}

// StdSortFunc is StdSort with an explicit ordering.
func StdSortFunc[T any](data []T, less func(a, b T) bool) {
	sort.Slice(data, func(i, j int) bool { return less(data[i], data[j]) })
}

// StdStable sorts data with sort.SliceStable.
func StdStable[T constraints.Ordered](data []T) {
	StdStableFunc(data, less[T])
}

// StdStableFunc is StdStable with an explicit ordering.
func StdStableFunc[T any](data []T, less func(a, b T) bool) {
	sort.SliceStable(data, func(i, j int) bool { return less(data[i], data[j]) })
}

// StdHeapsort sorts data through container/heap: the slice is adapted into
// a max-heap whose Pop parks the maximum in the shrinking tail, so popping
// every element leaves the slice ascending in place.
func StdHeapsort[T constraints.Ordered](data []T) {
	StdHeapsortFunc(data, less[T])
}

// StdHeapsortFunc is StdHeapsort with an explicit ordering.
func StdHeapsortFunc[T any](data []T, less func(a, b T) bool) {
	h := &maxHeap[T]{data: data, size: len(data), less: less}
	heap.Init(h)
	for h.size > 1 {
		heap.Pop(h)
	}
}

// maxHeap adapts a slice to heap.Interface with reversed comparisons. Len
// tracks the live heap prefix so popped maxima accumulate behind it.
type maxHeap[T any] struct {
	data []T
	size int
	less func(a, b T) bool
}

func (h *maxHeap[T]) Len() int           { return h.size }
func (h *maxHeap[T]) Less(i, j int) bool { return h.less(h.data[j], h.data[i]) }
func (h *maxHeap[T]) Swap(i, j int)      { h.data[i], h.data[j] = h.data[j], h.data[i] }

func (h *maxHeap[T]) Push(x any) {
	h.data = append(h.data[:h.size], x.(T))
	h.size++
}

func (h *maxHeap[T]) Pop() any {
	h.size--
	return h.data[h.size]
}

// SlicesSort sorts data with slices.Sort, the generic pattern-defeating
// quicksort that replaced sort.Slice as the stdlib default.
func SlicesSort[T constraints.Ordered](data []T) {
	slices.Sort(data)
}

// SlicesSortFunc is SlicesSort with an explicit ordering.
func SlicesSortFunc[T any](data []T, less func(a, b T) bool) {
	slices.SortFunc(data, compare(less))
}

// SlicesStable sorts data with slices.SortStableFunc under the natural
// ordering.
func SlicesStable[T constraints.Ordered](data []T) {
	slices.SortStableFunc(data, cmp.Compare[T])
}

// SlicesStableFunc is SlicesStable with an explicit ordering.
func SlicesStableFunc[T any](data []T, less func(a, b T) bool) {
	slices.SortStableFunc(data, compare(less))
}

// ExpSort sorts data with golang.org/x/exp/slices.Sort, kept around to
// compare the experimental sort against its standard library port.
func ExpSort[T constraints.Ordered](data []T) {
	expslices.Sort(data)
}

// ExpSortFunc is ExpSort with an explicit ordering.
func ExpSortFunc[T any](data []T, less func(a, b T) bool) {
	expslices.SortFunc(data, compare(less))
}

// compare derives a three-way comparison from a strict ordering, for the
// slices-style sorts that take cmp functions.
func compare[T any](less func(a, b T) bool) func(a, b T) int {
	return func(a, b T) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		default:
			return 0
		}
	}
}
