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

// The quicksorts come in every combination of partition scheme (Lomuto,
// Hoare), pivot choice (middle element, median of three) and driver
// (recursive, iterative). The iterative drivers run an explicit span stack
// and produce exactly the partitions of their recursive twins. None of them
// is stable, and none falls back to heapsort, so adversarial input can cost
// O(n^2); the median-of-three variants dodge the common sorted and
// reverse-sorted cases.

// QuicksortLomuto sorts data with recursive quicksort, Lomuto partitioning
// and the middle element as pivot.
func QuicksortLomuto[T constraints.Ordered](data []T) {
	QuicksortLomutoFunc(data, less[T])
}

// QuicksortLomutoFunc is QuicksortLomuto with an explicit ordering.
func QuicksortLomutoFunc[T any](data []T, less func(a, b T) bool) {
	quickLomuto(data, 0, len(data), less)
}

func quickLomuto[T any](data []T, lo, hi int, less func(a, b T) bool) {
	if hi-lo < 2 {
		return
	}
	swapMidToFront(data, lo, hi)
	mid := lomuto(data, lo, hi, less)
	quickLomuto(data, lo, mid, less)
	quickLomuto(data, mid+1, hi, less)
}

// QuicksortLomutoIterative is QuicksortLomuto with the recursion replaced
// by an explicit span stack.
func QuicksortLomutoIterative[T constraints.Ordered](data []T) {
	QuicksortLomutoIterativeFunc(data, less[T])
}

// QuicksortLomutoIterativeFunc is QuicksortLomutoIterative with an explicit
// ordering.
func QuicksortLomutoIterativeFunc[T any](data []T, less func(a, b T) bool) {
	spans := [][2]int{{0, len(data)}}
	for len(spans) > 0 {
		s := spans[len(spans)-1]
		spans = spans[:len(spans)-1]
		lo, hi := s[0], s[1]
		if hi-lo < 2 {
			continue
		}
		swapMidToFront(data, lo, hi)
		mid := lomuto(data, lo, hi, less)
		// Left span on top so partitions happen in recursion order.
		spans = append(spans, [2]int{mid + 1, hi}, [2]int{lo, mid})
	}
}

// QuicksortLomutoMedian3 sorts data with recursive quicksort, Lomuto
// partitioning and a median-of-three pivot (first, middle, last).
func QuicksortLomutoMedian3[T constraints.Ordered](data []T) {
	QuicksortLomutoMedian3Func(data, less[T])
}

// QuicksortLomutoMedian3Func is QuicksortLomutoMedian3 with an explicit
// ordering.
func QuicksortLomutoMedian3Func[T any](data []T, less func(a, b T) bool) {
	quickLomutoMedian3(data, 0, len(data), less)
}

func quickLomutoMedian3[T any](data []T, lo, hi int, less func(a, b T) bool) {
	if hi-lo < 2 {
		return
	}
	swapMedian3ToFront(data, lo, hi, less)
	mid := lomuto(data, lo, hi, less)
	quickLomutoMedian3(data, lo, mid, less)
	quickLomutoMedian3(data, mid+1, hi, less)
}

// QuicksortLomutoMedian3Iterative is QuicksortLomutoMedian3 with the
// recursion replaced by an explicit span stack.
func QuicksortLomutoMedian3Iterative[T constraints.Ordered](data []T) {
	QuicksortLomutoMedian3IterativeFunc(data, less[T])
}

// QuicksortLomutoMedian3IterativeFunc is QuicksortLomutoMedian3Iterative
// with an explicit ordering.
func QuicksortLomutoMedian3IterativeFunc[T any](data []T, less func(a, b T) bool) {
	spans := [][2]int{{0, len(data)}}
	for len(spans) > 0 {
		s := spans[len(spans)-1]
		spans = spans[:len(spans)-1]
		lo, hi := s[0], s[1]
		if hi-lo < 2 {
			continue
		}
		swapMedian3ToFront(data, lo, hi, less)
		mid := lomuto(data, lo, hi, less)
		spans = append(spans, [2]int{mid + 1, hi}, [2]int{lo, mid})
	}
}

// QuicksortHoare sorts data with recursive quicksort, Hoare partitioning
// and a median-of-three pivot. Hoare's scheme leaves the pivot inside one
// of the halves, so both recursions include the crossing point's side.
func QuicksortHoare[T constraints.Ordered](data []T) {
	QuicksortHoareFunc(data, less[T])
}

// QuicksortHoareFunc is QuicksortHoare with an explicit ordering.
func QuicksortHoareFunc[T any](data []T, less func(a, b T) bool) {
	quickHoare(data, 0, len(data), less)
}

func quickHoare[T any](data []T, lo, hi int, less func(a, b T) bool) {
	if hi-lo < 2 {
		return
	}
	swapMedian3ToFront(data, lo, hi, less)
	cross := hoare(data, lo, hi, less)
	quickHoare(data, lo, cross+1, less)
	quickHoare(data, cross+1, hi, less)
}

// QuicksortHoareIterative is QuicksortHoare with the recursion replaced by
// an explicit span stack.
func QuicksortHoareIterative[T constraints.Ordered](data []T) {
	QuicksortHoareIterativeFunc(data, less[T])
}

// QuicksortHoareIterativeFunc is QuicksortHoareIterative with an explicit
// ordering.
func QuicksortHoareIterativeFunc[T any](data []T, less func(a, b T) bool) {
	spans := [][2]int{{0, len(data)}}
	for len(spans) > 0 {
		s := spans[len(spans)-1]
		spans = spans[:len(spans)-1]
		lo, hi := s[0], s[1]
		if hi-lo < 2 {
			continue
		}
		swapMedian3ToFront(data, lo, hi, less)
		cross := hoare(data, lo, hi, less)
		spans = append(spans, [2]int{cross + 1, hi}, [2]int{lo, cross + 1})
	}
}
