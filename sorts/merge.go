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
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Mergesort sorts data with top-down recursive mergesort: split at the
// midpoint, sort each half, merge. Stable, O(n log n) on every input, uses
// one n-element auxiliary buffer shared across all merges.
func Mergesort[T constraints.Ordered](data []T) {
	MergesortFunc(data, less[T])
}

// MergesortFunc is Mergesort with an explicit ordering.
func MergesortFunc[T any](data []T, less func(a, b T) bool) {
	if len(data) < 2 {
		return
	}
	aux := make([]T, 0, len(data))
	var sortRange func(lo, hi int)
	sortRange = func(lo, hi int) {
		half := (hi - lo) / 2
		if half == 0 {
			return
		}
		mid := lo + half
		sortRange(lo, mid)
		sortRange(mid, hi)
		aux = mergeRuns(aux, data, lo, mid, hi, less)
	}
	sortRange(0, len(data))
}

// MergesortIterative sorts data with top-down mergesort driven by an
// explicit stack instead of recursion. It performs the exact merges of
// Mergesort in the exact order. Stable.
func MergesortIterative[T constraints.Ordered](data []T) {
	MergesortIterativeFunc(data, less[T])
}

// MergesortIterativeFunc is MergesortIterative with an explicit ordering.
func MergesortIterativeFunc[T any](data []T, less func(a, b T) bool) {
	n := len(data)
	if n < 2 {
		return
	}
	aux := make([]T, 0, n)
	type span struct{ lo, hi int }
	stack := make([]span, 0, bits.Len(uint(n))+1)
	// The range about to be descended into, and the last range merged.
	// A span's right half is descended into only if it is splittable and
	// was not just finished; otherwise the span itself is merged.
	lo, hi := 0, n
	doneLo, doneHi := n, n
	for lo != hi || len(stack) > 0 {
		for ; lo != hi; hi = lo + (hi-lo)/2 {
			stack = append(stack, span{lo, hi})
		}
		top := stack[len(stack)-1]
		mid := top.lo + (top.hi-top.lo)/2
		if top.hi-mid > 1 && (mid != doneLo || top.hi != doneHi) {
			lo, hi = mid, top.hi
		} else {
			aux = mergeRuns(aux, data, top.lo, mid, top.hi, less)
			doneLo, doneHi = top.lo, top.hi
			stack = stack[:len(stack)-1]
		}
	}
}

// MergesortBottomUp sorts data with bottom-up mergesort: merge runs of
// width 1, then 2, 4, ... until one run covers the slice. A trailing short
// run merges with whatever is left. Stable.
func MergesortBottomUp[T constraints.Ordered](data []T) {
	MergesortBottomUpFunc(data, less[T])
}

// MergesortBottomUpFunc is MergesortBottomUp with an explicit ordering.
func MergesortBottomUpFunc[T any](data []T, less func(a, b T) bool) {
	n := len(data)
	if n < 2 {
		return
	}
	aux := make([]T, 0, n)
	for width := 1; width < n; width *= 2 {
		lo, covered := 0, 0
		for {
			covered += width
			if covered >= n {
				break
			}
			mid := lo + width
			right := min(width, n-covered)
			aux = mergeRuns(aux, data, lo, mid, mid+right, less)
			lo = mid + right
			covered += right
		}
	}
}

// mergeRuns merges the adjacent sorted runs data[lo:mid] and data[mid:hi]
// through aux and copies the result back. Ties take the left element, which
// is what makes the mergesorts stable. Returns aux truncated to length zero
// so the backing array is reused by the next merge.
func mergeRuns[T any](aux, data []T, lo, mid, hi int, less func(a, b T) bool) []T {
	i, j := lo, mid
	for i < mid && j < hi {
		if less(data[j], data[i]) {
			aux = append(aux, data[j])
			j++
		} else {
			aux = append(aux, data[i])
			i++
		}
	}
	aux = append(aux, data[i:mid]...)
	aux = append(aux, data[j:hi]...)
	copy(data[lo:hi], aux)
	return aux[:0]
}
