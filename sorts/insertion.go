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

// Insertion sorts data in place by growing a sorted prefix: each element is
// held aside while larger prefix elements shift right, then dropped into the
// gap. Stable, O(n^2) worst case, O(n) on already sorted input.
func Insertion[T constraints.Ordered](data []T) {
	InsertionFunc(data, less[T])
}

// InsertionFunc is Insertion with an explicit ordering.
func InsertionFunc[T any](data []T, less func(a, b T) bool) {
	for i := 1; i < len(data); i++ {
		key := data[i]
		j := i - 1
		for j >= 0 && less(key, data[j]) {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = key
	}
}

// InsertionBySwap is insertion sort written with adjacent swaps instead of a
// held-aside element. Same comparisons and stability as Insertion, roughly
// three element moves per shift instead of one.
func InsertionBySwap[T constraints.Ordered](data []T) {
	InsertionBySwapFunc(data, less[T])
}

// InsertionBySwapFunc is InsertionBySwap with an explicit ordering.
func InsertionBySwapFunc[T any](data []T, less func(a, b T) bool) {
	for i := 1; i < len(data); i++ {
		for j := i; j > 0 && less(data[j], data[j-1]); j-- {
			data[j], data[j-1] = data[j-1], data[j]
		}
	}
}

// BinaryInsertion is insertion sort with the insertion point located by
// binary search, cutting comparisons to O(n log n). Element shifts are
// unchanged, so the sort stays quadratic. Stable.
func BinaryInsertion[T constraints.Ordered](data []T) {
	BinaryInsertionFunc(data, less[T])
}

// BinaryInsertionFunc is BinaryInsertion with an explicit ordering.
func BinaryInsertionFunc[T any](data []T, less func(a, b T) bool) {
	for i := 1; i < len(data); i++ {
		key := data[i]
		// Find the first position in data[:i] whose element orders after
		// key. Inserting there keeps equal elements in input order.
		lo, hi := 0, i
		for lo < hi {
			mid := int(uint(lo+hi) >> 1)
			if less(key, data[mid]) {
				hi = mid
			} else {
				lo = mid + 1
			}
		}
		copy(data[lo+1:i+1], data[lo:i])
		data[lo] = key
	}
}
