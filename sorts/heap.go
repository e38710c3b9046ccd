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

// Heapsort sorts data in place by building a max-heap over the slice, then
// repeatedly swapping the root with the last heap element and sifting the
// new root down into the shrunken heap. O(n log n) on every input, not
// stable. Sift-down holds the displaced element aside and moves children up,
// writing it once at its final position.
func Heapsort[T constraints.Ordered](data []T) {
	HeapsortFunc(data, less[T])
}

// HeapsortFunc is Heapsort with an explicit ordering.
func HeapsortFunc[T any](data []T, less func(a, b T) bool) {
	n := len(data)
	if n < 2 {
		return
	}
	for parent := n / 2; parent >= 0; parent-- {
		siftDown(data, parent, n, less)
	}
	for end := n - 1; end > 0; end-- {
		data[0], data[end] = data[end], data[0]
		siftDown(data, 0, end, less)
	}
}

// HeapsortBySwap is heapsort with sift-down written as repeated
// parent-child swaps. Same comparisons and final heap shape as Heapsort,
// roughly three element moves per level instead of one.
func HeapsortBySwap[T constraints.Ordered](data []T) {
	HeapsortBySwapFunc(data, less[T])
}

// HeapsortBySwapFunc is HeapsortBySwap with an explicit ordering.
func HeapsortBySwapFunc[T any](data []T, less func(a, b T) bool) {
	n := len(data)
	if n < 2 {
		return
	}
	for parent := n / 2; parent >= 0; parent-- {
		siftDownBySwap(data, parent, n, less)
	}
	for end := n - 1; end > 0; end-- {
		data[0], data[end] = data[end], data[0]
		siftDownBySwap(data, 0, end, less)
	}
}

// siftDown restores the max-heap property for the subtree rooted at parent,
// where the heap occupies data[:size]. The displaced element is held aside
// while winning children shift up, then dropped at its final position.
func siftDown[T any](data []T, parent, size int, less func(a, b T) bool) {
	elem := data[parent]
	for {
		child := winningChild(data, parent, size, less)
		if child < 0 || !less(elem, data[child]) {
			break
		}
		data[parent] = data[child]
		parent = child
	}
	data[parent] = elem
}

// siftDownBySwap is siftDown written with full swaps at each level.
func siftDownBySwap[T any](data []T, parent, size int, less func(a, b T) bool) {
	for {
		child := winningChild(data, parent, size, less)
		if child < 0 || !less(data[parent], data[child]) {
			return
		}
		data[parent], data[child] = data[child], data[parent]
		parent = child
	}
}

// winningChild returns the index of the child of parent to compare against,
// or -1 if parent is a leaf of the heap occupying data[:size]. Of two
// children the larger wins; the right child wins ties.
func winningChild[T any](data []T, parent, size int, less func(a, b T) bool) int {
	left := 2*parent + 1
	if left >= size {
		return -1
	}
	right := left + 1
	if right < size && !less(data[right], data[left]) {
		return right
	}
	return left
}
