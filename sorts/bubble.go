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

// Bubble sorts data in place with full passes of adjacent swaps, stopping
// after the first pass that makes no swap. Stable, O(n^2) worst case, O(n)
// on already sorted input.
func Bubble[T constraints.Ordered](data []T) {
	BubbleFunc(data, less[T])
}

// BubbleFunc is Bubble with an explicit ordering.
func BubbleFunc[T any](data []T, less func(a, b T) bool) {
	for again := true; again; {
		again = false
		for i := 1; i < len(data); i++ {
			if less(data[i], data[i-1]) {
				data[i], data[i-1] = data[i-1], data[i]
				again = true
			}
		}
	}
}

// BubbleNonadaptive is bubble sort without early exit: it always makes n-1
// passes, shrinking the scanned range by one each pass since every pass pins
// the maximum of the range at its end. Stable.
func BubbleNonadaptive[T constraints.Ordered](data []T) {
	BubbleNonadaptiveFunc(data, less[T])
}

// BubbleNonadaptiveFunc is BubbleNonadaptive with an explicit ordering.
func BubbleNonadaptiveFunc[T any](data []T, less func(a, b T) bool) {
	for end := len(data); end > 1; end-- {
		for i := 1; i < end; i++ {
			if less(data[i], data[i-1]) {
				data[i], data[i-1] = data[i-1], data[i]
			}
		}
	}
}

// BubbleAdaptive is bubble sort that shrinks the scanned range to the
// position of the last swap made in the previous pass; everything at or
// beyond that position is already in final place. Stable, and finishes in a
// single pass on sorted input.
func BubbleAdaptive[T constraints.Ordered](data []T) {
	BubbleAdaptiveFunc(data, less[T])
}

// BubbleAdaptiveFunc is BubbleAdaptive with an explicit ordering.
func BubbleAdaptiveFunc[T any](data []T, less func(a, b T) bool) {
	for end := len(data); end > 1; {
		last := 0
		for i := 1; i < end; i++ {
			if less(data[i], data[i-1]) {
				data[i], data[i-1] = data[i-1], data[i]
				last = i
			}
		}
		end = last
	}
}
