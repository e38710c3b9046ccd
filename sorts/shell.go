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

// Shell sorts data in place with shellsort: for each gap g, taken largest
// first, it insertion-sorts the g interleaved subsequences whose elements
// lie g apart. The final gap is always 1, so the last pass is a plain
// insertion sort over nearly ordered data. A nil gaps falls back to
// CiuraGaps. Not stable.
func Shell[T constraints.Ordered](data []T, gaps GapSequence) {
	ShellFunc(data, less[T], gaps)
}

// ShellFunc is Shell with an explicit ordering.
func ShellFunc[T any](data []T, less func(a, b T) bool, gaps GapSequence) {
	if len(data) < 2 {
		return
	}
	if gaps == nil {
		gaps = CiuraGaps
	}
	seq := gaps(len(data))
	for k := len(seq) - 1; k >= 0; k-- {
		gap := seq[k]
		for start := 0; start < gap; start++ {
			insertionSortStride(data, start, gap, less)
		}
	}
}

// insertionSortStride insertion-sorts the subsequence data[start],
// data[start+gap], data[start+2*gap], ... in place.
func insertionSortStride[T any](data []T, start, gap int, less func(a, b T) bool) {
	for i := start + gap; i < len(data); i += gap {
		key := data[i]
		j := i
		for j >= start+gap && less(key, data[j-gap]) {
			data[j] = data[j-gap]
			j -= gap
		}
		data[j] = key
	}
}
