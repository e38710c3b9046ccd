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

// less is the natural strict ordering. The non-Func entry points all
// delegate to their Func counterpart with this callback.
func less[T constraints.Ordered](a, b T) bool { return a < b }

// IsSorted reports whether data is in non-decreasing natural order.
func IsSorted[T constraints.Ordered](data []T) bool {
	return IsSortedFunc(data, less[T])
}

// IsSortedFunc reports whether data is non-decreasing under less.
func IsSortedFunc[T any](data []T, less func(a, b T) bool) bool {
	for i := 1; i < len(data); i++ {
		if less(data[i], data[i-1]) {
			return false
		}
	}
	return true
}
