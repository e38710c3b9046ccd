package sorts

import "golang.org/x/exp/constraints"

// Selection sorts data in place by repeatedly swapping the minimum of the
// unsorted suffix into place. Exactly n-1 swaps, O(n^2) comparisons on every
// input, not stable.
func Selection[T constraints.Ordered](data []T) {
	SelectionFunc(data, less[T])
}

// SelectionFunc is Selection with an explicit ordering.
func SelectionFunc[T any](data []T, less func(a, b T) bool) {
	for i := 0; i < len(data)-1; i++ {
		min := i
		for j := i + 1; j < len(data); j++ {
			if less(data[j], data[min]) {
				min = j
			}
		}
		data[i], data[min] = data[min], data[i]
	}
}
