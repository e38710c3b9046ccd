package sorts

import "golang.org/x/exp/constraints"

// Gnome sorts data in place with a single position marker: it walks forward
// while adjacent elements are in order and swaps-and-steps-back when they
// are not. Equivalent to insertion sort by swapping, with no nested loop.
// Stable, O(n^2) worst case, O(n) on already sorted input.
func Gnome[T constraints.Ordered](data []T) {
	GnomeFunc(data, less[T])
}

// GnomeFunc is Gnome with an explicit ordering.
func GnomeFunc[T any](data []T, less func(a, b T) bool) {
	for pos := 0; pos < len(data); {
		if pos == 0 || !less(data[pos], data[pos-1]) {
			pos++
		} else {
			data[pos], data[pos-1] = data[pos-1], data[pos]
			pos--
		}
	}
}
