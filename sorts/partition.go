package sorts

// lomuto partitions data[lo:hi] around the pivot value sitting at data[lo].
// One cursor sweeps the range; elements ordering before the pivot are
// swapped behind a boundary that trails it. The pivot is then swapped onto
// the boundary and its final index returned: everything left of it orders
// before the pivot, nothing right of it does.
func lomuto[T any](data []T, lo, hi int, less func(a, b T) bool) int {
	pivot := data[lo]
	mid := lo
	for cur := lo + 1; cur < hi; cur++ {
		if less(data[cur], pivot) {
			mid++
			data[mid], data[cur] = data[cur], data[mid]
		}
	}
	data[lo], data[mid] = data[mid], data[lo]
	return mid
}

// hoare partitions data[lo:hi] around the pivot value sitting at data[lo].
// Two cursors scan inward, stopping on elements that do not order strictly
// on their own side, and swap each such pair. Returns the index j where the
// cursors crossed: data[lo:j+1] holds elements <= pivot, data[j+1:hi]
// elements >= pivot, and the pivot itself can end up in either half. The
// pivot value doubles as the left sentinel, and the first swap plants a copy
// of it as the right sentinel, so neither cursor leaves the range.
func hoare[T any](data []T, lo, hi int, less func(a, b T) bool) int {
	pivot := data[lo]
	i, j := lo-1, hi
	for {
		for {
			i++
			if !less(data[i], pivot) {
				break
			}
		}
		for {
			j--
			if !less(pivot, data[j]) {
				break
			}
		}
		if i >= j {
			return j
		}
		data[i], data[j] = data[j], data[i]
	}
}

func midpoint(lo, hi int) int { return int(uint(lo+hi) >> 1) }

// swapMidToFront moves the middle element of data[lo:hi] to data[lo], where
// the partition functions expect their pivot.
func swapMidToFront[T any](data []T, lo, hi int) {
	m := midpoint(lo, hi)
	data[lo], data[m] = data[m], data[lo]
}

// swapMedian3ToFront moves the median of the first, middle and last
// elements of data[lo:hi] to data[lo].
func swapMedian3ToFront[T any](data []T, lo, hi int, less func(a, b T) bool) {
	m := median3(data, lo, midpoint(lo, hi), hi-1, less)
	data[lo], data[m] = data[m], data[lo]
}

// median3 returns the index of the median of data[a], data[b], data[c]
// using at most three comparisons.
func median3[T any](data []T, a, b, c int, less func(x, y T) bool) int {
	if less(data[a], data[b]) {
		switch {
		case !less(data[a], data[c]):
			return a
		case less(data[c], data[b]):
			return c
		default:
			return b
		}
	}
	switch {
	case !less(data[b], data[c]):
		return b
	case less(data[c], data[a]):
		return c
	default:
		return a
	}
}
