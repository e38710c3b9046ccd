// Package sorts implements classic in-place comparison sorts over slices.
// Every algorithm comes in two flavors: a natural-order entry point for
// ordered element types, and a Func variant that takes an explicit
// strict-weak-ordering callback.
//
// # Algorithms
//
// The package covers the standard teaching catalog:
//   - Elementary quadratic sorts: insertion (three variants), selection,
//     bubble (three variants), gnome
//   - Shellsort with pluggable gap sequences (Hibbard, 3-smooth, Sedgewick,
//     Tokuda, extended Ciura)
//   - Mergesort: top-down recursive, top-down iterative, bottom-up iterative
//   - Heapsort: buffered sift-down and by-swap sift-down
//   - Quicksort: Lomuto and Hoare partitioning, middle-element and
//     median-of-three pivots, recursive and iterative drivers
//   - Thin wrappers over the standard library and golang.org/x/exp sorts,
//     for baseline comparisons
//
// # Ordering
//
// A Func variant's less callback must define a strict weak ordering: it
// reports whether a orders strictly before b, and equal elements compare
// false both ways. The stable algorithms (the insertion sorts, the bubble
// sorts, gnome sort, the mergesorts) keep equal elements in their original
// order; selection sort, shellsort, heapsort, and quicksort do not.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-sortbench/sorts"
//
//	func Process(data []int) {
//	    sorts.Heapsort(data) // in-place ascending sort
//	}
//
//	func ByLength(words []string) {
//	    sorts.MergesortFunc(words, func(a, b string) bool {
//	        return len(a) < len(b) // stable: equal lengths keep input order
//	    })
//	}
//
// # Choosing an Algorithm
//
// These implementations favor clarity and faithful classic behavior over
// raw speed. For production code use the standard library: slices.Sort for
// speed, slices.SortStableFunc when stability matters. The catalog returned
// by All is meant for timing runs and side-by-side comparisons; the
// quadratic algorithms are flagged so harnesses can skip them on large
// inputs.
package sorts
