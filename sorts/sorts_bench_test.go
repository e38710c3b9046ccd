package sorts

import (
	"math/rand"
	"slices"
	"testing"
)

// benchmarkSort times fn over the same random input, restored before every
// iteration so the timing includes no already-sorted fast paths.
func benchmarkSort(b *testing.B, n int, fn func([]int)) {
	rng := rand.New(rand.NewSource(1))
	ref := make([]int, n)
	for i := range ref {
		ref[i] = rng.Int()
	}
	data := make([]int, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		fn(data)
	}
}

// Quadratic sorts stay at n=1000; a benchmark run has no skip flag.

func BenchmarkInsertion_1000(b *testing.B) {
	benchmarkSort(b, 1000, Insertion[int])
}

func BenchmarkInsertionBySwap_1000(b *testing.B) {
	benchmarkSort(b, 1000, InsertionBySwap[int])
}

func BenchmarkBinaryInsertion_1000(b *testing.B) {
	benchmarkSort(b, 1000, BinaryInsertion[int])
}

func BenchmarkSelection_1000(b *testing.B) {
	benchmarkSort(b, 1000, Selection[int])
}

func BenchmarkBubble_1000(b *testing.B) {
	benchmarkSort(b, 1000, Bubble[int])
}

func BenchmarkGnome_1000(b *testing.B) {
	benchmarkSort(b, 1000, Gnome[int])
}

func BenchmarkShellHibbard_10000(b *testing.B) {
	benchmarkSort(b, 10000, func(data []int) { Shell(data, HibbardGaps) })
}

func BenchmarkShellTokuda_10000(b *testing.B) {
	benchmarkSort(b, 10000, func(data []int) { Shell(data, TokudaGaps) })
}

func BenchmarkShellCiura_10000(b *testing.B) {
	benchmarkSort(b, 10000, func(data []int) { Shell(data, CiuraGaps) })
}

func BenchmarkMergesort_10000(b *testing.B) {
	benchmarkSort(b, 10000, Mergesort[int])
}

func BenchmarkMergesortIterative_10000(b *testing.B) {
	benchmarkSort(b, 10000, MergesortIterative[int])
}

func BenchmarkMergesortBottomUp_10000(b *testing.B) {
	benchmarkSort(b, 10000, MergesortBottomUp[int])
}

func BenchmarkHeapsort_10000(b *testing.B) {
	benchmarkSort(b, 10000, Heapsort[int])
}

func BenchmarkHeapsortBySwap_10000(b *testing.B) {
	benchmarkSort(b, 10000, HeapsortBySwap[int])
}

func BenchmarkQuicksortLomuto_10000(b *testing.B) {
	benchmarkSort(b, 10000, QuicksortLomuto[int])
}

func BenchmarkQuicksortLomutoMedian3_10000(b *testing.B) {
	benchmarkSort(b, 10000, QuicksortLomutoMedian3[int])
}

func BenchmarkQuicksortHoare_10000(b *testing.B) {
	benchmarkSort(b, 10000, QuicksortHoare[int])
}

func BenchmarkStdSort_10000(b *testing.B) {
	benchmarkSort(b, 10000, StdSort[int])
}

func BenchmarkStdHeapsort_10000(b *testing.B) {
	benchmarkSort(b, 10000, StdHeapsort[int])
}

func BenchmarkSlicesSort_10000(b *testing.B) {
	benchmarkSort(b, 10000, SlicesSort[int])
}

// BenchmarkSlicesSortStdlibReference pins the raw stdlib call so wrapper
// overhead shows up if it ever appears.
func BenchmarkSlicesSortStdlibReference_10000(b *testing.B) {
	benchmarkSort(b, 10000, func(data []int) { slices.Sort(data) })
}
