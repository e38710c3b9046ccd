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

import "math"

// A GapSequence generates shellsort gaps for an input of the given size.
// The returned gaps are strictly increasing, every gap is less than size,
// and the first gap is 1 whenever the slice has anything to sort. Shell
// consumes the sequence largest gap first. For size <= 1 the sequence is
// empty and shellsort degenerates to a no-op.
type GapSequence func(size int) []int

// HibbardGaps generates gaps of the form 2^k - 1: 1, 3, 7, 15, 31, ...
// Consecutive gapped passes share no positions, which gives the classic
// O(n^(3/2)) bound.
func HibbardGaps(size int) []int {
	var gaps []int
	for g := 1; g < size; g = g*2 + 1 {
		gaps = append(gaps, g)
	}
	return gaps
}

// ThreeSmoothGaps generates the numbers of the form 2^p * 3^q in order:
// 1, 2, 3, 4, 6, 8, 9, 12, 16, 18, 24, 27, ... (Pratt's sequence). Shellsort
// over it runs in O(n log^2 n), at the cost of many passes.
func ThreeSmoothGaps(size int) []int {
	var gaps []int
	// Merge the streams 2*aux[i2] and 3*aux[i3] over the sequence itself.
	aux := []int{1}
	i2, i3 := 0, 0
	for aux[len(aux)-1] < size {
		gaps = append(gaps, aux[len(aux)-1])
		two, three := 2*aux[i2], 3*aux[i3]
		if two <= three {
			i2++
		}
		if three <= two {
			i3++
		}
		if two < three {
			aux = append(aux, two)
		} else {
			aux = append(aux, three)
		}
	}
	return gaps
}

// SedgewickGaps generates Sedgewick's 1986 sequence, interleaving
// 9*(4^k - 2^k) + 1 with 4^k - 3*2^k + 1 (k >= 2):
// 1, 5, 19, 41, 109, 209, 505, 929, 2161, ...
func SedgewickGaps(size int) []int {
	var gaps []int
	p2a, p4a := 1, 1  // 2^k, 4^k for the first formula, k from 0
	p2b, p4b := 4, 16 // 2^k, 4^k for the second formula, k from 2
	a := 9*(p4a-p2a) + 1
	b := p4b - 3*p2b + 1
	for {
		g := a
		if b < a {
			g = b
		}
		if g >= size {
			return gaps
		}
		gaps = append(gaps, g)
		if g == a {
			p2a *= 2
			p4a *= 4
			a = 9*(p4a-p2a) + 1
		} else {
			p2b *= 2
			p4b *= 4
			b = p4b - 3*p2b + 1
		}
	}
}

// TokudaGaps generates Tokuda's sequence h(k) = ceil((9*(9/4)^k - 4) / 5),
// computed incrementally as h <- 2.25*h + 1 starting from 1:
// 1, 4, 9, 20, 46, 103, 233, 525, 1182, ...
func TokudaGaps(size int) []int {
	var gaps []int
	for h := 1.0; ; h = h*2.25 + 1 {
		g := int(math.Ceil(h))
		if g >= size {
			return gaps
		}
		gaps = append(gaps, g)
	}
}

// ciuraTerms are Ciura's empirically derived gaps (2001).
var ciuraTerms = [...]int{1, 4, 10, 23, 57, 132, 301, 701, 1750}

// CiuraGaps generates Ciura's sequence, extended past its published terms by
// g <- floor(2.25*g): 1, 4, 10, 23, 57, 132, 301, 701, 1750, 3937, 8858, ...
func CiuraGaps(size int) []int {
	var gaps []int
	g := 1
	for _, g = range ciuraTerms {
		if g >= size {
			return gaps
		}
		gaps = append(gaps, g)
	}
	for {
		g = g * 9 / 4
		if g >= size {
			return gaps
		}
		gaps = append(gaps, g)
	}
}
