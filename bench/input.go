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

package bench

import "math/rand"

// A Case is one input slice the harness feeds to every algorithm. Kind
// records where the data came from and only shows up in diagnostics; the
// report identifies cases by length and, when small, contents.
type Case struct {
	Kind string
	Data []int
}

// DefaultSizes are the random input lengths a plain run exercises, from
// trivially small to large enough that quadratic algorithms need skipping.
var DefaultSizes = []int{6, 1000, 10000, 100000, 1000000}

// FixedCases returns the hand-written inputs every run starts with: known
// unsorted slices, duplicates, both two-element orders, a singleton and an
// empty slice.
func FixedCases() []Case {
	return []Case{
		{Kind: "literal", Data: []int{111, 333, 222}},
		{Kind: "literal", Data: []int{3, 7, 1, 5, 2, -6, 15, 4, 33, -5}},
		{Kind: "literal", Data: []int{9, 9, 1, 8, 3, 0, 2, 0, 7, 15, 4, 3, 3}},
		{Kind: "literal", Data: []int{2, 1}},
		{Kind: "literal", Data: []int{1, 2}},
		{Kind: "literal", Data: []int{5}},
		{Kind: "literal", Data: []int{}},
	}
}

// RandomCase draws n ints from the full int range.
func RandomCase(n int, rng *rand.Rand) Case {
	data := make([]int, n)
	for i := range data {
		data[i] = int(rng.Uint64())
	}
	return Case{Kind: "random", Data: data}
}

// Cases assembles the standard suite: the fixed cases followed by one
// random case per requested size.
func Cases(sizes []int, rng *rand.Rand) []Case {
	cases := FixedCases()
	for _, n := range sizes {
		cases = append(cases, RandomCase(n, rng))
	}
	return cases
}
