package bench

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestFixedCases pins the hand-written suite: every run starts from the
// same literals, ending with the degenerate single and empty slices.
func TestFixedCases(t *testing.T) {
	got := FixedCases()

	want := [][]int{
		{111, 333, 222},
		{3, 7, 1, 5, 2, -6, 15, 4, 33, -5},
		{9, 9, 1, 8, 3, 0, 2, 0, 7, 15, 4, 3, 3},
		{2, 1},
		{1, 2},
		{5},
		{},
	}
	if len(got) != len(want) {
		t.Fatalf("FixedCases returned %d cases, want %d", len(got), len(want))
	}
	for i, c := range got {
		if c.Kind != "literal" {
			t.Errorf("case %d kind = %q, want literal", i, c.Kind)
		}
		if diff := cmp.Diff(want[i], c.Data); diff != "" {
			t.Errorf("case %d data mismatch (-want +got):\n%s", i, diff)
		}
	}
}

// TestRandomCase checks length, provenance and seed determinism.
func TestRandomCase(t *testing.T) {
	a := RandomCase(100, rand.New(rand.NewSource(3)))
	b := RandomCase(100, rand.New(rand.NewSource(3)))

	if a.Kind != "random" {
		t.Errorf("kind = %q, want random", a.Kind)
	}
	if len(a.Data) != 100 {
		t.Errorf("len = %d, want 100", len(a.Data))
	}
	if !slices.Equal(a.Data, b.Data) {
		t.Errorf("same seed produced different data")
	}

	c := RandomCase(100, rand.New(rand.NewSource(4)))
	if slices.Equal(a.Data, c.Data) {
		t.Errorf("different seeds produced identical data")
	}
}

// TestCases checks suite assembly order: fixed cases first, then one random
// case per size.
func TestCases(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	cases := Cases([]int{2, 5}, rng)

	fixed := len(FixedCases())
	if len(cases) != fixed+2 {
		t.Fatalf("Cases returned %d cases, want %d", len(cases), fixed+2)
	}
	if n := len(cases[fixed].Data); n != 2 {
		t.Errorf("first random case has %d elements, want 2", n)
	}
	if n := len(cases[fixed+1].Data); n != 5 {
		t.Errorf("second random case has %d elements, want 5", n)
	}
	for _, c := range cases[fixed:] {
		if c.Kind != "random" {
			t.Errorf("random case kind = %q", c.Kind)
		}
	}
}
