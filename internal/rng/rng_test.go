package rng

import "testing"

func TestDeterministicReplay(t *testing.T) {
	a := New(12345)
	b := New(12345)
	for i := 0; i < 100; i++ {
		va := a.NextF64()
		vb := b.NextF64()
		if va != vb {
			t.Fatalf("streams diverged at step %d: %v != %v", i, va, vb)
		}
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := New(1)
	b := New(2)
	same := true
	for i := 0; i < 20; i++ {
		if a.NextF64() != b.NextF64() {
			same = false
			break
		}
	}
	if same {
		t.Fatal("expected different seeds to diverge")
	}
}

func TestAIStreamIndependentOfGeneration(t *testing.T) {
	genSeed := uint64(42)
	gen := New(genSeed)
	ai := AIStream(genSeed)

	genVals := make([]float64, 10)
	for i := range genVals {
		genVals[i] = gen.NextF64()
	}

	// Replay generation stream alone — must be unaffected by whether
	// the AI stream was ever consumed.
	gen2 := New(genSeed)
	_ = AIStream(genSeed) // constructing it must not perturb gen2's seed derivation
	for i := 0; i < 10; i++ {
		if gen2.NextF64() != genVals[i] {
			t.Fatalf("generation stream perturbed by AI stream construction at %d", i)
		}
	}
	_ = ai
}

func TestFloorSeedFormula(t *testing.T) {
	if got := FloorSeed(100, 3); got != 100+3*1000 {
		t.Fatalf("FloorSeed(100,3) = %d, want %d", got, 100+3000)
	}
}

func TestRangeIntBounds(t *testing.T) {
	s := New(7)
	for i := 0; i < 1000; i++ {
		v := s.RangeInt(5, 5)
		if v != 5 {
			t.Fatalf("RangeInt(5,5) = %d", v)
		}
	}
	s2 := New(7)
	for i := 0; i < 1000; i++ {
		v := s2.RangeInt(2, 9)
		if v < 2 || v > 9 {
			t.Fatalf("RangeInt(2,9) out of bounds: %d", v)
		}
	}
}

func TestShuffleInPlacePermutes(t *testing.T) {
	s := New(99)
	items := []int{1, 2, 3, 4, 5, 6, 7, 8}
	before := append([]int(nil), items...)
	ShuffleInPlace(s, items)
	if sortIntsEqual(sortInts(items), sortInts(before)) == false {
		t.Fatal("shuffle changed the multiset of elements")
	}
}

func sortIntsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestWeightedChooseRespectsZeroWeights(t *testing.T) {
	s := New(3)
	weights := []int{0, 0, 5, 0}
	for i := 0; i < 50; i++ {
		idx := WeightedChoose(s, weights)
		if idx != 2 {
			t.Fatalf("WeightedChoose should always pick index 2, got %d", idx)
		}
	}
}
