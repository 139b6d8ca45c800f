package entity

import "testing"

func TestInsertGetRoundTrip(t *testing.T) {
	s := NewStore[int](4)
	h := s.Insert(42)
	v, ok := s.Get(h)
	if !ok || *v != 42 {
		t.Fatalf("expected 42, got %v ok=%v", v, ok)
	}
}

func TestStaleHandleAfterRemoveAndReuse(t *testing.T) {
	s := NewStore[string](4)
	h1 := s.Insert("first")
	s.Remove(h1)
	h2 := s.Insert("second")

	if s.Alive(h1) {
		t.Fatal("h1 should be stale after removal and slot reuse")
	}
	v, ok := s.Get(h2)
	if !ok || *v != "second" {
		t.Fatalf("h2 should resolve to 'second', got %v ok=%v", v, ok)
	}
}

func TestHomingDegradeOnDeadTarget(t *testing.T) {
	s := NewStore[int](4)
	target := s.Insert(1)
	s.Remove(target)
	if s.Alive(target) {
		t.Fatal("removed target must report not-alive so homing can degrade")
	}
}

func TestEachIterationOrderIsInsertionOrder(t *testing.T) {
	s := NewStore[int](4)
	s.Insert(1)
	s.Insert(2)
	s.Insert(3)
	var seen []int
	s.Each(func(h Handle, v *int) { seen = append(seen, *v) })
	want := []int{1, 2, 3}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("iteration order mismatch: %v", seen)
		}
	}
}

func TestCompactDropsDeadSlotsFromIteration(t *testing.T) {
	s := NewStore[int](4)
	h1 := s.Insert(1)
	s.Insert(2)
	s.Remove(h1)
	s.Compact()
	count := 0
	s.Each(func(Handle, *int) { count++ })
	if count != 1 {
		t.Fatalf("expected 1 live entity after compact, got %d", count)
	}
}

func TestNilHandleNeverResolves(t *testing.T) {
	s := NewStore[int](4)
	var nilHandle Handle
	if s.Alive(nilHandle) {
		t.Fatal("nil handle should never be alive")
	}
}
