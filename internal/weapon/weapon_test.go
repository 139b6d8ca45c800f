package weapon

import (
	"testing"

	"depths-of-the-abyss/internal/entity"
)

func TestGetFallsBackToFistsOnUnknownID(t *testing.T) {
	w := Get(DefaultTable, "nonexistent-weapon")
	if w.ID != "fists" {
		t.Fatalf("expected fallback to fists, got %q", w.ID)
	}
}

func TestGetReturnsExactMatch(t *testing.T) {
	w := Get(DefaultTable, "greataxe")
	if w.ID != "greataxe" || w.Bonus != BonusCleave {
		t.Fatalf("expected greataxe with cleave bonus, got %+v", w)
	}
}

func TestMultiplierForClampsRange(t *testing.T) {
	if MultiplierFor(-1) != ComboMultipliers[0] {
		t.Fatal("negative combo index should clamp to index 0")
	}
	if MultiplierFor(99) != ComboMultipliers[4] {
		t.Fatal("large combo index should clamp to the final tier")
	}
}

func TestNewSwingSetsActiveWindow(t *testing.T) {
	w := Get(DefaultTable, "dagger")
	s := NewSwing(entity.Ref{}, w, 0, 0, 0, 1)
	if !s.Active() {
		t.Fatal("a freshly triggered swing should be active")
	}
	if s.TimeRemaining != 1.0/w.SwingsPerS {
		t.Fatalf("expected window 1/SwingsPerS, got %v", s.TimeRemaining)
	}
}

func TestSwingMarksDamagedOnce(t *testing.T) {
	w := Get(DefaultTable, "fists")
	target := entity.Ref{}
	s := NewSwing(entity.Ref{}, w, 0, 0, 0, 1)
	if s.AlreadyDamaged(target) {
		t.Fatal("target should not be marked damaged before any hit")
	}
	s.MarkDamaged(target)
	if !s.AlreadyDamaged(target) {
		t.Fatal("target should be marked damaged after MarkDamaged")
	}
}

func TestSwingTickExpires(t *testing.T) {
	w := Get(DefaultTable, "fists")
	s := NewSwing(entity.Ref{}, w, 0, 0, 0, 1)
	s.Tick(10) // far longer than any swing window
	if s.Active() {
		t.Fatal("swing should no longer be active once its window elapses")
	}
}
