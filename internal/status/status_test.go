package status

import "testing"

func TestApplyRefreshesToMaxDuration(t *testing.T) {
	var s Set
	s.Apply(Effect{Kind: Poison, Duration: 3, TickDamage: 2, TickInterval: 1})
	s.Apply(Effect{Kind: Poison, Duration: 1, TickDamage: 2, TickInterval: 1})
	if s.effects[0].Duration != 3 {
		t.Fatalf("expected refresh to keep max duration 3, got %v", s.effects[0].Duration)
	}
}

func TestApplyDoesNotStackSameKind(t *testing.T) {
	var s Set
	s.Apply(Effect{Kind: Burn, Duration: 2, TickDamage: 1, TickInterval: 1})
	s.Apply(Effect{Kind: Burn, Duration: 2, TickDamage: 1, TickInterval: 1})
	if len(s.effects) != 1 {
		t.Fatalf("expected exactly one Burn effect, got %d", len(s.effects))
	}
}

func TestMutualExclusionRemovesOpposite(t *testing.T) {
	var s Set
	s.Apply(Effect{Kind: Freeze, Duration: 3})
	s.Apply(Effect{Kind: Haste, Duration: 3})
	if s.Has(Freeze) {
		t.Fatal("Haste should have cancelled Freeze")
	}
	if !s.Has(Haste) {
		t.Fatal("Haste should be attached")
	}
}

func TestTickExpiresAtZeroDuration(t *testing.T) {
	var s Set
	s.Apply(Effect{Kind: Regen, Duration: 1, TickDamage: -5, TickInterval: 1})
	s.Tick(1.0)
	if s.Has(Regen) {
		t.Fatal("effect should be removed once duration reaches zero")
	}
}

func TestTickAccumulatesFractionalInterval(t *testing.T) {
	var s Set
	s.Apply(Effect{Kind: Poison, Duration: 10, TickDamage: 4, TickInterval: 1.0})
	net := s.Tick(0.5)
	if net != 0 {
		t.Fatalf("expected no tick damage before interval elapses, got %d", net)
	}
	net = s.Tick(0.5)
	if net != 4 {
		t.Fatalf("expected 4 damage once interval elapses, got %d", net)
	}
}

func TestTickNetsHealsAndDamageAcrossEffects(t *testing.T) {
	var s Set
	s.Apply(Effect{Kind: Poison, Duration: 5, TickDamage: 6, TickInterval: 1})
	s.Apply(Effect{Kind: Regen, Duration: 5, TickDamage: -4, TickInterval: 1})
	net := s.Tick(1.0)
	if net != 2 {
		t.Fatalf("expected net +2 damage (6 poison - 4 regen), got %d", net)
	}
}

func TestClearRemovesEverything(t *testing.T) {
	var s Set
	s.Apply(Effect{Kind: Shock, Duration: 3})
	s.Apply(Effect{Kind: Bleed, Duration: 3})
	s.Clear()
	if len(s.All()) != 0 {
		t.Fatal("Clear should empty the effect set")
	}
}
