package projectile

import "testing"

func TestSingleShotFiresExactlyAtExpiry(t *testing.T) {
	a := NewSingleShot(0, 0, 50, 20, 0, OwnerPlayer, 0)
	deal, alive := a.Tick(0.001)
	if !deal {
		t.Fatal("single-shot AoE with no delay should fire on its first tick")
	}
	if alive {
		t.Fatal("single-shot AoE should expire after its pulse")
	}
}

func TestDelayedSingleShotWaitsBeforeFiring(t *testing.T) {
	a := NewSingleShot(0, 0, 50, 20, 0, OwnerPlayer, 1.0)
	deal, alive := a.Tick(0.5)
	if deal {
		t.Fatal("should not deal damage while still in its delay window")
	}
	if !alive {
		t.Fatal("should still be alive during its delay window")
	}
}

func TestPeriodicTicksAtInterval(t *testing.T) {
	a := NewPeriodic(0, 0, 50, 5, 0, OwnerEnemy, 0, 1.0, 3.0)
	deal, alive := a.Tick(0.9)
	if deal || !alive {
		t.Fatal("should not tick before its interval elapses")
	}
	deal, alive = a.Tick(0.2)
	if !deal || !alive {
		t.Fatal("should tick once the interval elapses, while still alive")
	}
}

func TestPeriodicExpiresAfterLifetime(t *testing.T) {
	a := NewPeriodic(0, 0, 50, 5, 0, OwnerEnemy, 0, 1.0, 1.5)
	a.Tick(1.0)
	_, alive := a.Tick(1.0)
	if alive {
		t.Fatal("periodic AoE should expire once its lifetime is exhausted")
	}
}

func TestContainsRadiusCheck(t *testing.T) {
	a := NewSingleShot(0, 0, 10, 20, 0, OwnerPlayer, 0)
	if !a.Contains(5, 5) {
		t.Fatal("point within radius should be contained")
	}
	if a.Contains(100, 100) {
		t.Fatal("point far outside radius should not be contained")
	}
}
