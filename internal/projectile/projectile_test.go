package projectile

import (
	"math"
	"testing"

	"depths-of-the-abyss/internal/entity"
)

func TestNewAimsTowardTarget(t *testing.T) {
	p := New(entity.Ref{}, OwnerPlayer, 0, 0, 100, 0, 50, 10, 3.0)
	if p.VX <= 0 || math.Abs(p.VY) > 1e-9 {
		t.Fatalf("expected velocity pointed along +x, got (%v, %v)", p.VX, p.VY)
	}
}

func TestUpdateIntegratesPositionAndExpires(t *testing.T) {
	p := New(entity.Ref{}, OwnerPlayer, 0, 0, 1, 0, 100, 10, 0.5)
	alive := p.Update(0.1, nil)
	if !alive {
		t.Fatal("projectile should still be alive after 0.1s of a 0.5s lifetime")
	}
	if p.X <= 0 {
		t.Fatal("projectile should have moved in +x")
	}
	alive = p.Update(1.0, nil)
	if alive {
		t.Fatal("projectile should expire once lifetime is exhausted")
	}
}

func TestHomingDegradesWhenTargetGone(t *testing.T) {
	target := entity.Ref{Kind: entity.KindEnemy, Handle: entity.Handle{Index: 1, Gen: 1}}
	p := New(entity.Ref{}, OwnerPlayer, 0, 0, 1, 0, 50, 10, 5)
	p.HomingTarget = target

	resolve := func(ref entity.Ref) (float64, float64, bool) { return 0, 0, false }
	p.Update(0.1, resolve)
	if !p.HomingTarget.IsNil() {
		t.Fatal("homing target should clear once resolveTarget reports it's not alive")
	}
}

func TestHomingSteersTowardLiveTarget(t *testing.T) {
	target := entity.Ref{Kind: entity.KindEnemy, Handle: entity.Handle{Index: 1, Gen: 1}}
	p := New(entity.Ref{}, OwnerPlayer, 0, 0, 1, 0, 50, 10, 5)
	p.HomingTarget = target

	resolve := func(ref entity.Ref) (float64, float64, bool) { return 0, 100, true }
	startAngle := p.Rotation()
	p.Update(0.1, resolve)
	if p.Rotation() == startAngle {
		t.Fatal("expected the projectile to turn toward a live homing target")
	}
}

func TestHitTestDoesNotDoubleCountDamagedTarget(t *testing.T) {
	target := entity.Ref{Kind: entity.KindEnemy, Handle: entity.Handle{Index: 2, Gen: 1}}
	p := New(entity.Ref{}, OwnerPlayer, 0, 0, 1, 0, 50, 10, 5)
	if !p.HitTest(target, 0, 0, 10) {
		t.Fatal("expected a hit on first test at the same position")
	}
	p.MarkDamaged(target)
	if p.HitTest(target, 0, 0, 10) {
		t.Fatal("a piercing projectile should not re-hit an already damaged target")
	}
}
