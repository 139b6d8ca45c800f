package ai

import "testing"

func TestIdleTransitionsToChaseWithinAggroRange(t *testing.T) {
	a := NewAgent(ArchetypeSwarm, 100, 10)
	a.Update(0.1, 50, true)
	if a.State != Chase {
		t.Fatalf("expected Chase once player is within aggro range, got %v", a.State)
	}
}

func TestIdleIgnoresPlayerWithoutLineOfSight(t *testing.T) {
	a := NewAgent(ArchetypeSwarm, 100, 10)
	a.Update(0.1, 50, false)
	if a.State != Idle {
		t.Fatalf("expected to stay Idle without line of sight, got %v", a.State)
	}
}

func TestRangedArchetypeAggroesIntoRangedNotChase(t *testing.T) {
	a := NewAgent(ArchetypeRanged, 100, 10)
	a.Update(0.1, 50, true)
	if a.State != Ranged {
		t.Fatalf("expected Ranged archetype to enter Ranged state, got %v", a.State)
	}
}

func TestChaseEntersTelegraphWithinAttackRangeAndOffCooldown(t *testing.T) {
	a := NewAgent(ArchetypeSwarm, 100, 10)
	a.State = Chase
	a.Update(0.1, 5, true)
	if a.State != Telegraph {
		t.Fatalf("expected Telegraph within attack range, got %v", a.State)
	}
}

func TestChaseGivesUpBeyondOneAndHalfAggroRange(t *testing.T) {
	a := NewAgent(ArchetypeSwarm, 100, 10)
	a.State = Chase
	a.Update(0.1, 200, true)
	if a.State != Idle {
		t.Fatalf("expected to give up chase and return to Idle, got %v", a.State)
	}
}

func TestTelegraphAdvancesToAttackAfterItsWindow(t *testing.T) {
	a := NewAgent(ArchetypeSwarm, 100, 10)
	a.State = Telegraph
	a.StateTimer = telegraphSecs
	triggered := false
	for i := 0; i < 10 && !triggered; i++ {
		triggered = a.Update(telegraphSecs/9, 5, true)
	}
	if a.State != Chase {
		t.Fatalf("expected to return to Chase after attacking, got %v", a.State)
	}
	if !triggered {
		t.Fatal("expected the attack tick to report triggeredAttack=true")
	}
}

func TestAttackSetsCooldown(t *testing.T) {
	a := NewAgent(ArchetypeSwarm, 100, 10)
	a.State = Attack
	a.Update(0.01, 5, true)
	if a.AttackCooldown <= 0 {
		t.Fatal("expected attack to set a positive cooldown")
	}
}

func TestTakeDamageInterruptsToHurtAndResumes(t *testing.T) {
	a := NewAgent(ArchetypeSwarm, 100, 10)
	a.State = Chase
	a.TakeDamage()
	if a.State != Hurt {
		t.Fatalf("expected Hurt immediately after taking damage, got %v", a.State)
	}
	a.Update(hurtSecs+0.01, 5, true)
	if a.State != Chase {
		t.Fatalf("expected to resume Chase after the hurt stagger, got %v", a.State)
	}
}

func TestDeadIsTerminal(t *testing.T) {
	a := NewAgent(ArchetypeSwarm, 100, 10)
	a.Kill()
	a.TakeDamage()
	a.Update(1, 0, true)
	if a.State != Dead {
		t.Fatal("Dead should be a terminal state impervious to further transitions")
	}
}

func TestPatrolStepsOrbitWithinRadius(t *testing.T) {
	a := NewAgent(ArchetypePatrol, 50, 10)
	a.AnchorX, a.AnchorY, a.PatrolRadius = 0, 0, 10
	dx, dy := a.patrolStep(5, 0)
	if dx == 0 && dy == 0 {
		t.Fatal("expected a nonzero orbit direction within patrol radius")
	}
}

func TestPatrolReturnsToAnchorBeyondRadius(t *testing.T) {
	a := NewAgent(ArchetypePatrol, 50, 10)
	a.AnchorX, a.AnchorY, a.PatrolRadius = 0, 0, 10
	dx, dy := a.patrolStep(100, 0)
	if dx >= 0 {
		t.Fatalf("expected to steer back toward the anchor (negative x), got dx=%v", dx)
	}
	_ = dy
}

func TestSwarmStepRepelsFromCrowdingSiblings(t *testing.T) {
	a := NewAgent(ArchetypeSwarm, 100, 10)
	_, dyAlone := a.swarmStep(0, 0, 100, 0, nil, nil)
	_, dyCrowded := a.swarmStep(0, 0, 100, 0, []float64{0}, []float64{5})
	if dyCrowded >= dyAlone {
		t.Fatal("expected a sibling crowding from above to push the steering direction downward")
	}
}

func TestAmbushStaysHiddenUntilTriggerRadius(t *testing.T) {
	a := NewAgent(ArchetypeAmbush, 100, 10)
	a.TriggerRadius = 20
	dx, dy := a.ambushStep(0, 0, 100, 0)
	if dx != 0 || dy != 0 {
		t.Fatal("expected to stay hidden outside the trigger radius")
	}
	if a.Triggered() {
		t.Fatal("should not be triggered yet")
	}
	dx, _ = a.ambushStep(0, 0, 10, 0)
	if dx == 0 {
		t.Fatal("expected to burst toward the player once within trigger radius")
	}
	if !a.Triggered() {
		t.Fatal("expected ambush to latch triggered")
	}
}

func TestRangedStepFleesWhenTooClose(t *testing.T) {
	a := NewAgent(ArchetypeRanged, 100, 10)
	a.PreferredMin, a.PreferredMax = 30, 80
	dx, _ := a.rangedStep(0, 0, 10, 0)
	if dx >= 0 {
		t.Fatalf("expected to flee away from a too-close player (negative x), got %v", dx)
	}
}

func TestRangedStepClosesInWhenTooFar(t *testing.T) {
	a := NewAgent(ArchetypeRanged, 100, 10)
	a.PreferredMin, a.PreferredMax = 30, 80
	dx, _ := a.rangedStep(0, 0, 100, 0)
	if dx <= 0 {
		t.Fatalf("expected to close in on a too-far player (positive x), got %v", dx)
	}
}

func TestRangedStepHoldsWithinBand(t *testing.T) {
	a := NewAgent(ArchetypeRanged, 100, 10)
	a.PreferredMin, a.PreferredMax = 30, 80
	dx, dy := a.rangedStep(0, 0, 50, 0)
	if dx != 0 || dy != 0 {
		t.Fatal("expected to hold position within the preferred distance band")
	}
}

func TestGuardStaysNearAnchorBeyondPatrolRadius(t *testing.T) {
	a := NewAgent(ArchetypeGuard, 100, 10)
	a.AnchorX, a.AnchorY, a.PatrolRadius = 0, 0, 20
	dx, dy := a.guardStep(0, 0, 200, 0)
	if dx != 0 || dy != 0 {
		t.Fatal("expected to hold position at its anchor when the player is out of guard range")
	}
}

func TestGuardChasesWithinAnchoredRoom(t *testing.T) {
	a := NewAgent(ArchetypeGuard, 100, 10)
	a.AnchorX, a.AnchorY, a.PatrolRadius = 0, 0, 20
	dx, _ := a.guardStep(0, 0, 10, 0)
	if dx <= 0 {
		t.Fatal("expected to chase a player within its anchored room")
	}
}
