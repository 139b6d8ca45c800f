package playerctl

import (
	"testing"

	"depths-of-the-abyss/internal/tilegrid"
)

func TestCanDodgeRequiresStaminaAndNotOnCooldown(t *testing.T) {
	c := NewController(0, 0, 100, 100, 100, 100)
	if !c.CanDodge() {
		t.Fatal("a fresh controller with full stamina should be able to dodge")
	}
	c.Stamina = 10
	if c.CanDodge() {
		t.Fatal("should not be able to dodge without enough stamina")
	}
}

func TestStartDodgeGrantsInvulnAndConsumesStamina(t *testing.T) {
	c := NewController(0, 0, 100, 100, 100, 100)
	c.StartDodge(1, 0)
	if !c.IsInvulnerable() {
		t.Fatal("expected i-frames immediately after starting a dodge")
	}
	if c.Stamina != 100-DodgeStaminaCost {
		t.Fatalf("expected stamina reduced by dodge cost, got %v", c.Stamina)
	}
}

func TestStartDodgeAppliesMinimumImpulseWhenIdle(t *testing.T) {
	c := NewController(0, 0, 100, 100, 100, 100)
	c.StartDodge(0, 0)
	if c.DodgeDirX == 0 && c.DodgeDirY == 0 {
		t.Fatal("expected a non-zero dodge direction even when idle")
	}
}

func TestInvulnerabilityExpiresAfterTicking(t *testing.T) {
	c := NewController(0, 0, 100, 100, 100, 100)
	c.StartDodge(1, 0)
	c.TickTimers(DodgeInvulnSecs + 0.01)
	if c.IsInvulnerable() {
		t.Fatal("i-frames should expire after their duration")
	}
}

func TestParryWindowAbsorbsAndRefundsStamina(t *testing.T) {
	c := NewController(0, 0, 100, 100, 100, 50)
	c.OpenParryWindow()
	if !c.InParryWindow() {
		t.Fatal("expected parry window open immediately after trigger")
	}
	c.ResolveParry()
	if c.InParryWindow() {
		t.Fatal("parry window should close once resolved")
	}
	if c.Stamina != 50+ParryRefund {
		t.Fatalf("expected stamina refunded by ParryRefund, got %v", c.Stamina)
	}
}

func TestComboCounterResetsAfterWindowLapses(t *testing.T) {
	c := NewController(0, 0, 100, 100, 100, 100)
	idx := c.RegisterSwing(0.5, 5)
	if idx != 0 {
		t.Fatalf("expected first swing to read multiplier index 0, got %d", idx)
	}
	idx = c.RegisterSwing(0.5, 5)
	if idx != 1 {
		t.Fatalf("expected chained swing to read multiplier index 1, got %d", idx)
	}
	c.TickTimers(0.6)
	if c.ComboCounter != 0 {
		t.Fatal("combo counter should reset to zero once the window lapses")
	}
}

func TestRegisterSwingWrapsAfterMaxHits(t *testing.T) {
	c := NewController(0, 0, 100, 100, 100, 100)
	var got []int
	for i := 0; i < 6; i++ {
		got = append(got, c.RegisterSwing(0.5, 5))
	}
	want := []int{0, 1, 2, 3, 4, 0}
	for i, w := range want {
		if got[i] != w {
			t.Fatalf("swing %d: expected multiplier index %d, got %d (%v)", i, w, got[i], got)
		}
	}
}

func TestRegenerateResourcesSkipsStaminaWhileDodging(t *testing.T) {
	c := NewController(0, 0, 100, 100, 100, 100)
	c.Stamina = DodgeStaminaCost
	c.StartDodge(1, 0)
	c.RegenerateResources(1.0, false, false)
	if c.Stamina != 0 {
		t.Fatal("stamina should not regenerate while dodging")
	}
}

func TestHPRegenOnlyNearCampfire(t *testing.T) {
	c := NewController(0, 0, 100, 100, 100, 100)
	c.HP = 50
	c.RegenerateResources(1.0, false, false)
	if c.HP != 50 {
		t.Fatal("hp should not regen away from a campfire")
	}
	c.RegenerateResources(1.0, false, true)
	if c.HP <= 50 {
		t.Fatal("hp should regen near a campfire")
	}
}

func TestMoveSlidesAlongWallAxisSeparated(t *testing.T) {
	g := tilegrid.New(10, 10)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			g.Set(x, y, tilegrid.Tile{Kind: tilegrid.Floor})
		}
	}
	// Wall off the cell directly to the right of center so moving
	// diagonally right+down should still allow the downward component.
	g.Set(6, 5, tilegrid.Tile{Kind: tilegrid.Wall})

	startX, startY := tilegrid.TileToPixel(5, 5)
	// Start near the tile's right edge so the X step reaches the wall.
	startX += 11
	c := NewController(startX, startY, 32, 100, 100, 100)
	c.Move(1, 1, 0.1, g, 4)

	if c.X != startX {
		t.Fatal("expected the X component of movement to be blocked by the wall")
	}
	if c.Y == startY {
		t.Fatal("expected the Y component of movement to still apply when X is blocked")
	}
}
