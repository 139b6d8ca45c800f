package sim

import (
	"testing"

	"depths-of-the-abyss/internal/data"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewRun(12345, "normal", data.DefaultDocument())
	if err != nil {
		t.Fatalf("NewRun: %v", err)
	}
	return e
}

func TestNewRunStartsOnFloorOnePlaying(t *testing.T) {
	e := newTestEngine(t)
	if e.World.Floor != 1 {
		t.Fatalf("expected floor 1, got %d", e.World.Floor)
	}
	if e.State != Playing {
		t.Fatalf("expected initial state Playing, got %v", e.State)
	}
	events := e.DrainEvents()
	if len(events) != 1 || events[0].Kind != EventFloorGenerated {
		t.Fatalf("expected one FloorGenerated event, got %+v", events)
	}
}

func TestNewRunRejectsNilDocument(t *testing.T) {
	if _, err := NewRun(1, "normal", nil); err == nil {
		t.Fatal("expected an error for a nil data document")
	}
}

func TestTickClampsDtAndAdvancesPlaytime(t *testing.T) {
	e := newTestEngine(t)
	e.Tick(InputSnapshot{}, 10.0) // way over the 50ms clamp
	if e.World.PlaytimeSecs != maxDtSecs {
		t.Fatalf("expected playtime to advance by the clamped dt, got %f", e.World.PlaytimeSecs)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	e := newTestEngine(t)
	e.Tick(InputSnapshot{Pause: true}, 0.016)
	if e.State != Paused {
		t.Fatalf("expected Paused, got %v", e.State)
	}
	before := e.World.PlaytimeSecs
	e.Tick(InputSnapshot{}, 0.016)
	if e.World.PlaytimeSecs != before {
		t.Fatal("expected a paused tick not to advance playtime")
	}
	e.Tick(InputSnapshot{Pause: true}, 0.016)
	if e.State != Playing {
		t.Fatalf("expected pause to toggle back to Playing, got %v", e.State)
	}
}

func TestPlayerDeathTransitionsToDeathState(t *testing.T) {
	e := newTestEngine(t)
	e.World.Player.HP = 0
	e.Tick(InputSnapshot{}, 0.016)
	if e.State != Death {
		t.Fatalf("expected Death, got %v", e.State)
	}
}

func TestPlayerSwingKillsAdjacentEnemy(t *testing.T) {
	e := newTestEngine(t)
	w := e.World
	arch := w.Data.Archetypes[0]
	w.spawnEnemy(arch, 0, 0)

	hs := w.Enemies.Handles()
	if len(hs) == 0 {
		t.Fatal("expected a spawned enemy")
	}
	en, ok := w.Enemies.Get(hs[0])
	if !ok {
		t.Fatal("expected enemy to resolve")
	}
	// Player.Facing defaults to 0 radians (+X); place the enemy directly
	// ahead, within the default weapon's swing range, so the arc connects.
	en.X, en.Y = w.Player.X+10, w.Player.Y
	en.HP = 1
	before := w.Enemies.Len()

	e.Tick(InputSnapshot{Attack: true}, 0.016)

	if w.Enemies.Len() != before-1 {
		t.Fatal("expected the one-hp enemy standing in the swing's arc to die")
	}
	if w.Kills != 1 {
		t.Fatalf("expected 1 kill recorded, got %d", w.Kills)
	}
}

func TestDescendStairsAdvancesFloorDeterministically(t *testing.T) {
	e1 := newTestEngine(t)
	e1.DescendStairs()
	e2, _ := NewRun(12345, "normal", data.DefaultDocument())
	e2.DescendStairs()

	if e1.World.Floor != 2 || e2.World.Floor != 2 {
		t.Fatal("expected both engines to land on floor 2")
	}
	if e1.World.FloorData.Specials.SpawnX != e2.World.FloorData.Specials.SpawnX {
		t.Fatal("expected identical seed to produce identical floor 2 layout")
	}
}

func TestCheckpointSaveAndRollback(t *testing.T) {
	e := newTestEngine(t)
	e.World.Player.HP = 80
	e.SaveCheckpoint()

	e.World.Player.HP = 1
	if err := e.RollbackCheckpoint(); err != nil {
		t.Fatalf("RollbackCheckpoint: %v", err)
	}
	if e.World.Player.HP != 80 {
		t.Fatalf("expected HP restored to 80, got %f", e.World.Player.HP)
	}
	if e.SaveStore.Current.DeathCount != 1 {
		t.Fatalf("expected death count 1, got %d", e.SaveStore.Current.DeathCount)
	}
}

func TestSaveFullEncodesAndLoads(t *testing.T) {
	e := newTestEngine(t)
	e.World.Player.HP = 55
	blob, err := e.SaveFull()
	if err != nil {
		t.Fatalf("SaveFull: %v", err)
	}

	e2 := newTestEngine(t)
	if err := e2.Load(blob); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if e2.World.Player.HP != 55 {
		t.Fatalf("expected loaded HP 55, got %f", e2.World.Player.HP)
	}
}

func TestSceneReportsHUDAndFloor(t *testing.T) {
	e := newTestEngine(t)
	sc := e.Scene()
	if sc.HUD.Floor != 1 {
		t.Fatalf("expected HUD floor 1, got %d", sc.HUD.Floor)
	}
	if sc.Tiles.MaxX <= 0 || sc.Tiles.MaxY <= 0 {
		t.Fatal("expected non-empty tile bounds")
	}
}

func TestBossFloorSpawnsGraveWardenOnFloorFive(t *testing.T) {
	e := newTestEngine(t)
	for e.World.Floor < 5 {
		e.DescendStairs()
	}
	if e.World.Boss == nil {
		t.Fatal("expected a boss encounter on floor 5")
	}
	if e.World.Boss.ID != "grave_warden" {
		t.Fatalf("expected grave_warden on floor 5, got %s", e.World.Boss.ID)
	}
}
