package data

import (
	"testing"

	"depths-of-the-abyss/internal/simerr"
)

func TestDefaultDocumentHasDeclaredCounts(t *testing.T) {
	d := DefaultDocument()
	if len(d.Armor) != 7 {
		t.Fatalf("expected 7 armor slots, got %d", len(d.Armor))
	}
	if len(d.Consumables) != 8 {
		t.Fatalf("expected 8 consumable kinds, got %d", len(d.Consumables))
	}
	if len(d.Materials) != 8 {
		t.Fatalf("expected 8 material kinds, got %d", len(d.Materials))
	}
	if len(d.LootTables) != 4 {
		t.Fatalf("expected 4 loot tables, got %d", len(d.LootTables))
	}
	if len(d.Archetypes) != 25 {
		t.Fatalf("expected 25 enemy archetypes, got %d", len(d.Archetypes))
	}
	if len(d.Bosses) != 5 {
		t.Fatalf("expected 5 boss definitions, got %d", len(d.Bosses))
	}
	if len(d.Weapons) != 8 {
		t.Fatalf("expected 8 weapon types, got %d", len(d.Weapons))
	}
}

func TestGraveWardenIsABossFloorFiveBoss(t *testing.T) {
	d := DefaultDocument()
	if d.BossForFloor(5) != "grave_warden" {
		t.Fatalf("expected grave_warden on floor 5, got %q", d.BossForFloor(5))
	}
}

func TestFloorBandMapping(t *testing.T) {
	cases := map[int]int{1: 1, 5: 1, 6: 2, 15: 3, 21: 5, 99: 5}
	for floor, want := range cases {
		if got := FloorBand(floor); got != want {
			t.Fatalf("floor %d: expected band %d, got %d", floor, want, got)
		}
	}
}

func TestArchetypeByIDRoundTrip(t *testing.T) {
	d := DefaultDocument()
	a, ok := d.ArchetypeByID("rat_i")
	if !ok {
		t.Fatal("expected to find rat_i archetype")
	}
	if a.Archetype != "swarm" {
		t.Fatalf("expected swarm archetype, got %q", a.Archetype)
	}
}

func TestArchetypeStatsScaleByBand(t *testing.T) {
	d := DefaultDocument()
	low, _ := d.ArchetypeByID("bandit_i")
	high, _ := d.ArchetypeByID("bandit_v")
	if high.MaxHP <= low.MaxHP {
		t.Fatalf("expected band 5 bandit to have more HP than band 1, got %d vs %d", high.MaxHP, low.MaxHP)
	}
}

func TestSpawnTableForFloorConvertsWeights(t *testing.T) {
	d := DefaultDocument()
	st := d.SpawnTableForFloor(1)
	if len(st.ArchetypeIDs) != len(st.Weights) {
		t.Fatal("archetype ids and weights should be parallel slices")
	}
	if len(st.ArchetypeIDs) == 0 {
		t.Fatal("expected a non-empty spawn table for floor 1")
	}
}

func TestLoadMissingFileReturnsBadData(t *testing.T) {
	_, err := Load("/nonexistent/path/data.yaml")
	if err == nil {
		t.Fatal("expected an error for a missing data file")
	}
	if !simerr.Is(err, simerr.BadData) {
		t.Fatalf("expected a BadData error, got %v", err)
	}
}
