package dungeon

import (
	"testing"

	"pgregory.net/rapid"
)

// Property-based determinism/reachability checks, grounded on
// pgregory.net/rapid's rapid.Check/rapid.T generator style (the
// library other_examples/dshills-dungo's manifest pulls in for its own
// dungeon generator's contract tests).

func TestGenerateIsDeterministicAcrossSeedsAndFloors(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		floor := rapid.IntRange(1, 40).Draw(rt, "floor")
		seed := rapid.Uint64().Draw(rt, "seed")

		a := Generate(floor, seed, testConfig())
		b := Generate(floor, seed, testConfig())

		if a.Grid.Width != b.Grid.Width || a.Grid.Height != b.Grid.Height {
			rt.Fatalf("dimensions diverged for floor=%d seed=%d", floor, seed)
		}
		for y := 0; y < a.Grid.Height; y++ {
			for x := 0; x < a.Grid.Width; x++ {
				if a.Grid.Get(x, y) != b.Grid.Get(x, y) {
					rt.Fatalf("tile (%d,%d) diverged for floor=%d seed=%d", x, y, floor, seed)
				}
			}
		}
		if a.Specials.SpawnX != b.Specials.SpawnX || a.Specials.SpawnY != b.Specials.SpawnY {
			rt.Fatalf("spawn point diverged for floor=%d seed=%d", floor, seed)
		}
		if len(a.Spawns) != len(b.Spawns) {
			rt.Fatalf("spawn list length diverged for floor=%d seed=%d", floor, seed)
		}
	})
}

func TestStairsAlwaysReachableFromSpawn(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		floor := rapid.IntRange(1, 40).Draw(rt, "floor")
		seed := rapid.Uint64().Draw(rt, "seed")

		f := Generate(floor, seed, testConfig())

		reachable := f.Grid.ReachableFrom(f.Specials.SpawnX, f.Specials.SpawnY)
		if !reachable[[2]int{f.Specials.StairsDownX, f.Specials.StairsDownY}] {
			rt.Fatalf("stairs unreachable from spawn for floor=%d seed=%d", floor, seed)
		}
	})
}

func TestEverySpawnedEnemyLandsOnAWalkableReachableTile(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		floor := rapid.IntRange(1, 40).Draw(rt, "floor")
		seed := rapid.Uint64().Draw(rt, "seed")

		f := Generate(floor, seed, testConfig())
		reachable := f.Grid.ReachableFrom(f.Specials.SpawnX, f.Specials.SpawnY)

		for _, s := range f.Spawns {
			if !f.Grid.IsWalkable(s.X, s.Y) {
				rt.Fatalf("enemy spawn (%d,%d) lands on a non-walkable tile", s.X, s.Y)
			}
			if !reachable[[2]int{s.X, s.Y}] {
				rt.Fatalf("enemy spawn (%d,%d) is unreachable from the player start", s.X, s.Y)
			}
		}
	})
}
