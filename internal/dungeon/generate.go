package dungeon

import (
	"depths-of-the-abyss/internal/rng"
	"depths-of-the-abyss/internal/tilegrid"
)

// Floor is the complete, immutable result of generating one floor: the
// tile grid plus every piece of metadata the simulation needs to spawn
// the player, enemies, and the boss, and to describe the scene.
type Floor struct {
	Grid      *tilegrid.Grid
	Theme     Theme
	Specials  Specials
	BossArena BossArena
	Decor     []Decor
	Spawns    []SpawnEntry
	BossID    string // empty unless BossArena.Present
}

// Config is the caller-supplied input to Generate beyond floor number
// and seed: the weighted enemy table and boss id for this floor (spec
// keeps archetype/boss data in internal/data; this package only
// consumes the resolved table to avoid an import cycle) and the
// difficulty multiplier scaling enemy count.
type Config struct {
	SpawnTable            SpawnTable
	BossID                string
	DifficultyMultiplier  float64
}

// Generate runs the full deterministic pipeline for (floor, runSeed):
// identical inputs always produce an identical grid, specials, and
// spawn list, on any platform (spec §4.3 contract).
func Generate(floor int, runSeed uint64, cfg Config) Floor {
	seed := rng.FloorSeed(runSeed, floor)
	s := rng.New(seed)

	w, h := Size(floor)
	g := tilegrid.New(w, h)

	root := &leaf{x: 1, y: 1, w: w - 2, h: h - 2}
	buildTree(root, s)
	carveRooms(root, g, s)
	connectSiblings(root, g, s)
	wallUntouched(g)
	promoteDoors(g)

	theme := ThemeForFloor(floor)
	specials := placeSpecials(g, floor, theme, s)

	arena := placeBossArena(g, floor, specials.StairsDownX, specials.StairsDownY, s)

	decor := placeDecor(g, theme, s)

	multiplier := cfg.DifficultyMultiplier
	if multiplier <= 0 {
		multiplier = 1.0
	}
	count := EnemyCount(floor, multiplier)
	spawns := placeSpawns(g, specials.SpawnX, specials.SpawnY, count, cfg.SpawnTable, s)

	bossID := ""
	if arena.Present {
		bossID = cfg.BossID
	}

	return Floor{
		Grid:      g,
		Theme:     theme,
		Specials:  specials,
		BossArena: arena,
		Decor:     decor,
		Spawns:    spawns,
		BossID:    bossID,
	}
}
