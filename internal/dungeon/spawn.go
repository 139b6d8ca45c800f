package dungeon

import (
	"math"

	"depths-of-the-abyss/internal/rng"
	"depths-of-the-abyss/internal/tilegrid"
)

const safeRadius = 10
const minSpawnSeparation = 3

// SpawnTable is the weighted enemy-archetype table for one floor,
// supplied by the caller (internal/data loads it from YAML) so this
// package stays free of a dependency on the data layer.
type SpawnTable struct {
	ArchetypeIDs []string
	Weights      []int
}

// SpawnEntry is one chosen enemy placement.
type SpawnEntry struct {
	X, Y        int
	ArchetypeID string
}

// EnemyCount returns floor(8 + 2*floor) * difficultyMultiplier, per
// spec §4.3 step 9.
func EnemyCount(floor int, difficultyMultiplier float64) int {
	base := 8 + 2*floor
	return int(float64(base) * difficultyMultiplier)
}

// placeSpawns implements the rejection-sampling spawn placement: inside
// a room, walkable, at least safeRadius tiles from spawn, at least
// minSpawnSeparation tiles from any prior spawn. Each accepted slot
// rolls an archetype from table by weight.
func placeSpawns(g *tilegrid.Grid, spawnX, spawnY, count int, table SpawnTable, s *rng.Stream) []SpawnEntry {
	if len(table.ArchetypeIDs) == 0 || len(g.Rooms) == 0 {
		return nil
	}

	var entries []SpawnEntry
	attempts := 0
	maxAttempts := count * 200
	for len(entries) < count && attempts < maxAttempts {
		attempts++
		room := rng.Choose(s, g.Rooms)
		x := s.RangeInt(room.X1, room.X2)
		y := s.RangeInt(room.Y1, room.Y2)

		if !g.IsWalkable(x, y) {
			continue
		}
		if math.Hypot(float64(x-spawnX), float64(y-spawnY)) < safeRadius {
			continue
		}
		if tooClose(entries, x, y) {
			continue
		}

		idx := rng.WeightedChoose(s, table.Weights)
		entries = append(entries, SpawnEntry{X: x, Y: y, ArchetypeID: table.ArchetypeIDs[idx]})
	}
	return entries
}

func tooClose(entries []SpawnEntry, x, y int) bool {
	for _, e := range entries {
		if math.Hypot(float64(x-e.X), float64(y-e.Y)) < minSpawnSeparation {
			return true
		}
	}
	return false
}
