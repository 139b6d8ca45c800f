package data

import "depths-of-the-abyss/internal/dungeon"

// FloorBand maps a floor number to one of the five bands (1-5, 6-10,
// 11-15, 16-20, 21+), matching the 25-archetype/5-band split spec §6
// describes.
func FloorBand(floor int) int {
	band := (floor-1)/5 + 1
	if band > 5 {
		band = 5
	}
	if band < 1 {
		band = 1
	}
	return band
}

// ArchetypeByID returns the archetype with the given id, and whether it
// was found.
func (d *Document) ArchetypeByID(id string) (EnemyArchetype, bool) {
	for _, a := range d.Archetypes {
		if a.ID == id {
			return a, true
		}
	}
	return EnemyArchetype{}, false
}

// BossByID returns the boss definition with the given id, and whether
// it was found.
func (d *Document) BossByID(id string) (BossDefinition, bool) {
	for _, b := range d.Bosses {
		if b.ID == id {
			return b, true
		}
	}
	return BossDefinition{}, false
}

// SpawnTableForFloor converts this document's floor-band spawn table
// into the dungeon package's generic SpawnTable shape for the given
// floor, falling back to the first listed table when none matches the
// floor's band, and to an empty table when none is configured (keeps
// Generate total rather than panicking on sparse data).
func (d *Document) SpawnTableForFloor(floor int) dungeon.SpawnTable {
	band := FloorBand(floor)
	for _, t := range d.SpawnTables {
		if t.FloorBand == band {
			return toSpawnTable(t)
		}
	}
	if len(d.SpawnTables) > 0 {
		return toSpawnTable(d.SpawnTables[0])
	}
	return dungeon.SpawnTable{}
}

func toSpawnTable(t FloorBandSpawnTable) dungeon.SpawnTable {
	st := dungeon.SpawnTable{
		ArchetypeIDs: make([]string, len(t.Entries)),
		Weights:      make([]int, len(t.Entries)),
	}
	for i, e := range t.Entries {
		st.ArchetypeIDs[i] = e.ArchetypeID
		st.Weights[i] = e.Weight
	}
	return st
}

// BossForFloor returns the boss id assigned to a boss floor. Bosses
// cycle through the definitions in list order, repeating past the
// last one; the final boss in the list is not treated specially.
func (d *Document) BossForFloor(floor int) string {
	if len(d.Bosses) == 0 {
		return ""
	}
	tier := floor/5 - 1
	if tier < 0 {
		tier = 0
	}
	if tier >= len(d.Bosses) {
		tier = tier % len(d.Bosses)
	}
	return d.Bosses[tier].ID
}
