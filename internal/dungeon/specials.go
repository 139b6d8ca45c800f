package dungeon

import (
	"math"

	"depths-of-the-abyss/internal/rng"
	"depths-of-the-abyss/internal/tilegrid"
)

// Specials records the fixed points of interest placed by step 6 of
// generation, returned alongside the grid so the sim layer knows where
// the player starts and where stairs lead.
type Specials struct {
	SpawnX, SpawnY             int
	HasStairsUp                bool
	StairsUpX, StairsUpY       int
	StairsDownX, StairsDownY   int
	HasCampfire                bool
	CampfireX, CampfireY       int
}

// placeSpecials implements spec §4.3 step 6: spawn at the first room's
// center, stairs up at spawn on floors after the first, stairs down in
// the farthest room, a campfire in a middle room, scattered chests and
// traps, and (theme-gated) water pools.
func placeSpecials(g *tilegrid.Grid, floor int, theme Theme, s *rng.Stream) Specials {
	var sp Specials
	if len(g.Rooms) == 0 {
		return sp
	}

	first := g.Rooms[0]
	sp.SpawnX, sp.SpawnY = first.Center()

	if floor > 1 {
		sp.HasStairsUp = true
		sp.StairsUpX, sp.StairsUpY = sp.SpawnX, sp.SpawnY
		g.Set(sp.StairsUpX, sp.StairsUpY, tilegrid.Tile{Kind: tilegrid.StairsUp})
	}

	farIdx, farDist := 0, -1.0
	for i, r := range g.Rooms {
		cx, cy := r.Center()
		d := math.Hypot(float64(cx-sp.SpawnX), float64(cy-sp.SpawnY))
		if d > farDist {
			farDist = d
			farIdx = i
		}
	}
	dx, dy := g.Rooms[farIdx].Center()
	sp.StairsDownX, sp.StairsDownY = dx, dy
	g.Set(dx, dy, tilegrid.Tile{Kind: tilegrid.StairsDown})

	if len(g.Rooms) > 2 {
		midIdx := s.RangeInt(1, len(g.Rooms)-2)
		cx, cy := g.Rooms[midIdx].Center()
		if !(cx == sp.SpawnX && cy == sp.SpawnY) && !(cx == dx && cy == dy) {
			sp.HasCampfire = true
			sp.CampfireX, sp.CampfireY = cx, cy
			g.Set(cx, cy, tilegrid.Tile{Kind: tilegrid.Campfire})
		}
	}

	chestCount := 2 + s.RangeInt(0, 3)
	scatterKind(g, tilegrid.Chest, chestCount, s)

	trapCount := 3 + s.RangeInt(0, 4)
	scatterKind(g, tilegrid.Trap, trapCount, s)

	if theme == ThemeFungal || theme == ThemeFrozen {
		placeWaterPools(g, s)
	}

	return sp
}

// scatterKind places count copies of kind on randomly chosen Floor
// tiles, skipping cells not currently plain Floor so it never
// overwrites a previously placed special.
func scatterKind(g *tilegrid.Grid, kind tilegrid.Kind, count int, s *rng.Stream) {
	placed := 0
	attempts := 0
	for placed < count && attempts < count*50 {
		attempts++
		x := s.RangeInt(0, g.Width-1)
		y := s.RangeInt(0, g.Height-1)
		if g.Get(x, y).Kind != tilegrid.Floor {
			continue
		}
		g.Set(x, y, tilegrid.Tile{Kind: kind})
		placed++
	}
}

// placeWaterPools drops 1-3 pools of size 2-4 contiguous floor tiles,
// theme-gated to Fungal/Frozen floors (spec §4.3 step 6).
func placeWaterPools(g *tilegrid.Grid, s *rng.Stream) {
	pools := 1 + s.RangeInt(0, 2)
	for p := 0; p < pools; p++ {
		size := 2 + s.RangeInt(0, 2)
		x := s.RangeInt(0, g.Width-1)
		y := s.RangeInt(0, g.Height-1)
		if g.Get(x, y).Kind != tilegrid.Floor {
			continue
		}
		placed := 0
		cx, cy := x, y
		for placed < size {
			if g.Get(cx, cy).Kind == tilegrid.Floor {
				g.Set(cx, cy, tilegrid.Tile{Kind: tilegrid.Water})
				placed++
			}
			switch s.RangeInt(0, 3) {
			case 0:
				cx++
			case 1:
				cx--
			case 2:
				cy++
			default:
				cy--
			}
			if !g.InBounds(cx, cy) {
				break
			}
		}
	}
}
