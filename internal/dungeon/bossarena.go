package dungeon

import (
	"depths-of-the-abyss/internal/rng"
	"depths-of-the-abyss/internal/tilegrid"
)

// BossArena describes the fixed boss-floor room: its bounds and the
// single BossGate entrance cell.
type BossArena struct {
	Present      bool
	Room         tilegrid.Rect
	GateX, GateY int
}

const (
	arenaWidth  = 20
	arenaHeight = 15
)

// placeBossArena implements spec §4.3 step 7: on floors where
// floor mod 5 == 0, carve a 20x15 room near the map's right edge, wall
// it, place a BossGate at its entrance, connect it to the stairs room,
// and drop four 2x2 pillars at its corners for cover.
func placeBossArena(g *tilegrid.Grid, floor, stairsX, stairsY int, s *rng.Stream) BossArena {
	var arena BossArena
	if floor%5 != 0 {
		return arena
	}

	x2 := g.Width - 4
	x1 := x2 - arenaWidth + 1
	if x1 < 1 {
		x1 = 1
	}
	y1 := (g.Height - arenaHeight) / 2
	if y1 < 1 {
		y1 = 1
	}
	y2 := y1 + arenaHeight - 1
	if y2 >= g.Height-1 {
		y2 = g.Height - 2
	}

	room := tilegrid.Rect{X1: x1, Y1: y1, X2: x2, Y2: y2}
	for y := room.Y1; y <= room.Y2; y++ {
		for x := room.X1; x <= room.X2; x++ {
			g.Set(x, y, tilegrid.Tile{Kind: tilegrid.Floor})
		}
	}

	gateX, gateY := room.X1, (room.Y1+room.Y2)/2
	wallUntouched(g)
	g.Set(gateX, gateY, tilegrid.Tile{Kind: tilegrid.BossGate})

	carveLCorridor(g, stairsX, stairsY, gateX, gateY, s)

	placePillars(g, room)

	g.Rooms = append(g.Rooms, room)
	arena.Present = true
	arena.Room = room
	arena.GateX, arena.GateY = gateX, gateY
	return arena
}

// placePillars drops a 2x2 solid pillar inset from each of the room's
// four corners.
func placePillars(g *tilegrid.Grid, room tilegrid.Rect) {
	corners := [4][2]int{
		{room.X1 + 2, room.Y1 + 2},
		{room.X2 - 3, room.Y1 + 2},
		{room.X1 + 2, room.Y2 - 3},
		{room.X2 - 3, room.Y2 - 3},
	}
	for _, c := range corners {
		for dy := 0; dy < 2; dy++ {
			for dx := 0; dx < 2; dx++ {
				g.Set(c[0]+dx, c[1]+dy, tilegrid.Tile{Kind: tilegrid.Wall})
			}
		}
	}
}
