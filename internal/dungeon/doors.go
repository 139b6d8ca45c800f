package dungeon

import "depths-of-the-abyss/internal/tilegrid"

// wallUntouched surrounds every Floor cell's still-Void neighbors with
// Wall, turning the carved interior into a closed map (spec §4.3 steps
// 3-4: "wrap untouched neighbors with Wall").
func wallUntouched(g *tilegrid.Grid) {
	offsets := [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.Get(x, y).Kind != tilegrid.Floor {
				continue
			}
			for _, o := range offsets {
				nx, ny := x+o[0], y+o[1]
				if g.InBounds(nx, ny) && g.Get(nx, ny).Kind == tilegrid.Void {
					g.Set(nx, ny, tilegrid.Tile{Kind: tilegrid.Wall})
				}
			}
		}
	}
}

// promoteDoors turns every Wall cell on a room perimeter that has two or
// more Floor neighbors in its 4-neighborhood into a Door (spec §4.3
// step 5).
func promoteDoors(g *tilegrid.Grid) {
	offsets := [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.Get(x, y).Kind != tilegrid.Wall {
				continue
			}
			floorNeighbors := 0
			for _, o := range offsets {
				if g.Get(x+o[0], y+o[1]).Kind == tilegrid.Floor {
					floorNeighbors++
				}
			}
			if floorNeighbors >= 2 {
				g.Set(x, y, tilegrid.Tile{Kind: tilegrid.Door})
			}
		}
	}
}
