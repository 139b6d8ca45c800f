package tilegrid

// Rect is an axis-aligned rectangle used for rooms and the BSP tree.
// Grounded on MarcPaquette-emoji-roguelike/internal/gamemap.Rect.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// Center returns the integer center point of the rectangle.
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Intersects reports whether r overlaps other (inclusive edges).
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// Grid is a dense W×H map of tiles. Invariant (spec §3): the border is
// Void or Wall.
type Grid struct {
	Width, Height int
	tiles         []Tile
	Rooms         []Rect
}

// New creates a Grid filled with Void (the generator carves rooms and
// borders it with Wall afterward).
func New(width, height int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		tiles:  make([]Tile, width*height),
	}
}

func (g *Grid) index(x, y int) int { return y*g.Width + x }

// InBounds reports whether (x, y) is within the grid boundaries.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Get returns the tile at (x, y). Out-of-bounds reads return Void,
// never panicking (spec §4.2/§7: tile access is total).
func (g *Grid) Get(x, y int) Tile {
	if !g.InBounds(x, y) {
		return Tile{Kind: Void}
	}
	return g.tiles[g.index(x, y)]
}

// Set replaces the tile at (x, y). Out-of-bounds writes are no-ops.
func (g *Grid) Set(x, y int, t Tile) {
	if !g.InBounds(x, y) {
		return
	}
	g.tiles[g.index(x, y)] = t
}

// SetKind is a convenience wrapper preserving existing Opened/Triggered
// state (used for decor annotations that don't reset stateful flags).
func (g *Grid) SetKind(x, y int, k Kind) {
	if !g.InBounds(x, y) {
		return
	}
	idx := g.index(x, y)
	t := g.tiles[idx]
	t.Kind = k
	g.tiles[idx] = t
}

// IsWalkable returns true when (x, y) is in bounds and walkable.
func (g *Grid) IsWalkable(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return Walkable(g.tiles[g.index(x, y)].Kind)
}

// IsSolid is the negation of IsWalkable (projectiles use this to decide
// wall-impact despawn).
func (g *Grid) IsSolid(x, y int) bool {
	return !g.IsWalkable(x, y)
}

// OpenChest marks the chest at (x, y) as opened. No-op if not a chest.
func (g *Grid) OpenChest(x, y int) {
	if !g.InBounds(x, y) {
		return
	}
	idx := g.index(x, y)
	if g.tiles[idx].Kind == Chest {
		g.tiles[idx].Opened = true
	}
}

// TriggerTrap marks the trap at (x, y) as triggered. No-op if not a trap.
func (g *Grid) TriggerTrap(x, y int) {
	if !g.InBounds(x, y) {
		return
	}
	idx := g.index(x, y)
	if g.tiles[idx].Kind == Trap {
		g.tiles[idx].Triggered = true
	}
}

const tileSize = 32.0

// PixelToTile converts pixel coordinates to tile coordinates.
func PixelToTile(px, py float64) (int, int) {
	return int(px / tileSize), int(py / tileSize)
}

// TileToPixel converts tile coordinates to the pixel center of the cell.
func TileToPixel(tx, ty int) (float64, float64) {
	return float64(tx)*tileSize + tileSize/2, float64(ty)*tileSize + tileSize/2
}
