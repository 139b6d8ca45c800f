// Package dungeon implements the deterministic per-floor generation
// pipeline (size → BSP split → room carve → sibling corridor connect →
// door promotion → specials → boss arena → decor → spawn list).
// Grounded on MarcPaquette-emoji-roguelike/internal/generate's
// bsp.go/corridor.go/populator.go, generalized to the size formula,
// specials placement, and rejection-sampled spawn list this engine's
// run/floor model calls for — that generator only places stairs-down
// and the player start; everything past that (doors, traps, water,
// boss arenas, decor, weighted spawn tables) is new, built in the same
// BSP-leaf recursion idiom.
package dungeon

import (
	"depths-of-the-abyss/internal/rng"
	"depths-of-the-abyss/internal/tilegrid"
)

const minLeafSize = 8

// Size returns the floor's map dimensions: W grows by 20 tiles and H by
// 15 every 10 floors, capped at 100x80.
func Size(floor int) (w, h int) {
	tier := floor / 10
	w = 80 + tier*20
	if w > 100 {
		w = 100
	}
	h = 60 + tier*15
	if h > 80 {
		h = 80
	}
	return w, h
}

// leaf is a node of the BSP tree built over the map interior.
type leaf struct {
	x, y, w, h  int
	left, right *leaf
	room        *tilegrid.Rect
}

// split divides the leaf in two, choosing direction by aspect ratio
// (wide leaves split vertically, tall ones horizontally, square leaves
// by coin flip), and the cut position uniformly within the leaf.
func (l *leaf) split(s *rng.Stream) bool {
	if l.left != nil || l.right != nil {
		return false
	}
	splitH := s.RangeInt(0, 1) == 0
	if float64(l.w)/float64(l.h) >= 1.25 {
		splitH = false
	} else if float64(l.h)/float64(l.w) >= 1.25 {
		splitH = true
	}

	axis := l.w
	if splitH {
		axis = l.h
	}
	if axis < 2*minLeafSize {
		return false
	}
	cut := s.RangeInt(minLeafSize, axis-minLeafSize)

	if splitH {
		l.left = &leaf{x: l.x, y: l.y, w: l.w, h: cut}
		l.right = &leaf{x: l.x, y: l.y + cut, w: l.w, h: l.h - cut}
	} else {
		l.left = &leaf{x: l.x, y: l.y, w: cut, h: l.h}
		l.right = &leaf{x: l.x + cut, y: l.y, w: l.w - cut, h: l.h}
	}
	return true
}

// buildTree recursively splits root until a leaf is smaller than
// 2*minLeafSize on both axes or its split is refused (split returns
// false when the chosen axis is too short to cut).
func buildTree(root *leaf, s *rng.Stream) {
	if root.w < 2*minLeafSize && root.h < 2*minLeafSize {
		return
	}
	if !root.split(s) {
		return
	}
	buildTree(root.left, s)
	buildTree(root.right, s)
}

// carveRooms places one room per terminal leaf, with inner size in
// [4, leaf_dim-1], positioned uniformly within the leaf's bounds.
func carveRooms(root *leaf, g *tilegrid.Grid, s *rng.Stream) {
	if root.left != nil || root.right != nil {
		if root.left != nil {
			carveRooms(root.left, g, s)
		}
		if root.right != nil {
			carveRooms(root.right, g, s)
		}
		return
	}

	maxW := root.w - 1
	maxH := root.h - 1
	if maxW < 4 {
		maxW = 4
	}
	if maxH < 4 {
		maxH = 4
	}
	rw := s.RangeInt(4, maxW)
	rh := s.RangeInt(4, maxH)
	if rw > root.w-1 {
		rw = root.w - 1
	}
	if rh > root.h-1 {
		rh = root.h - 1
	}
	if rw < 2 || rh < 2 {
		return
	}

	rx := root.x + s.RangeInt(0, root.w-rw)
	ry := root.y + s.RangeInt(0, root.h-rh)

	room := tilegrid.Rect{X1: rx, Y1: ry, X2: rx + rw - 1, Y2: ry + rh - 1}
	root.room = &room

	for y := room.Y1; y <= room.Y2; y++ {
		for x := room.X1; x <= room.X2; x++ {
			g.Set(x, y, tilegrid.Tile{Kind: tilegrid.Floor})
		}
	}
	g.Rooms = append(g.Rooms, room)
}

// anyRoom returns some room belonging to this leaf's subtree, used to
// pick a corridor endpoint when a subtree spans multiple rooms.
func (l *leaf) anyRoom() *tilegrid.Rect {
	if l.room != nil {
		return l.room
	}
	if l.left != nil {
		if r := l.left.anyRoom(); r != nil {
			return r
		}
	}
	if l.right != nil {
		if r := l.right.anyRoom(); r != nil {
			return r
		}
	}
	return nil
}

// connectSiblings walks the BSP tree bottom-up, carving an L-shaped
// corridor between a room from each side of every split.
func connectSiblings(root *leaf, g *tilegrid.Grid, s *rng.Stream) {
	if root.left == nil || root.right == nil {
		return
	}
	connectSiblings(root.left, g, s)
	connectSiblings(root.right, g, s)

	a := root.left.anyRoom()
	b := root.right.anyRoom()
	if a == nil || b == nil {
		return
	}
	ax, ay := a.Center()
	bx, by := b.Center()
	carveLCorridor(g, ax, ay, bx, by, s)
}

func carveLCorridor(g *tilegrid.Grid, x1, y1, x2, y2 int, s *rng.Stream) {
	if s.RangeInt(0, 1) == 0 {
		carveH(g, x1, x2, y1)
		carveV(g, y1, y2, x2)
	} else {
		carveV(g, y1, y2, x1)
		carveH(g, x1, x2, y2)
	}
}

func carveH(g *tilegrid.Grid, x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		if g.IsSolid(x, y) || g.Get(x, y).Kind == tilegrid.Void {
			g.Set(x, y, tilegrid.Tile{Kind: tilegrid.Floor})
		}
	}
}

func carveV(g *tilegrid.Grid, y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		if g.IsSolid(x, y) || g.Get(x, y).Kind == tilegrid.Void {
			g.Set(x, y, tilegrid.Tile{Kind: tilegrid.Floor})
		}
	}
}
