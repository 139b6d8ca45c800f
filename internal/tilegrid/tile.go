// Package tilegrid implements the dense tile map described in spec §3/§4.2:
// tile kinds, walkability, and the stateful chest/trap flags carried per
// cell. Grounded on MarcPaquette-emoji-roguelike/internal/gamemap, extended
// with the additional tile kinds the dungeon generator and combat arbiter
// need (Door, Campfire, Chest, Trap, Water, BossGate, StairsUp/Down).
package tilegrid

// Kind identifies the type of a map tile.
type Kind uint8

const (
	Void Kind = iota
	Floor
	Wall
	Door
	StairsDown
	StairsUp
	Campfire
	Chest
	Trap
	Water
	BossGate
)

// Tile holds the kind and per-cell stateful flags for one map cell.
// Chest/Trap state is stateful on the cell per spec §4.2.
type Tile struct {
	Kind      Kind
	Opened    bool // Chest: has it been looted
	Triggered bool // Trap: has it fired
}

func walkable(k Kind) bool {
	switch k {
	case Floor, Door, StairsDown, StairsUp, Campfire, Chest, Trap, BossGate:
		return true
	default:
		return false
	}
}

// Walkable reports whether the tile kind allows entity movement.
func Walkable(k Kind) bool { return walkable(k) }
