package dungeon

// Theme is the cosmetic/environmental flavor of a floor, affecting
// which specials (water pools) and decor glyphs are eligible.
type Theme uint8

const (
	ThemeStone Theme = iota
	ThemeFungal
	ThemeFrozen
	ThemeVolcanic
	ThemeRuins
)

// ThemeForFloor cycles through the five themes, grounded on the same
// floor-driven variety idea as the enemy spawn table's per-floor
// weighting (spec §4.3/§6).
func ThemeForFloor(floor int) Theme {
	return Theme(floor % 5)
}
