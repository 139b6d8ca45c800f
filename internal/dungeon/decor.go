package dungeon

import (
	"depths-of-the-abyss/internal/rng"
	"depths-of-the-abyss/internal/tilegrid"
)

// Decor is a cosmetic, gameplay-inert annotation on a floor tile (spec
// §4.3 step 8). Kept separate from tilegrid.Tile.Kind since it carries
// no walkability or interaction semantics — only scene description.
type Decor struct {
	X, Y  int
	Glyph string
}

var decorGlyphsByTheme = map[Theme][]string{
	ThemeStone:   {"crack", "rubble"},
	ThemeFungal:  {"moss", "spores", "mushroom"},
	ThemeFrozen:  {"frost", "icicle"},
	ThemeVolcanic: {"ash", "ember"},
	ThemeRuins:   {"bones", "rune", "crack"},
}

// placeDecor scatters a handful of cosmetic annotations across Floor
// tiles, themed per floor.
func placeDecor(g *tilegrid.Grid, theme Theme, s *rng.Stream) []Decor {
	glyphs := decorGlyphsByTheme[theme]
	if len(glyphs) == 0 {
		glyphs = decorGlyphsByTheme[ThemeStone]
	}

	count := 6 + s.RangeInt(0, 10)
	var decor []Decor
	attempts := 0
	for len(decor) < count && attempts < count*50 {
		attempts++
		x := s.RangeInt(0, g.Width-1)
		y := s.RangeInt(0, g.Height-1)
		if g.Get(x, y).Kind != tilegrid.Floor {
			continue
		}
		decor = append(decor, Decor{X: x, Y: y, Glyph: rng.Choose(s, glyphs)})
	}
	return decor
}
