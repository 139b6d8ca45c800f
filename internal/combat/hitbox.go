// Package combat implements attack-shape collision, the damage formula,
// elemental arbitration, and knockback (spec §3/§4.8). Grounded on
// fight-club/internal/game/hitbox.go's O(1) angle/distance shape test and
// combat.go's CombatState/ComboDefinition/RegisterHit, generalized from
// weapon-keyed hitboxes to the shared weapon.Weapon.ArcDegrees/Range
// fields so the shape table lives with the rest of a weapon's stats.
package combat

import "math"

// Shape is the collision test kind for a swing's area (spec §4.6: Circle,
// Arc, Line).
type Shape uint8

const (
	ShapeCircle Shape = iota
	ShapeArc
	ShapeLine
)

// Hitbox is a shaped attack volume centered on an attacker.
type Hitbox struct {
	Shape     Shape
	Range     float64 // max distance from center
	Width     float64 // full arc width in radians, or line half-width in pixels
	Direction float64 // facing direction in radians
}

// Contains reports whether (targetX, targetY) falls inside the hitbox
// rooted at (centerX, centerY), using O(1) angle/distance arithmetic
// (no polygon iteration — fight-club/internal/game/hitbox.go's approach).
func (h Hitbox) Contains(centerX, centerY, targetX, targetY float64) bool {
	dx := targetX - centerX
	dy := targetY - centerY
	dist := math.Hypot(dx, dy)

	if dist > h.Range || dist < 1.0 {
		return false
	}

	switch h.Shape {
	case ShapeCircle:
		return true
	case ShapeArc:
		angleDiff := normalizeAngle(math.Atan2(dy, dx) - h.Direction)
		half := h.Width / 2
		return angleDiff >= -half && angleDiff <= half
	case ShapeLine:
		angleDiff := normalizeAngle(math.Atan2(dy, dx) - h.Direction)
		angularWidth := math.Atan2(h.Width, dist)
		return angleDiff >= -angularWidth && angleDiff <= angularWidth
	default:
		return false
	}
}

// normalizeAngle folds angle into [-π, π] using modulo arithmetic, never
// an iterative loop.
func normalizeAngle(angle float64) float64 {
	const twoPi = 2 * math.Pi
	angle = math.Mod(angle, twoPi)
	if angle < 0 {
		angle += twoPi
	}
	if angle > math.Pi {
		angle -= twoPi
	}
	return angle
}

// ShapeForArc builds the Hitbox for a weapon with the given range and arc
// width in degrees, as used by sword/axe-style weapons.
func ShapeForArc(rng, arcDegrees, direction float64) Hitbox {
	return Hitbox{Shape: ShapeArc, Range: rng, Width: arcDegrees * math.Pi / 180, Direction: direction}
}

// ShapeForCircle builds a 360-degree Hitbox of the given range (the
// engine uses it for enemy melee swings).
func ShapeForCircle(rng float64) Hitbox {
	return Hitbox{Shape: ShapeCircle, Range: rng}
}

// ShapeForLine builds the Hitbox for a thrust weapon (spear), where width
// is the line's pixel half-width rather than an angle.
func ShapeForLine(rng, widthPixels, direction float64) Hitbox {
	return Hitbox{Shape: ShapeLine, Range: rng, Width: widthPixels, Direction: direction}
}
