package combat

import (
	"math"

	"depths-of-the-abyss/internal/rng"
	"depths-of-the-abyss/internal/weapon"
)

// ElementAdvantageMultiplier is the rock-paper-scissors scaling applied
// when an attack's element beats (or loses to) a defender's resistance
// element (spec §4.8): fire beats ice, ice beats lightning, lightning
// beats fire, each at 1.5x by default; the reverse matchup applies
// 0.75x by default. Package vars rather than consts so a loaded
// config.Balance.Element can retune them once at run start via
// SetElementMultipliers — spec §5's single-threaded, cooperative
// execution model means one balance profile is active per process.
var (
	ElementAdvantageMultiplier    = 1.5
	ElementDisadvantageMultiplier = 0.75
)

// SetElementMultipliers overrides the rock-paper-scissors scaling,
// letting a run's loaded balance document parametrize the matchup
// table instead of the hardcoded default.
func SetElementMultipliers(advantage, disadvantage float64) {
	ElementAdvantageMultiplier = advantage
	ElementDisadvantageMultiplier = disadvantage
}

// Crit tuning (spec §4.8: "crit = roll(crit_chance) ? crit_mult :
// 1.0"). BonusCritChance is additive, applied only for weapons carrying
// weapon.BonusCrit (the dagger).
const (
	BaseCritChance       = 0.05
	BonusCritChance      = 0.15
	CritDamageMultiplier = 1.5
)

// RollCrit rolls stream against the crit chance, returning the
// multiplier to use for Hit.CritMultiplier and whether the roll landed.
func RollCrit(stream *rng.Stream, hasCritBonus bool) (float64, bool) {
	chance := BaseCritChance
	if hasCritBonus {
		chance += BonusCritChance
	}
	if stream.NextF64() < chance {
		return CritDamageMultiplier, true
	}
	return 1.0, false
}

// FloorMultiplier returns the floor_mult term of the damage formula
// (spec §4.8: base = weapon_base · rarity_mult · floor_mult), a gentle
// per-floor scale so a floor-1 weapon doesn't trivialize deep floors.
func FloorMultiplier(floor int) float64 {
	if floor < 1 {
		floor = 1
	}
	return 1.0 + float64(floor-1)*0.04
}

// StatScaling returns the stat_scaling(attacker, element) term added to
// base damage (spec §4.8: "scaled = base + stat_scaling(...)"): the
// player's attack_power contributes half its value as flat bonus
// damage, ahead of crit/combo/element/defense.
func StatScaling(attackPower int) float64 {
	return float64(attackPower) * 0.5
}

// beats reports whether attacker's element has advantage over defender's.
func beats(attacker, defender weapon.Element) bool {
	switch attacker {
	case weapon.ElementFire:
		return defender == weapon.ElementIce
	case weapon.ElementIce:
		return defender == weapon.ElementLightning
	case weapon.ElementLightning:
		return defender == weapon.ElementFire
	default:
		return false
	}
}

// ElementMultiplier returns the damage scalar for an attack element
// against a defender's element, 1.0 when neither side has an elemental
// affinity or the matchup is neutral.
func ElementMultiplier(attacker, defender weapon.Element) float64 {
	if attacker == weapon.ElementNone || defender == weapon.ElementNone {
		return 1.0
	}
	if beats(attacker, defender) {
		return ElementAdvantageMultiplier
	}
	if beats(defender, attacker) {
		return ElementDisadvantageMultiplier
	}
	return 1.0
}

// Hit describes one resolved attack instance prior to applying defense.
// BaseDamage is the attacker's scaled damage (weapon base · rarity ·
// floor multipliers · stat scaling), already computed by the caller —
// this package owns only the crit/combo/element/defense stage of the
// formula.
type Hit struct {
	BaseDamage      float64
	CritMultiplier  float64 // 1.0 when no crit
	ComboIndex      int
	AttackerElement weapon.Element
	DefenderElement weapon.Element
}

// Resolve computes final damage using the damage formula:
// floor(max(1, scaled * crit * combo * elem - defense)). Damage never
// drops below 1 — a hit that lands always costs the defender something.
func Resolve(h Hit, defense int) int {
	combo := weapon.MultiplierFor(h.ComboIndex)
	elem := ElementMultiplier(h.AttackerElement, h.DefenderElement)
	raw := h.BaseDamage*h.CritMultiplier*combo*elem - float64(defense)
	if raw < 1 {
		raw = 1
	}
	return int(math.Floor(raw))
}

// Knockback computes the push-out velocity vector applied to a hit
// target, pointed away from the attack's center and scaled by the
// weapon's bonus (spec §4.8: heavy weapons apply stronger knockback).
func Knockback(centerX, centerY, targetX, targetY float64, strength float64) (vx, vy float64) {
	dx := targetX - centerX
	dy := targetY - centerY
	mag := dx*dx + dy*dy
	if mag < 1e-9 {
		return 0, 0
	}
	inv := strength / math.Sqrt(mag)
	return dx * inv, dy * inv
}
