// Package weapon implements the weapon table and swing system (spec
// §3/§4.6): per-weapon base stats, shaped hitboxes, combo timing, and the
// swept-attack Swing object with its per-instance damaged-entity set.
// Grounded directly on fight-club/internal/game/weapons.go, hitbox.go,
// and combat.go's ComboDefinition/RegisterHit.
package weapon

import (
	"depths-of-the-abyss/internal/entity"
	"depths-of-the-abyss/internal/status"
)

// Element identifies a weapon or attack's elemental affinity.
type Element uint8

const (
	ElementNone Element = iota
	ElementFire
	ElementIce
	ElementLightning
)

// Bonus flags a weapon's special per-type trait.
type Bonus uint8

const (
	BonusNone Bonus = iota
	BonusCrit
	BonusCleave
	BonusPierce
	BonusLifesteal
	BonusStun
)

// Weapon is the static, data-table configuration for one weapon type
// (spec §6: weapon types (8)).
type Weapon struct {
	ID         string
	Name       string
	BaseDamage int
	SwingsPerS float64 // speed
	Range      float64 // reach in pixels
	ArcDegrees float64 // swing arc width
	StaminaCost float64
	ManaCost    float64
	Element     Element
	Bonus       Bonus
	Combo       ComboTable
}

// ComboTable mirrors fight-club/internal/game/combat.go's ComboDefinition:
// per-weapon combo length, chain window, and the damage multiplier curve.
// Spec §4.8 fixes the multiplier curve at [1.0, 1.2, 1.5, 1.8, 2.0] for
// combo indices 0..4; individual weapons may shorten the chain but never
// override the curve itself.
type ComboTable struct {
	MaxHits     int
	WindowSecs  float64
}

// ComboMultipliers is the fixed damage-scaling curve keyed by the
// 0-based combo index clamped to 4, per spec §4.8's damage formula.
var ComboMultipliers = [5]float64{1.0, 1.2, 1.5, 1.8, 2.0}

// MultiplierFor returns the combo multiplier for a given 0-based combo
// index (the value RegisterSwing returns), clamped to the table's range.
func MultiplierFor(comboCounter int) float64 {
	idx := comboCounter
	if idx < 0 {
		idx = 0
	}
	if idx > 4 {
		idx = 4
	}
	return ComboMultipliers[idx]
}

// DefaultTable is the built-in weapon table (spec §6 data_version'd
// document's in-code fallback; internal/data overrides from YAML).
// fiveHitChain is every melee weapon's combo chain length: spec §4.8
// fixes the multiplier curve at exactly five entries, and "individual
// weapons may shorten the chain but never override the curve itself"
// — none of the eight default weapons shortens it.
var fiveHitChain = ComboTable{MaxHits: 5}

var DefaultTable = map[string]Weapon{
	"fists": {ID: "fists", Name: "Fists", BaseDamage: 6, SwingsPerS: 2.5, Range: 48, ArcDegrees: 140, StaminaCost: 0, Combo: fiveHitChain},
	"dagger": {ID: "dagger", Name: "Dagger", BaseDamage: 9, SwingsPerS: 3.0, Range: 56, ArcDegrees: 90, StaminaCost: 4, Bonus: BonusCrit, Combo: fiveHitChain},
	"shortsword": {ID: "shortsword", Name: "Shortsword", BaseDamage: 14, SwingsPerS: 2.0, Range: 72, ArcDegrees: 120, StaminaCost: 6, Combo: fiveHitChain},
	"longsword": {ID: "longsword", Name: "Longsword", BaseDamage: 20, SwingsPerS: 1.5, Range: 90, ArcDegrees: 110, StaminaCost: 8, Combo: fiveHitChain},
	"spear": {ID: "spear", Name: "Spear", BaseDamage: 16, SwingsPerS: 1.4, Range: 120, ArcDegrees: 20, StaminaCost: 8, Bonus: BonusPierce, Combo: fiveHitChain},
	"greataxe": {ID: "greataxe", Name: "Greataxe", BaseDamage: 30, SwingsPerS: 0.8, Range: 80, ArcDegrees: 150, StaminaCost: 14, Bonus: BonusCleave, Combo: fiveHitChain},
	"warhammer": {ID: "warhammer", Name: "Warhammer", BaseDamage: 34, SwingsPerS: 0.7, Range: 78, ArcDegrees: 120, StaminaCost: 16, Bonus: BonusStun, Combo: fiveHitChain},
	"flamebrand": {ID: "flamebrand", Name: "Flamebrand", BaseDamage: 18, SwingsPerS: 1.6, Range: 76, ArcDegrees: 100, StaminaCost: 10, Element: ElementFire, Combo: fiveHitChain},
}

// Get returns a weapon by ID, defaulting to fists when unknown (spec §7:
// unknown keys fall back to a documented generic, never erroring inside
// a tick).
func Get(table map[string]Weapon, id string) Weapon {
	if w, ok := table[id]; ok {
		return w
	}
	return table["fists"]
}

// Swing is a time-bounded attack hitbox, active for 1/SwingsPerS seconds,
// centered on the attacker's facing direction at the moment it was
// triggered (spec §4.6).
type Swing struct {
	Weapon    Weapon
	OwnerFrom entity.Ref
	CenterX, CenterY float64
	Direction        float64 // radians
	TimeRemaining    float64
	ComboIndex       int // 0-based combo position at time of trigger
	Damaged          map[entity.Ref]bool

	// StatusEffect, when non-nil, is applied to whoever this swing
	// connects with (spec §4.8/§4.11: "hit events may append a status
	// effect"), seeded from the owning attack's data.AttackDef.Effect.
	StatusEffect *status.Effect
}

// NewSwing triggers a swing from (x, y) facing direction, consuming no
// resources itself (the caller deducts stamina/mana).
func NewSwing(owner entity.Ref, w Weapon, x, y, direction float64, comboIndex int) *Swing {
	return &Swing{
		Weapon:        w,
		OwnerFrom:     owner,
		CenterX:       x,
		CenterY:       y,
		Direction:     direction,
		TimeRemaining: 1.0 / w.SwingsPerS,
		ComboIndex:    comboIndex,
		Damaged:       make(map[entity.Ref]bool),
	}
}

// Active reports whether the swing still has an active hitbox window.
func (s *Swing) Active() bool { return s.TimeRemaining > 0 }

// Tick advances the swing's remaining time.
func (s *Swing) Tick(dt float64) {
	s.TimeRemaining -= dt
}

// AlreadyDamaged reports whether target has already been hit by this
// swing instance (spec §4.6/§4.8/§8: "a single swing never hits the same
// entity twice").
func (s *Swing) AlreadyDamaged(target entity.Ref) bool {
	return s.Damaged[target]
}

// MarkDamaged records that target has now been hit by this swing.
func (s *Swing) MarkDamaged(target entity.Ref) {
	s.Damaged[target] = true
}
