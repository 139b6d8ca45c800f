package projectile

import (
	"depths-of-the-abyss/internal/status"
	"depths-of-the-abyss/internal/weapon"
)

// AoE is a stationary damage field: an optional pre-detonation delay,
// then either one pulse at expiry or periodic ticks until its lifetime
// reaches zero (spec §4.7).
type AoE struct {
	CenterX, CenterY float64
	Radius           float64
	Damage           int
	Element          weapon.Element
	OwnerTag         OwnerTag
	Delay            float64 // seconds remaining before the field becomes live
	Periodic         bool
	TickInterval     float64
	tickAccumulator  float64
	Lifetime         float64

	// StatusEffect, when non-nil, is applied to whoever the field deals
	// damage to (spec §4.8/§4.11), seeded from the owning attack's
	// data.AttackDef.Effect.
	StatusEffect *status.Effect
}

// NewSingleShot builds an AoE that deals one pulse once its (optional)
// delay elapses, then expires.
func NewSingleShot(centerX, centerY, radius float64, damage int, elem weapon.Element, tag OwnerTag, delay float64) *AoE {
	return &AoE{
		CenterX: centerX, CenterY: centerY, Radius: radius,
		Damage: damage, Element: elem, OwnerTag: tag,
		Delay: delay, Lifetime: delay + 0.001,
	}
}

// NewPeriodic builds an AoE that ticks damage every tickInterval
// seconds for lifetime seconds after its delay elapses.
func NewPeriodic(centerX, centerY, radius float64, damagePerTick int, elem weapon.Element, tag OwnerTag, delay, tickInterval, lifetime float64) *AoE {
	return &AoE{
		CenterX: centerX, CenterY: centerY, Radius: radius,
		Damage: damagePerTick, Element: elem, OwnerTag: tag,
		Delay: delay, Periodic: true, TickInterval: tickInterval, Lifetime: lifetime,
	}
}

// Tick advances the field's delay/lifetime timers and reports whether a
// damage pulse should be applied this frame. Returns (dealDamage,
// stillAlive).
func (a *AoE) Tick(dt float64) (dealDamage bool, stillAlive bool) {
	if a.Delay > 0 {
		a.Delay -= dt
		a.Lifetime -= dt
		return false, a.Lifetime > 0
	}

	a.Lifetime -= dt
	if a.Lifetime <= 0 {
		if !a.Periodic {
			return true, false // single-shot pulse fires exactly at expiry
		}
		return false, false
	}

	if !a.Periodic {
		return false, true
	}

	a.tickAccumulator += dt
	if a.tickAccumulator >= a.TickInterval {
		a.tickAccumulator -= a.TickInterval
		return true, true
	}
	return false, true
}

// Contains reports whether (x, y) lies within the field's radius.
func (a *AoE) Contains(x, y float64) bool {
	dx := x - a.CenterX
	dy := y - a.CenterY
	return dx*dx+dy*dy <= a.Radius*a.Radius
}
