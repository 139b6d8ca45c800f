// Package status implements the tickable status-effect system (spec
// §3/§4.11): timed modifiers that tick damage or healing, refresh rather
// than stack, and observe a small mutual-exclusion table. Grounded on
// MarcPaquette-emoji-roguelike/internal/component/effects.go +
// internal/system/effects.go (ActiveEffect/ApplyEffect, poison/weaken/
// lifedrain) and fight-club/internal/game/combat.go's tick-counted
// timers (ComboWindow/InvulnFrames), generalized to the eight elemental/
// utility kinds spec §3 names plus a ninth, Stagger, for the parry-
// resolution scenario spec §8 names.
package status

import "depths-of-the-abyss/internal/entity"

// Kind identifies a status effect archetype.
type Kind uint8

const (
	Burn Kind = iota
	Freeze
	Shock
	Poison
	Bleed
	Regen
	Haste
	Shield

	// Stagger is a ninth, non-elemental kind applied by a resolved parry
	// (scenario "Parry refund": the attacker is staggered, not damaged)
	// rather than attached through a hit's element table like the other
	// eight.
	Stagger
)

// Name returns the event-queue string for k, matching the lowercase
// kind names fight-club-go/internal/game/event.go's status payloads use.
func (k Kind) Name() string {
	switch k {
	case Burn:
		return "burn"
	case Freeze:
		return "freeze"
	case Shock:
		return "shock"
	case Poison:
		return "poison"
	case Bleed:
		return "bleed"
	case Regen:
		return "regen"
	case Haste:
		return "haste"
	case Shield:
		return "shield"
	case Stagger:
		return "stagger"
	default:
		return "unknown"
	}
}

// ParseKind resolves a data-table status name (e.g. the "poison" in a
// data.AttackDef's StatusSeed) to its Kind, for the combat arbiter to
// attach at hit time (spec §4.8: "Hit events may append a status
// effect... applied by 4.11"). Reports false for an unrecognized name
// rather than guessing, so a typo'd data table fails loud.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "burn":
		return Burn, true
	case "freeze":
		return Freeze, true
	case "shock":
		return Shock, true
	case "poison":
		return Poison, true
	case "bleed":
		return Bleed, true
	case "regen":
		return Regen, true
	case "haste":
		return Haste, true
	case "shield":
		return Shield, true
	case "stagger":
		return Stagger, true
	default:
		return 0, false
	}
}

// exclusiveWith lists kinds that cancel a previously-attached kind when
// newly applied (spec §4.11: "mutually exclusive kinds cancel the
// previous"). Only Haste and Freeze are listed; every other kind
// coexists with the rest.
var exclusiveWith = map[Kind]Kind{
	Haste:  Freeze,
	Freeze: Haste,
}

// Effect is one active, timed modifier attached to an entity.
type Effect struct {
	Kind           Kind
	Duration       float64 // seconds remaining
	TickDamage     int     // negative values heal
	TickInterval   float64 // seconds between ticks; 0 disables ticking
	tickAccumulator float64
	Source         entity.Ref
}

// DamageThisTick returns the damage (or, if negative, the heal) to apply
// this frame, advancing the internal tick accumulator. Returns 0 when no
// tick boundary was crossed.
func (e *Effect) DamageThisTick(dt float64) int {
	if e.TickInterval <= 0 {
		return 0
	}
	e.tickAccumulator += dt
	if e.tickAccumulator < e.TickInterval {
		return 0
	}
	e.tickAccumulator -= e.TickInterval
	return e.TickDamage
}

// Set is the collection of status effects attached to one entity.
type Set struct {
	effects []Effect
}

// Apply attaches eff, refreshing an existing effect of the same kind to
// the longer of the two durations (spec §4.11: "refreshes, not stacks,
// duration to the maximum of existing and incoming"), and removing any
// effect mutually exclusive with eff.Kind.
func (s *Set) Apply(eff Effect) {
	if exclusive, ok := exclusiveWith[eff.Kind]; ok {
		s.remove(exclusive)
	}
	for i := range s.effects {
		if s.effects[i].Kind == eff.Kind {
			if eff.Duration > s.effects[i].Duration {
				s.effects[i].Duration = eff.Duration
			}
			s.effects[i].TickDamage = eff.TickDamage
			s.effects[i].TickInterval = eff.TickInterval
			s.effects[i].Source = eff.Source
			return
		}
	}
	s.effects = append(s.effects, eff)
}

func (s *Set) remove(k Kind) {
	out := s.effects[:0]
	for _, e := range s.effects {
		if e.Kind != k {
			out = append(out, e)
		}
	}
	s.effects = out
}

// Has reports whether kind is currently attached.
func (s *Set) Has(k Kind) bool {
	for _, e := range s.effects {
		if e.Kind == k {
			return true
		}
	}
	return false
}

// Tick advances every effect's timer by dt, returning the net
// damage/heal to apply to the carrier this frame, and removes any
// effect whose duration reaches zero (spec §4.11 and §8: "removed
// exactly when it reaches 0").
func (s *Set) Tick(dt float64) int {
	net := 0
	out := s.effects[:0]
	for i := range s.effects {
		e := &s.effects[i]
		net += e.DamageThisTick(dt)
		e.Duration -= dt
		if e.Duration > 0 {
			out = append(out, *e)
		}
	}
	s.effects = out
	return net
}

// Clear removes every effect — used when the carrier dies (spec §4.11:
// "removed when duration reaches zero or the carrier dies").
func (s *Set) Clear() {
	s.effects = nil
}

// All returns the currently attached effects (read-only snapshot use).
func (s *Set) All() []Effect {
	return append([]Effect(nil), s.effects...)
}
