// Package boss implements the multi-phase boss scripts spec §4.10
// describes: phase transitions triggered by a health threshold, special
// moves dispatched through an enumeration, and arena confinement. Built
// in the declarative-table idiom `internal/ai`'s attack descriptors and
// `fight-club-go/internal/game/weapons.go`'s data-table-of-structs use,
// since neither example repo models a boss encounter.
package boss

import "depths-of-the-abyss/internal/data"

// SpecialMove enumerates the ten named boss special moves spec §4.10
// lists, replacing a dispatch-by-string-key with a closed enumeration
// per spec §9's redesign note.
type SpecialMove uint8

const (
	SpecialNone SpecialMove = iota
	SpecialSummonAllies
	SpecialEnrage
	SpecialTeleportStrike
	SpecialMeteorBombardment
	SpecialFloorBecomesLava
	SpecialTimeFreeze
	SpecialSummonPreviousBosses
	SpecialCopiesPlayerAbilities
	SpecialTrueForm
	SpecialWorldEndingAttack
)

var specialMoveByName = map[string]SpecialMove{
	"summon_allies":           SpecialSummonAllies,
	"enrage":                  SpecialEnrage,
	"teleport_strike":         SpecialTeleportStrike,
	"meteor_bombardment":      SpecialMeteorBombardment,
	"floor_becomes_lava":      SpecialFloorBecomesLava,
	"time_freeze":             SpecialTimeFreeze,
	"summon_previous_bosses":  SpecialSummonPreviousBosses,
	"copies_player_abilities": SpecialCopiesPlayerAbilities,
	"true_form":               SpecialTrueForm,
	"world_ending_attack":     SpecialWorldEndingAttack,
}

// ParseSpecialMove resolves a data-table special_move string to its
// enum value, returning SpecialNone for an empty or unrecognized name
// (spec §7: unknown content falls back to a documented generic rather
// than panicking mid-tick).
func ParseSpecialMove(name string) SpecialMove {
	return specialMoveByName[name]
}

// Phase is one runtime phase of an Encounter, built from a
// data.PhaseDef at spawn time.
type Phase struct {
	HPThreshold  float64
	Behavior     string
	MoveSpeed    float64
	Attacks      []data.AttackDef
	SpecialMove  SpecialMove
	DialogueLine string
}

// Encounter is one live boss fight: its definition, current hp, which
// phase is active, and the arena bounds it cannot leave.
type Encounter struct {
	ID    string
	Name  string
	MaxHP float64
	HP    float64

	Phases       []Phase
	CurrentPhase int

	ArenaMinX, ArenaMinY, ArenaMaxX, ArenaMaxY float64

	X, Y float64
}

// NewEncounter builds a runtime Encounter from a content-table
// definition, confined to the given arena rectangle (spec §4.10:
// "Bosses cannot leave their arena").
func NewEncounter(def data.BossDefinition, arenaMinX, arenaMinY, arenaMaxX, arenaMaxY float64) *Encounter {
	phases := make([]Phase, len(def.Phases))
	for i, p := range def.Phases {
		phases[i] = Phase{
			HPThreshold:  p.HPThreshold,
			Behavior:     p.Behavior,
			MoveSpeed:    p.MoveSpeed,
			Attacks:      p.Attacks,
			SpecialMove:  ParseSpecialMove(p.SpecialMove),
			DialogueLine: p.DialogueLine,
		}
	}
	return &Encounter{
		ID: def.ID, Name: def.Name,
		MaxHP: float64(def.MaxHP), HP: float64(def.MaxHP),
		Phases:       phases,
		ArenaMinX:    arenaMinX, ArenaMinY: arenaMinY,
		ArenaMaxX: arenaMaxX, ArenaMaxY: arenaMaxY,
		X: (arenaMinX + arenaMaxX) / 2, Y: (arenaMinY + arenaMaxY) / 2,
	}
}

// Phase returns the currently active phase.
func (e *Encounter) Phase() Phase {
	return e.Phases[e.CurrentPhase]
}

// TransitionResult describes what happened, if anything, on a call to
// ApplyDamage that crossed a phase boundary.
type TransitionResult struct {
	Transitioned bool
	NewPhase     int
	DialogueLine string
	SpecialMove  SpecialMove
}

// ApplyDamage reduces HP and checks for a phase transition: the first
// time hp/max_hp falls strictly below the next phase's threshold (spec
// §4.10). Phases are defined in descending threshold order; dying (hp
// <= 0) does not itself trigger a "transition" — callers check HP <= 0
// separately to end the encounter.
func (e *Encounter) ApplyDamage(amount int) TransitionResult {
	e.HP -= float64(amount)
	if e.HP < 0 {
		e.HP = 0
	}
	if e.CurrentPhase+1 >= len(e.Phases) {
		return TransitionResult{}
	}
	next := e.Phases[e.CurrentPhase+1]
	if e.HP/e.MaxHP < next.HPThreshold {
		e.CurrentPhase++
		return TransitionResult{
			Transitioned: true,
			NewPhase:     e.CurrentPhase,
			DialogueLine: next.DialogueLine,
			SpecialMove:  next.SpecialMove,
		}
	}
	return TransitionResult{}
}

// Dead reports whether the encounter has ended.
func (e *Encounter) Dead() bool {
	return e.HP <= 0
}

// ClampToArena confines a proposed position to the encounter's arena
// rectangle (spec §4.10: "Bosses cannot leave their arena").
func (e *Encounter) ClampToArena(x, y float64) (clampedX, clampedY float64) {
	if x < e.ArenaMinX {
		x = e.ArenaMinX
	}
	if x > e.ArenaMaxX {
		x = e.ArenaMaxX
	}
	if y < e.ArenaMinY {
		y = e.ArenaMinY
	}
	if y > e.ArenaMaxY {
		y = e.ArenaMaxY
	}
	return x, y
}
