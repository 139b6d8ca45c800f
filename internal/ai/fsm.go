// Package ai implements the enemy finite-state machine and the five
// archetype movement behaviors spec §4.9 names (Patrol, Swarm, Ambush,
// Ranged, Guard). Grounded on
// MarcPaquette-emoji-roguelike/internal/system/ai.go's nearest-player
// targeting and chase/flee step logic, generalized from that repo's
// turn-based single-step movement into the tick-driven, timer-based FSM
// spec §4.9's transition table describes.
package ai

// State is one of the eight enemy lifecycle states spec §4.9 names.
type State uint8

const (
	Idle State = iota
	Patrol
	Chase
	Ranged
	Telegraph
	Attack
	Hurt
	Dead
)

// String names a State for scene/debug display.
func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Patrol:
		return "Patrol"
	case Chase:
		return "Chase"
	case Ranged:
		return "Ranged"
	case Telegraph:
		return "Telegraph"
	case Attack:
		return "Attack"
	case Hurt:
		return "Hurt"
	case Dead:
		return "Dead"
	default:
		return "Unknown"
	}
}

// Archetype selects which movement behavior modifies Chase (spec §4.9).
type Archetype uint8

const (
	ArchetypePatrol Archetype = iota
	ArchetypeSwarm
	ArchetypeAmbush
	ArchetypeRanged
	ArchetypeGuard
)

// telegraphSecs is how long an enemy holds its Telegraph state before
// its attack actually lands, giving the player a readable windup.
const telegraphSecs = 0.5

// hurtSecs is the brief stagger applied whenever an enemy takes damage.
const hurtSecs = 0.25

// Agent is one enemy's AI state: its current FSM state, the state it
// will return to after a Hurt interruption, and per-archetype tunables.
type Agent struct {
	State         State
	PreHurtState  State
	StateTimer    float64
	AttackCooldown float64

	Archetype   Archetype
	AggroRange  float64
	AttackRange float64

	// Patrol/Guard
	AnchorX, AnchorY float64
	PatrolRadius     float64

	// Ambush
	TriggerRadius float64
	triggered     bool

	// Ranged
	PreferredMin, PreferredMax float64
}

// NewAgent constructs an Agent starting in Idle (or Patrol for the
// Patrol archetype, which wanders its anchor even absent aggro).
func NewAgent(archetype Archetype, aggroRange, attackRange float64) *Agent {
	start := Idle
	if archetype == ArchetypePatrol {
		start = Patrol
	}
	return &Agent{State: start, Archetype: archetype, AggroRange: aggroRange, AttackRange: attackRange}
}

// TakeDamage transitions the agent to Hurt, remembering the state to
// resume once the stagger elapses (spec §4.9: "any -> took damage ->
// Hurt (brief), then return to previous non-terminal state").
func (a *Agent) TakeDamage() {
	if a.State == Dead {
		return
	}
	if a.State != Hurt {
		a.PreHurtState = a.State
	}
	a.State = Hurt
	a.StateTimer = hurtSecs
}

// Kill transitions the agent to the terminal Dead state.
func (a *Agent) Kill() {
	a.State = Dead
}

// Update advances the FSM one tick given the current distance to the
// player and whether line of sight is clear, decrementing timers and
// applying the transition table from spec §4.9. Returns true exactly on
// the tick an attack (swing/projectile/AoE) should be spawned.
func (a *Agent) Update(dt, distToPlayer float64, lineOfSight bool) (triggeredAttack bool) {
	if a.AttackCooldown > 0 {
		a.AttackCooldown -= dt
	}

	switch a.State {
	case Hurt:
		a.StateTimer -= dt
		if a.StateTimer <= 0 {
			a.State = a.PreHurtState
		}
		return false

	case Dead:
		return false

	case Idle, Patrol:
		if distToPlayer <= a.AggroRange && lineOfSight {
			if a.Archetype == ArchetypeRanged {
				a.State = Ranged
			} else {
				a.State = Chase
			}
		}
		return false

	case Chase:
		if distToPlayer > a.AggroRange*1.5 {
			a.State = a.idleOrPatrol()
			return false
		}
		if distToPlayer <= a.AttackRange && a.AttackCooldown <= 0 {
			a.State = Telegraph
			a.StateTimer = telegraphSecs
		}
		return false

	case Ranged:
		if distToPlayer > a.AggroRange*1.5 {
			a.State = a.idleOrPatrol()
			return false
		}
		if a.AttackCooldown <= 0 && distToPlayer <= a.AttackRange {
			a.State = Telegraph
			a.StateTimer = telegraphSecs
		}
		return false

	case Telegraph:
		a.StateTimer -= dt
		if a.StateTimer <= 0 {
			a.State = Attack
		}
		return false

	case Attack:
		a.AttackCooldown = attackCooldownFor(a.Archetype)
		a.State = Chase
		if a.Archetype == ArchetypeRanged {
			a.State = Ranged
		}
		return true
	}
	return false
}

func (a *Agent) idleOrPatrol() State {
	if a.Archetype == ArchetypePatrol || a.Archetype == ArchetypeGuard {
		return Patrol
	}
	return Idle
}

func attackCooldownFor(arch Archetype) float64 {
	switch arch {
	case ArchetypeRanged:
		return 1.4
	case ArchetypeSwarm:
		return 0.8
	default:
		return 1.2
	}
}
