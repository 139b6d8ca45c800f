// Package playerctl implements player movement, dodge i-frames, parry,
// and resource regeneration (spec §3/§4.5). Grounded on
// fight-club-go/internal/game/player.go's per-frame Update shape and
// combat.go's CombatState (dodge timer, invuln frames, stamina cost),
// generalized from that package's world-bounds clamp to per-axis
// tile-walkability sliding, and extended with mana and campfire-gated
// hp regen its open arena never needed.
package playerctl

import (
	"math"

	"depths-of-the-abyss/internal/config"
	"depths-of-the-abyss/internal/data"
	"depths-of-the-abyss/internal/status"
	"depths-of-the-abyss/internal/tilegrid"
)

// Constants mirror fight-club/internal/game/combat.go's
// CombatConstants, generalized with mana/hp regen rates spec §4.5 adds.
// They seed a fresh Controller's balance-tunable fields; ApplyBalance
// overrides them from a loaded config.Balance.
const (
	DodgeStaminaCost  = 40.0
	DodgeDurationSecs = 0.3
	DodgeInvulnSecs   = 0.2
	DodgeCooldownSecs = 1.0
	DodgeMinImpulse   = 40.0 // applied when dodging while idle

	ParryWindowSecs = 0.2
	ParryRefund     = 25.0

	StaminaRegenPerSec = 20.0
	ManaRegenPerSec    = 10.0
	HPRegenPerSecAtFire = 5.0
)

// defaultWeaponID is the starting weapon a fresh Controller equips.
const defaultWeaponID = "shortsword"

// defaultAttackPower is a fresh Controller's flat attack_power stat
// (spec §3/§4.8's stat_scaling term) before any leveling/gear system
// raises it.
const defaultAttackPower = 10

// Controller holds one player's movement/resource/defensive state.
// Position and facing live here rather than on a separate component
// since every one of spec §4.5's operations reads or writes them
// together each frame.
type Controller struct {
	X, Y      float64
	Facing    float64 // radians
	Speed     float64 // tiles... pixels per second

	HP, MaxHP         float64
	Mana, MaxMana     float64
	Stamina, MaxStamina float64

	Level, XP int
	Defense   int

	DodgeTimer    float64 // remaining seconds of active dodge
	DodgeCooldown float64
	InvulnTimer   float64
	DodgeDirX, DodgeDirY float64

	ParryWindow float64 // remaining seconds the parry window is open

	ComboCounter int
	ComboTimer   float64

	// Status carries the player's own timed modifiers (spec §3/§4.11):
	// an enemy attack seeded with a data.StatusSeed applies here, same
	// as it would to an enemy's status.Set.
	Status status.Set

	// CurrentWeaponID/WeaponRarity/AttackPower/EquippedAbilities are the
	// Player data model fields spec §3 names: which weapon.Weapon the
	// next swing reads from the weapon table, that weapon's rolled
	// rarity (feeding data.RarityMultiplier), the flat attack_power stat
	// (feeding combat.StatScaling), and up to four bound ability ids
	// Input.Ability[i] triggers.
	CurrentWeaponID   string
	WeaponRarity      data.Rarity
	AttackPower       int
	EquippedAbilities [4]string

	// Balance-tunable fields, seeded from the package constants above
	// and overridable in bulk via ApplyBalance once a run loads a
	// config.Balance document (spec: the TOML tuning layer actually
	// parametrizes gameplay rather than sitting unread).
	dodgeStaminaCost  float64
	dodgeDurationSecs float64
	dodgeInvulnSecs   float64
	dodgeCooldownSecs float64
	parryWindowSecs   float64
	parryRefund       float64
	staminaRegenPerSec float64
	manaRegenPerSec    float64
	hpRegenPerSecAtFire float64
}

// NewController constructs a Controller at full resources, the default
// starting weapon, and the package-level balance defaults.
func NewController(x, y, speed, maxHP, maxMana, maxStamina float64) *Controller {
	c := &Controller{
		X: x, Y: y, Speed: speed,
		HP: maxHP, MaxHP: maxHP,
		Mana: maxMana, MaxMana: maxMana,
		Stamina: maxStamina, MaxStamina: maxStamina,
		Level: 1,
		CurrentWeaponID: defaultWeaponID,
		WeaponRarity:    data.RarityCommon,
		AttackPower:     defaultAttackPower,
	}
	c.ApplyBalance(config.DefaultBalance())
	return c
}

// ApplyBalance overrides every balance-tunable field from bal,
// replacing whatever the constructor (or a prior ApplyBalance call)
// set.
func (c *Controller) ApplyBalance(bal config.Balance) {
	c.dodgeStaminaCost = bal.Dodge.StaminaCost
	c.dodgeDurationSecs = bal.Dodge.DurationSecs
	c.dodgeInvulnSecs = bal.Dodge.InvulnSecs
	c.dodgeCooldownSecs = bal.Dodge.CooldownSecs
	c.parryWindowSecs = bal.Combat.ParryWindowSecs
	c.parryRefund = bal.Combat.ParryRefund
	c.staminaRegenPerSec = bal.Regen.StaminaPerSec
	c.manaRegenPerSec = bal.Regen.ManaPerSec
	c.hpRegenPerSecAtFire = bal.Regen.HPPerSecAtFire
}

// IsInvulnerable reports whether the player currently takes zero damage
// (spec §3 invariant 4: "An i-framed player takes zero damage").
func (c *Controller) IsInvulnerable() bool {
	return c.InvulnTimer > 0
}

// IsDodging reports whether a dodge is currently playing out (the
// player cannot attack during this window, per spec §4.5).
func (c *Controller) IsDodging() bool {
	return c.DodgeTimer > 0
}

// CanDodge reports whether a new dodge can be triggered.
func (c *Controller) CanDodge() bool {
	return !c.IsDodging() && c.DodgeCooldown <= 0 && c.Stamina >= c.dodgeStaminaCost
}

// StartDodge consumes stamina and begins a dodge in the given
// (already-normalized) direction, defaulting to a forward impulse if
// the player was idle (spec §4.5: "a minimum impulse applies if idle").
func (c *Controller) StartDodge(dirX, dirY float64) {
	if dirX == 0 && dirY == 0 {
		dirX, dirY = 1, 0
	}
	c.Stamina -= c.dodgeStaminaCost
	c.DodgeTimer = c.dodgeDurationSecs
	c.DodgeCooldown = c.dodgeCooldownSecs
	c.InvulnTimer = c.dodgeInvulnSecs
	c.DodgeDirX, c.DodgeDirY = dirX, dirY
}

// OpenParryWindow begins a parry window (spec §4.5).
func (c *Controller) OpenParryWindow() {
	c.ParryWindow = c.parryWindowSecs
}

// InParryWindow reports whether an incoming attack this frame should be
// absorbed rather than applied.
func (c *Controller) InParryWindow() bool {
	return c.ParryWindow > 0
}

// ResolveParry absorbs an attack: refunds stamina and closes the
// window. Caller is responsible for spawning the "Parry!" floating
// text and staggering the attacker.
func (c *Controller) ResolveParry() {
	c.ParryWindow = 0
	c.Stamina += c.parryRefund
	if c.Stamina > c.MaxStamina {
		c.Stamina = c.MaxStamina
	}
}

// TickTimers advances every tick-based timer by dt (dodge, cooldown,
// i-frames, parry window, combo window).
func (c *Controller) TickTimers(dt float64) {
	if c.DodgeTimer > 0 {
		c.DodgeTimer -= dt
	}
	if c.DodgeCooldown > 0 {
		c.DodgeCooldown -= dt
	}
	if c.InvulnTimer > 0 {
		c.InvulnTimer -= dt
	}
	if c.ParryWindow > 0 {
		c.ParryWindow -= dt
	}
	if c.ComboTimer > 0 {
		c.ComboTimer -= dt
		if c.ComboTimer <= 0 {
			c.ComboCounter = 0
		}
	}
}

// RegisterSwing advances the combo counter if within the combo window
// and the weapon's chain hasn't been exhausted, else starts a fresh
// combo; returns the 0-based index into weapon.ComboMultipliers this
// swing should use (so the first swing of any combo always reads
// multiplier 1.0, and the swing immediately after maxHits wraps back to
// it rather than clamping at the last multiplier forever).
func (c *Controller) RegisterSwing(windowSecs float64, maxHits int) int {
	if c.ComboTimer > 0 && c.ComboCounter < maxHits {
		c.ComboCounter++
	} else {
		c.ComboCounter = 1
	}
	c.ComboTimer = windowSecs
	return c.ComboCounter - 1
}

// RegenerateResources applies per-second stamina/mana regen, plus hp
// regen only when nearFire is true (spec §4.5: "hp at hp_regen/s only
// near a Campfire tile"). Stamina/mana never regen while dodging or
// mid-attack (attacking gate is enforced by the caller via attacking).
func (c *Controller) RegenerateResources(dt float64, attacking, nearFire bool) {
	if !c.IsDodging() && !attacking {
		c.Stamina += c.staminaRegenPerSec * dt
		if c.Stamina > c.MaxStamina {
			c.Stamina = c.MaxStamina
		}
		c.Mana += c.manaRegenPerSec * dt
		if c.Mana > c.MaxMana {
			c.Mana = c.MaxMana
		}
	}
	if nearFire {
		c.HP += c.hpRegenPerSecAtFire * dt
		if c.HP > c.MaxHP {
			c.HP = c.MaxHP
		}
	}
}

// Move advances position by speed*dir*dt (or the dodge impulse while
// dodging), axis-separated against grid walkability so the player
// slides along a wall instead of stopping dead at a corner (spec
// §4.5: "clamped to walkable tiles (axis-separated slide: try X then Y
// independently)").
func (c *Controller) Move(dirX, dirY, dt float64, grid *tilegrid.Grid, radius float64) {
	vx, vy := dirX*c.Speed, dirY*c.Speed
	if c.IsDodging() {
		dodgeSpeed := DodgeMinImpulse / c.dodgeDurationSecs
		vx, vy = c.DodgeDirX*dodgeSpeed, c.DodgeDirY*dodgeSpeed
	}

	nextX := c.X + vx*dt
	if walkableAt(grid, nextX, c.Y, radius) {
		c.X = nextX
	}
	nextY := c.Y + vy*dt
	if walkableAt(grid, c.X, nextY, radius) {
		c.Y = nextY
	}
	if vx != 0 || vy != 0 {
		c.Facing = facingAngle(vx, vy)
	}
}

func facingAngle(vx, vy float64) float64 {
	return math.Atan2(vy, vx)
}

func walkableAt(grid *tilegrid.Grid, x, y, radius float64) bool {
	if grid == nil {
		return true
	}
	tx0, ty0 := tilegrid.PixelToTile(x-radius, y-radius)
	tx1, ty1 := tilegrid.PixelToTile(x+radius, y+radius)
	for ty := ty0; ty <= ty1; ty++ {
		for tx := tx0; tx <= tx1; tx++ {
			if !grid.IsWalkable(tx, ty) {
				return false
			}
		}
	}
	return true
}
