// Package projectile implements projectile motion/lifetime and AoE
// field ticking (spec §3/§4.7). Grounded on
// fight-club-go/internal/game/projectile.go's Update/CheckHit/trail ring
// buffer, extended with piercing, explode-radius-spawns-AoE, and
// homing-with-degrade, none of which that package's straight-flying
// projectiles need.
package projectile

import (
	"math"

	"depths-of-the-abyss/internal/entity"
	"depths-of-the-abyss/internal/status"
	"depths-of-the-abyss/internal/weapon"
)

// OwnerTag identifies which side fired a projectile or placed an AoE,
// for opposing-side damage filtering.
type OwnerTag uint8

const (
	OwnerPlayer OwnerTag = iota
	OwnerEnemy
)

// homingTurnRate is the fixed angular rate (radians per frame of
// interpolation) a homing projectile turns toward its target, per
// spec §4.7.
const homingTurnRate = 0.1

// Projectile is a moving attack entity that integrates position each
// tick and despawns on wall impact (unless piercing), on hit (unless
// piercing), or when its lifetime elapses.
type Projectile struct {
	Owner      entity.Ref
	OwnerTag   OwnerTag
	X, Y       float64
	VX, VY     float64
	Speed      float64
	Damage     int
	Element    weapon.Element
	HitRadius  float64
	Lifetime   float64 // seconds remaining
	Piercing   bool
	ExplodeRadius float64 // 0 disables explode-on-death AoE
	HomingTarget  entity.Ref // zero Ref disables homing

	// StatusEffect, when non-nil, is applied to whoever this projectile
	// hits (spec §4.8/§4.11), seeded from the owning attack's
	// data.AttackDef.Effect.
	StatusEffect *status.Effect

	TrailX   [4]float64
	TrailY   [4]float64
	TrailIdx int

	Damaged map[entity.Ref]bool // piercing projectiles, like swings, never double-hit
}

// New constructs a projectile aimed from (x,y) toward (targetX,targetY)
// at the given speed, mirroring fight-club's direction-normalize
// construction; the projectile starts exactly at (x,y).
func New(owner entity.Ref, tag OwnerTag, x, y, targetX, targetY, speed float64, damage int, lifetime float64) *Projectile {
	dx := targetX - x
	dy := targetY - y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		dist = 1
	}
	dirX, dirY := dx/dist, dy/dist

	return &Projectile{
		Owner:     owner,
		OwnerTag:  tag,
		X:         x,
		Y:         y,
		VX:        dirX * speed,
		VY:        dirY * speed,
		Speed:     speed,
		Damage:    damage,
		HitRadius: 8.0,
		Lifetime:  lifetime,
		Damaged:   make(map[entity.Ref]bool),
	}
}

// TargetPosFunc resolves a homing target's current position; callers
// pass a closure bound to the World's stores since this package cannot
// import sim (would create a cycle).
type TargetPosFunc func(ref entity.Ref) (x, y float64, alive bool)

// Update advances position by vel*dt, steering toward a homing target
// if one is set and still alive (degrading to straight flight
// otherwise), decrements lifetime, and records a trail point. Returns
// false when the projectile should be removed (lifetime elapsed).
func (p *Projectile) Update(dt float64, resolveTarget TargetPosFunc) bool {
	p.TrailX[p.TrailIdx] = p.X
	p.TrailY[p.TrailIdx] = p.Y
	p.TrailIdx = (p.TrailIdx + 1) % 4

	if !p.HomingTarget.IsNil() && resolveTarget != nil {
		tx, ty, alive := resolveTarget(p.HomingTarget)
		if !alive {
			p.HomingTarget = entity.Ref{}
		} else {
			p.steerToward(tx, ty)
		}
	}

	p.X += p.VX * dt
	p.Y += p.VY * dt
	p.Lifetime -= dt

	return p.Lifetime > 0
}

// steerToward rotates the velocity vector toward (tx,ty) at the fixed
// homing turn rate, preserving speed.
func (p *Projectile) steerToward(tx, ty float64) {
	currentAngle := math.Atan2(p.VY, p.VX)
	desiredAngle := math.Atan2(ty-p.Y, tx-p.X)

	diff := desiredAngle - currentAngle
	for diff > math.Pi {
		diff -= 2 * math.Pi
	}
	for diff < -math.Pi {
		diff += 2 * math.Pi
	}

	if diff > homingTurnRate {
		diff = homingTurnRate
	} else if diff < -homingTurnRate {
		diff = -homingTurnRate
	}

	newAngle := currentAngle + diff
	p.VX = math.Cos(newAngle) * p.Speed
	p.VY = math.Sin(newAngle) * p.Speed
}

// Rotation reports the projectile's current facing, for scene display.
func (p *Projectile) Rotation() float64 {
	return math.Atan2(p.VY, p.VX)
}

// HitTest reports whether the projectile's hit circle overlaps a target
// circle of radius targetRadius, centered at (tx, ty), and the target
// hasn't already been damaged by this projectile instance.
func (p *Projectile) HitTest(target entity.Ref, tx, ty, targetRadius float64) bool {
	if p.Damaged[target] {
		return false
	}
	dx := tx - p.X
	dy := ty - p.Y
	return math.Hypot(dx, dy) < p.HitRadius+targetRadius
}

// MarkDamaged records target as hit; piercing projectiles continue,
// non-piercing ones are despawned by the caller immediately after.
func (p *Projectile) MarkDamaged(target entity.Ref) {
	p.Damaged[target] = true
}
