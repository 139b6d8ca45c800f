package ai

import "math"

// Steer computes a normalized (dx, dy) movement direction for one tick
// given the agent's current position, the player's position, and its
// archetype, per spec §4.9's five archetype behaviors. Callers scale
// the result by their own movement speed and dt (mirroring
// playerctl.Controller.Move's separation of direction from speed).
func (a *Agent) Steer(selfX, selfY, playerX, playerY float64, siblingX, siblingY []float64) (dx, dy float64) {
	switch a.State {
	case Patrol:
		return a.patrolStep(selfX, selfY)
	case Chase:
		switch a.Archetype {
		case ArchetypeSwarm:
			return a.swarmStep(selfX, selfY, playerX, playerY, siblingX, siblingY)
		case ArchetypeAmbush:
			return a.ambushStep(selfX, selfY, playerX, playerY)
		case ArchetypeGuard:
			return a.guardStep(selfX, selfY, playerX, playerY)
		default:
			return toward(selfX, selfY, playerX, playerY)
		}
	case Ranged:
		return a.rangedStep(selfX, selfY, playerX, playerY)
	default:
		return 0, 0
	}
}

// patrolStep wanders the anchor point in a small loop, reversing once it
// drifts PatrolRadius away (spec §4.9: "Patrol: loops within anchor +
// radius").
func (a *Agent) patrolStep(selfX, selfY float64) (dx, dy float64) {
	distFromAnchor := dist(selfX, selfY, a.AnchorX, a.AnchorY)
	if distFromAnchor >= a.PatrolRadius {
		return toward(selfX, selfY, a.AnchorX, a.AnchorY)
	}
	// orbit: perpendicular to the anchor vector
	ax, ay := selfX-a.AnchorX, selfY-a.AnchorY
	mag := math.Hypot(ax, ay)
	if mag < 0.0001 {
		return 1, 0
	}
	return -ay / mag, ax / mag
}

// swarmStep chases the player while steering away from any sibling
// positions that are crowding it, so a pack doesn't stack on one tile
// (spec §4.9: "Swarm: reduces overlap with nearby siblings, prefers
// approaching from the player's flank").
func (a *Agent) swarmStep(selfX, selfY, playerX, playerY float64, siblingX, siblingY []float64) (dx, dy float64) {
	tx, ty := toward(selfX, selfY, playerX, playerY)
	const crowdRadius = 24.0
	var repelX, repelY float64
	for i := range siblingX {
		d := dist(selfX, selfY, siblingX[i], siblingY[i])
		if d > 0 && d < crowdRadius {
			repelX += (selfX - siblingX[i]) / d
			repelY += (selfY - siblingY[i]) / d
		}
	}
	sumX, sumY := tx+repelX*0.6, ty+repelY*0.6
	mag := math.Hypot(sumX, sumY)
	if mag < 0.0001 {
		return tx, ty
	}
	return sumX / mag, sumY / mag
}

// ambushStep stays put until the player enters TriggerRadius, then
// bursts toward them (spec §4.9: "Ambush: hidden until trigger radius,
// then a speed burst").
func (a *Agent) ambushStep(selfX, selfY, playerX, playerY float64) (dx, dy float64) {
	if !a.triggered {
		if dist(selfX, selfY, playerX, playerY) <= a.TriggerRadius {
			a.triggered = true
		} else {
			return 0, 0
		}
	}
	return toward(selfX, selfY, playerX, playerY)
}

// AmbushBurstMultiplier scales movement speed once an ambush has
// triggered (the "speed burst" spec §4.9 names); callers multiply their
// base speed by this when a.triggered is true.
const AmbushBurstMultiplier = 1.8

// Triggered reports whether an Ambush archetype has sprung.
func (a *Agent) Triggered() bool { return a.triggered }

// rangedStep maintains a preferred distance band from the player:
// closes in if too far, backs away if too close (spec §4.9: "Ranged:
// maintains a preferred distance band, flees if the player closes in").
func (a *Agent) rangedStep(selfX, selfY, playerX, playerY float64) (dx, dy float64) {
	d := dist(selfX, selfY, playerX, playerY)
	switch {
	case d < a.PreferredMin:
		x, y := toward(selfX, selfY, playerX, playerY)
		return -x, -y
	case d > a.PreferredMax:
		return toward(selfX, selfY, playerX, playerY)
	default:
		return 0, 0
	}
}

// guardStep chases the player only while the player is within
// PatrolRadius of the guard's anchor; otherwise it walks back to the
// anchor and holds position once within 1px of it (spec §4.9: "Guard: stays within its anchor room unless attacking").
func (a *Agent) guardStep(selfX, selfY, playerX, playerY float64) (dx, dy float64) {
	if dist(a.AnchorX, a.AnchorY, playerX, playerY) > a.PatrolRadius {
		if dist(selfX, selfY, a.AnchorX, a.AnchorY) > 1 {
			return toward(selfX, selfY, a.AnchorX, a.AnchorY)
		}
		return 0, 0
	}
	return toward(selfX, selfY, playerX, playerY)
}

func toward(fromX, fromY, toX, toY float64) (dx, dy float64) {
	vx, vy := toX-fromX, toY-fromY
	mag := math.Hypot(vx, vy)
	if mag < 0.0001 {
		return 0, 0
	}
	return vx / mag, vy / mag
}

func dist(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}
