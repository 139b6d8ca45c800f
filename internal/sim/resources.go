package sim

// ResourceLimits caps how many of each entity category may exist at
// once, grounded on fight-club-go/internal/game/game_snapshot.go's
// ResourceLimits/DefaultLimits DoS-protection pattern, generalized from
// that repo's player/particle/effect caps to the full category list
// spec §5 names.
type ResourceLimits struct {
	MaxEnemies      int
	MaxProjectiles  int
	MaxAoE          int
	MaxParticles    int
	MaxFloatingText int
}

// DefaultResourceLimits matches spec §5's exact figures.
var DefaultResourceLimits = ResourceLimits{
	MaxEnemies:      500,
	MaxProjectiles:  400,
	MaxAoE:          200,
	MaxParticles:    2000,
	MaxFloatingText: 100,
}

// ResourceCapCounts tallies how many spawns of each category were
// silently dropped for being over their cap (spec §5: "enforced by
// silently dropping over-limit spawns and incrementing a ResourceCap
// counter on run stats"), in arrival order — earlier spawns always win
// the available slots.
type ResourceCapCounts struct {
	EnemiesDropped     int
	ProjectilesDropped int
	AoEDropped         int
	ParticlesDropped   int
	FloatingTextDropped int
}

// Total sums every drop counter, used for the run_stats ResourceCap
// figure spec §5/§7 references.
func (c ResourceCapCounts) Total() int {
	return c.EnemiesDropped + c.ProjectilesDropped + c.AoEDropped + c.ParticlesDropped + c.FloatingTextDropped
}
