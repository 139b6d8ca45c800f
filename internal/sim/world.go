package sim

import (
	"depths-of-the-abyss/internal/ai"
	"depths-of-the-abyss/internal/boss"
	"depths-of-the-abyss/internal/combat"
	"depths-of-the-abyss/internal/config"
	"depths-of-the-abyss/internal/data"
	"depths-of-the-abyss/internal/dungeon"
	"depths-of-the-abyss/internal/entity"
	"depths-of-the-abyss/internal/playerctl"
	"depths-of-the-abyss/internal/projectile"
	"depths-of-the-abyss/internal/rng"
	"depths-of-the-abyss/internal/status"
	"depths-of-the-abyss/internal/tilegrid"
	"depths-of-the-abyss/internal/weapon"
)

// EnemyEntity is one live enemy: its position/hp/archetype data, its AI
// agent, and its status effects.
type EnemyEntity struct {
	ArchetypeID string
	X, Y        float64
	HP, MaxHP   float64
	Element     weapon.Element
	Defense     int
	Agent       *ai.Agent
	Status      status.Set
	Attacks     []data.AttackDef
	attackTimer float64

	// KnockbackVX/VY is the decaying push-out velocity left by the last
	// hit that connected (spec §4.8: "heavy weapons apply stronger
	// knockback"), applied and decayed alongside AI steering in
	// updateEnemies.
	KnockbackVX, KnockbackVY float64
}

// World owns every piece of live run state: the current floor's tile
// grid and metadata, the player, enemies, boss, projectiles/AoE fields,
// weapon swings, and the two deterministic RNG streams (spec §3/§9:
// generation and gameplay never share one stream).
type World struct {
	RunSeed      uint64
	Difficulty   string
	DiffMult     float64
	Data         *data.Document
	GenStream    *rng.Stream
	AIStream     *rng.Stream

	Floor      int
	FloorData  dungeon.Floor
	Grid       *tilegrid.Grid

	Player *playerctl.Controller

	Enemies      *entity.Store[EnemyEntity]
	Boss         *boss.Encounter
	BossHandle   entity.Handle
	DefeatedBossIDs []string

	Projectiles *entity.Store[*projectile.Projectile]
	AoEs        *entity.Store[*projectile.AoE]
	Swings      []*weapon.Swing

	ParticleCount     int
	FloatingTextCount int

	CameraX, CameraY float64

	ComboWindowSecs      float64
	KnockbackDecayPerSec float64

	Balance config.Balance

	Limits ResourceLimits
	Drops  ResourceCapCounts

	Score int
	Kills int
	PlaytimeSecs float64
}

// difficultyMultiplier maps the three named difficulty tiers to the
// enemy-count scale factor spec §4.3 step 9 references.
func difficultyMultiplier(difficulty string) float64 {
	switch difficulty {
	case "easy":
		return 0.75
	case "hard":
		return 1.5
	default:
		return 1.0
	}
}

// NewWorld seeds both RNG streams from runSeed, loads floor 1, and
// parametrizes every balance-tunable knob from bal (spec: the loaded
// TOML balance document actually drives the constants it mirrors,
// rather than sitting unread).
func NewWorld(runSeed uint64, difficulty string, doc *data.Document, bal config.Balance) *World {
	w := &World{
		RunSeed:    runSeed,
		Difficulty: difficulty,
		DiffMult:   difficultyMultiplier(difficulty),
		Data:       doc,
		GenStream:  rng.New(runSeed),
		AIStream:   rng.AIStream(runSeed),
		Enemies:    entity.NewStore[EnemyEntity](64),
		Projectiles: entity.NewStore[*projectile.Projectile](DefaultResourceLimits.MaxProjectiles),
		AoEs:        entity.NewStore[*projectile.AoE](DefaultResourceLimits.MaxAoE),
		Limits:      DefaultResourceLimits,
		ComboWindowSecs:      bal.Combat.ComboWindowSecs,
		KnockbackDecayPerSec: bal.Combat.KnockbackDecay,
		Balance:              bal,
	}
	combat.SetElementMultipliers(bal.Element.AdvantageMultiplier, bal.Element.DisadvantageMultiplier)
	w.loadFloor(1)
	w.Player.ApplyBalance(bal)
	return w
}

// loadFloor generates floor n deterministically from the run seed and
// populates enemies/boss from its spawn list (spec §4.3).
func (w *World) loadFloor(floor int) {
	w.Floor = floor
	spawnTable := w.Data.SpawnTableForFloor(floor)
	bossID := ""
	if floor%5 == 0 {
		bossID = w.Data.BossForFloor(floor)
	}
	cfg := dungeon.Config{
		SpawnTable:           spawnTable,
		BossID:               bossID,
		DifficultyMultiplier: w.DiffMult,
	}
	w.FloorData = dungeon.Generate(floor, w.RunSeed, cfg)
	w.Grid = w.FloorData.Grid

	w.Enemies = entity.NewStore[EnemyEntity](64)
	w.Boss = nil

	spawnX, spawnY := tilegrid.TileToPixel(w.FloorData.Specials.SpawnX, w.FloorData.Specials.SpawnY)
	if w.Player == nil {
		w.Player = playerctl.NewController(spawnX, spawnY, 140, 100, 50, 100)
	} else {
		w.Player.X, w.Player.Y = spawnX, spawnY
	}

	for _, spawn := range w.FloorData.Spawns {
		arch, ok := w.Data.ArchetypeByID(spawn.ArchetypeID)
		if !ok {
			continue
		}
		w.spawnEnemy(arch, spawn.X, spawn.Y)
	}

	if bossID != "" && w.FloorData.BossArena.Present {
		if def, ok := w.Data.BossByID(bossID); ok {
			room := w.FloorData.BossArena.Room
			minX, minY := tilegrid.TileToPixel(room.X1, room.Y1)
			maxX, maxY := tilegrid.TileToPixel(room.X2, room.Y2)
			w.Boss = boss.NewEncounter(def, minX, minY, maxX, maxY)
		}
	}
}

// spawnEnemy inserts a new enemy from its archetype definition at a
// tile position, honoring the enemy resource cap (spec §5).
func (w *World) spawnEnemy(arch data.EnemyArchetype, tileX, tileY int) {
	if w.Enemies.Len() >= w.Limits.MaxEnemies {
		w.Drops.EnemiesDropped++
		return
	}
	px, py := tilegrid.TileToPixel(tileX, tileY)
	agent := ai.NewAgent(archetypeFromString(arch.Archetype), arch.AggroRange, arch.AttackRange)
	w.Enemies.Insert(EnemyEntity{
		ArchetypeID: arch.ID,
		X: px, Y: py,
		HP: float64(arch.MaxHP), MaxHP: float64(arch.MaxHP),
		Element: arch.Element,
		Agent:   agent,
		Attacks: arch.Attacks,
	})
}

func archetypeFromString(s string) ai.Archetype {
	switch s {
	case "swarm":
		return ai.ArchetypeSwarm
	case "ambush":
		return ai.ArchetypeAmbush
	case "ranged":
		return ai.ArchetypeRanged
	case "guard":
		return ai.ArchetypeGuard
	default:
		return ai.ArchetypePatrol
	}
}

func elementName(e weapon.Element) string {
	switch e {
	case weapon.ElementFire:
		return "fire"
	case weapon.ElementIce:
		return "ice"
	case weapon.ElementLightning:
		return "lightning"
	default:
		return "none"
	}
}
