package sim

import (
	"depths-of-the-abyss/internal/entity"
	"depths-of-the-abyss/internal/projectile"
	"depths-of-the-abyss/internal/weapon"
)

// TileBounds names the visible rectangle of the tile grid a scene
// covers, in tile coordinates (spec §6 scene(): "tile bounds and
// visible tiles").
type TileBounds struct {
	MinX, MinY, MaxX, MaxY int
}

// VisibleEntity is one enemy or the boss, reduced to the fields a
// renderer needs: sprite hint, not an asset reference (spec §6: "with
// sprite hints, not assets").
type VisibleEntity struct {
	ID          string
	SpriteHint  string
	X, Y        float64
	HP, MaxHP   float64
	FacingState string
}

// VisibleProjectile is one live projectile's render-relevant state.
type VisibleProjectile struct {
	X, Y     float64
	Rotation float64
	SpriteHint string
}

// VisibleAoE is one live AoE field's render-relevant state.
type VisibleAoE struct {
	CenterX, CenterY float64
	Radius           float64
	SpriteHint       string
}

// HUD carries the player-facing numbers a HUD overlay reads each frame
// (spec §6: "HUD values (player hp/mana/stamina, xp/level, combo,
// floor, score)").
type HUD struct {
	HP, MaxHP         float64
	Mana, MaxMana     float64
	Stamina, MaxStamina float64
	Level, XP         int
	ComboCounter       int
	Floor              int
	Score              int
}

// Scene is the complete read-only snapshot spec §6's scene() query
// returns: tile bounds, visible entities/projectiles/AoE fields,
// particle/floating-text counts, camera center, and HUD values.
// Grounded on fight-club-go/internal/game/game_snapshot.go's
// GameSnapshot/SnapshotPool approach, simplified since this engine has
// no pooling/double-buffering requirement of its own.
type Scene struct {
	Tiles       TileBounds
	Entities    []VisibleEntity
	Projectiles []VisibleProjectile
	AoEs        []VisibleAoE

	ParticleCount     int
	FloatingTextCount int

	CameraX, CameraY float64

	HUD HUD
}

// Scene assembles the current frame's read-only view (spec §2's final
// tick phase, "scene.collect"). Callers must not mutate the returned
// slices' backing world state.
func (e *Engine) Scene() Scene {
	w := e.World
	sc := Scene{
		Tiles: TileBounds{
			MinX: 0, MinY: 0,
			MaxX: w.Grid.Width, MaxY: w.Grid.Height,
		},
		ParticleCount:     w.ParticleCount,
		FloatingTextCount: w.FloatingTextCount,
		CameraX:           w.CameraX,
		CameraY:           w.CameraY,
		HUD: HUD{
			HP: w.Player.HP, MaxHP: w.Player.MaxHP,
			Mana: w.Player.Mana, MaxMana: w.Player.MaxMana,
			Stamina: w.Player.Stamina, MaxStamina: w.Player.MaxStamina,
			Level: w.Player.Level, XP: w.Player.XP,
			ComboCounter: w.Player.ComboCounter,
			Floor:        w.Floor,
			Score:        w.Score,
		},
	}

	sc.Entities = make([]VisibleEntity, 0, w.Enemies.Len()+1)
	w.Enemies.Each(func(_ entity.Handle, en *EnemyEntity) {
		sc.Entities = append(sc.Entities, VisibleEntity{
			ID:         en.ArchetypeID,
			SpriteHint: en.ArchetypeID + elementSpriteSuffix(en.Element),
			X:          en.X, Y: en.Y,
			HP: en.HP, MaxHP: en.MaxHP,
			FacingState: en.Agent.State.String(),
		})
	})

	if w.Boss != nil {
		sc.Entities = append(sc.Entities, VisibleEntity{
			ID: w.Boss.ID, SpriteHint: "boss_" + w.Boss.ID,
			X: w.Boss.X, Y: w.Boss.Y,
			HP: w.Boss.HP, MaxHP: w.Boss.MaxHP,
		})
	}

	sc.Projectiles = make([]VisibleProjectile, 0, w.Projectiles.Len())
	w.Projectiles.Each(func(_ entity.Handle, proj **projectile.Projectile) {
		p := *proj
		sc.Projectiles = append(sc.Projectiles, VisibleProjectile{
			X: p.X, Y: p.Y,
			Rotation:   p.Rotation(),
			SpriteHint: "bolt" + elementSpriteSuffix(p.Element),
		})
	})

	sc.AoEs = make([]VisibleAoE, 0, w.AoEs.Len())
	w.AoEs.Each(func(_ entity.Handle, field **projectile.AoE) {
		a := *field
		sc.AoEs = append(sc.AoEs, VisibleAoE{
			CenterX: a.CenterX, CenterY: a.CenterY,
			Radius:     a.Radius,
			SpriteHint: "field" + elementSpriteSuffix(a.Element),
		})
	})

	return sc
}

func elementSpriteSuffix(e weapon.Element) string {
	switch e {
	case weapon.ElementFire:
		return "_fire"
	case weapon.ElementIce:
		return "_ice"
	case weapon.ElementLightning:
		return "_lightning"
	default:
		return ""
	}
}
