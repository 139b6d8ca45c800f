package sim

import (
	"math"

	"depths-of-the-abyss/internal/ai"
	"depths-of-the-abyss/internal/boss"
	"depths-of-the-abyss/internal/combat"
	"depths-of-the-abyss/internal/config"
	"depths-of-the-abyss/internal/data"
	"depths-of-the-abyss/internal/entity"
	"depths-of-the-abyss/internal/projectile"
	"depths-of-the-abyss/internal/save"
	"depths-of-the-abyss/internal/simerr"
	"depths-of-the-abyss/internal/status"
	"depths-of-the-abyss/internal/tilegrid"
	"depths-of-the-abyss/internal/weapon"
)

// staggerDurationSecs is how long a parried attacker is staggered for
// (spec §8 scenario "Parry refund": the enemy is staggered, not
// damaged).
const staggerDurationSecs = 0.5

// InputSnapshot is one frame's sampled input (spec §6:
// "tick(input_snapshot, dt)"). Input is sampled once per frame; no
// event arrives mid-tick.
type InputSnapshot struct {
	MoveX, MoveY float64
	Attack       bool
	Dodge        bool
	Parry        bool
	Ability      [4]bool
	Pause        bool
	Inventory    bool
	Interact     bool
}

const projectileSpeed = 220.0

// Engine drives one run: the live World plus the global state machine,
// the drained-each-frame event queue, and the save document store.
// Grounded on fight-club-go/internal/game/engine.go's Engine.tick()
// fixed phase order, generalized from that repo's free-for-all arena
// loop to spec §2's player/enemies/boss/combat/projectiles/aoe/pickups/
// camera/particles/status/combo sequence.
type Engine struct {
	World *World
	State GlobalState

	SaveStore *save.Store

	TickCount  uint64
	eventQueue []Event

	WeaponTable map[string]weapon.Weapon
}

// NewRun starts a fresh run at floor 1 with the given seed and
// difficulty, loading content from doc (pass data.DefaultDocument() for
// the in-code fallback) and the code-default balance. Returns a BadData
// failure if doc is nil.
func NewRun(seed uint64, difficulty string, doc *data.Document) (*Engine, error) {
	return NewRunWithBalance(seed, difficulty, doc, config.DefaultBalance())
}

// NewRunWithBalance is NewRun with an explicit config.Balance, letting a
// host thread its loaded TOML tuning document all the way into the
// simulation (spec: a loaded balance document must actually parametrize
// the gameplay constants it mirrors).
func NewRunWithBalance(seed uint64, difficulty string, doc *data.Document, bal config.Balance) (*Engine, error) {
	if doc == nil {
		return nil, simerr.New(simerr.BadData, "new_run requires a data document")
	}
	w := NewWorld(seed, difficulty, doc, bal)
	e := &Engine{
		World:       w,
		State:       Playing,
		SaveStore:   save.NewStore(),
		WeaponTable: weapon.DefaultTable,
	}
	e.emit(Event{Kind: EventFloorGenerated, Floor: 1})
	return e, nil
}

// Tick advances the simulation by one frame (spec §2's control-flow
// order). Rendering/audio are out of scope; callers read Scene()/
// DrainEvents() afterward.
func (e *Engine) Tick(input InputSnapshot, rawDt float64) {
	dt := clampDt(rawDt)
	e.TickCount++

	e.dispatchState(input)

	if !e.State.AdvancesSimulation() {
		return
	}

	w := e.World

	e.updatePlayer(input, dt)
	e.updateEnemies(dt)
	e.updateBoss(dt)
	e.resolveCombat(dt)
	e.advanceProjectiles(dt)
	e.tickAoE(dt)
	e.collectPickups()
	e.followCamera()
	e.advanceParticles(dt)
	e.tickStatus(dt)
	e.decayCombo(dt)

	w.PlaytimeSecs += dt
}

// dispatchState applies input-driven global-state transitions (spec
// §4.13). Menu states freeze the world but still read input for their
// own navigation, handled by the host above this package; the core only
// owns the pause and inventory toggles and the death terminal transition.
func (e *Engine) dispatchState(input InputSnapshot) {
	switch e.State {
	case Playing:
		if input.Pause {
			e.State = Paused
		} else if input.Inventory {
			e.State = Inventory
		} else if e.World.Player.HP <= 0 {
			e.State = Death
		}
	case Paused, Inventory, SkillTree, Crafting:
		if input.Pause || input.Inventory {
			e.State = Playing
		}
	case Dialogue, Transition, BossIntro:
		// advanced explicitly by the host driving dialogue/transition
		// scripts; the core does not auto-advance these.
	}
}

func (e *Engine) updatePlayer(input InputSnapshot, dt float64) {
	p := e.World.Player
	if input.Dodge && p.CanDodge() {
		p.StartDodge(input.MoveX, input.MoveY)
	}
	if input.Parry {
		p.OpenParryWindow()
	}
	if !p.IsDodging() {
		p.Move(input.MoveX, input.MoveY, dt, e.World.Grid, 12)
	}

	attacking := false
	if input.Attack && !p.IsDodging() {
		attacking = true
		e.triggerPlayerSwing(p.Facing)
	}

	nearFire := e.playerNearCampfire()
	p.RegenerateResources(dt, attacking, nearFire)
	p.TickTimers(dt)
}

func (e *Engine) playerNearCampfire() bool {
	sp := e.World.FloorData.Specials
	if !sp.HasCampfire {
		return false
	}
	fx, fy := tilegrid.TileToPixel(sp.CampfireX, sp.CampfireY)
	p := e.World.Player
	return math.Hypot(p.X-fx, p.Y-fy) < 48
}

func (e *Engine) triggerPlayerSwing(facing float64) {
	p := e.World.Player
	w := weapon.Get(e.WeaponTable, p.CurrentWeaponID)
	if p.Stamina < w.StaminaCost {
		return
	}
	p.Stamina -= w.StaminaCost
	idx := p.RegisterSwing(e.World.ComboWindowSecs, w.Combo.MaxHits)
	swing := weapon.NewSwing(entity.Ref{Kind: entity.KindPlayer}, w, p.X, p.Y, facing, idx)
	e.World.Swings = append(e.World.Swings, swing)
}

func (e *Engine) updateEnemies(dt float64) {
	w := e.World
	px, py := w.Player.X, w.Player.Y
	w.Enemies.Each(func(h entity.Handle, en *EnemyEntity) {
		if en.HP <= 0 {
			en.Agent.Kill()
			return
		}
		dist := math.Hypot(px-en.X, py-en.Y)
		triggered := en.Agent.Update(dt, dist, true)
		dx, dy := en.Agent.Steer(en.X, en.Y, px, py, nil, nil)
		speed := 60.0
		if en.Agent.Triggered() {
			speed *= ai.AmbushBurstMultiplier
		}
		en.X += dx * speed * dt
		en.Y += dy * speed * dt

		if en.KnockbackVX != 0 || en.KnockbackVY != 0 {
			en.X += en.KnockbackVX * dt
			en.Y += en.KnockbackVY * dt
			en.KnockbackVX *= w.KnockbackDecayPerSec
			en.KnockbackVY *= w.KnockbackDecayPerSec
			if math.Hypot(en.KnockbackVX, en.KnockbackVY) < 2 {
				en.KnockbackVX, en.KnockbackVY = 0, 0
			}
		}

		if triggered && len(en.Attacks) > 0 {
			e.spawnEnemyAttack(entity.Ref{Kind: entity.KindEnemy, Handle: h}, en.X, en.Y, en.Element, en.Attacks[0])
		}
	})
}

// seedStatusEffect resolves an AttackDef's optional StatusSeed into a
// status.Effect carried by the swing/projectile/AoE it arms (spec
// §4.8/§4.11: "hit events may append a status effect"). Returns nil for
// an absent seed or an unrecognized kind name.
func seedStatusEffect(seed *data.StatusSeed, source entity.Ref) *status.Effect {
	if seed == nil {
		return nil
	}
	kind, ok := status.ParseKind(seed.Kind)
	if !ok {
		return nil
	}
	return &status.Effect{
		Kind:         kind,
		Duration:     seed.Duration,
		TickDamage:   seed.TickDamage,
		TickInterval: seed.TickInterval,
		Source:       source,
	}
}

func (e *Engine) spawnEnemyAttack(owner entity.Ref, fromX, fromY float64, elem weapon.Element, atk data.AttackDef) {
	w := e.World
	dir := math.Atan2(w.Player.Y-fromY, w.Player.X-fromX)
	switch {
	case atk.Projectile:
		if w.Projectiles.Len() >= w.Limits.MaxProjectiles {
			w.Drops.ProjectilesDropped++
			return
		}
		proj := projectile.New(owner, projectile.OwnerEnemy, fromX, fromY, w.Player.X, w.Player.Y, projectileSpeed, atk.Damage, atk.Range/projectileSpeed)
		proj.Element = elem
		proj.StatusEffect = seedStatusEffect(atk.Effect, owner)
		w.Projectiles.Insert(proj)
	case atk.AoE:
		if w.AoEs.Len() >= w.Limits.MaxAoE {
			w.Drops.AoEDropped++
			return
		}
		field := projectile.NewSingleShot(w.Player.X, w.Player.Y, atk.AoERadius, atk.Damage, elem, projectile.OwnerEnemy, 0.4)
		field.StatusEffect = seedStatusEffect(atk.Effect, owner)
		w.AoEs.Insert(field)
	default:
		sw := weapon.NewSwing(owner, weapon.Get(e.WeaponTable, "fists"), fromX, fromY, dir, 0)
		sw.StatusEffect = seedStatusEffect(atk.Effect, owner)
		w.Swings = append(w.Swings, sw)
	}
}

func (e *Engine) updateBoss(dt float64) {
	w := e.World
	b := w.Boss
	if b == nil || b.Dead() {
		return
	}
	phase := b.Phase()
	dir := math.Atan2(w.Player.Y-b.Y, w.Player.X-b.X)
	speed := phase.MoveSpeed
	nx, ny := b.X+math.Cos(dir)*speed*dt, b.Y+math.Sin(dir)*speed*dt
	b.X, b.Y = b.ClampToArena(nx, ny)

	if len(phase.Attacks) > 0 {
		e.spawnEnemyAttack(entity.Ref{Kind: entity.KindBoss}, b.X, b.Y, weapon.ElementNone, phase.Attacks[0])
	}
}

// resolveCombat checks every active swing against opposing entities,
// applies damage through internal/combat's formula, and removes the
// dead (spec §2 phase "combat.resolve").
func (e *Engine) resolveCombat(dt float64) {
	w := e.World
	live := w.Swings[:0]
	for _, sw := range w.Swings {
		sw.Tick(dt)
		if sw.OwnerFrom.Kind == entity.KindPlayer {
			e.resolvePlayerSwing(sw)
		} else {
			e.resolveEnemySwing(sw)
		}
		if sw.Active() {
			live = append(live, sw)
		}
	}
	w.Swings = live

	e.removeDeadEnemies()
	if w.Boss != nil && w.Boss.Dead() {
		w.DefeatedBossIDs = append(w.DefeatedBossIDs, w.Boss.ID)
		e.emit(Event{Kind: EventEntityDied, EntityID: w.Boss.ID})
		w.Boss = nil
	}
}

// scaledPlayerDamage computes the damage formula's scaled base term
// (spec §4.8: "base = weapon_base · rarity_mult · floor_mult; scaled =
// base + stat_scaling(attacker, element)") for the player's current
// weapon and gear, ahead of combat.Resolve's crit/combo/element/defense
// stage.
func (e *Engine) scaledPlayerDamage(weaponBase int) float64 {
	w := e.World
	p := w.Player
	base := float64(weaponBase) * data.RarityMultiplier(p.WeaponRarity) * combat.FloorMultiplier(w.Floor)
	return base + combat.StatScaling(p.AttackPower)
}

// knockbackStrengthFor scales a push-out impulse by the swinging
// weapon's base damage, with cleaving weapons hitting harder (spec
// §4.8: "heavy weapons apply stronger knockback").
func knockbackStrengthFor(w weapon.Weapon) float64 {
	s := 60.0 + float64(w.BaseDamage)*2.0
	if w.Bonus == weapon.BonusCleave {
		s *= 1.5
	}
	return s
}

func (e *Engine) resolvePlayerSwing(sw *weapon.Swing) {
	w := e.World
	hasCritBonus := sw.Weapon.Bonus == weapon.BonusCrit
	hb := combat.ShapeForArc(sw.Weapon.Range, sw.Weapon.ArcDegrees, sw.Direction)
	w.Enemies.Each(func(h entity.Handle, en *EnemyEntity) {
		ref := entity.Ref{Kind: entity.KindEnemy, Handle: h}
		if sw.AlreadyDamaged(ref) || en.HP <= 0 {
			return
		}
		if !hb.Contains(sw.CenterX, sw.CenterY, en.X, en.Y) {
			return
		}
		critMult, isCrit := combat.RollCrit(w.AIStream, hasCritBonus)
		dmg := combat.Resolve(combat.Hit{
			BaseDamage:      e.scaledPlayerDamage(sw.Weapon.BaseDamage),
			CritMultiplier:  critMult,
			ComboIndex:      sw.ComboIndex,
			AttackerElement: sw.Weapon.Element,
			DefenderElement: en.Element,
		}, en.Defense)
		en.HP -= float64(dmg)
		en.Agent.TakeDamage()
		kvx, kvy := combat.Knockback(sw.CenterX, sw.CenterY, en.X, en.Y, knockbackStrengthFor(sw.Weapon))
		en.KnockbackVX, en.KnockbackVY = kvx, kvy
		sw.MarkDamaged(ref)
		if sw.StatusEffect != nil {
			eff := *sw.StatusEffect
			en.Status.Apply(eff)
			e.emit(Event{Kind: EventStatusApplied, EntityID: en.ArchetypeID, Status: eff.Kind.Name()})
		}
		e.emit(Event{Kind: EventHit, Attacker: "player", Target: en.ArchetypeID, Damage: dmg, IsCrit: isCrit, Element: elementName(sw.Weapon.Element)})
	})

	if w.Boss != nil && !w.Boss.Dead() {
		ref := entity.Ref{Kind: entity.KindBoss}
		if !sw.AlreadyDamaged(ref) && hb.Contains(sw.CenterX, sw.CenterY, w.Boss.X, w.Boss.Y) {
			critMult, isCrit := combat.RollCrit(w.AIStream, hasCritBonus)
			dmg := combat.Resolve(combat.Hit{
				BaseDamage:     e.scaledPlayerDamage(sw.Weapon.BaseDamage),
				CritMultiplier: critMult,
				ComboIndex:     sw.ComboIndex,
			}, 0)
			res := w.Boss.ApplyDamage(dmg)
			sw.MarkDamaged(ref)
			e.emit(Event{Kind: EventHit, Attacker: "player", Target: w.Boss.ID, Damage: dmg, IsCrit: isCrit})
			if res.Transitioned {
				e.emit(Event{Kind: EventPhaseChanged, BossID: w.Boss.ID, Phase: res.NewPhase})
				e.emit(Event{Kind: EventDialogueLine, Speaker: w.Boss.Name, Text: res.DialogueLine})
				if res.SpecialMove != boss.SpecialNone {
					e.applySpecialMove(res.SpecialMove)
				}
			}
		}
	}
}

func (e *Engine) resolveEnemySwing(sw *weapon.Swing) {
	w := e.World
	if w.Player.IsInvulnerable() {
		return
	}
	hb := combat.ShapeForCircle(sw.Weapon.Range)
	ref := entity.Ref{Kind: entity.KindPlayer}
	if sw.AlreadyDamaged(ref) {
		return
	}
	if !hb.Contains(sw.CenterX, sw.CenterY, w.Player.X, w.Player.Y) {
		return
	}
	if w.Player.InParryWindow() {
		w.Player.ResolveParry()
		sw.MarkDamaged(ref)
		e.staggerAttacker(sw.OwnerFrom)
		return
	}
	critMult, isCrit := combat.RollCrit(w.AIStream, false)
	dmg := combat.Resolve(combat.Hit{BaseDamage: float64(sw.Weapon.BaseDamage), CritMultiplier: critMult}, w.Player.Defense)
	w.Player.HP -= float64(dmg)
	sw.MarkDamaged(ref)
	if sw.StatusEffect != nil {
		eff := *sw.StatusEffect
		w.Player.Status.Apply(eff)
		e.emit(Event{Kind: EventStatusApplied, EntityID: "player", Status: eff.Kind.Name()})
	}
	e.emit(Event{Kind: EventHit, Attacker: "enemy", Target: "player", Damage: dmg, IsCrit: isCrit})
}

// staggerAttacker applies a Stagger status to ref's underlying entity
// and emits its StatusApplied event, for callers that resolve a
// successful parry (spec §8 scenario "Parry refund"). Boss attackers
// carry no status.Set of their own, so staggering one is a no-op here.
func (e *Engine) staggerAttacker(ref entity.Ref) {
	if ref.Kind != entity.KindEnemy {
		return
	}
	en, ok := e.World.Enemies.Get(ref.Handle)
	if !ok {
		return
	}
	en.Status.Apply(status.Effect{Kind: status.Stagger, Duration: staggerDurationSecs})
	e.emit(Event{Kind: EventStatusApplied, EntityID: en.ArchetypeID, Status: status.Stagger.Name()})
}

func (e *Engine) applySpecialMove(move boss.SpecialMove) {
	w := e.World
	eff := boss.Effect(move)
	if eff.Move == boss.SpecialSummonPreviousBosses {
		eff = w.Boss.PreviousBossIDsFor(w.DefeatedBossIDs)
	}
	if eff.Move == boss.SpecialSummonAllies && len(w.Data.Archetypes) > 0 {
		arch := w.Data.Archetypes[0]
		room := w.FloorData.BossArena.Room
		cx, cy := room.Center()
		for i := 0; i < eff.SummonCount; i++ {
			w.spawnEnemy(arch, cx+i, cy)
		}
	}
}

func (e *Engine) removeDeadEnemies() {
	w := e.World
	w.Enemies.Each(func(h entity.Handle, en *EnemyEntity) {
		if en.HP <= 0 {
			w.Enemies.Remove(h)
			e.emit(Event{Kind: EventEntityDied, EntityID: en.ArchetypeID})
			w.Kills++
			w.Score += 50
		}
	})
	w.Enemies.Compact()
}

func (e *Engine) advanceProjectiles(dt float64) {
	w := e.World
	w.Projectiles.Each(func(h entity.Handle, proj **projectile.Projectile) {
		p := *proj
		if !p.Update(dt, nil) {
			w.Projectiles.Remove(h)
			return
		}
		if e.projectileHitsWall(p) {
			e.explodeProjectile(p)
			w.Projectiles.Remove(h)
			return
		}
		hit, parried := e.resolveProjectileHit(p)
		if hit && !parried {
			e.explodeProjectile(p)
		}
		if parried || (hit && !p.Piercing) {
			w.Projectiles.Remove(h)
		}
	})
	w.Projectiles.Compact()
}

// projectileHitsWall reports whether p's current position has flown
// into a solid tile (spec §4.7/§8: "despawns on wall impact").
func (e *Engine) projectileHitsWall(p *projectile.Projectile) bool {
	tx, ty := tilegrid.PixelToTile(p.X, p.Y)
	return e.World.Grid.IsSolid(tx, ty)
}

// explodeProjectile spawns a single-pulse AoE at p's impact point when
// it carries an explode radius (spec §8 scenario "Projectile explode"):
// the field deals floor(0.7·proj.damage·elem·combo − defense) to
// whatever it catches on its one pulse, elem/combo/defense applied the
// same way any other AoE hit is (applyAoEDamage's combat.Resolve call).
func (e *Engine) explodeProjectile(p *projectile.Projectile) {
	if p.ExplodeRadius <= 0 {
		return
	}
	explodeDamage := int(math.Floor(0.7 * float64(p.Damage)))
	field := projectile.NewSingleShot(p.X, p.Y, p.ExplodeRadius, explodeDamage, p.Element, p.OwnerTag, 0)
	e.World.AoEs.Insert(field)
}

// resolveProjectileHit applies damage to the first opposing entity the
// projectile's hit circle overlaps, returning whether a hit landed and
// whether the hit was a parry instead (a parried projectile is always
// removed, piercing or not — spec §8: "a parried projectile is removed
// without hitting the player").
func (e *Engine) resolveProjectileHit(p *projectile.Projectile) (hit, parried bool) {
	w := e.World
	if p.OwnerTag == projectile.OwnerPlayer {
		w.Enemies.Each(func(eh entity.Handle, en *EnemyEntity) {
			if hit || en.HP <= 0 {
				return
			}
			ref := entity.Ref{Kind: entity.KindEnemy, Handle: eh}
			if !p.HitTest(ref, en.X, en.Y, 14) {
				return
			}
			critMult, isCrit := combat.RollCrit(w.AIStream, false)
			dmg := combat.Resolve(combat.Hit{BaseDamage: float64(p.Damage), CritMultiplier: critMult, AttackerElement: p.Element, DefenderElement: en.Element}, en.Defense)
			en.HP -= float64(dmg)
			en.Agent.TakeDamage()
			p.MarkDamaged(ref)
			if p.StatusEffect != nil {
				eff := *p.StatusEffect
				en.Status.Apply(eff)
				e.emit(Event{Kind: EventStatusApplied, EntityID: en.ArchetypeID, Status: eff.Kind.Name()})
			}
			e.emit(Event{Kind: EventHit, Attacker: "player", Target: en.ArchetypeID, Damage: dmg, IsCrit: isCrit})
			hit = true
		})
		return hit, false
	}
	if w.Player.IsInvulnerable() {
		return false, false
	}
	ref := entity.Ref{Kind: entity.KindPlayer}
	if !p.HitTest(ref, w.Player.X, w.Player.Y, 14) {
		return false, false
	}
	if w.Player.InParryWindow() {
		w.Player.ResolveParry()
		e.staggerAttacker(p.Owner)
		return true, true
	}
	critMult, isCrit := combat.RollCrit(w.AIStream, false)
	dmg := combat.Resolve(combat.Hit{BaseDamage: float64(p.Damage), CritMultiplier: critMult}, w.Player.Defense)
	w.Player.HP -= float64(dmg)
	p.MarkDamaged(ref)
	if p.StatusEffect != nil {
		eff := *p.StatusEffect
		w.Player.Status.Apply(eff)
		e.emit(Event{Kind: EventStatusApplied, EntityID: "player", Status: eff.Kind.Name()})
	}
	e.emit(Event{Kind: EventHit, Attacker: "enemy", Target: "player", Damage: dmg, IsCrit: isCrit})
	return true, false
}

func (e *Engine) tickAoE(dt float64) {
	w := e.World
	w.AoEs.Each(func(h entity.Handle, field **projectile.AoE) {
		a := *field
		deal, alive := a.Tick(dt)
		if deal {
			e.applyAoEDamage(a)
		}
		if !alive {
			w.AoEs.Remove(h)
		}
	})
	w.AoEs.Compact()
}

func (e *Engine) applyAoEDamage(a *projectile.AoE) {
	w := e.World
	if a.OwnerTag == projectile.OwnerPlayer {
		w.Enemies.Each(func(h entity.Handle, en *EnemyEntity) {
			if en.HP > 0 && a.Contains(en.X, en.Y) {
				critMult, isCrit := combat.RollCrit(w.AIStream, false)
				dmg := combat.Resolve(combat.Hit{BaseDamage: float64(a.Damage), CritMultiplier: critMult, AttackerElement: a.Element, DefenderElement: en.Element}, en.Defense)
				en.HP -= float64(dmg)
				en.Agent.TakeDamage()
				if a.StatusEffect != nil {
					eff := *a.StatusEffect
					en.Status.Apply(eff)
					e.emit(Event{Kind: EventStatusApplied, EntityID: en.ArchetypeID, Status: eff.Kind.Name()})
				}
				e.emit(Event{Kind: EventHit, Attacker: "player", Target: en.ArchetypeID, Damage: dmg, IsCrit: isCrit})
			}
		})
		return
	}
	if !w.Player.IsInvulnerable() && a.Contains(w.Player.X, w.Player.Y) {
		critMult, isCrit := combat.RollCrit(w.AIStream, false)
		dmg := combat.Resolve(combat.Hit{BaseDamage: float64(a.Damage), CritMultiplier: critMult}, w.Player.Defense)
		w.Player.HP -= float64(dmg)
		if a.StatusEffect != nil {
			eff := *a.StatusEffect
			w.Player.Status.Apply(eff)
			e.emit(Event{Kind: EventStatusApplied, EntityID: "player", Status: eff.Kind.Name()})
		}
		e.emit(Event{Kind: EventHit, Attacker: "enemy", Target: "player", Damage: dmg, IsCrit: isCrit})
	}
}

// collectPickups is a stub: item/chest pickup collision against the
// player's radius is a host/UI inventory concern this package leaves to
// its caller.
func (e *Engine) collectPickups() {}

func (e *Engine) followCamera() {
	e.World.CameraX, e.World.CameraY = e.World.Player.X, e.World.Player.Y
}

// advanceParticles is a no-op here: particle motion/rendering is an
// external collaborator concern (spec §2: "Rendering and audio are
// pulled from the scene description by external collaborators").
func (e *Engine) advanceParticles(dt float64) {}

func (e *Engine) tickStatus(dt float64) {
	w := e.World
	w.Enemies.Each(func(h entity.Handle, en *EnemyEntity) {
		net := en.Status.Tick(dt)
		if net > 0 {
			en.HP -= float64(net)
			en.Agent.TakeDamage()
		} else if net < 0 {
			en.HP -= float64(net)
		}
	})
	if net := w.Player.Status.Tick(dt); net != 0 {
		w.Player.HP -= float64(net)
	}
}

// decayCombo is a no-op: the player's combo window is ticked alongside
// its other timers in updatePlayer (playerctl.Controller.TickTimers),
// this phase kept only to mirror spec §2's named phase list.
func (e *Engine) decayCombo(dt float64) {}

// DescendStairs advances to the next floor, regenerating it
// deterministically from the run seed (spec §4.3/§6 descend_stairs).
func (e *Engine) DescendStairs() {
	e.World.loadFloor(e.World.Floor + 1)
	e.emit(Event{Kind: EventFloorGenerated, Floor: e.World.Floor})
}

// SaveCheckpoint captures the current run into a campfire checkpoint
// (spec §4.12), archiving whatever checkpoint was previously active.
func (e *Engine) SaveCheckpoint() {
	cp := save.NewCheckpoint(e.World.Floor)
	cp.Player.HP = e.World.Player.HP
	cp.Player.MaxHP = e.World.Player.MaxHP
	cp.Player.Mana = e.World.Player.Mana
	cp.Player.MaxMana = e.World.Player.MaxMana
	cp.Player.Stamina = e.World.Player.Stamina
	cp.Player.MaxStamina = e.World.Player.MaxStamina
	e.SaveStore.SaveCheckpoint(cp)
	e.emit(Event{Kind: EventCheckpointSaved})
}

// SaveFull writes a full save (spec §4.12): checkpoint fields plus run
// metadata.
func (e *Engine) SaveFull() ([]byte, error) {
	cp := save.NewCheckpoint(e.World.Floor)
	cp.Player.HP = e.World.Player.HP
	cp.Player.MaxHP = e.World.Player.MaxHP
	full := save.FullSaveState{
		CheckpointState: cp,
		Seed:            int64(e.World.RunSeed),
		Difficulty:      e.World.Difficulty,
		Score:           e.World.Score,
		Kills:           e.World.Kills,
		PlaytimeSecs:    e.World.PlaytimeSecs,
		RunStats:        map[string]int{"resource_cap_drops": e.World.Drops.Total()},
	}
	e.SaveStore.SaveFull(full)
	return save.Encode(full)
}

// Load restores a run from an encoded save blob (spec §6 load(blob)).
func (e *Engine) Load(blob []byte) error {
	full, err := save.Decode(blob)
	if err != nil {
		return err
	}
	e.World.Player.HP = full.Player.HP
	e.World.Player.MaxHP = full.Player.MaxHP
	e.World.loadFloor(full.Floor)
	return nil
}

// RollbackCheckpoint restores the player to the active checkpoint (spec
// §4.12: death-with-checkpoint respawn, and the explicit rollback_checkpoint
// operation), incrementing the death counter exactly once per death.
func (e *Engine) RollbackCheckpoint() error {
	cp, err := e.SaveStore.RollbackCheckpoint()
	if err != nil {
		return err
	}
	cp.DeathCount++
	e.SaveStore.Current.DeathCount = cp.DeathCount
	e.World.Player.HP = cp.Player.HP
	e.World.Player.MaxHP = cp.Player.MaxHP
	e.World.Player.Mana = cp.Player.Mana
	e.World.Player.Stamina = cp.Player.Stamina
	e.World.loadFloor(cp.Floor)
	e.State = Playing
	return nil
}
