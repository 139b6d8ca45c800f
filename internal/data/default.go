package data

import "depths-of-the-abyss/internal/weapon"

// DefaultDocument returns the built-in fallback content table, used when
// no data document is configured or Load fails and the host opts to
// fall back to defaults (spec §7: BadData "the host decides whether to
// fall back to defaults").
func DefaultDocument() *Document {
	return &Document{
		DataVersion: CurrentDataVersion,
		Weapons:     weapon.DefaultTable,
		Armor:       defaultArmor(),
		Consumables: defaultConsumables(),
		Materials:   defaultMaterials(),
		LootTables:  defaultLootTables(),
		Archetypes:  defaultArchetypes(),
		Bosses:      defaultBosses(),
		SpawnTables: defaultSpawnTables(),
	}
}

func defaultArmor() []Armor {
	return []Armor{
		{ID: "leather_cap", Name: "Leather Cap", Slot: SlotHead, Defense: 3, Rarity: RarityCommon},
		{ID: "chainmail_vest", Name: "Chainmail Vest", Slot: SlotChest, Defense: 8, Rarity: RarityCommon},
		{ID: "padded_gloves", Name: "Padded Gloves", Slot: SlotHands, Defense: 2, Rarity: RarityCommon},
		{ID: "iron_greaves", Name: "Iron Greaves", Slot: SlotLegs, Defense: 6, Rarity: RarityUncommon},
		{ID: "swift_boots", Name: "Swift Boots", Slot: SlotFeet, Defense: 3, Rarity: RarityUncommon},
		{ID: "band_of_vigor", Name: "Band of Vigor", Slot: SlotRing, Defense: 0, Rarity: RarityRare},
		{ID: "amulet_of_embers", Name: "Amulet of Embers", Slot: SlotAmulet, Defense: 0, Rarity: RarityEpic},
	}
}

func defaultConsumables() []Consumable {
	return []Consumable{
		{ID: "health_potion", Name: "Health Potion", Kind: ConsumableHeal, Magnitude: 40},
		{ID: "mana_draught", Name: "Mana Draught", Kind: ConsumableMana, Magnitude: 30},
		{ID: "stamina_tonic", Name: "Stamina Tonic", Kind: ConsumableStamina, Magnitude: 35},
		{ID: "antidote_vial", Name: "Antidote Vial", Kind: ConsumableAntidote, Magnitude: 1},
		{ID: "giants_draught", Name: "Giant's Draught", Kind: ConsumableStrength, Magnitude: 5},
		{ID: "quicksilver_elixir", Name: "Quicksilver Elixir", Kind: ConsumableSpeed, Magnitude: 20},
		{ID: "warding_charm", Name: "Warding Charm", Kind: ConsumableResist, Magnitude: 50},
		{ID: "revival_shard", Name: "Revival Shard", Kind: ConsumableRevive, Magnitude: 1},
	}
}

func defaultMaterials() []Material {
	return []Material{
		{ID: "iron_ore", Name: "Iron Ore", Kind: MaterialOre},
		{ID: "wolf_hide", Name: "Wolf Hide", Kind: MaterialHide},
		{ID: "spirit_essence", Name: "Spirit Essence", Kind: MaterialEssence},
		{ID: "cracked_bone", Name: "Cracked Bone", Kind: MaterialBone},
		{ID: "woven_cloth", Name: "Woven Cloth", Kind: MaterialCloth},
		{ID: "frost_crystal", Name: "Frost Crystal", Kind: MaterialCrystal},
		{ID: "healing_herb", Name: "Healing Herb", Kind: MaterialHerb},
		{ID: "spider_venom", Name: "Spider Venom", Kind: MaterialVenom},
	}
}

func defaultLootTables() []LootTable {
	return []LootTable{
		{ID: "common_trash", Entries: []LootEntry{
			{ItemID: "iron_ore", Weight: 40}, {ItemID: "healing_herb", Weight: 40}, {ItemID: "health_potion", Weight: 20},
		}},
		{ID: "beast_drops", Entries: []LootEntry{
			{ItemID: "wolf_hide", Weight: 50}, {ItemID: "spider_venom", Weight: 25}, {ItemID: "cracked_bone", Weight: 25},
		}},
		{ID: "arcane_drops", Entries: []LootEntry{
			{ItemID: "spirit_essence", Weight: 45}, {ItemID: "frost_crystal", Weight: 35}, {ItemID: "mana_draught", Weight: 20},
		}},
		{ID: "boss_drops", Entries: []LootEntry{
			{ItemID: "amulet_of_embers", Weight: 30}, {ItemID: "band_of_vigor", Weight: 30}, {ItemID: "revival_shard", Weight: 40},
		}},
	}
}

// archetypeTemplate holds the per-band scaling this helper applies when
// stamping out the five behaviors each floor band repeats at
// progressively higher stats.
type archetypeTemplate struct {
	suffix      string
	name        string
	archetype   string
	baseHP      int
	baseDamage  int
	speed       float64
	attackRange float64
	aggroRange  float64
	element     weapon.Element
	xp          int
	loot        float64
}

var bandTemplates = []archetypeTemplate{
	{"rat", "Cave Rat", "swarm", 14, 3, 90, 40, 160, weapon.ElementNone, 4, 0.3},
	{"bandit", "Bandit", "patrol", 24, 6, 80, 56, 200, weapon.ElementNone, 8, 0.4},
	{"lurker", "Shadow Lurker", "ambush", 20, 9, 140, 48, 120, weapon.ElementNone, 10, 0.45},
	{"archer", "Skeleton Archer", "ranged", 16, 5, 70, 260, 260, weapon.ElementNone, 9, 0.35},
	{"sentinel", "Stone Sentinel", "guard", 40, 8, 50, 64, 140, weapon.ElementFire, 12, 0.5},
}

// defaultArchetypes stamps out 25 enemy archetypes across 5 floor
// bands (spec §6: "enemy archetypes (25 across 5 floor bands)"), one of
// each of the five named behaviors per band, scaled up per band.
func defaultArchetypes() []EnemyArchetype {
	var out []EnemyArchetype
	for band := 1; band <= 5; band++ {
		scale := 1.0 + float64(band-1)*0.35
		for _, tmpl := range bandTemplates {
			out = append(out, EnemyArchetype{
				ID:          floorBandID(tmpl.suffix, band),
				Name:        tmpl.name,
				Archetype:   tmpl.archetype,
				FloorBand:   band,
				MaxHP:       int(float64(tmpl.baseHP) * scale),
				Damage:      int(float64(tmpl.baseDamage) * scale),
				Speed:       tmpl.speed,
				AttackRange: tmpl.attackRange,
				AggroRange:  tmpl.aggroRange,
				Element:     tmpl.element,
				Resistances: map[string]float64{},
				XPReward:    int(float64(tmpl.xp) * scale),
				LootChance:  tmpl.loot,
				Attacks: []AttackDef{
					{Name: "strike", Damage: int(float64(tmpl.baseDamage) * scale), CooldownS: 1.2, Range: tmpl.attackRange},
				},
			})
		}
	}
	return out
}

func floorBandID(suffix string, band int) string {
	return suffixWithBand(suffix, band)
}

func suffixWithBand(suffix string, band int) string {
	digits := [...]string{"", "i", "ii", "iii", "iv", "v"}
	return suffix + "_" + digits[band]
}

// defaultBosses defines the five boss-floor encounters (spec §6: "boss
// definitions (5)"). grave_warden is named directly by spec §8's
// generation-determinism scenario.
func defaultBosses() []BossDefinition {
	return []BossDefinition{
		{
			ID: "grave_warden", Name: "Grave Warden", MaxHP: 600,
			Phases: []PhaseDef{
				{HPThreshold: 1.0, Behavior: "guard", MoveSpeed: 60, DialogueLine: "You disturb the dead.",
					Attacks: []AttackDef{{Name: "slam", Damage: 18, CooldownS: 1.8, Range: 90}}},
				{HPThreshold: 0.6, Behavior: "aggressive", MoveSpeed: 80, SpecialMove: "summon_allies", SummonCount: 2,
					DialogueLine: "Rise, my brothers.",
					Attacks:      []AttackDef{{Name: "slam", Damage: 22, CooldownS: 1.5, Range: 90}}},
				{HPThreshold: 0.25, Behavior: "enraged", MoveSpeed: 100, SpecialMove: "enrage",
					DialogueLine: "ENOUGH.",
					Attacks:      []AttackDef{{Name: "ground_shatter", Damage: 30, CooldownS: 2.0, Range: 120, AoE: true, AoERadius: 60}}},
			},
		},
		{
			ID: "mire_queen", Name: "Mire Queen", MaxHP: 750,
			Phases: []PhaseDef{
				{HPThreshold: 1.0, Behavior: "ranged", MoveSpeed: 50, DialogueLine: "The swamp claims all.",
					Attacks: []AttackDef{{Name: "venom_spit", Damage: 16, CooldownS: 1.4, Range: 220, Projectile: true,
						Effect: &StatusSeed{Kind: "poison", Duration: 4, TickDamage: 3, TickInterval: 1}}}},
				{HPThreshold: 0.5, Behavior: "teleport", MoveSpeed: 60, SpecialMove: "teleport_strike",
					DialogueLine: "You cannot flee the mire.",
					Attacks:      []AttackDef{{Name: "venom_spit", Damage: 20, CooldownS: 1.2, Range: 220, Projectile: true}}},
			},
		},
		{
			ID: "ember_colossus", Name: "Ember Colossus", MaxHP: 900,
			Phases: []PhaseDef{
				{HPThreshold: 1.0, Behavior: "guard", MoveSpeed: 40, DialogueLine: "Burn.",
					Attacks: []AttackDef{{Name: "fist_slam", Damage: 26, CooldownS: 2.0, Range: 100}}},
				{HPThreshold: 0.55, Behavior: "aggressive", MoveSpeed: 55, SpecialMove: "meteor_bombardment",
					DialogueLine: "The sky falls with me.",
					Attacks:      []AttackDef{{Name: "fist_slam", Damage: 30, CooldownS: 1.8, Range: 100}}},
				{HPThreshold: 0.2, Behavior: "enraged", MoveSpeed: 70, SpecialMove: "floor_becomes_lava",
					DialogueLine: "Everything ends in ash.",
					Attacks:      []AttackDef{{Name: "eruption", Damage: 35, CooldownS: 2.2, Range: 140, AoE: true, AoERadius: 90}}},
			},
		},
		{
			ID: "glacial_warden", Name: "Glacial Warden", MaxHP: 850,
			Phases: []PhaseDef{
				{HPThreshold: 1.0, Behavior: "guard", MoveSpeed: 45, DialogueLine: "Stillness is mercy.",
					Attacks: []AttackDef{{Name: "ice_shard", Damage: 20, CooldownS: 1.5, Range: 200, Projectile: true,
						Effect: &StatusSeed{Kind: "freeze", Duration: 2, TickInterval: 0}}}},
				{HPThreshold: 0.5, Behavior: "ranged", MoveSpeed: 55, SpecialMove: "time_freeze",
					DialogueLine: "Time itself shall kneel.",
					Attacks:      []AttackDef{{Name: "ice_shard", Damage: 24, CooldownS: 1.3, Range: 200, Projectile: true}}},
			},
		},
		{
			ID: "the_molten_heart", Name: "The Molten Heart", MaxHP: 1400,
			Phases: []PhaseDef{
				{HPThreshold: 1.0, Behavior: "guard", MoveSpeed: 50, DialogueLine: "Every ending before this was rehearsal.",
					Attacks: []AttackDef{{Name: "core_pulse", Damage: 24, CooldownS: 1.6, Range: 110}}},
				{HPThreshold: 0.75, Behavior: "aggressive", MoveSpeed: 65, SpecialMove: "summon_previous_bosses",
					DialogueLine: "Meet those who came before you.",
					Attacks:      []AttackDef{{Name: "core_pulse", Damage: 28, CooldownS: 1.4, Range: 110}}},
				{HPThreshold: 0.45, Behavior: "mirrored", MoveSpeed: 75, SpecialMove: "copies_player_abilities",
					DialogueLine: "I have learned your every move.",
					Attacks:      []AttackDef{{Name: "mirrored_strike", Damage: 30, CooldownS: 1.2, Range: 100}}},
				{HPThreshold: 0.15, Behavior: "true_form", MoveSpeed: 90, SpecialMove: "true_form",
					DialogueLine: "Now witness what the Abyss truly is.",
					Attacks: []AttackDef{{Name: "world_ending_attack", Damage: 50, CooldownS: 3.0, Range: 300,
						AoE: true, AoERadius: 260}}},
			},
		},
	}
}

// defaultSpawnTables builds one weighted spawn table per floor band,
// favoring the band's own archetypes but leaving the door open to
// lower-band stragglers for variety (spec §6: "spawn tables (per floor
// range)").
func defaultSpawnTables() []FloorBandSpawnTable {
	var out []FloorBandSpawnTable
	for band := 1; band <= 5; band++ {
		var entries []SpawnTableEntry
		for _, tmpl := range bandTemplates {
			entries = append(entries, SpawnTableEntry{ArchetypeID: floorBandID(tmpl.suffix, band), Weight: 10})
		}
		if band > 1 {
			for _, tmpl := range bandTemplates {
				entries = append(entries, SpawnTableEntry{ArchetypeID: floorBandID(tmpl.suffix, band-1), Weight: 3})
			}
		}
		out = append(out, FloorBandSpawnTable{FloorBand: band, Entries: entries})
	}
	return out
}
