// Package sim owns the World (tile grid, entity stores, RNG streams)
// and the Engine (fixed-order tick loop, global state machine) that
// spec §2/§4.13 describe. Grounded on fight-club-go/internal/game/
// engine.go's Engine.tick() fixed-order phase sequence and snapshot
// production, generalized from that repo's free-for-all arena loop to
// the frame order and menu-state-freezes-world rule this engine needs.
package sim

// GlobalState is one of the twelve top-level states spec §4.13 names.
type GlobalState uint8

const (
	Title GlobalState = iota
	Playing
	Paused
	Inventory
	SkillTree
	Crafting
	Dialogue
	Death
	GameOver
	Victory
	Transition
	BossIntro
)

func (g GlobalState) String() string {
	switch g {
	case Title:
		return "Title"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	case Inventory:
		return "Inventory"
	case SkillTree:
		return "SkillTree"
	case Crafting:
		return "Crafting"
	case Dialogue:
		return "Dialogue"
	case Death:
		return "Death"
	case GameOver:
		return "GameOver"
	case Victory:
		return "Victory"
	case Transition:
		return "Transition"
	case BossIntro:
		return "BossIntro"
	default:
		return "Unknown"
	}
}

// AdvancesSimulation reports whether the world ticks forward in this
// state (spec §4.13: only Playing advances the simulation; every other
// state freezes the world while its own timers, if any, still run).
func (g GlobalState) AdvancesSimulation() bool {
	return g == Playing
}

// maxDtSecs clamps a single tick's delta time (spec §4.13: "dt =
// clamp(raw_dt, 0, 50ms)"), so a debugger pause or a slow frame can
// never fast-forward the simulation by an unbounded amount.
const maxDtSecs = 0.050

func clampDt(raw float64) float64 {
	if raw < 0 {
		return 0
	}
	if raw > maxDtSecs {
		return maxDtSecs
	}
	return raw
}
