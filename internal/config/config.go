// Package config provides centralized configuration management for the
// simulation core: infra-level settings from the environment, and
// gameplay tuning from an optional TOML document.
package config

import (
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// ENGINE CONFIGURATION
// =============================================================================

// EngineConfig holds tick rate, world bounds, resource caps, and the
// event log path — the knobs a host sets once at process start, never
// mid-run.
type EngineConfig struct {
	TickRate     int // ticks per second the host drives Engine.Tick at
	WorldBoundsX int // pixels; used to size generated floors
	WorldBoundsY int

	MaxEnemies      int
	MaxProjectiles  int
	MaxAoE          int
	MaxParticles    int
	MaxFloatingText int

	EventLogPath string // "" disables persisting the drained event queue
}

// DefaultEngineConfig returns the default engine configuration (spec
// §4.13/§5's figures).
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		TickRate:        60,
		WorldBoundsX:    4096,
		WorldBoundsY:    4096,
		MaxEnemies:      500,
		MaxProjectiles:  400,
		MaxAoE:          200,
		MaxParticles:    2000,
		MaxFloatingText: 100,
		EventLogPath:    "",
	}
}

// EngineConfigFromEnv returns engine configuration with environment
// variable overrides. Environment variables take precedence over
// defaults.
func EngineConfigFromEnv() EngineConfig {
	cfg := DefaultEngineConfig()

	if v := getEnvInt("SIM_TICK_RATE", 0); v > 0 {
		cfg.TickRate = v
	}
	if v := getEnvInt("SIM_WORLD_BOUNDS_X", 0); v > 0 {
		cfg.WorldBoundsX = v
	}
	if v := getEnvInt("SIM_WORLD_BOUNDS_Y", 0); v > 0 {
		cfg.WorldBoundsY = v
	}
	if v := getEnvInt("SIM_MAX_ENEMIES", 0); v > 0 {
		cfg.MaxEnemies = v
	}
	if v := getEnvInt("SIM_MAX_PROJECTILES", 0); v > 0 {
		cfg.MaxProjectiles = v
	}
	if v := getEnvInt("SIM_MAX_AOE", 0); v > 0 {
		cfg.MaxAoE = v
	}
	if v := getEnvInt("SIM_MAX_PARTICLES", 0); v > 0 {
		cfg.MaxParticles = v
	}
	if v := getEnvInt("SIM_MAX_FLOATING_TEXT", 0); v > 0 {
		cfg.MaxFloatingText = v
	}
	if v := os.Getenv("SIM_EVENT_LOG_PATH"); v != "" {
		cfg.EventLogPath = v
	}

	return cfg
}

// =============================================================================
// SERVER CONFIGURATION
// =============================================================================

// ServerConfig holds the demo host's HTTP/websocket settings.
type ServerConfig struct {
	Port              int
	MaxWebsocketConns int
}

// DefaultServer returns the default server configuration.
func DefaultServer() ServerConfig {
	return ServerConfig{
		Port:              3000,
		MaxWebsocketConns: 100,
	}
}

// ServerFromEnv returns server configuration with environment variable
// overrides.
func ServerFromEnv() ServerConfig {
	cfg := DefaultServer()

	if p := getEnvInt("PORT", 0); p > 0 {
		cfg.Port = p
	}
	if mc := getEnvInt("MAX_WEBSOCKET_CONNS", 0); mc > 0 {
		cfg.MaxWebsocketConns = mc
	}

	return cfg
}

// =============================================================================
// BALANCE CONFIGURATION (TOML)
// =============================================================================

// Balance holds gameplay tuning: dodge cost, stamina/mana/hp regen,
// combo window, parry window, knockback decay, elemental multipliers.
// Loaded from a TOML file; a missing file is not an error and falls
// back silently to DefaultBalance (a present-but-malformed file still
// surfaces an error to the caller).
type Balance struct {
	Dodge   DodgeBalance   `toml:"dodge"`
	Regen   RegenBalance   `toml:"regen"`
	Combat  CombatBalance  `toml:"combat"`
	Element ElementBalance `toml:"element"`
}

// DodgeBalance mirrors internal/playerctl's dodge constants.
type DodgeBalance struct {
	StaminaCost  float64 `toml:"stamina_cost"`
	DurationSecs float64 `toml:"duration_secs"`
	InvulnSecs   float64 `toml:"invuln_secs"`
	CooldownSecs float64 `toml:"cooldown_secs"`
}

// RegenBalance mirrors internal/playerctl's regen rate constants.
type RegenBalance struct {
	StaminaPerSec  float64 `toml:"stamina_per_sec"`
	ManaPerSec     float64 `toml:"mana_per_sec"`
	HPPerSecAtFire float64 `toml:"hp_per_sec_at_fire"`
}

// CombatBalance mirrors internal/sim's combo window and
// internal/playerctl's parry constants.
type CombatBalance struct {
	ComboWindowSecs float64 `toml:"combo_window_secs"`
	ParryWindowSecs float64 `toml:"parry_window_secs"`
	ParryRefund     float64 `toml:"parry_refund"`
	KnockbackDecay  float64 `toml:"knockback_decay"`
}

// ElementBalance mirrors internal/combat's elemental advantage table.
type ElementBalance struct {
	AdvantageMultiplier    float64 `toml:"advantage_multiplier"`
	DisadvantageMultiplier float64 `toml:"disadvantage_multiplier"`
}

// DefaultBalance returns the figures internal/playerctl and
// internal/combat hardcode as their package-level constants today; a
// loaded TOML document overrides whichever of these it sets.
func DefaultBalance() Balance {
	return Balance{
		Dodge: DodgeBalance{
			StaminaCost:  40.0,
			DurationSecs: 0.3,
			InvulnSecs:   0.2,
			CooldownSecs: 1.0,
		},
		Regen: RegenBalance{
			StaminaPerSec:  20.0,
			ManaPerSec:     10.0,
			HPPerSecAtFire: 5.0,
		},
		Combat: CombatBalance{
			ComboWindowSecs: 0.6,
			ParryWindowSecs: 0.2,
			ParryRefund:     25.0,
			KnockbackDecay:  0.85,
		},
		Element: ElementBalance{
			AdvantageMultiplier:    1.5,
			DisadvantageMultiplier: 0.75,
		},
	}
}

// LoadBalance reads a TOML balance document at path, starting from
// DefaultBalance and letting the document override any field it sets.
// A missing file returns DefaultBalance with no error.
func LoadBalance(path string) (Balance, error) {
	bal := DefaultBalance()
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return bal, nil
		}
		return bal, err
	}
	if err := toml.Unmarshal(raw, &bal); err != nil {
		return bal, err
	}
	return bal, nil
}

// =============================================================================
// COMPLETE APP CONFIGURATION
// =============================================================================

// AppConfig holds the complete application configuration: engine
// infra settings, server settings, and gameplay balance.
type AppConfig struct {
	Engine  EngineConfig
	Server  ServerConfig
	Balance Balance
}

// Load returns the complete configuration: engine/server settings from
// the environment, balance from the TOML file at balancePath (or code
// defaults if balancePath is empty or absent).
func Load(balancePath string) (AppConfig, error) {
	bal := DefaultBalance()
	if balancePath != "" {
		var err error
		bal, err = LoadBalance(balancePath)
		if err != nil {
			return AppConfig{}, err
		}
	}
	return AppConfig{
		Engine:  EngineConfigFromEnv(),
		Server:  ServerFromEnv(),
		Balance: bal,
	}, nil
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}
