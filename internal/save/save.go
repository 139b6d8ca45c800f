// Package save implements the run-state save format spec §4.12/§6
// describes: a versioned document with documented defaults for missing
// fields, archive-before-replace on checkpoint overwrite, and JSON
// encoding (matching fight-club-go's extensive json struct-tag use for
// its own event/snapshot serialization — no ecosystem serialization
// library appears anywhere in the retrieval pack).
package save

import (
	"encoding/json"

	"depths-of-the-abyss/internal/simerr"
)

// CurrentSaveVersion is written into every encoded document's version
// field; future schema changes bump this rather than break old saves.
const CurrentSaveVersion = "1.0"

// InventoryItem is one stack of an owned item.
type InventoryItem struct {
	ItemID string `json:"item_id"`
	Count  int    `json:"count"`
}

// PlayerState is the player-facing subset of run state captured by a
// campfire checkpoint (spec §4.12: "current floor, full player
// snapshot (hp, mana, stamina, level, xp, inventory, equipment, gold)").
type PlayerState struct {
	HP       float64 `json:"hp"`
	MaxHP    float64 `json:"max_hp"`
	Mana     float64 `json:"mana"`
	MaxMana  float64 `json:"max_mana"`
	Stamina  float64 `json:"stamina"`
	MaxStamina float64 `json:"max_stamina"`
	Level    int     `json:"level"`
	XP       int     `json:"xp"`
	Gold     int     `json:"gold"`

	Inventory []InventoryItem   `json:"inventory"`
	Equipment map[string]string `json:"equipment"` // slot -> item id
}

// defaultPlayerState documents the fallback used for any field missing
// from a loaded document (spec §4.12: "missing fields use documented
// defaults").
func defaultPlayerState() PlayerState {
	return PlayerState{
		HP: 100, MaxHP: 100,
		Mana: 50, MaxMana: 50,
		Stamina: 100, MaxStamina: 100,
		Level: 1, XP: 0, Gold: 0,
		Inventory: []InventoryItem{},
		Equipment: map[string]string{},
	}
}

// CheckpointState is everything a campfire checkpoint captures: the
// subset of FullSaveState excluding seed/score/kills/playtime (spec
// §6's "Persistent state layout").
type CheckpointState struct {
	Version      string        `json:"version"`
	Floor        int           `json:"floor"`
	Player       PlayerState   `json:"player"`
	Flags        map[string]bool `json:"flags"`
	StoryChoices []string      `json:"story_choices"`
	DeathCount   int           `json:"death_count"`
}

// FullSaveState is written on an explicit save: the checkpoint fields
// plus world seed, score, kills, playtime, run stats, and a timestamp
// (spec §4.12).
type FullSaveState struct {
	CheckpointState

	Seed         int64          `json:"seed"`
	Difficulty   string         `json:"difficulty"`
	Score        int            `json:"score"`
	Kills        int            `json:"kills"`
	PlaytimeSecs float64        `json:"playtime_secs"`
	TimestampUnix int64         `json:"timestamp"`
	RunStats     map[string]int `json:"run_stats"`
}

// NewCheckpoint builds a checkpoint document at the documented
// defaults, version-stamped, ready for the caller to fill in.
func NewCheckpoint(floor int) CheckpointState {
	return CheckpointState{
		Version: CurrentSaveVersion,
		Floor:   floor,
		Player:  defaultPlayerState(),
		Flags:   map[string]bool{},
	}
}

// Store holds the active checkpoint/full-save in memory plus one level
// of archive, so an accidental overwrite can be undone (spec §4.12:
// "Before overwriting a checkpoint, the previous value is preserved").
// Storage (reading/writing the encoded bytes to disk, S3, etc.) is a
// host concern behind the Blob interface below; Store only owns the
// in-memory document lifecycle.
type Store struct {
	Current  *CheckpointState
	Archived *CheckpointState

	FullCurrent *FullSaveState
}

// NewStore constructs an empty Store (no checkpoint yet).
func NewStore() *Store {
	return &Store{}
}

// SaveCheckpoint archives whatever checkpoint was previously active,
// then installs cp as the new current checkpoint.
func (s *Store) SaveCheckpoint(cp CheckpointState) {
	if s.Current != nil {
		archived := *s.Current
		s.Archived = &archived
	}
	current := cp
	s.Current = &current
}

// SaveFull writes a full save (checkpoint fields plus run metadata).
// Full saves do not go through the checkpoint archive (spec §4.12
// scopes archive-before-replace to checkpoints specifically).
func (s *Store) SaveFull(full FullSaveState) {
	full.Version = CurrentSaveVersion
	saved := full
	s.FullCurrent = &saved
	s.Current = &saved.CheckpointState
}

// RollbackCheckpoint restores the currently active checkpoint exactly
// (spec §8: "restores the previous checkpoint exactly; applying it
// twice is a no-op after the first"). Returns a BadData failure if no
// checkpoint has ever been saved.
func (s *Store) RollbackCheckpoint() (*CheckpointState, error) {
	if s.Current == nil {
		return nil, simerr.New(simerr.BadData, "no checkpoint to roll back to")
	}
	restored := *s.Current
	return &restored, nil
}

// RestoreArchived undoes the most recent checkpoint overwrite,
// replacing Current with the archived value it displaced. A successful
// restore clears the archive slot, so a second call with nothing newly
// archived changes nothing and returns a BadData error.
func (s *Store) RestoreArchived() (*CheckpointState, error) {
	if s.Archived == nil {
		return nil, simerr.New(simerr.BadData, "no archived checkpoint to restore")
	}
	s.Current = s.Archived
	s.Archived = nil
	restored := *s.Current
	return &restored, nil
}

// Encode serializes a FullSaveState to its JSON wire form.
func Encode(full FullSaveState) ([]byte, error) {
	b, err := json.Marshal(full)
	if err != nil {
		return nil, simerr.Wrap(simerr.SaveIo, "encode save document", err)
	}
	return b, nil
}

// Decode parses a JSON save blob into a FullSaveState, filling any
// fields absent from the blob with documented defaults rather than
// failing outright (spec §4.12/§7: missing fields use defaults,
// malformed documents are a typed BadData failure, not a panic).
func Decode(blob []byte) (FullSaveState, error) {
	full := FullSaveState{CheckpointState: NewCheckpoint(1)}
	if err := json.Unmarshal(blob, &full); err != nil {
		return FullSaveState{}, simerr.Wrap(simerr.BadData, "decode save document", err)
	}
	if full.Version == "" {
		full.Version = CurrentSaveVersion
	}
	if full.RunStats == nil {
		full.RunStats = map[string]int{}
	}
	return full, nil
}

// DeleteSave clears a save document. Per spec §6 "Deletion semantics:
// clearing a save removes that key without touching settings or high
// scores" — callers are expected to only ever clear the run-state key
// their host storage uses for this; Store itself holds no settings or
// score state to protect.
func (s *Store) DeleteSave() {
	s.Current = nil
	s.Archived = nil
	s.FullCurrent = nil
}
